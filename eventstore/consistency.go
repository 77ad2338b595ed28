package eventstore

import "context"

// ConsistencyLevel defines which database node a Query may be served from.
type ConsistencyLevel int

const (
	// StrongConsistency reads from the primary. Command handlers must see their own writes.
	StrongConsistency ConsistencyLevel = iota

	// EventualConsistency allows reads from a replica. Suitable for pure queries (web pages, lists).
	EventualConsistency
)

type contextKey string

// ConsistencyLevelKey is the context key used to store the consistency level.
const ConsistencyLevelKey contextKey = "eventstore.consistency_level"

// WithStrongConsistency marks the context so that engines read from the primary.
func WithStrongConsistency(ctx context.Context) context.Context {
	return context.WithValue(ctx, ConsistencyLevelKey, StrongConsistency)
}

// WithEventualConsistency marks the context so that engines may read from a replica.
func WithEventualConsistency(ctx context.Context) context.Context {
	return context.WithValue(ctx, ConsistencyLevelKey, EventualConsistency)
}

// GetConsistencyLevel returns the consistency level from the context, StrongConsistency if none is set.
func GetConsistencyLevel(ctx context.Context) ConsistencyLevel {
	if level, ok := ctx.Value(ConsistencyLevelKey).(ConsistencyLevel); ok {
		return level
	}

	return StrongConsistency
}

func (c ConsistencyLevel) String() string {
	switch c {
	case StrongConsistency:
		return "strong"
	case EventualConsistency:
		return "eventual"
	default:
		return "unknown"
	}
}
