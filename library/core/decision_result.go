package core

// DecisionKind tells the shell what to do with the outcome of a Decide function.
type DecisionKind string

// The three ways a decision can end.
const (
	DecisionNothingToDo DecisionKind = "idempotent"
	DecisionAccepted    DecisionKind = "success"
	DecisionRejected    DecisionKind = "error"
)

// DecisionResult is what every Decide function returns.
// A rejected decision still carries a failure event, so rejections end up in the history.
type DecisionResult struct {
	Outcome DecisionKind
	Event   DomainEvent
	Err     error
}

// IdempotentDecision means the catalog already looks like the command wants it to.
func IdempotentDecision() DecisionResult {
	return DecisionResult{Outcome: DecisionNothingToDo}
}

// SuccessDecision accepts the command with the event to append.
func SuccessDecision(event DomainEvent) DecisionResult {
	return DecisionResult{Outcome: DecisionAccepted, Event: event}
}

// ErrorDecision rejects the command. The failure event is appended and err goes back to the caller.
func ErrorDecision(event DomainEvent, err error) DecisionResult {
	return DecisionResult{Outcome: DecisionRejected, Event: event, Err: err}
}

// HasEventToAppend is false only for idempotent decisions.
func (r DecisionResult) HasEventToAppend() bool {
	return r.Outcome != DecisionNothingToDo && r.Event != nil
}

// HasError returns the rejection reason, nil unless the decision was rejected.
func (r DecisionResult) HasError() error {
	if r.Outcome != DecisionRejected {
		return nil
	}

	return r.Err
}
