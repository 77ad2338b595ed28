package postgresengine

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect registration
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmoiron/sqlx"
	jsoniter "github.com/json-iterator/go"

	"github.com/AntonStoeckl/library-books-go/eventstore"
	"github.com/AntonStoeckl/library-books-go/eventstore/postgresengine/internal/adapters"
)

const (
	defaultEventTableName          = "events"
	logMsgBuildSelectQueryFailed   = "failed to build select query"
	logMsgBuildInsertQueryFailed   = "failed to build insert query"
	logMsgDBQueryFailed            = "database query execution failed"
	logMsgCloseRowsFailed          = "failed to close database rows"
	logMsgScanRowFailed            = "failed to scan database row"
	logMsgBuildStorableEventFailed = "failed to build storable event from database row"
	logMsgDBExecFailed             = "database execution failed during event append"
	logMsgRowsAffectedFailed       = "failed to get rows affected count"
	logMsgQueryCompleted           = "query completed"
	logMsgEventsAppended           = "events appended"
	logMsgConcurrencyConflict      = "concurrency conflict detected"
	logMsgSQLExecuted              = "executed sql for: "
	logMsgOperation                = "eventstore operation: "
	logAttrError                   = "error"
	logAttrQuery                   = "query"
	logAttrEventType               = "event_type"
	logAttrEventCount              = "event_count"
	logAttrDurationMS              = "duration_ms"
	logAttrExpectedEvents          = "expected_events"
	logAttrRowsAffected            = "rows_affected"
	logAttrExpectedSequence        = "expected_sequence"
	logAttrConsistency             = "consistency"
	operationQuery                 = "query"
	operationAppend                = "append"
	colEventType                   = "event_type"
	colOccurredAt                  = "occurred_at"
	colPayload                     = "payload"
	colMetadata                    = "metadata"
	colSequenceNumber              = "sequence_number"
	cteContext                     = "context"
	cteVals                        = "vals"
	dialectPostgres                = "postgres"
	aliasMaxSeq                    = "max_seq"
	castText                       = "?::text"
	castTimestamp                  = "?::timestamp with time zone"
	castJsonb                      = "?::jsonb"
	payloadContains                = "payload @> ?::jsonb"
)

type (
	sqlQueryString    = string
	rowsAffectedInt64 = int64
)

// EventStore is the PostgreSQL engine. It is safe for concurrent use.
type EventStore struct {
	db               adapters.DBAdapter
	eventTableName   string
	logger           eventstore.Logger
	metricsCollector eventstore.MetricsCollector
	tracingCollector eventstore.TracingCollector
}

type queryResultRow struct {
	eventType         string
	occurredAt        time.Time
	payload           []byte
	metadata          []byte
	maxSequenceNumber eventstore.MaxSequenceNumberUint
}

// NewEventStoreFromPGXPool creates an EventStore on a pgx pool.
func NewEventStoreFromPGXPool(db *pgxpool.Pool, options ...Option) (*EventStore, error) {
	if db == nil {
		return nil, eventstore.ErrNilDatabaseConnection
	}

	return newEventStore(adapters.NewPGXAdapter(db), options...)
}

// NewEventStoreFromPGXPoolWithReplica creates an EventStore on a pgx primary pool
// which serves eventually consistent queries from the replica pool.
func NewEventStoreFromPGXPoolWithReplica(primary *pgxpool.Pool, replica *pgxpool.Pool, options ...Option) (*EventStore, error) {
	if primary == nil || replica == nil {
		return nil, eventstore.ErrNilDatabaseConnection
	}

	return newEventStore(adapters.NewPGXAdapterWithReplica(primary, replica), options...)
}

// NewEventStoreFromSQLDB creates an EventStore on a database/sql connection pool.
func NewEventStoreFromSQLDB(db *sql.DB, options ...Option) (*EventStore, error) {
	if db == nil {
		return nil, eventstore.ErrNilDatabaseConnection
	}

	return newEventStore(adapters.NewSQLAdapter(db), options...)
}

// NewEventStoreFromSQLDBWithReplica creates an EventStore on a database/sql primary
// which serves eventually consistent queries from the replica.
func NewEventStoreFromSQLDBWithReplica(primary *sql.DB, replica *sql.DB, options ...Option) (*EventStore, error) {
	if primary == nil || replica == nil {
		return nil, eventstore.ErrNilDatabaseConnection
	}

	return newEventStore(adapters.NewSQLAdapterWithReplica(primary, replica), options...)
}

// NewEventStoreFromSQLX creates an EventStore on a sqlx connection pool.
func NewEventStoreFromSQLX(db *sqlx.DB, options ...Option) (*EventStore, error) {
	if db == nil {
		return nil, eventstore.ErrNilDatabaseConnection
	}

	return newEventStore(adapters.NewSQLXAdapter(db), options...)
}

// NewEventStoreFromSQLXWithReplica creates an EventStore on a sqlx primary
// which serves eventually consistent queries from the replica.
func NewEventStoreFromSQLXWithReplica(primary *sqlx.DB, replica *sqlx.DB, options ...Option) (*EventStore, error) {
	if primary == nil || replica == nil {
		return nil, eventstore.ErrNilDatabaseConnection
	}

	return newEventStore(adapters.NewSQLXAdapterWithReplica(primary, replica), options...)
}

func newEventStore(db adapters.DBAdapter, options ...Option) (*EventStore, error) {
	es := &EventStore{
		db:             db,
		eventTableName: defaultEventTableName,
	}

	for _, option := range options {
		if err := option(es); err != nil {
			return nil, err
		}
	}

	return es, nil
}

// Query returns the events matching the filter, ordered by sequence number, together with the
// max sequence number of this "dynamic event stream" at the time of the query.
func (es *EventStore) Query(ctx context.Context, filter eventstore.Filter) (
	eventstore.StorableEvents,
	eventstore.MaxSequenceNumberUint,
	error,
) {

	ctx, span := es.startSpan(ctx, operationQuery)

	sqlQuery, buildQueryErr := es.buildSelectQuery(filter)
	if buildQueryErr != nil {
		es.logError(logMsgBuildSelectQueryFailed, buildQueryErr)
		es.finishFailed(span, operationQuery, buildQueryErr)

		return nil, 0, buildQueryErr
	}

	start := time.Now()
	rows, queryErr := es.db.Query(ctx, sqlQuery)
	duration := time.Since(start)
	es.logQueryWithDuration(sqlQuery, operationQuery, duration)

	if queryErr != nil {
		es.logError(logMsgDBQueryFailed, queryErr, logAttrQuery, sqlQuery)
		es.finishFailed(span, operationQuery, queryErr)

		return nil, 0, errors.Join(eventstore.ErrQueryingEventsFailed, queryErr)
	}
	defer es.closeRows(rows)

	eventStream, maxSequenceNumber, scanErr := es.processQueryResults(rows)
	if scanErr != nil {
		es.finishFailed(span, operationQuery, scanErr)

		return nil, 0, scanErr
	}

	es.logOperation(
		logMsgQueryCompleted,
		logAttrEventCount, len(eventStream),
		logAttrDurationMS, toMilliseconds(duration),
		logAttrConsistency, eventstore.GetConsistencyLevel(ctx).String(),
	)
	es.recordDuration(operationQuery, statusSuccess, duration)
	es.finishSpan(span, statusSuccess, map[string]string{spanAttrEventCount: fmt.Sprint(len(eventStream))})

	return eventStream, maxSequenceNumber, nil
}

func (es *EventStore) closeRows(rows adapters.DBRows) {
	if closeErr := rows.Close(); closeErr != nil && es.logger != nil {
		es.logger.Warn(logMsgCloseRowsFailed, logAttrError, closeErr.Error())
	}
}

func (es *EventStore) processQueryResults(rows adapters.DBRows) (
	eventstore.StorableEvents,
	eventstore.MaxSequenceNumberUint,
	error,
) {

	result := queryResultRow{}
	eventStream := make(eventstore.StorableEvents, 0)
	maxSequenceNumber := eventstore.MaxSequenceNumberUint(0)

	for rows.Next() {
		rowScanErr := rows.Scan(&result.eventType, &result.occurredAt, &result.payload, &result.metadata, &result.maxSequenceNumber)
		if rowScanErr != nil {
			es.logError(logMsgScanRowFailed, rowScanErr)

			return nil, 0, errors.Join(eventstore.ErrScanningDBRowFailed, rowScanErr)
		}

		event, buildStorableErr := eventstore.BuildStorableEvent(result.eventType, result.occurredAt, result.payload, result.metadata)
		if buildStorableErr != nil {
			es.logError(logMsgBuildStorableEventFailed, buildStorableErr, logAttrEventType, result.eventType)

			return nil, 0, errors.Join(eventstore.ErrBuildingStorableEventFailed, buildStorableErr)
		}

		eventStream = append(eventStream, event)
		maxSequenceNumber = result.maxSequenceNumber
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		es.logError(logMsgScanRowFailed, rowsErr)

		return nil, 0, errors.Join(eventstore.ErrScanningDBRowFailed, rowsErr)
	}

	return eventStream, maxSequenceNumber, nil
}

// Append appends one or more events if the "dynamic event stream" defined by the filter still has
// the expected max sequence number, otherwise it returns eventstore.ErrConcurrencyConflict.
//
// The filter must be the one used for the Query the decision was based on.
// One command should normally produce one event; the multi-event insert is heavier.
func (es *EventStore) Append(
	ctx context.Context,
	filter eventstore.Filter,
	expectedMaxSequenceNumber eventstore.MaxSequenceNumberUint,
	event eventstore.StorableEvent,
	additionalEvents ...eventstore.StorableEvent,
) error {

	ctx, span := es.startSpan(ctx, operationAppend)

	allEvents := append(eventstore.StorableEvents{event}, additionalEvents...)

	sqlQuery, buildQueryErr := es.buildAppendQuery(allEvents, filter, expectedMaxSequenceNumber)
	if buildQueryErr != nil {
		es.logError(logMsgBuildInsertQueryFailed, buildQueryErr, logAttrEventCount, len(allEvents))
		es.finishFailed(span, operationAppend, buildQueryErr)

		return buildQueryErr
	}

	start := time.Now()
	rowsAffected, execErr := es.executeAppendQuery(ctx, sqlQuery)
	duration := time.Since(start)

	if execErr != nil {
		es.finishFailed(span, operationAppend, execErr)

		return execErr
	}

	if rowsAffected < rowsAffectedInt64(len(allEvents)) {
		es.logOperation(
			logMsgConcurrencyConflict,
			logAttrExpectedEvents, len(allEvents),
			logAttrRowsAffected, rowsAffected,
			logAttrExpectedSequence, expectedMaxSequenceNumber,
		)
		es.incrementCounter(metricConcurrencyConflicts, operationAppend, statusConflict)
		es.recordDuration(operationAppend, statusConflict, duration)
		es.finishSpan(span, statusConflict, nil)

		return eventstore.ErrConcurrencyConflict
	}

	es.logOperation(
		logMsgEventsAppended,
		logAttrEventCount, len(allEvents),
		logAttrDurationMS, toMilliseconds(duration),
	)
	es.recordDuration(operationAppend, statusSuccess, duration)
	es.recordValue(metricEventsAppended, float64(len(allEvents)))
	es.finishSpan(span, statusSuccess, map[string]string{spanAttrEventCount: fmt.Sprint(len(allEvents))})

	return nil
}

func (es *EventStore) executeAppendQuery(ctx context.Context, sqlQuery string) (rowsAffectedInt64, error) {
	start := time.Now()
	result, execErr := es.db.Exec(ctx, sqlQuery)
	es.logQueryWithDuration(sqlQuery, operationAppend, time.Since(start))

	if execErr != nil {
		es.logError(logMsgDBExecFailed, execErr, logAttrQuery, sqlQuery)

		return 0, errors.Join(eventstore.ErrAppendingEventFailed, execErr)
	}

	rowsAffected, rowsAffectedErr := result.RowsAffected()
	if rowsAffectedErr != nil {
		es.logError(logMsgRowsAffectedFailed, rowsAffectedErr)

		return 0, errors.Join(eventstore.ErrGettingRowsAffectedFailed, rowsAffectedErr)
	}

	return rowsAffected, nil
}

func (es *EventStore) buildAppendQuery(
	allEvents eventstore.StorableEvents,
	filter eventstore.Filter,
	expectedMaxSequenceNumber eventstore.MaxSequenceNumberUint,
) (sqlQueryString, error) {

	if len(allEvents) == 1 {
		return es.buildInsertQueryForSingleEvent(allEvents[0], filter, expectedMaxSequenceNumber)
	}

	return es.buildInsertQueryForMultipleEvents(allEvents, filter, expectedMaxSequenceNumber)
}

func (es *EventStore) buildSelectQuery(filter eventstore.Filter) (sqlQueryString, error) {
	selectStmt := goqu.Dialect(dialectPostgres).
		From(es.eventTableName).
		Select(colEventType, colOccurredAt, colPayload, colMetadata, colSequenceNumber).
		Order(goqu.I(colSequenceNumber).Asc())

	selectStmt, whereErr := es.addWhereClause(filter, selectStmt)
	if whereErr != nil {
		return "", whereErr
	}

	sqlQuery, _, toSQLErr := selectStmt.ToSQL()
	if toSQLErr != nil {
		return "", errors.Join(eventstore.ErrBuildingQueryFailed, toSQLErr)
	}

	return sqlQuery, nil
}

func (es *EventStore) buildMaxSequenceCTE(builder goqu.DialectWrapper, filter eventstore.Filter) (*goqu.SelectDataset, error) {
	cteStmt := builder.
		From(es.eventTableName).
		Select(goqu.MAX(colSequenceNumber).As(aliasMaxSeq))

	return es.addWhereClause(filter, cteStmt)
}

func (es *EventStore) buildInsertQueryForSingleEvent(
	event eventstore.StorableEvent,
	filter eventstore.Filter,
	expectedMaxSequenceNumber eventstore.MaxSequenceNumberUint,
) (sqlQueryString, error) {

	builder := goqu.Dialect(dialectPostgres)

	cteStmt, whereErr := es.buildMaxSequenceCTE(builder, filter)
	if whereErr != nil {
		return "", whereErr
	}

	selectStmt := builder.
		From(cteContext).
		Select(
			goqu.L(castText, event.EventType),
			goqu.L(castTimestamp, event.OccurredAt),
			goqu.L(castJsonb, string(event.PayloadJSON)),
			goqu.L(castJsonb, string(event.MetadataJSON)),
		).
		Where(goqu.COALESCE(goqu.C(aliasMaxSeq), 0).Eq(goqu.V(expectedMaxSequenceNumber)))

	insertStmt := builder.
		Insert(es.eventTableName).
		Cols(colEventType, colOccurredAt, colPayload, colMetadata).
		FromQuery(selectStmt).
		With(cteContext, cteStmt)

	sqlQuery, _, toSQLErr := insertStmt.ToSQL()
	if toSQLErr != nil {
		return "", errors.Join(eventstore.ErrBuildingQueryFailed, toSQLErr)
	}

	return sqlQuery, nil
}

func (es *EventStore) buildInsertQueryForMultipleEvents(
	events eventstore.StorableEvents,
	filter eventstore.Filter,
	expectedMaxSequenceNumber eventstore.MaxSequenceNumberUint,
) (sqlQueryString, error) {

	builder := goqu.Dialect(dialectPostgres)

	cteStmt, whereErr := es.buildMaxSequenceCTE(builder, filter)
	if whereErr != nil {
		return "", whereErr
	}

	var valuesStmt *goqu.SelectDataset
	for _, event := range events {
		eventStmt := builder.Select(
			goqu.L(castText, event.EventType).As(colEventType),
			goqu.L(castTimestamp, event.OccurredAt).As(colOccurredAt),
			goqu.L(castJsonb, string(event.PayloadJSON)).As(colPayload),
			goqu.L(castJsonb, string(event.MetadataJSON)).As(colMetadata),
		)

		if valuesStmt == nil {
			valuesStmt = eventStmt
			continue
		}

		valuesStmt = valuesStmt.UnionAll(eventStmt)
	}

	insertStmt := builder.
		Insert(es.eventTableName).
		Cols(colEventType, colOccurredAt, colPayload, colMetadata).
		With(cteContext, cteStmt).
		With(cteVals, valuesStmt).
		FromQuery(
			builder.From(cteContext, cteVals).
				Select(
					goqu.I(cteVals+"."+colEventType),
					goqu.I(cteVals+"."+colOccurredAt),
					goqu.I(cteVals+"."+colPayload),
					goqu.I(cteVals+"."+colMetadata),
				).
				Where(goqu.COALESCE(goqu.C(aliasMaxSeq), 0).Eq(goqu.V(expectedMaxSequenceNumber))),
		)

	sqlQuery, _, toSQLErr := insertStmt.ToSQL()
	if toSQLErr != nil {
		return "", errors.Join(eventstore.ErrBuildingQueryFailed, toSQLErr)
	}

	return sqlQuery, nil
}

func (es *EventStore) addWhereClause(filter eventstore.Filter, selectStmt *goqu.SelectDataset) (*goqu.SelectDataset, error) {
	if filter.IsEmpty() {
		return selectStmt, nil
	}

	itemsExpressions := make([]goqu.Expression, 0, len(filter.Items()))

	for _, item := range filter.Items() {
		itemExpressions := make([]goqu.Expression, 0, 2)

		if len(item.EventTypes()) > 0 {
			itemExpressions = append(itemExpressions, goqu.C(colEventType).In(item.EventTypes()))
		}

		predicateExpressions := make([]goqu.Expression, 0, len(item.Predicates()))
		for _, predicate := range item.Predicates() {
			containment, err := jsoniter.ConfigFastest.MarshalToString(map[string]string{predicate.Key(): predicate.Val()})
			if err != nil {
				return nil, errors.Join(eventstore.ErrBuildingQueryFailed, err)
			}

			predicateExpressions = append(predicateExpressions, goqu.L(payloadContains, containment))
		}

		if len(predicateExpressions) > 0 {
			var predicatesExpressionList exp.ExpressionList

			if item.AllPredicatesMustMatch() {
				predicatesExpressionList = goqu.And(predicateExpressions...)
			} else {
				predicatesExpressionList = goqu.Or(predicateExpressions...)
			}

			itemExpressions = append(itemExpressions, predicatesExpressionList)
		}

		itemsExpressions = append(itemsExpressions, goqu.And(itemExpressions...))
	}

	return selectStmt.Where(goqu.Or(itemsExpressions...)), nil
}

func (es *EventStore) logQueryWithDuration(sqlQuery string, action string, duration time.Duration) {
	if es.logger != nil {
		es.logger.Debug(logMsgSQLExecuted+action, logAttrDurationMS, toMilliseconds(duration), logAttrQuery, sqlQuery)
	}
}

func (es *EventStore) logOperation(action string, args ...any) {
	if es.logger != nil {
		es.logger.Info(logMsgOperation+action, args...)
	}
}

func (es *EventStore) logError(message string, err error, args ...any) {
	if es.logger != nil {
		es.logger.Error(message, append([]any{logAttrError, err.Error()}, args...)...)
	}
}

// toMilliseconds converts a duration to milliseconds with 3 decimal places.
func toMilliseconds(d time.Duration) float64 {
	return math.Round(float64(d.Nanoseconds())/1e6*1000) / 1000
}
