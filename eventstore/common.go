package eventstore

import (
	"errors"
)

var (
	ErrEmptyEventsTableName        = errors.New("empty events table name supplied")
	ErrNilDatabaseConnection       = errors.New("nil database connection supplied")
	ErrConcurrencyConflict         = errors.New("concurrency error, no rows were affected")
	ErrBuildingQueryFailed         = errors.New("building the query failed")
	ErrQueryingEventsFailed        = errors.New("querying events failed")
	ErrScanningDBRowFailed         = errors.New("scanning db row failed")
	ErrBuildingStorableEventFailed = errors.New("building storable event failed")
	ErrAppendingEventFailed        = errors.New("appending the event failed")
	ErrGettingRowsAffectedFailed   = errors.New("getting rows affected failed")
)

// MaxSequenceNumberUint is the highest sequence number of a "dynamic event stream" at query time.
type MaxSequenceNumberUint = uint
