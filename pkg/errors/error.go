package errors

// ErrorCode represents a specific error code in the system.
type ErrorCode string

const (
	// DatabaseConnectError represents an error establishing the storage connection.
	DatabaseConnectError ErrorCode = "database_connect_error"
	// DatabaseInitError represents a failure preparing the storage schema.
	DatabaseInitError ErrorCode = "database_init_error"
	// DatabaseUpsertError represents a failed transactional write of time-series rows.
	DatabaseUpsertError ErrorCode = "database_upsert_error"
	// DatabaseQueryError represents a failed read from storage.
	DatabaseQueryError ErrorCode = "database_query_error"

	// FetchTransportError represents a failed call to the market data provider.
	FetchTransportError ErrorCode = "fetch_transport_error"
	// FetchDecodeError represents a malformed payload from the market data provider.
	FetchDecodeError ErrorCode = "fetch_decode_error"

	// ValidationError represents configuration values out of range.
	ValidationError ErrorCode = "validation_error"

	// SchedulerFatalError represents a broken scheduler cancellation channel.
	SchedulerFatalError ErrorCode = "scheduler_fatal_error"
)
