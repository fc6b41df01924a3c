package stays

import "errors"

var (
	// ErrBuildQuery is returned when building the SQL query fails.
	ErrBuildQuery = errors.New("stays.repository: failed to build query")

	// ErrExecQuery is returned when executing the SQL query fails.
	ErrExecQuery = errors.New("stays.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails.
	ErrScanRow = errors.New("stays.repository: failed to scan row")
)
