package constant

import "time"

const (
	REQUEST_SUCCESSFUL   = "Request successful"
	REQUEST_UNSUCCESSFUL = "Request unsuccessful"
)

const QUERY_TIMEOUT_DURATION = 5 * time.Second

const (
	DefaultPageSize = 25
	MaxPageSize     = 100
)

// Number of recent safety incidents and resource allocations embedded in the
// project dashboard payload.
const DashboardRecentLimit = 5

const (
	JWT_TYPE_ACCESS  = "access"
	JWT_TYPE_REFRESH = "refresh"
)
