package bookingproduct

import "github.com/m04kA/SMC-BookingSlotsService/pkg/dbmetrics"

// DBExecutor поддерживает *sql.DB и *dbmetrics.DB
type DBExecutor = dbmetrics.DBExecutor
