package constants

import "time"

const (
	ExternalAPITimeout = 10 * time.Second
	APIMaxConnsPerHost = 20
	RequestTimeout     = 30 * time.Second
	SyncRunTimeout     = 10 * time.Minute
)

const (
	DBMaxOpenConns    = 1
	DBMaxIdleConns    = 1
	DBConnMaxLifetime = 1 * time.Hour
	DBMaxIdleTime     = 10 * time.Minute
	DBBusyTimeoutMS   = 5000
)

const (
	ShutdownTimeout = 5 * time.Second
)

const (
	RunIDLength = 12
)
