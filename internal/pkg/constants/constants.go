package constants

import "time"

const (
	ViperAPIURLKey             = "api_url"
	ViperListenAddrKey         = "listen_addr"
	ViperFetchTimeoutKey       = "fetch.timeout"
	ViperFetchRetriesKey       = "fetch.retries"
	ViperFetchRetryIntervalKey = "fetch.retry_interval"
	ViperReportFileNameKey     = "report.file_name"
	ViperReportPlaceholderKey  = "report.payback_placeholder"
	ViperReportCompressKey     = "report.compress"
	ViperLogLevelKey           = "log.level"
	ViperLogDevelopmentKey     = "log.development"
	ViperCORSAllowOriginsKey   = "cors.allow_origins"
)

const (
	DefaultAPIURL             = "https://saas-back-v4.onrender.com"
	DefaultListenAddr         = ":8080"
	DefaultFetchTimeout       = 10 * time.Second
	DefaultFetchRetries       = 2
	DefaultFetchRetryInterval = 250 * time.Millisecond
	DefaultReportFileName     = "Triphorium_Energy_Report.pdf"
	DefaultPaybackPlaceholder = "N/A"

	EnvPrefix = "TRIPHORIUM"
)

const (
	CtxKeyRequestID = "request_id"
	HeaderRequestID = "X-Request-ID"
)
