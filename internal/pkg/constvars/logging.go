package constvars

const (
	LoggingRequestIDKey          = "request_id"
	LoggingSessionDataKey        = "session_data"
	LoggingQueryParamsKey        = "query_params"
	LoggingRequestKey            = "request"
	LoggingResponseKey           = "response"
	LoggingResponseLengthKey     = "response_length"
	LoggingMethodKey             = "method"
	LoggingEndpointKey           = "endpoint"
	LoggingRemoteAddrKey         = "remote_addr"
	LoggingUserAgentKey          = "user_agent"
	LoggingQueryKey              = "query"
	LoggingStatusCodeKey         = "status_code"
	LoggingDurationKey           = "duration"
	LoggingSuccessKey            = "success"
	LoggingRedisKey              = "redis_key"
	LoggingLockValueKey          = "lock_value"
	LoggingLockExpirationTimeKey = "lock_expiration_time"
	LoggingAppointmentIDKey      = "appointment_id"
	LoggingAppointmentDateKey    = "appointment_date"
	LoggingAppointmentTimeKey    = "appointment_time"
	LoggingNotificationIDKey     = "notification_id"
	LoggingUserIDKey             = "user_id"
	LoggingPatientIDKey          = "patient_id"
	LoggingQueueKey              = "queue"
)
