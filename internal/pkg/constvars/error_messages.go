package constvars

// Validation messages mapped by validator tag.
var CustomValidationErrorMessages = map[string]string{
	"required":         "is required",
	"email":            "must be a valid email",
	"alphanum":         "must contain only alphanumeric characters",
	"min":              "must be at least %s characters long",
	"max":              "maximum at %s characters long",
	"oneof":            "must be one of: %s",
	"password":         "must be at least 8 characters long, contain at least one special character, and one uppercase letter",
	"appointment_date": "must be a calendar date formatted as YYYY-MM-DD and not in the past",
	"datetime":         "must be a calendar date formatted as YYYY-MM-DD",
	"slot_time":        "must be one of the 15-minute slots between 09:00 and 18:00",
	"phone_number":     "must be a valid international phone number",
}

var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"oneof": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientInvalidUsernameOrPassword     = "invalid email or password"
	ErrClientEmailAlreadyExists            = "email already used"
	ErrClientPasswordsDoNotMatch           = "passwords do not match"
	ErrClientSlotAlreadyBooked             = "the selected time slot has just been booked, please pick another one"
	ErrClientServiceNotAvailable           = "the selected service is not available"
	ErrClientAppointmentNotFound           = "appointment not found"
	ErrClientNotificationNotFound          = "notification not found"
	ErrClientPatientNotFound               = "patient not found"
	ErrClientInvalidStatusTransition       = "the appointment cannot be moved to that status"
	ErrClientInvalidImageFormat            = "profile picture must be a JPEG or PNG smaller than the upload limit"
)

// Error messages for developers
const (
	ErrDevInvalidInput             = "invalid input"
	ErrDevValidationFailed         = "validation failed"
	ErrDevInvalidRequestPayload    = "invalid request payload"
	ErrDevCannotParseJSON          = "cannot parse JSON"
	ErrDevCannotParseDate          = "cannot parse date"
	ErrDevCannotParseMultipartForm = "cannot parse multipart form"
	ErrDevCannotMarshalJSON        = "cannot marshal JSON"
	ErrDevMissingRequestID         = "request id not found in context"
	ErrDevMissingSessionData       = "session data not found in context"
	ErrDevCannotParseSessionData   = "cannot parse session data"

	ErrDevFailedToHashPassword = "failed to hash password"
	ErrDevInvalidCredentials   = "invalid credentials"
	ErrDevEmailAlreadyExists   = "email already exists"
	ErrDevPasswordsDoNotMatch  = "passwords do not match"
	ErrDevUserNotExists        = "user does not exist"

	ErrDevAuthSigningMethod         = "unexpected signing method"
	ErrDevAuthTokenInvalid          = "invalid token"
	ErrDevAuthTokenMissing          = "token missing"
	ErrDevAuthInvalidSession        = "invalid session"
	ErrDevAuthGenerateToken         = "failed to generate token"
	ErrDevAuthTokenInvalidOrExpired = "token invalid or expired"

	ErrDevDBFailedToFindData       = "failed to find data in database"
	ErrDevDBFailedToInsertData     = "failed to insert data into database"
	ErrDevDBFailedToUpdateData     = "failed to update data in database"
	ErrDevDBFailedToDeleteData     = "failed to delete data from database"
	ErrDevDBFailedToIterateDataset = "failed to iterate dataset from database"
	ErrDevDBSlotUniqueViolation    = "conditional insert rejected: slot already taken"
	ErrDevDBFailedToBeginTx        = "failed to begin database transaction"
	ErrDevDBFailedToCommitTx       = "failed to commit database transaction"

	ErrDevRedisGetNoData      = "failed to get data from redis with key: %s"
	ErrDevRedisSetData        = "failed to set data into redis"
	ErrDevRedisGetData        = "failed to get data from redis"
	ErrDevRedisDeleteData     = "failed to delete data from redis"
	ErrDevRedisUnlock         = "failed to release redis lock"
	ErrDevRedisLockNotOwned   = "lock not owned by this client"
	ErrDevReservationDayLock  = "failed to acquire reservation day lock"
	ErrDevServerDeadline      = "deadline exceeded"
	ErrDevServerProcess       = "failed to process request"
	ErrDevServerParseSession  = "failed to parse session data"
	ErrDevStatusTransition    = "appointment status transition not allowed"
	ErrDevNotificationNotOwn  = "notification does not belong to the caller"
	ErrDevAppointmentNotFound = "appointment not found"

	ErrDevRabbitMQPublishMessage = "failed to publish message to queue: %s"
	ErrDevRabbitMQConsumeQueue   = "failed to consume queue: %s"

	ErrDevSMTPSendEmail = "failed to send email through host: %s"

	ErrDevMinioFailedToCreateObject = "failed to create object in bucket: %s"
	ErrDevMinioFailedToPresignURL   = "failed to presign object URL in bucket: %s"
)

const (
	ResponseUnknown = "unknown"
)
