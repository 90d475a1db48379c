package config

type InternalConfig struct {
	App App
	JWT JWT
}

type App struct {
	Env                                  string
	Port                                 string
	Version                              string
	Address                              string
	Timezone                             string
	EndpointPrefix                       string
	ClinicEmail                          string
	RabbitMQBookingQueue                 string
	ReminderWorkerCronSpec               string
	MaxRequests                          int
	ShutdownTimeout                      int
	SessionExpTimeInHour                 int
	RequestBodyLimitInMegabyte           int
	MinioProfilePictureMaxUploadSizeInMB int64
}

type JWT struct {
	Secret        string
	ExpTimeInHour int
}
