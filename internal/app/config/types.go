package config

type DriverConfig struct {
	PostgresDB PostgresDB
	Redis      Redis
	RabbitMQ   RabbitMQ
	SMTP       SMTP
	Minio      Minio
	Logger     Logger
}

type PostgresDB struct {
	Host     string
	Port     string
	DbName   string
	Username string
	Password string
	SSLMode  string
}

type Redis struct {
	Host     string
	Port     string
	Password string
}

type RabbitMQ struct {
	Host     string
	Port     string
	Username string
	Password string
}

type SMTP struct {
	Host        string
	Port        int
	Username    string
	Password    string
	EmailSender string
}

type Minio struct {
	Host       string
	Port       string
	Username   string
	Password   string
	BucketName string
	UseSSL     bool
}

type Logger struct {
	Level               string
	OutputFileName      string
	OutputErrorFileName string
}
