package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type MongoDBConfig struct {
	DBHost string
	DBPort string
	DBName string
}

type RedisConfig struct {
	Addr string
}

type KafkaConfig struct {
	BrokerAddress   string
	BrokerTopic     string
	BrokerPartition int
}

type TracingConfig struct {
	CollectorHost string
}

type ImageStorageConfig struct {
	CloudName string
	APIKey    string
	APISecret string
	Folder    string
}

type SMTPConfig struct {
	Sender   string
	Password string
	Host     string
	Port     int
}

type AdminConfig struct {
	Name     string
	Email    string
	Password string
}

type Config struct {
	ServicePort        string
	MetricsPort        string
	Environment        string
	MongoDBConfig      MongoDBConfig
	RedisConfig        RedisConfig
	KafkaConfig        KafkaConfig
	JWTSecret          string
	TracingConfig      TracingConfig
	ImageStorageConfig ImageStorageConfig
	SMTPConfig         SMTPConfig
	AdminConfig        AdminConfig
}

func CreateNewConfig() *Config {
	godotenv.Load(".env")

	conf := Config{
		ServicePort: os.Getenv("SERVICE_PORT"),
		MetricsPort: os.Getenv("METRICS_PORT"),
		Environment: os.Getenv("ENVIRONMENT"),
		MongoDBConfig: MongoDBConfig{
			DBHost: os.Getenv("DB_HOST"),
			DBPort: os.Getenv("DB_PORT"),
			DBName: os.Getenv("DB_NAME"),
		},
		RedisConfig: RedisConfig{
			Addr: os.Getenv("REDIS_ADDR"),
		},
		JWTSecret: os.Getenv("JWT_SECRET"),
		KafkaConfig: KafkaConfig{
			BrokerAddress: os.Getenv("BROKER_ADDRESS"),
			BrokerTopic:   os.Getenv("BROKER_TOPIC"),
		},
		TracingConfig: TracingConfig{
			CollectorHost: os.Getenv("COLLECTOR_HOST"),
		},
		ImageStorageConfig: ImageStorageConfig{
			CloudName: os.Getenv("CLOUDINARY_CLOUD_NAME"),
			APIKey:    os.Getenv("CLOUDINARY_API_KEY"),
			APISecret: os.Getenv("CLOUDINARY_API_SECRET"),
			Folder:    os.Getenv("CLOUDINARY_FOLDER"),
		},
		SMTPConfig: SMTPConfig{
			Sender:   os.Getenv("SMTP_SENDER"),
			Password: os.Getenv("SMTP_PASSWORD"),
			Host:     os.Getenv("SMTP_HOST"),
		},
		AdminConfig: AdminConfig{
			Name:     os.Getenv("ADMIN_NAME"),
			Email:    os.Getenv("ADMIN_EMAIL"),
			Password: os.Getenv("ADMIN_PASSWORD"),
		},
	}

	brokerPartition, _ := strconv.Atoi(os.Getenv("BROKER_PARTITION"))
	conf.KafkaConfig.BrokerPartition = brokerPartition

	smtpPort, _ := strconv.Atoi(os.Getenv("SMTP_PORT"))
	conf.SMTPConfig.Port = smtpPort

	return &conf
}
