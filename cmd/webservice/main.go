package main

import (
	"context"
	"fmt"
	"log"

	redisdriver "github.com/go-redis/redis/v8"
	"github.com/noyo-commerce/storefront-service/config"
	"github.com/noyo-commerce/storefront-service/internal/app"
	"github.com/noyo-commerce/storefront-service/internal/infrastructure/cache"
	"github.com/noyo-commerce/storefront-service/internal/infrastructure/database/mongodb"
	"github.com/noyo-commerce/storefront-service/internal/infrastructure/message-queue/kafka"
	kafkadriver "github.com/segmentio/kafka-go"
)

func main() {
	config := config.CreateNewConfig()

	db, err := mongodb.ConnectToMongoDB(fmt.Sprintf("mongodb://%s:%s", config.MongoDBConfig.DBHost, config.MongoDBConfig.DBPort), config.MongoDBConfig.DBName)
	if err != nil {
		log.Fatalf("Failed to connect to the database: %v", err)
	}
	defer db.Client().Disconnect(context.Background())

	var redisClient *redisdriver.Client
	if config.RedisConfig.Addr != "" {
		redisClient, err = cache.ConnectToRedis(config.RedisConfig.Addr)
		if err != nil {
			log.Fatalf("Failed to connect to redis: %v", err)
		}
	}

	var kafkaProducer *kafkadriver.Conn
	if config.KafkaConfig.BrokerAddress != "" {
		kafkaProducer = kafka.CreateKafkaProducer(config)
	}

	server := app.App{
		Mongo:  db,
		Redis:  redisClient,
		Kafka:  kafkaProducer,
		Config: config,
	}

	server.Start()
}
