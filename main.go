package main

import (
	"context"
	"log"
	"os"
	"time"

	"qrorder/config"
	httpapi "qrorder/internal/api/http"
	"qrorder/internal/provider"
	"qrorder/internal/service"
	"qrorder/internal/storage"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	db := config.MustInitPostgres()
	defer db.Close()

	if err := applyMigrations(db); err != nil {
		log.Fatal("Failed to apply migrations:", err)
	}

	rdb := config.MustInitRedis()
	defer rdb.Close()

	kafkaWriter := config.NewKafkaWriter("orders")
	defer kafkaWriter.Close()
	kafkaReader := config.NewKafkaReader("orders", "qrorder-agg")
	defer kafkaReader.Close()

	repo := storage.NewPostgresRepository(db)
	cache := storage.NewRedisCache(rdb, time.Hour)
	publisher := storage.NewKafkaPublisher(kafkaWriter)
	translator := provider.NewTranslatorClient(config.TranslatorBaseURL(), config.TranslatorTimeout())

	restaurantSvc := service.NewRestaurantService(repo)
	menuSvc := service.NewMenuService(repo, cache)
	orderSvc := service.NewOrderService(repo, repo, publisher)
	userSvc := service.NewUserService(repo)
	translationSvc := service.NewTranslationService(repo, cache, translator)

	consumer := service.NewConsumer(kafkaReader, cache)
	go consumer.Start(context.Background())

	handler := httpapi.NewHandler(restaurantSvc, menuSvc, orderSvc, userSvc, translationSvc)
	router := httpapi.NewRouter(handler)

	addr := ":" + os.Getenv("PORT")
	if addr == ":" {
		addr = ":8080"
	}
	httpapi.StartServer(addr, router)
}
