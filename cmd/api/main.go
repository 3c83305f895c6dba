package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/example/ec-storefront/internal/api"
	"github.com/example/ec-storefront/internal/cart"
	"github.com/example/ec-storefront/internal/infrastructure/kafka"
	"github.com/example/ec-storefront/internal/infrastructure/store"
	"github.com/example/ec-storefront/internal/query"
)

func main() {
	// .env is optional; real deployments configure via the environment
	_ = godotenv.Load()

	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	log := logrus.WithField("component", "main")

	port := getEnv("PORT", "3000")
	dataDir := getEnv("DATA_DIR", "data")
	webDir := os.Getenv("WEB_DIR")

	log.Info("========================================")
	log.Info("EC Storefront API")
	log.Info("========================================")
	log.Infof("Data dir: %s", dataDir)

	fileStore := store.NewFileStore(dataDir)

	// Fail fast on unreadable fixtures instead of 500ing every request
	if _, err := fileStore.LoadProducts(); err != nil {
		log.WithError(err).Fatal("Failed to load product catalog")
	}
	if _, err := fileStore.LoadDeliveryOptions(); err != nil {
		log.WithError(err).Fatal("Failed to load delivery options")
	}

	// Cart event publishing is optional; only wired when a broker is set
	var publisher cart.EventPublisher
	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		topic := getEnv("KAFKA_TOPIC", "cart-events")
		producer := kafka.NewProducer(strings.Split(brokers, ","), topic)
		defer producer.Close()
		publisher = producer
		log.Infof("Kafka: %s (topic %s)", brokers, topic)
	}

	cartSvc := cart.NewService(fileStore, publisher)
	queries := query.NewHandler(fileStore)
	handlers := api.NewHandlers(cartSvc, queries)
	router := api.NewRouter(handlers, webDir)

	server := &http.Server{
		Addr:    ":" + port,
		Handler: router,
	}

	go func() {
		log.Infof("Server started on :%s", port)
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			log.WithError(err).Fatal("Server error")
		}
	}()

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Info("Shutting down...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	server.Shutdown(shutdownCtx)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
