package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/example/shopvista/internal/email"
	"github.com/example/shopvista/internal/infrastructure/kafka"
	"github.com/example/shopvista/internal/notification"
	"github.com/example/shopvista/internal/order"
	"github.com/example/shopvista/internal/storage"
)

type config struct {
	KafkaBrokers []string `env:"KAFKA_BROKERS" envDefault:"localhost:9092"`
	KafkaTopic   string   `env:"KAFKA_TOPIC" envDefault:"shopvista-events"`
	Group        string   `env:"CONSUMER_GROUP" envDefault:"email-notifier"`
	DataDir      string   `env:"DATA_DIR" envDefault:"./data"`
	SMTPHost     string   `env:"SMTP_HOST" envDefault:"localhost"`
	SMTPPort     string   `env:"SMTP_PORT" envDefault:"1025"`
	SMTPFrom     string   `env:"SMTP_FROM" envDefault:"orders@shopvista.example"`
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	_ = godotenv.Load()

	var cfg config
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("[Notifier] Failed to parse configuration: %v", err)
	}

	log.Println("[Notifier] ========================================")
	log.Println("[Notifier] ShopVista - Order Email Notifier")
	log.Println("[Notifier] ========================================")
	log.Printf("[Notifier] Kafka: %v", cfg.KafkaBrokers)
	log.Printf("[Notifier] Topic: %s", cfg.KafkaTopic)
	log.Printf("[Notifier] Group: %s", cfg.Group)
	log.Printf("[Notifier] SMTP: %s:%s", cfg.SMTPHost, cfg.SMTPPort)

	// The notifier reads the same order log the API writes so the email
	// can include the delivery address.
	fs, err := storage.NewFileStore(cfg.DataDir)
	if err != nil {
		log.Fatalf("[Notifier] Failed to open storage: %v", err)
	}
	orders := order.NewLog(ctx, fs, order.StorageKey)

	emailSvc := email.NewService(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPFrom)
	handler := notification.NewHandler(emailSvc, orders)

	consumer := kafka.NewConsumer(cfg.KafkaBrokers, cfg.KafkaTopic, cfg.Group)
	defer consumer.Close()

	go func() {
		log.Println("[Notifier] Starting event consumer...")
		if err := consumer.Consume(ctx, handler.HandleEvent); err != nil {
			if ctx.Err() == nil {
				log.Printf("[Notifier] Consumer error: %v", err)
			}
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[Notifier] Shutting down...")
	cancel()
}
