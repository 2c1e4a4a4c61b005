// Worker consumes telemetry events from Kafka and pushes them to Loki, and
// periodically purges expired notifications when DATABASE_URL is set.
// Set KAFKA_BROKERS, TELEMETRY_KAFKA_TOPIC, KAFKA_GROUP_ID, and LOKI_URL. GRPC_ADDR is required by config but unused (e.g. set to :0).
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/segmentio/kafka-go"

	"teamspace/backend/internal/config"
	"teamspace/backend/internal/db"
	notificationrepo "teamspace/backend/internal/notification/repository"
	notificationservice "teamspace/backend/internal/notification/service"
	"teamspace/backend/internal/telemetry/loki"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	brokers := cfg.TelemetryKafkaBrokersList()
	if len(brokers) == 0 {
		log.Fatal("worker: KAFKA_BROKERS is required")
	}
	if cfg.LokiURL == "" {
		log.Fatal("worker: LOKI_URL is required")
	}

	topic := cfg.TelemetryKafkaTopic
	if topic == "" {
		topic = "teamspace-telemetry"
	}
	groupID := cfg.KafkaGroupID
	if groupID == "" {
		groupID = "teamspace-telemetry-worker"
	}

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        brokers,
		Topic:          topic,
		GroupID:        groupID,
		MinBytes:       1,
		MaxBytes:       10e6, // 10MB
		MaxWait:        1 * time.Second,
		CommitInterval: time.Second,
	})
	defer reader.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		log.Println("worker: shutting down...")
		cancel()
	}()

	if cfg.DatabaseURL != "" {
		conn, err := db.Open(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("worker: db: %v", err)
		}
		defer conn.Close()
		notifications := notificationservice.NewService(notificationrepo.NewPostgresRepository(conn))
		go runCleanup(ctx, notifications, cfg.CleanupInterval())
	} else {
		log.Println("worker: DATABASE_URL not set, skipping notification cleanup")
	}

	lokiClient := loki.NewClient(cfg.LokiURL)

	log.Printf("worker: consuming from %s (group %s), pushing to %s", topic, groupID, cfg.LokiURL)

	for {
		msg, err := reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Println("worker: stopped")
				return
			}
			log.Printf("worker: kafka read error: %v", err)
			continue
		}

		pushCtx, pushCancel := context.WithTimeout(ctx, 10*time.Second)
		if err := lokiClient.PushEventJSON(pushCtx, msg.Value); err != nil {
			log.Printf("worker: loki push failed: %v", err)
		}
		pushCancel()
	}
}

// runCleanup deletes expired notifications on a fixed interval until ctx is done.
func runCleanup(ctx context.Context, notifications *notificationservice.Service, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cleanupCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
			n, err := notifications.CleanupExpired(cleanupCtx)
			cancel()
			if err != nil {
				log.Printf("worker: notification cleanup failed: %v", err)
				continue
			}
			if n > 0 {
				log.Printf("worker: purged %d expired notifications", n)
			}
		}
	}
}
