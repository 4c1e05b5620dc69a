// bankwatch tails the account and transfer event streams and prints
// each event, giving operators a live view of account activity.
package main

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/mohammedmokhtar77/Bank-System/internal/config"
	"github.com/mohammedmokhtar77/Bank-System/internal/events"
	redisclient "github.com/mohammedmokhtar77/Bank-System/internal/redis"
)

func main() {
	cfg := config.FromEnv()
	if cfg.RedisAddr == "" {
		log.Fatal("REDIS_ADDR must be set for bankwatch")
	}

	redis, err := redisclient.NewClient(cfg.RedisAddr, "", 0)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redis.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	printEvent := func(ctx context.Context, event events.Event) error {
		data, err := json.Marshal(event.Data)
		if err != nil {
			return err
		}
		log.Printf("%s %s %s", event.Timestamp.Format("15:04:05"), event.Type, data)
		return nil
	}

	consumer, err := os.Hostname()
	if err != nil {
		consumer = "bankwatch"
	}

	for _, stream := range []string{events.AccountEventsStream, events.TransferEventsStream} {
		go func(stream string) {
			subscriber := events.NewSubscriber(redis.Client, events.SubscriberConfig{
				Group:    "bankwatch-group",
				Consumer: consumer,
				Stream:   stream,
				Handler:  printEvent,
			})
			if err := subscriber.Start(ctx); err != nil {
				log.Printf("Subscriber stopped: %v", err)
			}
		}(stream)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan
	log.Println("Shutting down...")
	cancel()
}
