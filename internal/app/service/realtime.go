package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/aquago/aquago/internal/app/config"
	"github.com/aquago/aquago/internal/app/logger"
)

//go:generate easyjson realtime.go

// Change-feed tables the client cares about.
const (
	TableWaterContainers = "water_containers"
	TableWaterDeliveries = "water_deliveries"
	TableChatMessages    = "chat_messages"
)

const feedChannelPrefix = "changes:"

type (
	// Event is a row-change notification. The client never inspects it
	// beyond filtering: every event is only a trigger to refetch, so
	// correctness rests on read idempotence rather than event ordering.
	//easyjson:json
	Event struct {
		Table      string `json:"table"`
		Kind       string `json:"event"`
		DeliveryID string `json:"delivery_id,omitempty"`
	}

	// Filter restricts a subscription to rows of one delivery. The zero
	// value matches everything.
	Filter struct {
		DeliveryID uuid.UUID
	}

	// Feed is the realtime change-feed subscription surface.
	Feed interface {
		Subscribe(table string, filter Filter, onChange func(Event)) (*Subscription, error)
		Close() error
	}

	Subscription struct {
		cancel func()
	}

	RedisFeed struct {
		client *redis.Client
	}
)

func (f Filter) matches(event Event) bool {
	if f.DeliveryID == uuid.Nil {
		return true
	}
	return event.DeliveryID == f.DeliveryID.String()
}

// Unsubscribe tears the subscription down. Safe to call more than once.
func (s *Subscription) Unsubscribe() {
	s.cancel()
}

func NewRedisFeed(c config.AppConfig) *RedisFeed {
	client := redis.NewClient(&redis.Options{Addr: c.RedisAddr})
	return &RedisFeed{client: client}
}

// Subscribe listens on the table's change channel and invokes onChange for
// every matching event until Unsubscribe. The handler runs on the
// subscription's goroutine and is expected to do nothing but schedule a
// refetch.
func (rf *RedisFeed) Subscribe(table string, filter Filter, onChange func(Event)) (*Subscription, error) {
	ctx, cancel := context.WithCancel(context.Background())
	pubsub := rf.client.Subscribe(ctx, feedChannelPrefix+table)

	// Force the subscription to be established before returning.
	if _, err := pubsub.Receive(ctx); err != nil {
		cancel()
		_ = pubsub.Close()
		return nil, fmt.Errorf("subscribe to %s: %w", table, err)
	}

	go func() {
		defer pubsub.Close()
		ch := pubsub.Channel()
		for {
			select {
			case msg, ok := <-ch:
				if !ok {
					return
				}
				event := Event{}
				if err := event.UnmarshalJSON([]byte(msg.Payload)); err != nil {
					logger.Log.Warn("malformed change-feed event",
						zap.String("table", table), zap.Error(err))
					continue
				}
				if filter.matches(event) {
					onChange(event)
				}
			case <-ctx.Done():
				return
			}
		}
	}()

	logger.Log.Debug("change-feed subscription opened", zap.String("table", table))
	return &Subscription{cancel: cancel}, nil
}

func (rf *RedisFeed) Close() error {
	return rf.client.Close()
}
