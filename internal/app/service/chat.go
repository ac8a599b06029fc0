package service

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"

	appErrors "github.com/aquago/aquago/internal/app/errors"
	"github.com/aquago/aquago/internal/app/models"
	"github.com/aquago/aquago/internal/app/service/clients"
)

type (
	// ChatService is the per-delivery conversation between the customer and
	// the supplier. History is always refetched in full on a change-feed
	// event rather than patched incrementally.
	ChatService interface {
		Messages(ctx context.Context, session *models.Session, deliveryID uuid.UUID) (*[]models.ChatMessage, error)
		Send(ctx context.Context, session *models.Session, deliveryID uuid.UUID, text string) error
		Subscribe(deliveryID uuid.UUID, onChange func()) (*Subscription, error)
	}
	ChatServiceImpl struct {
		gateway clients.GatewayClient
		feed    Feed
	}
)

func NewChatService(gateway clients.GatewayClient, feed Feed) *ChatServiceImpl {
	return &ChatServiceImpl{gateway: gateway, feed: feed}
}

// Messages returns the delivery's conversation, oldest first.
func (cs *ChatServiceImpl) Messages(ctx context.Context, session *models.Session, deliveryID uuid.UUID) (*[]models.ChatMessage, error) {
	return cs.gateway.ChatMessages(ctx, session, deliveryID)
}

func (cs *ChatServiceImpl) Send(ctx context.Context, session *models.Session, deliveryID uuid.UUID, text string) error {
	if strings.TrimSpace(text) == "" {
		return appErrors.NewWithCode(errors.New("empty chat message"),
			"Message can not be empty", http.StatusUnprocessableEntity)
	}
	return cs.gateway.SendChatMessage(ctx, session, deliveryID, text)
}

// Subscribe watches the change feed for this delivery's messages. onChange
// fires on every event; the caller refetches via Messages.
func (cs *ChatServiceImpl) Subscribe(deliveryID uuid.UUID, onChange func()) (*Subscription, error) {
	return cs.feed.Subscribe(TableChatMessages, Filter{DeliveryID: deliveryID}, func(Event) {
		onChange()
	})
}
