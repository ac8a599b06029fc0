package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	appErrors "github.com/aquago/aquago/internal/app/errors"
	"github.com/aquago/aquago/internal/app/models"
	"github.com/aquago/aquago/internal/app/service/clients"
)

// CancelWindow gates the post-checkout cancel action. The countdown is
// recomputed from wall-clock timestamps whenever the window is displayed;
// there is no persistent timer. The deadline here is a UX convenience — the
// backend enforces its own deadline and stays authoritative.
//
// A CancelWindow is owned by a single view and driven from the UI event
// loop; it is not safe for concurrent use.
type CancelWindow struct {
	gateway   clients.GatewayClient
	session   *models.Session
	orderID   uuid.UUID
	createdAt time.Time
	window    time.Duration
	cancelled bool
}

func NewCancelWindow(gateway clients.GatewayClient, session *models.Session, orderID uuid.UUID, createdAt time.Time, window time.Duration) *CancelWindow {
	return &CancelWindow{
		gateway:   gateway,
		session:   session,
		orderID:   orderID,
		createdAt: createdAt,
		window:    window,
	}
}

func (cw *CancelWindow) OrderID() uuid.UUID {
	return cw.orderID
}

// Remaining returns whole seconds left in the window, clamped at zero.
func (cw *CancelWindow) Remaining(now time.Time) int {
	elapsed := int(now.Sub(cw.createdAt) / time.Second)
	remaining := int(cw.window/time.Second) - elapsed
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Offerable reports whether the cancel action should be shown: the countdown
// is still running and the order has not already reached a terminal status.
func (cw *CancelWindow) Offerable(now time.Time, status models.Status) bool {
	if cw.cancelled || status.Terminal() {
		return false
	}
	return cw.Remaining(now) > 0
}

func (cw *CancelWindow) Cancelled() bool {
	return cw.cancelled
}

// Cancel requests the cancellation transition. A repeat call after success
// no-ops, and a backend "already cancelled" answer counts as success —
// nothing about local state is mutated on any other failure.
func (cw *CancelWindow) Cancel(ctx context.Context) error {
	if cw.cancelled {
		return nil
	}

	err := cw.gateway.CancelDelivery(ctx, cw.session, cw.orderID)
	appErr := &appErrors.ResponseCodeError{}
	if err != nil && errors.As(err, appErr) && strings.Contains(strings.ToLower(appErr.Msg()), "already cancelled") {
		cw.cancelled = true
		return nil
	}
	if err != nil {
		return err
	}

	cw.cancelled = true
	return nil
}
