package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

type (
	// RateTier is a volume/price pairing offered by a supplier.
	RateTier struct {
		Volume int     `json:"volume"`
		Price  float64 `json:"price"`
	}

	// Supplier is a read-only snapshot of a water container. The client never
	// mutates one; refreshes come from refetching after change-feed events.
	Supplier struct {
		ID              uuid.UUID  `json:"id"`
		Name            string     `json:"name"`
		Location        orb.Point  `json:"-"`
		Address         string     `json:"address"`
		Capacity        int        `json:"capacity"`
		AvailableVolume int        `json:"available_volume"`
		Online          bool       `json:"is_online"`
		Rates           []RateTier `json:"rates"`
		ContactNumber   string     `json:"contact_number,omitempty"`
	}

	Address struct {
		ID       uuid.UUID `json:"id"`
		UserUID  uuid.UUID `json:"user_id"`
		Title    string    `json:"title"`
		Address  string    `json:"address"`
		Location orb.Point `json:"-"`
		Default  bool      `json:"is_default"`
	}

	Order struct {
		ID              uuid.UUID `json:"id"`
		UserUID         uuid.UUID `json:"user_id"`
		SupplierID      uuid.UUID `json:"container_id"`
		Volume          int       `json:"volume"`
		Amount          float64   `json:"amount"`
		Address         string    `json:"address"`
		Location        orb.Point `json:"-"`
		PaymentMethod   string    `json:"payment_method"`
		PaymentDetails  string    `json:"payment_details,omitempty"`
		Status          Status    `json:"status"`
		SupplierContact string    `json:"supplier_contact,omitempty"`
		CreatedAt       time.Time `json:"created_at"`
	}

	WalletBalance struct {
		Balance float64 `json:"balance"`
	}

	ChatMessage struct {
		ID         uuid.UUID `json:"id"`
		DeliveryID uuid.UUID `json:"delivery_id"`
		Supplier   bool      `json:"is_supplier"`
		Text       string    `json:"message"`
		CreatedAt  time.Time `json:"created_at"`
	}

	Profile struct {
		UserUID uuid.UUID `json:"id"`
		Name    string    `json:"name"`
		Email   string    `json:"email"`
		Phone   string    `json:"phone"`
	}

	// Session is the explicitly threaded replacement for the app's old global
	// current-user state. Created at sign-in, persisted locally, torn down at
	// sign-out.
	Session struct {
		UserUID   uuid.UUID `db:"user_uuid"`
		Email     string    `db:"email"`
		Token     string    `db:"token"`
		ExpiresAt time.Time `db:"expires_at"`
	}
)

type Status string

func (s Status) String() string {
	return string(s)
}

// Terminal reports whether the order can no longer be cancelled.
func (s Status) Terminal() bool {
	return s == COMPLETED || s == CANCELLED
}

const (
	PENDING   Status = "pending"
	CONFIRMED Status = "confirmed"
	COMPLETED Status = "completed"
	CANCELLED Status = "cancelled"
)

const (
	PaymentMethodWallet = "wallet"
	PaymentMethodUPI    = "upi"
)
