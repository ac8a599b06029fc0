package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"go.uber.org/zap"

	"github.com/aquago/aquago/internal/app/config"
	appErrors "github.com/aquago/aquago/internal/app/errors"
	"github.com/aquago/aquago/internal/app/logger"
	"github.com/aquago/aquago/internal/app/models"
	"github.com/aquago/aquago/internal/app/repository"
	"github.com/aquago/aquago/internal/app/service/clients"
)

type Stage string

func (s Stage) String() string {
	return string(s)
}

const (
	StageNew             Stage = "NEW"
	StageRateSelected    Stage = "RATE_SELECTED"
	StageAddressSelected Stage = "ADDRESS_SELECTED"
	StagePaymentChosen   Stage = "PAYMENT_CHOSEN"
	StageConfirmed       Stage = "CONFIRMED"
	StageAborted         Stage = "ABORTED"
)

// Checkout is the order placement coordinator: a single-use, staged pipeline
// from rate selection to order creation. Each stage is entered only after
// the previous one succeeded; explicit dismissal discards everything and no
// partial state survives. The authoritative order state machine lives in the
// backend — this type only sequences the client-side choreography.
//
// A Checkout is owned by one view and driven from the UI event loop.
type Checkout struct {
	gateway       clients.GatewayClient
	payments      clients.PaymentLinkClient
	selectionRepo repository.SelectionRepository
	locationsRepo repository.RecentLocationRepository
	validate      *validator.Validate
	locator       Locator
	geocoder      Geocoder
	session       *models.Session
	cancelWindow  time.Duration

	stage          Stage
	supplier       *models.Supplier
	rate           *models.RateTier
	address        *models.Address
	paymentMethod  string
	paymentDetails string
	paymentFlow    *PaymentFlow
	orderID        uuid.UUID
}

func NewCheckout(
	cfg config.AppConfig,
	gateway clients.GatewayClient,
	payments clients.PaymentLinkClient,
	selectionRepo repository.SelectionRepository,
	locationsRepo repository.RecentLocationRepository,
	validate *validator.Validate,
	locator Locator,
	geocoder Geocoder,
	session *models.Session,
) *Checkout {
	return &Checkout{
		gateway:       gateway,
		payments:      payments,
		selectionRepo: selectionRepo,
		locationsRepo: locationsRepo,
		validate:      validate,
		locator:       locator,
		geocoder:      geocoder,
		session:       session,
		cancelWindow:  time.Duration(cfg.CancelWindowSec) * time.Second,
		stage:         StageNew,
	}
}

func (co *Checkout) Stage() Stage {
	return co.stage
}

// SelectRate picks a supplier and one of its rate tiers. Offline suppliers
// are not purchasable, and the tier must be one the supplier actually
// offers. The selection is also cached locally so a reopened flow can
// restore it.
func (co *Checkout) SelectRate(ctx context.Context, supplier *models.Supplier, rate models.RateTier) error {
	if err := co.ensureStage(StageNew, StageRateSelected); err != nil {
		return err
	}
	if !supplier.Online {
		return appErrors.NewWithCode(errors.New("supplier "+supplier.ID.String()+" is offline"),
			"This supplier is currently offline", http.StatusConflict)
	}
	if !supplierOffersRate(supplier, rate) {
		return appErrors.NewWithCode(errors.New("rate not offered by supplier"),
			"Selected volume is not offered by this supplier", http.StatusUnprocessableEntity)
	}

	co.supplier = supplier
	co.rate = &rate
	co.stage = StageRateSelected

	// Device-side convenience cache; a write failure never blocks checkout.
	selection := &repository.Selection{
		ContainerID: supplier.ID,
		Name:        supplier.Name,
		Volume:      rate.Volume,
		Price:       rate.Price,
		SavedAt:     time.Now(),
	}
	if err := co.selectionRepo.Save(ctx, selection); err != nil {
		logger.Log.Warn("failed to cache selected container", zap.Error(err))
	}
	return nil
}

// RestoreSelection loads the cached selected container, if any.
func (co *Checkout) RestoreSelection(ctx context.Context) (*repository.Selection, error) {
	return co.selectionRepo.Load(ctx)
}

// RecentLocations lists previously saved locations, newest first, for the
// address picker's suggestions.
func (co *Checkout) RecentLocations(ctx context.Context) (*[]repository.RecentLocation, error) {
	return co.locationsRepo.List(ctx)
}

// Addresses lists the user's delivery addresses, default first.
func (co *Checkout) Addresses(ctx context.Context) (*[]models.Address, error) {
	addresses, err := co.gateway.Addresses(ctx, co.session)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(*addresses, func(i, j int) bool {
		return (*addresses)[i].Default && !(*addresses)[j].Default
	})
	return addresses, nil
}

func (co *Checkout) SelectAddress(address *models.Address) error {
	if err := co.ensureStage(StageRateSelected, StageAddressSelected); err != nil {
		return err
	}
	if address == nil {
		return appErrors.NewWithCode(errors.New("no address selected"),
			"Please select a delivery address", http.StatusUnprocessableEntity)
	}
	co.address = address
	co.stage = StageAddressSelected
	return nil
}

// CreateAddress is the nested add-address sub-flow. Coordinates come either
// from the device location (reverse-geocoded into the address text when the
// user left it blank) or from forward-geocoding the typed address.
func (co *Checkout) CreateAddress(ctx context.Context, title, addressText string, useDeviceLocation bool) (*models.Address, error) {
	var point orb.Point
	var err error

	if useDeviceLocation {
		point, err = co.locator.Current(ctx)
		if err != nil {
			return nil, appErrors.NewWithCode(err, "Failed to get current location", http.StatusFailedDependency)
		}
		if strings.TrimSpace(addressText) == "" {
			addressText, err = co.geocoder.Reverse(ctx, point)
			if err != nil {
				return nil, appErrors.NewWithCode(err, "Failed to resolve address for location", http.StatusFailedDependency)
			}
		}
	}

	if err = validateAddressForm(co.validate, title, addressText); err != nil {
		return nil, err
	}

	if !useDeviceLocation {
		point, err = co.geocoder.Forward(ctx, addressText)
		if err != nil {
			return nil, appErrors.NewWithCode(err, "Address not found", http.StatusUnprocessableEntity)
		}
	}

	if err = co.gateway.AddAddress(ctx, co.session, title, addressText, point, false); err != nil {
		return nil, err
	}

	// Local search history, best effort.
	if err = co.locationsRepo.Add(ctx, title, addressText, point); err != nil {
		logger.Log.Warn("failed to record recent location", zap.Error(err))
	}

	// The RPC returns nothing; refetch and locate the new row.
	addresses, err := co.gateway.Addresses(ctx, co.session)
	if err != nil {
		return nil, err
	}
	for i := range *addresses {
		address := (*addresses)[i]
		if address.Title == title && address.Address == addressText {
			return &address, nil
		}
	}
	return nil, appErrors.New(errors.New("created address not found in refetch"), "Failed to save address")
}

func (co *Checkout) WalletBalance(ctx context.Context) (float64, error) {
	return co.gateway.WalletBalance(ctx, co.session)
}

// ChooseWallet settles on wallet payment after a courtesy sufficiency
// check. The backend remains the final authority on the debit.
func (co *Checkout) ChooseWallet(ctx context.Context) error {
	if err := co.ensureStage(StageAddressSelected, StagePaymentChosen); err != nil {
		return err
	}
	balance, err := co.gateway.WalletBalance(ctx, co.session)
	if err != nil {
		return err
	}
	if balance < co.rate.Price {
		return appErrors.NewWithCode(
			fmt.Errorf("wallet balance %.2f below price %.2f", balance, co.rate.Price),
			"Insufficient wallet balance", http.StatusPaymentRequired)
	}
	co.paymentMethod = models.PaymentMethodWallet
	co.paymentDetails = ""
	co.paymentFlow = nil
	co.stage = StagePaymentChosen
	return nil
}

// TopUpWallet is the top-up sub-flow offered when the balance is short.
func (co *Checkout) TopUpWallet(ctx context.Context, amount float64) error {
	if err := validateTopUpAmount(co.validate, amount); err != nil {
		return err
	}
	return co.gateway.TopUpWallet(ctx, co.session, amount)
}

// ChooseUPI starts the external payment hand-off and returns the link URL
// for the embedding UI to open. The stage advances, but PlaceOrder still
// requires the flow to have settled via CompleteUPIPayment.
func (co *Checkout) ChooseUPI(ctx context.Context, upiID, phone string) (string, error) {
	if err := co.ensureStage(StageAddressSelected, StagePaymentChosen); err != nil {
		return "", err
	}
	flow, err := NewPaymentFlow(co.payments, upiID, co.rate.Price, phone)
	if err != nil {
		return "", err
	}
	linkURL, err := flow.Start(ctx)
	if err != nil {
		return "", err
	}
	co.paymentMethod = models.PaymentMethodUPI
	co.paymentDetails = flow.Details()
	co.paymentFlow = flow
	co.stage = StagePaymentChosen
	return linkURL, nil
}

// CompleteUPIPayment forwards the user's completion assertion to the
// confirmation endpoint.
func (co *Checkout) CompleteUPIPayment(ctx context.Context) error {
	if co.paymentFlow == nil {
		return appErrors.NewWithCode(errors.New("no payment flow in progress"),
			"Payment not started", http.StatusConflict)
	}
	return co.paymentFlow.Complete(ctx)
}

// PlaceOrder issues the single order-creation request. On failure the stage
// stays at PAYMENT_CHOSEN so the user can retry; on success the checkout is
// finished and the returned CancelWindow guards the new order.
func (co *Checkout) PlaceOrder(ctx context.Context) (*CancelWindow, error) {
	if co.stage != StagePaymentChosen {
		return nil, co.stageError(StagePaymentChosen)
	}
	if co.paymentMethod == models.PaymentMethodUPI && !co.paymentFlow.Settled() {
		return nil, appErrors.NewWithCode(errors.New("upi payment not settled"),
			"Complete the payment first", http.StatusPaymentRequired)
	}

	order := &models.Order{
		UserUID:        co.session.UserUID,
		SupplierID:     co.supplier.ID,
		Volume:         co.rate.Volume,
		Amount:         co.rate.Price,
		Address:        co.address.Address,
		Location:       co.address.Location,
		PaymentMethod:  co.paymentMethod,
		PaymentDetails: co.paymentDetails,
	}
	orderID, err := co.gateway.CreateDelivery(ctx, co.session, order)
	if err != nil {
		return nil, err
	}

	co.orderID = orderID
	co.stage = StageConfirmed
	logger.Log.Info("order created",
		zap.String("order_id", orderID.String()),
		zap.String("payment_method", co.paymentMethod))

	return NewCancelWindow(co.gateway, co.session, orderID, time.Now(), co.cancelWindow), nil
}

func (co *Checkout) OrderID() uuid.UUID {
	return co.orderID
}

// Abort discards all in-progress selections, including the device-side
// selection cache. The checkout can not be reused afterwards.
func (co *Checkout) Abort(ctx context.Context) {
	co.supplier = nil
	co.rate = nil
	co.address = nil
	co.paymentMethod = ""
	co.paymentDetails = ""
	co.paymentFlow = nil
	co.stage = StageAborted
	if err := co.selectionRepo.Clear(ctx); err != nil {
		logger.Log.Warn("failed to clear selection cache", zap.Error(err))
	}
}

// ensureStage checks the pipeline position. Re-entering the stage being set
// is allowed so the user can change a selection before moving on.
func (co *Checkout) ensureStage(want, setting Stage) error {
	if co.stage == want || co.stage == setting {
		return nil
	}
	return co.stageError(want)
}

func (co *Checkout) stageError(want Stage) error {
	msg := fmt.Sprintf("checkout is at %s, expected %s", co.stage, want)
	return appErrors.NewWithCode(errors.New(msg), msg, http.StatusConflict)
}

func supplierOffersRate(supplier *models.Supplier, rate models.RateTier) bool {
	for _, offered := range supplier.Rates {
		if offered == rate {
			return true
		}
	}
	return false
}
