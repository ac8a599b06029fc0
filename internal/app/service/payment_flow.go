package service

import (
	"context"
	"errors"
	"math/rand"
	"net/http"
	"strconv"

	appErrors "github.com/aquago/aquago/internal/app/errors"
	"github.com/aquago/aquago/internal/app/service/clients"
)

// PaymentFlow is the UPI hand-off: request a hosted payment link, let the
// embedding UI open it, then confirm after the user asserts completion.
// There is no server push for completion in this design — the confirmation
// endpoint is the only backstop, so Complete refuses to settle without it.
//
// Owned by a single checkout and driven from the UI event loop.
type PaymentFlow struct {
	client    clients.PaymentLinkClient
	upiID     string
	amount    float64
	phone     string
	linkID    string
	linkURL   string
	settled   bool
	newLinkID func() string
}

func NewPaymentFlow(client clients.PaymentLinkClient, upiID string, amount float64, phone string) (*PaymentFlow, error) {
	if err := ValidateUPIID(upiID); err != nil {
		return nil, err
	}
	return &PaymentFlow{
		client:    client,
		upiID:     upiID,
		amount:    amount,
		phone:     phone,
		newLinkID: defaultLinkID,
	}, nil
}

// defaultLinkID mirrors the correlation id shape the payment service
// expects: a short random numeric string.
func defaultLinkID() string {
	return strconv.Itoa(rand.Intn(100000))
}

// Start requests a payment link. The returned URL is to be opened in the
// embedded browser surface; the flow keeps the (possibly server-reassigned)
// link id for confirmation.
func (pf *PaymentFlow) Start(ctx context.Context) (string, error) {
	link, err := pf.client.CreateLink(ctx, pf.newLinkID(), pf.amount, pf.phone)
	if err != nil {
		return "", err
	}
	pf.linkID = link.LinkID
	pf.linkURL = link.LinkURL
	return link.LinkURL, nil
}

// Complete is the user-asserted completion signal. It settles only if the
// confirmation endpoint agrees; a user can tap "Payment Completed" without
// having paid, and this call is what catches that.
func (pf *PaymentFlow) Complete(ctx context.Context) error {
	if pf.settled {
		return nil
	}
	if pf.linkID == "" {
		return appErrors.NewWithCode(errors.New("payment flow not started"),
			"Payment not started", http.StatusConflict)
	}
	ok, err := pf.client.ConfirmOrder(ctx, pf.linkID)
	if err != nil {
		return err
	}
	if !ok {
		return appErrors.NewWithCode(errors.New("payment not confirmed for link "+pf.linkID),
			"Payment failed", http.StatusPaymentRequired)
	}
	pf.settled = true
	return nil
}

func (pf *PaymentFlow) Settled() bool {
	return pf.settled
}

func (pf *PaymentFlow) LinkURL() string {
	return pf.linkURL
}

// Details is the opaque payment-details payload stored on the order.
func (pf *PaymentFlow) Details() string {
	return pf.upiID
}
