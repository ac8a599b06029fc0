package clients

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/sethgrid/pester"
	"go.uber.org/ratelimit"

	"github.com/aquago/aquago/internal/app/config"
	appContext "github.com/aquago/aquago/internal/app/context"
	appErrors "github.com/aquago/aquago/internal/app/errors"
)

type (
	// PaymentLinkClient fronts the payment-gateway service that issues
	// hosted payment links. It is a separate endpoint from the backend
	// gateway and has exactly two operations: create a link for an amount,
	// and confirm a link after the user asserts completion.
	PaymentLinkClient interface {
		CreateLink(ctx context.Context, linkID string, amount float64, customerPhone string) (*PaymentLinkDto, error)
		ConfirmOrder(ctx context.Context, linkID string) (bool, error)
	}

	PaymentLinkClientImpl struct {
		ServiceURL   string
		pesterClient *pester.Client
		rateLimiter  ratelimit.Limiter
	}

	//easyjson:json
	PaymentLinkDto struct {
		LinkURL string `json:"link_url"`
		LinkID  string `json:"link_id"`
	}
	//easyjson:json
	PaymentStatusDto struct {
		Status string `json:"status"`
	}
)

//go:generate easyjson payment_client.go

const paymentStatusSuccess = "success"

func NewPaymentLinkClient(c config.AppConfig) *PaymentLinkClientImpl {
	ratePerSecond := c.PaymentMaxRequestsPerMinute / 60
	if ratePerSecond < 1 {
		ratePerSecond = 1
	}

	rateLimiter := ratelimit.New(ratePerSecond)
	pesterClient := pester.New()

	pesterClient.Concurrency = 1 // Since we are rate-limiting, concurrency should be 1
	pesterClient.MaxRetries = 0
	pesterClient.KeepLog = true
	pesterClient.Timeout = time.Duration(c.PaymentRequestTimeoutSec) * time.Second
	pesterClient.RetryOnHTTP429 = false
	pesterClient.Transport = &LoggingRoundTripper{Proxied: http.DefaultTransport}

	return &PaymentLinkClientImpl{
		ServiceURL:   c.PaymentServiceAddr,
		pesterClient: pesterClient,
		rateLimiter:  rateLimiter,
	}
}

func (pc *PaymentLinkClientImpl) CreateLink(ctx context.Context, linkID string, amount float64, customerPhone string) (*PaymentLinkDto, error) {
	// Wait for the next available opportunity to send a request
	pc.rateLimiter.Take()

	query := url.Values{}
	query.Set("link_id", linkID)
	query.Set("link_amount", fmt.Sprintf("%.2f", amount))
	query.Set("customer_phone", customerPhone)

	body, err := pc.get(ctx, "/api/order?"+query.Encode())
	if err != nil {
		return nil, err
	}

	dto := &PaymentLinkDto{}
	if err = dto.UnmarshalJSON(body); err != nil {
		return nil, fmt.Errorf("unmarshal payment link: %w", err)
	}
	if dto.LinkURL == "" {
		return nil, appErrors.New(errors.New("payment service returned no link"), "Payment link unavailable")
	}
	return dto, nil
}

func (pc *PaymentLinkClientImpl) ConfirmOrder(ctx context.Context, linkID string) (bool, error) {
	pc.rateLimiter.Take()

	query := url.Values{}
	query.Set("link_id", linkID)

	body, err := pc.get(ctx, "/api/confirmorder?"+query.Encode())
	if err != nil {
		return false, err
	}

	dto := &PaymentStatusDto{}
	if err = dto.UnmarshalJSON(body); err != nil {
		return false, fmt.Errorf("unmarshal payment status: %w", err)
	}
	return dto.Status == paymentStatusSuccess, nil
}

func (pc *PaymentLinkClientImpl) get(ctx context.Context, pathAndQuery string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pc.ServiceURL+pathAndQuery, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	resp, err := pc.pesterClient.Do(req)
	if err != nil {
		if ctxErr := appContext.GetContextError(ctx); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("error making request: %w", err)
	}
	body, err := io.ReadAll(resp.Body)
	defer resp.Body.Close()
	if err != nil {
		return nil, fmt.Errorf("error reading response body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		msg := fmt.Sprintf("payment service returned status %d", resp.StatusCode)
		return nil, appErrors.NewWithCode(errors.New(msg), "Payment service unavailable", resp.StatusCode)
	}
	return body, nil
}
