package clients

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/sethgrid/pester"
	"go.uber.org/zap"

	"github.com/aquago/aquago/internal/app/config"
	appContext "github.com/aquago/aquago/internal/app/context"
	appErrors "github.com/aquago/aquago/internal/app/errors"
	"github.com/aquago/aquago/internal/app/geo"
	"github.com/aquago/aquago/internal/app/logger"
	"github.com/aquago/aquago/internal/app/models"
)

type (
	// GatewayClient is the client side of the backend gateway: auth, reads
	// and the stored-procedure style RPCs. The backend is the single source
	// of truth; every method is a plain request/response round trip.
	GatewayClient interface {
		Login(ctx context.Context, email, password string) (string, error)
		Register(ctx context.Context, name, email, phone, password string) (string, error)
		CurrentUser(ctx context.Context, session *models.Session) (*models.Profile, error)
		UpdateProfile(ctx context.Context, session *models.Session, profile *models.Profile) error
		WalletBalance(ctx context.Context, session *models.Session) (float64, error)
		TopUpWallet(ctx context.Context, session *models.Session, amount float64) error
		Addresses(ctx context.Context, session *models.Session) (*[]models.Address, error)
		AddAddress(ctx context.Context, session *models.Session, title, address string, point orb.Point, isDefault bool) error
		Suppliers(ctx context.Context, session *models.Session) (*[]models.Supplier, error)
		SupplierContact(ctx context.Context, session *models.Session, supplierID uuid.UUID) (string, error)
		CreateDelivery(ctx context.Context, session *models.Session, order *models.Order) (uuid.UUID, error)
		CancelDelivery(ctx context.Context, session *models.Session, orderID uuid.UUID) error
		Deliveries(ctx context.Context, session *models.Session) (*[]models.Order, error)
		ChatMessages(ctx context.Context, session *models.Session, deliveryID uuid.UUID) (*[]models.ChatMessage, error)
		SendChatMessage(ctx context.Context, session *models.Session, deliveryID uuid.UUID, text string) error
	}

	GatewayClientImpl struct {
		ServiceURL   string
		pesterClient *pester.Client
	}

	LoggingRoundTripper struct {
		Proxied http.RoundTripper
	}
)

func NewGatewayClient(c config.AppConfig) *GatewayClientImpl {
	pesterClient := pester.New()
	pesterClient.Concurrency = 1
	pesterClient.MaxRetries = 0
	pesterClient.KeepLog = true
	pesterClient.Timeout = time.Duration(c.ContextTimeoutSec) * time.Second
	pesterClient.Transport = &LoggingRoundTripper{Proxied: http.DefaultTransport}

	return &GatewayClientImpl{
		ServiceURL:   c.GatewayAddr,
		pesterClient: pesterClient,
	}
}

func (gc *GatewayClientImpl) Login(ctx context.Context, email, password string) (string, error) {
	reqDto := LoginRequestDto{Email: email, Password: password}
	body, err := reqDto.MarshalJSON()
	if err != nil {
		return "", fmt.Errorf("marshal login request: %w", err)
	}
	respBody, err := gc.call(ctx, http.MethodPost, "/auth/v1/login", "", body)
	if err != nil {
		return "", err
	}
	dto := &AuthResponseDto{}
	if err = dto.UnmarshalJSON(respBody); err != nil {
		return "", fmt.Errorf("unmarshal auth response: %w", err)
	}
	return dto.AccessToken, nil
}

func (gc *GatewayClientImpl) Register(ctx context.Context, name, email, phone, password string) (string, error) {
	reqDto := RegisterRequestDto{Name: name, Email: email, Phone: phone, Password: password}
	body, err := reqDto.MarshalJSON()
	if err != nil {
		return "", fmt.Errorf("marshal register request: %w", err)
	}
	respBody, err := gc.call(ctx, http.MethodPost, "/auth/v1/register", "", body)
	if err != nil {
		return "", err
	}
	dto := &AuthResponseDto{}
	if err = dto.UnmarshalJSON(respBody); err != nil {
		return "", fmt.Errorf("unmarshal auth response: %w", err)
	}
	return dto.AccessToken, nil
}

func (gc *GatewayClientImpl) CurrentUser(ctx context.Context, session *models.Session) (*models.Profile, error) {
	respBody, err := gc.call(ctx, http.MethodGet, "/rest/v1/profile", session.Token, nil)
	if err != nil {
		return nil, err
	}
	dto := &ProfileDto{}
	if err = dto.UnmarshalJSON(respBody); err != nil {
		return nil, fmt.Errorf("unmarshal profile: %w", err)
	}
	uid, err := uuid.Parse(dto.ID)
	if err != nil {
		return nil, fmt.Errorf("parse profile id: %w", err)
	}
	return &models.Profile{UserUID: uid, Name: dto.Name, Email: dto.Email, Phone: dto.Phone}, nil
}

func (gc *GatewayClientImpl) UpdateProfile(ctx context.Context, session *models.Session, profile *models.Profile) error {
	dto := ProfileDto{ID: profile.UserUID.String(), Name: profile.Name, Email: profile.Email, Phone: profile.Phone}
	body, err := dto.MarshalJSON()
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}
	_, err = gc.call(ctx, http.MethodPut, "/rest/v1/profile", session.Token, body)
	return err
}

func (gc *GatewayClientImpl) WalletBalance(ctx context.Context, session *models.Session) (float64, error) {
	respBody, err := gc.call(ctx, http.MethodGet, "/rest/v1/user_wallets/balance", session.Token, nil)
	if err != nil {
		return 0, err
	}
	dto := &WalletBalanceDto{}
	if err = dto.UnmarshalJSON(respBody); err != nil {
		return 0, fmt.Errorf("unmarshal wallet balance: %w", err)
	}
	return dto.Balance, nil
}

func (gc *GatewayClientImpl) TopUpWallet(ctx context.Context, session *models.Session, amount float64) error {
	reqDto := TopUpRequestDto{UserID: session.UserUID.String(), Amount: amount}
	body, err := reqDto.MarshalJSON()
	if err != nil {
		return fmt.Errorf("marshal top-up request: %w", err)
	}
	_, err = gc.call(ctx, http.MethodPost, "/rpc/add_money_to_wallet", session.Token, body)
	return err
}

func (gc *GatewayClientImpl) Addresses(ctx context.Context, session *models.Session) (*[]models.Address, error) {
	respBody, err := gc.call(ctx, http.MethodGet, "/rest/v1/user_addresses", session.Token, nil)
	if err != nil {
		return nil, err
	}
	dtos := AddressDtoSlice{}
	if err = dtos.UnmarshalJSON(respBody); err != nil {
		return nil, fmt.Errorf("unmarshal addresses: %w", err)
	}
	addresses := make([]models.Address, 0, len(dtos))
	for _, dto := range dtos {
		address, err := mapAddressDto(dto)
		if err != nil {
			return nil, err
		}
		addresses = append(addresses, *address)
	}
	return &addresses, nil
}

func (gc *GatewayClientImpl) AddAddress(ctx context.Context, session *models.Session, title, address string, point orb.Point, isDefault bool) error {
	reqDto := AddAddressRequestDto{
		UserID:    session.UserUID.String(),
		Title:     title,
		Address:   address,
		Latitude:  point.Lat(),
		Longitude: point.Lon(),
		IsDefault: isDefault,
	}
	body, err := reqDto.MarshalJSON()
	if err != nil {
		return fmt.Errorf("marshal add-address request: %w", err)
	}
	_, err = gc.call(ctx, http.MethodPost, "/rpc/add_user_address", session.Token, body)
	return err
}

func (gc *GatewayClientImpl) Suppliers(ctx context.Context, session *models.Session) (*[]models.Supplier, error) {
	respBody, err := gc.call(ctx, http.MethodGet, "/rest/v1/water_containers", session.Token, nil)
	if err != nil {
		return nil, err
	}
	dtos := SupplierDtoSlice{}
	if err = dtos.UnmarshalJSON(respBody); err != nil {
		return nil, fmt.Errorf("unmarshal suppliers: %w", err)
	}
	suppliers := make([]models.Supplier, 0, len(dtos))
	for _, dto := range dtos {
		supplier, err := mapSupplierDto(dto)
		if err != nil {
			return nil, err
		}
		suppliers = append(suppliers, *supplier)
	}
	return &suppliers, nil
}

func (gc *GatewayClientImpl) SupplierContact(ctx context.Context, session *models.Session, supplierID uuid.UUID) (string, error) {
	path := "/rest/v1/water_containers/" + supplierID.String() + "/contact"
	respBody, err := gc.call(ctx, http.MethodGet, path, session.Token, nil)
	if err != nil {
		return "", err
	}
	dto := &SupplierContactDto{}
	if err = dto.UnmarshalJSON(respBody); err != nil {
		return "", fmt.Errorf("unmarshal supplier contact: %w", err)
	}
	return dto.ContactNumber, nil
}

func (gc *GatewayClientImpl) CreateDelivery(ctx context.Context, session *models.Session, order *models.Order) (uuid.UUID, error) {
	reqDto := CreateDeliveryRequestDto{
		UserID:         session.UserUID.String(),
		ContainerID:    order.SupplierID.String(),
		Volume:         order.Volume,
		Amount:         order.Amount,
		Address:        order.Address,
		Location:       geo.FormatPoint(order.Location),
		PaymentMethod:  order.PaymentMethod,
		PaymentDetails: order.PaymentDetails,
	}
	body, err := reqDto.MarshalJSON()
	if err != nil {
		return uuid.Nil, fmt.Errorf("marshal create-delivery request: %w", err)
	}
	respBody, err := gc.call(ctx, http.MethodPost, "/rpc/create_water_delivery", session.Token, body)
	if err != nil {
		return uuid.Nil, err
	}
	dto := &CreateDeliveryResponseDto{}
	if err = dto.UnmarshalJSON(respBody); err != nil {
		return uuid.Nil, fmt.Errorf("unmarshal create-delivery response: %w", err)
	}
	orderID, err := uuid.Parse(dto.OrderID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("parse order id: %w", err)
	}
	return orderID, nil
}

func (gc *GatewayClientImpl) CancelDelivery(ctx context.Context, session *models.Session, orderID uuid.UUID) error {
	reqDto := CancelDeliveryRequestDto{OrderID: orderID.String()}
	body, err := reqDto.MarshalJSON()
	if err != nil {
		return fmt.Errorf("marshal cancel-delivery request: %w", err)
	}
	_, err = gc.call(ctx, http.MethodPost, "/rpc/cancel_water_delivery", session.Token, body)
	return err
}

func (gc *GatewayClientImpl) Deliveries(ctx context.Context, session *models.Session) (*[]models.Order, error) {
	respBody, err := gc.call(ctx, http.MethodGet, "/rest/v1/water_deliveries", session.Token, nil)
	if err != nil {
		return nil, err
	}
	dtos := DeliveryDtoSlice{}
	if err = dtos.UnmarshalJSON(respBody); err != nil {
		return nil, fmt.Errorf("unmarshal deliveries: %w", err)
	}
	orders := make([]models.Order, 0, len(dtos))
	for _, dto := range dtos {
		order, err := mapDeliveryDto(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *order)
	}
	return &orders, nil
}

func (gc *GatewayClientImpl) ChatMessages(ctx context.Context, session *models.Session, deliveryID uuid.UUID) (*[]models.ChatMessage, error) {
	reqDto := ChatMessagesRequestDto{DeliveryID: deliveryID.String()}
	body, err := reqDto.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("marshal chat-messages request: %w", err)
	}
	respBody, err := gc.call(ctx, http.MethodPost, "/rpc/get_chat_messages", session.Token, body)
	if err != nil {
		return nil, err
	}
	dtos := ChatMessageDtoSlice{}
	if err = dtos.UnmarshalJSON(respBody); err != nil {
		return nil, fmt.Errorf("unmarshal chat messages: %w", err)
	}
	messages := make([]models.ChatMessage, 0, len(dtos))
	for _, dto := range dtos {
		message, err := mapChatMessageDto(dto)
		if err != nil {
			return nil, err
		}
		messages = append(messages, *message)
	}
	return &messages, nil
}

func (gc *GatewayClientImpl) SendChatMessage(ctx context.Context, session *models.Session, deliveryID uuid.UUID, text string) error {
	reqDto := SendChatMessageRequestDto{DeliveryID: deliveryID.String(), Message: text}
	body, err := reqDto.MarshalJSON()
	if err != nil {
		return fmt.Errorf("marshal send-message request: %w", err)
	}
	_, err = gc.call(ctx, http.MethodPost, "/rpc/send_chat_message", session.Token, body)
	return err
}

func (gc *GatewayClientImpl) call(ctx context.Context, method, path, token string, body []byte) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, gc.ServiceURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := gc.pesterClient.Do(req)
	if err != nil {
		if ctxErr := appContext.GetContextError(ctx); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("error making request: %w", err)
	}
	respBody, err := io.ReadAll(resp.Body)
	defer resp.Body.Close()
	if err != nil {
		return nil, fmt.Errorf("error reading response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, mapGatewayError(resp.StatusCode, respBody)
	}
	return respBody, nil
}

// mapGatewayError turns the backend error envelope into a ResponseCodeError.
// An unreadable envelope still yields a coded error so the UI has something
// to show.
func mapGatewayError(statusCode int, body []byte) error {
	dto := &GatewayErrorDto{}
	if err := dto.UnmarshalJSON(body); err != nil || dto.Message == "" {
		msg := fmt.Sprintf("gateway returned status %d", statusCode)
		return appErrors.NewWithCode(errors.New(msg), msg, statusCode)
	}
	return appErrors.NewWithCode(fmt.Errorf("gateway error: %s", dto.Message), dto.Message, statusCode)
}

func mapSupplierDto(dto SupplierDto) (*models.Supplier, error) {
	id, err := uuid.Parse(dto.ID)
	if err != nil {
		return nil, fmt.Errorf("parse supplier id: %w", err)
	}
	point, err := geo.ParsePoint(dto.Location)
	if err != nil {
		return nil, fmt.Errorf("supplier %s: %w", dto.ID, err)
	}
	rates := make([]models.RateTier, 0, len(dto.Rates))
	for _, rate := range dto.Rates {
		rates = append(rates, models.RateTier{Volume: rate.Volume, Price: rate.Price})
	}
	return &models.Supplier{
		ID:              id,
		Name:            dto.Name,
		Location:        point,
		Address:         dto.Address,
		Capacity:        dto.Capacity,
		AvailableVolume: dto.AvailableVolume,
		Online:          dto.IsOnline,
		Rates:           rates,
		ContactNumber:   dto.ContactNumber,
	}, nil
}

func mapAddressDto(dto AddressDto) (*models.Address, error) {
	id, err := uuid.Parse(dto.ID)
	if err != nil {
		return nil, fmt.Errorf("parse address id: %w", err)
	}
	userUID, err := uuid.Parse(dto.UserID)
	if err != nil {
		return nil, fmt.Errorf("parse address user id: %w", err)
	}
	point, err := geo.ParsePoint(dto.Location)
	if err != nil {
		return nil, fmt.Errorf("address %s: %w", dto.ID, err)
	}
	return &models.Address{
		ID:       id,
		UserUID:  userUID,
		Title:    dto.Title,
		Address:  dto.Address,
		Location: point,
		Default:  dto.IsDefault,
	}, nil
}

func mapDeliveryDto(dto DeliveryDto) (*models.Order, error) {
	id, err := uuid.Parse(dto.ID)
	if err != nil {
		return nil, fmt.Errorf("parse delivery id: %w", err)
	}
	userUID, err := uuid.Parse(dto.UserID)
	if err != nil {
		return nil, fmt.Errorf("parse delivery user id: %w", err)
	}
	supplierID, err := uuid.Parse(dto.ContainerID)
	if err != nil {
		return nil, fmt.Errorf("parse delivery container id: %w", err)
	}
	point, err := geo.ParsePoint(dto.Location)
	if err != nil {
		return nil, fmt.Errorf("delivery %s: %w", dto.ID, err)
	}
	return &models.Order{
		ID:              id,
		UserUID:         userUID,
		SupplierID:      supplierID,
		Volume:          dto.Volume,
		Amount:          dto.Amount,
		Address:         dto.Address,
		Location:        point,
		PaymentMethod:   dto.PaymentMethod,
		PaymentDetails:  dto.PaymentDetails,
		Status:          models.Status(dto.Status),
		SupplierContact: dto.SupplierContact,
		CreatedAt:       dto.CreatedAt,
	}, nil
}

func mapChatMessageDto(dto ChatMessageDto) (*models.ChatMessage, error) {
	id, err := uuid.Parse(dto.ID)
	if err != nil {
		return nil, fmt.Errorf("parse message id: %w", err)
	}
	deliveryID, err := uuid.Parse(dto.DeliveryID)
	if err != nil {
		return nil, fmt.Errorf("parse message delivery id: %w", err)
	}
	return &models.ChatMessage{
		ID:         id,
		DeliveryID: deliveryID,
		Supplier:   dto.IsSupplier,
		Text:       dto.Message,
		CreatedAt:  dto.CreatedAt,
	}, nil
}

func (lrt *LoggingRoundTripper) RoundTrip(r *http.Request) (*http.Response, error) {
	logRequest(r)
	response, err := lrt.Proxied.RoundTrip(r)
	if err != nil {
		logger.Log.Error("gateway request error", zap.Error(err))
		return nil, err
	}
	logResponse(response)
	return response, nil
}

func logResponse(response *http.Response) {
	bodyBytes, err := io.ReadAll(response.Body)
	if err != nil {
		logger.Log.Error("gateway response error", zap.Error(err))
		return
	}
	response.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))
	body := string(bodyBytes)
	if len(body) == 0 {
		body = "empty body"
	}

	logger.Log.Debug("GATEWAY RESPONSE:",
		zap.Int("Status", response.StatusCode),
		zap.Int64("Content-Length", response.ContentLength),
		zap.String("Body", body),
	)
}

func logRequest(r *http.Request) {
	bodyMsg, err := getRequestBodyForLogging(r)
	if err != nil {
		logger.Log.Error("gateway log request error", zap.Error(err))
		return
	}
	logger.Log.Debug("GATEWAY REQUEST:",
		zap.String("Method", r.Method),
		zap.String("Path", r.URL.String()),
		zap.String("Body", bodyMsg),
	)
}

func getRequestBodyForLogging(r *http.Request) (string, error) {
	if r.Body == nil || r.ContentLength == 0 {
		return "empty body", nil
	}
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return "", fmt.Errorf("error reading request body: %w", err)
	}
	defer r.Body.Close()
	r.Body = io.NopCloser(bytes.NewBuffer(body))
	return string(body), nil
}
