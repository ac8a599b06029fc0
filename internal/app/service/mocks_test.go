package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/mock"

	"github.com/aquago/aquago/internal/app/models"
	"github.com/aquago/aquago/internal/app/repository"
	"github.com/aquago/aquago/internal/app/service/clients"
)

type MockGatewayClient struct {
	mock.Mock
}

func (m *MockGatewayClient) Login(ctx context.Context, email, password string) (string, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.Error(1)
}

func (m *MockGatewayClient) Register(ctx context.Context, name, email, phone, password string) (string, error) {
	args := m.Called(ctx, name, email, phone, password)
	return args.String(0), args.Error(1)
}

func (m *MockGatewayClient) CurrentUser(ctx context.Context, session *models.Session) (*models.Profile, error) {
	args := m.Called(ctx, session)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}

func (m *MockGatewayClient) UpdateProfile(ctx context.Context, session *models.Session, profile *models.Profile) error {
	args := m.Called(ctx, session, profile)
	return args.Error(0)
}

func (m *MockGatewayClient) WalletBalance(ctx context.Context, session *models.Session) (float64, error) {
	args := m.Called(ctx, session)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockGatewayClient) TopUpWallet(ctx context.Context, session *models.Session, amount float64) error {
	args := m.Called(ctx, session, amount)
	return args.Error(0)
}

func (m *MockGatewayClient) Addresses(ctx context.Context, session *models.Session) (*[]models.Address, error) {
	args := m.Called(ctx, session)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*[]models.Address), args.Error(1)
}

func (m *MockGatewayClient) AddAddress(ctx context.Context, session *models.Session, title, address string, point orb.Point, isDefault bool) error {
	args := m.Called(ctx, session, title, address, point, isDefault)
	return args.Error(0)
}

func (m *MockGatewayClient) Suppliers(ctx context.Context, session *models.Session) (*[]models.Supplier, error) {
	args := m.Called(ctx, session)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*[]models.Supplier), args.Error(1)
}

func (m *MockGatewayClient) SupplierContact(ctx context.Context, session *models.Session, supplierID uuid.UUID) (string, error) {
	args := m.Called(ctx, session, supplierID)
	return args.String(0), args.Error(1)
}

func (m *MockGatewayClient) CreateDelivery(ctx context.Context, session *models.Session, order *models.Order) (uuid.UUID, error) {
	args := m.Called(ctx, session, order)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockGatewayClient) CancelDelivery(ctx context.Context, session *models.Session, orderID uuid.UUID) error {
	args := m.Called(ctx, session, orderID)
	return args.Error(0)
}

func (m *MockGatewayClient) Deliveries(ctx context.Context, session *models.Session) (*[]models.Order, error) {
	args := m.Called(ctx, session)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*[]models.Order), args.Error(1)
}

func (m *MockGatewayClient) ChatMessages(ctx context.Context, session *models.Session, deliveryID uuid.UUID) (*[]models.ChatMessage, error) {
	args := m.Called(ctx, session, deliveryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*[]models.ChatMessage), args.Error(1)
}

func (m *MockGatewayClient) SendChatMessage(ctx context.Context, session *models.Session, deliveryID uuid.UUID, text string) error {
	args := m.Called(ctx, session, deliveryID, text)
	return args.Error(0)
}

type MockPaymentLinkClient struct {
	mock.Mock
}

func (m *MockPaymentLinkClient) CreateLink(ctx context.Context, linkID string, amount float64, customerPhone string) (*clients.PaymentLinkDto, error) {
	args := m.Called(ctx, linkID, amount, customerPhone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*clients.PaymentLinkDto), args.Error(1)
}

func (m *MockPaymentLinkClient) ConfirmOrder(ctx context.Context, linkID string) (bool, error) {
	args := m.Called(ctx, linkID)
	return args.Bool(0), args.Error(1)
}

type MockSelectionRepository struct {
	mock.Mock
}

func (m *MockSelectionRepository) Save(ctx context.Context, selection *repository.Selection) error {
	args := m.Called(ctx, selection)
	return args.Error(0)
}

func (m *MockSelectionRepository) Load(ctx context.Context) (*repository.Selection, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.Selection), args.Error(1)
}

func (m *MockSelectionRepository) Clear(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockRecentLocationRepository struct {
	mock.Mock
}

func (m *MockRecentLocationRepository) Add(ctx context.Context, title, address string, point orb.Point) error {
	args := m.Called(ctx, title, address, point)
	return args.Error(0)
}

func (m *MockRecentLocationRepository) List(ctx context.Context) (*[]repository.RecentLocation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*[]repository.RecentLocation), args.Error(1)
}

type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) Save(ctx context.Context, session *models.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessionRepository) Load(ctx context.Context) (*models.Session, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Session), args.Error(1)
}

func (m *MockSessionRepository) Clear(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type fakeLocator struct {
	point orb.Point
	err   error
}

func (f fakeLocator) Current(ctx context.Context) (orb.Point, error) {
	return f.point, f.err
}

type fakeGeocoder struct {
	point   orb.Point
	address string
	err     error
}

func (f fakeGeocoder) Forward(ctx context.Context, address string) (orb.Point, error) {
	return f.point, f.err
}

func (f fakeGeocoder) Reverse(ctx context.Context, point orb.Point) (string, error) {
	return f.address, f.err
}

// fakeFeed records subscriptions and lets tests push events synchronously.
type fakeFeed struct {
	handlers map[string][]func(Event)
}

func newFakeFeed() *fakeFeed {
	return &fakeFeed{handlers: map[string][]func(Event){}}
}

func (f *fakeFeed) Subscribe(table string, filter Filter, onChange func(Event)) (*Subscription, error) {
	f.handlers[table] = append(f.handlers[table], func(event Event) {
		if filter.matches(event) {
			onChange(event)
		}
	})
	return &Subscription{cancel: func() {}}, nil
}

func (f *fakeFeed) Close() error {
	return nil
}

func (f *fakeFeed) emit(event Event) {
	for _, handler := range f.handlers[event.Table] {
		handler(event)
	}
}
