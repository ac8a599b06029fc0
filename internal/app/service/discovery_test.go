package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/aquago/aquago/internal/app/config"
	"github.com/aquago/aquago/internal/app/models"
)

func discoveryConfig() config.AppConfig {
	return config.AppConfig{SupplierCacheTTLSec: 30}
}

func testSuppliers() []models.Supplier {
	// Reference point in the tests is central Bengaluru (77.5946, 12.9716).
	return []models.Supplier{
		{
			ID:       uuid.New(),
			Name:     "Whitefield Aqua",
			Location: orb.Point{77.7500, 12.9698},
			Online:   true,
			Rates:    []models.RateTier{{Volume: 1000, Price: 400}, {Volume: 2000, Price: 750}},
		},
		{
			ID:       uuid.New(),
			Name:     "MG Road Waters",
			Location: orb.Point{77.6096, 12.9756},
			Online:   true,
			Rates:    []models.RateTier{{Volume: 1000, Price: 450}},
		},
		{
			ID:       uuid.New(),
			Name:     "Mysuru Depot",
			Location: orb.Point{76.6394, 12.2958},
			Online:   false,
			Rates:    []models.RateTier{{Volume: 2000, Price: 700}},
		},
	}
}

func TestDiscoveryService_Nearby(t *testing.T) {
	session := &models.Session{UserUID: uuid.New()}
	ref := orb.Point{77.5946, 12.9716}

	t.Run("annotates and sorts ascending by distance", func(t *testing.T) {
		suppliers := testSuppliers()
		gateway := &MockGatewayClient{}
		gateway.On("Suppliers", mock.Anything, session).Return(&suppliers, nil)
		ds := NewDiscoveryService(discoveryConfig(), gateway)

		snapshot := ds.Nearby(context.Background(), session, &ref)
		assert.NoError(t, snapshot.Err)
		assert.Len(t, snapshot.Suppliers, 3)
		for i := 1; i < len(snapshot.Suppliers); i++ {
			assert.LessOrEqual(t, snapshot.Suppliers[i-1].Distance, snapshot.Suppliers[i].Distance)
		}
		assert.Equal(t, "MG Road Waters", snapshot.Suppliers[0].Name)
		assert.Equal(t, "Mysuru Depot", snapshot.Suppliers[2].Name)
		assert.Greater(t, snapshot.Suppliers[2].Distance, 100.0)
	})

	t.Run("no reference point yields zero distances in fetch order", func(t *testing.T) {
		suppliers := testSuppliers()
		gateway := &MockGatewayClient{}
		gateway.On("Suppliers", mock.Anything, session).Return(&suppliers, nil)
		ds := NewDiscoveryService(discoveryConfig(), gateway)

		snapshot := ds.Nearby(context.Background(), session, nil)
		assert.NoError(t, snapshot.Err)
		for i, annotated := range snapshot.Suppliers {
			assert.Zero(t, annotated.Distance)
			assert.Equal(t, suppliers[i].Name, annotated.Name)
		}
	})

	t.Run("fetch failure degrades to empty snapshot with recorded error", func(t *testing.T) {
		gateway := &MockGatewayClient{}
		gateway.On("Suppliers", mock.Anything, session).Return(nil, errors.New("gateway unreachable"))
		ds := NewDiscoveryService(discoveryConfig(), gateway)

		snapshot := ds.Nearby(context.Background(), session, &ref)
		assert.Error(t, snapshot.Err)
		assert.NotNil(t, snapshot.Suppliers)
		assert.Empty(t, snapshot.Suppliers)
	})

	t.Run("second call within the TTL is served from cache", func(t *testing.T) {
		suppliers := testSuppliers()
		gateway := &MockGatewayClient{}
		gateway.On("Suppliers", mock.Anything, session).Return(&suppliers, nil)
		ds := NewDiscoveryService(discoveryConfig(), gateway)

		ds.Nearby(context.Background(), session, &ref)
		ds.Nearby(context.Background(), session, &ref)
		gateway.AssertNumberOfCalls(t, "Suppliers", 1)

		ds.Invalidate()
		ds.Nearby(context.Background(), session, &ref)
		gateway.AssertNumberOfCalls(t, "Suppliers", 2)
	})
}

func TestDiscoveryService_ActionableRates(t *testing.T) {
	ds := NewDiscoveryService(discoveryConfig(), &MockGatewayClient{})
	rates := []models.RateTier{{Volume: 1000, Price: 400}}

	online := AnnotatedSupplier{Supplier: models.Supplier{Online: true, Rates: rates}}
	assert.Equal(t, rates, ds.ActionableRates(online))

	offline := AnnotatedSupplier{Supplier: models.Supplier{Online: false, Rates: rates}}
	assert.Nil(t, ds.ActionableRates(offline))
}

func TestDiscoveryService_BindFeed(t *testing.T) {
	session := &models.Session{UserUID: uuid.New()}
	suppliers := testSuppliers()
	gateway := &MockGatewayClient{}
	gateway.On("Suppliers", mock.Anything, session).Return(&suppliers, nil)
	ds := NewDiscoveryService(discoveryConfig(), gateway)

	feed := newFakeFeed()
	refreshed := 0
	sub, err := ds.BindFeed(feed, func() { refreshed++ })
	assert.NoError(t, err)
	defer sub.Unsubscribe()

	ds.Nearby(context.Background(), session, nil)
	gateway.AssertNumberOfCalls(t, "Suppliers", 1)

	// A supplier-table event invalidates the cache and pings the view.
	feed.emit(Event{Table: TableWaterContainers, Kind: "UPDATE"})
	assert.Equal(t, 1, refreshed)
	ds.Nearby(context.Background(), session, nil)
	gateway.AssertNumberOfCalls(t, "Suppliers", 2)
}
