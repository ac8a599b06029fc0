package service

import (
	"context"
	"sort"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/paulmach/orb"
	"go.uber.org/zap"

	"github.com/aquago/aquago/internal/app/config"
	"github.com/aquago/aquago/internal/app/geo"
	"github.com/aquago/aquago/internal/app/logger"
	"github.com/aquago/aquago/internal/app/models"
	"github.com/aquago/aquago/internal/app/service/clients"
)

const supplierCacheKey = "suppliers"

type (
	// AnnotatedSupplier is a supplier snapshot with its distance from the
	// reference point in kilometers. Distance is 0 when no reference point
	// was available.
	AnnotatedSupplier struct {
		models.Supplier
		Distance float64
	}

	// Snapshot is the result of one discovery pass. A failed fetch degrades
	// to an empty list with Err set, so the UI can distinguish "no suppliers"
	// from "couldn't load suppliers" instead of showing a permanent spinner.
	Snapshot struct {
		Suppliers []AnnotatedSupplier
		Err       error
	}

	DiscoveryService interface {
		Nearby(ctx context.Context, session *models.Session, ref *orb.Point) Snapshot
		ActionableRates(supplier AnnotatedSupplier) []models.RateTier
		Invalidate()
		BindFeed(feed Feed, onRefresh func()) (*Subscription, error)
	}

	DiscoveryServiceImpl struct {
		gateway       clients.GatewayClient
		supplierCache *cache.Cache
	}
)

func NewDiscoveryService(cfg config.AppConfig, gateway clients.GatewayClient) *DiscoveryServiceImpl {
	ttl := time.Duration(cfg.SupplierCacheTTLSec) * time.Second
	return &DiscoveryServiceImpl{
		gateway:       gateway,
		supplierCache: cache.New(ttl, 5*time.Minute),
	}
}

// Nearby returns the supplier list annotated with distance from ref and
// sorted ascending. The raw list is cached briefly; the annotation is
// recomputed on every call because the reference point moves with the user.
func (ds *DiscoveryServiceImpl) Nearby(ctx context.Context, session *models.Session, ref *orb.Point) Snapshot {
	suppliers, err := ds.fetchSuppliers(ctx, session)
	if err != nil {
		logger.Log.Error("failed to fetch suppliers", zap.Error(err))
		return Snapshot{Suppliers: []AnnotatedSupplier{}, Err: err}
	}

	annotated := make([]AnnotatedSupplier, 0, len(suppliers))
	for _, supplier := range suppliers {
		distance := 0.0
		if ref != nil {
			distance = geo.Distance(*ref, supplier.Location)
		}
		annotated = append(annotated, AnnotatedSupplier{Supplier: supplier, Distance: distance})
	}
	sort.SliceStable(annotated, func(i, j int) bool {
		return annotated[i].Distance < annotated[j].Distance
	})
	return Snapshot{Suppliers: annotated}
}

// ActionableRates gates purchasing on the supplier being online.
func (ds *DiscoveryServiceImpl) ActionableRates(supplier AnnotatedSupplier) []models.RateTier {
	if !supplier.Online {
		return nil
	}
	return supplier.Rates
}

// Invalidate drops the cached list; the next Nearby refetches.
func (ds *DiscoveryServiceImpl) Invalidate() {
	ds.supplierCache.Delete(supplierCacheKey)
}

// BindFeed subscribes to supplier-table changes. Each event invalidates the
// cache and pings onRefresh so the owning view can re-issue Nearby.
func (ds *DiscoveryServiceImpl) BindFeed(feed Feed, onRefresh func()) (*Subscription, error) {
	return feed.Subscribe(TableWaterContainers, Filter{}, func(Event) {
		ds.Invalidate()
		onRefresh()
	})
}

func (ds *DiscoveryServiceImpl) fetchSuppliers(ctx context.Context, session *models.Session) ([]models.Supplier, error) {
	if cached, found := ds.supplierCache.Get(supplierCacheKey); found {
		if suppliers, ok := cached.([]models.Supplier); ok {
			return suppliers, nil
		}
	}
	suppliers, err := ds.gateway.Suppliers(ctx, session)
	if err != nil {
		return nil, err
	}
	ds.supplierCache.Set(supplierCacheKey, *suppliers, cache.DefaultExpiration)
	return *suppliers, nil
}
