package queries_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"grocery/internal/adapters/out/postgres/auditrepo"
	"grocery/internal/adapters/out/postgres/orderrepo"
	"grocery/internal/adapters/out/postgres/partnerrepo"
	"grocery/internal/adapters/out/postgres/productrepo"
	"grocery/internal/adapters/out/postgres/triprepo"
	"grocery/internal/core/application/usecases/queries"
	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/order"
	"grocery/internal/core/domain/model/partner"
	"grocery/internal/core/domain/model/product"
	"grocery/internal/core/domain/model/trip"
	"grocery/internal/core/ports"
	"grocery/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {}

// QueryHandlersTestSuite exercises every read model against a real PostgreSQL
// database. The handlers bypass the aggregates and read rows directly, so the
// suite seeds state through the write-side repositories.
type QueryHandlersTestSuite struct {
	suite.Suite
	container   *postgres.PostgresContainer
	db          *gorm.DB
	orderRepo   *orderrepo.GormOrderRepository
	partnerRepo *partnerrepo.GormPartnerRepository
	tripRepo    *triprepo.GormTripRepository
	productRepo *productrepo.GormProductRepository
	auditLog    *auditrepo.GormAuditLog
}

func (suite *QueryHandlersTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&partnerrepo.PartnerDTO{},
		&triprepo.TripDTO{},
		&productrepo.ProductDTO{},
		&auditrepo.AuditLogDTO{},
	)
	suite.Require().NoError(err)

	tracker := &mockAggregateTracker{}
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, tracker)
	suite.partnerRepo = partnerrepo.NewGormPartnerRepository(db, tracker)
	suite.tripRepo = triprepo.NewGormTripRepository(db, tracker)
	suite.productRepo = productrepo.NewGormProductRepository(db, tracker)
	suite.auditLog = auditrepo.NewGormAuditLog(db, slog.Default())
}

func (suite *QueryHandlersTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *QueryHandlersTestSuite) SetupTest() {
	for _, table := range []string{"orders", "partners", "trips", "products", "audit_logs"} {
		suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE " + table + " CASCADE").Error)
	}
}

func (suite *QueryHandlersTestSuite) newOrder(customerID kernel.UUID, pincode string) *order.Order {
	item, err := order.NewItem("sku-milk", "Milk 1L", 6500, 1)
	suite.Require().NoError(err)

	o, err := order.NewOrder(kernel.NewUUID(), customerID, "12 Market Street", pincode, []order.Item{item}, "UPI")
	suite.Require().NoError(err)
	return o
}

func (suite *QueryHandlersTestSuite) advance(o *order.Order, target order.Status) {
	if o.Status() == order.Placed && target != order.Placed {
		suite.Require().NoError(o.Claim(kernel.NewUUID()))
	}
	for _, next := range []order.Status{
		order.Packing, order.Packed, order.BatchAssigned,
		order.OutForDelivery, order.Delivered, order.Closed,
	} {
		if o.Status() == target {
			return
		}
		suite.Require().NoError(o.TransitionTo(next))
	}
	suite.Require().Equal(target, o.Status())
}

func (suite *QueryHandlersTestSuite) TestGetActiveOrder_ReturnsLatestActiveOrder() {
	ctx := context.Background()
	customerID := kernel.NewUUID()

	finished := suite.newOrder(customerID, "110001")
	suite.advance(finished, order.Delivered)
	suite.Require().NoError(suite.orderRepo.Add(ctx, finished))

	active := suite.newOrder(customerID, "110001")
	suite.Require().NoError(suite.orderRepo.Add(ctx, active))

	query, err := queries.NewGetActiveOrderQuery(customerID)
	suite.Require().NoError(err)

	handler := queries.NewGetActiveOrderQueryHandler(suite.db)
	resp, err := handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.True(resp.ID.IsEqual(active.ID()))
	suite.Equal("PLACED", resp.Status)
	suite.Equal("ZONE_1100", resp.RouteKey)
	suite.Equal("12 Market Street", resp.Address)
}

func (suite *QueryHandlersTestSuite) TestGetActiveOrder_NoActiveOrder() {
	ctx := context.Background()
	customerID := kernel.NewUUID()

	finished := suite.newOrder(customerID, "110001")
	suite.advance(finished, order.Closed)
	suite.Require().NoError(suite.orderRepo.Add(ctx, finished))

	query, err := queries.NewGetActiveOrderQuery(customerID)
	suite.Require().NoError(err)

	handler := queries.NewGetActiveOrderQueryHandler(suite.db)
	resp, err := handler.Handle(ctx, query)

	suite.Require().Error(err)
	suite.Nil(resp)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueryHandlersTestSuite) TestGetPackedOrders_OnlyPackedSortedByRoute() {
	ctx := context.Background()

	packedSouth := suite.newOrder(kernel.NewUUID(), "560076")
	suite.advance(packedSouth, order.Packed)
	packedNorth := suite.newOrder(kernel.NewUUID(), "110001")
	suite.advance(packedNorth, order.Packed)
	stillPlaced := suite.newOrder(kernel.NewUUID(), "110001")

	for _, o := range []*order.Order{packedSouth, packedNorth, stillPlaced} {
		suite.Require().NoError(suite.orderRepo.Add(ctx, o))
	}

	handler := queries.NewGetPackedOrdersQueryHandler(suite.db)
	resp, err := handler.Handle(ctx, queries.NewGetPackedOrdersQuery())

	suite.Require().NoError(err)
	suite.Require().Len(resp, 2)
	suite.Equal("ZONE_1100", resp[0].RouteKey)
	suite.True(resp[0].ID.IsEqual(packedNorth.ID()))
	suite.Equal("ZONE_5600", resp[1].RouteKey)
	suite.True(resp[1].ID.IsEqual(packedSouth.ID()))
}

func (suite *QueryHandlersTestSuite) TestGetAvailablePartners_FiltersShiftAndBusy() {
	ctx := context.Background()

	available, err := partner.NewPartner(kernel.NewUUID(), "Asha", "asha@example.com")
	suite.Require().NoError(err)
	available.SetShift(true)

	offShift, err := partner.NewPartner(kernel.NewUUID(), "Bilal", "bilal@example.com")
	suite.Require().NoError(err)

	busy, err := partner.NewPartner(kernel.NewUUID(), "Chitra", "chitra@example.com")
	suite.Require().NoError(err)
	busy.SetShift(true)
	suite.Require().NoError(busy.MarkBusy())

	for _, p := range []*partner.Partner{available, offShift, busy} {
		suite.Require().NoError(suite.partnerRepo.Add(ctx, p))
	}

	handler := queries.NewGetAvailablePartnersQueryHandler(suite.db)
	resp, err := handler.Handle(ctx, queries.NewGetAvailablePartnersQuery())

	suite.Require().NoError(err)
	suite.Require().Len(resp, 1)
	suite.True(resp[0].ID.IsEqual(available.ID()))
	suite.Equal("Asha", resp[0].Name)
}

func (suite *QueryHandlersTestSuite) TestGetDashboardCounts() {
	ctx := context.Background()

	placed := suite.newOrder(kernel.NewUUID(), "110001")
	packed := suite.newOrder(kernel.NewUUID(), "110001")
	suite.advance(packed, order.Packed)
	delivered := suite.newOrder(kernel.NewUUID(), "110001")
	suite.advance(delivered, order.Delivered)

	for _, o := range []*order.Order{placed, packed, delivered} {
		suite.Require().NoError(suite.orderRepo.Add(ctx, o))
	}

	activeTrip, err := trip.NewTrip(
		kernel.NewUUID(), kernel.NewUUID(),
		kernel.RouteKeyForPincode("110001"), []kernel.UUID{kernel.NewUUID()},
	)
	suite.Require().NoError(err)

	closedTrip, err := trip.NewTrip(
		kernel.NewUUID(), kernel.NewUUID(),
		kernel.RouteKeyForPincode("110001"), []kernel.UUID{kernel.NewUUID()},
	)
	suite.Require().NoError(err)
	suite.Require().NoError(closedTrip.MarkDeliveriesComplete())
	suite.Require().NoError(closedTrip.Close())

	suite.Require().NoError(suite.tripRepo.Add(ctx, activeTrip))
	suite.Require().NoError(suite.tripRepo.Add(ctx, closedTrip))

	handler := queries.NewGetDashboardCountsQueryHandler(suite.db)
	resp, err := handler.Handle(ctx, queries.NewGetDashboardCountsQuery())

	suite.Require().NoError(err)
	suite.Equal(1, resp.OrdersByStatus["PLACED"])
	suite.Equal(1, resp.OrdersByStatus["PACKED"])
	suite.Equal(1, resp.OrdersByStatus["DELIVERED"])
	suite.NotContains(resp.OrdersByStatus, "CLOSED")
	suite.Equal(1, resp.ActiveTrips)
}

func (suite *QueryHandlersTestSuite) TestGetCatalog_ActiveProductsSortedByCategory() {
	ctx := context.Background()

	milk, err := product.NewProduct(kernel.NewUUID(), "Milk 1L", "Dairy", "1L", 6500, 20, false)
	suite.Require().NoError(err)

	soldOut, err := product.NewProduct(kernel.NewUUID(), "Bread 400g", "Bakery", "400g loaf", 4500, 0, true)
	suite.Require().NoError(err)

	hidden, err := product.NewProduct(kernel.NewUUID(), "Paneer 200g", "Dairy", "200g pack", 9000, 10, false)
	suite.Require().NoError(err)
	hidden.SetActive(false)

	for _, p := range []*product.Product{milk, soldOut, hidden} {
		suite.Require().NoError(suite.productRepo.Add(ctx, p))
	}

	handler := queries.NewGetCatalogQueryHandler(suite.db)
	resp, err := handler.Handle(ctx, queries.NewGetCatalogQuery())

	suite.Require().NoError(err)
	suite.Require().Len(resp, 2)

	suite.Equal("Bakery", resp[0].Category)
	suite.True(resp[0].ID.IsEqual(soldOut.ID()))
	suite.True(resp[0].OutOfStock)
	suite.True(resp[0].NewlyLaunched)

	suite.Equal("Dairy", resp[1].Category)
	suite.True(resp[1].ID.IsEqual(milk.ID()))
	suite.False(resp[1].OutOfStock)
	suite.Equal(int64(6500), resp[1].Price)
	suite.Equal(20, resp[1].AvailableQty)
}

func (suite *QueryHandlersTestSuite) TestGetCatalog_EmptyCatalog() {
	handler := queries.NewGetCatalogQueryHandler(suite.db)
	resp, err := handler.Handle(context.Background(), queries.NewGetCatalogQuery())

	suite.Require().NoError(err)
	suite.NotNil(resp)
	suite.Empty(resp)
}

func (suite *QueryHandlersTestSuite) TestGetAuditLogs_NewestFirstWithLimit() {
	ctx := context.Background()

	base := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	for i, action := range []string{"ORDER_PLACED", "ORDER_CLAIMED", "STATUS_UPDATE"} {
		suite.auditLog.Append(ctx, ports.AuditRecord{
			UserID:    kernel.NewUUID().String(),
			Role:      "Picker",
			Action:    action,
			Reason:    "seeded",
			Timestamp: base.Add(time.Duration(i) * time.Minute),
		})
	}

	query, err := queries.NewGetAuditLogsQuery(2)
	suite.Require().NoError(err)

	handler := queries.NewGetAuditLogsQueryHandler(suite.db)
	resp, err := handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(resp, 2)
	suite.Equal("STATUS_UPDATE", resp[0].Action)
	suite.Equal("ORDER_CLAIMED", resp[1].Action)
}

func (suite *QueryHandlersTestSuite) TestGetAuditLogsQuery_LimitOutOfRange() {
	_, err := queries.NewGetAuditLogsQuery(0)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrValueIsOutOfRange)

	_, err = queries.NewGetAuditLogsQuery(501)
	suite.Require().Error(err)
}

func (suite *QueryHandlersTestSuite) TestInvalidQuery_ReturnsError() {
	handler := queries.NewGetActiveOrderQueryHandler(suite.db)

	resp, err := handler.Handle(context.Background(), queries.GetActiveOrderQuery{})

	suite.Require().Error(err)
	suite.Nil(resp)
	suite.Require().ErrorIs(err, queries.ErrGetActiveOrderQueryIsNotConstructed)
}

func TestQueryHandlersTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(QueryHandlersTestSuite))
}
