package queries_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"backoffice/internal/adapters/out/postgres/orderrepo"
	"backoffice/internal/adapters/out/postgres/userrepo"
	"backoffice/internal/core/application/usecases/queries"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/core/domain/model/user"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type ListStalePendingOrdersQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.ListStalePendingOrdersQueryHandler
	orderRepo *orderrepo.GormOrderRepository
	userRepo  *userrepo.GormUserRepository
	buyer     *user.User
	seq       int
}

func (suite *ListStalePendingOrdersQueryHandlerTestSuite) SetupSuite() {
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

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &userrepo.UserDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewListStalePendingOrdersQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
	suite.userRepo = userrepo.NewGormUserRepository(db, &mockAggregateTracker{})

	suite.buyer, err = user.NewUser(kernel.NewUUID(), "Stale Buyer", "stale-buyer@example.com", "")
	suite.Require().NoError(err)
	err = suite.userRepo.Add(ctx, suite.buyer)
	suite.Require().NoError(err)
}

func (suite *ListStalePendingOrdersQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *ListStalePendingOrdersQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders").Error
	suite.Require().NoError(err)
}

func (suite *ListStalePendingOrdersQueryHandlerTestSuite) addOrder(
	status order.Status,
	placedAt time.Time,
) *order.Order {
	suite.seq++
	o, err := order.RestoreOrder(
		kernel.NewUUID(), suite.buyer.ID(),
		fmt.Sprintf("%s%d", order.NumberPrefix, suite.seq),
		decimal.NewNullDecimal(decimal.RequireFromString("10.00")),
		status, "", placedAt,
	)
	suite.Require().NoError(err)
	err = suite.orderRepo.Add(context.Background(), o)
	suite.Require().NoError(err)
	return o
}

func (suite *ListStalePendingOrdersQueryHandlerTestSuite) TestHandle_ReturnsOnlyStalePending_OldestFirst() {
	now := time.Now().UTC()

	oldest := suite.addOrder(order.Pending, now.Add(-72*time.Hour))
	stale := suite.addOrder(order.Pending, now.Add(-48*time.Hour))
	suite.addOrder(order.Pending, now)
	suite.addOrder(order.Shipped, now.Add(-48*time.Hour))

	query, err := queries.NewListStalePendingOrdersQuery(24 * time.Hour)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.True(result[0].ID.IsEqual(oldest.ID()))
	suite.True(result[1].ID.IsEqual(stale.ID()))
	for _, r := range result {
		suite.Equal(order.Pending, r.Status)
	}
}

func (suite *ListStalePendingOrdersQueryHandlerTestSuite) TestHandle_NothingStale_ReturnsEmptySlice() {
	suite.addOrder(order.Pending, time.Now().UTC())

	query, err := queries.NewListStalePendingOrdersQuery(24 * time.Hour)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *ListStalePendingOrdersQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.ListStalePendingOrdersQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
}

func TestListStalePendingOrdersQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ListStalePendingOrdersQueryHandlerTestSuite))
}
