package postgres_test

import (
	"context"
	"testing"

	postgres_adapter "backoffice/internal/adapters/out/postgres"
	"backoffice/internal/adapters/out/postgres/orderrepo"
	"backoffice/internal/adapters/out/postgres/productrepo"
	"backoffice/internal/adapters/out/postgres/userrepo"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/core/domain/model/user"
	"backoffice/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite exercises the GORM Unit of Work against a
// real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &userrepo.UserDTO{}, &productrepo.ProductDTO{})
	suite.Require().NoError(err)

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, users, products").Error
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestFactory_Create_SeparateInstances() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2)
	suite.NotNil(uow1.OrderRepository())
	suite.NotNil(uow1.UserRepository())
	suite.NotNil(uow1.ProductRepository())
	suite.NotNil(uow2.OrderRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestTransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	// repeated Begin must not open a nested transaction
	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommitWithoutBegin_ReturnsError() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().ErrorIs(uow.Commit(ctx), gorm.ErrInvalidTransaction)
	suite.Require().ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsAcrossRepositories() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	owner, err := user.NewUser(kernel.NewUUID(), "Alice", "alice@example.com", "")
	suite.Require().NoError(err)
	err = uow.UserRepository().Add(ctx, owner)
	suite.Require().NoError(err)

	placed, err := order.NewOrder(
		kernel.NewUUID(),
		owner.ID(),
		decimal.NewNullDecimal(decimal.RequireFromString("99.90")),
		"",
	)
	suite.Require().NoError(err)
	err = uow.OrderRepository().Add(ctx, placed)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	// visible through a fresh unit of work
	check := suite.factory.Create()
	stored, err := check.OrderRepository().Get(ctx, placed.ID())
	suite.Require().NoError(err)
	suite.True(stored.UserID().IsEqual(owner.ID()))
	suite.Equal(placed.Number(), stored.Number())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsAllWrites() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	owner, err := user.NewUser(kernel.NewUUID(), "Bob", "bob@example.com", "")
	suite.Require().NoError(err)
	err = uow.UserRepository().Add(ctx, owner)
	suite.Require().NoError(err)

	placed, err := order.NewOrder(kernel.NewUUID(), owner.ID(), decimal.NullDecimal{}, "")
	suite.Require().NoError(err)
	err = uow.OrderRepository().Add(ctx, placed)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	check := suite.factory.Create()
	_, err = check.OrderRepository().Get(ctx, placed.ID())
	suite.Require().Error(err)

	exists, err := check.UserRepository().Exists(ctx, owner.ID())
	suite.Require().NoError(err)
	suite.False(exists)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestDuplicateEmail_SurfacesTranslatedError() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	first, err := user.NewUser(kernel.NewUUID(), "Carol", "carol@example.com", "")
	suite.Require().NoError(err)
	err = uow.UserRepository().Add(ctx, first)
	suite.Require().NoError(err)
	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	dup := suite.factory.Create()
	err = dup.Begin(ctx)
	suite.Require().NoError(err)

	second, err := user.NewUser(kernel.NewUUID(), "Other Carol", "carol@example.com", "")
	suite.Require().NoError(err)
	err = dup.UserRepository().Add(ctx, second)
	suite.Require().ErrorIs(err, gorm.ErrDuplicatedKey)

	err = dup.Rollback(ctx)
	suite.Require().NoError(err)
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
