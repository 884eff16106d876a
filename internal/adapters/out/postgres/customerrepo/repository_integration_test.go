package customerrepo_test

import (
	"context"
	"testing"
	"time"

	"treats/internal/adapters/out/postgres/customerrepo"
	"treats/internal/core/domain/model/customer"
	"treats/internal/core/domain/model/kernel"
	"treats/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

// CustomerRepositoryIntegrationTestSuite provides integration tests for
// CustomerRepository, in particular the insert-or-update behavior on the
// unique email key.
type CustomerRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *customerrepo.GormCustomerRepository
	tracker    *MockAggregateTracker
}

func (suite *CustomerRepositoryIntegrationTestSuite) SetupSuite() {
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

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&customerrepo.CustomerDTO{}))
}

func (suite *CustomerRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE customers").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = customerrepo.NewGormCustomerRepository(suite.db, suite.tracker)
}

func (suite *CustomerRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *CustomerRepositoryIntegrationTestSuite) TestUpsert_NewEmail_Inserts() {
	entity, err := customer.NewCustomer(kernel.NewUUID(), "maya@example.com", "Maya", "Hart", "555-0134")
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Once()

	stored, err := suite.repository.Upsert(context.Background(), entity)
	suite.Require().NoError(err)
	suite.Assert().True(entity.ID().IsEqual(stored.ID()))
	suite.Assert().Equal("maya@example.com", stored.Email())
}

func (suite *CustomerRepositoryIntegrationTestSuite) TestUpsert_ExistingEmail_KeepsIDOverwritesProfile() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(2)

	first, err := customer.NewCustomer(kernel.NewUUID(), "maya@example.com", "Maya", "Hart", "555-0134")
	suite.Require().NoError(err)
	_, err = suite.repository.Upsert(ctx, first)
	suite.Require().NoError(err)

	second, err := customer.NewCustomer(kernel.NewUUID(), "maya@example.com", "M.", "Hart-Jones", "555-0199")
	suite.Require().NoError(err)
	stored, err := suite.repository.Upsert(ctx, second)
	suite.Require().NoError(err)

	suite.Assert().True(first.ID().IsEqual(stored.ID()), "the original id stays keyed to the email")
	suite.Assert().Equal("M.", stored.FirstName())
	suite.Assert().Equal("Hart-Jones", stored.LastName())
	suite.Assert().Equal("555-0199", stored.Phone())

	var count int64
	suite.Require().NoError(suite.db.Model(&customerrepo.CustomerDTO{}).Count(&count).Error)
	suite.Assert().EqualValues(1, count, "never more than one record per email")
}

func (suite *CustomerRepositoryIntegrationTestSuite) TestGetByEmail() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Once()

	entity, err := customer.NewCustomer(kernel.NewUUID(), "maya@example.com", "Maya", "", "")
	suite.Require().NoError(err)
	_, err = suite.repository.Upsert(ctx, entity)
	suite.Require().NoError(err)

	found, err := suite.repository.GetByEmail(ctx, "  maya@example.com ")
	suite.Require().NoError(err)
	suite.Assert().True(entity.ID().IsEqual(found.ID()))

	_, err = suite.repository.GetByEmail(ctx, "unknown@example.com")
	suite.Assert().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *CustomerRepositoryIntegrationTestSuite) TestGet_NonExistent_ReturnsNotFoundError() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())
	suite.Assert().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestCustomerRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(CustomerRepositoryIntegrationTestSuite))
}
