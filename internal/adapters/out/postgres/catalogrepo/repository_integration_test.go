package catalogrepo_test

import (
	"context"
	"testing"
	"time"

	"treats/internal/adapters/out/postgres/catalogrepo"

	"github.com/lib/pq"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// CatalogRepositoryIntegrationTestSuite provides integration tests for the
// read-only catalog repository: active filtering, sort order, and the text[]
// weekday column.
type CatalogRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *catalogrepo.GormCatalogRepository
}

func (suite *CatalogRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(
		&catalogrepo.PackageOptionDTO{},
		&catalogrepo.TreatOptionDTO{},
		&catalogrepo.DesignOptionDTO{},
		&catalogrepo.TimeSlotDTO{},
		&catalogrepo.UnavailablePeriodDTO{},
	))
}

func (suite *CatalogRepositoryIntegrationTestSuite) SetupTest() {
	for _, table := range []string{
		"package_options", "treat_options", "design_options", "time_slots", "unavailable_periods",
	} {
		suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE " + table).Error)
	}

	suite.repository = catalogrepo.NewGormCatalogRepository(suite.db)
}

func (suite *CatalogRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *CatalogRepositoryIntegrationTestSuite) TestGetPackageOptions_ActiveSorted() {
	suite.Require().NoError(suite.db.Create([]catalogrepo.PackageOptionDTO{
		{Key: "large", Label: "Large", Price: 110, Active: true, SortOrder: 3},
		{Key: "small", Label: "Small", Price: 40, Active: true, SortOrder: 1},
		{Key: "retired", Label: "Retired", Price: 99, Active: false, SortOrder: 2},
	}).Error)

	options, err := suite.repository.GetPackageOptions(context.Background())
	suite.Require().NoError(err)

	suite.Require().Len(options, 2, "inactive entries are filtered out")
	suite.Assert().Equal("small", options[0].Key)
	suite.Assert().Equal("large", options[1].Key)
}

func (suite *CatalogRepositoryIntegrationTestSuite) TestGetDesignOptions_NullPerDozenPrice() {
	perDozen := 12.0
	suite.Require().NoError(suite.db.Create([]catalogrepo.DesignOptionDTO{
		{ID: "d1", Label: "Drizzle", BasePrice: 15, LargePriceIncrease: 5, PerDozenPrice: &perDozen, Active: true, SortOrder: 1},
		{ID: "d2", Label: "Sprinkles", BasePrice: 8, Active: true, SortOrder: 2},
	}).Error)

	options, err := suite.repository.GetDesignOptions(context.Background())
	suite.Require().NoError(err)

	suite.Require().Len(options, 2)
	suite.Require().NotNil(options[0].PerDozenPrice)
	suite.Assert().InDelta(12, *options[0].PerDozenPrice, 0.001)
	suite.Assert().Nil(options[1].PerDozenPrice)
}

func (suite *CatalogRepositoryIntegrationTestSuite) TestGetTimeSlots_DaysArrayRoundTrip() {
	suite.Require().NoError(suite.db.Create(&catalogrepo.TimeSlotDTO{
		ID:        "ts1",
		Label:     "Morning",
		StartTime: "09:00",
		EndTime:   "12:00",
		Days:      pq.StringArray{"saturday", "sunday"},
		Active:    true,
		SortOrder: 1,
	}).Error)

	slots, err := suite.repository.GetTimeSlots(context.Background())
	suite.Require().NoError(err)

	suite.Require().Len(slots, 1)
	suite.Assert().Equal([]string{"saturday", "sunday"}, slots[0].Days)
}

func (suite *CatalogRepositoryIntegrationTestSuite) TestGetUnavailablePeriods_OrderedByStartDate() {
	suite.Require().NoError(suite.db.Create([]catalogrepo.UnavailablePeriodDTO{
		{ID: "p2", Reason: "vacation", StartDate: "2026-12-20", EndDate: "2027-01-05", Active: true},
		{ID: "p1", Reason: "maintenance", StartDate: "2026-09-01", EndDate: "2026-09-03", Active: true},
		{ID: "p3", Reason: "old", StartDate: "2025-01-01", EndDate: "2025-01-02", Active: false},
	}).Error)

	periods, err := suite.repository.GetUnavailablePeriods(context.Background())
	suite.Require().NoError(err)

	suite.Require().Len(periods, 2)
	suite.Assert().Equal("p1", periods[0].ID)
	suite.Assert().Equal("p2", periods[1].ID)
}

func TestCatalogRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(CatalogRepositoryIntegrationTestSuite))
}
