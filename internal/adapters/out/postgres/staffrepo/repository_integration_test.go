package staffrepo_test

import (
	"context"
	"testing"
	"time"

	"dispatch/internal/adapters/out/postgres/staffrepo"
	"dispatch/internal/core/domain/model/product"
	"dispatch/internal/core/domain/model/staff"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of the aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id string, aggregate any) {
	m.Called(id, aggregate)
}

// StaffRepositoryIntegrationTestSuite provides integration tests for StaffRepository
// using PostgreSQL containers to verify database persistence behavior.
type StaffRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *staffrepo.GormStaffRepository
	tracker    *MockAggregateTracker
}

func (suite *StaffRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&staffrepo.StaffDTO{}))
}

func (suite *StaffRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE staff").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = staffrepo.NewGormStaffRepository(suite.db, suite.tracker)
}

func (suite *StaffRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *StaffRepositoryIntegrationTestSuite) TestAdd_ValidStaff_Success() {
	ctx := context.Background()
	member, err := staff.NewStaff("S001", "Chandler", []product.Category{product.VegPizza, product.Burger})
	suite.Require().NoError(err)

	err = suite.repository.Add(ctx, member)

	suite.Require().NoError(err)

	restored, err := suite.repository.Get(ctx, "S001")
	suite.Require().NoError(err)
	suite.True(restored.IsEqual(member))
	suite.Equal("Chandler", restored.Name())
	suite.Equal([]product.Category{product.VegPizza, product.Burger}, restored.Skills())
	suite.False(restored.IsLoggedIn())
}

func (suite *StaffRepositoryIntegrationTestSuite) TestGet_NotFound() {
	ctx := context.Background()

	_, err := suite.repository.Get(ctx, "S999")

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *StaffRepositoryIntegrationTestSuite) TestUpdate_PersistsLoginState() {
	ctx := context.Background()
	member, err := staff.NewStaff("S005", "Ross", []product.Category{product.Drinks})
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(ctx, member))

	member.Login()
	suite.Require().NoError(suite.repository.Update(ctx, member))

	restored, err := suite.repository.Get(ctx, "S005")
	suite.Require().NoError(err)
	suite.True(restored.IsLoggedIn())

	member.Logout()
	suite.Require().NoError(suite.repository.Update(ctx, member))

	restored, err = suite.repository.Get(ctx, "S005")
	suite.Require().NoError(err)
	suite.False(restored.IsLoggedIn())
}

func (suite *StaffRepositoryIntegrationTestSuite) TestUpdate_UnknownStaff_ReturnsError() {
	ctx := context.Background()
	member, err := staff.NewStaff("S404", "Gunther", []product.Category{product.Drinks})
	suite.Require().NoError(err)

	err = suite.repository.Update(ctx, member)

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *StaffRepositoryIntegrationTestSuite) TestGetAll_PreservesRegistrationOrder() {
	ctx := context.Background()

	roster := []struct {
		id     string
		name   string
		skills []product.Category
	}{
		{"S001", "Chandler", []product.Category{product.VegPizza, product.Burger}},
		{"S002", "Joey", []product.Category{product.VegPizza, product.NonVegPizza, product.Burger, product.Drinks}},
		{"S003", "Rachel", []product.Category{product.NonVegPizza}},
	}
	for _, entry := range roster {
		member, err := staff.NewStaff(entry.id, entry.name, entry.skills)
		suite.Require().NoError(err)
		suite.Require().NoError(suite.repository.Add(ctx, member))
	}

	members, err := suite.repository.GetAll(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(members, 3)
	for i, entry := range roster {
		suite.Equal(entry.id, members[i].ID())
		suite.Equal(entry.skills, members[i].Skills())
	}
}

func (suite *StaffRepositoryIntegrationTestSuite) TestAdd_TracksAggregate() {
	ctx := context.Background()
	member, err := staff.NewStaff("S004", "Monica", []product.Category{product.Sandwich})
	suite.Require().NoError(err)

	tracker := new(MockAggregateTracker)
	tracker.On("TrackAggregate", "S004", member).Once()
	repository := staffrepo.NewGormStaffRepository(suite.db, tracker)

	suite.Require().NoError(repository.Add(ctx, member))
	tracker.AssertExpectations(suite.T())
}

func TestStaffRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(StaffRepositoryIntegrationTestSuite))
}
