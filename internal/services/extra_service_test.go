package services

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"coffeehouse/internal/common"
	"coffeehouse/internal/models"
)

type MockExtraRepository struct {
	mock.Mock
}

func (m *MockExtraRepository) List(ctx context.Context) ([]*models.Extra, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Extra), args.Error(1)
}

func (m *MockExtraRepository) GetByID(ctx context.Context, id string) (*models.Extra, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Extra), args.Error(1)
}

func (m *MockExtraRepository) Create(ctx context.Context, extra *models.Extra) error {
	args := m.Called(ctx, extra)
	return args.Error(0)
}

func (m *MockExtraRepository) Update(ctx context.Context, extra *models.Extra) error {
	args := m.Called(ctx, extra)
	return args.Error(0)
}

type ExtraServiceTestSuite struct {
	suite.Suite
	repo    *MockExtraRepository
	service ExtraService
	context context.Context
}

func (suite *ExtraServiceTestSuite) SetupTest() {
	suite.repo = new(MockExtraRepository)
	suite.service = NewExtraService(suite.repo)
	suite.context = context.Background()
}

func TestExtraServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ExtraServiceTestSuite))
}

func (suite *ExtraServiceTestSuite) TestCreateRejectsNegativePrice() {
	in := models.NewExtra{Name: "Whipped Cream", ExtraPrice: decimal.RequireFromString("-0.50")}

	_, err := suite.service.Create(suite.context, in)
	assert.ErrorIs(suite.T(), err, common.ErrInvalidInput)
	suite.repo.AssertNotCalled(suite.T(), "Create")
}

func (suite *ExtraServiceTestSuite) TestCreateAllowsZeroPrice() {
	suite.repo.On("Create", suite.context, mock.AnythingOfType("*models.Extra")).Return(nil)

	created, err := suite.service.Create(suite.context, models.NewExtra{Name: "Ice", ExtraPrice: decimal.Zero})
	assert.NoError(suite.T(), err)
	assert.True(suite.T(), created.ExtraPrice.IsZero())
}

func (suite *ExtraServiceTestSuite) TestCreateDefaultsAvailability() {
	suite.repo.On("Create", suite.context, mock.AnythingOfType("*models.Extra")).Return(nil)

	created, err := suite.service.Create(suite.context, models.NewExtra{Name: "Oat Milk", ExtraPrice: decimal.RequireFromString("0.60")})
	assert.NoError(suite.T(), err)
	assert.True(suite.T(), created.IsAvailable)
}

func (suite *ExtraServiceTestSuite) TestCreateHonorsExplicitUnavailability() {
	unavailable := false
	suite.repo.On("Create", suite.context, mock.AnythingOfType("*models.Extra")).Return(nil)

	created, err := suite.service.Create(suite.context, models.NewExtra{
		Name:        "Seasonal Syrup",
		ExtraPrice:  decimal.RequireFromString("0.80"),
		IsAvailable: &unavailable,
	})
	assert.NoError(suite.T(), err)
	assert.False(suite.T(), created.IsAvailable)
}

func (suite *ExtraServiceTestSuite) TestListReturnsEveryRow() {
	// Extras carry no deleted_at; unavailable rows still list.
	available := models.ExtraFromNew(models.NewExtra{Name: "Caramel", ExtraPrice: decimal.RequireFromString("0.50")}, "x-1")
	retired := models.ExtraFromNew(models.NewExtra{Name: "Pumpkin Spice", ExtraPrice: decimal.RequireFromString("0.70")}, "x-2")
	retired.IsAvailable = false
	suite.repo.On("List", suite.context).Return([]*models.Extra{&available, &retired}, nil)

	listed, err := suite.service.List(suite.context)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), listed, 2)
	assert.False(suite.T(), listed[1].IsAvailable)
}

func (suite *ExtraServiceTestSuite) TestListStorageFailureIsInternal() {
	suite.repo.On("List", suite.context).Return(nil, errors.New("connection reset"))

	_, err := suite.service.List(suite.context)
	assert.ErrorIs(suite.T(), err, common.ErrInternal)
	assert.NotContains(suite.T(), err.Error(), "connection reset")
}

func (suite *ExtraServiceTestSuite) TestGetMissingRowIsNotFound() {
	suite.repo.On("GetByID", suite.context, "x-gone").Return(nil, pgx.ErrNoRows)

	_, err := suite.service.Get(suite.context, "x-gone")
	assert.ErrorIs(suite.T(), err, common.ErrNotFound)
}

func (suite *ExtraServiceTestSuite) TestUpdateRejectsNegativePrice() {
	in := models.UpdateExtra{Name: "Caramel", ExtraPrice: decimal.RequireFromString("-1")}

	_, err := suite.service.Update(suite.context, "x-1", in)
	assert.ErrorIs(suite.T(), err, common.ErrInvalidInput)
	suite.repo.AssertNotCalled(suite.T(), "GetByID")
}

func (suite *ExtraServiceTestSuite) TestUpdateReplacesMutableFields() {
	existing := models.ExtraFromNew(models.NewExtra{Name: "Caramel", ExtraPrice: decimal.RequireFromString("0.50")}, "x-1")
	suite.repo.On("GetByID", suite.context, "x-1").Return(&existing, nil)
	suite.repo.On("Update", suite.context, mock.MatchedBy(func(e *models.Extra) bool {
		return e.ID == "x-1" && e.Name == "Salted Caramel" && !e.IsAvailable
	})).Return(nil)

	updated, err := suite.service.Update(suite.context, "x-1", models.UpdateExtra{
		Name:       "Salted Caramel",
		ExtraPrice: decimal.RequireFromString("0.65"),
	})
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Salted Caramel", updated.Name)
	assert.Equal(suite.T(), "0.65", updated.ExtraPrice.String())
	suite.repo.AssertExpectations(suite.T())
}

func (suite *ExtraServiceTestSuite) TestUpdateMissingRowIsNotFound() {
	suite.repo.On("GetByID", suite.context, "x-gone").Return(nil, pgx.ErrNoRows)

	_, err := suite.service.Update(suite.context, "x-gone", models.UpdateExtra{Name: "X", ExtraPrice: decimal.Zero})
	assert.ErrorIs(suite.T(), err, common.ErrNotFound)
}
