package services

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"coffeehouse/internal/common"
	"coffeehouse/internal/dbtext"
	"coffeehouse/internal/models"
)

type MockEmployeeRepository struct {
	mock.Mock
}

func (m *MockEmployeeRepository) ListActive(ctx context.Context) ([]*models.Employee, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) GetByID(ctx context.Context, id string) (*models.Employee, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) Create(ctx context.Context, employee *models.Employee) error {
	args := m.Called(ctx, employee)
	return args.Error(0)
}

func (m *MockEmployeeRepository) Update(ctx context.Context, employee *models.Employee) error {
	args := m.Called(ctx, employee)
	return args.Error(0)
}

func (m *MockEmployeeRepository) SoftDelete(ctx context.Context, id string, deletedAt dbtext.DateTime) error {
	args := m.Called(ctx, id, deletedAt)
	return args.Error(0)
}

type EmployeeServiceTestSuite struct {
	suite.Suite
	repo    *MockEmployeeRepository
	service EmployeeService
	context context.Context
}

func (suite *EmployeeServiceTestSuite) SetupTest() {
	suite.repo = new(MockEmployeeRepository)
	suite.service = NewEmployeeService(suite.repo)
	suite.context = context.Background()
}

func TestEmployeeServiceTestSuite(t *testing.T) {
	suite.Run(t, new(EmployeeServiceTestSuite))
}

func newEmployeeInput() models.NewEmployee {
	return models.NewEmployee{
		Name:      "Sam",
		Email:     "sam@example.com",
		BirthDate: dbtext.NewDate(time.Date(1990, 4, 12, 0, 0, 0, 0, time.UTC)),
	}
}

func (suite *EmployeeServiceTestSuite) TestCreateRejectsMissingBirthDate() {
	in := newEmployeeInput()
	in.BirthDate = dbtext.Date{}

	_, err := suite.service.Create(suite.context, in)
	assert.ErrorIs(suite.T(), err, common.ErrInvalidInput)
	suite.repo.AssertNotCalled(suite.T(), "Create")
}

func (suite *EmployeeServiceTestSuite) TestCreateRejectsEmailWithoutAt() {
	in := newEmployeeInput()
	in.Email = "sam.example.com"

	_, err := suite.service.Create(suite.context, in)
	assert.ErrorIs(suite.T(), err, common.ErrInvalidInput)
	suite.repo.AssertNotCalled(suite.T(), "Create")
}

func (suite *EmployeeServiceTestSuite) TestCreateStampsIDAndTimestamps() {
	suite.repo.On("Create", suite.context, mock.AnythingOfType("*models.Employee")).Return(nil)

	created, err := suite.service.Create(suite.context, newEmployeeInput())
	assert.NoError(suite.T(), err)
	assert.NotEmpty(suite.T(), created.ID)
	assert.Equal(suite.T(), created.CreatedAt, created.UpdatedAt)
	assert.Equal(suite.T(), "1990-04-12", created.BirthDate.String())
	assert.Nil(suite.T(), created.DeletedAt)
}

func (suite *EmployeeServiceTestSuite) TestCreateDuplicateEmailIsConflict() {
	duplicate := &pgconn.PgError{Code: "23505", ConstraintName: "employees_email_key"}
	suite.repo.On("Create", suite.context, mock.AnythingOfType("*models.Employee")).Return(duplicate)

	_, err := suite.service.Create(suite.context, newEmployeeInput())
	assert.ErrorIs(suite.T(), err, common.ErrConflict)
}

func (suite *EmployeeServiceTestSuite) TestGetSoftDeletedIsNotFound() {
	suite.repo.On("GetByID", suite.context, "e-deleted").Return(nil, pgx.ErrNoRows)

	_, err := suite.service.Get(suite.context, "e-deleted")
	assert.ErrorIs(suite.T(), err, common.ErrNotFound)
}

func (suite *EmployeeServiceTestSuite) TestListConvertsActiveRows() {
	existing := models.EmployeeFromNew(newEmployeeInput(), "e-1")
	suite.repo.On("ListActive", suite.context).Return([]*models.Employee{&existing}, nil)

	listed, err := suite.service.List(suite.context)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), listed, 1)
	assert.Equal(suite.T(), "e-1", listed[0].ID)
	assert.Nil(suite.T(), listed[0].DeletedAt)
}

func (suite *EmployeeServiceTestSuite) TestUpdateNeverTouchesBirthDate() {
	existing := models.EmployeeFromNew(newEmployeeInput(), "e-1")
	birthDate := existing.BirthDate.String()
	suite.repo.On("GetByID", suite.context, "e-1").Return(&existing, nil)
	suite.repo.On("Update", suite.context, mock.MatchedBy(func(e *models.Employee) bool {
		return e.BirthDate.String() == birthDate && e.Name == "Samantha"
	})).Return(nil)

	updated, err := suite.service.Update(suite.context, "e-1", models.UpdateEmployee{Name: "Samantha", Email: "sam@example.com"})
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), birthDate, updated.BirthDate.String())
	suite.repo.AssertExpectations(suite.T())
}

func (suite *EmployeeServiceTestSuite) TestUpdateMissingRowIsNotFound() {
	suite.repo.On("GetByID", suite.context, "e-gone").Return(nil, pgx.ErrNoRows)

	_, err := suite.service.Update(suite.context, "e-gone", models.UpdateEmployee{Name: "X", Email: "x@y.z"})
	assert.ErrorIs(suite.T(), err, common.ErrNotFound)
}

func (suite *EmployeeServiceTestSuite) TestDeleteSoftDeletesOnce() {
	suite.repo.On("SoftDelete", suite.context, "e-1", mock.AnythingOfType("dbtext.DateTime")).Return(nil).Once()

	err := suite.service.Delete(suite.context, "e-1")
	assert.NoError(suite.T(), err)
	suite.repo.AssertExpectations(suite.T())
}

func (suite *EmployeeServiceTestSuite) TestDeleteAlreadyDeletedIsNotFound() {
	suite.repo.On("SoftDelete", suite.context, "e-1", mock.AnythingOfType("dbtext.DateTime")).Return(pgx.ErrNoRows)

	err := suite.service.Delete(suite.context, "e-1")
	assert.ErrorIs(suite.T(), err, common.ErrNotFound)
}
