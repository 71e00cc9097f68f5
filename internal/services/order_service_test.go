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
	"coffeehouse/internal/repositories"
)

type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) List(ctx context.Context) ([]*models.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByID(ctx context.Context, id string) (*models.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *MockOrderRepository) CreateWithItems(ctx context.Context, order *models.Order, items []repositories.OrderItemRow) error {
	args := m.Called(ctx, order, items)
	return args.Error(0)
}

type MockOrderItemRepository struct {
	mock.Mock
}

func (m *MockOrderItemRepository) ListByOrder(ctx context.Context, orderID string) ([]*models.OrderItem, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.OrderItem), args.Error(1)
}

func (m *MockOrderItemRepository) ListExtrasByItem(ctx context.Context, orderItemID string) ([]*models.OrderItemExtra, error) {
	args := m.Called(ctx, orderItemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.OrderItemExtra), args.Error(1)
}

type OrderServiceTestSuite struct {
	suite.Suite
	orders  *MockOrderRepository
	items   *MockOrderItemRepository
	service OrderService
	context context.Context
}

func (suite *OrderServiceTestSuite) SetupTest() {
	suite.orders = new(MockOrderRepository)
	suite.items = new(MockOrderItemRepository)
	suite.service = NewOrderService(suite.orders, suite.items)
	suite.context = context.Background()
}

func TestOrderServiceTestSuite(t *testing.T) {
	suite.Run(t, new(OrderServiceTestSuite))
}

func incomingOrder() models.IncomingOrder {
	return models.IncomingOrder{
		CustomerID: "cust-1",
		EmployeeID: "emp-1",
		Status:     models.OrderStatusPending,
		Items: []models.IncomingOrderItem{
			{
				DrinkID:    "drink-1",
				Size:       models.DrinkSizeMedium,
				TotalPrice: decimal.RequireFromString("4.75"),
				Extras:     []string{"extra-1"},
			},
		},
	}
}

func (suite *OrderServiceTestSuite) TestCreateRejectsBlankCustomerID() {
	in := incomingOrder()
	in.CustomerID = " "

	_, err := suite.service.Create(suite.context, in)
	assert.ErrorIs(suite.T(), err, common.ErrInvalidInput)
	suite.orders.AssertNotCalled(suite.T(), "CreateWithItems")
}

func (suite *OrderServiceTestSuite) TestCreateRejectsMissingStatus() {
	in := incomingOrder()
	in.Status = ""

	_, err := suite.service.Create(suite.context, in)
	assert.ErrorIs(suite.T(), err, common.ErrInvalidInput)
}

func (suite *OrderServiceTestSuite) TestCreateRejectsBlankDrinkID() {
	in := incomingOrder()
	in.Items[0].DrinkID = ""

	_, err := suite.service.Create(suite.context, in)
	assert.ErrorIs(suite.T(), err, common.ErrInvalidInput)
}

func (suite *OrderServiceTestSuite) TestCreateBuildsLinkedGraph() {
	suite.orders.On("CreateWithItems", suite.context, mock.AnythingOfType("*models.Order"),
		mock.MatchedBy(func(rows []repositories.OrderItemRow) bool {
			if len(rows) != 1 || len(rows[0].Extras) != 1 {
				return false
			}
			item := rows[0].Item
			extra := rows[0].Extras[0]
			return item.ID != "" &&
				item.DrinkID == "drink-1" &&
				extra.OrderItemID == item.ID &&
				extra.ExtraID == "extra-1" &&
				item.TotalPrice.Decimal.String() == "4.75"
		})).Return(nil)

	created, err := suite.service.Create(suite.context, incomingOrder())
	assert.NoError(suite.T(), err)
	assert.NotEmpty(suite.T(), created.ID)
	assert.Equal(suite.T(), models.OrderStatusPending, created.Status)
	suite.orders.AssertExpectations(suite.T())
}

func (suite *OrderServiceTestSuite) TestCreateFailureIsGenericInternal() {
	suite.orders.On("CreateWithItems", suite.context, mock.Anything, mock.Anything).
		Return(errors.New("fk violation on drink_id"))

	_, err := suite.service.Create(suite.context, incomingOrder())
	assert.ErrorIs(suite.T(), err, common.ErrInternal)
	assert.NotContains(suite.T(), err.Error(), "fk violation")
}

func (suite *OrderServiceTestSuite) TestGetMissingOrderIsNotFound() {
	suite.orders.On("GetByID", suite.context, "order-gone").Return(nil, pgx.ErrNoRows)

	_, err := suite.service.Get(suite.context, "order-gone")
	assert.ErrorIs(suite.T(), err, common.ErrNotFound)
}

func (suite *OrderServiceTestSuite) TestListItemsCollectsExtraIDs() {
	order := models.OrderFromNew(models.NewOrder{
		CustomerID: "cust-1",
		EmployeeID: "emp-1",
		Status:     models.OrderStatusPaid,
	}, "order-1")
	item := models.OrderItemFromNew(models.NewOrderItem{
		OrderID:    "order-1",
		DrinkID:    "drink-1",
		Size:       models.DrinkSizeLarge,
		TotalPrice: decimal.RequireFromString("5.25"),
	}, "item-1")
	extra := models.OrderItemExtraFromNew(models.NewOrderItemExtra{
		OrderItemID: "item-1",
		ExtraID:     "extra-1",
	}, "oie-1")

	suite.orders.On("GetByID", suite.context, "order-1").Return(&order, nil)
	suite.items.On("ListByOrder", suite.context, "order-1").Return([]*models.OrderItem{&item}, nil)
	suite.items.On("ListExtrasByItem", suite.context, "item-1").Return([]*models.OrderItemExtra{&extra}, nil)

	details, err := suite.service.ListItems(suite.context, "order-1")
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), details, 1)
	assert.Equal(suite.T(), []string{"extra-1"}, details[0].ExtraIDs)
	assert.Equal(suite.T(), models.DrinkSizeLarge, details[0].Size)
}
