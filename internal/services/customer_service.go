package services

import (
	"context"

	"github.com/google/uuid"

	"coffeehouse/internal/common"
	"coffeehouse/internal/dbtext"
	"coffeehouse/internal/models"
	"coffeehouse/internal/repositories"
	"coffeehouse/pkg/logger"
)

// CustomerService is the boundary the HTTP layer calls: it validates inputs,
// stamps ids and timestamps, and translates storage failures into the error
// kinds of internal/common.
type CustomerService interface {
	List(ctx context.Context) ([]models.CustomerAPIModel, error)
	Get(ctx context.Context, id string) (models.CustomerAPIModel, error)
	Create(ctx context.Context, in models.NewCustomer) (models.CustomerAPIModel, error)
	Update(ctx context.Context, id string, in models.UpdateCustomer) (models.CustomerAPIModel, error)
	Delete(ctx context.Context, id string) error
}

type customerService struct {
	repo repositories.CustomerRepository
}

func NewCustomerService(repo repositories.CustomerRepository) CustomerService {
	return &customerService{repo: repo}
}

func (s *customerService) List(ctx context.Context) ([]models.CustomerAPIModel, error) {
	customers, err := s.repo.ListActive(ctx)
	if err != nil {
		logger.Error.WithError(err).Error("listing customers failed")
		return nil, common.Internalf("list customers")
	}
	out := make([]models.CustomerAPIModel, 0, len(customers))
	for _, customer := range customers {
		out = append(out, customer.ToAPIModel())
	}
	return out, nil
}

func (s *customerService) Get(ctx context.Context, id string) (models.CustomerAPIModel, error) {
	if err := common.ValidateID(id, "customer id"); err != nil {
		return models.CustomerAPIModel{}, err
	}
	customer, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if common.IsNoRows(err) {
			return models.CustomerAPIModel{}, common.NotFoundf("customer %s", id)
		}
		logger.Error.WithError(err).WithField("customer_id", id).Error("loading customer failed")
		return models.CustomerAPIModel{}, common.Internalf("load customer")
	}
	return customer.ToAPIModel(), nil
}

func (s *customerService) Create(ctx context.Context, in models.NewCustomer) (models.CustomerAPIModel, error) {
	if err := common.ValidateRequiredString(in.Name, "name"); err != nil {
		return models.CustomerAPIModel{}, err
	}
	if err := common.ValidateEmail(in.Email); err != nil {
		return models.CustomerAPIModel{}, err
	}

	customer := models.CustomerFromNew(in, uuid.NewString())
	if err := s.repo.Create(ctx, &customer); err != nil {
		if common.IsUniqueViolation(err) {
			return models.CustomerAPIModel{}, common.Conflictf("customer email %s already exists", in.Email)
		}
		logger.Error.WithError(err).Error("creating customer failed")
		return models.CustomerAPIModel{}, common.Internalf("create customer")
	}
	return customer.ToAPIModel(), nil
}

func (s *customerService) Update(ctx context.Context, id string, in models.UpdateCustomer) (models.CustomerAPIModel, error) {
	if err := common.ValidateID(id, "customer id"); err != nil {
		return models.CustomerAPIModel{}, err
	}
	if err := common.ValidateRequiredString(in.Name, "name"); err != nil {
		return models.CustomerAPIModel{}, err
	}
	if err := common.ValidateEmail(in.Email); err != nil {
		return models.CustomerAPIModel{}, err
	}

	// Read-modify-write: load the current row, replace only the mutable
	// fields, persist.
	customer, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if common.IsNoRows(err) {
			return models.CustomerAPIModel{}, common.NotFoundf("customer %s", id)
		}
		logger.Error.WithError(err).WithField("customer_id", id).Error("loading customer failed")
		return models.CustomerAPIModel{}, common.Internalf("load customer")
	}

	customer.UpdateFromInput(in)
	if err := s.repo.Update(ctx, customer); err != nil {
		if common.IsNoRows(err) {
			return models.CustomerAPIModel{}, common.NotFoundf("customer %s", id)
		}
		if common.IsUniqueViolation(err) {
			return models.CustomerAPIModel{}, common.Conflictf("customer email %s already exists", in.Email)
		}
		logger.Error.WithError(err).WithField("customer_id", id).Error("updating customer failed")
		return models.CustomerAPIModel{}, common.Internalf("update customer")
	}
	return customer.ToAPIModel(), nil
}

func (s *customerService) Delete(ctx context.Context, id string) error {
	if err := common.ValidateID(id, "customer id"); err != nil {
		return err
	}
	deletedAt := dbtext.NewDateTime(nowUTC())
	if err := s.repo.SoftDelete(ctx, id, deletedAt); err != nil {
		if common.IsNoRows(err) {
			return common.NotFoundf("customer %s", id)
		}
		logger.Error.WithError(err).WithField("customer_id", id).Error("deleting customer failed")
		return common.Internalf("delete customer")
	}
	return nil
}
