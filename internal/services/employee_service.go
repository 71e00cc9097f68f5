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

type EmployeeService interface {
	List(ctx context.Context) ([]models.EmployeeAPIModel, error)
	Get(ctx context.Context, id string) (models.EmployeeAPIModel, error)
	Create(ctx context.Context, in models.NewEmployee) (models.EmployeeAPIModel, error)
	Update(ctx context.Context, id string, in models.UpdateEmployee) (models.EmployeeAPIModel, error)
	Delete(ctx context.Context, id string) error
}

type employeeService struct {
	repo repositories.EmployeeRepository
}

func NewEmployeeService(repo repositories.EmployeeRepository) EmployeeService {
	return &employeeService{repo: repo}
}

func (s *employeeService) List(ctx context.Context) ([]models.EmployeeAPIModel, error) {
	employees, err := s.repo.ListActive(ctx)
	if err != nil {
		logger.Error.WithError(err).Error("listing employees failed")
		return nil, common.Internalf("list employees")
	}
	out := make([]models.EmployeeAPIModel, 0, len(employees))
	for _, employee := range employees {
		out = append(out, employee.ToAPIModel())
	}
	return out, nil
}

func (s *employeeService) Get(ctx context.Context, id string) (models.EmployeeAPIModel, error) {
	if err := common.ValidateID(id, "employee id"); err != nil {
		return models.EmployeeAPIModel{}, err
	}
	employee, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if common.IsNoRows(err) {
			return models.EmployeeAPIModel{}, common.NotFoundf("employee %s", id)
		}
		logger.Error.WithError(err).WithField("employee_id", id).Error("loading employee failed")
		return models.EmployeeAPIModel{}, common.Internalf("load employee")
	}
	return employee.ToAPIModel(), nil
}

func (s *employeeService) Create(ctx context.Context, in models.NewEmployee) (models.EmployeeAPIModel, error) {
	if err := common.ValidateRequiredString(in.Name, "name"); err != nil {
		return models.EmployeeAPIModel{}, err
	}
	if err := common.ValidateEmail(in.Email); err != nil {
		return models.EmployeeAPIModel{}, err
	}
	if in.BirthDate.Time.IsZero() {
		return models.EmployeeAPIModel{}, common.InvalidInputf("birth_date is required")
	}

	employee := models.EmployeeFromNew(in, uuid.NewString())
	if err := s.repo.Create(ctx, &employee); err != nil {
		if common.IsUniqueViolation(err) {
			return models.EmployeeAPIModel{}, common.Conflictf("employee email %s already exists", in.Email)
		}
		logger.Error.WithError(err).Error("creating employee failed")
		return models.EmployeeAPIModel{}, common.Internalf("create employee")
	}
	return employee.ToAPIModel(), nil
}

// Update changes name and email; birth_date is immutable after creation.
func (s *employeeService) Update(ctx context.Context, id string, in models.UpdateEmployee) (models.EmployeeAPIModel, error) {
	if err := common.ValidateID(id, "employee id"); err != nil {
		return models.EmployeeAPIModel{}, err
	}
	if err := common.ValidateRequiredString(in.Name, "name"); err != nil {
		return models.EmployeeAPIModel{}, err
	}
	if err := common.ValidateEmail(in.Email); err != nil {
		return models.EmployeeAPIModel{}, err
	}

	employee, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if common.IsNoRows(err) {
			return models.EmployeeAPIModel{}, common.NotFoundf("employee %s", id)
		}
		logger.Error.WithError(err).WithField("employee_id", id).Error("loading employee failed")
		return models.EmployeeAPIModel{}, common.Internalf("load employee")
	}

	employee.UpdateFromInput(in)
	if err := s.repo.Update(ctx, employee); err != nil {
		if common.IsNoRows(err) {
			return models.EmployeeAPIModel{}, common.NotFoundf("employee %s", id)
		}
		if common.IsUniqueViolation(err) {
			return models.EmployeeAPIModel{}, common.Conflictf("employee email %s already exists", in.Email)
		}
		logger.Error.WithError(err).WithField("employee_id", id).Error("updating employee failed")
		return models.EmployeeAPIModel{}, common.Internalf("update employee")
	}
	return employee.ToAPIModel(), nil
}

func (s *employeeService) Delete(ctx context.Context, id string) error {
	if err := common.ValidateID(id, "employee id"); err != nil {
		return err
	}
	deletedAt := dbtext.NewDateTime(nowUTC())
	if err := s.repo.SoftDelete(ctx, id, deletedAt); err != nil {
		if common.IsNoRows(err) {
			return common.NotFoundf("employee %s", id)
		}
		logger.Error.WithError(err).WithField("employee_id", id).Error("deleting employee failed")
		return common.Internalf("delete employee")
	}
	return nil
}
