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

type DrinkService interface {
	List(ctx context.Context) ([]models.DrinkAPIModel, error)
	Get(ctx context.Context, id string) (models.DrinkAPIModel, error)
	Create(ctx context.Context, in models.NewDrink) (models.DrinkAPIModel, error)
	Update(ctx context.Context, id string, in models.UpdateDrink) (models.DrinkAPIModel, error)
	Delete(ctx context.Context, id string) error
}

type drinkService struct {
	repo repositories.DrinkRepository
}

func NewDrinkService(repo repositories.DrinkRepository) DrinkService {
	return &drinkService{repo: repo}
}

func (s *drinkService) List(ctx context.Context) ([]models.DrinkAPIModel, error) {
	drinks, err := s.repo.ListActive(ctx)
	if err != nil {
		logger.Error.WithError(err).Error("listing drinks failed")
		return nil, common.Internalf("list drinks")
	}
	out := make([]models.DrinkAPIModel, 0, len(drinks))
	for _, drink := range drinks {
		out = append(out, drink.ToAPIModel())
	}
	return out, nil
}

func (s *drinkService) Get(ctx context.Context, id string) (models.DrinkAPIModel, error) {
	if err := common.ValidateID(id, "drink id"); err != nil {
		return models.DrinkAPIModel{}, err
	}
	drink, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if common.IsNoRows(err) {
			return models.DrinkAPIModel{}, common.NotFoundf("drink %s", id)
		}
		logger.Error.WithError(err).WithField("drink_id", id).Error("loading drink failed")
		return models.DrinkAPIModel{}, common.Internalf("load drink")
	}
	return drink.ToAPIModel(), nil
}

func (s *drinkService) Create(ctx context.Context, in models.NewDrink) (models.DrinkAPIModel, error) {
	if err := common.ValidateRequiredString(in.Name, "name"); err != nil {
		return models.DrinkAPIModel{}, err
	}
	if err := common.ValidatePositivePrice(in.BasePrice, "base_price"); err != nil {
		return models.DrinkAPIModel{}, err
	}

	drink := models.DrinkFromNew(in, uuid.NewString())
	if err := s.repo.Create(ctx, &drink); err != nil {
		if common.IsUniqueViolation(err) {
			return models.DrinkAPIModel{}, common.Conflictf("drink %s already exists", in.Name)
		}
		logger.Error.WithError(err).Error("creating drink failed")
		return models.DrinkAPIModel{}, common.Internalf("create drink")
	}
	return drink.ToAPIModel(), nil
}

// Update changes base_price only; the name is immutable after creation.
func (s *drinkService) Update(ctx context.Context, id string, in models.UpdateDrink) (models.DrinkAPIModel, error) {
	if err := common.ValidateID(id, "drink id"); err != nil {
		return models.DrinkAPIModel{}, err
	}
	if err := common.ValidatePositivePrice(in.BasePrice, "base_price"); err != nil {
		return models.DrinkAPIModel{}, err
	}

	drink, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if common.IsNoRows(err) {
			return models.DrinkAPIModel{}, common.NotFoundf("drink %s", id)
		}
		logger.Error.WithError(err).WithField("drink_id", id).Error("loading drink failed")
		return models.DrinkAPIModel{}, common.Internalf("load drink")
	}

	drink.UpdateFromInput(in)
	if err := s.repo.Update(ctx, drink); err != nil {
		if common.IsNoRows(err) {
			return models.DrinkAPIModel{}, common.NotFoundf("drink %s", id)
		}
		logger.Error.WithError(err).WithField("drink_id", id).Error("updating drink failed")
		return models.DrinkAPIModel{}, common.Internalf("update drink")
	}
	return drink.ToAPIModel(), nil
}

func (s *drinkService) Delete(ctx context.Context, id string) error {
	if err := common.ValidateID(id, "drink id"); err != nil {
		return err
	}
	deletedAt := dbtext.NewDateTime(nowUTC())
	if err := s.repo.SoftDelete(ctx, id, deletedAt); err != nil {
		if common.IsNoRows(err) {
			return common.NotFoundf("drink %s", id)
		}
		logger.Error.WithError(err).WithField("drink_id", id).Error("deleting drink failed")
		return common.Internalf("delete drink")
	}
	return nil
}
