package services

import (
	"context"

	"github.com/google/uuid"

	"coffeehouse/internal/common"
	"coffeehouse/internal/models"
	"coffeehouse/internal/repositories"
	"coffeehouse/pkg/logger"
)

type ExtraService interface {
	List(ctx context.Context) ([]models.ExtraAPIModel, error)
	Get(ctx context.Context, id string) (models.ExtraAPIModel, error)
	Create(ctx context.Context, in models.NewExtra) (models.ExtraAPIModel, error)
	Update(ctx context.Context, id string, in models.UpdateExtra) (models.ExtraAPIModel, error)
}

type extraService struct {
	repo repositories.ExtraRepository
}

func NewExtraService(repo repositories.ExtraRepository) ExtraService {
	return &extraService{repo: repo}
}

func (s *extraService) List(ctx context.Context) ([]models.ExtraAPIModel, error) {
	extras, err := s.repo.List(ctx)
	if err != nil {
		logger.Error.WithError(err).Error("listing extras failed")
		return nil, common.Internalf("list extras")
	}
	out := make([]models.ExtraAPIModel, 0, len(extras))
	for _, extra := range extras {
		out = append(out, extra.ToAPIModel())
	}
	return out, nil
}

func (s *extraService) Get(ctx context.Context, id string) (models.ExtraAPIModel, error) {
	if err := common.ValidateID(id, "extra id"); err != nil {
		return models.ExtraAPIModel{}, err
	}
	extra, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if common.IsNoRows(err) {
			return models.ExtraAPIModel{}, common.NotFoundf("extra %s", id)
		}
		logger.Error.WithError(err).WithField("extra_id", id).Error("loading extra failed")
		return models.ExtraAPIModel{}, common.Internalf("load extra")
	}
	return extra.ToAPIModel(), nil
}

// Create applies the availability default (true) when the input omits it.
// Extra prices may be zero, so only negative values are rejected.
func (s *extraService) Create(ctx context.Context, in models.NewExtra) (models.ExtraAPIModel, error) {
	if err := common.ValidateRequiredString(in.Name, "name"); err != nil {
		return models.ExtraAPIModel{}, err
	}
	if in.ExtraPrice.Sign() < 0 {
		return models.ExtraAPIModel{}, common.InvalidInputf("extra_price must not be negative")
	}

	extra := models.ExtraFromNew(in, uuid.NewString())
	if err := s.repo.Create(ctx, &extra); err != nil {
		if common.IsUniqueViolation(err) {
			return models.ExtraAPIModel{}, common.Conflictf("extra %s already exists", in.Name)
		}
		logger.Error.WithError(err).Error("creating extra failed")
		return models.ExtraAPIModel{}, common.Internalf("create extra")
	}
	return extra.ToAPIModel(), nil
}

func (s *extraService) Update(ctx context.Context, id string, in models.UpdateExtra) (models.ExtraAPIModel, error) {
	if err := common.ValidateID(id, "extra id"); err != nil {
		return models.ExtraAPIModel{}, err
	}
	if err := common.ValidateRequiredString(in.Name, "name"); err != nil {
		return models.ExtraAPIModel{}, err
	}
	if in.ExtraPrice.Sign() < 0 {
		return models.ExtraAPIModel{}, common.InvalidInputf("extra_price must not be negative")
	}

	extra, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if common.IsNoRows(err) {
			return models.ExtraAPIModel{}, common.NotFoundf("extra %s", id)
		}
		logger.Error.WithError(err).WithField("extra_id", id).Error("loading extra failed")
		return models.ExtraAPIModel{}, common.Internalf("load extra")
	}

	extra.UpdateFromInput(in)
	if err := s.repo.Update(ctx, extra); err != nil {
		if common.IsNoRows(err) {
			return models.ExtraAPIModel{}, common.NotFoundf("extra %s", id)
		}
		logger.Error.WithError(err).WithField("extra_id", id).Error("updating extra failed")
		return models.ExtraAPIModel{}, common.Internalf("update extra")
	}
	return extra.ToAPIModel(), nil
}
