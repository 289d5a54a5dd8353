package repository

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/ecotrack-app/carbon-tracker/gen/ent"
	"github.com/ecotrack-app/carbon-tracker/gen/ent/profile"
	"github.com/ecotrack-app/carbon-tracker/internal/common"
	"github.com/ecotrack-app/carbon-tracker/internal/entity"
	"github.com/ecotrack-app/carbon-tracker/internal/utils"
)

type ProfileRepository interface {
	Create(ctx context.Context, name, region string) (*entity.Profile, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error)
	GetByName(ctx context.Context, name string) (*entity.Profile, error)
	List(ctx context.Context) ([]*entity.Profile, error)
}

type profileRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewProfileRepository(client *ent.Client, logger *slog.Logger) ProfileRepository {
	return &profileRepository{
		client: client,
		logger: logger,
	}
}

func (r *profileRepository) Create(ctx context.Context, name, region string) (*entity.Profile, error) {
	rec, err := r.client.Profile.Create().
		SetName(name).
		SetRegion(strings.ToUpper(region)).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create profile", "name", name, "error", err)
		return nil, common.WrapError(err, "create profile")
	}
	return utils.ToProfile(rec), nil
}

func (r *profileRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error) {
	rec, err := r.client.Profile.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		r.logger.Error("failed to get profile", "profile_id", id, "error", err)
		return nil, err
	}
	return utils.ToProfile(rec), nil
}

func (r *profileRepository) GetByName(ctx context.Context, name string) (*entity.Profile, error) {
	rec, err := r.client.Profile.Query().Where(profile.Name(name)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return utils.ToProfile(rec), nil
}

func (r *profileRepository) List(ctx context.Context) ([]*entity.Profile, error) {
	recs, err := r.client.Profile.Query().Order(profile.ByCreatedAt()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list profiles", "error", err)
		return nil, err
	}
	result := make([]*entity.Profile, len(recs))
	for i, rec := range recs {
		result[i] = utils.ToProfile(rec)
	}
	return result, nil
}
