package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/labreports-tracker/gen/ent"
	"github.com/joseph-ayodele/labreports-tracker/gen/ent/profile"
	"github.com/joseph-ayodele/labreports-tracker/internal/entity"
)

type ProfileRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error)
	CreateProfile(ctx context.Context, name string) (*entity.Profile, error)
	ListProfiles(ctx context.Context) ([]*entity.Profile, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
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

func (r *profileRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error) {
	row, err := r.client.Profile.
		Query().
		Where(profile.ID(id)).
		Only(ctx)
	if err != nil {
		return nil, notFoundOr(err, "profile %s", id)
	}
	return profileFromEnt(row), nil
}

func (r *profileRepository) CreateProfile(ctx context.Context, name string) (*entity.Profile, error) {
	p, err := r.client.Profile.Create().
		SetName(name).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create profile", "name", name, "error", err)
		return nil, err
	}
	return profileFromEnt(p), nil
}

func (r *profileRepository) ListProfiles(ctx context.Context) ([]*entity.Profile, error) {
	plist, err := r.client.Profile.Query().Order(profile.ByCreatedAt()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list profiles", "error", err)
		return nil, err
	}
	out := make([]*entity.Profile, len(plist))
	for i, p := range plist {
		out[i] = profileFromEnt(p)
	}
	return out, nil
}

func (r *profileRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	exists, err := r.client.Profile.Query().Where(profile.ID(id)).Exist(ctx)
	if err != nil {
		r.logger.Error("failed to check profile existence", "profile_id", id, "error", err)
		return false, err
	}
	return exists, nil
}

func profileFromEnt(p *ent.Profile) *entity.Profile {
	return &entity.Profile{
		ID:        p.ID,
		Name:      p.Name,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
