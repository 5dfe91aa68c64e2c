package profile

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/yeonjae/fortune-calendar/pkg/errors"
)

// Service manages stored natal profiles.
type Service interface {
	Create(ctx context.Context, req CreateRequest) (StoredProfile, error)
	Get(ctx context.Context, id string) (StoredProfile, error)
}

type service struct {
	repo   Repository
	logger *slog.Logger
	now    func() time.Time
	newID  func() string
}

// NewService wires the profile domain.
func NewService(repo Repository, logger *slog.Logger) Service {
	return &service{
		repo:   repo,
		logger: logger.With("component", "profile.service"),
		now:    time.Now,
		newID:  func() string { return uuid.NewString() },
	}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (StoredProfile, error) {
	if req.Natal.SunSign == "" || req.Natal.DayMasterStem == "" || req.Natal.DayBranch == "" {
		return StoredProfile{}, apperrors.Wrap("invalid_input", "sunSign, dayMasterStem and dayBranch are required", nil)
	}

	stored := StoredProfile{
		ID:        s.newID(),
		Name:      req.Name,
		Natal:     req.Natal,
		CreatedAt: s.now().UTC(),
	}
	if err := s.repo.Save(ctx, stored); err != nil {
		return StoredProfile{}, apperrors.Wrap("storage_error", "failed to save profile", err)
	}
	s.logger.Info("profile created", "id", stored.ID)
	return stored, nil
}

func (s *service) Get(ctx context.Context, id string) (StoredProfile, error) {
	if id == "" {
		return StoredProfile{}, apperrors.Wrap("invalid_input", "profile id is required", nil)
	}
	stored, found, err := s.repo.Get(ctx, id)
	if err != nil {
		return StoredProfile{}, apperrors.Wrap("storage_error", "failed to load profile", err)
	}
	if !found {
		return StoredProfile{}, apperrors.Wrap("profile_not_found", "no profile with that id", nil)
	}
	return stored, nil
}
