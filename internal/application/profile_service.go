package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/growthpoints/internal/domain/entity"
	repo "github.com/oksasatya/growthpoints/internal/domain/repository"
)

// ProfileService serves the caller's own profile and task list.
type ProfileService struct {
	UoW      repo.UnitOfWork
	Verifier IdentityVerifier
	Logger   *logrus.Logger
}

func NewProfileService(uow repo.UnitOfWork, verifier IdentityVerifier, logger *logrus.Logger) *ProfileService {
	return &ProfileService{UoW: uow, Verifier: verifier, Logger: logger}
}

// EnsureProfile creates the caller's zero-point profile on first use.
func (s *ProfileService) EnsureProfile(ctx context.Context, credential string) (*entity.Profile, error) {
	who, err := authenticate(ctx, s.Verifier, credential)
	if err != nil {
		return nil, err
	}
	p, err := s.UoW.Repos().Profiles.Ensure(ctx, who.ID, who.Email)
	if err != nil {
		s.logError(err, who.ID, "ensure profile failed")
		return nil, newError(KindInternal, MsgServerError, err)
	}
	return p, nil
}

func (s *ProfileService) GetProfile(ctx context.Context, credential string) (*entity.Profile, error) {
	who, err := authenticate(ctx, s.Verifier, credential)
	if err != nil {
		return nil, err
	}
	p, err := s.UoW.Repos().Profiles.GetByID(ctx, who.ID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, newError(KindNotFound, MsgProfileNotFound, err)
		}
		s.logError(err, who.ID, "get profile failed")
		return nil, newError(KindInternal, MsgServerError, err)
	}
	return p, nil
}

// ListTasks returns the caller's tasks, newest first.
func (s *ProfileService) ListTasks(ctx context.Context, credential string) ([]entity.Task, error) {
	who, err := authenticate(ctx, s.Verifier, credential)
	if err != nil {
		return nil, err
	}
	tasks, err := s.UoW.Repos().Tasks.ListByAssignee(ctx, who.ID)
	if err != nil {
		s.logError(err, who.ID, "list tasks failed")
		return nil, newError(KindInternal, MsgServerError, err)
	}
	return tasks, nil
}

func (s *ProfileService) logError(err error, userID, msg string) {
	if s.Logger != nil {
		s.Logger.WithError(err).WithField("user_id", userID).Error(msg)
	}
}
