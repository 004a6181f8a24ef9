package application

import (
	"context"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/growthpoints/internal/domain/entity"
	repo "github.com/oksasatya/growthpoints/internal/domain/repository"
	"github.com/oksasatya/growthpoints/pkg/mailer"
)

// Publisher enqueues a JSON message; satisfied by helpers.RabbitPublisher.
type Publisher interface {
	PublishJSON(ctx context.Context, body any) error
}

type ClaimService struct {
	UoW      repo.UnitOfWork
	Verifier IdentityVerifier
	Pub      Publisher
	Logger   *logrus.Logger
}

func NewClaimService(uow repo.UnitOfWork, verifier IdentityVerifier, pub Publisher, logger *logrus.Logger) *ClaimService {
	return &ClaimService{UoW: uow, Verifier: verifier, Pub: pub, Logger: logger}
}

type ClaimResult struct {
	TaskID string
	UserID string
	Points int64
}

// Claim marks an open task done and credits its points to the assignee.
//
// Checks run in a fixed order and each one stops the flow: credential,
// taskID, identity, existence, ownership, open status. The status transition
// and the credit share one transaction, so a failed credit leaves the task
// open, and the transition is conditional on status = open, so concurrent
// claims of one task produce exactly one credit.
func (s *ClaimService) Claim(ctx context.Context, credential, taskID string) (*ClaimResult, error) {
	res, err := s.claim(ctx, credential, taskID)
	if err != nil {
		if k := KindOf(err); k == KindInternal || k == KindUnconfigured {
			claimsFailed.Add(1)
		} else {
			claimsRejected.Add(1)
		}
	}
	return res, err
}

func (s *ClaimService) claim(ctx context.Context, credential, taskID string) (*ClaimResult, error) {
	if strings.TrimSpace(credential) == "" {
		return nil, newError(KindUnauthorized, MsgUnauthorized, nil)
	}
	taskID = strings.TrimSpace(taskID)
	if taskID == "" {
		return nil, newError(KindBadRequest, MsgMissingTaskID, nil)
	}

	who, err := authenticate(ctx, s.Verifier, credential)
	if err != nil {
		return nil, err
	}
	log := s.log().WithFields(logrus.Fields{"task_id": taskID, "user_id": who.ID})

	task, err := s.UoW.Repos().Tasks.GetByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, newError(KindNotFound, MsgTaskNotFound, err)
		}
		log.WithError(err).Error("fetch task failed")
		return nil, newError(KindInternal, MsgServerError, err)
	}
	if !task.OwnedBy(who.ID) {
		return nil, newError(KindForbidden, MsgNotYourTask, nil)
	}
	if !task.IsOpen() {
		return nil, newError(KindBadRequest, MsgTaskNotOpen, nil)
	}

	err = s.UoW.WithinTx(ctx, func(ctx context.Context, r repo.Repositories) error {
		if err := r.Tasks.SetStatus(ctx, task.ID, entity.TaskOpen, entity.TaskDone); err != nil {
			if errors.Is(err, repo.ErrStatusConflict) {
				// lost the race to a concurrent claim
				return newError(KindBadRequest, MsgTaskNotOpen, err)
			}
			return newError(KindInternal, MsgFailedUpdateTask, err)
		}
		if err := r.Ledger.Credit(ctx, task.AssignedTo, task.ID, task.Points); err != nil {
			return newError(KindInternal, MsgFailedCreditPoints, err)
		}
		return nil
	})
	if err != nil {
		var appErr *Error
		if !errors.As(err, &appErr) {
			// begin or commit failed; nothing was applied
			appErr = newError(KindInternal, MsgFailedCreditPoints, err)
		}
		if appErr.Kind == KindInternal {
			log.WithError(err).Error("claim transaction failed")
		}
		return nil, appErr
	}

	claimsSucceeded.Add(1)
	pointsCredited.Add(task.Points)
	log.WithField("points", task.Points).Info("task claimed")

	s.notify(ctx, who, task, log)

	return &ClaimResult{TaskID: task.ID, UserID: task.AssignedTo, Points: task.Points}, nil
}

// notify enqueues a reward email. Failures are logged, never returned: the
// claim is already committed.
func (s *ClaimService) notify(ctx context.Context, who *entity.Identity, task *entity.Task, log *logrus.Entry) {
	if s.Pub == nil || who.Email == "" {
		return
	}
	job := mailer.RewardJob{To: who.Email, UserID: who.ID, TaskID: task.ID, TaskTitle: task.Title, Points: task.Points}
	if err := s.Pub.PublishJSON(ctx, job); err != nil {
		log.WithError(err).Warn("publish reward job failed")
	}
}

func (s *ClaimService) log() *logrus.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return logrus.StandardLogger()
}
