package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"activity-registration-service/internal/model"
	"activity-registration-service/internal/registry"
)

// ActivityRegistry описывает контракт реестра кружков для бизнес-слоя.
type ActivityRegistry interface {
	ListActivities(ctx context.Context) map[string]model.ActivityView
	Enroll(ctx context.Context, activityName, email string) error
	Withdraw(ctx context.Context, activityName, email string) error
}

// ActivityService содержит бизнес-логику записи учеников на кружки:
// переводит ошибки реестра в прикладные и формирует подтверждения.
type ActivityService struct {
	registry ActivityRegistry
}

// NewActivityService создаёт новый сервис для операций над кружками.
func NewActivityService(reg ActivityRegistry) *ActivityService {
	return &ActivityService{registry: reg}
}

// ListActivities возвращает снимок каталога кружков.
func (s *ActivityService) ListActivities(ctx context.Context) map[string]model.ActivityView {
	return s.registry.ListActivities(ctx)
}

// Enroll записывает ученика на кружок и возвращает текст подтверждения.
// Для неизвестного кружка возвращает NOT_FOUND, для повторной записи —
// доменную ошибку ALREADY_SIGNED_UP.
func (s *ActivityService) Enroll(ctx context.Context, activityName, email string) (string, error) {
	if activityName == "" {
		return "", ErrBadRequest("activity name is required")
	}
	if email == "" {
		return "", ErrBadRequest("email is required")
	}

	if err := s.registry.Enroll(ctx, activityName, email); err != nil {
		switch {
		case errors.Is(err, registry.ErrActivityNotFound):
			return "", ErrNotFound("Activity not found")
		case errors.Is(err, registry.ErrAlreadyEnrolled):
			return "", ErrDomain("ALREADY_SIGNED_UP", "Student is already signed up for this activity")
		default:
			return "", &AppError{
				Code:    "INTERNAL",
				Message: "failed to sign up",
				Status:  http.StatusInternalServerError,
				Err:     err,
			}
		}
	}

	return fmt.Sprintf("Signed up %s for %s", email, activityName), nil
}

// Withdraw отписывает ученика от кружка и возвращает текст подтверждения.
// Для неизвестного кружка возвращает NOT_FOUND, для ученика без записи —
// доменную ошибку NOT_SIGNED_UP.
func (s *ActivityService) Withdraw(ctx context.Context, activityName, email string) (string, error) {
	if activityName == "" {
		return "", ErrBadRequest("activity name is required")
	}
	if email == "" {
		return "", ErrBadRequest("email is required")
	}

	if err := s.registry.Withdraw(ctx, activityName, email); err != nil {
		switch {
		case errors.Is(err, registry.ErrActivityNotFound):
			return "", ErrNotFound("Activity not found")
		case errors.Is(err, registry.ErrNotEnrolled):
			return "", ErrDomain("NOT_SIGNED_UP", "Student is not signed up for this activity")
		default:
			return "", &AppError{
				Code:    "INTERNAL",
				Message: "failed to unregister",
				Status:  http.StatusInternalServerError,
				Err:     err,
			}
		}
	}

	return fmt.Sprintf("Unregistered %s from %s", email, activityName), nil
}
