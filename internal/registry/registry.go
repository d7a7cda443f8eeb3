// Package registry реализует in-memory реестр кружков:
// единственный источник правды о кружках и записанных в них учениках.
package registry

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"activity-registration-service/internal/model"
)

// Registry хранит кружки по названию и отвечает за инварианты записи:
// уникальность участника внутри кружка и отказ при неизвестном кружке.
// Все операции потокобезопасны: реестр закрыт одним RWMutex,
// так как HTTP-слой обслуживает запросы конкурентно.
type Registry struct {
	mu         sync.RWMutex
	activities map[string]*model.Activity
}

// New создаёт реестр и наполняет его переданным набором кружков.
// Названия кружков должны быть уникальны, участники внутри кружка — тоже.
func New(activities []model.Activity) (*Registry, error) {
	r := &Registry{
		activities: make(map[string]*model.Activity, len(activities)),
	}

	for _, a := range activities {
		if a.Name == "" {
			return nil, fmt.Errorf("activity with empty name in seed")
		}
		if a.MaxParticipants <= 0 {
			return nil, fmt.Errorf("activity %q: max_participants must be positive", a.Name)
		}
		if _, ok := r.activities[a.Name]; ok {
			return nil, fmt.Errorf("duplicate activity name %q in seed", a.Name)
		}

		seen := make(map[string]struct{}, len(a.Participants))
		for _, p := range a.Participants {
			if _, ok := seen[p]; ok {
				return nil, fmt.Errorf("activity %q: duplicate participant %q in seed", a.Name, p)
			}
			seen[p] = struct{}{}
		}

		stored := a
		stored.Participants = slices.Clone(a.Participants)
		r.activities[a.Name] = &stored
	}

	return r, nil
}

// ListActivities возвращает снимок всех кружков: название → представление
// с копией списка участников. Всегда успешна.
func (r *Registry) ListActivities(ctx context.Context) map[string]model.ActivityView {
	r.mu.RLock()
	defer r.mu.RUnlock()

	views := make(map[string]model.ActivityView, len(r.activities))
	for name, a := range r.activities {
		views[name] = a.View()
	}
	return views
}

// Enroll добавляет ученика в список участников кружка.
// Возвращает ErrActivityNotFound для неизвестного кружка и
// ErrAlreadyEnrolled, если ученик уже записан.
// Вместимость кружка при записи не проверяется: max_participants —
// справочное поле, а не ограничение.
func (r *Registry) Enroll(ctx context.Context, activityName, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.activities[activityName]
	if !ok {
		return ErrActivityNotFound
	}

	if slices.Contains(a.Participants, email) {
		return ErrAlreadyEnrolled
	}

	a.Participants = append(a.Participants, email)
	return nil
}

// Withdraw убирает ученика из списка участников кружка.
// Возвращает ErrActivityNotFound для неизвестного кружка и
// ErrNotEnrolled, если ученика в списке нет.
func (r *Registry) Withdraw(ctx context.Context, activityName, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.activities[activityName]
	if !ok {
		return ErrActivityNotFound
	}

	idx := slices.Index(a.Participants, email)
	if idx < 0 {
		return ErrNotEnrolled
	}

	a.Participants = slices.Delete(a.Participants, idx, idx+1)
	return nil
}
