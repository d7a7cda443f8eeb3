package http

import (
	"regexp"

	"activity-registration-service/internal/service"
)

// Регулярка для проверки корректности email ученика
var reEmail = regexp.MustCompile(`^[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}$`)

// ValidateActivityParam Валидация path-сегмента {activity}
func ValidateActivityParam(activityName string) error {
	if activityName == "" {
		return service.ErrBadRequest("activity name is required")
	}
	return nil
}

// ValidateEmailQuery Валидация query-параметра email для signup/unregister
func ValidateEmailQuery(email string) error {
	if email == "" {
		return service.ErrBadRequest("email is required")
	}
	if !reEmail.MatchString(email) {
		return service.ErrBadRequest("email must be a valid email address, e.g. student@mergington.edu")
	}
	return nil
}
