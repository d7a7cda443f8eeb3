package registry

import "errors"

var (
	// ErrActivityNotFound возвращается, если кружок с таким названием не найден.
	ErrActivityNotFound = errors.New("activity not found")

	// ErrAlreadyEnrolled возвращается при попытке записать ученика,
	// который уже есть в списке участников кружка.
	ErrAlreadyEnrolled = errors.New("participant already enrolled")

	// ErrNotEnrolled возвращается при попытке отписать ученика,
	// которого нет в списке участников кружка.
	ErrNotEnrolled = errors.New("participant not enrolled")
)
