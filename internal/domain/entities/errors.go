package entities

import "errors"

var (
	// ErrInvalidElement is returned when an element label is not recognised.
	// The operation still completes using DefaultElement.
	ErrInvalidElement = errors.New("invalid element")

	// ErrSameEntity is returned when a dragon is asked to interact with itself.
	ErrSameEntity = errors.New("dragon cannot interact with itself")

	// ErrUnknownEntity is returned when an index or name does not resolve to a dragon.
	ErrUnknownEntity = errors.New("dragon not found")

	// ErrDuplicateName is returned when a clan already holds a dragon with the same name.
	ErrDuplicateName = errors.New("dragon name already taken")

	// ErrNoClan is returned by clan operations before a clan has been created.
	ErrNoClan = errors.New("no clan created")
)
