package ecs

import "errors"

var (
	// ErrComponentCapacity is returned when attaching a component whose type
	// id falls outside the fixed MaxComponents slot budget.
	ErrComponentCapacity = errors.New("ecs: component capacity exceeded")

	// ErrGroupOutOfRange is returned when joining a group index outside the
	// fixed MaxGroups budget.
	ErrGroupOutOfRange = errors.New("ecs: group out of range")

	// ErrMissingComponent is returned by Get when the entity has no component
	// of the requested type.
	ErrMissingComponent = errors.New("ecs: missing component")
)
