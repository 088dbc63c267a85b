package platform

import (
	"errors"
)

var (
	// ErrCooldownActive is returned when a bulk scan is triggered before the cooldown window has elapsed.
	ErrCooldownActive = errors.New("bulk scan cooldown is still active")
	// ErrURLNotFound is returned when a tracked URL does not exist in storage.
	ErrURLNotFound = errors.New("tracked url not found")
)
