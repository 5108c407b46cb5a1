package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	ErrMsgPlayerNotFound = "player not found"

	ErrMsgItemNotFound  = "item not found"
	ErrMsgNotEquippable = "item is not equippable"

	ErrMsgInsufficientQuantity = "insufficient quantity"

	ErrMsgInvalidInput = "invalid input"

	ErrMsgDatabaseError = "database error"
)

// Common domain errors, used consistently across all layers.
// Wrap with fmt.Errorf("...: %w", domain.ErrXxx) for additional context.
var (
	ErrPlayerNotFound = errors.New(ErrMsgPlayerNotFound)

	ErrItemNotFound  = errors.New(ErrMsgItemNotFound)
	ErrNotEquippable = errors.New(ErrMsgNotEquippable)

	ErrInsufficientQuantity = errors.New(ErrMsgInsufficientQuantity)

	ErrInvalidInput = errors.New(ErrMsgInvalidInput)

	ErrDatabaseError = errors.New(ErrMsgDatabaseError)
)
