package automap

import "errors"

var (
	// ErrInvalidScale is returned for a zero or negative scale
	ErrInvalidScale = errors.New("automap: scale must be positive")

	// ErrInvalidDisplay is returned for a zero or negative display size
	ErrInvalidDisplay = errors.New("automap: display size must be positive")

	// ErrNoSavedRect is returned by RestoreRect when no snapshot is held
	ErrNoSavedRect = errors.New("automap: no saved rect to restore")
)
