package engine

import "errors"

// Sentinel errors
var (
	ErrAlreadyInitialized = errors.New("engine already initialized")
	ErrNoAssetLoader      = errors.New("no asset loader configured")
	ErrEmptyAsset         = errors.New("asset decoded to empty image")
	ErrInvalidDirection   = errors.New("invalid direction")
)
