package profile

import "errors"

// Profile file extension (matched case-insensitively).
const profileExt = ".json"

// Error variables for profile operations.
var (
	ErrConfigFileNotFound = errors.New("config file not found")
	ErrConfigFileRead     = errors.New("cannot read config file")
	ErrConfigInvalid      = errors.New("invalid config file")
	ErrProfileDirEmpty    = errors.New("profile-dir cannot be empty")
	ErrSubjectNotFound    = errors.New("subject not found")
	ErrSubjectRequired    = errors.New("subject ID is required")
	ErrInvalidDepth       = errors.New("depth must be non-negative")
	ErrInvalidDocument    = errors.New("invalid profile document")
)
