package data

import "errors"

// Shared sentinel errors for data-layer repositories.
var (
	ErrUserNotFound        = errors.New("user not found")
	ErrResumeNotFound      = errors.New("resume not found")
	ErrImprovementNotFound = errors.New("improvement not found")
)
