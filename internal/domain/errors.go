package domain

import "errors"

// Domain errors.
var (
	ErrTimerNotFound        = errors.New("timer not found")
	ErrEmptyName            = errors.New("name cannot be empty")
	ErrEmptyCategory        = errors.New("category cannot be empty")
	ErrEmptyDuration        = errors.New("duration cannot be empty")
	ErrInvalidDuration      = errors.New("duration must be a positive whole number of seconds")
	ErrInvalidBulkOperation = errors.New("invalid bulk operation (want start, pause or reset)")
	ErrInvalidTheme         = errors.New("invalid theme (want light or dark)")
	ErrInvalidExportFormat  = errors.New("invalid export format (want json or yaml)")
	ErrConfigExists         = errors.New("config file already exists")
	ErrExportFailed         = errors.New("export failed")
)
