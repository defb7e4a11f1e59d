package usecase

import "errors"

var (
	ErrCityRequired    = errors.New("city is required")
	ErrScopeRequired   = errors.New("either city or coordinates are required")
	ErrTypesRequired   = errors.New("organization types are required")
	ErrNoOrganizations = errors.New("no organizations found, run a search first")
	ErrNoExportData    = errors.New("no data to export")
)
