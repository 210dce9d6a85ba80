package domain

import "errors"

var (
	ErrNotFound            = errors.New("resource not found")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrPaletteNotFound     = errors.New("palette not found")
	ErrSaveNotFound        = errors.New("saved palette not found")
	ErrFolderNotFound      = errors.New("folder not found")
	ErrDefaultFolderAbsent = errors.New("default folder not found for user")

	// Unique-constraint signals. Save and external-palette duplicates are
	// handled internally as idempotent success; the rest surface as conflicts.
	ErrDuplicateSave            = errors.New("palette already saved by user")
	ErrDuplicateExternalPalette = errors.New("palette already synced for external id")
	ErrDuplicateFolderName      = errors.New("folder name already exists for user")
	ErrDuplicateEmail           = errors.New("email already registered")
	ErrDuplicateUsername        = errors.New("username already taken")

	ErrCannotDeleteDefaultFolder = errors.New("default folder cannot be deleted")
	ErrUpstreamUnavailable       = errors.New("palette provider unavailable")
)
