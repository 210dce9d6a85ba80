package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// User represents a registered account.
type User struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Username     string    `db:"username" json:"username"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	FirstName    string    `db:"first_name" json:"first_name"`
	LastName     string    `db:"last_name" json:"last_name"`
	Avatar       string    `db:"avatar" json:"avatar"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// Palette is one canonical, deduplicated catalog entry. For external sources
// at most one row exists per (source, external_id); content is immutable
// after creation, only the counters mutate.
type Palette struct {
	ID          uuid.UUID     `db:"id" json:"id"`
	Name        string        `db:"name" json:"name"`
	Description string        `db:"description" json:"description"`
	Colors      ColorList     `db:"colors" json:"colors"`
	Tags        StringList    `db:"tags" json:"tags"`
	Source      PaletteSource `db:"source" json:"source"`
	ExternalID  *string       `db:"external_id" json:"external_id,omitempty"`
	CreatedBy   *uuid.UUID    `db:"created_by" json:"created_by,omitempty"`
	IsPublic    bool          `db:"is_public" json:"is_public"`
	TotalSaves  int           `db:"total_saves" json:"total_saves"`
	TotalLikes  int           `db:"total_likes" json:"total_likes"`
	TotalViews  int           `db:"total_views" json:"total_views"`
	CreatedAt   time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time     `db:"updated_at" json:"updated_at"`
}

// SavedPalette is a user's personal reference to one catalog palette.
// (user_id, palette_id) is unique: a user saves a palette at most once.
type SavedPalette struct {
	ID            uuid.UUID  `db:"id" json:"id"`
	UserID        uuid.UUID  `db:"user_id" json:"user_id"`
	PaletteID     uuid.UUID  `db:"palette_id" json:"palette_id"`
	FolderID      *uuid.UUID `db:"folder_id" json:"folder_id,omitempty"`
	PersonalNotes string     `db:"personal_notes" json:"personal_notes"`
	PersonalTags  StringList `db:"personal_tags" json:"personal_tags"`
	IsLiked       bool       `db:"is_liked" json:"is_liked"`
	SavedAt       time.Time  `db:"saved_at" json:"saved_at"`
	CreatedAt     time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time  `db:"updated_at" json:"updated_at"`
}

// Folder groups a user's saves. PaletteCount mirrors the number of
// saved-palette rows pointing at the folder and is recomputable from them.
type Folder struct {
	ID           uuid.UUID `db:"id" json:"id"`
	UserID       uuid.UUID `db:"user_id" json:"user_id"`
	Name         string    `db:"name" json:"name"`
	Description  string    `db:"description" json:"description"`
	Color        string    `db:"color" json:"color"`
	IsDefault    bool      `db:"is_default" json:"is_default"`
	PaletteCount int       `db:"palette_count" json:"palette_count"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// ColorName is one row of the seeded hex-to-name lookup table.
type ColorName struct {
	Name string `db:"name" json:"name"`
	Hex  string `db:"hex" json:"hex"`
}

// AnnotatedPalette is a catalog entry decorated with the caller's save state.
type AnnotatedPalette struct {
	Palette
	IsSaved        bool       `json:"is_saved"`
	SavedPaletteID *uuid.UUID `json:"saved_palette_id,omitempty"`
}

// FolderDrift reports a folder whose stored count disagrees with its rows.
type FolderDrift struct {
	FolderID    uuid.UUID `db:"folder_id" json:"folder_id"`
	UserID      uuid.UUID `db:"user_id" json:"user_id"`
	StoredCount int       `db:"stored_count" json:"stored_count"`
	ActualCount int       `db:"actual_count" json:"actual_count"`
}

// PaletteDrift reports a palette whose aggregate counters disagree with the
// save rows that back them.
type PaletteDrift struct {
	PaletteID   uuid.UUID `db:"palette_id" json:"palette_id"`
	StoredSaves int       `db:"stored_saves" json:"stored_saves"`
	ActualSaves int       `db:"actual_saves" json:"actual_saves"`
	StoredLikes int       `db:"stored_likes" json:"stored_likes"`
	ActualLikes int       `db:"actual_likes" json:"actual_likes"`
}

// ColorList stores a palette's ordered colors as a JSONB column.
type ColorList []Color

// Value implements driver.Valuer.
func (l ColorList) Value() (driver.Value, error) {
	if l == nil {
		l = ColorList{}
	}
	return json.Marshal(l)
}

// Scan implements sql.Scanner.
func (l *ColorList) Scan(src interface{}) error {
	return scanJSON(src, l)
}

// StringList stores a string set as a JSONB column.
type StringList []string

// Value implements driver.Valuer.
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	return json.Marshal(l)
}

// Scan implements sql.Scanner.
func (l *StringList) Scan(src interface{}) error {
	return scanJSON(src, l)
}

func scanJSON(src, dest interface{}) error {
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		return json.Unmarshal(v, dest)
	case string:
		return json.Unmarshal([]byte(v), dest)
	default:
		return fmt.Errorf("unsupported scan type %T", src)
	}
}
