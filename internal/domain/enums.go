package domain

// PaletteSource identifies where a catalog palette originated.
type PaletteSource string

const (
	SourceUser      PaletteSource = "user"
	SourceExternal  PaletteSource = "external"
	SourceGenerated PaletteSource = "generated"
)

// ValidPaletteSources enumerates the accepted source values.
var ValidPaletteSources = map[PaletteSource]bool{
	SourceUser:      true,
	SourceExternal:  true,
	SourceGenerated: true,
}

// Timeframe restricts the popularity listing to a creation-time window.
type Timeframe string

const (
	TimeframeAll   Timeframe = "all"
	TimeframeWeek  Timeframe = "week"
	TimeframeMonth Timeframe = "month"
)

// ValidTimeframes enumerates the accepted timeframe values.
var ValidTimeframes = map[Timeframe]bool{
	TimeframeAll:   true,
	TimeframeWeek:  true,
	TimeframeMonth: true,
}

// DefaultFolderName is the name given to the folder provisioned at registration.
const DefaultFolderName = "All Palettes"

// DefaultFolderColor is the hex color assigned to folders created without one.
const DefaultFolderColor = "#6366F1"
