package models

import "time"

// AppState holds the application state
type AppState struct {
	Width          int
	Height         int
	LeftPanelWidth int
	FocusedPanel   PanelType
	ViewMode       ViewMode

	// Catalog state
	Source       string // file path or postgres DSN summary
	TotalLoaded  int    // products in the loaded catalog
	TotalMatched int    // products matching the active criteria
}

// PanelType identifies which panel is focused
type PanelType int

const (
	LeftPanel PanelType = iota
	RightPanel
)

// ViewMode identifies the current view
type ViewMode int

const (
	NormalMode ViewMode = iota
	HelpMode
)

// NewAppState creates a new AppState with defaults
func NewAppState() AppState {
	return AppState{
		Width:          80,
		Height:         24,
		LeftPanelWidth: 25,
		FocusedPanel:   LeftPanel,
		ViewMode:       NormalMode,
	}
}

// FieldKind identifies how a criteria field's value is coerced
type FieldKind int

const (
	FieldText FieldKind = iota
	FieldNumber
	FieldInteger
	FieldBoolean
)

// FieldInfo describes one filterable criteria field for the filter builder
type FieldInfo struct {
	Key   string    // criteria key, e.g. "max_price"
	Label string    // display label, e.g. "Max price (exclusive)"
	Kind  FieldKind // value coercion kind
}

// SavedSearch is a named, persisted set of filter criteria
type SavedSearch struct {
	ID          string            `yaml:"id"`
	Name        string            `yaml:"name"`
	Description string            `yaml:"description,omitempty"`
	Values      map[string]string `yaml:"values"`
	CreatedAt   time.Time         `yaml:"created_at"`
	UpdatedAt   time.Time         `yaml:"updated_at"`
	LastUsed    time.Time         `yaml:"last_used,omitempty"`
	UsageCount  int               `yaml:"usage_count"`
}
