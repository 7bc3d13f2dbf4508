// Package theme holds the tunable defaults components fall back to when a
// props field is left at its zero value, plus YAML loading for custom
// themes.
package theme

import (
	"sync"

	"github.com/lumeui/lume/tokens"
)

// Defaults names the token values components use when props leave the
// corresponding field empty.
type Defaults struct {
	Variant tokens.Variant `yaml:"variant" validate:"omitempty,variant"`
	Color   tokens.Color   `yaml:"color" validate:"omitempty,color"`
	Size    tokens.Size    `yaml:"size" validate:"omitempty,size"`
	Rounded tokens.Rounded `yaml:"rounded" validate:"omitempty,rounded"`
}

// Theme describes the page-level class fragments and component defaults of
// one visual identity.
type Theme struct {
	Name     string   `yaml:"name" validate:"required"`
	Font     string   `yaml:"font"`
	Surface  string   `yaml:"surface"`
	Defaults Defaults `yaml:"defaults"`
}

// Default returns the built-in theme.
func Default() Theme {
	return Theme{
		Name:    "lume",
		Font:    "font-sans antialiased",
		Surface: "bg-white text-zinc-900",
		Defaults: Defaults{
			Variant: tokens.VariantDefault,
			Color:   tokens.ColorNatural,
			Size:    tokens.SizeMD,
			Rounded: tokens.RoundedSM,
		},
	}
}

// Manager coordinates concurrent access to a Theme instance.
type Manager struct {
	mu    sync.RWMutex
	theme Theme
}

// NewManager allocates a Manager seeded with the provided theme.
func NewManager(theme Theme) *Manager {
	return &Manager{theme: normalize(theme)}
}

// Set replaces the managed theme.
func (m *Manager) Set(theme Theme) {
	m.mu.Lock()
	m.theme = normalize(theme)
	m.mu.Unlock()
}

// Current returns a copy of the managed theme.
func (m *Manager) Current() Theme {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.theme
}

// normalize fills empty default slots from the built-in theme so lookups
// never hand components an empty token.
func normalize(theme Theme) Theme {
	base := Default()
	if theme.Name == "" {
		theme.Name = base.Name
	}
	if theme.Font == "" {
		theme.Font = base.Font
	}
	if theme.Surface == "" {
		theme.Surface = base.Surface
	}
	if theme.Defaults.Variant == "" {
		theme.Defaults.Variant = base.Defaults.Variant
	}
	if theme.Defaults.Color == "" {
		theme.Defaults.Color = base.Defaults.Color
	}
	if theme.Defaults.Size == "" {
		theme.Defaults.Size = base.Defaults.Size
	}
	if theme.Defaults.Rounded == "" {
		theme.Defaults.Rounded = base.Defaults.Rounded
	}
	return theme
}

var activeManager = NewManager(Default())

// Set replaces the process-wide active theme.
func Set(theme Theme) {
	activeManager.Set(theme)
}

// Active returns the process-wide active theme.
func Active() Theme {
	return activeManager.Current()
}
