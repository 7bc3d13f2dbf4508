// Package components renders server-side HTML controls whose look is
// driven entirely by utility class strings. Every component follows the
// same shape: a typed props struct, a pure class-string builder, and a
// template-backed render function.
package components

import (
	"html/template"
	"strings"

	lumeerrors "github.com/lumeui/lume/pkg/errors"
	"github.com/lumeui/lume/theme"
	"github.com/lumeui/lume/tokens"
)

// HTML marks a fragment as pre-rendered markup that must not be escaped
// again, e.g. an inline SVG icon slot.
type HTML = template.HTML

func renderTemplate(component string, tpl *template.Template, data any) (string, error) {
	var sb strings.Builder
	if err := tpl.Execute(&sb, data); err != nil {
		return "", lumeerrors.NewRenderError(component, err)
	}
	return sb.String(), nil
}

// The fallback helpers swap zero-valued props fields for the active
// theme's defaults, so an empty struct always renders something sensible.

func fallbackVariant(v tokens.Variant) tokens.Variant {
	if v == "" {
		return theme.Active().Defaults.Variant
	}
	return v
}

func fallbackColor(c tokens.Color) tokens.Color {
	if c == "" {
		return theme.Active().Defaults.Color
	}
	return c
}

func fallbackSize(s tokens.Size) tokens.Size {
	if s == "" {
		return theme.Active().Defaults.Size
	}
	return s
}

func fallbackRounded(r tokens.Rounded) tokens.Rounded {
	if r == "" {
		return theme.Active().Defaults.Rounded
	}
	return r
}
