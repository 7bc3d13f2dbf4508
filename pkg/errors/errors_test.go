package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInvalidArgumentErrorCarriesParam(t *testing.T) {
	t.Parallel()

	err := NewInvalidArgumentError("siblings", -2, "must be non-negative")

	var argErr *InvalidArgumentError
	require.ErrorAs(t, err, &argErr)
	require.Equal(t, "siblings", argErr.Param)
	require.Equal(t, -2, argErr.Value)
	require.Contains(t, err.Error(), "siblings=-2")
}

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("theme.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "theme.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "theme.yaml")
}

func TestValidationErrorAggregatesFields(t *testing.T) {
	t.Parallel()

	err := NewValidationError("colors.primary", "unknown class fragment", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "colors.primary", validationErr.Field)
	require.Contains(t, validationErr.Message, "unknown class fragment")
}

func TestRenderErrorIncludesComponentContext(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("template execution failed")
	err := NewRenderError("button", underlying)

	var renderErr *RenderError
	require.ErrorAs(t, err, &renderErr)
	require.Equal(t, "button", renderErr.Component)
	require.True(t, stdErrors.Is(err, underlying))
}
