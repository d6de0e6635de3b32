package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("palette.yaml", 7, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "palette.yaml", parseErr.Path)
	require.Equal(t, 7, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "palette.yaml")
}

func TestValidationErrorAggregatesFields(t *testing.T) {
	t.Parallel()

	err := NewValidationError("colors[2].name", "duplicate color name", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "colors[2].name", validationErr.Field)
	require.Contains(t, validationErr.Message, "duplicate color name")
}

func TestColorErrorIncludesColorName(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("lightness is NaN")
	err := NewColorError("crimson", "invalid oklch triple", underlying)

	var colorErr *ColorError
	require.ErrorAs(t, err, &colorErr)
	require.Equal(t, "crimson", colorErr.Name)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "crimson")
}
