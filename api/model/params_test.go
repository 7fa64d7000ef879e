package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFitFromString(t *testing.T) {
	fit, err := FitFromString("bounds")
	assert.NoError(t, err)
	assert.Equal(t, FitBounds, fit)

	fit, err = FitFromString("cover")
	assert.NoError(t, err)
	assert.Equal(t, FitCover, fit)

	fit, err = FitFromString("crop")
	assert.NoError(t, err)
	assert.Equal(t, FitCrop, fit)
}

func TestFitFromStringRejectsUnknown(t *testing.T) {
	_, err := FitFromString("stretch")
	assert.Error(t, err)
}

func TestFitFromStringIsCaseSensitive(t *testing.T) {
	_, err := FitFromString("Crop")
	assert.Error(t, err)
}

func TestParseQueryEmpty(t *testing.T) {
	req := ParseQuery(map[string]string{})

	assert.Equal(t, ResizeRequest{}, req)
	assert.False(t, req.HasResize())
	assert.False(t, req.NeedsTransform())
}

func TestParseQueryAllFields(t *testing.T) {
	req := ParseQuery(map[string]string{
		"width":  "200",
		"height": "100",
		"fit":    "crop",
		"format": "png",
	})

	assert.Equal(t, ResizeRequest{Width: 200, Height: 100, Fit: FitCrop, Format: "png"}, req)
	assert.True(t, req.HasResize())
}

func TestParseQueryWidthOnly(t *testing.T) {
	req := ParseQuery(map[string]string{"width": "400"})

	assert.Equal(t, 400, req.Width)
	assert.Zero(t, req.Height)
	assert.False(t, req.Fit.IsSet())
	assert.True(t, req.HasResize())
}

func TestParseQueryFormatAloneNeedsTransformButNotResize(t *testing.T) {
	req := ParseQuery(map[string]string{"format": "png"})

	assert.False(t, req.HasResize())
	assert.True(t, req.NeedsTransform())
}

// A single malformed field discards the entire query, not just the field.
func TestParseQueryInvalidFitDropsWholeQuery(t *testing.T) {
	req := ParseQuery(map[string]string{"width": "200", "fit": "stretch"})

	assert.Equal(t, ResizeRequest{}, req)
	assert.False(t, req.HasResize())
}

func TestParseQueryMalformedWidthDropsWholeQuery(t *testing.T) {
	req := ParseQuery(map[string]string{"width": "abc", "height": "100", "format": "png"})

	assert.Equal(t, ResizeRequest{}, req)
}

func TestParseQueryZeroDimensionDropsWholeQuery(t *testing.T) {
	req := ParseQuery(map[string]string{"width": "0", "height": "100"})

	assert.Equal(t, ResizeRequest{}, req)
}

func TestParseQueryNegativeDimensionDropsWholeQuery(t *testing.T) {
	req := ParseQuery(map[string]string{"height": "-50"})

	assert.Equal(t, ResizeRequest{}, req)
}

func TestParseQueryUnknownFormatIsCarried(t *testing.T) {
	req := ParseQuery(map[string]string{"format": "bmp"})

	assert.Equal(t, "bmp", req.Format)
	assert.True(t, req.NeedsTransform())
}
