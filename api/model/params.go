package model

import (
	"fmt"
	"strconv"
)

// Fit selects how source dimensions map onto the requested box when the
// aspect ratios differ. The zero value means no fit was requested.
type Fit struct {
	s string
}

var (
	FitBounds = Fit{"bounds"}
	FitCover  = Fit{"cover"}
	FitCrop   = Fit{"crop"}
)

func (f Fit) String() string {
	return f.s
}

func (f Fit) IsSet() bool {
	return f.s != ""
}

func FitFromString(s string) (Fit, error) {
	switch s {
	case FitBounds.s:
		return FitBounds, nil
	case FitCover.s:
		return FitCover, nil
	case FitCrop.s:
		return FitCrop, nil
	}

	return Fit{}, fmt.Errorf("invalid fit type: %s", s)
}

// ResizeRequest is the validated form of the resize query parameters.
// Zero values mean the parameter was absent. Width and Height are always
// either unset or positive; Fit is always unset or a known variant.
// Format carries the raw extension string, checked by the converter.
type ResizeRequest struct {
	Width  int
	Height int
	Fit    Fit
	Format string
}

func (r ResizeRequest) HasResize() bool {
	return r.Width > 0 || r.Height > 0 || r.Fit.IsSet()
}

// NeedsTransform also accounts for a format override with no resize,
// which still requires a decode/re-encode pass.
func (r ResizeRequest) NeedsTransform() bool {
	return r.HasResize() || r.Format != ""
}

// ParseQuery builds a ResizeRequest from raw query values. Parsing is
// permissive: a malformed width, height or fit value falls back to the
// all-unset request for the whole query instead of failing the request.
func ParseQuery(values map[string]string) ResizeRequest {
	req, err := parseQuery(values)
	if err != nil {
		return ResizeRequest{}
	}
	return req
}

func parseQuery(values map[string]string) (ResizeRequest, error) {
	var req ResizeRequest
	var err error

	if req.Width, err = parseDimension(values["width"]); err != nil {
		return ResizeRequest{}, err
	}
	if req.Height, err = parseDimension(values["height"]); err != nil {
		return ResizeRequest{}, err
	}

	if s, ok := values["fit"]; ok && s != "" {
		if req.Fit, err = FitFromString(s); err != nil {
			return ResizeRequest{}, err
		}
	}

	req.Format = values["format"]

	return req, nil
}

func parseDimension(s string) (int, error) {
	if s == "" {
		return 0, nil
	}

	d, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid dimension %q: %w", s, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("dimension must be positive, got %d", d)
	}

	return d, nil
}
