package converter

import (
	"fmt"
	"net/http"
)

// Type is an image encoding supported as a transform target.
type Type struct {
	s string
}

var (
	JPEG = Type{"jpeg"}
	PNG  = Type{"png"}
	GIF  = Type{"gif"}
	WEBP = Type{"webp"}
)

func (t Type) String() string {
	return t.s
}

func (t Type) IsSet() bool {
	return t.s != ""
}

// MakeFromString maps a user-supplied extension to a Type. Unknown
// extensions return an error; callers treat that as "no override".
func MakeFromString(s string) (Type, error) {
	switch s {
	case "jpg", JPEG.s:
		return JPEG, nil
	case PNG.s:
		return PNG, nil
	case GIF.s:
		return GIF, nil
	case WEBP.s:
		return WEBP, nil
	}

	return Type{}, fmt.Errorf("unknown type: %s", s)
}

// Sniff detects the encoding from the byte signature. Extensions and
// upstream headers are never consulted.
func Sniff(buf []byte) (Type, error) {
	switch http.DetectContentType(buf) {
	case "image/jpeg":
		return JPEG, nil
	case "image/png":
		return PNG, nil
	case "image/gif":
		return GIF, nil
	case "image/webp":
		return WEBP, nil
	}

	return Type{}, fmt.Errorf("unsupported image signature")
}
