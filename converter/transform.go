package converter

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"math"

	"github.com/disintegration/imaging"
	"go.uber.org/zap"
	_ "golang.org/x/image/webp"

	"quickly/api/model"
)

// Converter decodes raw image bytes, resizes per the request and encodes
// to the target format. The whole image is buffered in memory; there is
// no incremental decode.
type Converter struct {
	strategy *Strategy
	logger   *zap.Logger
}

func New(strategy *Strategy, logger *zap.Logger) *Converter {
	return &Converter{strategy: strategy, logger: logger}
}

func (c *Converter) Transform(ctx context.Context, buf []byte, req model.ResizeRequest) ([]byte, error) {
	srcType, err := Sniff(buf)
	if err != nil {
		c.logger.Error("Error sniffing image format", zap.Error(err))
		return nil, err
	}

	img, _, err := image.Decode(bytes.NewReader(buf))
	if err != nil {
		c.logger.Error("Error decoding image", zap.Error(err))
		return nil, fmt.Errorf("decoding image: %w", err)
	}

	srcW, srcH := img.Bounds().Dx(), img.Bounds().Dy()
	dstW, dstH, fill := targetSize(srcW, srcH, req)

	c.logger.Debug("Resizing image",
		zap.Stringer("format", srcType),
		zap.String("from", fmt.Sprintf("%dx%d", srcW, srcH)),
		zap.String("to", fmt.Sprintf("%dx%d", dstW, dstH)),
		zap.Bool("crop", fill))

	switch {
	case fill:
		img = imaging.Fill(img, dstW, dstH, imaging.Center, imaging.Linear)
	case dstW != srcW || dstH != srcH:
		img = imaging.Resize(img, dstW, dstH, imaging.Linear)
	}

	dstType := srcType
	if t, err := MakeFromString(req.Format); err == nil {
		dstType = t
	}

	return c.strategy.Apply(dstType).Encode(ctx, img)
}

// targetSize computes the output dimensions for a request against a
// srcW x srcH source, and whether the resize must crop to fill them
// exactly. Fit strategies only apply when both dimensions are present;
// otherwise the plain resize rules take over. Scale factors are computed
// in float64 and rounded to the nearest pixel.
func targetSize(srcW, srcH int, req model.ResizeRequest) (int, int, bool) {
	w, h := req.Width, req.Height

	if req.Fit.IsSet() && w > 0 && h > 0 {
		switch req.Fit {
		case model.FitCrop:
			return w, h, true
		case model.FitBounds:
			scale := math.Min(float64(w)/float64(srcW), float64(h)/float64(srcH))
			return scaled(srcW, scale), scaled(srcH, scale), false
		case model.FitCover:
			// Scales toward covering the box but stops short of the trailing
			// crop, so the output may extend beyond the driven dimension.
			if w > h {
				return scaled(w, float64(h)/float64(srcH)), h, false
			}
			return w, scaled(h, float64(w)/float64(srcW)), false
		}
	}

	switch {
	case w == 0 && h == 0:
		return srcW, srcH, false
	case h == 0:
		return w, scaled(srcH, float64(w)/float64(srcW)), false
	case w == 0:
		return scaled(srcW, float64(h)/float64(srcH)), h, false
	default:
		// Both dimensions without a fit stretch to the exact box.
		return w, h, false
	}
}

func scaled(d int, scale float64) int {
	if s := int(math.Round(float64(d) * scale)); s > 1 {
		return s
	}
	return 1
}
