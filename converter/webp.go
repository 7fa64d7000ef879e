package converter

import (
	"bytes"
	"context"
	"image"

	"github.com/chai2010/webp"
	"go.uber.org/zap"
)

const webpQuality = 85

type Webp struct {
	logger *zap.Logger
}

func mustWebp(logger *zap.Logger) *Webp {
	return &Webp{logger: logger}
}

func (w *Webp) Encode(_ context.Context, img image.Image) ([]byte, error) {
	w.logger.Debug("Converting image to webp")

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: webpQuality}); err != nil {
		w.logger.Error("Error converting image to webp", zap.Error(err))
		return nil, err
	}

	return buf.Bytes(), nil
}
