package converter

import (
	"bytes"
	"context"
	"image"
	"image/jpeg"

	"go.uber.org/zap"
)

const jpegQuality = 85

type Jpeg struct {
	logger *zap.Logger
}

func mustJpeg(logger *zap.Logger) *Jpeg {
	return &Jpeg{logger: logger}
}

func (w *Jpeg) Encode(_ context.Context, img image.Image) ([]byte, error) {
	w.logger.Debug("Converting image to jpeg")

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		w.logger.Error("Error converting image to jpeg", zap.Error(err))
		return nil, err
	}

	return buf.Bytes(), nil
}
