package converter

import (
	"bytes"
	"context"
	"image"
	"image/png"

	"go.uber.org/zap"
)

type Png struct {
	logger *zap.Logger
}

func mustPng(logger *zap.Logger) *Png {
	return &Png{logger: logger}
}

func (w *Png) Encode(_ context.Context, img image.Image) ([]byte, error) {
	w.logger.Debug("Converting image to png")

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		w.logger.Error("Error converting image to png", zap.Error(err))
		return nil, err
	}

	return buf.Bytes(), nil
}
