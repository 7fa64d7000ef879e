package converter

import (
	"bytes"
	"context"
	"image"
	"image/gif"

	"go.uber.org/zap"
)

type Gif struct {
	logger *zap.Logger
}

func mustGif(logger *zap.Logger) *Gif {
	return &Gif{logger: logger}
}

func (w *Gif) Encode(_ context.Context, img image.Image) ([]byte, error) {
	w.logger.Debug("Converting image to gif")

	var buf bytes.Buffer
	if err := gif.Encode(&buf, img, nil); err != nil {
		w.logger.Error("Error converting image to gif", zap.Error(err))
		return nil, err
	}

	return buf.Bytes(), nil
}
