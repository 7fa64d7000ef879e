package converter

import (
	"context"
	"image"

	"go.uber.org/zap"
)

type Encoder interface {
	Encode(ctx context.Context, img image.Image) ([]byte, error)
}

type Strategy struct {
	m map[Type]Encoder
}

func MustStrategy(logger *zap.Logger) *Strategy {
	m := map[Type]Encoder{
		JPEG: mustJpeg(logger),
		PNG:  mustPng(logger),
		GIF:  mustGif(logger),
		WEBP: mustWebp(logger),
	}

	return &Strategy{m: m}
}

func (s *Strategy) Apply(t Type) Encoder {
	return s.m[t]
}
