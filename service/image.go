package service

import (
	"context"

	"go.uber.org/zap"

	"quickly/api/model"
)

// Fetcher retrieves the original bytes for a path from the upstream origin.
type Fetcher interface {
	Fetch(ctx context.Context, path string) ([]byte, error)
}

// Transformer resizes and/or re-encodes raw image bytes.
type Transformer interface {
	Transform(ctx context.Context, buf []byte, req model.ResizeRequest) ([]byte, error)
}

type ImageService struct {
	fetcher     Fetcher
	transformer Transformer
	logger      *zap.Logger
}

func NewImageService(fetcher Fetcher, transformer Transformer, logger *zap.Logger) *ImageService {
	return &ImageService{fetcher: fetcher, transformer: transformer, logger: logger}
}

// Process fetches the original for path and, when the request asks for a
// resize or a format override, runs it through the transformer. A failed
// transform fails the request; the untransformed bytes are never returned
// as a fallback.
func (s *ImageService) Process(ctx context.Context, path string, req model.ResizeRequest) ([]byte, error) {
	buf, err := s.fetcher.Fetch(ctx, path)
	if err != nil {
		return nil, err
	}

	if !req.NeedsTransform() {
		return buf, nil
	}

	return s.transformer.Transform(ctx, buf, req)
}
