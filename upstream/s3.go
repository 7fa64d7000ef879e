package upstream

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"go.uber.org/zap"
)

// S3Fetcher reads originals from an s3://bucket[/prefix] upstream.
type S3Fetcher struct {
	s3     s3iface.S3API
	bucket string
	prefix string
	logger *zap.Logger
}

func NewS3Fetcher(client s3iface.S3API, upstream string, logger *zap.Logger) (*S3Fetcher, error) {
	u, err := url.Parse(upstream)
	if err != nil || u.Scheme != "s3" || u.Host == "" {
		return nil, fmt.Errorf("invalid s3 upstream %q", upstream)
	}

	return &S3Fetcher{
		s3:     client,
		bucket: u.Host,
		prefix: strings.Trim(u.Path, "/"),
		logger: logger,
	}, nil
}

func (f *S3Fetcher) Fetch(ctx context.Context, path string) ([]byte, error) {
	key := path
	if f.prefix != "" {
		key = f.prefix + "/" + path
	}

	f.logger.Debug("Fetching origin object", zap.String("bucket", f.bucket), zap.String("key", key))

	out, err := f.s3.GetObjectWithContext(ctx, &s3.GetObjectInput{
		Bucket: aws.String(f.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		f.logger.Error("Error fetching origin object", zap.Error(err))
		return nil, fmt.Errorf("fetching s3://%s/%s: %w", f.bucket, key, err)
	}
	defer out.Body.Close()

	buf, err := io.ReadAll(out.Body)
	if err != nil {
		f.logger.Error("Error reading origin object", zap.Error(err))
		return nil, fmt.Errorf("reading s3://%s/%s: %w", f.bucket, key, err)
	}

	return buf, nil
}
