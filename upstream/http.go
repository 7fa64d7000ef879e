package upstream

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
)

// HTTPFetcher retrieves originals with a plain GET against
// {upstream}/{path}. Non-2xx responses and transport errors are fetch
// failures; there are no retries.
type HTTPFetcher struct {
	base    string
	timeout time.Duration
	client  *fasthttp.Client
	logger  *zap.Logger
}

func NewHTTPFetcher(base string, timeout time.Duration, logger *zap.Logger) *HTTPFetcher {
	return &HTTPFetcher{
		base:    strings.TrimRight(base, "/"),
		timeout: timeout,
		client:  &fasthttp.Client{},
		logger:  logger,
	}
}

func (f *HTTPFetcher) Fetch(_ context.Context, path string) ([]byte, error) {
	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)

	uri := f.base + "/" + path
	req.SetRequestURI(uri)
	req.Header.SetMethod(fasthttp.MethodGet)

	f.logger.Debug("Fetching origin image", zap.String("uri", uri))

	if err := f.client.DoTimeout(req, resp, f.timeout); err != nil {
		f.logger.Error("Error fetching origin image", zap.Error(err))
		return nil, fmt.Errorf("fetching %s: %w", uri, err)
	}

	if sc := resp.StatusCode(); sc < fasthttp.StatusOK || sc >= fasthttp.StatusMultipleChoices {
		f.logger.Error("Unexpected origin status", zap.Int("status", sc), zap.String("uri", uri))
		return nil, fmt.Errorf("fetching %s: unexpected status %d", uri, sc)
	}

	// The response body is pooled by fasthttp; hand out a copy.
	body := resp.Body()
	buf := make([]byte, len(body))
	copy(buf, body)

	return buf, nil
}
