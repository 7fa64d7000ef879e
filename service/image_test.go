package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"quickly/api/model"
)

type MockFetcher struct {
	response []byte
	err      error
	calls    int
	path     string
}

func (m *MockFetcher) Fetch(_ context.Context, path string) ([]byte, error) {
	m.calls++
	m.path = path
	return m.response, m.err
}

type MockTransformer struct {
	response []byte
	err      error
	calls    int
	input    []byte
	req      model.ResizeRequest
}

func (m *MockTransformer) Transform(_ context.Context, buf []byte, req model.ResizeRequest) ([]byte, error) {
	m.calls++
	m.input = buf
	m.req = req
	return m.response, m.err
}

func TestProcessPassThroughWithoutResize(t *testing.T) {
	mf := &MockFetcher{response: []byte("original")}
	mt := &MockTransformer{response: []byte("transformed")}

	s := NewImageService(mf, mt, zap.NewNop())

	out, err := s.Process(context.Background(), "img/cat.png", model.ResizeRequest{})
	assert.NoError(t, err)

	assert.Equal(t, []byte("original"), out)
	assert.Equal(t, "img/cat.png", mf.path)
	assert.Zero(t, mt.calls)
}

func TestProcessTransformsWhenResizeRequested(t *testing.T) {
	mf := &MockFetcher{response: []byte("original")}
	mt := &MockTransformer{response: []byte("transformed")}

	s := NewImageService(mf, mt, zap.NewNop())

	req := model.ResizeRequest{Width: 100}
	out, err := s.Process(context.Background(), "img/cat.png", req)
	assert.NoError(t, err)

	assert.Equal(t, []byte("transformed"), out)
	assert.Equal(t, []byte("original"), mt.input)
	assert.Equal(t, req, mt.req)
}

func TestProcessTransformsOnFormatOverrideAlone(t *testing.T) {
	mf := &MockFetcher{response: []byte("original")}
	mt := &MockTransformer{response: []byte("transformed")}

	s := NewImageService(mf, mt, zap.NewNop())

	out, err := s.Process(context.Background(), "img/cat.jpg", model.ResizeRequest{Format: "png"})
	assert.NoError(t, err)

	assert.Equal(t, []byte("transformed"), out)
	assert.Equal(t, 1, mt.calls)
}

func TestProcessFetchErrorSkipsTransform(t *testing.T) {
	mf := &MockFetcher{err: errors.New("mock error")}
	mt := &MockTransformer{}

	s := NewImageService(mf, mt, zap.NewNop())

	_, err := s.Process(context.Background(), "img/cat.png", model.ResizeRequest{Width: 100})
	assert.Error(t, err)

	assert.Zero(t, mt.calls)
}

// A failed transform fails the request; the fetched bytes never leak out.
func TestProcessTransformErrorReturnsNoBytes(t *testing.T) {
	mf := &MockFetcher{response: []byte("original")}
	mt := &MockTransformer{err: errors.New("mock error")}

	s := NewImageService(mf, mt, zap.NewNop())

	out, err := s.Process(context.Background(), "img/cat.png", model.ResizeRequest{Width: 100})
	assert.Error(t, err)
	assert.Nil(t, out)
}
