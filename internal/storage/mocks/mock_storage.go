package mocks

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/stretchr/testify/mock"

	"panomap/internal/storage"
)

// MockStorage is a testify mock of storage.Storage. Put and Stat accept either a
// value or a func computing it from the arguments; Get accepts a string body as a
// shorthand for a reader.
type MockStorage struct {
	mock.Mock
}

var _ storage.Storage = (*MockStorage)(nil)

func (m *MockStorage) Put(ctx context.Context, key string, r io.Reader, opt storage.PutObjectOptions) (storage.ObjectInfo, error) {
	args := m.Called(ctx, key, r, opt)
	if f, ok := args.Get(0).(func(context.Context, string, io.Reader, storage.PutObjectOptions) storage.ObjectInfo); ok {
		return f(ctx, key, r, opt), args.Error(1)
	}
	return objectInfo(args, 0), args.Error(1)
}

func (m *MockStorage) Get(ctx context.Context, key string) (io.ReadCloser, storage.ObjectInfo, error) {
	args := m.Called(ctx, key)
	var rc io.ReadCloser
	switch body := args.Get(0).(type) {
	case io.ReadCloser:
		rc = body
	case string:
		rc = io.NopCloser(strings.NewReader(body))
	}
	return rc, objectInfo(args, 1), args.Error(2)
}

func (m *MockStorage) Stat(ctx context.Context, key string) (storage.ObjectInfo, error) {
	args := m.Called(ctx, key)
	if f, ok := args.Get(0).(func(string) storage.ObjectInfo); ok {
		return f(key), args.Error(1)
	}
	return objectInfo(args, 0), args.Error(1)
}

func (m *MockStorage) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

func (m *MockStorage) PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error) {
	args := m.Called(ctx, key, expiry)
	return args.String(0), args.Error(1)
}

// objectInfo tolerates a nil return so error cases need not spell out an empty struct.
func objectInfo(args mock.Arguments, i int) storage.ObjectInfo {
	info, _ := args.Get(i).(storage.ObjectInfo)
	return info
}
