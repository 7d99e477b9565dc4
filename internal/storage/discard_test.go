package storage

import (
	"context"
	"strings"
	"testing"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscard(t *testing.T) {
	ctx := context.Background()
	d := NewDiscard()

	info, err := d.Put(ctx, "panoramas/a.jpg", strings.NewReader("jpegdata"), PutObjectOptions{Size: -1, ContentType: "image/jpeg"})
	require.NoError(t, err)
	assert.Equal(t, int64(8), info.Size)
	assert.Contains(t, d.Objects(), "panoramas/a.jpg")

	_, _, err = d.Get(ctx, "panoramas/a.jpg")
	assert.ErrorIs(t, err, ErrObjectNotFound)

	st, err := d.Stat(ctx, "panoramas/a.jpg")
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", st.ContentType)
	assert.Equal(t, int64(8), st.Size)

	require.NoError(t, d.Delete(ctx, "panoramas/a.jpg"))
	assert.Empty(t, d.Objects())

	_, err = d.Stat(ctx, "panoramas/a.jpg")
	assert.ErrorIs(t, err, ErrObjectNotFound)
}

func TestMapMinIOError(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		wantNotFound bool
	}{
		{name: "missing key", err: minio.ErrorResponse{Code: "NoSuchKey", Key: "a.jpg"}, wantNotFound: true},
		{name: "missing object", err: minio.ErrorResponse{Code: "NoSuchObject"}, wantNotFound: true},
		{name: "access denied", err: minio.ErrorResponse{Code: "AccessDenied"}},
		{name: "plain error", err: assert.AnError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := mapMinIOError(tt.err)
			if tt.wantNotFound {
				assert.ErrorIs(t, err, ErrObjectNotFound)
				return
			}
			assert.Equal(t, tt.err, err)
		})
	}
}
