package storage

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"
)

// Discard accepts uploads without keeping their content. It remembers the keys and
// sizes it was given, which is enough for dry runs of an import.
type Discard struct {
	mu      sync.Mutex
	objects map[string]ObjectInfo
}

func NewDiscard() *Discard {
	return &Discard{objects: make(map[string]ObjectInfo)}
}

var _ Storage = (*Discard)(nil)

func (d *Discard) Put(_ context.Context, key string, r io.Reader, opt PutObjectOptions) (ObjectInfo, error) {
	n, err := io.Copy(io.Discard, r)
	if err != nil {
		return ObjectInfo{}, err
	}
	info := ObjectInfo{
		Key:          key,
		Size:         n,
		ContentType:  opt.ContentType,
		LastModified: time.Now(),
		Metadata:     opt.Metadata,
	}
	d.mu.Lock()
	d.objects[key] = info
	d.mu.Unlock()
	return info, nil
}

// Get always fails because content is not retained.
func (d *Discard) Get(_ context.Context, key string) (io.ReadCloser, ObjectInfo, error) {
	return nil, ObjectInfo{}, fmt.Errorf("%w: %s", ErrObjectNotFound, key)
}

// Stat reports what Put recorded for the key.
func (d *Discard) Stat(_ context.Context, key string) (ObjectInfo, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	info, ok := d.objects[key]
	if !ok {
		return ObjectInfo{}, fmt.Errorf("%w: %s", ErrObjectNotFound, key)
	}
	return info, nil
}

func (d *Discard) Delete(_ context.Context, key string) error {
	d.mu.Lock()
	delete(d.objects, key)
	d.mu.Unlock()
	return nil
}

func (d *Discard) PresignGet(_ context.Context, key string, _ time.Duration) (string, error) {
	return "", fmt.Errorf("presign not supported for %s", key)
}

// Objects returns the info recorded for every key still present.
func (d *Discard) Objects() map[string]ObjectInfo {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make(map[string]ObjectInfo, len(d.objects))
	for k, v := range d.objects {
		out[k] = v
	}
	return out
}
