package source

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"order-hub/core/storage"

	"github.com/minio/minio-go/v7"
)

// Fetcher opens upstream exports by name.
// A missing export is reported with an error wrapping fs.ErrNotExist.
type Fetcher interface {
	// Open returns a reader over the named export.
	Open(ctx context.Context, name string) (io.ReadCloser, error)
	// Location describes where name is read from, for logs and reports.
	Location(name string) string
}

// FSFetcher reads exports from a file system rooted at a directory.
type FSFetcher struct {
	fsys fs.FS
	root string
}

// NewFSFetcher creates a fetcher over fsys. root is only used to describe locations.
func NewFSFetcher(fsys fs.FS, root string) *FSFetcher {
	return &FSFetcher{fsys: fsys, root: root}
}

// NewDirFetcher creates a fetcher over a local directory.
func NewDirFetcher(dir string) *FSFetcher {
	return NewFSFetcher(os.DirFS(dir), dir)
}

// Open implements Fetcher.
func (f *FSFetcher) Open(_ context.Context, name string) (io.ReadCloser, error) {
	file, err := f.fsys.Open(name)
	if err != nil {
		return nil, err
	}
	info, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return nil, err
	}
	if info.IsDir() {
		_ = file.Close()
		return nil, fmt.Errorf("%s is a directory: %w", f.Location(name), fs.ErrNotExist)
	}
	return file, nil
}

// Location implements Fetcher.
func (f *FSFetcher) Location(name string) string {
	return filepath.Join(f.root, name)
}

// ObjectFetcher reads exports from an object storage bucket.
type ObjectFetcher struct {
	client storage.Client
	bucket string
	prefix string
}

// NewObjectFetcher creates a fetcher reading bucket/prefix/name objects.
func NewObjectFetcher(client storage.Client, bucket, prefix string) *ObjectFetcher {
	return &ObjectFetcher{client: client, bucket: bucket, prefix: strings.Trim(prefix, "/")}
}

// Open implements Fetcher.
func (f *ObjectFetcher) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	key := f.key(name)

	// GetObject is lazy, so probe first to tell "absent" apart from read failures.
	if _, err := f.client.StatObject(ctx, f.bucket, key, minio.StatObjectOptions{}); err != nil {
		if storage.IsNotFound(err) {
			return nil, fmt.Errorf("object %s: %w", f.Location(name), fs.ErrNotExist)
		}
		return nil, fmt.Errorf("failed to stat object %s: %w", f.Location(name), err)
	}

	rc, err := f.client.GetObject(ctx, f.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get object %s: %w", f.Location(name), err)
	}
	return rc, nil
}

// Location implements Fetcher.
func (f *ObjectFetcher) Location(name string) string {
	return "s3://" + f.bucket + "/" + f.key(name)
}

func (f *ObjectFetcher) key(name string) string {
	if f.prefix == "" {
		return name
	}
	return path.Join(f.prefix, name)
}
