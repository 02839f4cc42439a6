package ports

import (
	"context"
	"io"
)

type PutObjectInput struct {
	Bucket      string
	ObjectKey   string
	ContentType string
	Reader      io.Reader
	Size        int64
}

type PutObjectOutput struct {
	// On localfs and s3 this is the same object_key.
	// On gdrive it is the Drive fileId (needed for later reads).
	ObjectKey string
	Size      int64
}

// StorageProvider: implementations (localfs, s3, gdrive).
// The bucket is passed per call because the job carries it as an argument;
// providers without a native bucket concept map it to a directory or folder.
type StorageProvider interface {
	Provider() string

	PutObject(ctx context.Context, in PutObjectInput) (PutObjectOutput, error)
	GetObject(ctx context.Context, bucket, objectKey string) (rc io.ReadCloser, contentType string, size int64, err error)
	DeleteObject(ctx context.Context, bucket, objectKey string) error
}
