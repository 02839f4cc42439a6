package s3

import (
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"

	"tetramod/internal/ports"
)

// Client implements ports.StorageProvider backed by Amazon S3.
// Uploads go through the transfer manager so large model files are
// sent multipart without buffering them in memory.
type Client struct {
	s3c      *awss3.Client
	uploader *manager.Uploader
}

func NewClient(s3c *awss3.Client) *Client {
	return &Client{
		s3c:      s3c,
		uploader: manager.NewUploader(s3c),
	}
}

func (c *Client) Provider() string { return "s3" }

func (c *Client) PutObject(ctx context.Context, in ports.PutObjectInput) (ports.PutObjectOutput, error) {
	if in.Bucket == "" {
		return ports.PutObjectOutput{}, fmt.Errorf("bucket is required")
	}
	if in.ObjectKey == "" {
		return ports.PutObjectOutput{}, fmt.Errorf("object_key is required")
	}

	put := &awss3.PutObjectInput{
		Bucket: aws.String(in.Bucket),
		Key:    aws.String(in.ObjectKey),
		Body:   in.Reader,
	}
	if in.ContentType != "" {
		put.ContentType = aws.String(in.ContentType)
	}

	if _, err := c.uploader.Upload(ctx, put); err != nil {
		return ports.PutObjectOutput{}, fmt.Errorf("s3 upload failed: %w", err)
	}

	return ports.PutObjectOutput{ObjectKey: in.ObjectKey, Size: in.Size}, nil
}

func (c *Client) GetObject(ctx context.Context, bucket, objectKey string) (rc io.ReadCloser, contentType string, size int64, err error) {
	resp, err := c.s3c.GetObject(ctx, &awss3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(objectKey),
	})
	if err != nil {
		return nil, "", 0, fmt.Errorf("s3 download failed: %w", err)
	}

	return resp.Body, aws.ToString(resp.ContentType), aws.ToInt64(resp.ContentLength), nil
}

func (c *Client) DeleteObject(ctx context.Context, bucket, objectKey string) error {
	_, err := c.s3c.DeleteObject(ctx, &awss3.DeleteObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(objectKey),
	})
	return err
}
