package storage

import (
	"context"
	"fmt"
	"os"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	drive "google.golang.org/api/drive/v3"
	"google.golang.org/api/option"

	"tetramod/internal/adapters/storage/gdrive"
	"tetramod/internal/adapters/storage/localfs"
	"tetramod/internal/adapters/storage/s3"
)

// NewProvider builds the storage provider selected by STORAGE_PROVIDER.
// Defaults to s3, which is what the modeling containers run in production.
func NewProvider(ctx context.Context) (Provider, error) {
	provider := os.Getenv("STORAGE_PROVIDER")
	if provider == "" {
		provider = "s3"
	}

	switch provider {
	case "s3":
		return newS3Provider(ctx)

	case "localfs":
		root := mustEnv("STORAGE_LOCAL_ROOT")
		return localfs.New(root), nil

	case "gdrive":
		return newGDriveProvider(ctx)

	default:
		return nil, fmt.Errorf("unknown storage provider: %s", provider)
	}
}

func newS3Provider(ctx context.Context) (Provider, error) {
	// Region and credentials come from the default chain (env vars,
	// shared config, task role), same as boto3 in the old container.
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return s3.NewClient(awss3.NewFromConfig(cfg)), nil
}

func newGDriveProvider(ctx context.Context) (Provider, error) {
	clientID := mustEnv("GDRIVE_CLIENT_ID")
	clientSecret := mustEnv("GDRIVE_CLIENT_SECRET")
	refreshToken := mustEnv("GDRIVE_REFRESH_TOKEN")

	conf := &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		Endpoint:     google.Endpoint,
		Scopes:       []string{drive.DriveFileScope},
	}

	tok := &oauth2.Token{RefreshToken: refreshToken}
	httpClient := conf.Client(ctx, tok)

	srv, err := drive.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, err
	}

	return gdrive.NewClient(srv), nil
}

func mustEnv(k string) string {
	v := os.Getenv(k)
	if v == "" {
		panic("missing env: " + k)
	}
	return v
}
