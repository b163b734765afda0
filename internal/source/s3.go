package source

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	appconfig "github.com/maraichr/crmgraph/internal/config"
)

// S3Fetcher downloads the CSV drop from an S3-compatible bucket into the
// local data directory before a run.
type S3Fetcher struct {
	client *s3.Client
	bucket string
}

// NewS3Fetcher creates a fetcher. Works with both AWS S3 and MinIO-style
// endpoints.
func NewS3Fetcher(ctx context.Context, cfg appconfig.S3Config) (*S3Fetcher, error) {
	awsCfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(cfg.Region),
	)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = &cfg.Endpoint
			o.UsePathStyle = true
		}
	})

	return &S3Fetcher{client: client, bucket: cfg.Bucket}, nil
}

// Bucket returns the configured bucket name.
func (f *S3Fetcher) Bucket() string { return f.bucket }

// Sync downloads every object under prefix into destDir and returns how many
// files landed. The prefix is stripped from local names so the plan's bare
// file names resolve under the data directory.
func (f *S3Fetcher) Sync(ctx context.Context, prefix, destDir string) (int, error) {
	paginator := s3.NewListObjectsV2Paginator(f.client, &s3.ListObjectsV2Input{
		Bucket: &f.bucket,
		Prefix: &prefix,
	})

	downloaded := 0
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return downloaded, fmt.Errorf("list objects: %w", err)
		}

		for _, obj := range page.Contents {
			if obj.Key == nil {
				continue
			}
			key := *obj.Key

			// Skip "directory" markers
			if strings.HasSuffix(key, "/") {
				continue
			}

			rel := strings.TrimPrefix(strings.TrimPrefix(key, prefix), "/")
			if err := f.downloadObject(ctx, key, filepath.Join(destDir, rel)); err != nil {
				return downloaded, fmt.Errorf("download %s: %w", key, err)
			}
			downloaded++
		}
	}

	return downloaded, nil
}

func (f *S3Fetcher) downloadObject(ctx context.Context, key, localPath string) error {
	if err := os.MkdirAll(filepath.Dir(localPath), 0o755); err != nil {
		return err
	}

	resp, err := f.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: &f.bucket,
		Key:    &key,
	})
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	out, err := os.Create(localPath)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, resp.Body); err != nil {
		return err
	}
	return nil
}
