package dataset

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	aws "github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Environment variables honored by the S3 source:
//   SALESDASH_S3_REGION=<region>   (default us-east-1)
//   SALESDASH_S3_ENDPOINT=<url>    (optional, for MinIO and friends)
//   AWS_ACCESS_KEY_ID / AWS_SECRET_ACCESS_KEY / AWS_SESSION_TOKEN (credential chain)

// readS3Object fetches a dataset stored as s3://bucket/key.
func readS3Object(ctx context.Context, source string) ([]byte, error) {
	bucket, key, err := splitS3URI(source)
	if err != nil {
		return nil, err
	}

	region := os.Getenv("SALESDASH_S3_REGION")
	if region == "" {
		region = "us-east-1"
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("loading AWS configuration: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if endpoint := os.Getenv("SALESDASH_S3_ENDPOINT"); endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	})

	out, err := client.GetObject(ctx, &s3.GetObjectInput{Bucket: &bucket, Key: &key})
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", source, err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", source, err)
	}
	return data, nil
}

func splitS3URI(source string) (bucket, key string, err error) {
	trimmed := strings.TrimPrefix(source, "s3://")
	bucket, key, ok := strings.Cut(trimmed, "/")
	if !ok || bucket == "" || key == "" {
		return "", "", fmt.Errorf("invalid S3 URI %q, want s3://bucket/key", source)
	}
	return bucket, key, nil
}
