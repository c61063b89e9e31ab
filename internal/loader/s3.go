// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package loader

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	s3v2 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"

	"github.com/tfctl/kdiff/internal/cacheutil"
)

const s3Scheme = "s3://"

// ObjectGetter is the part of the S3 API the loader needs. *s3.Client
// satisfies it.
type ObjectGetter interface {
	GetObject(ctx context.Context, params *s3v2.GetObjectInput, optFns ...func(*s3v2.Options)) (*s3v2.GetObjectOutput, error)
}

// s3Options holds optional overrides for AWS config loading.
type s3Options struct {
	profile string
	region  string
}

// S3Option customizes how the AWS config behind NewS3Client is loaded. With no
// options the shell environment and shared config chain are used (AWS_PROFILE,
// ~/.aws/config, ~/.aws/credentials, IMDS).
type S3Option func(*s3Options)

// WithProfile sets the shared config profile.
func WithProfile(profile string) S3Option {
	return func(o *s3Options) { o.profile = profile }
}

// WithRegion sets the region override.
func WithRegion(region string) S3Option {
	return func(o *s3Options) { o.region = region }
}

// NewS3Client loads the AWS config and returns an S3 client.
func NewS3Client(ctx context.Context, opts ...S3Option) (*s3v2.Client, error) {
	var o s3Options
	for _, opt := range opts {
		opt(&o)
	}

	var loadOpts []func(*config.LoadOptions) error
	if o.profile != "" {
		loadOpts = append(loadOpts, config.WithSharedConfigProfile(o.profile))
	}
	if o.region != "" {
		loadOpts = append(loadOpts, config.WithRegion(o.region))
	}

	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return s3v2.NewFromConfig(cfg), nil
}

// parseS3URI splits s3://bucket/path/to/key into bucket and key.
func parseS3URI(uri string) (string, string, error) {
	rest, ok := strings.CutPrefix(uri, s3Scheme)
	if !ok {
		return "", "", fmt.Errorf("not an s3 uri: %s", uri)
	}
	bucket, key, _ := strings.Cut(rest, "/")
	if bucket == "" || key == "" {
		return "", "", fmt.Errorf("s3 uri must be s3://bucket/key: %s", uri)
	}
	return bucket, key, nil
}

func (ld *Loader) readS3(ctx context.Context, location string) ([]byte, error) {
	bucket, key, err := parseS3URI(location)
	if err != nil {
		return nil, &Error{Location: location, Err: err}
	}

	sub := []string{"s3", bucket}
	if ld.cache {
		if entry, ok := cacheutil.Read(sub, location); ok {
			ld.log.Debugf("using cached copy of %s from %s", location, entry.ModTime.Format("2006-01-02 15:04:05"))
			return entry.Data, nil
		}
	}

	if ld.s3 == nil {
		client, err := NewS3Client(ctx, ld.s3Opts...)
		if err != nil {
			return nil, &Error{Location: location, Err: err}
		}
		ld.s3 = client
	}

	out, err := ld.s3.GetObject(ctx, &s3v2.GetObjectInput{
		Bucket: awsv2.String(bucket),
		Key:    awsv2.String(key),
	})
	if err != nil {
		if isS3NotFound(err) {
			return nil, &Error{Location: location, Kind: ErrNotFound, Err: err}
		}
		return nil, &Error{Location: location, Err: fmt.Errorf("failed to get S3 object: %w", err)}
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, &Error{Location: location, Err: fmt.Errorf("failed to read S3 object body: %w", err)}
	}

	if ld.cache {
		if err := cacheutil.Write(sub, location, data); err != nil {
			ld.log.WithError(err).Warn("failed to cache S3 object")
		}
	}
	return data, nil
}

// isS3NotFound reports whether err says the bucket or key does not exist.
func isS3NotFound(err error) bool {
	var nsk *types.NoSuchKey
	var nsb *types.NoSuchBucket
	if errors.As(err, &nsk) || errors.As(err, &nsb) {
		return true
	}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NoSuchKey", "NoSuchBucket", "NotFound":
			return true
		}
	}
	return false
}
