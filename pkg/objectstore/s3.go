package objectstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"

	pkgerrors "github.com/geofabric/batch/pkg/errors"
)

// S3Store signs artifact URLs against an s3 (or s3 compatible) bucket.
type S3Store struct {
	opts    *Options
	cli     *s3.Client
	presign *s3.PresignClient
}

func NewS3Store(opts *Options) (*S3Store, error) {
	opts.SetDefaults()
	if opts.Bucket == "" {
		return nil, fmt.Errorf("%w: bucket required", pkgerrors.ErrInvalidArg)
	}

	cfg, err := awsconfig.LoadDefaultConfig(context.Background())
	if err != nil {
		return nil, err
	}
	if opts.Region != "" {
		cfg.Region = opts.Region
	}
	if opts.Endpoint != "" {
		cfg.EndpointResolverWithOptions = aws.EndpointResolverWithOptionsFunc(
			func(service, region string, options ...interface{}) (aws.Endpoint, error) {
				return aws.Endpoint{URL: opts.Endpoint, HostnameImmutable: true}, nil
			})
	}

	cli := s3.NewFromConfig(cfg)
	return &S3Store{
		opts:    opts,
		cli:     cli,
		presign: s3.NewPresignClient(cli),
	}, nil
}

func (s *S3Store) SignGet(key string) (string, error) {
	req := &s3.GetObjectInput{
		Bucket: &s.opts.Bucket,
		Key:    &key,
	}
	resp, err := s.presign.PresignGetObject(
		context.Background(), req, s3.WithPresignExpires(s.opts.Expiry),
	)
	if err != nil {
		return "", err
	}
	return resp.URL, nil
}

func (s *S3Store) Exists(key string) (bool, error) {
	_, err := s.cli.HeadObject(context.Background(), &s3.HeadObjectInput{
		Bucket: &s.opts.Bucket,
		Key:    &key,
	})
	if err == nil {
		return true, nil
	}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) && (apiErr.ErrorCode() == "NotFound" || apiErr.ErrorCode() == "NoSuchKey") {
		return false, nil
	}
	return false, err
}
