package store

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
)

// ObjectPutter is the subset of the S3 client used by S3. *s3.S3 satisfies it.
type ObjectPutter interface {
	PutObjectWithContext(ctx aws.Context, in *s3.PutObjectInput, opts ...request.Option) (*s3.PutObjectOutput, error)
}

// ErrMissingCredentials is returned by NewS3FromEnv when the AWS variables
// are not set.
var ErrMissingCredentials = errors.New("store: missing one or more required environment variables: AWS_DEFAULT_REGION, AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY")

// S3 is a Sink that uploads objects to a bucket. Object keys are
// Prefix + "/" + key.
type S3 struct {
	Client ObjectPutter
	Bucket string
	Prefix string
}

// NewS3FromEnv builds an S3 sink from AWS_DEFAULT_REGION, AWS_ACCESS_KEY_ID
// and AWS_SECRET_ACCESS_KEY.
func NewS3FromEnv(bucket, prefix string) (*S3, error) {
	region := os.Getenv("AWS_DEFAULT_REGION")
	accessKey := os.Getenv("AWS_ACCESS_KEY_ID")
	secretKey := os.Getenv("AWS_SECRET_ACCESS_KEY")
	if region == "" || accessKey == "" || secretKey == "" {
		return nil, ErrMissingCredentials
	}

	sess, err := session.NewSession(&aws.Config{
		Region:      aws.String(region),
		Credentials: credentials.NewStaticCredentials(accessKey, secretKey, ""),
	})
	if err != nil {
		return nil, fmt.Errorf("store: aws session: %w", err)
	}
	return &S3{Client: s3.New(sess), Bucket: bucket, Prefix: prefix}, nil
}

// ObjectKey returns the bucket key for key.
func (s *S3) ObjectKey(key string) (string, error) {
	clean := strings.TrimPrefix(path.Clean("/"+key), "/")
	if key == "" || clean == "" {
		return "", fmt.Errorf("%w: %q", ErrEmptyKey, key)
	}
	if p := strings.Trim(s.Prefix, "/"); p != "" {
		return p + "/" + clean, nil
	}
	return clean, nil
}

// Put uploads data with a content type derived from its first bytes.
func (s *S3) Put(ctx context.Context, key string, data []byte) error {
	objKey, err := s.ObjectKey(key)
	if err != nil {
		return err
	}
	_, err = s.Client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.Bucket),
		Key:           aws.String(objKey),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
		ContentType:   aws.String(ContentType(objKey, data)),
	})
	if err != nil {
		return fmt.Errorf("store: put s3://%s/%s: %w", s.Bucket, objKey, err)
	}
	return nil
}

// ContentType returns the MIME type of an object. JSON is recognised by
// extension; everything else is sniffed.
func ContentType(key string, data []byte) string {
	switch path.Ext(key) {
	case ".json":
		return "application/json"
	case ".tif", ".tiff":
		return "image/tiff"
	}
	return http.DetectContentType(data)
}
