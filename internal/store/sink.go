package store

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Sink stores one named output file and returns where it went.
type Sink interface {
	Put(ctx context.Context, name string, body []byte) (string, error)
}

type S3PutAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// DirSink writes files under a local directory, creating it as needed.
type DirSink struct {
	Dir string
}

func (d DirSink) Put(_ context.Context, name string, body []byte) (string, error) {
	if err := os.MkdirAll(d.Dir, 0o755); err != nil {
		return "", err
	}
	p := filepath.Join(d.Dir, name)
	if err := os.WriteFile(p, body, 0o644); err != nil {
		return "", err
	}
	return p, nil
}

// S3Sink uploads files to s3://Bucket/Prefix/name.
type S3Sink struct {
	Client S3PutAPI
	Bucket string
	Prefix string
}

func (u S3Sink) Put(ctx context.Context, name string, body []byte) (string, error) {
	key := name
	if u.Prefix != "" {
		key = path.Join(u.Prefix, name)
	}
	_, err := u.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.Bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("text/tab-separated-values"),
	})
	if err != nil {
		return "", fmt.Errorf("put s3://%s/%s: %w", u.Bucket, key, err)
	}
	return "s3://" + u.Bucket + "/" + key, nil
}

// ParseS3URL splits s3://bucket/some/prefix. ok is false for anything that
// is not an s3 URL.
func ParseS3URL(u string) (bucket, prefix string, ok bool) {
	rest, found := strings.CutPrefix(u, "s3://")
	if !found {
		return "", "", false
	}
	bucket, prefix, _ = strings.Cut(rest, "/")
	if bucket == "" {
		return "", "", false
	}
	return bucket, strings.Trim(prefix, "/"), true
}

// OutputSink returns the sink for the data directory under base: an
// S3Sink when base is an s3 URL, a DirSink otherwise. cli may be nil for
// local paths.
func OutputSink(base string, cli S3PutAPI) (Sink, error) {
	if bucket, prefix, ok := ParseS3URL(base); ok {
		if cli == nil {
			return nil, fmt.Errorf("s3 output %s: no s3 client", base)
		}
		return S3Sink{Client: cli, Bucket: bucket, Prefix: path.Join(prefix, "data")}, nil
	}
	if strings.HasPrefix(base, "s3://") {
		return nil, fmt.Errorf("bad s3 url %q", base)
	}
	if base == "" {
		base = "."
	}
	return DirSink{Dir: filepath.Join(base, "data")}, nil
}
