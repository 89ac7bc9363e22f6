package sink

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"

	"github.com/mgpai22/captions/internal/logging"
)

// S3Sink buffers writes and uploads them as one object on Close
type S3Sink struct {
	client      s3iface.S3API
	bucket      string
	key         string
	contentType string
	logger      *logging.Logger

	buf    bytes.Buffer
	closed bool
}

type S3Option func(s *S3Sink)

func WithContentType(contentType string) S3Option {
	return func(s *S3Sink) {
		s.contentType = contentType
	}
}

func WithLogger(logger *logging.Logger) S3Option {
	return func(s *S3Sink) {
		s.logger = logger
	}
}

func NewS3(
	client s3iface.S3API,
	bucket, key string,
	opts ...S3Option,
) *S3Sink {
	s := &S3Sink{
		client: client,
		bucket: bucket,
		key:    key,
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// builds a client from the shared AWS config; empty region defers to the environment
func NewS3Client(region string) (s3iface.S3API, error) {
	cfg := aws.Config{}
	if region != "" {
		cfg.Region = aws.String(region)
	}

	sess, err := session.NewSessionWithOptions(session.Options{
		Config:            cfg,
		SharedConfigState: session.SharedConfigEnable,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS session: %w", err)
	}
	return s3.New(sess), nil
}

func (s *S3Sink) Write(p []byte) (int, error) {
	if s.closed {
		return 0, ErrClosed
	}
	return s.buf.Write(p)
}

// uploads the buffered document; the sink cannot be reused afterwards
func (s *S3Sink) Close() error {
	return s.CloseContext(context.Background())
}

// like Close, with ctx bounding the upload
func (s *S3Sink) CloseContext(ctx context.Context) error {
	if s.closed {
		return ErrClosed
	}
	s.closed = true

	input := &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key),
		Body:   bytes.NewReader(s.buf.Bytes()),
	}
	if s.contentType != "" {
		input.ContentType = aws.String(s.contentType)
	}

	s.logger.Debugw("Uploading subtitles",
		"uri", s.URI(),
		"bytes", s.buf.Len(),
	)

	if _, err := s.client.PutObjectWithContext(ctx, input); err != nil {
		return fmt.Errorf("failed to upload %s: %w", s.URI(), err)
	}

	s.logger.Infow("Uploaded subtitles", "uri", s.URI())
	return nil
}

// drops the buffered document without uploading it
func (s *S3Sink) Abort() error {
	if s.closed {
		return ErrClosed
	}
	s.closed = true
	s.buf.Reset()
	s.logger.Debugw("Discarded subtitles", "uri", s.URI())
	return nil
}

func (s *S3Sink) URI() string {
	return fmt.Sprintf("s3://%s/%s", s.bucket, s.key)
}
