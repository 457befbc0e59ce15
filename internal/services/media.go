package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"slices"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// MaxUploadSize is the largest accepted media file
const MaxUploadSize = 10 << 20

// mediaType is an accepted upload type: the stored file extension and the
// types http.DetectContentType may report for genuine files of that type.
type mediaType struct {
	ext     string
	sniffed []string
}

// allowedMedia maps accepted content types to their expectations. The sniffer
// reports MP4 and WebM containers as video; MP3 without an ID3 tag has no
// signature it recognizes.
var allowedMedia = map[string]mediaType{
	"image/jpeg": {ext: ".jpg", sniffed: []string{"image/jpeg"}},
	"image/png":  {ext: ".png", sniffed: []string{"image/png"}},
	"image/webp": {ext: ".webp", sniffed: []string{"image/webp"}},
	"image/gif":  {ext: ".gif", sniffed: []string{"image/gif"}},
	"audio/webm": {ext: ".webm", sniffed: []string{"video/webm", "audio/webm"}},
	"audio/mp4":  {ext: ".m4a", sniffed: []string{"video/mp4", "audio/mp4"}},
	"audio/mpeg": {ext: ".mp3", sniffed: []string{"audio/mpeg", "application/octet-stream"}},
}

const sniffLen = 512

// sniff reads the head of body and checks it against the declared type. The
// returned reader replays the head before the rest of body.
func sniff(declared mediaType, body io.Reader) (io.Reader, error) {
	head := make([]byte, sniffLen)
	n, err := io.ReadFull(body, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}
	head = head[:n]

	detected := http.DetectContentType(head)
	if !slices.Contains(declared.sniffed, detected) {
		return nil, fmt.Errorf("%w: content looks like %s", ErrUnsupportedMedia, detected)
	}
	return io.MultiReader(bytes.NewReader(head), body), nil
}

// ObjectStorage stores uploaded media and returns its public URL
type ObjectStorage interface {
	Put(ctx context.Context, key, contentType string, body io.Reader, size int64) (string, error)
}

// S3Options configures S3Storage
type S3Options struct {
	Region    string
	Bucket    string
	AccessKey string
	SecretKey string
	Endpoint  string
	PublicURL string
}

// S3Storage is ObjectStorage backed by S3 or an S3-compatible service
type S3Storage struct {
	client    *s3.Client
	bucket    string
	publicURL string
}

// NewS3Storage builds the S3 client. Static keys are used when configured,
// the default AWS credential chain otherwise.
func NewS3Storage(ctx context.Context, opts S3Options) (*S3Storage, error) {
	loadOpts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(opts.Region)}
	if opts.AccessKey != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(opts.AccessKey, opts.SecretKey, ""),
		))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
			o.UsePathStyle = true
		}
	})

	publicURL := strings.TrimSuffix(opts.PublicURL, "/")
	if publicURL == "" {
		publicURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", opts.Bucket, opts.Region)
	}

	return &S3Storage{client: client, bucket: opts.Bucket, publicURL: publicURL}, nil
}

// Put uploads body under key
func (s *S3Storage) Put(ctx context.Context, key, contentType string, body io.Reader, size int64) (string, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          body,
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(size),
	})
	if err != nil {
		return "", fmt.Errorf("failed to put object: %w", err)
	}
	return s.publicURL + "/" + key, nil
}

// MediaService handles memory photos and voice notes
type MediaService struct {
	storage ObjectStorage
}

// NewMediaService creates a new media service
func NewMediaService(storage ObjectStorage) *MediaService {
	return &MediaService{storage: storage}
}

// Upload describes a stored media file
type Upload struct {
	URL         string `json:"url"`
	Key         string `json:"key"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
}

// Upload stores a file for the caller's couple under <coupleId>/<uuid><ext>
func (s *MediaService) Upload(ctx context.Context, actor *Actor, contentType string, size int64, body io.Reader) (*Upload, error) {
	contentType = strings.ToLower(strings.TrimSpace(strings.Split(contentType, ";")[0]))
	media, ok := allowedMedia[contentType]
	if !ok {
		return nil, ErrUnsupportedMedia
	}
	if size > MaxUploadSize {
		return nil, ErrFileTooLarge
	}

	body, err := sniff(media, body)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("%s/%s%s", actor.CoupleID, uuid.New().String(), media.ext)
	url, err := s.storage.Put(ctx, key, contentType, body, size)
	if err != nil {
		return nil, fmt.Errorf("failed to store upload: %w", err)
	}

	log.Info().
		Str("user_id", actor.UserID).
		Str("key", key).
		Int64("size", size).
		Msg("Media uploaded")

	return &Upload{URL: url, Key: key, ContentType: contentType, Size: size}, nil
}
