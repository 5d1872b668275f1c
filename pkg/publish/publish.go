package publish

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/FifthTry/ftd/internal/build"
	"github.com/FifthTry/ftd/internal/config"
	"github.com/FifthTry/ftd/internal/errors"
)

// HashMetadataKey is the object metadata key holding the content hash.
const HashMetadataKey = "sha256"

// Publisher uploads built pages to a bucket.
type Publisher struct {
	client Client
	bucket string
	prefix string
	force  bool
	logger *slog.Logger
}

// Option configures a Publisher.
type Option func(*Publisher)

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(p *Publisher) {
		if l != nil {
			p.logger = l
		}
	}
}

// WithForce uploads every object, even when the stored hash matches.
func WithForce(force bool) Option {
	return func(p *Publisher) {
		p.force = force
	}
}

// New creates a Publisher for the bucket and prefix of cfg. A config
// without a bucket fails with E402.
func New(client Client, cfg config.PublishConfig, opts ...Option) (*Publisher, error) {
	if cfg.Bucket == "" {
		return nil, errors.New("E402").
			WithDetail("publish.bucket is empty").
			WithSuggestion(`Set "publish": {"bucket": "..."} in ftd.json`)
	}
	prefix := cfg.Prefix
	if prefix != "" && !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	p := &Publisher{
		client: client,
		bucket: cfg.Bucket,
		prefix: prefix,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Object is one published file.
type Object struct {
	Key  string
	File string
	Size int64
}

// Result summarizes a publish.
type Result struct {
	Uploaded []Object
	Skipped  []Object
	Duration time.Duration
}

// Publish uploads the pages listed in the manifest under outputDir,
// followed by the manifest.
func (p *Publisher) Publish(ctx context.Context, outputDir string) (*Result, error) {
	start := time.Now()
	manifest, err := build.ReadManifest(outputDir)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(manifest))
	for name := range manifest {
		names = append(names, name)
	}
	sort.Strings(names)

	result := &Result{}
	for _, name := range names {
		entry := manifest[name]
		data, err := os.ReadFile(filepath.Join(outputDir, entry.File))
		if err != nil {
			return nil, errors.New("E401").WithDetail(entry.File).Wrap(err)
		}
		if hash(data) != entry.SHA256 {
			return nil, errors.New("E401").
				WithDetailf("%s changed since the build", entry.File).
				WithSuggestion("Run 'ftd build' again")
		}

		obj, uploaded, err := p.put(ctx, entry.File, data, entry.SHA256)
		if err != nil {
			return nil, err
		}
		if uploaded {
			result.Uploaded = append(result.Uploaded, obj)
		} else {
			result.Skipped = append(result.Skipped, obj)
		}
	}

	data, err := os.ReadFile(filepath.Join(outputDir, build.ManifestFile))
	if err != nil {
		return nil, errors.New("E401").WithDetail(build.ManifestFile).Wrap(err)
	}
	obj, uploaded, err := p.put(ctx, build.ManifestFile, data, hash(data))
	if err != nil {
		return nil, err
	}
	if uploaded {
		result.Uploaded = append(result.Uploaded, obj)
	} else {
		result.Skipped = append(result.Skipped, obj)
	}

	result.Duration = time.Since(start)
	p.logger.Info("published",
		"bucket", p.bucket,
		"uploaded", len(result.Uploaded),
		"skipped", len(result.Skipped),
		"duration", result.Duration,
	)
	return result, nil
}

// put uploads one file unless the stored object already has its hash.
func (p *Publisher) put(ctx context.Context, file string, data []byte, sum string) (Object, bool, error) {
	key := p.Key(file)
	obj := Object{Key: key, File: file, Size: int64(len(data))}

	if !p.force && p.stored(ctx, key) == sum {
		p.logger.Debug("object unchanged", "key", key)
		return obj, false, nil
	}

	_, err := p.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(p.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
		ContentType:   aws.String(contentType(file)),
		CacheControl:  aws.String("no-cache"),
		Metadata:      map[string]string{HashMetadataKey: sum},
	})
	if err != nil {
		p.logger.Error("upload failed", "bucket", p.bucket, "key", key, "error", err)
		return obj, false, errors.New("E401").WithDetailf("s3://%s/%s", p.bucket, key).Wrap(err)
	}
	p.logger.Debug("object uploaded", "key", key, "size", len(data))
	return obj, true, nil
}

// stored returns the hash recorded on the object at key, or "" when the
// object is missing or unreadable.
func (p *Publisher) stored(ctx context.Context, key string) string {
	out, err := p.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(p.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return ""
	}
	return out.Metadata[HashMetadataKey]
}

// Key returns the object key for a file in the output directory.
func (p *Publisher) Key(file string) string {
	return p.prefix + path.Clean(filepath.ToSlash(file))
}

func contentType(file string) string {
	switch strings.ToLower(filepath.Ext(file)) {
	case ".html":
		return "text/html; charset=utf-8"
	case ".json":
		return "application/json"
	default:
		return "application/octet-stream"
	}
}

func hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
