// Package media fetches response images into a local disk cache so the
// terminal view can flip each tile from its placeholder to a loaded state.
package media

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	CacheEnvVar    = "PLANNIE_CACHE_DIR"
	cacheSubdir    = "plannie/images"
	cacheTTL       = 24 * time.Hour
	partialSuffix  = ".part"
	metaSuffix     = ".meta"
	DefaultTimeout = 15 * time.Second
	maxImageBytes  = 16 << 20
)

// ErrTooLarge is returned when an image body exceeds the cache limit.
var ErrTooLarge = errors.New("image exceeds size limit")

// Options configures a Cache. Zero values pick the defaults.
type Options struct {
	Dir     string
	Timeout time.Duration
	Client  *http.Client
	Logger  *zap.Logger
}

// Cache stores fetched images on disk keyed by URL hash. Concurrent fetches
// of the same URL share one download.
type Cache struct {
	dir    string
	client *http.Client
	log    *zap.Logger
	group  singleflight.Group
}

// Asset describes an image that is available on disk.
type Asset struct {
	URL         string
	Path        string
	ContentType string
	Size        int64
}

type cacheMeta struct {
	URL          string    `json:"url"`
	ETag         string    `json:"etag"`
	LastModified string    `json:"lastModified"`
	ContentType  string    `json:"contentType"`
	CachedAt     time.Time `json:"cachedAt"`
	Size         int64     `json:"size"`
}

// NewCache resolves the cache directory (Options.Dir, then $PLANNIE_CACHE_DIR,
// then the user cache dir) and creates it.
func NewCache(opts Options) (*Cache, error) {
	dir := opts.Dir
	if dir == "" {
		dir = os.Getenv(CacheEnvVar)
	}
	if dir == "" {
		base, err := os.UserCacheDir()
		if err != nil {
			base = filepath.Join(os.TempDir(), "plannie-cache")
		}
		dir = filepath.Join(base, cacheSubdir)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create image cache: %w", err)
	}
	client := opts.Client
	if client == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		client = &http.Client{Timeout: timeout}
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Cache{dir: dir, client: client, log: logger}, nil
}

// Dir is the directory images are written to.
func (c *Cache) Dir() string {
	return c.dir
}

// Fetch returns the cached asset for imageURL, downloading or revalidating it
// when the cached copy is missing or stale. A stale copy is still served when
// revalidation fails.
func (c *Cache) Fetch(ctx context.Context, imageURL string) (Asset, error) {
	v, err, shared := c.group.Do(cacheKey(imageURL), func() (interface{}, error) {
		return c.fetch(ctx, imageURL)
	})
	if shared {
		c.log.Debug("image fetch shared", zap.String("url", imageURL))
	}
	if err != nil {
		return Asset{}, err
	}
	return v.(Asset), nil
}

func (c *Cache) fetch(ctx context.Context, imageURL string) (Asset, error) {
	key := cacheKey(imageURL)
	dataPath, metaPath, partialPath := c.pathsFor(key)

	meta, _ := readMeta(metaPath)
	info, statErr := os.Stat(dataPath)
	if statErr == nil && info.Size() > 0 && time.Since(info.ModTime()) < cacheTTL {
		return assetFrom(imageURL, dataPath, meta, info.Size()), nil
	}
	if statErr != nil {
		info = nil
	}

	asset, err := c.download(ctx, imageURL, dataPath, metaPath, partialPath, meta, info)
	if err == nil {
		c.log.Debug("image cached", zap.String("url", imageURL), zap.Int64("bytes", asset.Size))
		return asset, nil
	}
	if info != nil && info.Size() > 0 {
		c.log.Warn("serving stale image", zap.String("url", imageURL), zap.Error(err))
		return assetFrom(imageURL, dataPath, meta, info.Size()), nil
	}
	return Asset{}, err
}

func (c *Cache) download(ctx context.Context, imageURL, dataPath, metaPath, partialPath string, meta cacheMeta, current os.FileInfo) (Asset, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return Asset{}, fmt.Errorf("build image request: %w", err)
	}
	req.Header.Set("Accept", "image/*")
	if current != nil && current.Size() > 0 {
		if meta.ETag != "" {
			req.Header.Set("If-None-Match", meta.ETag)
		}
		if meta.LastModified != "" {
			req.Header.Set("If-Modified-Since", meta.LastModified)
		}
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return Asset{}, fmt.Errorf("fetch image: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusNotModified:
		if current == nil || current.Size() == 0 {
			return c.download(ctx, imageURL, dataPath, metaPath, partialPath, cacheMeta{}, nil)
		}
		meta.CachedAt = time.Now().UTC()
		now := time.Now()
		_ = os.Chtimes(dataPath, now, now)
		if err := writeMeta(metaPath, meta); err != nil {
			return Asset{}, err
		}
		return assetFrom(imageURL, dataPath, meta, current.Size()), nil
	case http.StatusOK:
		return c.saveBody(imageURL, resp, dataPath, metaPath, partialPath)
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return Asset{}, fmt.Errorf("image download failed: %s (%s)", resp.Status, strings.TrimSpace(string(body)))
	}
}

func (c *Cache) saveBody(imageURL string, resp *http.Response, dataPath, metaPath, partialPath string) (Asset, error) {
	contentType := resp.Header.Get("Content-Type")
	if mediaType, _, err := mime.ParseMediaType(contentType); err == nil {
		contentType = mediaType
	}
	if contentType == "" {
		contentType = mime.TypeByExtension(path.Ext(resp.Request.URL.Path))
	}

	file, err := os.OpenFile(partialPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return Asset{}, err
	}
	n, err := io.Copy(file, io.LimitReader(resp.Body, maxImageBytes+1))
	if err == nil && n > maxImageBytes {
		err = ErrTooLarge
	}
	if err != nil {
		file.Close()
		os.Remove(partialPath)
		return Asset{}, err
	}
	if err := file.Close(); err != nil {
		return Asset{}, err
	}
	if err := os.Rename(partialPath, dataPath); err != nil {
		return Asset{}, err
	}

	meta := cacheMeta{
		URL:          imageURL,
		ETag:         resp.Header.Get("Etag"),
		LastModified: resp.Header.Get("Last-Modified"),
		ContentType:  contentType,
		CachedAt:     time.Now().UTC(),
		Size:         n,
	}
	if err := writeMeta(metaPath, meta); err != nil {
		return Asset{}, err
	}
	return assetFrom(imageURL, dataPath, meta, n), nil
}

func (c *Cache) pathsFor(key string) (string, string, string) {
	return filepath.Join(c.dir, key+".img"), filepath.Join(c.dir, key+metaSuffix), filepath.Join(c.dir, key+partialSuffix)
}

func assetFrom(imageURL, dataPath string, meta cacheMeta, size int64) Asset {
	return Asset{URL: imageURL, Path: dataPath, ContentType: meta.ContentType, Size: size}
}

func cacheKey(imageURL string) string {
	sum := sha1.Sum([]byte(imageURL))
	return hex.EncodeToString(sum[:])
}

func readMeta(metaPath string) (cacheMeta, error) {
	data, err := os.ReadFile(metaPath)
	if err != nil {
		return cacheMeta{}, err
	}
	var meta cacheMeta
	if err := json.Unmarshal(data, &meta); err != nil {
		return cacheMeta{}, err
	}
	return meta, nil
}

func writeMeta(metaPath string, meta cacheMeta) error {
	data, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(metaPath, data, 0o644)
}
