package media

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func newTestCache(t *testing.T, server *httptest.Server) *Cache {
	t.Helper()
	cache, err := NewCache(Options{Dir: t.TempDir(), Client: server.Client()})
	if err != nil {
		t.Fatalf("NewCache: %v", err)
	}
	return cache
}

func TestCacheReusesFreshFile(t *testing.T) {
	var hits int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.Header().Set("Etag", `"v1"`)
		w.Header().Set("Content-Type", "image/jpeg")
		_, _ = w.Write([]byte("\xff\xd8\xff\xe0jpeg"))
	}))
	t.Cleanup(server.Close)

	cache := newTestCache(t, server)
	ctx := context.Background()

	asset, err := cache.Fetch(ctx, server.URL+"/photo-1.jpg")
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if _, err := os.Stat(asset.Path); err != nil {
		t.Fatalf("cached file missing: %v", err)
	}
	if asset.ContentType != "image/jpeg" {
		t.Fatalf("content type = %q", asset.ContentType)
	}
	if asset.Size != 8 {
		t.Fatalf("size = %d", asset.Size)
	}

	again, err := cache.Fetch(ctx, server.URL+"/photo-1.jpg")
	if err != nil {
		t.Fatalf("second fetch: %v", err)
	}
	if again.Path != asset.Path {
		t.Fatalf("paths differ: %s vs %s", asset.Path, again.Path)
	}
	if again.ContentType != "image/jpeg" {
		t.Fatalf("content type lost on cache hit: %q", again.ContentType)
	}
	if got := atomic.LoadInt32(&hits); got != 1 {
		t.Fatalf("cache hit triggered download, total hits %d", got)
	}
}

func TestCacheRevalidatesStaleFile(t *testing.T) {
	var conditional int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("If-None-Match") == `"v2"` {
			atomic.AddInt32(&conditional, 1)
			w.WriteHeader(http.StatusNotModified)
			return
		}
		w.Header().Set("Etag", `"v2"`)
		w.Header()["Content-Type"] = nil
		_, _ = w.Write([]byte("png-bytes"))
	}))
	t.Cleanup(server.Close)

	cache := newTestCache(t, server)
	ctx := context.Background()

	asset, err := cache.Fetch(ctx, server.URL+"/a.png")
	if err != nil {
		t.Fatalf("initial fetch: %v", err)
	}
	if asset.ContentType != "image/png" {
		t.Fatalf("content type from extension = %q", asset.ContentType)
	}

	stale := time.Now().Add(-48 * time.Hour)
	if err := os.Chtimes(asset.Path, stale, stale); err != nil {
		t.Fatalf("chtimes: %v", err)
	}

	refreshed, err := cache.Fetch(ctx, server.URL+"/a.png")
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if got := atomic.LoadInt32(&conditional); got != 1 {
		t.Fatalf("expected one conditional request, got %d", got)
	}
	if refreshed.Size != asset.Size {
		t.Fatalf("size changed on 304: %d vs %d", refreshed.Size, asset.Size)
	}
	info, err := os.Stat(refreshed.Path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if time.Since(info.ModTime()) > time.Hour {
		t.Fatalf("304 did not refresh modtime")
	}
}

func TestCacheServesStaleOnFailure(t *testing.T) {
	var fail atomic.Bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if fail.Load() {
			http.Error(w, "down", http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte("gif"))
	}))
	t.Cleanup(server.Close)

	cache := newTestCache(t, server)
	ctx := context.Background()
	asset, err := cache.Fetch(ctx, server.URL+"/x.gif")
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	stale := time.Now().Add(-48 * time.Hour)
	if err := os.Chtimes(asset.Path, stale, stale); err != nil {
		t.Fatalf("chtimes: %v", err)
	}

	fail.Store(true)
	again, err := cache.Fetch(ctx, server.URL+"/x.gif")
	if err != nil {
		t.Fatalf("expected stale copy, got %v", err)
	}
	if again.Path != asset.Path {
		t.Fatalf("unexpected path %s", again.Path)
	}
}

func TestCacheReportsHTTPFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	t.Cleanup(server.Close)

	cache := newTestCache(t, server)
	if _, err := cache.Fetch(context.Background(), server.URL+"/missing.jpg"); err == nil {
		t.Fatalf("expected error for 404")
	}
}

func TestCacheSharesConcurrentFetches(t *testing.T) {
	release := make(chan struct{})
	var hits int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		<-release
		_, _ = w.Write([]byte("img"))
	}))
	t.Cleanup(server.Close)

	cache := newTestCache(t, server)
	var wg sync.WaitGroup
	errs := make(chan error, 4)
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := cache.Fetch(context.Background(), server.URL+"/same.jpg")
			errs <- err
		}()
	}
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()
	close(errs)
	for err := range errs {
		if err != nil {
			t.Fatalf("fetch: %v", err)
		}
	}
	if got := atomic.LoadInt32(&hits); got < 1 || got > 4 {
		t.Fatalf("unexpected hit count %d", got)
	}
}

func TestCacheHonoursEnvDir(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(CacheEnvVar, dir)
	cache, err := NewCache(Options{})
	if err != nil {
		t.Fatalf("NewCache: %v", err)
	}
	if cache.Dir() != dir {
		t.Fatalf("dir = %s, want %s", cache.Dir(), dir)
	}
}

func TestTileTransitions(t *testing.T) {
	tiles := NewTiles([]string{"a", "b", "c"})
	for i, tile := range tiles {
		if tile.State != TileLoading {
			t.Fatalf("tile %d starts %s", i, tile.State)
		}
	}

	tiles[2].Failed(errors.New("timeout"))
	if tiles[2].State != TileLoading || tiles[2].Err == nil {
		t.Fatalf("failed tile should keep placeholder with error")
	}
	if !tiles[1].Loaded(Asset{URL: "b"}) {
		t.Fatalf("first load should change state")
	}
	if tiles[1].Loaded(Asset{URL: "other"}) {
		t.Fatalf("second load should be ignored")
	}
	if tiles[1].Asset.URL != "b" {
		t.Fatalf("asset overwritten: %+v", tiles[1].Asset)
	}
	tiles[1].Failed(errors.New("late"))
	if tiles[1].Err != nil {
		t.Fatalf("loaded tile must ignore failures")
	}
	if tiles[0].State != TileLoading {
		t.Fatalf("sibling tile changed state")
	}
}
