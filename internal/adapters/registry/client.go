// Package registry maps bare library names to git URLs via the hosted
// package index, with an on-disk cache and a built-in fallback table.
package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"

	"github.com/caxe-dev/cx/internal/core/domain"
	"github.com/caxe-dev/cx/internal/core/ports"
)

// DefaultIndexURL is the hosted registry index.
const DefaultIndexURL = "https://raw.githubusercontent.com/caxe-dev/registry/main/index.json"

// cacheTTL bounds how long a fetched index is reused before refetching.
const cacheTTL = 24 * time.Hour

// builtin covers the most common libraries so name resolution works offline
// and before the first successful index fetch.
var builtin = []domain.RegistryEntry{
	{Name: "raylib", URL: "https://github.com/raysan5/raylib.git", Description: "Simple and easy-to-use game programming library"},
	{Name: "json", URL: "https://github.com/nlohmann/json.git", Description: "JSON for Modern C++"},
	{Name: "fmt", URL: "https://github.com/fmtlib/fmt.git", Description: "A modern formatting library"},
}

// Client implements ports.Registry.
type Client struct {
	indexURL string
	cacheDir string
	http     *http.Client
	log      ports.Logger
}

// NewClient creates a registry client caching under cacheDir.
func NewClient(indexURL, cacheDir string, log ports.Logger) *Client {
	return &Client{
		indexURL: indexURL,
		cacheDir: cacheDir,
		http:     &http.Client{Timeout: 10 * time.Second},
		log:      log,
	}
}

// Resolve maps name to its git URL.
func (c *Client) Resolve(ctx context.Context, name string) (string, bool) {
	for _, e := range c.index(ctx) {
		if e.Name == name {
			return e.URL, true
		}
	}
	return "", false
}

// Search returns entries whose name or description contains query,
// case-insensitively.
func (c *Client) Search(ctx context.Context, query string) []domain.RegistryEntry {
	query = strings.ToLower(query)
	var hits []domain.RegistryEntry
	for _, e := range c.index(ctx) {
		if strings.Contains(strings.ToLower(e.Name), query) ||
			strings.Contains(strings.ToLower(e.Description), query) {
			hits = append(hits, e)
		}
	}
	return hits
}

// index returns the freshest index available: a cached copy within TTL, a
// newly fetched one, a stale cached copy, or the built-in table, in that
// order.
func (c *Client) index(ctx context.Context) []domain.RegistryEntry {
	path := c.cachePath()

	if entries, ok := c.readCache(path, cacheTTL); ok {
		return entries
	}

	entries, err := c.fetch(ctx)
	if err == nil {
		c.writeCache(path, entries)
		return entries
	}
	c.log.Warn("registry fetch failed: " + err.Error())

	// Any cached copy, however old, beats the built-in table.
	if entries, ok := c.readCache(path, 0); ok {
		return entries
	}
	return builtin
}

func (c *Client) fetch(ctx context.Context) ([]domain.RegistryEntry, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.indexURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	var entries []domain.RegistryEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// cachePath keys the cache file on the index URL, so switching registries
// never serves entries from the wrong one.
func (c *Client) cachePath() string {
	key := xxhash.Sum64String(c.indexURL)
	return filepath.Join(c.cacheDir, fmt.Sprintf("registry-%016x.json", key))
}

// readCache loads the cached index. A maxAge of zero disables the freshness
// check.
func (c *Client) readCache(path string, maxAge time.Duration) ([]domain.RegistryEntry, bool) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, false
	}
	if maxAge > 0 && time.Since(info.ModTime()) > maxAge {
		return nil, false
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}
	var entries []domain.RegistryEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, false
	}
	return entries, true
}

func (c *Client) writeCache(path string, entries []domain.RegistryEntry) {
	data, err := json.Marshal(entries)
	if err != nil {
		return
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		c.log.Warn("registry cache write failed: " + err.Error())
	}
}
