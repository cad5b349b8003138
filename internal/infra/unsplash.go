package infra

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"voyago/internal/config"
)

const (
	// PlaceholderImage is served when Unsplash returns no hit.
	PlaceholderImage = "https://via.placeholder.com/1200x600?text=Destination+Image+Unavailable"
	// PlaceholderImageError is served when the Unsplash call itself fails.
	PlaceholderImageError = "https://via.placeholder.com/1200x600?text=Image+Unavailable"

	unsplashSearchURL = "https://api.unsplash.com/search/photos"
)

// ImageSearcher returns one landscape photo URL for a free-text query, or a
// placeholder. Implementations never return an error to callers; image
// retrieval is strictly best-effort.
type ImageSearcher interface {
	Search(ctx context.Context, query string) string
}

// UnsplashClient is a thin search/photos wrapper with an in-memory result
// cache keyed by the lowercased query.
type UnsplashClient struct {
	accessKey string
	searchURL string
	http      *http.Client

	mu    sync.Mutex
	cache map[string]string
}

func NewUnsplashClient(cfg *config.Config) *UnsplashClient {
	return &UnsplashClient{
		accessKey: cfg.UnsplashAccessKey,
		searchURL: unsplashSearchURL,
		http:      &http.Client{Timeout: cfg.ImageTimeout},
		cache:     make(map[string]string),
	}
}

func (u *UnsplashClient) Search(ctx context.Context, query string) string {
	key := strings.ToLower(strings.TrimSpace(query))

	u.mu.Lock()
	if v, ok := u.cache[key]; ok {
		u.mu.Unlock()
		return v
	}
	u.mu.Unlock()

	imageURL, err := u.fetch(ctx, query)
	if err != nil {
		return PlaceholderImageError
	}
	if imageURL == "" {
		return PlaceholderImage
	}

	u.mu.Lock()
	u.cache[key] = imageURL
	u.mu.Unlock()

	return imageURL
}

func (u *UnsplashClient) fetch(ctx context.Context, query string) (string, error) {
	api := fmt.Sprintf("%s?query=%s&per_page=1&orientation=landscape",
		u.searchURL, url.QueryEscape(query))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, api, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Client-ID "+u.accessKey)

	resp, err := u.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	var result struct {
		Results []struct {
			Urls map[string]string `json:"urls"`
		} `json:"results"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return "", err
	}

	if len(result.Results) == 0 {
		return "", nil
	}
	imageURL := result.Results[0].Urls["regular"]
	if imageURL == "" {
		imageURL = result.Results[0].Urls["small"]
	}
	return imageURL, nil
}
