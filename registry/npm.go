// Package registry looks up package versions from an npm registry.
package registry

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/mod/semver"
)

type (
	Client struct {
		HTTP    *http.Client
		BaseURL string
	}

	Release struct {
		Name    string
		Version string
	}
)

const DefaultURL = "https://registry.npmjs.org"

func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultURL
	}

	return &Client{HTTP: http.DefaultClient, BaseURL: strings.TrimSuffix(baseURL, "/")}
}

// Latest returns the version the "latest" dist-tag of name points at.
func (c *Client) Latest(ctx context.Context, name string) (version string, err error) {
	endpoint := fmt.Sprintf("%s/%s", c.BaseURL, url.PathEscape(name))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("failed to prepare GET request to endpoint %s: %w", endpoint, err)
	}

	// The abbreviated document is much smaller and still carries dist-tags.
	req.Header.Set("Accept", "application/vnd.npm.install-v1+json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to GET from endpoint %q: %w", endpoint, err)
	}

	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if rc := resp.StatusCode; rc != http.StatusOK {
		return "", fmt.Errorf("failed to GET from endpoint %q, status code %d", endpoint, rc)
	}

	v, err := Pluck(ctx, resp.Body, "dist-tags", "latest")
	if err != nil {
		return "", fmt.Errorf("failed to find the latest version of %s: %w", name, err)
	}

	version, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("the latest dist-tag of %s is not a string", name)
	}

	return version, nil
}

// LatestAll looks names up one after another. Lookups that fail are left out of releases and reported in err.
func (c *Client) LatestAll(ctx context.Context, names []string) (releases []Release, err error) {
	var errs []error

	for _, name := range names {
		version, err1 := c.Latest(ctx, name)
		if err1 != nil {
			errs = append(errs, err1)

			continue
		}

		releases = append(releases, Release{Name: name, Version: version})
	}

	return releases, errors.Join(errs...)
}

// AtLeastMajor reports whether version, with or without a leading "v", has a major number of at least major.
// Versions that are not valid semantic versions report false.
func AtLeastMajor(version string, major int) bool {
	if !strings.HasPrefix(version, "v") {
		version = "v" + version
	}

	if !semver.IsValid(version) {
		return false
	}

	return semver.Compare(semver.Major(version), fmt.Sprintf("v%d", major)) >= 0
}
