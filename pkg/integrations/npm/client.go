package npm

import (
	"context"
	"strings"
	"time"

	"github.com/DimShadoWWW/npm2ebuild/pkg/errors"
	"github.com/DimShadoWWW/npm2ebuild/pkg/integrations"
)

// DefaultRegistry is the public npm registry.
const DefaultRegistry = "https://registry.npmjs.org"

// Client fetches package documents from an npm-compatible registry.
type Client struct {
	*integrations.Client
	baseURL string
}

// NewClient creates a client for the registry at baseURL ([DefaultRegistry]
// when empty). A timeout of 0 leaves requests bounded only by their context.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultRegistry
	}
	return &Client{
		Client:  integrations.NewClient(timeout, map[string]string{"Accept": "application/json"}),
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// BaseURL returns the registry base URL.
func (c *Client) BaseURL() string { return c.baseURL }

// Fetch retrieves the full document for pkg. Any failure is reported as
// METADATA_FETCH_FAILED wrapping the underlying cause (PACKAGE_NOT_FOUND,
// NETWORK_ERROR or INVALID_FORMAT). Context cancellation is returned as is.
func (c *Client) Fetch(ctx context.Context, pkg string) (*Document, error) {
	pkg = strings.TrimSpace(pkg)
	if err := errors.ValidateNpmPackageName(pkg); err != nil {
		return nil, errors.Wrap(errors.ErrCodeMetadataFetch, err, "fetch %s", pkg)
	}

	var doc Document
	if err := c.Get(ctx, integrations.Join(c.baseURL, pkg), &doc); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if errors.Is(err, errors.ErrCodePackageNotFound) {
			err = errors.Wrap(errors.ErrCodePackageNotFound, err, "npm package %s", pkg)
		}
		return nil, errors.Wrap(errors.ErrCodeMetadataFetch, err, "fetch %s", pkg)
	}

	if doc.Name == "" {
		doc.Name = pkg
	}
	return &doc, nil
}
