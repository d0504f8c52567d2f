package manifest

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/ankek/terraform-provider-pictograph/internal/validation"
)

// maxRemoteSize caps how much of a remote manifest is read.
const maxRemoteSize = 1 << 20

// Load reads a manifest from a local path or an http(s) URL.
func Load(ctx context.Context, source string) (*Manifest, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	if isRemote(source) {
		data, err := fetchRemote(ctx, source, nil)
		if err != nil {
			return nil, err
		}
		return Parse(data, source)
	}

	if err := validation.ValidateInputPath(source, false); err != nil {
		return nil, fmt.Errorf("invalid manifest path: %w", err)
	}

	data, err := os.ReadFile(filepath.Clean(source))
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	return Parse(data, source)
}

func isRemote(source string) bool {
	lower := strings.ToLower(source)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

// fetchRemote downloads a manifest, retrying transient failures. client may
// be nil to use the default retrying client.
func fetchRemote(ctx context.Context, url string, client *retryablehttp.Client) ([]byte, error) {
	if client == nil {
		client = retryablehttp.NewClient()
		client.RetryMax = 3
		client.Logger = nil // Disable logging
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create manifest request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch manifest: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("failed to fetch manifest (status %d): %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxRemoteSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest body: %w", err)
	}
	if len(data) > maxRemoteSize {
		return nil, fmt.Errorf("manifest exceeds %d bytes", maxRemoteSize)
	}

	return data, nil
}
