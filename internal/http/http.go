// Package http wraps the outbound HTTP client used for fetching
// remote resources, retrying transient failures.
package http

import (
	"fmt"
	"io"
	"net/http"

	"github.com/hashicorp/go-retryablehttp"
)

type HTTPDoer interface {
	Do(*retryablehttp.Request) (*http.Response, error)
}

// HTTP is the application's outbound client.
type HTTP struct {
	*retryablehttp.Client
}

var _ HTTPDoer = (*HTTP)(nil)

// DefaultConfig returns the client configuration used in production.
// main swaps in the application logger before wrapping it with New.
func DefaultConfig() *retryablehttp.Client {
	return retryablehttp.NewClient()
}

func New(client *retryablehttp.Client) *HTTP {
	return &HTTP{Client: client}
}

// ExpectStatus2xx drains and closes the body on a non-2xx response so
// the returned error carries the server's message.
func ExpectStatus2xx(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	return fmt.Errorf("status %d: %s", resp.StatusCode, body)
}
