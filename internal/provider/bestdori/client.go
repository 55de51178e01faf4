package bestdori

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/chu3/chu3-discord-bot-go/pkg/errors"
	"go.uber.org/zap"
)

// ErrNotExist is returned when the API answers 404 for a resource. The
// provider maps it to a typed NotFoundError for info endpoints and to an
// absent image for asset endpoints.
var ErrNotExist = stderrors.New("bestdori resource does not exist")

// Client is a thin wrapper over the wiki API. Calls are per-invocation
// scoped: no retry, no background work, deadline handling belongs to the
// shared transport.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *zap.Logger
}

func NewClient(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		logger:     logger,
	}
}

// GetJSON fetches path and decodes the body into out.
func (c *Client) GetJSON(ctx context.Context, path string, out any) error {
	body, err := c.get(ctx, path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return errors.NewUpstreamError("failed to decode bestdori response", "bestdori", 0, err)
	}
	return nil
}

// GetImage fetches a binary asset from path.
func (c *Client) GetImage(ctx context.Context, path string) ([]byte, error) {
	return c.get(ctx, path)
}

func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	reqURL := c.baseURL + path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.NewUpstreamError("bestdori request failed", "bestdori", 0, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNotExist
	}
	if resp.StatusCode >= 400 {
		c.logger.Warn("Bestdori request failed",
			zap.String("url", reqURL),
			zap.Int("status", resp.StatusCode),
		)
		return nil, errors.NewUpstreamError(
			fmt.Sprintf("bestdori returned status %d", resp.StatusCode),
			"bestdori", resp.StatusCode, nil,
		)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.NewUpstreamError("failed to read bestdori response", "bestdori", 0, err)
	}
	return body, nil
}
