package sekai

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/chu3/chu3-discord-bot-go/internal/domain"
	"github.com/chu3/chu3-discord-bot-go/pkg/errors"
	"go.uber.org/zap"
)

// repoByLanguage maps a language to its master-data repository segment. The
// English repository is the default for unmapped codes.
var repoByLanguage = map[domain.LanguageCode]string{
	domain.LangJapanese:           "sekai-master-db-diff",
	domain.LangEnglish:            "sekai-master-db-en-diff",
	domain.LangChineseSimplified:  "sekai-master-db-cn-diff",
	domain.LangChineseTraditional: "sekai-master-db-tc-diff",
	domain.LangKorean:             "sekai-master-db-kr-diff",
}

const defaultRepo = "sekai-master-db-en-diff"

// Client fetches whole-collection JSON documents from the raw-file mirror and
// binary assets from the static asset store.
type Client struct {
	httpClient    *http.Client
	mirrorBaseURL string
	assetBaseURL  string
	logger        *zap.Logger
}

func NewClient(mirrorBaseURL, assetBaseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	return &Client{
		httpClient:    &http.Client{Timeout: timeout},
		mirrorBaseURL: mirrorBaseURL,
		assetBaseURL:  assetBaseURL,
		logger:        logger,
	}
}

// GetCollection fetches one collection file from the per-language repository
// and decodes it into out. Any failure is an upstream error; collections are
// required for every mirror lookup.
func (c *Client) GetCollection(ctx context.Context, lang domain.LanguageCode, file string, out any) error {
	repo, ok := repoByLanguage[lang]
	if !ok {
		repo = defaultRepo
	}
	reqURL := fmt.Sprintf("%s/%s/main/%s", c.mirrorBaseURL, repo, file)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.NewUpstreamError("mirror request failed", "sekai-mirror", 0, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("Mirror collection fetch failed",
			zap.String("url", reqURL),
			zap.Int("status", resp.StatusCode),
		)
		return errors.NewUpstreamError(
			fmt.Sprintf("mirror returned status %d for %s", resp.StatusCode, file),
			"sekai-mirror", resp.StatusCode, nil,
		)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.NewUpstreamError("failed to read mirror response", "sekai-mirror", 0, err)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return errors.NewUpstreamError(fmt.Sprintf("failed to decode %s", file), "sekai-mirror", 0, err)
	}
	return nil
}

// GetAsset fetches a binary asset addressed below the static asset store.
// A nil error with nil data never occurs; failures are reported to the caller
// who decides whether the asset is optional.
func (c *Client) GetAsset(ctx context.Context, path string) ([]byte, error) {
	reqURL := c.assetBaseURL + path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.NewUpstreamError("asset request failed", "sekai-assets", 0, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.NewUpstreamError(
			fmt.Sprintf("asset store returned status %d", resp.StatusCode),
			"sekai-assets", resp.StatusCode, nil,
		)
	}
	return io.ReadAll(resp.Body)
}
