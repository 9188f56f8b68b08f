package youtube

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/Tomasz2002/AI-project/internal/config"
)

const defaultBaseURL = "https://www.googleapis.com/youtube/v3"

var ErrVideoNotFound = errors.New("video not found")

// MetadataClient resolves video metadata needed by the quiz pipeline.
type MetadataClient interface {
	VideoDurationSeconds(ctx context.Context, videoID string) (int, error)
}

type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

type videoListResponse struct {
	Items []struct {
		ContentDetails struct {
			Duration string `json:"duration"`
		} `json:"contentDetails"`
	} `json:"items"`
}

func (c *Client) VideoDurationSeconds(ctx context.Context, videoID string) (int, error) {
	log := config.WithContext(ctx)

	params := url.Values{}
	params.Set("part", "contentDetails")
	params.Set("id", videoID)
	params.Set("key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/videos?"+params.Encode(), nil)
	if err != nil {
		return 0, fmt.Errorf("failed to build videos request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.WithError(err).Error("YouTube videos request failed")
		return 0, fmt.Errorf("youtube api request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Errorf("YouTube API returned status %d for video %s", resp.StatusCode, videoID)
		return 0, fmt.Errorf("youtube api returned status %d", resp.StatusCode)
	}

	var payload videoListResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return 0, fmt.Errorf("failed to decode youtube response: %w", err)
	}

	if len(payload.Items) == 0 {
		return 0, ErrVideoNotFound
	}

	return ParseISO8601Duration(payload.Items[0].ContentDetails.Duration), nil
}
