package provider

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"
)

// NewsClient fetches top headlines from the news provider.
type NewsClient struct {
	base    baseClient
	baseURL string
	apiKey  string
}

// NewNewsClient creates a news provider client.
func NewNewsClient(baseURL, apiKey string, timeout time.Duration, logger *zap.Logger) *NewsClient {
	return &NewsClient{
		base: baseClient{
			http:   &http.Client{Timeout: timeout},
			logger: logger,
			name:   "news",
		},
		baseURL: baseURL,
		apiKey:  apiKey,
	}
}

// headlinesResponse mirrors the provider wire format.
type headlinesResponse struct {
	Articles []struct {
		Source struct {
			Name string `json:"name"`
		} `json:"source"`
		Author      *string   `json:"author"`
		Title       string    `json:"title"`
		Description *string   `json:"description"`
		URL         *string   `json:"url"`
		PublishedAt time.Time `json:"publishedAt"`
	} `json:"articles"`
}

// TopHeadlines returns current headlines for a country, or nil when the
// provider has none. Absent optional fields decode to empty strings.
func (c *NewsClient) TopHeadlines(ctx context.Context, alpha2code string) []NewsItemDTO {
	q := url.Values{}
	q.Set("country", alpha2code)
	q.Set("category", "general")
	q.Set("apiKey", c.apiKey)

	var resp headlinesResponse
	endpoint := c.baseURL + "/top-headlines?" + q.Encode()
	if !c.base.getJSON(ctx, endpoint, nil, &resp) {
		return nil
	}
	if len(resp.Articles) == 0 {
		return nil
	}

	items := make([]NewsItemDTO, 0, len(resp.Articles))
	for _, a := range resp.Articles {
		items = append(items, NewsItemDTO{
			Source:      a.Source.Name,
			Author:      deref(a.Author),
			Title:       a.Title,
			Description: deref(a.Description),
			URL:         deref(a.URL),
			PublishedAt: a.PublishedAt,
		})
	}
	return items
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
