// Package wikipedia provides a MediaWiki Action API implementation of the
// RevisionSource port.
package wikipedia

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/groverneev/editwars/internal/domain/entities"
	"github.com/groverneev/editwars/internal/infrastructure/config"
)

const (
	// apiMaxBatch is the API's own per-request revision cap.
	apiMaxBatch = 500
	// recentTalkWindow is how far back a talk-page edit still counts as
	// recent activity.
	recentTalkWindow = 30 * 24 * time.Hour
	// recentTalkSample is how many of the newest talk revisions are checked.
	recentTalkSample = 10
)

// Client talks to a MediaWiki Action API endpoint. It implements
// ports.RevisionSource. The API is rate limited, so callers doing bulk scans
// should pace their requests.
type Client struct {
	httpClient   *http.Client
	apiURL       string
	userAgent    string
	maxRevisions int
}

// NewClient creates a new client for the configured wiki.
func NewClient(cfg config.WikipediaConfig) (*Client, error) {
	language := cfg.Language
	if language == "" {
		language = "en"
	}
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	maxRevisions := cfg.MaxRevisions
	if maxRevisions <= 0 {
		maxRevisions = apiMaxBatch
	}

	return &Client{
		httpClient:   &http.Client{Timeout: timeout},
		apiURL:       fmt.Sprintf("https://%s.wikipedia.org/w/api.php", language),
		userAgent:    cfg.UserAgent,
		maxRevisions: maxRevisions,
	}, nil
}

// API wire types.

type apiRevision struct {
	RevID     int64  `json:"revid"`
	ParentID  *int64 `json:"parentid"`
	User      string `json:"user"`
	Timestamp string `json:"timestamp"`
	Size      *int   `json:"size"`
	Comment   string `json:"comment"`
}

type apiProtection struct {
	Type   string `json:"type"`
	Level  string `json:"level"`
	Expiry string `json:"expiry"`
}

type apiPage struct {
	PageID     int64           `json:"pageid"`
	Title      string          `json:"title"`
	Revisions  []apiRevision   `json:"revisions"`
	Protection []apiProtection `json:"protection"`
}

type apiResponse struct {
	Query struct {
		Pages  map[string]apiPage `json:"pages"`
		Random []struct {
			Title string `json:"title"`
		} `json:"random"`
	} `json:"query"`
	Error *struct {
		Code string `json:"code"`
		Info string `json:"info"`
	} `json:"error"`
}

// get performs one API request and decodes the response.
func (c *Client) get(ctx context.Context, params url.Values) (*apiResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API returned status %d", resp.StatusCode)
	}

	var decoded apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	if decoded.Error != nil {
		return nil, fmt.Errorf("API error %s: %s", decoded.Error.Code, decoded.Error.Info)
	}

	return &decoded, nil
}

// firstPage returns the single page of a titles query, or nil when the page
// does not exist. The API keys missing pages as "-1".
func firstPage(resp *apiResponse) *apiPage {
	for key, page := range resp.Query.Pages {
		if key == "-1" {
			return nil
		}
		p := page
		return &p
	}
	return nil
}

// FetchRevisions returns up to limit revisions of the page, oldest first.
// A page that does not exist yields an empty history.
func (c *Client) FetchRevisions(ctx context.Context, title string, limit int) ([]entities.Revision, error) {
	if limit <= 0 || limit > c.maxRevisions {
		limit = c.maxRevisions
	}
	if limit > apiMaxBatch {
		limit = apiMaxBatch
	}

	params := url.Values{
		"action":  {"query"},
		"format":  {"json"},
		"prop":    {"revisions"},
		"titles":  {title},
		"rvprop":  {"timestamp|user|comment|size|ids"},
		"rvlimit": {strconv.Itoa(limit)},
		"rvdir":   {"newer"},
	}

	resp, err := c.get(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("fetching revisions for %q: %w", title, err)
	}

	page := firstPage(resp)
	if page == nil {
		return nil, nil
	}

	revisions := make([]entities.Revision, 0, len(page.Revisions))
	for _, raw := range page.Revisions {
		revision, err := convertRevision(raw)
		if err != nil {
			return nil, fmt.Errorf("page %q: %w", title, err)
		}
		revisions = append(revisions, revision)
	}

	return revisions, nil
}

// convertRevision maps an API revision onto the domain type.
func convertRevision(raw apiRevision) (entities.Revision, error) {
	timestamp, err := time.Parse(time.RFC3339, raw.Timestamp)
	if err != nil {
		return entities.Revision{}, fmt.Errorf("parsing timestamp %q: %w", raw.Timestamp, err)
	}

	editor := raw.User
	if editor == "" {
		editor = entities.AnonymousEditor
	}

	return entities.Revision{
		Timestamp: timestamp,
		Editor:    editor,
		Comment:   raw.Comment,
		Size:      raw.Size,
		RevID:     raw.RevID,
		ParentID:  raw.ParentID,
	}, nil
}

// FetchProtection returns the protection status of the page.
func (c *Client) FetchProtection(ctx context.Context, title string) (*entities.ProtectionStatus, error) {
	params := url.Values{
		"action": {"query"},
		"format": {"json"},
		"prop":   {"info"},
		"titles": {title},
		"inprop": {"protection"},
	}

	resp, err := c.get(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("fetching protection for %q: %w", title, err)
	}

	page := firstPage(resp)
	if page == nil {
		return &entities.ProtectionStatus{}, nil
	}

	status := &entities.ProtectionStatus{
		Protected: len(page.Protection) > 0,
		PageID:    page.PageID,
	}
	for _, p := range page.Protection {
		status.Levels = append(status.Levels, entities.ProtectionLevel{
			Type:   p.Type,
			Level:  p.Level,
			Expiry: p.Expiry,
		})
	}

	return status, nil
}

// FetchTalkActivity summarizes recent activity on the page's talk page. The
// level is derived from how many of the newest revisions fall inside the last
// 30 days.
func (c *Client) FetchTalkActivity(ctx context.Context, title string) (*entities.TalkActivity, error) {
	talkTitle := "Talk:" + title

	revisions, err := c.FetchRevisions(ctx, talkTitle, apiMaxBatch)
	if err != nil {
		return nil, fmt.Errorf("fetching talk page: %w", err)
	}
	if len(revisions) == 0 {
		return &entities.TalkActivity{ActivityLevel: entities.TalkActivityNone}, nil
	}

	sample := revisions
	if len(sample) > recentTalkSample {
		sample = sample[len(sample)-recentTalkSample:]
	}

	recent := 0
	cutoff := time.Now().Add(-recentTalkWindow)
	for i := range sample {
		if sample[i].Timestamp.After(cutoff) {
			recent++
		}
	}

	activity := &entities.TalkActivity{
		HasTalkPage:    true,
		TotalRevisions: len(revisions),
		RecentEdits:    recent,
		ActivityLevel:  talkActivityLevel(recent),
	}
	last := revisions[len(revisions)-1].Timestamp
	activity.LastEdit = &last

	return activity, nil
}

func talkActivityLevel(recent int) string {
	switch {
	case recent >= 5:
		return entities.TalkActivityHigh
	case recent >= 2:
		return entities.TalkActivityMedium
	default:
		return entities.TalkActivityLow
	}
}

// RandomPages returns up to count random article titles (namespace 0,
// redirects excluded).
func (c *Client) RandomPages(ctx context.Context, count int) ([]string, error) {
	if count <= 0 {
		count = 10
	}
	if count > apiMaxBatch {
		count = apiMaxBatch
	}

	params := url.Values{
		"action":        {"query"},
		"format":        {"json"},
		"list":          {"random"},
		"rnnamespace":   {"0"},
		"rnlimit":       {strconv.Itoa(count)},
		"rnfilterredir": {"nonredirects"},
	}

	resp, err := c.get(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("fetching random pages: %w", err)
	}

	titles := make([]string, 0, len(resp.Query.Random))
	for _, page := range resp.Query.Random {
		titles = append(titles, page.Title)
	}

	return titles, nil
}
