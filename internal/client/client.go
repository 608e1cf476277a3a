package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mkarren/lanes/internal/model"
	"github.com/mkarren/lanes/internal/service"
)

var (
	ErrNoServer   = errors.New("server URL not configured")
	ErrRequest    = errors.New("server request failed")
	ErrBadPayload = errors.New("invalid server response")
	ErrNotFound   = errors.New("item not found")
)

// Client talks to a Jellyfin-compatible media server. It implements
// service.ItemService, service.ImageURLBuilder, and
// service.ImageLoader.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewClient creates a server client. Returns an error when the base
// URL is empty.
func NewClient(baseURL, token string) (*Client, error) {
	if baseURL == "" {
		return nil, ErrNoServer
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}, nil
}

// FetchPage runs one item query page against the server.
func (c *Client) FetchPage(ctx context.Context, q service.Query, offset, limit int) (model.ItemPage, error) {
	params := url.Values{}
	params.Set("StartIndex", strconv.Itoa(offset))
	params.Set("Limit", strconv.Itoa(limit))
	params.Set("Recursive", "true")
	params.Set("Fields", "PrimaryImageAspectRatio,Overview")
	if q.ParentID != uuid.Nil {
		params.Set("ParentId", q.ParentID.String())
	}
	if len(q.Kinds) > 0 {
		names := make([]string, len(q.Kinds))
		for i, k := range q.Kinds {
			names[i] = k.String()
		}
		params.Set("IncludeItemTypes", strings.Join(names, ","))
	}
	if len(q.Filters) > 0 {
		params.Set("Filters", strings.Join(q.Filters, ","))
	}
	if q.SortBy != "" {
		params.Set("SortBy", q.SortBy)
	}
	if q.SortOrder != "" {
		params.Set("SortOrder", q.SortOrder)
	}
	if q.SearchTerm != "" {
		params.Set("SearchTerm", q.SearchTerm)
	}

	var resp itemsResponse
	if err := c.getJSON(ctx, "/Items?"+params.Encode(), &resp); err != nil {
		return model.ItemPage{}, err
	}

	page := model.ItemPage{
		Items:      make([]model.Item, len(resp.Items)),
		TotalCount: resp.TotalRecordCount,
		Offset:     offset,
	}
	for i, dto := range resp.Items {
		page.Items[i] = dto.toModel()
	}
	return page, nil
}

// RandomItem fetches one random item of the given kind under a parent.
func (c *Client) RandomItem(ctx context.Context, parentID uuid.UUID, kind model.ItemKind) (model.Item, error) {
	q := service.Query{
		ParentID:  parentID,
		Kinds:     []model.ItemKind{kind},
		SortBy:    "Random",
		SortOrder: "Ascending",
	}
	page, err := c.FetchPage(ctx, q, 0, 1)
	if err != nil {
		return model.Item{}, err
	}
	if len(page.Items) == 0 {
		return model.Item{}, ErrNotFound
	}
	return page.Items[0], nil
}

// ImageURL builds the URL for one image of an item, sized to fill the
// given box.
func (c *Client) ImageURL(itemID uuid.UUID, kind model.ImageKind, tag string, width, height int) string {
	params := url.Values{}
	if tag != "" {
		params.Set("tag", tag)
	}
	if width > 0 {
		params.Set("fillWidth", strconv.Itoa(width))
	}
	if height > 0 {
		params.Set("fillHeight", strconv.Itoa(height))
	}
	return fmt.Sprintf("%s/Items/%s/Images/%s?%s", c.baseURL, itemID, imageKindName(kind), params.Encode())
}

// FallbackImageURL builds the URL for the server-generated placeholder
// of an item without any tagged image.
func (c *Client) FallbackImageURL(itemID uuid.UUID, width, height int) string {
	return c.ImageURL(itemID, model.ImagePrimary, "", width, height)
}

// LoadImage fetches raw image bytes from a previously built URL.
func (c *Client) LoadImage(ctx context.Context, imageURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	c.authorize(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRequest, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrRequest, resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}

// StreamURL builds the direct playback URL for an item.
func (c *Client) StreamURL(itemID uuid.UUID) string {
	params := url.Values{}
	params.Set("static", "true")
	if c.token != "" {
		params.Set("api_key", c.token)
	}
	return fmt.Sprintf("%s/Videos/%s/stream?%s", c.baseURL, itemID, params.Encode())
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	c.authorize(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRequest, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: status %d: %s", ErrRequest, resp.StatusCode, string(body))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: %v", ErrBadPayload, err)
	}
	return nil
}

func (c *Client) authorize(req *http.Request) {
	if c.token != "" {
		req.Header.Set("X-Emby-Token", c.token)
	}
	req.Header.Set("Accept", "application/json")
}
