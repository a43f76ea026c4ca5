// Package directory is a thin REST client for the telephony directory
// service. It performs one-shot bulk queries only: no retries, no pagination,
// no streaming. Authentication is a pre-issued bearer token supplied by the
// caller.
package directory

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"
)

const (
	usersPath            = "/users"
	roomsPath            = "/places/rooms"
	resourceAccountsPath = "/resourceAccounts"

	defaultTimeout = 60 * time.Second
)

// Client queries the directory service over HTTP.
type Client struct {
	baseURL string
	token   string
	httpc   *http.Client
	log     *zap.Logger
}

// New returns a client for the directory service rooted at baseURL. The token
// is sent as a bearer credential on every request.
func New(baseURL, token string, log *zap.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		httpc:   &http.Client{Timeout: defaultTimeout},
		log:     log,
	}
}

// ListUsers fetches all users that have a phone line assigned. The query
// excludes entries with no line URI server-side.
func (c *Client) ListUsers(ctx context.Context) ([]User, error) {
	var out listResponse[User]
	if err := c.get(ctx, usersPath, "lineUri ne null", &out); err != nil {
		return nil, err
	}
	return out.Value, nil
}

// ListRooms fetches all meeting rooms that have a phone line assigned.
func (c *Client) ListRooms(ctx context.Context) ([]Room, error) {
	var out listResponse[Room]
	if err := c.get(ctx, roomsPath, "lineUri ne null", &out); err != nil {
		return nil, err
	}
	return out.Value, nil
}

// ListResourceAccounts fetches all resource accounts that have a phone number
// assigned.
func (c *Client) ListResourceAccounts(ctx context.Context) ([]ResourceAccount, error) {
	var out listResponse[ResourceAccount]
	if err := c.get(ctx, resourceAccountsPath, "phoneNumber ne null", &out); err != nil {
		return nil, err
	}
	return out.Value, nil
}

func (c *Client) get(ctx context.Context, path, filter string, out any) error {
	u := c.baseURL + path
	if filter != "" {
		u += "?$filter=" + url.QueryEscape(filter)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")

	c.log.Debug("directory query", zap.String("path", path))

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("directory request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("directory returned %d for %s: %s", resp.StatusCode, path, body)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode directory response: %w", err)
	}
	return nil
}
