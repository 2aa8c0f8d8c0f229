package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"nakala/record"
)

// CreateGroup creates a user group (POST /groups) and returns its
// identifier. NAKALA requires at least one member besides the creating
// account, which it adds as ROLE_OWNER itself.
func (c *Client) CreateGroup(ctx context.Context, group *record.Group) (string, error) {
	if len(group.Users) == 0 {
		return "", fmt.Errorf("group %q needs at least one member", group.Name)
	}
	for _, u := range group.Users {
		if !record.ValidGroupRole(u.Role) {
			return "", fmt.Errorf("invalid group role %q for user %s", u.Role, u.Username)
		}
	}
	var resp createResponse
	if err := c.do(ctx, http.MethodPost, "/groups", group, &resp); err != nil {
		return "", fmt.Errorf("creating group: %w", err)
	}
	return resp.Payload.ID, nil
}

// GetGroup fetches a group with its members (GET /groups/{id}).
func (c *Client) GetGroup(ctx context.Context, id string) (*record.Group, error) {
	var group record.Group
	if err := c.do(ctx, http.MethodGet, "/groups/"+url.PathEscape(id), nil, &group); err != nil {
		return nil, fmt.Errorf("getting group %s: %w", id, err)
	}
	return &group, nil
}

// DeleteGroup deletes a group (DELETE /groups/{id}). Rights already
// granted through the group are revoked.
func (c *Client) DeleteGroup(ctx context.Context, id string) error {
	if err := c.do(ctx, http.MethodDelete, "/groups/"+url.PathEscape(id), nil, nil); err != nil {
		return fmt.Errorf("deleting group %s: %w", id, err)
	}
	return nil
}

// SearchGroups looks up groups by name (GET /groups/search).
func (c *Client) SearchGroups(ctx context.Context, query string, limit int) ([]record.Group, error) {
	if limit <= 0 {
		limit = 10
	}
	path := "/groups/search?q=" + url.QueryEscape(query) + "&limit=" + strconv.Itoa(limit)
	var groups []record.Group
	if err := c.do(ctx, http.MethodGet, path, nil, &groups); err != nil {
		return nil, fmt.Errorf("searching groups for %q: %w", query, err)
	}
	return groups, nil
}
