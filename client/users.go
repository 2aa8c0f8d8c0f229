package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"nakala/record"
)

// SearchUsers looks up accounts by name or username
// (GET /users/search). The returned ids are what rights grants expect.
func (c *Client) SearchUsers(ctx context.Context, query string, limit int) ([]record.User, error) {
	if limit <= 0 {
		limit = 10
	}
	path := "/users/search?q=" + url.QueryEscape(query) + "&limit=" + strconv.Itoa(limit)
	var users []record.User
	if err := c.do(ctx, http.MethodGet, path, nil, &users); err != nil {
		return nil, fmt.Errorf("searching users for %q: %w", query, err)
	}
	return users, nil
}
