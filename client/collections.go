package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"nakala/record"
)

// CreateCollection creates a collection (POST /collections) and returns
// its identifier.
func (c *Client) CreateCollection(ctx context.Context, coll *record.Collection) (string, error) {
	var resp createResponse
	if err := c.do(ctx, http.MethodPost, "/collections", coll, &resp); err != nil {
		return "", fmt.Errorf("creating collection: %w", err)
	}
	return resp.Payload.ID, nil
}

// GetCollection fetches a collection (GET /collections/{id}).
func (c *Client) GetCollection(ctx context.Context, id string) (*record.Collection, error) {
	var coll record.Collection
	if err := c.do(ctx, http.MethodGet, "/collections/"+url.PathEscape(id), nil, &coll); err != nil {
		return nil, fmt.Errorf("getting collection %s: %w", id, err)
	}
	coll.Metas = record.DecodeMetas(coll.Metas)
	return &coll, nil
}

// UpdateCollection replaces a collection (PUT /collections/{id}),
// replacing ALL metadata like dataset PUT does.
func (c *Client) UpdateCollection(ctx context.Context, id string, coll *record.Collection) error {
	if err := c.do(ctx, http.MethodPut, "/collections/"+url.PathEscape(id), coll, nil); err != nil {
		return fmt.Errorf("updating collection %s: %w", id, err)
	}
	return nil
}

// DeleteCollection deletes a collection (DELETE /collections/{id}).
// Member datasets survive; only the grouping disappears.
func (c *Client) DeleteCollection(ctx context.Context, id string) error {
	if err := c.do(ctx, http.MethodDelete, "/collections/"+url.PathEscape(id), nil, nil); err != nil {
		return fmt.Errorf("deleting collection %s: %w", id, err)
	}
	return nil
}

// AddCollectionMeta adds one metadata entry
// (POST /collections/{id}/metadatas).
func (c *Client) AddCollectionMeta(ctx context.Context, id string, meta record.Meta) error {
	if err := c.do(ctx, http.MethodPost, "/collections/"+url.PathEscape(id)+"/metadatas", meta, nil); err != nil {
		return fmt.Errorf("adding metadata to collection %s: %w", id, err)
	}
	return nil
}

// DeleteCollectionMetas removes every metadata entry matching the filter
// (DELETE /collections/{id}/metadatas).
func (c *Client) DeleteCollectionMetas(ctx context.Context, id string, filter record.MetaFilter) error {
	if err := c.do(ctx, http.MethodDelete, "/collections/"+url.PathEscape(id)+"/metadatas", filter, nil); err != nil {
		return fmt.Errorf("deleting metadata from collection %s: %w", id, err)
	}
	return nil
}

// SetCollectionStatus moves a collection between private and public
// (PUT /collections/{id}/status/{status}). Public collections may only
// contain published datasets; NAKALA answers 422 otherwise.
func (c *Client) SetCollectionStatus(ctx context.Context, id, status string) error {
	if !record.ValidCollectionStatus(status) {
		return fmt.Errorf("invalid collection status %q", status)
	}
	path := "/collections/" + url.PathEscape(id) + "/status/" + status
	if err := c.do(ctx, http.MethodPut, path, nil, nil); err != nil {
		return fmt.Errorf("setting collection %s status to %s: %w", id, status, err)
	}
	return nil
}

// GetCollectionRights lists the rights on a collection
// (GET /collections/{id}/rights).
func (c *Client) GetCollectionRights(ctx context.Context, id string) ([]record.Right, error) {
	var rights []record.Right
	if err := c.do(ctx, http.MethodGet, "/collections/"+url.PathEscape(id)+"/rights", nil, &rights); err != nil {
		return nil, fmt.Errorf("getting rights for collection %s: %w", id, err)
	}
	return rights, nil
}

// AddCollectionRights grants roles on a collection
// (POST /collections/{id}/rights). Collection rights are independent
// from the rights on member datasets.
func (c *Client) AddCollectionRights(ctx context.Context, id string, rights []record.Right) error {
	for _, r := range rights {
		if !record.ValidRole(r.Role) {
			return fmt.Errorf("invalid role %q", r.Role)
		}
	}
	if err := c.do(ctx, http.MethodPost, "/collections/"+url.PathEscape(id)+"/rights", rights, nil); err != nil {
		return fmt.Errorf("adding rights to collection %s: %w", id, err)
	}
	return nil
}

// AddDataToCollection adds one dataset to a collection
// (POST /collections/{id}/datas/{dataId}).
func (c *Client) AddDataToCollection(ctx context.Context, collectionID, dataID string) error {
	path := "/collections/" + url.PathEscape(collectionID) + "/datas/" + url.PathEscape(dataID)
	if err := c.do(ctx, http.MethodPost, path, nil, nil); err != nil {
		return fmt.Errorf("adding dataset %s to collection %s: %w", dataID, collectionID, err)
	}
	return nil
}

// RemoveDataFromCollection removes one dataset from a collection
// (DELETE /collections/{id}/datas/{dataId}).
func (c *Client) RemoveDataFromCollection(ctx context.Context, collectionID, dataID string) error {
	path := "/collections/" + url.PathEscape(collectionID) + "/datas/" + url.PathEscape(dataID)
	if err := c.do(ctx, http.MethodDelete, path, nil, nil); err != nil {
		return fmt.Errorf("removing dataset %s from collection %s: %w", dataID, collectionID, err)
	}
	return nil
}
