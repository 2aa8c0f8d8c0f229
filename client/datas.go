package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"nakala/record"
)

// CreateData deposits a new dataset (POST /datas) and returns its
// identifier (a DOI-shaped id like "10.34847/nkl.abc123").
func (c *Client) CreateData(ctx context.Context, data *record.Data) (string, error) {
	var resp createResponse
	if err := c.do(ctx, http.MethodPost, "/datas", data, &resp); err != nil {
		return "", fmt.Errorf("creating dataset: %w", err)
	}
	return resp.Payload.ID, nil
}

// GetData fetches a dataset (GET /datas/{id}). Person metas are decoded
// into structured values.
func (c *Client) GetData(ctx context.Context, id string) (*record.Data, error) {
	var data record.Data
	if err := c.do(ctx, http.MethodGet, "/datas/"+url.PathEscape(id), nil, &data); err != nil {
		return nil, fmt.Errorf("getting dataset %s: %w", id, err)
	}
	data.Metas = record.DecodeMetas(data.Metas)
	return &data, nil
}

// UpdateData replaces a dataset (PUT /datas/{id}). NAKALA's PUT replaces
// ALL metadata with the payload; callers wanting incremental edits
// should use AddDataMeta / DeleteDataMetas instead.
func (c *Client) UpdateData(ctx context.Context, id string, data *record.Data) error {
	if err := c.do(ctx, http.MethodPut, "/datas/"+url.PathEscape(id), data, nil); err != nil {
		return fmt.Errorf("updating dataset %s: %w", id, err)
	}
	return nil
}

// DeleteData deletes a dataset (DELETE /datas/{id}). Published datasets
// refuse deletion; the server's error comes back as an *APIError.
func (c *Client) DeleteData(ctx context.Context, id string) error {
	if err := c.do(ctx, http.MethodDelete, "/datas/"+url.PathEscape(id), nil, nil); err != nil {
		return fmt.Errorf("deleting dataset %s: %w", id, err)
	}
	return nil
}

// AddDataMeta adds one metadata entry without touching the others
// (POST /datas/{id}/metadatas).
func (c *Client) AddDataMeta(ctx context.Context, id string, meta record.Meta) error {
	if err := c.do(ctx, http.MethodPost, "/datas/"+url.PathEscape(id)+"/metadatas", meta, nil); err != nil {
		return fmt.Errorf("adding metadata to dataset %s: %w", id, err)
	}
	return nil
}

// DeleteDataMetas removes every metadata entry matching the filter
// (DELETE /datas/{id}/metadatas). The filter is propertyUri plus
// optional lang; NAKALA cannot remove a single value this way.
func (c *Client) DeleteDataMetas(ctx context.Context, id string, filter record.MetaFilter) error {
	if err := c.do(ctx, http.MethodDelete, "/datas/"+url.PathEscape(id)+"/metadatas", filter, nil); err != nil {
		return fmt.Errorf("deleting metadata from dataset %s: %w", id, err)
	}
	return nil
}

// SetDataStatus moves a dataset to pending or published
// (PUT /datas/{id}/status/{status}). Publishing is one-way.
func (c *Client) SetDataStatus(ctx context.Context, id, status string) error {
	if !record.ValidDataStatus(status) {
		return fmt.Errorf("invalid dataset status %q", status)
	}
	path := "/datas/" + url.PathEscape(id) + "/status/" + status
	if err := c.do(ctx, http.MethodPut, path, nil, nil); err != nil {
		return fmt.Errorf("setting dataset %s status to %s: %w", id, status, err)
	}
	return nil
}

// GetDataRights lists the rights on a dataset (GET /datas/{id}/rights).
func (c *Client) GetDataRights(ctx context.Context, id string) ([]record.Right, error) {
	var rights []record.Right
	if err := c.do(ctx, http.MethodGet, "/datas/"+url.PathEscape(id)+"/rights", nil, &rights); err != nil {
		return nil, fmt.Errorf("getting rights for dataset %s: %w", id, err)
	}
	return rights, nil
}

// AddDataRights grants roles on a dataset to users or groups
// (POST /datas/{id}/rights).
func (c *Client) AddDataRights(ctx context.Context, id string, rights []record.Right) error {
	for _, r := range rights {
		if !record.ValidRole(r.Role) {
			return fmt.Errorf("invalid role %q", r.Role)
		}
	}
	if err := c.do(ctx, http.MethodPost, "/datas/"+url.PathEscape(id)+"/rights", rights, nil); err != nil {
		return fmt.Errorf("adding rights to dataset %s: %w", id, err)
	}
	return nil
}

// AddDataToCollections affects a dataset to collections
// (POST /datas/{id}/collections). Affectation links; the dataset keeps
// existing on its own.
func (c *Client) AddDataToCollections(ctx context.Context, id string, collectionIDs []string) error {
	if err := c.do(ctx, http.MethodPost, "/datas/"+url.PathEscape(id)+"/collections", collectionIDs, nil); err != nil {
		return fmt.Errorf("adding dataset %s to collections: %w", id, err)
	}
	return nil
}

// RemoveDataFromCollections removes a dataset from collections
// (DELETE /datas/{id}/collections) without deleting the dataset.
func (c *Client) RemoveDataFromCollections(ctx context.Context, id string, collectionIDs []string) error {
	if err := c.do(ctx, http.MethodDelete, "/datas/"+url.PathEscape(id)+"/collections", collectionIDs, nil); err != nil {
		return fmt.Errorf("removing dataset %s from collections: %w", id, err)
	}
	return nil
}
