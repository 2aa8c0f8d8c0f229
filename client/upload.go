package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"nakala/record"
)

// UploadFile uploads one local file (POST /datas/uploads) and returns
// the file info NAKALA expects back verbatim in dataset payloads. The
// embargo date is stamped with today, as depositing requires one.
func (c *Client) UploadFile(ctx context.Context, path string) (*record.FileInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	return c.Upload(ctx, filepath.Base(path), f)
}

// Upload uploads named content from a reader.
func (c *Client) Upload(ctx context.Context, name string, r io.Reader) (*record.FileInfo, error) {
	if err := c.throttle(ctx); err != nil {
		return nil, err
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", name)
	if err != nil {
		return nil, fmt.Errorf("building multipart body: %w", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/datas/uploads", &body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-API-KEY", c.APIKey)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	slog.Debug("nakala api call", "method", http.MethodPost, "path", "/datas/uploads", "file", name)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("uploading %s: %w", name, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode != http.StatusCreated {
		return nil, decodeError(resp.StatusCode, data)
	}

	var info record.FileInfo
	if err := json.Unmarshal(data, &info); err != nil {
		return nil, fmt.Errorf("decoding upload response: %w", err)
	}
	info.Embargoed = record.Today()

	slog.Info("file uploaded", "name", info.Name, "sha1", info.SHA1)
	return &info, nil
}
