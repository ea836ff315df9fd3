package upstream

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/martpe-org/martpeApp-sub003/models"
)

// PresignAssets asks the backend for a direct-upload PUT URL per asset name.
func (c *Client) PresignAssets(ctx context.Context, token string, names []string, assetType string) ([]models.PresignedAsset, error) {
	if len(names) == 0 {
		return nil, &Error{Kind: KindPrecondition, Op: "presign assets", Err: errors.New("no asset names")}
	}
	body := models.PresignAssetsRequest{AssetNames: names, Type: assetType}

	var out []models.PresignedAsset
	if err := c.do(ctx, "presign assets", http.MethodPost, "/digitalassets/presignedurl", nil, token, body, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UploadAsset PUTs file bytes straight to a presigned URL. The URL embeds
// its own auth, so no bearer token here.
func (c *Client) UploadAsset(ctx context.Context, putURL, contentType string, body io.Reader, size int64) error {
	const op = "upload asset"
	if putURL == "" {
		return &Error{Kind: KindPrecondition, Op: op, Err: errors.New("missing presigned url")}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, putURL, body)
	if err != nil {
		return &Error{Kind: KindPrecondition, Op: op, Err: err}
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if size > 0 {
		req.ContentLength = size
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &Error{Kind: KindNetwork, Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrBody))
		return &Error{Kind: KindStatus, Op: op, Status: resp.StatusCode, Body: string(snippet)}
	}
	// Drain so the connection can be reused.
	if _, err := io.Copy(io.Discard, resp.Body); err != nil {
		return &Error{Kind: KindNetwork, Op: op, Err: fmt.Errorf("drain response: %w", err)}
	}
	return nil
}
