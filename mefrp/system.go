package mefrp

import (
	"context"
	"net/http"
)

// GetSystemStatus returns the service health.
func (c *Client) GetSystemStatus(ctx context.Context) (*SystemStatus, error) {
	return fetch[SystemStatus](ctx, c, http.MethodGet, "/auth/system/status", nil, nil)
}

// GetNotice returns the current notice board text.
func (c *Client) GetNotice(ctx context.Context) (string, error) {
	return fetchValue[string](ctx, c, http.MethodGet, "/auth/notice", nil, nil)
}

// GetPopupNotice returns the popup notice text.
func (c *Client) GetPopupNotice(ctx context.Context) (string, error) {
	return fetchValue[string](ctx, c, http.MethodGet, "/auth/popupNotice", nil, nil)
}

// GetProducts lists downloadable frpc builds.
func (c *Client) GetProducts(ctx context.Context) ([]Product, error) {
	return fetchList[Product](ctx, c, http.MethodGet, "/auth/products", nil, nil)
}

// GetDownloadSources lists the mirrors serving frpc builds.
func (c *Client) GetDownloadSources(ctx context.Context) ([]DownloadSource, error) {
	return fetchList[DownloadSource](ctx, c, http.MethodGet, "/auth/downloadSources", nil, nil)
}
