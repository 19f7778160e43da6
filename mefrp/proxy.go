package mefrp

import (
	"context"
	"net/http"
)

// Config formats accepted by GetProxyConfig.
const (
	FormatTOML = "toml"
	FormatJSON = "json"
	FormatYAML = "yml"
	FormatINI  = "ini"
)

type proxyIDRequest struct {
	ProxyID int64 `json:"proxyId"`
}

// GetProxyList returns the user's proxies and the nodes they run on.
func (c *Client) GetProxyList(ctx context.Context) (*ProxyList, error) {
	return fetch[ProxyList](ctx, c, http.MethodGet, "/auth/proxy/list", nil, nil)
}

// CreateProxy creates a proxy.
func (c *Client) CreateProxy(ctx context.Context, req CreateProxyRequest) error {
	return c.exec(ctx, http.MethodPost, "/auth/proxy/create", req, nil)
}

// DeleteProxy deletes a proxy.
func (c *Client) DeleteProxy(ctx context.Context, proxyID int64) error {
	return c.exec(ctx, http.MethodPost, "/auth/proxy/delete", proxyIDRequest{ProxyID: proxyID}, nil)
}

// UpdateProxy replaces the settings of a proxy.
func (c *Client) UpdateProxy(ctx context.Context, req UpdateProxyRequest) error {
	return c.exec(ctx, http.MethodPost, "/auth/proxy/update", req, nil)
}

// KickProxy disconnects a running proxy.
func (c *Client) KickProxy(ctx context.Context, proxyID int64) error {
	return c.exec(ctx, http.MethodPost, "/auth/proxy/kick", proxyIDRequest{ProxyID: proxyID}, nil)
}

// ToggleProxy enables or disables a proxy.
func (c *Client) ToggleProxy(ctx context.Context, proxyID int64, disabled bool) error {
	req := struct {
		ProxyID    int64 `json:"proxyId"`
		IsDisabled bool  `json:"isDisabled"`
	}{ProxyID: proxyID, IsDisabled: disabled}

	return c.exec(ctx, http.MethodPost, "/auth/proxy/toggle", req, nil)
}

// GetProxyConfig renders the frpc configuration of one proxy in format.
func (c *Client) GetProxyConfig(ctx context.Context, proxyID int64, format string) (*ProxyConfig, error) {
	req := struct {
		ProxyID int64  `json:"proxyId"`
		Format  string `json:"format"`
	}{ProxyID: proxyID, Format: format}

	return fetch[ProxyConfig](ctx, c, http.MethodPost, "/auth/proxy/config", req, nil)
}

// GetMultipleProxyConfigs renders one frpc configuration covering all proxyIDs.
func (c *Client) GetMultipleProxyConfigs(ctx context.Context, proxyIDs []int64, format string) (*ProxyConfig, error) {
	req := struct {
		ProxyIDs []int64 `json:"proxyIds"`
		Format   string  `json:"format"`
	}{ProxyIDs: proxyIDs, Format: format}

	return fetch[ProxyConfig](ctx, c, http.MethodPost, "/auth/proxy/config/multiple", req, nil)
}

// GetCreateProxyData returns the nodes and groups available for new proxies.
func (c *Client) GetCreateProxyData(ctx context.Context) (*CreateProxyData, error) {
	return fetch[CreateProxyData](ctx, c, http.MethodGet, "/auth/createProxyData", nil, nil)
}

// GetEasyStartupConfig returns the one-shot startup parameters of a proxy.
func (c *Client) GetEasyStartupConfig(ctx context.Context, proxyID int64) (*EasyStartProxy, error) {
	return fetch[EasyStartProxy](ctx, c, http.MethodPost, "/auth/easyStartup", proxyIDRequest{ProxyID: proxyID}, nil)
}
