package mefrp

import (
	"context"
	"net/http"
)

// GetUserInfo returns the logged-in account.
func (c *Client) GetUserInfo(ctx context.Context) (*UserInfo, error) {
	return fetch[UserInfo](ctx, c, http.MethodGet, "/auth/user/info", nil, nil)
}

// Sign performs the daily check-in.
func (c *Client) Sign(ctx context.Context, captchaToken string) error {
	req := struct {
		CaptchaToken string `json:"captchaToken"`
	}{CaptchaToken: captchaToken}

	return c.exec(ctx, http.MethodPost, "/auth/user/sign", req, nil)
}

// GetUserGroups lists the membership groups.
func (c *Client) GetUserGroups(ctx context.Context) ([]UserGroup, error) {
	resp, err := fetch[struct {
		Groups []UserGroup `json:"groups"`
	}](ctx, c, http.MethodGet, "/auth/user/groups", nil, nil)
	if err != nil {
		return nil, err
	}
	return resp.Groups, nil
}

// GetFrpToken returns the token frpc uses to authenticate against nodes.
func (c *Client) GetFrpToken(ctx context.Context) (string, error) {
	resp, err := fetch[struct {
		Token string `json:"token"`
	}](ctx, c, http.MethodGet, "/auth/user/frpToken", nil, nil)
	if err != nil {
		return "", err
	}
	return resp.Token, nil
}

// ResetAccessKey rotates the frp token and returns the new one.
func (c *Client) ResetAccessKey(ctx context.Context, captchaToken string) (string, error) {
	req := struct {
		CaptchaToken string `json:"captchaToken"`
	}{CaptchaToken: captchaToken}

	resp, err := fetch[struct {
		NewToken string `json:"newToken"`
	}](ctx, c, http.MethodPost, "/auth/user/tokenReset", req, nil)
	if err != nil {
		return "", err
	}
	return resp.NewToken, nil
}

// ChangePassword changes the password of the logged-in account.
func (c *Client) ChangePassword(ctx context.Context, req ChangePasswordRequest) error {
	return c.exec(ctx, http.MethodPost, "/auth/user/passwordReset", req, nil)
}

// KickAllProxies disconnects every running proxy of the account.
func (c *Client) KickAllProxies(ctx context.Context) error {
	return c.exec(ctx, http.MethodGet, "/auth/user/kickAllProxies", nil, nil)
}

// GetUserTrafficStats returns the account traffic of the last datePeriod days.
func (c *Client) GetUserTrafficStats(ctx context.Context, datePeriod int) (*UserTrafficStats, error) {
	req := struct {
		DatePeriod int `json:"datePeriod"`
	}{DatePeriod: datePeriod}

	return fetch[UserTrafficStats](ctx, c, http.MethodPost, "/auth/user/trafficStats", req, nil)
}

// GetRealnameInfo returns the identity verification state.
func (c *Client) GetRealnameInfo(ctx context.Context) (*RealnameInfo, error) {
	return fetch[RealnameInfo](ctx, c, http.MethodGet, "/auth/user/info/realname", nil, nil)
}

// PerformRealnameLegacy submits identity documents through the legacy flow.
func (c *Client) PerformRealnameLegacy(ctx context.Context, req RealnameRequest) error {
	return c.exec(ctx, http.MethodPost, "/auth/user/realname/legacy", req, nil)
}

type domainRequest struct {
	Domain string `json:"domain"`
}

// GetUserIcpDomain lists the ICP-filed domains of the account.
func (c *Client) GetUserIcpDomain(ctx context.Context) ([]IcpDomain, error) {
	return fetchList[IcpDomain](ctx, c, http.MethodGet, "/auth/user/icpDomain/list", nil, nil)
}

// AddIcpDomain registers an ICP-filed domain.
func (c *Client) AddIcpDomain(ctx context.Context, domain string) error {
	return c.exec(ctx, http.MethodPost, "/auth/user/icpDomain/add", domainRequest{Domain: domain}, nil)
}

// DeleteIcpDomain removes an ICP-filed domain.
func (c *Client) DeleteIcpDomain(ctx context.Context, domain string) error {
	return c.exec(ctx, http.MethodPost, "/auth/user/icpDomain/delete", domainRequest{Domain: domain}, nil)
}

// GetPurchaseStatus reports whether the account may buy from the store.
func (c *Client) GetPurchaseStatus(ctx context.Context) (*PurchaseStatus, error) {
	return fetch[PurchaseStatus](ctx, c, http.MethodGet, "/auth/user/purchase-status", nil, nil)
}
