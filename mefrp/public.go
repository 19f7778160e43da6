package mefrp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
)

// GetRegisterEmailCode mails a registration code to email.
func (c *Client) GetRegisterEmailCode(ctx context.Context, email, captchaToken string) error {
	req := struct {
		Email        string `json:"email"`
		CaptchaToken string `json:"captchaToken"`
	}{Email: email, CaptchaToken: captchaToken}

	return c.exec(ctx, http.MethodPost, "/public/register/emailCode", req, nil)
}

// Register creates an account.
func (c *Client) Register(ctx context.Context, req RegisterRequest) error {
	return c.exec(ctx, http.MethodPost, "/public/register", req, nil)
}

// Login exchanges credentials for a token. On success the token is stored on
// the client and sent with every following call.
func (c *Client) Login(ctx context.Context, req LoginRequest) (string, error) {
	var token string
	err := c.roundTrip(ctx, http.MethodPost, "/public/login", req, nil, func(raw json.RawMessage) error {
		resp, err := DecodeRecord[struct {
			Token string `json:"token"`
		}](raw)
		if err != nil {
			return err
		}
		token, err = requireToken(resp.Token)
		return err
	})
	if err != nil {
		return "", err
	}

	c.cfg.SetToken(token)
	c.logger.Debug().Str("username", req.Username).Msg("Logged in to MEFrp")
	return token, nil
}

// GenerateMagicLink mails a passwordless login link.
func (c *Client) GenerateMagicLink(ctx context.Context, req MagicLinkRequest) error {
	return c.exec(ctx, http.MethodPost, "/public/mlogin/link", req, nil)
}

// VerifyMagicLink completes a magic-link login and stores the returned token.
func (c *Client) VerifyMagicLink(ctx context.Context, mid string) (*MagicLinkLogin, error) {
	q := url.Values{}
	q.Set("mid", mid)

	var resp *MagicLinkLogin
	err := c.roundTrip(ctx, http.MethodGet, "/public/mlogin/verify", nil, q, func(raw json.RawMessage) error {
		var err error
		if resp, err = DecodeRecord[MagicLinkLogin](raw); err != nil {
			return err
		}
		_, err = requireToken(resp.Token)
		return err
	})
	if err != nil {
		return nil, err
	}

	c.cfg.SetToken(resp.Token)
	return resp, nil
}

// requireToken rejects an empty login token.
func requireToken(token string) (string, error) {
	if token == "" {
		return "", &DecodeError{Field: rootField + ".token", Reason: "empty token"}
	}
	return token, nil
}

// RequestIForgotEmailCode mails a password-reset code.
func (c *Client) RequestIForgotEmailCode(ctx context.Context, email, captchaToken string) error {
	req := struct {
		Email        string `json:"email"`
		CaptchaToken string `json:"captchaToken"`
	}{Email: email, CaptchaToken: captchaToken}

	return c.exec(ctx, http.MethodPost, "/public/iforgot/emailCode", req, nil)
}

// IForgot sets a new password using a mailed reset code.
func (c *Client) IForgot(ctx context.Context, req IForgotRequest) error {
	return c.exec(ctx, http.MethodPost, "/public/iforgot", req, nil)
}

// GetStatistics returns the public service totals.
func (c *Client) GetStatistics(ctx context.Context) (*Statistics, error) {
	return fetch[Statistics](ctx, c, http.MethodGet, "/public/statistics", nil, nil)
}

// GetStoreProducts returns the public store catalogue.
func (c *Client) GetStoreProducts(ctx context.Context) ([]StoreItem, error) {
	return fetchList[StoreItem](ctx, c, http.MethodGet, "/public/store/products", nil, nil)
}

// GetHolidays returns the holiday dates of year.
func (c *Client) GetHolidays(ctx context.Context, year int) ([]string, error) {
	q := url.Values{}
	q.Set("year", strconv.Itoa(year))
	return fetchList[string](ctx, c, http.MethodGet, "/public/holiday", nil, q)
}

// GetPublicAdsByPlacement returns the ads shown anonymously at placement.
func (c *Client) GetPublicAdsByPlacement(ctx context.Context, placement string) ([]Ads, error) {
	q := url.Values{}
	q.Set("placement", placement)
	return fetchList[Ads](ctx, c, http.MethodGet, "/public/ads/query", nil, q)
}

// CheckUpdate asks whether a newer build of an installed product exists.
func (c *Client) CheckUpdate(ctx context.Context, req CheckUpdateRequest) (*UpdateInfo, error) {
	return fetch[UpdateInfo](ctx, c, http.MethodPost, "/public/checkUpdate", req, nil)
}
