package mefrp

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

type orderIDRequest struct {
	OrderID string `json:"orderId"`
}

// GetOrders returns one page of the user's orders. An empty status returns
// orders in any state.
func (c *Client) GetOrders(ctx context.Context, page, pageSize int, status string) (*OrderList, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("pageSize", strconv.Itoa(pageSize))
	if status != "" {
		q.Set("status", status)
	}
	return fetch[OrderList](ctx, c, http.MethodGet, "/auth/orders", nil, q)
}

// Proceed asks the payment backend to continue a pending order.
func (c *Client) Proceed(ctx context.Context, orderID string) error {
	return c.exec(ctx, http.MethodPost, "/cash/proceed", orderIDRequest{OrderID: orderID}, nil)
}

// RedeemCDK redeems a gift code.
func (c *Client) RedeemCDK(ctx context.Context, code, captchaToken string) error {
	req := struct {
		Code         string `json:"code"`
		CaptchaToken string `json:"captchaToken"`
	}{Code: code, CaptchaToken: captchaToken}

	return c.exec(ctx, http.MethodPost, "/auth/cdk/redeem", req, nil)
}

// SubmitOrder places an order and returns how to pay for it.
func (c *Client) SubmitOrder(ctx context.Context, req SubmitOrderRequest) (*OrderPayment, error) {
	return fetch[OrderPayment](ctx, c, http.MethodPost, "/cash/submit", req, nil)
}

// QueryOrder returns the payment state of an order.
func (c *Client) QueryOrder(ctx context.Context, orderID string) (*OrderStatus, error) {
	return fetch[OrderStatus](ctx, c, http.MethodPost, "/cash/query", orderIDRequest{OrderID: orderID}, nil)
}

// RepayOrder restarts payment of an unpaid order. force discards a payment
// session that is still open.
func (c *Client) RepayOrder(ctx context.Context, orderID, payMethod string, force bool) (*OrderPayment, error) {
	req := struct {
		OrderID   string `json:"orderId"`
		PayMethod string `json:"payMethod"`
		Force     bool   `json:"force"`
	}{OrderID: orderID, PayMethod: payMethod, Force: force}

	return fetch[OrderPayment](ctx, c, http.MethodPost, "/auth/cash/repay", req, nil)
}

// GetMyCDKUsage returns one page of the gift codes the user redeemed.
func (c *Client) GetMyCDKUsage(ctx context.Context, page, pageSize int) (*CDKUsageList, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("pageSize", strconv.Itoa(pageSize))
	return fetch[CDKUsageList](ctx, c, http.MethodGet, "/auth/cdk/usage", nil, q)
}
