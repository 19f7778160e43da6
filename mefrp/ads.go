package mefrp

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

type adsIDRequest struct {
	AdsID int64 `json:"adsId"`
}

// GetUserAds returns the ads owned by the user.
func (c *Client) GetUserAds(ctx context.Context) ([]Ads, error) {
	return fetchList[Ads](ctx, c, http.MethodGet, "/auth/ads/manage", nil, nil)
}

// GetAdsByPlacement returns the ads for a placement, optionally narrowed to a
// slot. Zero values are not sent.
func (c *Client) GetAdsByPlacement(ctx context.Context, placement string, slotID int64) ([]Ads, error) {
	q := url.Values{}
	if placement != "" {
		q.Set("placement", placement)
	}
	if slotID != 0 {
		q.Set("slotId", strconv.FormatInt(slotID, 10))
	}
	return fetchList[Ads](ctx, c, http.MethodGet, "/auth/ads/query", nil, q)
}

// AddAd creates an ad.
func (c *Client) AddAd(ctx context.Context, ad Ads) error {
	return c.exec(ctx, http.MethodPost, "/auth/ads/add", ad, nil)
}

// UpdateAd edits an ad.
func (c *Client) UpdateAd(ctx context.Context, ad Ads) error {
	return c.exec(ctx, http.MethodPost, "/auth/ads/update", ad, nil)
}

// ApplyAd submits an ad for review.
func (c *Client) ApplyAd(ctx context.Context, ad Ads) error {
	return c.exec(ctx, http.MethodPost, "/auth/ads/apply", ad, nil)
}

// DeleteAd deletes an ad.
func (c *Client) DeleteAd(ctx context.Context, adsID int64) error {
	return c.exec(ctx, http.MethodPost, "/auth/ads/delete", adsIDRequest{AdsID: adsID}, nil)
}

// RenewAd extends an ad's run.
func (c *Client) RenewAd(ctx context.Context, adsID int64) error {
	return c.exec(ctx, http.MethodPost, "/auth/ads/renew", adsIDRequest{AdsID: adsID}, nil)
}

// TrackAdClick records a click on an ad.
func (c *Client) TrackAdClick(ctx context.Context, adsID int64) error {
	return c.exec(ctx, http.MethodGet, "/auth/ads/track", nil, idQuery("adId", adsID))
}

// GetUserAdCredits returns the user's remaining ad credits per slot.
func (c *Client) GetUserAdCredits(ctx context.Context) ([]AdCredit, error) {
	resp, err := fetch[struct {
		Credits []AdCredit `json:"credits"`
	}](ctx, c, http.MethodGet, "/auth/ads/credits", nil, nil)
	if err != nil {
		return nil, err
	}
	return resp.Credits, nil
}

// PurchaseAdCredits buys amount credits for a slot.
func (c *Client) PurchaseAdCredits(ctx context.Context, slotID int64, amount int) (*AdCreditPurchase, error) {
	req := struct {
		SlotID int64 `json:"slot_id"`
		Amount int   `json:"amount"`
	}{SlotID: slotID, Amount: amount}

	return fetch[AdCreditPurchase](ctx, c, http.MethodPost, "/auth/ads/credits/purchase", req, nil)
}

// ValidateCoupon checks a coupon against an order before it is placed.
func (c *Client) ValidateCoupon(ctx context.Context, code, productType string, orderAmount float64) (*CouponValidation, error) {
	req := struct {
		Code        string  `json:"code"`
		ProductType string  `json:"productType"`
		OrderAmount float64 `json:"orderAmount"`
	}{Code: code, ProductType: productType, OrderAmount: orderAmount}

	return fetch[CouponValidation](ctx, c, http.MethodPost, "/auth/ads/coupon/validate", req, nil)
}

// GetAvailableAdSlots lists ad slots with their occupancy.
func (c *Client) GetAvailableAdSlots(ctx context.Context) ([]AdSlotUsage, error) {
	return fetchList[AdSlotUsage](ctx, c, http.MethodGet, "/auth/ads/slots", nil, nil)
}

// GetAdSlotByPlacement returns the slot serving placement.
func (c *Client) GetAdSlotByPlacement(ctx context.Context, placement string) (*AdSlot, error) {
	q := url.Values{}
	q.Set("placement", placement)
	return fetch[AdSlot](ctx, c, http.MethodGet, "/auth/ads/slot", nil, q)
}

// GetUserAdsStats sums clicks and impressions over the user's ads.
func (c *Client) GetUserAdsStats(ctx context.Context) (*AdsStats, error) {
	return fetch[AdsStats](ctx, c, http.MethodGet, "/auth/ads/stats", nil, nil)
}
