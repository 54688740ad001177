// Package courier queries parcel traces and delivery estimates from kuaidi100.
package courier

import (
	"context"
	"net/url"

	"github.com/xingmcp/toolservers/internal/common"
	"github.com/xingmcp/toolservers/internal/config"
	"github.com/xingmcp/toolservers/internal/upstream"
)

// Client calls the kuaidi100 endpoints. Responses are returned verbatim.
type Client struct {
	http   *upstream.Client
	apiKey string
}

// NewClient creates a client for baseURL authenticating with apiKey.
func NewClient(baseURL, apiKey string, logger *common.Logger, opts ...upstream.Option) *Client {
	return &Client{
		http:   upstream.New(upstream.FixedSelector(baseURL), logger, opts...),
		apiKey: apiKey,
	}
}

// NewClientFromConfig creates a client from the courier section.
func NewClientFromConfig(cfg config.CourierConfig, logger *common.Logger) *Client {
	return NewClient(cfg.BaseURL, cfg.APIKey, logger, upstream.WithTimeout(cfg.GetTimeout()))
}

// HasKey reports whether an API key is configured.
func (c *Client) HasKey() bool {
	return c.apiKey != ""
}

// QueryTrace returns the tracking history of a parcel.
// phone is forwarded even when empty; some carriers require it.
func (c *Client) QueryTrace(ctx context.Context, kuaidiNum, phone string) (string, error) {
	q := url.Values{}
	q.Set("key", c.apiKey)
	q.Set("kuaidiNum", kuaidiNum)
	q.Set("phone", phone)

	body, err := c.http.Get(ctx, "/queryTrace", q)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// EstimateRequest describes a shipment whose delivery time is estimated.
type EstimateRequest struct {
	KuaidiCom string
	From      string
	To        string
	OrderTime string
	ExpType   string
}

// EstimateTime returns the carrier's delivery time estimate.
func (c *Client) EstimateTime(ctx context.Context, r EstimateRequest) (string, error) {
	q := url.Values{}
	q.Set("key", c.apiKey)
	q.Set("kuaidicom", r.KuaidiCom)
	q.Set("from", r.From)
	q.Set("to", r.To)
	q.Set("orderTime", r.OrderTime)
	q.Set("expType", r.ExpType)

	body, err := c.http.Get(ctx, "/estimateTime", q)
	if err != nil {
		return "", err
	}
	return string(body), nil
}
