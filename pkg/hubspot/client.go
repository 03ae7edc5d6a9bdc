// Package hubspot is a minimal HubSpot CRM v3 client covering what the
// configurator pushes: deals, batched line items and their associations.
package hubspot

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rotisserie/eris"
	"golang.org/x/time/rate"
)

const defaultBaseURL = "https://api.hubapi.com"

// lineItemToDealAssociation is the HubSpot-defined association type id for
// line_item -> deal.
const lineItemToDealAssociation = 20

// Client performs CRM operations against the HubSpot API.
type Client interface {
	CreateDeal(ctx context.Context, deal DealInput) (*Deal, error)
	CreateLineItems(ctx context.Context, items []LineItemInput) ([]ObjectRef, error)
	AssociateLineItems(ctx context.Context, dealID string, lineItemIDs []string) error
	UpdateDealProperties(ctx context.Context, dealID string, properties map[string]string) error
}

// DealInput is the property set for a new deal.
type DealInput struct {
	Name       string
	Amount     string // decimal string in major units, HubSpot convention
	PipelineID string
	Properties map[string]string // extra custom properties
}

// Deal is a created deal.
type Deal struct {
	ID         string            `json:"id"`
	Properties map[string]string `json:"properties"`
}

// LineItemInput is the property set for a new line item.
type LineItemInput struct {
	ProductID string
	Name      string
	Quantity  int
	Price     string // unit price, decimal string in major units
}

// ObjectRef identifies a created CRM object.
type ObjectRef struct {
	ID string `json:"id"`
}

// Option configures the client.
type Option func(*httpClient)

// WithBaseURL overrides the default API base URL.
func WithBaseURL(url string) Option {
	return func(c *httpClient) {
		c.baseURL = url
	}
}

// WithHTTPClient overrides the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *httpClient) {
		c.http = hc
	}
}

// WithRateLimit overrides the default request rate limit.
func WithRateLimit(l *rate.Limiter) Option {
	return func(c *httpClient) {
		c.limiter = l
	}
}

type httpClient struct {
	token   string
	baseURL string
	http    *http.Client
	limiter *rate.Limiter
}

// NewClient creates a HubSpot API client authenticated with a private-app
// token. Requests are rate limited to stay under HubSpot's burst limits.
func NewClient(token string, opts ...Option) Client {
	c := &httpClient{
		token:   token,
		baseURL: defaultBaseURL,
		http: &http.Client{
			Timeout: 30 * time.Second,
		},
		limiter: rate.NewLimiter(10, 10),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *httpClient) CreateDeal(ctx context.Context, deal DealInput) (*Deal, error) {
	props := map[string]string{
		"dealname": deal.Name,
		"amount":   deal.Amount,
	}
	if deal.PipelineID != "" {
		props["pipeline"] = deal.PipelineID
	}
	for k, v := range deal.Properties {
		props[k] = v
	}

	var created Deal
	err := c.post(ctx, "/crm/v3/objects/deals", map[string]any{"properties": props}, &created)
	if err != nil {
		return nil, eris.Wrap(err, "hubspot: create deal")
	}
	return &created, nil
}

func (c *httpClient) CreateLineItems(ctx context.Context, items []LineItemInput) ([]ObjectRef, error) {
	if len(items) == 0 {
		return nil, nil
	}

	inputs := make([]map[string]any, len(items))
	for i, it := range items {
		props := map[string]string{
			"name":     it.Name,
			"quantity": fmt.Sprintf("%d", it.Quantity),
			"price":    it.Price,
		}
		if it.ProductID != "" {
			props["hs_product_id"] = it.ProductID
		}
		inputs[i] = map[string]any{"properties": props}
	}

	var resp struct {
		Results []ObjectRef `json:"results"`
	}
	err := c.post(ctx, "/crm/v3/objects/line_items/batch/create", map[string]any{"inputs": inputs}, &resp)
	if err != nil {
		return nil, eris.Wrap(err, "hubspot: create line items")
	}
	return resp.Results, nil
}

func (c *httpClient) AssociateLineItems(ctx context.Context, dealID string, lineItemIDs []string) error {
	type assocSpec struct {
		Category string `json:"associationCategory"`
		TypeID   int    `json:"associationTypeId"`
	}
	type assocInput struct {
		From  ObjectRef   `json:"from"`
		To    ObjectRef   `json:"to"`
		Types []assocSpec `json:"types"`
	}

	inputs := make([]assocInput, len(lineItemIDs))
	for i, id := range lineItemIDs {
		inputs[i] = assocInput{
			From:  ObjectRef{ID: id},
			To:    ObjectRef{ID: dealID},
			Types: []assocSpec{{Category: "HUBSPOT_DEFINED", TypeID: lineItemToDealAssociation}},
		}
	}

	err := c.post(ctx, "/crm/v4/associations/line_items/deals/batch/create", map[string]any{"inputs": inputs}, nil)
	if err != nil {
		return eris.Wrapf(err, "hubspot: associate line items with deal %s", dealID)
	}
	return nil
}

func (c *httpClient) UpdateDealProperties(ctx context.Context, dealID string, properties map[string]string) error {
	err := c.send(ctx, http.MethodPatch, "/crm/v3/objects/deals/"+dealID, map[string]any{"properties": properties}, nil)
	if err != nil {
		return eris.Wrapf(err, "hubspot: update deal %s", dealID)
	}
	return nil
}

// post sends a JSON POST and decodes the response into out when non-nil.
func (c *httpClient) post(ctx context.Context, path string, body any, out any) error {
	return c.send(ctx, http.MethodPost, path, body, out)
}

func (c *httpClient) send(ctx context.Context, method, path string, body any, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return eris.Wrap(err, "rate limit wait")
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return eris.Wrap(err, "marshal request")
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return eris.Wrap(err, "create request")
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return eris.Wrap(err, "send request")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return eris.Errorf("status %d: %s", resp.StatusCode, string(data))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return eris.Wrap(err, "decode response")
	}
	return nil
}
