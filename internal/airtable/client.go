package airtable

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/avolkov/order-status/internal/domain"
)

// Error is a non-2xx reply from the Airtable API.
type Error struct {
	Status int
	Reason string
}

func (e *Error) Error() string {
	return fmt.Sprintf("airtable: upstream status %d: %s", e.Status, e.Reason)
}

// SchemaError means an upstream record does not match the expected field set.
type SchemaError struct {
	RecordID string
	Problems map[string]string
}

func (e *SchemaError) Error() string {
	keys := make([]string, 0, len(e.Problems))
	for k := range e.Problems {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Problems[k])
	}
	return fmt.Sprintf("airtable: record %s failed validation (%s)", e.RecordID, strings.Join(parts, "; "))
}

type Config struct {
	BaseURL          string
	APIKey           string
	BaseID           string
	Table            string
	OrderNumberField string
	PhoneNumberField string
}

// Client fetches order records from the Airtable REST API. It does not
// cache and does not retry; both are its callers' business.
type Client struct {
	http   *resty.Client
	cfg    Config
	logger *zap.Logger
}

func New(cfg Config, logger *zap.Logger) *Client {
	c := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetAuthToken(cfg.APIKey)
	return &Client{
		http:   c,
		cfg:    cfg,
		logger: logger,
	}
}

type listResponse struct {
	Records []record `json:"records"`
}

type record struct {
	ID     string                     `json:"id"`
	Fields map[string]json.RawMessage `json:"fields"`
}

// quoteFormulaValue wraps value for use inside a filterByFormula string
// literal. Backslashes and double quotes are escaped so a lookup key can
// never terminate the literal and alter the formula.
func quoteFormulaValue(value string) string {
	value = strings.ReplaceAll(value, `\`, `\\`)
	value = strings.ReplaceAll(value, `"`, `\"`)
	return `"` + value + `"`
}

func (c *Client) list(ctx context.Context, field, value string) ([]record, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("filterByFormula", fmt.Sprintf("{%s}=%s", field, quoteFormulaValue(value))).
		Get("/" + c.cfg.BaseID + "/" + c.cfg.Table)
	if err != nil {
		return nil, fmt.Errorf("airtable request: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, &Error{Status: resp.StatusCode(), Reason: resp.Status()}
	}

	var list listResponse
	if err := json.Unmarshal(resp.Body(), &list); err != nil {
		return nil, &Error{Status: resp.StatusCode(), Reason: "malformed response body"}
	}
	return list.Records, nil
}

// FetchByOrderNumber returns the order matching orderNumber, or
// domain.ErrNotFound when the source has no such record.
func (c *Client) FetchByOrderNumber(ctx context.Context, orderNumber string) (*domain.Order, error) {
	recs, err := c.list(ctx, c.cfg.OrderNumberField, orderNumber)
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, domain.ErrNotFound
	}
	return c.normalize(recs[0])
}

// FetchAllByPhoneNumber returns every order on file for phoneNumber. An
// empty result is not an error. A record that fails validation is skipped
// with a warning so one bad row cannot sink the whole batch.
func (c *Client) FetchAllByPhoneNumber(ctx context.Context, phoneNumber string) ([]*domain.Order, error) {
	recs, err := c.list(ctx, c.cfg.PhoneNumberField, phoneNumber)
	if err != nil {
		return nil, err
	}

	orders := make([]*domain.Order, 0, len(recs))
	for _, rec := range recs {
		order, err := c.normalize(rec)
		if err != nil {
			c.logger.Warn("skipping invalid upstream record",
				zap.String("record_id", rec.ID),
				zap.Error(err),
			)
			continue
		}
		orders = append(orders, order)
	}
	return orders, nil
}
