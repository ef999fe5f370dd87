package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"rfq_console/internal/domain/entities"
	"rfq_console/internal/usecase/interfaces"

	"go.uber.org/zap"
)

const (
	pathSKUs            = "/rfq/%d/sku"
	pathLatestSKUs      = "/rfq/%d/sku/latest"
	pathRawMaterials    = "/raw-material"
	pathSaveComponents  = "/sku/product"
	pathSaveBOM         = "/sku/bom"
	pathDeleteProduct   = "/sku/product/%d"
	pathFactoryOverhead = "/rfq/factory-overhead"
	pathCalculateCost   = "/rfq/%d/calculate-total-factory-cost"

	maxResponseBytes = 8 << 20
)

var ErrBackendNotConfigured = errors.New("rfq backend not configured")

// Error is a failed backend call: a non-2xx status or success=false.
// Message is the backend's own text when it sent one.
type Error struct {
	Method  string
	Path    string
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("%s %s failed with status %d", e.Method, e.Path, e.Status)
}

// NotFound reports a 404 from the backend.
func (e *Error) NotFound() bool { return e.Status == http.StatusNotFound }

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

// Client talks to the RFQ REST backend.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

var _ interfaces.IProductBackend = (*Client)(nil)

func NewClient(baseURL, token string, timeout time.Duration) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, ErrBackendNotConfigured
	}
	if _, err := url.ParseRequestURI(baseURL); err != nil {
		return nil, fmt.Errorf("invalid backend base url: %w", err)
	}
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{baseURL: baseURL, token: token, http: &http.Client{Timeout: timeout}}, nil
}

func (c *Client) ListSKUs(ctx context.Context, rfqID int64) ([]entities.SKU, error) {
	var out []skuPayload
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf(pathSKUs, rfqID), nil, nil, &out); err != nil {
		return nil, err
	}
	return toSKUs(out), nil
}

func (c *Client) ListLatestSKUs(ctx context.Context, rfqID int64, version int) ([]entities.SKU, error) {
	q := url.Values{"version": {strconv.Itoa(version)}}
	var out []skuPayload
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf(pathLatestSKUs, rfqID), q, nil, &out); err != nil {
		return nil, err
	}
	return toSKUs(out), nil
}

func (c *Client) ListRawMaterials(ctx context.Context) ([]entities.RawMaterial, error) {
	var out []entities.RawMaterial
	if err := c.do(ctx, http.MethodGet, pathRawMaterials, nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) SaveComponents(ctx context.Context, skuID int64, products []entities.Product) ([]entities.Product, error) {
	return c.saveProducts(ctx, pathSaveComponents, skuID, products)
}

func (c *Client) SaveBOM(ctx context.Context, skuID int64, products []entities.Product) ([]entities.Product, error) {
	return c.saveProducts(ctx, pathSaveBOM, skuID, products)
}

func (c *Client) saveProducts(ctx context.Context, path string, skuID int64, products []entities.Product) ([]entities.Product, error) {
	body := saveProductsRequest{SKUID: skuID, Products: make([]productPayload, 0, len(products))}
	for _, p := range products {
		body.Products = append(body.Products, fromProduct(p))
	}

	// Confirmations are either a product array or an object; only arrays are
	// read back.
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodPost, path, nil, body, &raw); err != nil {
		return nil, err
	}
	return decodeProducts(raw)
}

func (c *Client) DeleteProduct(ctx context.Context, productID int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf(pathDeleteProduct, productID), nil, nil, nil)
}

func (c *Client) SaveFactoryOverhead(ctx context.Context, rfqID int64, percentage entities.Amount) error {
	body := factoryOverheadRequest{RFQID: rfqID, FactoryOverheadPerc: percentage.String()}
	return c.do(ctx, http.MethodPost, pathFactoryOverhead, nil, body, nil)
}

func (c *Client) CalculateTotalFactoryCost(ctx context.Context, rfqID int64) error {
	return c.do(ctx, http.MethodGet, fmt.Sprintf(pathCalculateCost, rfqID), nil, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		zap.L().Warn("[backend][client] request failed", zap.String("method", method), zap.String("path", path), zap.Error(err))
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return err
	}
	zap.L().Debug("[backend][client] response",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("latency", time.Since(start)),
	)

	var env envelope
	decodeErr := json.Unmarshal(raw, &env)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &Error{Method: method, Path: path, Status: resp.StatusCode, Message: env.Message}
	}
	if decodeErr != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, decodeErr)
	}
	if !env.Success {
		return &Error{Method: method, Path: path, Status: resp.StatusCode, Message: env.Message}
	}
	if out == nil || len(env.Data) == 0 || string(env.Data) == "null" {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("decode %s %s data: %w", method, path, err)
	}
	return nil
}
