// pkg/comparator/httpclient.go
package comparator

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// HTTPClient talks to the catalog backend's REST surface. Every call
// reports success through a boolean-flag envelope; any non-success envelope
// maps to ErrNotFound or ErrCatalogUnavailable.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	log     logrus.FieldLogger
}

// HTTPClientOptions tunes the catalog client.
type HTTPClientOptions struct {
	Timeout time.Duration // defaults to DefaultTimeout
	Logger  logrus.FieldLogger
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *envelopeError  `json:"error"`
}

type envelopeError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// NewHTTPClient builds a catalog client against a base URL such as
// "https://catalog.example.com".
func NewHTTPClient(baseURL string, opts HTTPClientOptions) *HTTPClient {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.Logger == nil {
		opts.Logger = logrus.StandardLogger()
	}
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: opts.Timeout},
		log:     opts.Logger,
	}
}

func (c *HTTPClient) ListCategories(ctx context.Context) ([]Category, error) {
	var categories []Category
	if err := c.get(ctx, "/v1/catalog/categories", nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (c *HTTPClient) ListBrands(ctx context.Context) ([]Brand, error) {
	var brands []Brand
	if err := c.get(ctx, "/v1/catalog/brands", nil, &brands); err != nil {
		return nil, err
	}
	return brands, nil
}

func (c *HTTPClient) ListProducts(ctx context.Context, filter Filter) ([]ProductSummary, error) {
	query := url.Values{}
	if filter.Search != "" {
		query.Set("search", filter.Search)
	}
	if filter.Category != "" {
		query.Set("category", filter.Category)
	}
	if filter.Brand != "" {
		query.Set("brand", filter.Brand)
	}

	var products []ProductSummary
	if err := c.get(ctx, "/v1/catalog/products", query, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *HTTPClient) GetProductDetail(ctx context.Context, id string) (*Product, error) {
	var product Product
	if err := c.get(ctx, "/v1/catalog/products/"+url.PathEscape(id), nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *HTTPClient) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrCatalogUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.WithError(err).WithField("path", path).Warn("catalog request failed")
		return fmt.Errorf("%w: %v", ErrCatalogUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrCatalogUnavailable, err)
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return fmt.Errorf("%w: invalid envelope: %v", ErrCatalogUnavailable, err)
	}

	if !env.Success {
		code, message := "", resp.Status
		if env.Error != nil {
			code, message = env.Error.Code, env.Error.Message
		}
		if code == "NOT_FOUND" || resp.StatusCode == http.StatusNotFound {
			return fmt.Errorf("%w: %s", ErrNotFound, message)
		}
		c.log.WithFields(logrus.Fields{
			"path":   path,
			"status": resp.StatusCode,
			"code":   code,
		}).Warn("catalog returned error envelope")
		return fmt.Errorf("%w: %s", ErrCatalogUnavailable, message)
	}

	if out == nil || len(env.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("%w: invalid payload: %v", ErrCatalogUnavailable, err)
	}
	return nil
}
