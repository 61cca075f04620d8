// Package genai calls the hosted generative endpoint. The endpoint is
// an opaque remote procedure: requests and responses are plain JSON
// and every response carries either a payload or an error string,
// never both.
package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/mkhalid/poshak/internal/core/domain"
	"github.com/mkhalid/poshak/internal/core/port"
	"github.com/mkhalid/poshak/pkg/retry"
)

var _ port.ImageComposer = (*Client)(nil)

// ErrGeneration is the caller-facing failure for any generation that
// the endpoint itself rejected.
var ErrGeneration = errors.New("generation failed")

const requestTimeout = 60 * time.Second

type Client struct {
	endpoint string
	apiKey   string
	httpCl   *http.Client
}

func New(endpoint, apiKey string) Client {
	return Client{
		endpoint: endpoint,
		apiKey:   apiKey,
		httpCl:   &http.Client{Timeout: requestTimeout},
	}
}

type (
	productDetailsRequest struct {
		ImageURL string `json:"image_url"`
	}

	productDetailsResponse struct {
		Name           string  `json:"name"`
		Description    string  `json:"description"`
		Category       string  `json:"category"`
		SuggestedPrice float64 `json:"suggested_price"`
		Error          string  `json:"error,omitempty"`
	}

	styleAdviceRequest struct {
		ProductName string `json:"product_name"`
		Category    string `json:"category"`
		Description string `json:"description"`
	}

	styleAdviceResponse struct {
		Suggestions []string `json:"suggestions"`
		Error       string   `json:"error,omitempty"`
	}

	tryOnRequest struct {
		PersonImageURL  string `json:"person_image_url"`
		ProductImageURL string `json:"product_image_url"`
	}

	tryOnResponse struct {
		ImageURL string `json:"image_url"`
		Error    string `json:"error,omitempty"`
	}
)

func (c Client) ComposeProductDetails(
	ctx context.Context, imageURL string,
) (domain.ProductDetails, error) {
	const op = "genai.Client.ComposeProductDetails"

	var res productDetailsResponse
	err := c.call(ctx, "/v1/product-details",
		productDetailsRequest{ImageURL: imageURL}, &res)
	if err != nil {
		return domain.ProductDetails{}, fmt.Errorf("%s: %w", op, err)
	}
	if res.Error != "" {
		return domain.ProductDetails{}, fmt.Errorf(
			"%s: %w: %s", op, ErrGeneration, res.Error,
		)
	}

	return domain.ProductDetails{
		Name:           res.Name,
		Description:    res.Description,
		Category:       domain.Category(res.Category),
		SuggestedPrice: res.SuggestedPrice,
	}, nil
}

func (c Client) ComposeStyleAdvice(
	ctx context.Context, p domain.Product,
) (domain.StyleAdvice, error) {
	const op = "genai.Client.ComposeStyleAdvice"

	req := styleAdviceRequest{
		ProductName: p.Name,
		Category:    string(p.Category),
		Description: p.Description,
	}

	var res styleAdviceResponse
	if err := c.call(ctx, "/v1/style-advice", req, &res); err != nil {
		return domain.StyleAdvice{}, fmt.Errorf("%s: %w", op, err)
	}
	if res.Error != "" {
		return domain.StyleAdvice{}, fmt.Errorf(
			"%s: %w: %s", op, ErrGeneration, res.Error,
		)
	}

	return domain.StyleAdvice{Suggestions: res.Suggestions}, nil
}

func (c Client) ComposeTryOn(
	ctx context.Context, personImageURL, productImageURL string,
) (string, error) {
	const op = "genai.Client.ComposeTryOn"

	req := tryOnRequest{
		PersonImageURL:  personImageURL,
		ProductImageURL: productImageURL,
	}

	var res tryOnResponse
	if err := c.call(ctx, "/v1/try-on", req, &res); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	if res.Error != "" {
		return "", fmt.Errorf("%s: %w: %s", op, ErrGeneration, res.Error)
	}
	return res.ImageURL, nil
}

var errRetryable = errors.New("retryable status")

// call posts the request body and decodes the response into out.
// 5xx responses retry with exponential backoff; 4xx do not.
func (c Client) call(
	ctx context.Context, path string, in, out any,
) error {
	body, err := json.Marshal(in)
	if err != nil {
		return err
	}

	retryCfg := retry.RetryConfig{
		MaxAttempts: 3,
		Backoff:     retry.ExponentialBackoff(200 * time.Millisecond),
		ShouldRetry: func(err error) bool {
			return errors.Is(err, errRetryable)
		},
	}

	raw, err := retry.DoWithResult(ctx, retryCfg, func() ([]byte, error) {
		return c.post(ctx, path, body)
	})
	if err != nil {
		return err
	}

	return json.Unmarshal(raw, out)
}

func (c Client) post(
	ctx context.Context, path string, body []byte,
) ([]byte, error) {
	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost, c.endpoint+path, bytes.NewReader(body),
	)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	res, err := c.httpCl.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errRetryable, err)
	}
	defer res.Body.Close()

	if res.StatusCode >= http.StatusInternalServerError {
		return nil, fmt.Errorf("%w: %d", errRetryable, res.StatusCode)
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(res.Body); err != nil {
		return nil, err
	}

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf(
			"%w: endpoint returned %d", ErrGeneration, res.StatusCode,
		)
	}
	return buf.Bytes(), nil
}
