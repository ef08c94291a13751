package fleetservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с FleetService (реестр яхт)
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента FleetService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetYacht получает яхту по slug
func (c *Client) GetYacht(ctx context.Context, slug string) (*Yacht, error) {
	requestURL := fmt.Sprintf("%s/internal/yachts/%s", c.baseURL, url.PathEscape(slug))
	return c.getYacht(ctx, requestURL)
}

// GetYachtByID получает яхту по внутреннему идентификатору
func (c *Client) GetYachtByID(ctx context.Context, id int64) (*Yacht, error) {
	requestURL := fmt.Sprintf("%s/internal/yachts/by-id/%d", c.baseURL, id)
	return c.getYacht(ctx, requestURL)
}

func (c *Client) getYacht(ctx context.Context, requestURL string) (*Yacht, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return nil, ErrYachtNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var yacht Yacht
	if err := json.NewDecoder(resp.Body).Decode(&yacht); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &yacht, nil
}
