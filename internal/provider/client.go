// Package provider содержит клиенты публичных API: Nominatim, Open-Meteo,
// OpenWeatherMap, Overpass и OSRM.
package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// StatusError возвращается, когда внешний API ответил не 2xx
type StatusError struct {
	Provider   string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s returned status %d", e.Provider, e.StatusCode)
}

// httpClient - общий HTTP-клиент с таймаутом и заголовком User-Agent
// (Nominatim блокирует запросы без него)
type httpClient struct {
	client    *http.Client
	userAgent string
}

func newHTTPClient(timeout time.Duration, userAgent string) *httpClient {
	return &httpClient{
		client:    &http.Client{Timeout: timeout},
		userAgent: userAgent,
	}
}

// getBytes выполняет GET и возвращает тело ответа
func (c *httpClient) getBytes(ctx context.Context, provider, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to create request: %w", provider, err)
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: request failed: %w", provider, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &StatusError{Provider: provider, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to read response: %w", provider, err)
	}
	return body, nil
}

// getJSON выполняет GET и декодирует JSON-ответ в dst
func (c *httpClient) getJSON(ctx context.Context, provider, url string, dst any) error {
	body, err := c.getBytes(ctx, provider, url)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return fmt.Errorf("%s: failed to decode response: %w", provider, err)
	}
	return nil
}
