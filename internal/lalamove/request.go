package lalamove

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"
)

// doRequest signs and sends one upstream call, returning the raw response
// body. Each call is independent: no retries, no caching, one outbound
// request per inbound request.
func (s *Service) doRequest(ctx context.Context, cfg StoreConfig, method, path, body string) ([]byte, error) {
	// Resolve credentials first so a missing key fails before any
	// network call instead of surfacing as an upstream 401.
	apiKey, err := s.credentials.GetRequiredSecret(secretAPIKey)
	if err != nil {
		return nil, err
	}
	secret, err := s.credentials.GetRequiredSecret(secretAPISecret)
	if err != nil {
		return nil, err
	}

	_, signature := signRequest(secret, method, path, body, s.now())

	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, s.baseURL(cfg)+path, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create lalamove request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-LLM-Market", cfg.Market)
	req.Header.Set("Authorization", fmt.Sprintf("hmac %s:%s", apiKey, signature))
	req.Header.Set("X-Request-Id", uuid.NewString())

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send lalamove request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read lalamove response: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &UpstreamError{
			Status: resp.StatusCode,
			Body:   string(respBody),
		}
	}

	return respBody, nil
}
