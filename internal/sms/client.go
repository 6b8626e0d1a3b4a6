package sms

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// GatewayClient posts messages to an SMS gateway's JSON API.
type GatewayClient struct {
	APIKey string
	URL    string
	From   string
	client HTTPClient
	logger *log.Logger
}

func NewGatewayClient(apiKey, url, from string, httpClient HTTPClient, logger *log.Logger) *GatewayClient {
	return &GatewayClient{APIKey: apiKey, URL: url, From: from, client: httpClient, logger: logger}
}

func (s *GatewayClient) Send(ctx context.Context, to, body string) error {
	payload, err := json.Marshal(map[string]string{
		"from": s.From,
		"to":   to,
		"body": body,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.URL, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.APIKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer func(body io.ReadCloser) {
		if err := body.Close(); err != nil {
			s.logger.Printf("failed to close response body: %v", err)
		}
	}(resp.Body)

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusAccepted {
		return fmt.Errorf("SMS gateway error: status %s", resp.Status)
	}
	return nil
}
