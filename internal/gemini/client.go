package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

const apiKeyHeader = "X-goog-api-key"

// maxResponseBytes caps how much of an upstream reply is read.
const maxResponseBytes = 4 << 20

type Options struct {
	BaseURL    string
	APIVersion string
	Model      string
	APIKey     string
	Timeout    time.Duration
}

type Client struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
	logger     *logrus.Logger
}

func NewClient(opts Options, logger *logrus.Logger) *Client {
	return &Client{
		endpoint: fmt.Sprintf("%s/%s/models/%s:generateContent", opts.BaseURL, opts.APIVersion, opts.Model),
		apiKey:   opts.APIKey,
		httpClient: &http.Client{
			Timeout: opts.Timeout,
		},
		logger: logger,
	}
}

// Endpoint is the fully resolved generateContent URL.
func (c *Client) Endpoint() string {
	return c.endpoint
}

func (c *Client) GenerateContent(ctx context.Context, req GenerateContentRequest) (*GenerateContentResponse, error) {
	var response GenerateContentResponse
	if err := c.makeRequest(ctx, http.MethodPost, req, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

func (c *Client) makeRequest(ctx context.Context, method string, payload interface{}, result interface{}) error {
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	c.logger.WithFields(logrus.Fields{
		"method":       method,
		"url":          c.endpoint,
		"payload_size": len(jsonData),
	}).Debug("Making Gemini API request")

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint, bytes.NewReader(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set(apiKeyHeader, c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	responseBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	fields := logrus.Fields{
		"status_code":   resp.StatusCode,
		"url":           c.endpoint,
		"response_size": len(responseBody),
		"latency_ms":    time.Since(start).Milliseconds(),
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.WithFields(fields).WithField("response_body", string(responseBody)).Error("Gemini API returned an error")
		return newAPIError(resp.StatusCode, responseBody)
	}

	c.logger.WithFields(fields).WithField("response_body", string(responseBody)).Info("Gemini API response received")

	if err := json.Unmarshal(responseBody, result); err != nil {
		return fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return nil
}
