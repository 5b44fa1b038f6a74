package utils

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// maxResponseBodySize is the maximum response body size (10 MB). Enforced via
// io.LimitReader to prevent unbounded memory allocation from rogue responses.
const maxResponseBodySize int64 = 10 * 1024 * 1024

// DoPostSync performs a synchronous HTTP POST request with a JSON body and
// returns the response status code together with the raw response body.
//
// Unlike a generic "decode into struct" helper, the body is returned as-is so
// that callers can distinguish transport failures (returned as an error) from
// upstream HTTP errors and payload-level failures, which each adapter maps to
// its own error taxonomy.
//
// Error Handling Strategy:
//   - Marshalling and request-construction failures return an error
//   - Transport errors (connection refused, timeout, context cancellation)
//     return the error from the underlying client, wrapped
//   - Non-2xx responses are NOT treated as errors here; the status code and
//     body are handed back for the caller to interpret
//
// The response body is always closed via defer, logging any close error
// without overriding the primary result.
func DoPostSync(ctx context.Context, client *http.Client, url string, apiKey string, body any) (int, []byte, error) {
	httpClient := client
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	jsonBody, err := json.Marshal(body)
	if err != nil {
		return 0, nil, fmt.Errorf("error marshaling body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(jsonBody))
	if err != nil {
		return 0, nil, fmt.Errorf("error creating request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+apiKey)
	}

	requestStart := time.Now()
	res, err := httpClient.Do(req)
	requestDuration := time.Since(requestStart)

	if err != nil {
		slog.Debug("http request failed", "url", url, "duration", requestDuration, "error", err.Error())
		return 0, nil, fmt.Errorf("error sending request: %w", err)
	}
	defer CloseWithLog(res.Body)

	// Cap body reads to maxResponseBodySize to prevent unbounded memory allocation.
	respBody, err := io.ReadAll(io.LimitReader(res.Body, maxResponseBodySize))
	if err != nil {
		return res.StatusCode, nil, fmt.Errorf("error reading response body: %w", err)
	}

	slog.Debug("http response received", "url", url, "status", res.StatusCode,
		"body_size", len(respBody), "duration", requestDuration)

	return res.StatusCode, respBody, nil
}

// CloseWithLog closes c, logging any close error at warn level. Intended for
// use in defer statements where a close failure must not override the primary
// error of the surrounding function.
func CloseWithLog(c io.Closer) {
	if err := c.Close(); err != nil {
		slog.Warn("failed to close response body", "error", err.Error())
	}
}
