package relay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Request carries one prompt to the upstream text-generation service
type Request struct {
	Prompt string `json:"prompt"`
	System string `json:"system"`
	Model  string `json:"model"`
	Seed   string `json:"seed,omitempty"`
}

// Result is the outcome of one relay attempt. Response is always set:
// upstream and transport failures are rendered into it as text so the
// exchange can be recorded like any other.
type Result struct {
	Response  string
	ElapsedMS int
}

// Client defines the interface to the upstream AI service
type Client interface {
	Call(ctx context.Context, req *Request) *Result
}

// HTTPClient implements Client over HTTP against a pollinations-style
// endpoint where the prompt is embedded in the URL path
type HTTPClient struct {
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
}

// NewHTTPClient creates a new HTTPClient
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		timeout: timeout,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Call sends the prompt upstream and waits for the text response. The
// outbound call runs on a detached context so it is not cancelled when
// the inbound connection drops; only the fixed timeout bounds it.
func (c *HTTPClient) Call(_ context.Context, req *Request) *Result {
	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	start := time.Now()

	body, err := json.Marshal(req)
	if err != nil {
		return &Result{
			Response:  fmt.Sprintf("Connection Error: %v", err),
			ElapsedMS: elapsedMS(start),
		}
	}

	endpoint := c.baseURL + "/" + url.PathEscape(req.Prompt)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return &Result{
			Response:  fmt.Sprintf("Connection Error: %v", err),
			ElapsedMS: elapsedMS(start),
		}
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return &Result{
			Response:  fmt.Sprintf("Connection Error: %v", err),
			ElapsedMS: elapsedMS(start),
		}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Result{
			Response:  fmt.Sprintf("Connection Error: %v", err),
			ElapsedMS: elapsedMS(start),
		}
	}

	if resp.StatusCode != http.StatusOK {
		return &Result{
			Response:  fmt.Sprintf("API Error: %d - %s", resp.StatusCode, string(respBody)),
			ElapsedMS: elapsedMS(start),
		}
	}

	return &Result{
		Response:  string(respBody),
		ElapsedMS: elapsedMS(start),
	}
}

func elapsedMS(start time.Time) int {
	return int(time.Since(start).Milliseconds())
}
