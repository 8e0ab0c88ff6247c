package translate

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Env carries the model-runtime endpoint settings, read from TRANSLATOR_*
// environment variables. These belong to the model server, not to the
// pipeline, so they stay out of the CLI surface.
type Env struct {
	BaseURL string `default:"http://127.0.0.1:8080"`
	APIKey  string
}

// Endpoint resolves the model server endpoint from the environment.
func Endpoint() (Env, error) {
	var env Env
	if err := envconfig.Process("translator", &env); err != nil {
		return Env{}, err
	}
	return env, nil
}

type ClientOptions struct {
	BaseURL   string
	APIKey    string
	Model     string
	Timeout   time.Duration
	MaxTokens int
}

// Client submits chunk text to a local completion server (mlx_lm.server,
// llama.cpp and friends expose the same /v1/completions shape) and returns
// the raw model output. Sanitization is the caller's concern.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	model      string
	timeout    time.Duration
	maxTokens  int
}

func NewClient(opts ClientOptions) *Client {
	if opts.Model == "" {
		opts.Model = DefaultModel
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 120 * time.Second
	}
	if opts.MaxTokens <= 0 {
		if isPlamoTranslate(opts.Model) {
			opts.MaxTokens = 1024
		} else {
			opts.MaxTokens = 200
		}
	}
	return &Client{
		httpClient: &http.Client{},
		baseURL:    strings.TrimSuffix(opts.BaseURL, "/"),
		apiKey:     opts.APIKey,
		model:      opts.Model,
		timeout:    opts.Timeout,
		maxTokens:  opts.MaxTokens,
	}
}

type completionRequest struct {
	Model       string   `json:"model"`
	Prompt      string   `json:"prompt"`
	MaxTokens   int      `json:"max_tokens"`
	Temperature float64  `json:"temperature"`
	Stop        []string `json:"stop,omitempty"`
}

type completionResponse struct {
	Choices []struct {
		Text string `json:"text"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// Translate blocks until the model responds or the per-call timeout elapses.
func (c *Client) Translate(ctx context.Context, text string) (string, error) {
	prompt := BuildPrompt(c.model, text)

	body := completionRequest{
		Model:     c.model,
		Prompt:    prompt,
		MaxTokens: c.maxTokens,
	}
	if isPlamoTranslate(c.model) {
		body.Stop = []string{plamoOpMarker}
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return "", &Error{Reason: ReasonModelError, Err: err}
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/completions", bytes.NewReader(payload))
	if err != nil {
		return "", &Error{Reason: ReasonUnavailable, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", c.classify(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", c.classify(err)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusServiceUnavailable:
		return "", &Error{Reason: ReasonUnavailable, Err: fmt.Errorf("model %q not served (http %d)", c.model, resp.StatusCode)}
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return "", &Error{Reason: ReasonModelError, Err: fmt.Errorf("http %d: %s", resp.StatusCode, snippet(data))}
	}

	var parsed completionResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		return "", &Error{Reason: ReasonModelError, Err: fmt.Errorf("malformed response: %w", err)}
	}
	if parsed.Error != nil {
		return "", &Error{Reason: ReasonModelError, Err: fmt.Errorf("%s: %s", parsed.Error.Type, parsed.Error.Message)}
	}
	if len(parsed.Choices) == 0 {
		return "", &Error{Reason: ReasonModelError, Err: errors.New("response contains no choices")}
	}

	return parsed.Choices[0].Text, nil
}

func (c *Client) classify(err error) *Error {
	if errors.Is(err, context.DeadlineExceeded) {
		return &Error{Reason: ReasonTimeout, Err: fmt.Errorf("no response within %s", c.timeout)}
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return &Error{Reason: ReasonTimeout, Err: fmt.Errorf("no response within %s", c.timeout)}
	}
	return &Error{Reason: ReasonUnavailable, Err: err}
}

func snippet(data []byte) string {
	s := strings.TrimSpace(string(data))
	if len(s) > 200 {
		s = s[:200] + "..."
	}
	return s
}
