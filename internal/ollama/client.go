package ollama

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ollama/ollama/api"
)

const (
	// DefaultModel is the model used when none is configured
	DefaultModel = "llama3"
	// DefaultHost is the default Ollama API endpoint
	DefaultHost = "http://localhost:11434"

	// serverProbeTimeout bounds the health check request
	serverProbeTimeout = 2 * time.Second
	// modelProbeTimeout bounds the model readiness request
	modelProbeTimeout = 3 * time.Second
)

// Client wraps the Ollama API client for probing and generation
type Client struct {
	api   *api.Client
	host  string
	model string
}

// NewClient creates a new Ollama client for the given host and model
func NewClient(host, model string) (*Client, error) {
	if host == "" {
		host = DefaultHost
	}
	if model == "" {
		model = DefaultModel
	}

	base, err := url.Parse(host)
	if err != nil {
		return nil, fmt.Errorf("failed to parse ollama host %q: %w", host, err)
	}

	return &Client{
		api:   api.NewClient(base, http.DefaultClient),
		host:  host,
		model: model,
	}, nil
}

// ServerReady reports whether the Ollama server is accepting requests.
// It never returns an error; any failure reads as not ready.
func (c *Client) ServerReady(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, serverProbeTimeout)
	defer cancel()

	_, err := c.api.List(ctx)
	return err == nil
}

// ModelReady reports whether the configured model is loaded and servable.
// Same contract as ServerReady: failures read as not ready.
func (c *Client) ModelReady(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, modelProbeTimeout)
	defer cancel()

	_, err := c.api.Show(ctx, &api.ShowRequest{Model: c.model})
	return err == nil
}

// Complete submits a prompt as a single non-streaming generation request
// and returns the trimmed completion text.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	stream := false
	req := &api.GenerateRequest{
		Model:  c.model,
		Prompt: prompt,
		Stream: &stream,
	}

	var completion string
	err := c.api.Generate(ctx, req, func(resp api.GenerateResponse) error {
		completion = resp.Response
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("failed to generate completion: %w", err)
	}

	return strings.TrimSpace(completion), nil
}

// Host returns the configured endpoint
func (c *Client) Host() string {
	return c.host
}

// Model returns the configured model name
func (c *Client) Model() string {
	return c.model
}
