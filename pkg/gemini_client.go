package pkg

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const APIBaseURL = "https://aiplatform.googleapis.com/v1/publishers/google/models"

// Upstream failure classes surfaced to callers. Anything else from the
// generation service is reported as a plain error.
var (
	ErrRateLimited    = errors.New("gemini: rate limit exceeded")
	ErrInvalidRequest = errors.New("gemini: bad request")
)

type Part struct {
	Text string `json:"text,omitempty"`
}

type Content struct {
	Role  string `json:"role,omitempty"`
	Parts []Part `json:"parts"`
}

type GenerationConfig struct {
	ResponseMIMEType string `json:"response_mime_type,omitempty"`
}

type GenerateContentRequest struct {
	SystemInstruction *Content          `json:"system_instruction,omitempty"`
	Contents          []Content         `json:"contents"`
	GenerationConfig  *GenerationConfig `json:"generation_config,omitempty"`
}

type Candidate struct {
	Content Content `json:"content"`
}

type GenerateContentResponse struct {
	Candidates []Candidate `json:"candidates"`
}

// Text concatenates the text parts of the first candidate.
func (r *GenerateContentResponse) Text() string {
	if len(r.Candidates) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, part := range r.Candidates[0].Content.Parts {
		sb.WriteString(part.Text)
	}
	return sb.String()
}

// GeminiClient talks to the Gemini REST API
type GeminiClient struct {
	client  *http.Client
	apiKey  string
	model   string
	baseURL string
}

func NewGeminiClient(apiKey, model string) *GeminiClient {
	return &GeminiClient{
		client:  &http.Client{},
		apiKey:  apiKey,
		model:   model,
		baseURL: APIBaseURL,
	}
}

// NewGeminiClientWithBaseURL points the client at a non-default endpoint.
func NewGeminiClientWithBaseURL(apiKey, model, baseURL string) *GeminiClient {
	c := NewGeminiClient(apiKey, model)
	c.baseURL = baseURL
	return c
}

func (c *GeminiClient) post(ctx context.Context, method, query string, body interface{}) (*http.Response, error) {
	url := fmt.Sprintf("%s/%s:%s?key=%s%s", c.baseURL, c.model, method, c.apiKey, query)

	jsonBody, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		defer resp.Body.Close()
		bodyBytes, _ := io.ReadAll(resp.Body)
		switch resp.StatusCode {
		case http.StatusTooManyRequests:
			return nil, fmt.Errorf("%w: %s", ErrRateLimited, string(bodyBytes))
		case http.StatusBadRequest:
			return nil, fmt.Errorf("%w: %s", ErrInvalidRequest, string(bodyBytes))
		default:
			return nil, fmt.Errorf("request failed with status %d: %s", resp.StatusCode, string(bodyBytes))
		}
	}

	return resp, nil
}

// GenerateContent handles non-streaming generation
func (c *GeminiClient) GenerateContent(ctx context.Context, request GenerateContentRequest) (*GenerateContentResponse, error) {
	resp, err := c.post(ctx, "generateContent", "", request)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	var response GenerateContentResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return &response, nil
}

// StreamGenerateContent handles streaming generation over SSE. The handler
// is invoked once per chunk, in arrival order; returning an error stops the
// stream.
func (c *GeminiClient) StreamGenerateContent(ctx context.Context, request GenerateContentRequest, handler func(*GenerateContentResponse) error) error {
	resp, err := c.post(ctx, "streamGenerateContent", "&alt=sse", request)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		// Skip empty lines and comments
		if line == "" || strings.HasPrefix(line, ":") {
			continue
		}
		if !strings.HasPrefix(line, "data:") {
			continue
		}

		data := strings.TrimSpace(line[5:])
		if data == "" || data == "[DONE]" {
			continue
		}

		var response GenerateContentResponse
		if err := json.Unmarshal([]byte(data), &response); err != nil {
			return fmt.Errorf("failed to unmarshal stream chunk: %w", err)
		}

		if err := handler(&response); err != nil {
			return err
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading stream: %w", err)
	}

	return nil
}
