package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
)

const (
	// GroqAPIEndpoint is the OpenAI-compatible Groq chat completion endpoint.
	GroqAPIEndpoint = "https://api.groq.com/openai/v1/chat/completions"
	// GroqModel is the default model to use.
	GroqModel = "llama-3.3-70b-versatile"
	// generationTemperature matches the reference generation settings.
	generationTemperature = 0.7
	// maxCompletionTokens bounds the generated resume length.
	maxCompletionTokens = 4096
)

// Client represents a Groq API client.
type Client struct {
	apiKey     string
	model      string
	httpClient *http.Client
	endpoint   string
}

// NewClient creates a new Groq API client.
func NewClient(apiKey, model string) (client *Client) {
	if model == "" {
		model = GroqModel
	}
	client = &Client{
		apiKey:   apiKey,
		model:    model,
		endpoint: GroqAPIEndpoint,
		httpClient: &http.Client{
			Timeout: 120 * time.Second,
		},
	}
	return client
}

// GenerateResume sends the formatting prompt built from the intake and
// returns the generated resume as a newline-delimited text blob.
func (c *Client) GenerateResume(ctx context.Context, req ResumeRequest) (resume string, err error) {
	prompt := buildResumePrompt(req)

	resume, err = c.sendRequest(ctx, prompt)
	if err != nil {
		err = errors.Wrap(err, "resume generation request failed")
		return resume, err
	}

	// Guard against moderation sentinels masquerading as content.
	err = checkModeration(resume)
	if err != nil {
		return resume, err
	}

	return resume, err
}

// sendRequest sends a chat completion request to the Groq API.
func (c *Client) sendRequest(ctx context.Context, prompt string) (responseText string, err error) {
	// Build request
	chatReq := ChatRequest{
		Model:       c.model,
		Temperature: generationTemperature,
		MaxTokens:   maxCompletionTokens,
		Messages: []Message{
			{
				Role:    "user",
				Content: prompt,
			},
		},
	}

	var reqBody []byte
	reqBody, err = json.Marshal(chatReq)
	if err != nil {
		err = errors.Wrap(err, "failed to marshal request")
		return responseText, err
	}

	// Create HTTP request
	var httpReq *http.Request
	httpReq, err = http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(reqBody))
	if err != nil {
		err = errors.Wrap(err, "failed to create HTTP request")
		return responseText, err
	}

	// Set headers
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	// Send request
	var resp *http.Response
	resp, err = c.httpClient.Do(httpReq)
	if err != nil {
		err = errors.Wrap(err, "HTTP request failed")
		return responseText, err
	}
	defer resp.Body.Close()

	// Read response body
	var respBody []byte
	respBody, err = io.ReadAll(resp.Body)
	if err != nil {
		err = errors.Wrap(err, "failed to read response body")
		return responseText, err
	}

	// Check status code
	if resp.StatusCode != http.StatusOK {
		err = errors.Errorf("API request failed with status %d: %s", resp.StatusCode, string(respBody))
		return responseText, err
	}

	// Parse chat response
	var chatResp ChatResponse
	err = json.Unmarshal(respBody, &chatResp)
	if err != nil {
		err = errors.Wrapf(err, "failed to parse chat response: %s", string(respBody))
		return responseText, err
	}

	// Extract text content
	if len(chatResp.Choices) == 0 {
		err = errors.New("no choices in chat response")
		return responseText, err
	}

	responseText = chatResp.Choices[0].Message.Content

	return responseText, err
}

// checkModeration rejects responses the provider's content moderation
// replaced with a bare sentinel instead of a resume.
func checkModeration(responseText string) (err error) {
	switch strings.ToLower(strings.TrimSpace(responseText)) {
	case "safe", "unsafe", "":
		err = errors.New("content moderation triggered: rephrase the input or use a different model")
		return err
	}
	return err
}
