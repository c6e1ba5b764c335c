// Package gemini implements question generation with the Gemini API.
package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"hash/fnv"
	"log/slog"
	"strings"
	"time"

	"github.com/avast/retry-go"
	"resty.dev/v3"

	"github.com/flashleaf/flashleaf/internal/inference"
)

const defaultModel = "gemini-2.0-flash-lite"

type Client struct {
	httpClient       *resty.Client
	model            string
	maxRetryAttempts uint
}

func NewClient(apiKey, model string, retryAttempts uint) *Client {
	if model == "" {
		model = defaultModel
	}
	client := resty.New()
	client.SetBaseURL("https://generativelanguage.googleapis.com/v1beta")
	client.SetHeader("x-goog-api-key", apiKey)
	client.SetHeader("Content-Type", "application/json")

	return &Client{
		httpClient:       client,
		model:            model,
		maxRetryAttempts: retryAttempts,
	}
}

func (client *Client) Close() error {
	return client.httpClient.Close()
}

// SetBaseURL overrides the API endpoint. Tests point it at a local server.
func (client *Client) SetBaseURL(baseURL string) {
	client.httpClient.SetBaseURL(baseURL)
}

type generateContentRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Role  string `json:"role"`
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateContentResponse struct {
	Candidates []candidate `json:"candidates"`
}

type candidate struct {
	Content content `json:"content"`
}

type generatedQuestion struct {
	Question    string   `json:"question"`
	Choices     []string `json:"choices"`
	CorrectWord string   `json:"correctWord"`
}

// isRetryableError determines if an error should trigger a retry
func isRetryableError(err error) bool {
	if err == nil {
		return false
	}

	errStr := err.Error()
	// Incomplete model output often shows up as a JSON parse failure.
	if strings.Contains(errStr, "json.Unmarshal") || strings.Contains(errStr, "unexpected end of JSON input") {
		return true
	}
	if strings.Contains(errStr, "connection refused") || strings.Contains(errStr, "i/o timeout") {
		return true
	}
	if strings.Contains(errStr, "response error 5") {
		return true
	}
	if strings.Contains(errStr, "response error 429") {
		return true
	}
	return false
}

// GenerateQuestion implements the inference.Client interface.
func (client *Client) GenerateQuestion(ctx context.Context, word string) (inference.Question, error) {
	var result inference.Question
	var lastErr error
	if err := retry.Do(
		func() error {
			question, err := client.generateQuestion(ctx, word)
			if err != nil {
				lastErr = err
				if !isRetryableError(err) {
					return retry.Unrecoverable(err)
				}
				return err
			}
			result = question
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(client.maxRetryAttempts+1),
		retry.DelayType(func(n uint, err error, config *retry.Config) time.Duration {
			return retry.BackOffDelay(n, err, config)
		}),
	); err != nil {
		// Return the underlying failure so callers can match on
		// inference.ErrMalformedResponse.
		if lastErr != nil {
			return inference.Question{}, lastErr
		}
		return inference.Question{}, err
	}
	return result, nil
}

func (client *Client) generateQuestion(ctx context.Context, word string) (inference.Question, error) {
	prompt := fmt.Sprintf(`Make a "fill in the blank" question with the word %q. The sentence should be in undergraduate level.

Also generate another three wrong words to make it a multi-choice question.

Make sure the sentence has adequate context in order to ensure only one answer is applicable.

Return the sentence and options in the following json format:

{"question": "", "choices": ["", "", ""], "correctWord": ""}`, word)

	requestBody := generateContentRequest{
		Contents: []content{
			{
				Role:  "user",
				Parts: []part{{Text: prompt}},
			},
		},
	}

	response, err := client.httpClient.R().
		SetContext(ctx).
		SetBody(requestBody).
		SetResult(&generateContentResponse{}).
		Post("/models/" + client.model + ":generateContent")
	if err != nil {
		return inference.Question{}, fmt.Errorf("httpClient.Post > %w", err)
	}
	if response.IsError() {
		return inference.Question{}, fmt.Errorf("response error %d: %s", response.StatusCode(), response.String())
	}

	responseBody := response.Result().(*generateContentResponse)
	if responseBody == nil || len(responseBody.Candidates) == 0 || len(responseBody.Candidates[0].Content.Parts) == 0 {
		return inference.Question{}, fmt.Errorf("empty response body or candidates: %s", response.String())
	}

	text := strings.TrimSpace(responseBody.Candidates[0].Content.Parts[0].Text)
	slog.Default().Debug("gemini response content",
		"word", word,
		"response", text,
	)

	question, err := parseQuestion(text)
	if err != nil {
		return inference.Question{}, fmt.Errorf("parseQuestion > %w", err)
	}
	return question, nil
}

// parseQuestion decodes the model output, strips Markdown fences and
// repairs a missing correct answer deterministically. Output that still
// fails validation is reported as inference.ErrMalformedResponse.
func parseQuestion(text string) (inference.Question, error) {
	cleaned := strings.TrimSpace(text)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	var decoded generatedQuestion
	if err := json.Unmarshal([]byte(cleaned), &decoded); err != nil {
		return inference.Question{}, fmt.Errorf("json.Unmarshal(%s) > %w", cleaned, err)
	}

	if decoded.Question == "" || decoded.CorrectWord == "" {
		return inference.Question{}, fmt.Errorf("%w: missing question or correct word", inference.ErrMalformedResponse)
	}
	if len(decoded.Choices) < inference.ChoiceCount-1 {
		return inference.Question{}, fmt.Errorf("%w: only %d choices", inference.ErrMalformedResponse, len(decoded.Choices))
	}

	choices := decoded.Choices
	if !contains(choices, decoded.CorrectWord) {
		// The model sometimes leaves the correct word out of the choices.
		if len(choices) < inference.ChoiceCount {
			choices = append(choices, decoded.CorrectWord)
		} else {
			choices[repairIndex(decoded.CorrectWord, len(choices))] = decoded.CorrectWord
		}
	}
	if len(choices) > inference.ChoiceCount {
		choices = choices[:inference.ChoiceCount]
		if !contains(choices, decoded.CorrectWord) {
			choices[repairIndex(decoded.CorrectWord, len(choices))] = decoded.CorrectWord
		}
	}
	if len(choices) != inference.ChoiceCount {
		return inference.Question{}, fmt.Errorf("%w: %d choices after repair", inference.ErrMalformedResponse, len(choices))
	}
	if !distinct(choices) {
		return inference.Question{}, fmt.Errorf("%w: duplicate choices", inference.ErrMalformedResponse)
	}

	correctIndex := indexOf(choices, decoded.CorrectWord)
	if correctIndex < 0 {
		return inference.Question{}, fmt.Errorf("%w: correct word missing from choices", inference.ErrMalformedResponse)
	}

	return inference.Question{
		Prompt:       decoded.Question,
		Choices:      choices,
		CorrectIndex: correctIndex,
	}, nil
}

// repairIndex picks a stable slot to overwrite with the correct word.
func repairIndex(word string, n int) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(word))
	return int(h.Sum32() % uint32(n))
}

func contains(values []string, target string) bool {
	return indexOf(values, target) >= 0
}

func indexOf(values []string, target string) int {
	for i, v := range values {
		if v == target {
			return i
		}
	}
	return -1
}

func distinct(values []string) bool {
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			return false
		}
		seen[v] = struct{}{}
	}
	return true
}
