package remote

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/avast/retry-go"
	"github.com/google/uuid"
	"resty.dev/v3"

	"github.com/flashleaf/flashleaf/internal/card"
)

// DefaultRetryAttempts is the number of extra attempts for transient
// remote failures.
const DefaultRetryAttempts = 2

// RESTClient implements Client against a PostgREST-style API: a cards
// table keyed (id, user_id), a fsrs_parameters table keyed user_id, an
// append-only review_logs table, and presets plus a preset_words join
// table.
type RESTClient struct {
	httpClient       *resty.Client
	session          Session
	maxRetryAttempts uint
}

// NewRESTClient creates a client for the service at baseURL. apiKey is the
// service's public API key; per-user authorization comes from the session.
func NewRESTClient(baseURL, apiKey string, session Session, timeout time.Duration, retryAttempts uint) *RESTClient {
	client := resty.New()
	client.SetBaseURL(strings.TrimRight(baseURL, "/") + "/rest/v1")
	client.SetHeader("apikey", apiKey)
	client.SetHeader("Content-Type", "application/json")
	if timeout > 0 {
		client.SetTimeout(timeout)
	}
	return &RESTClient{
		httpClient:       client,
		session:          session,
		maxRetryAttempts: retryAttempts,
	}
}

// Close releases the underlying HTTP client.
func (c *RESTClient) Close() error {
	return c.httpClient.Close()
}

// isRetryableError reports whether an error is worth another attempt.
func isRetryableError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
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

func (c *RESTClient) do(ctx context.Context, op func() error) error {
	err := retry.Do(
		func() error {
			if err := op(); err != nil {
				if !isRetryableError(err) {
					return retry.Unrecoverable(err)
				}
				return err
			}
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(c.maxRetryAttempts+1),
		retry.DelayType(func(n uint, err error, config *retry.Config) time.Duration {
			return retry.BackOffDelay(n, err, config)
		}),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

func (c *RESTClient) request(ctx context.Context) *resty.Request {
	return c.httpClient.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+c.session.AccessToken())
}

// FetchCards returns every card the remote holds for the current user.
func (c *RESTClient) FetchCards(ctx context.Context) ([]card.Card, error) {
	userID, ok := c.session.UserID()
	if !ok {
		return nil, nil
	}

	var rows []wireCard
	err := c.do(ctx, func() error {
		response, err := c.request(ctx).
			SetQueryParam("user_id", "eq."+userID).
			SetQueryParam("select", "*").
			SetResult(&rows).
			Get("/cards")
		if err != nil {
			return fmt.Errorf("httpClient.Get(cards) > %w", err)
		}
		if response.IsError() {
			return fmt.Errorf("response error %d: %s", response.StatusCode(), response.String())
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	cards := make([]card.Card, 0, len(rows))
	for _, row := range rows {
		parsed, err := row.toCard()
		if err != nil {
			return nil, fmt.Errorf("toCard(%s) > %w", row.ID, err)
		}
		cards = append(cards, parsed)
	}
	return cards, nil
}

// UpsertCard creates or replaces the user's copy of a card.
func (c *RESTClient) UpsertCard(ctx context.Context, crd card.Card) error {
	userID, ok := c.session.UserID()
	if !ok {
		return nil
	}

	return c.do(ctx, func() error {
		response, err := c.request(ctx).
			SetQueryParam("on_conflict", "id,user_id").
			SetHeader("Prefer", "resolution=merge-duplicates").
			SetBody([]wireCard{cardToWire(crd, userID)}).
			Post("/cards")
		if err != nil {
			return fmt.Errorf("httpClient.Post(cards) > %w", err)
		}
		if response.IsError() {
			return fmt.Errorf("response error %d: %s", response.StatusCode(), response.String())
		}
		return nil
	})
}

// DeleteCard removes the user's copy of a card.
func (c *RESTClient) DeleteCard(ctx context.Context, id string) error {
	userID, ok := c.session.UserID()
	if !ok {
		return nil
	}

	return c.do(ctx, func() error {
		response, err := c.request(ctx).
			SetQueryParam("id", "eq."+id).
			SetQueryParam("user_id", "eq."+userID).
			Delete("/cards")
		if err != nil {
			return fmt.Errorf("httpClient.Delete(cards) > %w", err)
		}
		if response.IsError() {
			return fmt.Errorf("response error %d: %s", response.StatusCode(), response.String())
		}
		return nil
	})
}

// FetchParameters returns the user's scheduler parameters, or (nil, nil)
// when the remote has none.
func (c *RESTClient) FetchParameters(ctx context.Context) (*card.Parameters, error) {
	userID, ok := c.session.UserID()
	if !ok {
		return nil, nil
	}

	var rows []wireParameters
	err := c.do(ctx, func() error {
		response, err := c.request(ctx).
			SetQueryParam("user_id", "eq."+userID).
			SetQueryParam("select", "parameters").
			SetResult(&rows).
			Get("/fsrs_parameters")
		if err != nil {
			return fmt.Errorf("httpClient.Get(fsrs_parameters) > %w", err)
		}
		if response.IsError() {
			return fmt.Errorf("response error %d: %s", response.StatusCode(), response.String())
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	params := rows[0].Parameters
	return &params, nil
}

// UpsertParameters replaces the user's scheduler parameters.
func (c *RESTClient) UpsertParameters(ctx context.Context, params card.Parameters) error {
	userID, ok := c.session.UserID()
	if !ok {
		return nil
	}

	return c.do(ctx, func() error {
		response, err := c.request(ctx).
			SetQueryParam("on_conflict", "user_id").
			SetHeader("Prefer", "resolution=merge-duplicates").
			SetBody([]wireParameters{{UserID: userID, Parameters: params}}).
			Post("/fsrs_parameters")
		if err != nil {
			return fmt.Errorf("httpClient.Post(fsrs_parameters) > %w", err)
		}
		if response.IsError() {
			return fmt.Errorf("response error %d: %s", response.StatusCode(), response.String())
		}
		return nil
	})
}

// AppendReviewLog appends one immutable review log entry.
func (c *RESTClient) AppendReviewLog(ctx context.Context, log card.ReviewLog) error {
	userID, ok := c.session.UserID()
	if !ok {
		return nil
	}

	return c.do(ctx, func() error {
		response, err := c.request(ctx).
			SetBody([]wireReviewLog{reviewLogToWire(log, userID)}).
			Post("/review_logs")
		if err != nil {
			return fmt.Errorf("httpClient.Post(review_logs) > %w", err)
		}
		if response.IsError() {
			return fmt.Errorf("response error %d: %s", response.StatusCode(), response.String())
		}
		return nil
	})
}

// FetchPreset returns a preset with its word ids, or (nil, nil) when no
// preset with that id exists.
func (c *RESTClient) FetchPreset(ctx context.Context, id string) (*card.Preset, error) {
	if _, ok := c.session.UserID(); !ok {
		return nil, nil
	}
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("invalid preset id %q: %w", id, err)
	}

	var rows []wirePreset
	err := c.do(ctx, func() error {
		response, err := c.request(ctx).
			SetQueryParam("id", "eq."+id).
			SetResult(&rows).
			Get("/presets")
		if err != nil {
			return fmt.Errorf("httpClient.Get(presets) > %w", err)
		}
		if response.IsError() {
			return fmt.Errorf("response error %d: %s", response.StatusCode(), response.String())
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	var wordRows []wirePresetWord
	err = c.do(ctx, func() error {
		response, err := c.request(ctx).
			SetQueryParam("preset_id", "eq."+id).
			SetQueryParam("select", "preset_id,word_id").
			SetResult(&wordRows).
			Get("/preset_words")
		if err != nil {
			return fmt.Errorf("httpClient.Get(preset_words) > %w", err)
		}
		if response.IsError() {
			return fmt.Errorf("response error %d: %s", response.StatusCode(), response.String())
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	words := make([]string, 0, len(wordRows))
	for _, row := range wordRows {
		words = append(words, row.WordID)
	}
	preset, err := rows[0].toPreset(words)
	if err != nil {
		return nil, fmt.Errorf("toPreset(%s) > %w", id, err)
	}
	return &preset, nil
}

// FetchPublicPresets lists presets marked public, without their word sets.
func (c *RESTClient) FetchPublicPresets(ctx context.Context) ([]card.Preset, error) {
	if _, ok := c.session.UserID(); !ok {
		return nil, nil
	}

	var rows []wirePreset
	err := c.do(ctx, func() error {
		response, err := c.request(ctx).
			SetQueryParam("is_public", "eq.true").
			SetResult(&rows).
			Get("/presets")
		if err != nil {
			return fmt.Errorf("httpClient.Get(presets) > %w", err)
		}
		if response.IsError() {
			return fmt.Errorf("response error %d: %s", response.StatusCode(), response.String())
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	presets := make([]card.Preset, 0, len(rows))
	for _, row := range rows {
		preset, err := row.toPreset(nil)
		if err != nil {
			return nil, fmt.Errorf("toPreset(%s) > %w", row.ID, err)
		}
		presets = append(presets, preset)
	}
	return presets, nil
}
