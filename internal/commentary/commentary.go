// Package commentary fetches a one-line game-over quip from a text-generation
// service and falls back to canned lines keyed by score bracket.
package commentary

import (
	"context"
	"errors"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/duckdash/internal/config"
)

var (
	// ErrNoCredentials is returned when no API key is configured.
	ErrNoCredentials = errors.New("commentary: no API key configured")
	// ErrEmptyResponse is returned when the service answers without text.
	ErrEmptyResponse = errors.New("commentary: empty response")
)

// Provider produces commentary for a final score.
type Provider interface {
	Commentary(ctx context.Context, score int) (string, error)
}

// Fallback is an ordered list of score brackets.
type Fallback []config.FallbackBracket

var defaultFallback = Fallback{
	{Below: 500, Text: "Try using the jump button next time."},
	{Below: 1000, Text: "Not bad for a rookie."},
	{Below: 0, Text: "That was actually pretty good!"},
}

// Line returns the text of the first bracket matching score.
func (f Fallback) Line(score int) string {
	if len(f) == 0 {
		f = defaultFallback
	}
	for _, b := range f {
		if b.Below == 0 || score < b.Below {
			return b.Text
		}
	}
	return f[len(f)-1].Text
}

// Resolver bounds a provider lookup and substitutes the fallback on any failure.
type Resolver struct {
	provider Provider
	timeout  time.Duration
	fallback Fallback
	logger   *log.Logger
}

// NewResolver creates a resolver. A nil provider always yields the fallback.
func NewResolver(p Provider, timeout time.Duration, fallback Fallback, logger *log.Logger) *Resolver {
	if logger == nil {
		logger = log.Default()
	}
	if timeout <= 0 {
		timeout = 4 * time.Second
	}
	return &Resolver{
		provider: p,
		timeout:  timeout,
		fallback: fallback,
		logger:   logger,
	}
}

// FromConfig builds a resolver for the configured service. Missing
// credentials or a disabled service produce a fallback-only resolver.
func FromConfig(cfg config.CommentaryConfig, logger *log.Logger) *Resolver {
	timeout := time.Duration(cfg.Timeout * float64(time.Second))
	fallback := Fallback(cfg.Fallbacks)
	if !cfg.Enabled {
		return NewResolver(nil, timeout, fallback, logger)
	}

	client, err := NewGeminiClient(context.Background(), GeminiOptions{
		BaseURL:    cfg.Endpoint,
		APIVersion: cfg.APIVersion,
		Model:      cfg.Model,
		APIKey:     os.Getenv(cfg.APIKeyEnv),
	})
	if err != nil {
		if logger != nil {
			logger.Debug("commentary disabled", "reason", err)
		}
		return NewResolver(nil, timeout, fallback, logger)
	}
	return NewResolver(client, timeout, fallback, logger)
}

// Live reports whether lookups go to a provider.
func (r *Resolver) Live() bool {
	return r != nil && r.provider != nil
}

// Fallback returns the canned line for score.
func (r *Resolver) Fallback(score int) string {
	if r == nil {
		return defaultFallback.Line(score)
	}
	return r.fallback.Line(score)
}

type result struct {
	text string
	err  error
}

// Resolve returns commentary for score within the timeout. It never fails:
// errors, timeouts and empty answers all resolve to the fallback line.
func (r *Resolver) Resolve(ctx context.Context, score int) string {
	if !r.Live() {
		return r.Fallback(score)
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	done := make(chan result, 1)
	go func() {
		text, err := r.provider.Commentary(ctx, score)
		done <- result{text: text, err: err}
	}()

	select {
	case res := <-done:
		text := strings.TrimSpace(res.text)
		if res.err == nil && text == "" {
			res.err = ErrEmptyResponse
		}
		if res.err != nil {
			r.logger.Warn("commentary lookup failed", "score", score, "err", res.err)
			return r.Fallback(score)
		}
		return text
	case <-ctx.Done():
		r.logger.Warn("commentary lookup timed out", "score", score, "err", ctx.Err())
		return r.Fallback(score)
	}
}
