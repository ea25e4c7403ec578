package ai

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-scribe/internal/domain/entities"
	ucerrors "github.com/johnquangdev/meeting-scribe/internal/usecase/errors"
	"github.com/johnquangdev/meeting-scribe/pkg/ai"
)

// Stage names used in wrapped errors
const (
	StageSummarize = "summarize"
	StageChat      = "chat"
)

// ProviderError wraps a back-end failure with the stage and provider it came from
type ProviderError struct {
	Stage    string
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s with %s: %v", e.Stage, e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// Gateway routes summary and chat prompts to the configured back-ends.
// It makes exactly one call per invocation.
type Gateway struct {
	backends map[entities.Provider]ai.Generator
	logger   *zap.Logger
}

// NewGateway registers the back-ends whose initialisation succeeded. A nil
// generator marks that provider as unconfigured.
func NewGateway(backends map[entities.Provider]ai.Generator, logger *zap.Logger) *Gateway {
	if logger == nil {
		logger = zap.NewNop()
	}
	configured := make(map[entities.Provider]ai.Generator, len(backends))
	for p, g := range backends {
		if g != nil {
			configured[p] = g
		}
	}
	return &Gateway{backends: configured, logger: logger}
}

// Available lists configured providers in a stable order
func (g *Gateway) Available() []entities.Provider {
	out := make([]entities.Provider, 0, len(g.backends))
	for p := range g.backends {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// IsConfigured reports whether the provider can be called
func (g *Gateway) IsConfigured(p entities.Provider) bool {
	_, ok := g.backends[p]
	return ok
}

// ResolveSummaryProvider picks the provider a summary request will use.
// Unknown, empty or unconfigured keys resolve to Gemini.
func (g *Gateway) ResolveSummaryProvider(key string) entities.Provider {
	p, ok := entities.ParseProvider(key)
	if !ok || !g.IsConfigured(p) {
		return entities.DefaultProvider
	}
	return p
}

// Summarize sends prompt to the requested provider, falling back to Gemini. It
// returns the provider actually used.
func (g *Gateway) Summarize(ctx context.Context, prompt, key string) (string, entities.Provider, error) {
	p := g.ResolveSummaryProvider(key)
	if requested, ok := entities.ParseProvider(key); key != "" && (!ok || requested != p) {
		g.logger.Warn("summary provider unavailable, falling back",
			zap.String("requested", key),
			zap.String("provider", p.String()),
		)
	}

	text, err := g.call(ctx, StageSummarize, p, ai.GenerateRequest{
		SystemPrompt: SummarySystemPrompt,
		Prompt:       prompt,
	})
	return text, p, err
}

// Chat sends prompt to the requested provider. An empty key means Gemini, and
// there is no fallback for unknown or unconfigured keys.
func (g *Gateway) Chat(ctx context.Context, prompt, key string) (string, entities.Provider, error) {
	p := entities.DefaultProvider
	if strings.TrimSpace(key) != "" {
		parsed, ok := entities.ParseProvider(key)
		if !ok {
			return "", entities.Provider(key), &ProviderError{
				Stage:    StageChat,
				Provider: key,
				Err:      ucerrors.ErrUnknownProvider,
			}
		}
		p = parsed
	}

	text, err := g.call(ctx, StageChat, p, ai.GenerateRequest{
		SystemPrompt: ChatSystemPrompt,
		Prompt:       prompt,
	})
	return text, p, err
}

func (g *Gateway) call(ctx context.Context, stage string, p entities.Provider, req ai.GenerateRequest) (string, error) {
	backend, ok := g.backends[p]
	if !ok {
		return "", &ProviderError{Stage: stage, Provider: p.String(), Err: ucerrors.ErrProviderNotConfigured}
	}

	text, err := backend.Generate(ctx, req)
	if err != nil {
		g.logger.Error("provider call failed",
			zap.String("stage", stage),
			zap.String("provider", p.String()),
			zap.Error(err),
		)
		return "", &ProviderError{Stage: stage, Provider: p.String(), Err: err}
	}
	return text, nil
}
