package ai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/SuperMag99/FootPrintX/internal/config"
)

// FallbackMessage is shown whenever the assistant cannot answer.
const FallbackMessage = "Failed to connect to AI assistant. Please try again later."

// EmptyMessage is shown when the provider answers with no text.
const EmptyMessage = "No response generated."

// ErrNotConfigured is returned by New when no provider or key is set.
var ErrNotConfigured = errors.New("AI not configured")

// Assistant answers free-text questions about dork strategy. It never sees
// generated dorks.
type Assistant interface {
	Ask(ctx context.Context, prompt string) (string, error)
}

const systemInstruction = "You are a professional OSINT researcher. Keep answers technical, safe, and focused on passive reconnaissance. Always emphasize legality."

const userPrompt = `You are an OSINT expert assistant for a tool called FootprintX. The user is using a dork generator tool.
Analyze the following query or scenario and suggest advanced dork strategies, explaining the risks and ethical boundaries.
User Query: %s`

const temperature = 0.7

func buildPrompt(question string) string {
	return fmt.Sprintf(userPrompt, strings.TrimSpace(question))
}

// New creates an Assistant from the given AI config.
func New(ctx context.Context, cfg *config.AIConfig, apiKey string) (Assistant, error) {
	if cfg == nil || apiKey == "" {
		return nil, ErrNotConfigured
	}

	client := &http.Client{Timeout: 30 * time.Second}

	switch cfg.Provider {
	case "gemini", "":
		model := cfg.Model
		if model == "" {
			model = "gemini-3-flash-preview"
		}
		return newGeminiProvider(ctx, apiKey, model, client)
	case "claude":
		model := cfg.Model
		if model == "" {
			model = "claude-haiku-4-5-20251001"
		}
		return &claudeProvider{apiKey: apiKey, model: model, client: client, baseURL: claudeBaseURL}, nil
	case "openai":
		model := cfg.Model
		if model == "" {
			model = "gpt-4o-mini"
		}
		return &openaiProvider{apiKey: apiKey, model: model, client: client, baseURL: openaiBaseURL}, nil
	default:
		return nil, fmt.Errorf("unknown AI provider: %q (valid: gemini, claude, openai)", cfg.Provider)
	}
}

// Consult asks a and always returns displayable text. Errors and panics are
// logged and replaced by FallbackMessage.
func Consult(ctx context.Context, a Assistant, question string, logger *zap.Logger) (answer string) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if a == nil {
		return FallbackMessage
	}
	defer func() {
		if r := recover(); r != nil {
			logger.Error("assistant panicked", zap.Any("panic", r))
			answer = FallbackMessage
		}
	}()

	text, err := a.Ask(ctx, question)
	if err != nil {
		logger.Warn("assistant request failed", zap.Error(err))
		return FallbackMessage
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return EmptyMessage
	}
	return text
}
