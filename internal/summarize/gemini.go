package summarize

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

const systemInstruction = "You are an expert document summarization assistant. Analyze the text provided " +
	"and generate a single, concise description (max 2 sentences) that highlights the " +
	"most important details, such as the document's type, purpose, dates, or key entities. " +
	"The description will be used as metadata in a document management system. Be brief and professional."

const userPreamble = "Please summarize the following document text:"

// Gemini is the generation-service client. One request per call, no
// streaming, no retries.
type Gemini struct {
	client  *genai.Client
	model   string
	timeout time.Duration
	logger  *slog.Logger
}

func NewGemini(ctx context.Context, apiKey, model string, timeout time.Duration, logger *slog.Logger) (*Gemini, error) {
	if logger == nil {
		logger = slog.Default()
	}
	cl, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("init gemini client: %w", err)
	}
	if model == "" {
		model = "gemini-2.5-flash"
	}
	return &Gemini{client: cl, model: model, timeout: timeout, logger: logger}, nil
}

func (g *Gemini) Close() error {
	if g.client != nil {
		return g.client.Close()
	}
	return nil
}

func (g *Gemini) Summarize(ctx context.Context, text string) (string, error) {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	input := TruncateInput(text)
	start := time.Now()
	g.logger.Info("summarize.start", "model", g.model, "text_len", len(input))

	m := g.client.GenerativeModel(g.model)
	m.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(systemInstruction)},
	}

	resp, err := m.GenerateContent(ctx, genai.Text(userPreamble), genai.Text(input))
	if err != nil {
		if isServiceFailure(err) {
			g.logger.Error("summarize.api_error", "model", g.model, "error", err)
			return "", &APIError{Err: err}
		}
		g.logger.Error("summarize.failed", "model", g.model, "error", err)
		return "", err
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("empty response from model %s", g.model)
	}

	var b strings.Builder
	for _, p := range resp.Candidates[0].Content.Parts {
		if t, ok := p.(genai.Text); ok {
			b.WriteString(string(t))
		}
	}

	desc := ClampDescription(b.String())
	g.logger.Info("summarize.ok", "model", g.model, "desc_len", len(desc), "elapsed_ms", time.Since(start).Milliseconds())
	return desc, nil
}

// isServiceFailure reports whether the error came from the generation
// service itself: an API error response, or the bounded call timing out.
// Both are stored as service failures rather than unexpected ones.
func isServiceFailure(err error) bool {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		return true
	}
	return errors.Is(err, context.DeadlineExceeded)
}

var _ Summarizer = (*Gemini)(nil)
