package persona

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/havenlink/advisor/internal/model"
	"github.com/havenlink/advisor/pkg/anthropic"
)

// AIClassification is the structured reply expected from the language model.
type AIClassification struct {
	Persona       model.Persona `json:"persona"`
	Confidence    float64       `json:"confidence"`
	Reasoning     string        `json:"reasoning,omitempty"`
	KeyIndicators []string      `json:"key_indicators,omitempty"`
}

// AIClassifier classifies a prospect description into a persona. A nil
// classification (with or without an error) means no usable answer was
// produced; callers degrade to the rule engine and never propagate the
// error to the caller of the pipeline.
type AIClassifier interface {
	Classify(ctx context.Context, text string, eligible []model.PersonaProfile) (*AIClassification, error)
}

// NoopClassifier is the AIClassifier used when no API key is configured.
type NoopClassifier struct{}

// Classify always reports unavailable.
func (NoopClassifier) Classify(context.Context, string, []model.PersonaProfile) (*AIClassification, error) {
	return nil, nil
}

const classifySystemPrompt = `You classify smart-home sales prospects into exactly one customer persona from a provided list. Respond with a valid JSON object only: {"persona": "<persona-id>", "confidence": <0.0-1.0>, "reasoning": "<one sentence>", "key_indicators": ["<short phrase>", ...]}`

const classifyUserPrompt = `Eligible personas:
%s

Prospect description:
%s`

// ClaudeClassifier implements AIClassifier on top of the Anthropic API.
// Single attempt per request; failures are logged and reported as
// unavailable, never as pipeline errors.
type ClaudeClassifier struct {
	client  anthropic.Client
	model   string
	timeout time.Duration
	limiter *rate.Limiter
}

// ClaudeClassifierOpts tunes the classifier.
type ClaudeClassifierOpts struct {
	Model          string
	Timeout        time.Duration
	RequestsPerSec float64
}

// NewClaudeClassifier creates a classifier backed by the given client.
func NewClaudeClassifier(client anthropic.Client, opts ClaudeClassifierOpts) *ClaudeClassifier {
	if opts.Model == "" {
		opts.Model = "claude-haiku-4-5-20251001"
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}
	rps := opts.RequestsPerSec
	if rps <= 0 {
		rps = 2
	}
	return &ClaudeClassifier{
		client:  client,
		model:   opts.Model,
		timeout: opts.Timeout,
		limiter: rate.NewLimiter(rate.Limit(rps), 1),
	}
}

// Classify submits the text and eligible persona list to the model and
// parses the structured reply. Malformed confidence is clamped to [0,1];
// total parse failure returns (nil, nil).
func (c *ClaudeClassifier) Classify(ctx context.Context, text string, eligible []model.PersonaProfile) (*AIClassification, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, eris.Wrap(err, "persona: rate limit wait")
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var personaLines []string
	for _, prof := range eligible {
		personaLines = append(personaLines, fmt.Sprintf("- %s (typical budget $%.0f-$%.0f)",
			prof.Persona, prof.BudgetRange.Min, prof.BudgetRange.Max))
	}

	prompt := fmt.Sprintf(classifyUserPrompt, strings.Join(personaLines, "\n"), text)
	resp, err := c.client.CreateMessage(ctx, anthropic.MessageRequest{
		Model:     c.model,
		MaxTokens: 256,
		System:    anthropic.BuildCachedSystemBlocks(classifySystemPrompt),
		Messages: []anthropic.Message{
			{Role: "user", Content: prompt},
		},
	})
	if err != nil {
		return nil, eris.Wrap(err, "persona: classify message")
	}

	resp.Usage.LogCost(c.model, "persona-classify")

	cls := parseAIClassification(extractText(resp), eligible)
	if cls == nil {
		zap.L().Warn("persona: ai reply unparseable, degrading to rules")
	}
	return cls, nil
}

// extractText joins the text blocks of a response.
func extractText(resp *anthropic.MessageResponse) string {
	if resp == nil {
		return ""
	}
	var parts []string
	for _, block := range resp.Content {
		if block.Text != "" {
			parts = append(parts, block.Text)
		}
	}
	return strings.Join(parts, "\n")
}

// parseAIClassification decodes the model reply. Returns nil when the JSON
// cannot be decoded or names a persona outside the eligible set.
func parseAIClassification(text string, eligible []model.PersonaProfile) *AIClassification {
	text = cleanJSON(text)

	var cls AIClassification
	if err := json.Unmarshal([]byte(text), &cls); err != nil {
		return nil
	}

	valid := false
	for _, prof := range eligible {
		if prof.Persona == cls.Persona {
			valid = true
			break
		}
	}
	if !valid {
		return nil
	}

	if cls.Confidence < 0 {
		cls.Confidence = 0
	}
	if cls.Confidence > 1 {
		cls.Confidence = 1
	}
	return &cls
}

// cleanJSON strips markdown code fences and surrounding prose, keeping the
// outermost JSON object.
func cleanJSON(text string) string {
	text = strings.TrimSpace(text)

	// Strip markdown code fences.
	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
	} else if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
	}

	// Find first { and last }.
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start >= 0 && end > start {
		text = text[start : end+1]
	}

	return strings.TrimSpace(text)
}
