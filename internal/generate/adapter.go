package generate

import (
	"context"
	"log"
	"strings"

	"newsflow/internal/i18n"
	"newsflow/internal/metrics"
)

const (
	opBody    = "body"
	opSummary = "summary"
)

// Adapter turns generator calls into display-ready strings in the active
// language. A nil generator means the capability is not configured.
type Adapter struct {
	gen    TextGenerator
	loc    *i18n.Localizer
	logger *log.Logger
}

func NewAdapter(gen TextGenerator, loc *i18n.Localizer, logger *log.Logger) *Adapter {
	if logger == nil {
		logger = log.Default()
	}
	return &Adapter{gen: gen, loc: loc, logger: logger}
}

func (a *Adapter) Available() bool {
	return a.gen != nil
}

// GenerateArticleBody never fails: unavailability and provider errors come
// back as localized messages.
func (a *Adapter) GenerateArticleBody(ctx context.Context, title, category string) string {
	if !a.Available() {
		metrics.RecordGeneration(opBody, metrics.OutcomeUnavailable)
		return a.loc.Translate("genUnavailable")
	}

	prompt := bodyPrompt(a.loc.Language(), title, a.loc.Translate(category))
	text, err := a.gen.Generate(context.WithoutCancel(ctx), prompt)
	if err != nil {
		a.logger.Printf("generate body for %q: %v", title, err)
		metrics.RecordGeneration(opBody, metrics.OutcomeFailed)
		return a.loc.Translate("genFailed")
	}
	if strings.TrimSpace(text) == "" {
		metrics.RecordGeneration(opBody, metrics.OutcomeFailed)
		return a.loc.Translate("genFailed")
	}

	metrics.RecordGeneration(opBody, metrics.OutcomeOK)
	return text
}

// GenerateSummary returns "" when generation is unavailable or fails.
func (a *Adapter) GenerateSummary(ctx context.Context, content string) string {
	if !a.Available() {
		metrics.RecordGeneration(opSummary, metrics.OutcomeUnavailable)
		return ""
	}

	text, err := a.gen.Generate(context.WithoutCancel(ctx), summaryPrompt(a.loc.Language(), content))
	if err != nil {
		a.logger.Printf("generate summary: %v", err)
		metrics.RecordGeneration(opSummary, metrics.OutcomeFailed)
		return ""
	}
	if strings.TrimSpace(text) == "" {
		metrics.RecordGeneration(opSummary, metrics.OutcomeFailed)
		return ""
	}

	metrics.RecordGeneration(opSummary, metrics.OutcomeOK)
	return text
}
