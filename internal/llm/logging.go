package llm

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/edforge/readypath/internal/store"
)

// LoggingProvider is a decorator that records every LLM request as a
// question event for audit and cost tracking.
type LoggingProvider struct {
	inner  Provider
	events store.QuestionEventRepo
}

// WithLogging wraps a Provider with question event logging.
func WithLogging(p Provider, events store.QuestionEventRepo) Provider {
	return &LoggingProvider{inner: p, events: events}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	purpose := PurposeFrom(ctx)

	resp, err := l.inner.Generate(ctx, req)

	latencyMs := time.Since(start).Milliseconds()

	data := store.QuestionEventData{
		Provider:  l.inner.ModelID(),
		Model:     l.inner.ModelID(),
		Purpose:   purpose,
		LatencyMs: latencyMs,
		Success:   err == nil,
	}

	if resp != nil {
		data.InputTokens = resp.Usage.InputTokens
		data.OutputTokens = resp.Usage.OutputTokens
		data.Model = resp.Model
		if cost := LookupCost(resp.Model); cost != nil {
			data.CostUSD = cost.Cost(resp.Usage.InputTokens, resp.Usage.OutputTokens)
		}
	}

	if err != nil {
		data.ErrorMessage = err.Error()
	}

	// Log the event but don't fail the request if logging fails.
	if logErr := l.events.AppendQuestionEvent(ctx, data); logErr != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log question event: %v\n", logErr)
	}

	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}
