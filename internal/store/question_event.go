package store

import (
	"context"
	"time"

	"github.com/edforge/readypath/ent"
	"github.com/edforge/readypath/ent/questionevent"
)

// questionEventRepo implements QuestionEventRepo using the ent client.
type questionEventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *questionEventRepo) AppendQuestionEvent(ctx context.Context, data QuestionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return &ErrPersistence{Op: "next sequence", Err: err}
	}

	builder := r.client.QuestionEvent.Create().
		SetSequence(seqNum).
		SetProvider(data.Provider).
		SetModel(data.Model).
		SetPurpose(data.Purpose).
		SetInputTokens(data.InputTokens).
		SetOutputTokens(data.OutputTokens).
		SetLatencyMs(data.LatencyMs).
		SetCostUsd(data.CostUSD).
		SetSuccess(data.Success)

	if data.ErrorMessage != "" {
		builder = builder.SetErrorMessage(data.ErrorMessage)
	}

	if _, err := builder.Save(ctx); err != nil {
		return &ErrPersistence{Op: "save question event", Err: err}
	}
	return nil
}

// QuestionEventRecord is one stored audit event, read side.
type QuestionEventRecord struct {
	Sequence     int64
	Timestamp    time.Time
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	CostUSD      float64
	Success      bool
	ErrorMessage string
}

// ListQuestionEvents returns the most recent audit events, newest first.
func (s *Store) ListQuestionEvents(ctx context.Context, limit int) ([]*QuestionEventRecord, error) {
	q := s.client.QuestionEvent.Query().
		Order(ent.Desc(questionevent.FieldSequence))
	if limit > 0 {
		q = q.Limit(limit)
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, &ErrUnavailable{Op: "list question events", Err: err}
	}

	out := make([]*QuestionEventRecord, 0, len(rows))
	for _, e := range rows {
		out = append(out, &QuestionEventRecord{
			Sequence:     e.Sequence,
			Timestamp:    e.Timestamp,
			Provider:     e.Provider,
			Model:        e.Model,
			Purpose:      e.Purpose,
			InputTokens:  e.InputTokens,
			OutputTokens: e.OutputTokens,
			LatencyMs:    e.LatencyMs,
			CostUSD:      e.CostUsd,
			Success:      e.Success,
			ErrorMessage: e.ErrorMessage,
		})
	}
	return out, nil
}
