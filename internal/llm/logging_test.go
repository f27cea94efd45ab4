package llm

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/edforge/readypath/internal/store"
)

type recordingEventRepo struct {
	mu     sync.Mutex
	events []store.QuestionEventData
	err    error
}

func (r *recordingEventRepo) AppendQuestionEvent(_ context.Context, data store.QuestionEventData) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.events = append(r.events, data)
	return nil
}

func TestLogging_RecordsSuccessEvent(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{
			Content: json.RawMessage(`{"ok":true}`),
			Usage:   Usage{InputTokens: 100, OutputTokens: 50, TotalTokens: 150},
		},
	)
	repo := &recordingEventRepo{}
	p := WithLogging(mock, repo)

	ctx := WithPurpose(context.Background(), "readiness-check")
	_, err := p.Generate(ctx, Request{Messages: []Message{{Role: RoleUser, Content: "go"}}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(repo.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(repo.events))
	}
	ev := repo.events[0]
	if !ev.Success {
		t.Error("expected success event")
	}
	if ev.Purpose != "readiness-check" {
		t.Errorf("purpose = %q, want readiness-check", ev.Purpose)
	}
	if ev.InputTokens != 100 || ev.OutputTokens != 50 {
		t.Errorf("tokens = (%d, %d), want (100, 50)", ev.InputTokens, ev.OutputTokens)
	}
}

func TestLogging_RecordsFailureEvent(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}},
	)
	repo := &recordingEventRepo{}
	p := WithLogging(mock, repo)

	_, err := p.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected error")
	}
	if len(repo.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(repo.events))
	}
	ev := repo.events[0]
	if ev.Success {
		t.Error("expected failure event")
	}
	if ev.ErrorMessage == "" {
		t.Error("expected error message on failure event")
	}
}

func TestLogging_RepoFailureDoesNotFailRequest(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"ok":true}`)},
	)
	repo := &recordingEventRepo{err: errors.New("db locked")}
	p := WithLogging(mock, repo)

	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("logging failure must not fail the request: %v", err)
	}
	if string(resp.Content) != `{"ok":true}` {
		t.Fatalf("unexpected content: %s", resp.Content)
	}
}

func TestModelCost(t *testing.T) {
	c := ModelCost{InputPerMTok: 1, OutputPerMTok: 5}
	got := c.Cost(1_000_000, 1_000_000)
	if got != 6 {
		t.Errorf("Cost = %v, want 6", got)
	}
	if LookupCost("no-such-model") != nil {
		t.Error("expected nil cost for unknown model")
	}
	if LookupCost("gpt-4o-mini") == nil {
		t.Error("expected pricing for gpt-4o-mini")
	}
}
