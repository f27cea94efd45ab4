package questionbank

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/edforge/readypath/internal/llm"
)

func checkInput() GenerateInput {
	return GenerateInput{
		AssessmentTitle: "Unit exam",
		ObjectiveID:     "glo-1",
		TargetCells:     []string{"1A", "2B"},
		Count:           2,
		Difficulty:      3,
		WeakObjectives:  []string{"glo-1b"},
	}
}

func validSetJSON() json.RawMessage {
	return json.RawMessage(`{
		"questions": [
			{
				"text": "Which term names the recall of a definition?",
				"choices": ["Remember", "Create", "Evaluate", "Analyze"],
				"answer": "Remember",
				"explanation": "Recalling a definition is the Remember level.",
				"cell_code": "1A",
				"difficulty": 3
			},
			{
				"text": "Which statement best explains the relationship between the two concepts?",
				"choices": ["They are independent", "The first causes the second", "They are synonyms", "They alternate"],
				"answer": "The first causes the second",
				"explanation": "The concepts are causally linked.",
				"cell_code": "2B",
				"difficulty": 3
			}
		]
	}`)
}

func TestLLMBank_GeneratesValidatedSet(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: validSetJSON()},
	)
	bank := New(mock, DefaultConfig())

	questions, err := bank.Generate(context.Background(), checkInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(questions) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(questions))
	}
	if questions[0].CellCode != "1A" || questions[1].CellCode != "2B" {
		t.Errorf("cell codes = %s, %s, want 1A, 2B", questions[0].CellCode, questions[1].CellCode)
	}

	// The prompt should carry the assessment context.
	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 LLM call, got %d", mock.CallCount())
	}
	userMsg := mock.Calls[0].Messages[0].Content
	for _, want := range []string{"Unit exam", "glo-1", "1A", "2B", "glo-1b"} {
		if !strings.Contains(userMsg, want) {
			t.Errorf("user message missing %q", want)
		}
	}
	if mock.Calls[0].Schema == nil {
		t.Error("expected a structured output schema on the request")
	}
}

func TestLLMBank_RejectsWrongCount(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`{"questions": []}`)},
	)
	bank := New(mock, DefaultConfig())

	_, err := bank.Generate(context.Background(), checkInput())
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %T (%v)", err, err)
	}
	if verr.Validator != "count" {
		t.Errorf("validator = %q, want count", verr.Validator)
	}
}

func TestLLMBank_RejectsOffTargetCell(t *testing.T) {
	bad := json.RawMessage(`{
		"questions": [
			{
				"text": "A question on the wrong cell.",
				"choices": ["a", "b", "c", "d"],
				"answer": "a",
				"explanation": "x",
				"cell_code": "6D",
				"difficulty": 3
			},
			{
				"text": "Filler so the count matches.",
				"choices": ["a", "b", "c", "d"],
				"answer": "a",
				"explanation": "x",
				"cell_code": "1A",
				"difficulty": 3
			}
		]
	}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: bad})
	bank := New(mock, DefaultConfig())

	_, err := bank.Generate(context.Background(), checkInput())
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %T (%v)", err, err)
	}
	if verr.Validator != "structural" {
		t.Errorf("validator = %q, want structural", verr.Validator)
	}
}

func TestLLMBank_PropagatesProviderError(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}},
	)
	bank := New(mock, DefaultConfig())

	_, err := bank.Generate(context.Background(), checkInput())
	var unavail *llm.ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got %T (%v)", err, err)
	}
}

func TestLLMBank_RejectsBadCount(t *testing.T) {
	bank := New(llm.NewMockProvider(), DefaultConfig())

	input := checkInput()
	input.Count = 0
	if _, err := bank.Generate(context.Background(), input); err == nil {
		t.Error("expected error for zero count")
	}

	input.Count = 1000
	if _, err := bank.Generate(context.Background(), input); err == nil {
		t.Error("expected error for count above the maximum")
	}
}

func TestStaticBank_Deterministic(t *testing.T) {
	bank := NewStaticBank()
	input := checkInput()
	input.Count = 5

	first, err := bank.Generate(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := bank.Generate(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(first) != 5 {
		t.Fatalf("expected 5 questions, got %d", len(first))
	}
	for i := range first {
		if first[i].Text != second[i].Text {
			t.Errorf("question %d differs between runs", i)
		}
	}

	// Round-robin over the two target cells.
	wantCells := []string{"1A", "2B", "1A", "2B", "1A"}
	for i, q := range first {
		if q.CellCode != wantCells[i] {
			t.Errorf("question %d cell = %s, want %s", i, q.CellCode, wantCells[i])
		}
	}

	// Every static question passes the standard validator chain.
	cfg := DefaultConfig()
	for i := range first {
		for _, v := range cfg.Validators {
			if verr := v.Validate(&first[i], input); verr != nil {
				t.Errorf("question %d fails %s: %v", i, v.Name(), verr)
			}
		}
	}
}
