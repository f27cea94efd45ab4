package questionbank

import "testing"

func validQuestion() Question {
	return Question{
		Text:        "Which option names the lowest cognitive level?",
		Choices:     []string{"Remember", "Apply", "Create", "Evaluate"},
		Answer:      "Remember",
		Explanation: "Remember is the first level of the grid.",
		CellCode:    "1A",
		Difficulty:  2,
	}
}

func TestStructuralValidator(t *testing.T) {
	v := &StructuralValidator{}
	input := GenerateInput{TargetCells: []string{"1A", "2B"}}

	tests := []struct {
		name    string
		mutate  func(q *Question)
		wantErr bool
	}{
		{"valid", func(q *Question) {}, false},
		{"empty text", func(q *Question) { q.Text = "" }, true},
		{"empty explanation", func(q *Question) { q.Explanation = "" }, true},
		{"difficulty too low", func(q *Question) { q.Difficulty = 0 }, true},
		{"difficulty too high", func(q *Question) { q.Difficulty = 6 }, true},
		{"invalid cell", func(q *Question) { q.CellCode = "9Z" }, true},
		{"off-target cell", func(q *Question) { q.CellCode = "6D" }, true},
		{"target cell 2B", func(q *Question) { q.CellCode = "2B" }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := validQuestion()
			tt.mutate(&q)
			err := v.Validate(&q, input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestStructuralValidatorNoTargetCells(t *testing.T) {
	v := &StructuralValidator{}
	q := validQuestion()
	q.CellCode = "6D"
	// With no target cell constraint any grid cell is acceptable.
	if err := v.Validate(&q, GenerateInput{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestChoiceValidator(t *testing.T) {
	v := &ChoiceValidator{}

	tests := []struct {
		name    string
		mutate  func(q *Question)
		wantErr bool
	}{
		{"valid", func(q *Question) {}, false},
		{"three choices", func(q *Question) { q.Choices = q.Choices[:3] }, true},
		{"five choices", func(q *Question) { q.Choices = append(q.Choices, "Extra") }, true},
		{"empty choice", func(q *Question) { q.Choices[2] = "" }, true},
		{"duplicate choice", func(q *Question) { q.Choices[2] = q.Choices[1] }, true},
		{"answer not a choice", func(q *Question) { q.Answer = "Synthesize" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := validQuestion()
			tt.mutate(&q)
			err := v.Validate(&q, GenerateInput{})
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
