package taxonomy

import (
	"errors"
	"testing"
)

func TestCellCodeRoundTrip(t *testing.T) {
	for _, c := range CognitiveLevels() {
		for _, k := range KnowledgeTypes() {
			code := CellCode(c, k)
			gotC, gotK, err := ParseCellCode(code)
			if err != nil {
				t.Fatalf("ParseCellCode(%q): %v", code, err)
			}
			if gotC != c || gotK != k {
				t.Errorf("ParseCellCode(%q) = (%d, %d), want (%d, %d)", code, gotC, gotK, c, k)
			}
		}
	}
}

func TestCellCodeFormat(t *testing.T) {
	tests := []struct {
		c    CognitiveLevel
		k    KnowledgeType
		want string
	}{
		{Remember, Factual, "1A"},
		{Remember, Metacognitive, "1D"},
		{Apply, Procedural, "3C"},
		{Create, Metacognitive, "6D"},
	}
	for _, tt := range tests {
		if got := CellCode(tt.c, tt.k); got != tt.want {
			t.Errorf("CellCode(%d, %d) = %q, want %q", tt.c, tt.k, got, tt.want)
		}
	}
}

func TestParseCellCodeInvalid(t *testing.T) {
	invalid := []string{"", "1", "0A", "7A", "1E", "1a", "A1", "11", "1AB", "xx"}
	for _, code := range invalid {
		_, _, err := ParseCellCode(code)
		if err == nil {
			t.Errorf("ParseCellCode(%q): expected error", code)
			continue
		}
		var invErr *ErrInvalidCellCode
		if !errors.As(err, &invErr) {
			t.Errorf("ParseCellCode(%q): error type %T, want *ErrInvalidCellCode", code, err)
		}
	}
}

func TestRegistryHas24Cells(t *testing.T) {
	cells := AllCells()
	if len(cells) != 24 {
		t.Fatalf("AllCells() = %d cells, want 24", len(cells))
	}
	// Grid order: 1A first, 6D last.
	if cells[0].Code != "1A" {
		t.Errorf("first cell = %q, want 1A", cells[0].Code)
	}
	if cells[23].Code != "6D" {
		t.Errorf("last cell = %q, want 6D", cells[23].Code)
	}
	for _, cell := range cells {
		if cell.Name == "" {
			t.Errorf("cell %s has empty name", cell.Code)
		}
		if cell.ExamplePrompt == "" {
			t.Errorf("cell %s has empty example prompt", cell.Code)
		}
	}
}

func TestGetCell(t *testing.T) {
	cell, err := GetCell("2B")
	if err != nil {
		t.Fatalf("GetCell(2B): %v", err)
	}
	if cell.Cognitive != Understand || cell.Knowledge != Conceptual {
		t.Errorf("GetCell(2B) = (%d, %d), want (Understand, Conceptual)", cell.Cognitive, cell.Knowledge)
	}

	if _, err := GetCell("9Z"); err == nil {
		t.Error("GetCell(9Z): expected error")
	}
	if ValidCellCode("9Z") {
		t.Error("ValidCellCode(9Z) = true, want false")
	}
	if !ValidCellCode("6D") {
		t.Error("ValidCellCode(6D) = false, want true")
	}
}
