// Package taxonomy defines the fixed two-dimensional skill grid used for
// mastery tracking: six cognitive process levels crossed with four knowledge
// types, 24 cells total. The grid is immutable for the lifetime of the
// system; every mastery record references one of its cell codes.
package taxonomy

import "fmt"

// CognitiveLevel is a Bloom cognitive process level, ordered from lowest
// (Remember) to highest (Create) complexity.
type CognitiveLevel int

const (
	Remember CognitiveLevel = iota + 1
	Understand
	Apply
	Analyze
	Evaluate
	Create
)

// CognitiveLevels returns all cognitive levels in ascending complexity order.
func CognitiveLevels() []CognitiveLevel {
	return []CognitiveLevel{Remember, Understand, Apply, Analyze, Evaluate, Create}
}

// Label returns the display name for a cognitive level.
func (c CognitiveLevel) Label() string {
	switch c {
	case Remember:
		return "Remember"
	case Understand:
		return "Understand"
	case Apply:
		return "Apply"
	case Analyze:
		return "Analyze"
	case Evaluate:
		return "Evaluate"
	case Create:
		return "Create"
	default:
		return "Unknown"
	}
}

// KnowledgeType is a Bloom knowledge dimension.
type KnowledgeType int

const (
	Factual KnowledgeType = iota + 1
	Conceptual
	Procedural
	Metacognitive
)

// KnowledgeTypes returns all knowledge types in grid order (A through D).
func KnowledgeTypes() []KnowledgeType {
	return []KnowledgeType{Factual, Conceptual, Procedural, Metacognitive}
}

// Label returns the display name for a knowledge type.
func (k KnowledgeType) Label() string {
	switch k {
	case Factual:
		return "Factual"
	case Conceptual:
		return "Conceptual"
	case Procedural:
		return "Procedural"
	case Metacognitive:
		return "Metacognitive"
	default:
		return "Unknown"
	}
}

// letter returns the code letter (A-D) for a knowledge type.
func (k KnowledgeType) letter() byte {
	return byte('A' + int(k) - 1)
}

// ErrInvalidCellCode reports a cell code that does not match the fixed grid.
// This is a programmer error and is never recovered from.
type ErrInvalidCellCode struct {
	Code string
}

func (e *ErrInvalidCellCode) Error() string {
	return fmt.Sprintf("invalid taxonomy cell code %q", e.Code)
}

// CellCode formats a (cognitive, knowledge) pair as a two-character cell
// code, e.g. (Apply, Procedural) -> "3C".
func CellCode(c CognitiveLevel, k KnowledgeType) string {
	return fmt.Sprintf("%d%c", int(c), k.letter())
}

// ParseCellCode parses a two-character cell code back into its grid
// coordinates. Returns *ErrInvalidCellCode for anything outside the grid.
func ParseCellCode(code string) (CognitiveLevel, KnowledgeType, error) {
	if len(code) != 2 {
		return 0, 0, &ErrInvalidCellCode{Code: code}
	}
	c := int(code[0] - '0')
	if c < 1 || c > 6 {
		return 0, 0, &ErrInvalidCellCode{Code: code}
	}
	k := int(code[1]-'A') + 1
	if k < 1 || k > 4 {
		return 0, 0, &ErrInvalidCellCode{Code: code}
	}
	return CognitiveLevel(c), KnowledgeType(k), nil
}

// Cell is one entry of the skill grid.
type Cell struct {
	Code          string
	Cognitive     CognitiveLevel
	Knowledge     KnowledgeType
	Name          string // e.g. "Apply / Procedural"
	ExamplePrompt string
}

// registry holds all 24 cells keyed by code.
var registry map[string]*Cell

// ordered holds the cells in grid order: cognitive major, knowledge minor.
var ordered []*Cell

func init() {
	registry = make(map[string]*Cell, 24)
	for _, c := range CognitiveLevels() {
		for _, k := range KnowledgeTypes() {
			code := CellCode(c, k)
			cell := &Cell{
				Code:          code,
				Cognitive:     c,
				Knowledge:     k,
				Name:          c.Label() + " / " + k.Label(),
				ExamplePrompt: examplePrompts[int(c)-1][int(k)-1],
			}
			registry[code] = cell
			ordered = append(ordered, cell)
		}
	}
}

// GetCell returns the cell for a code, or an *ErrInvalidCellCode.
func GetCell(code string) (*Cell, error) {
	if cell, ok := registry[code]; ok {
		return cell, nil
	}
	return nil, &ErrInvalidCellCode{Code: code}
}

// ValidCellCode reports whether code names an existing grid cell.
func ValidCellCode(code string) bool {
	_, ok := registry[code]
	return ok
}

// AllCells returns every cell in grid order (1A, 1B, ... 6D).
func AllCells() []*Cell {
	out := make([]*Cell, len(ordered))
	copy(out, ordered)
	return out
}
