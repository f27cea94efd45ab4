// Package questionbank generates diagnostic questions for readiness
// checks using an LLM provider.
package questionbank

import "context"

// Bank produces diagnostic question sets.
type Bank interface {
	// Generate produces Count validated questions for the given input.
	// All configured validators are run before returning.
	Generate(ctx context.Context, input GenerateInput) ([]Question, error)
}
