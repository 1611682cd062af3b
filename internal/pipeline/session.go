package pipeline

import (
	"github.com/google/uuid"

	"github.com/john14759/SC4052-cloud-assignments/internal/prompt"
)

// Session holds the state for one interactive analysis session: the selected
// analysis type and complexity plus the most recent report. It is owned by a
// single flow of control and needs no locking.
type Session struct {
	ID           string
	AnalysisType prompt.AnalysisType
	Complexity   prompt.Complexity
	LastReport   *Report

	catalog *prompt.Catalog
}

// NewSession creates a session with the default selections
// (Documentation, basic), matching a fresh UI state.
func NewSession() *Session {
	return &Session{
		ID:           uuid.NewString(),
		AnalysisType: prompt.Documentation,
		Complexity:   prompt.Basic,
		catalog:      prompt.NewCatalog(),
	}
}

// Select updates the session's analysis type and complexity.
func (s *Session) Select(t prompt.AnalysisType, level prompt.Complexity) {
	s.AnalysisType = t
	s.Complexity = level
}

// Prompt returns the preset instruction for the current selections.
func (s *Session) Prompt() string {
	return s.catalog.Get(s.AnalysisType, s.Complexity)
}
