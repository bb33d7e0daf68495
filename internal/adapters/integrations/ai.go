// Package integrations holds the adapters for external collaborators. The
// implementations here keep the wiring and error contracts in place while
// the actual provider clients are pending.
package integrations

import (
	"context"

	"github.com/kanbanboard/core/internal/ports"
)

// PendingAnalyzer satisfies ports.Analyzer for the configured provider
// while the provider client itself is pending.
type PendingAnalyzer struct {
	provider string
}

func NewPendingAnalyzer(provider string) *PendingAnalyzer {
	return &PendingAnalyzer{provider: provider}
}

// Provider returns the configured provider name.
func (a *PendingAnalyzer) Provider() string {
	return a.provider
}

func (a *PendingAnalyzer) Analyze(ctx context.Context, req ports.AnalysisRequest) (string, error) {
	return "AI analyze - Phase 3 implementation pending", nil
}
