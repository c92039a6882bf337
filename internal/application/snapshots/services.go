package snapshots

import (
	"context"
	"time"

	"github.com/google/uuid"

	domain "github.com/grahamrowe82/munger-snap/internal/domain/thesis"
)

// Service implements the analyze use-case. Stateless and safe for
// concurrent use: nothing crosses requests except the read-only tables
// inside the domain package.
type Service struct {
	Clock Clock
}

// Clock abstraction so tests can pin AnalyzedAt
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// AnalyzeCommand carries the raw user inputs. The HTTP layer owns
// validation; by the time a command reaches here the thesis is trimmed
// and within the length cap.
type AnalyzeCommand struct {
	Thesis   string
	PE       string
	FCFYield string
}

// AnalysisResult wraps the domain snapshot with request metadata.
// It exists only in the response; nothing is persisted.
type AnalysisResult struct {
	ID         string          `json:"id"`
	AnalyzedAt time.Time       `json:"analyzed_at"`
	Snapshot   domain.Snapshot `json:"snapshot"`
}

// Analyze scores the thesis. The only error it can surface is a
// cancelled context; malformed inputs degrade into verdict statuses
// inside the domain layer.
func (s *Service) Analyze(ctx context.Context, cmd AnalyzeCommand) (AnalysisResult, error) {
	if err := ctx.Err(); err != nil {
		return AnalysisResult{}, err
	}

	snap := domain.Analyze(cmd.Thesis, cmd.PE, cmd.FCFYield)

	return AnalysisResult{
		ID:         uuid.New().String(),
		AnalyzedAt: s.Clock.Now(),
		Snapshot:   snap,
	}, nil
}
