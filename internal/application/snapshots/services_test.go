package snapshots

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/grahamrowe82/munger-snap/internal/domain/thesis"
)

type fixedClock struct {
	t time.Time
}

func (c fixedClock) Now() time.Time { return c.t }

func TestAnalyze_StampsIDAndTime(t *testing.T) {
	now := time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC)
	svc := &Service{Clock: fixedClock{t: now}}

	result, err := svc.Analyze(context.Background(), AnalyzeCommand{
		Thesis: "Strong brand with buybacks.",
		PE:     "12",
	})
	require.NoError(t, err)

	_, err = uuid.Parse(result.ID)
	assert.NoError(t, err, "ID should be a uuid")
	assert.Equal(t, now, result.AnalyzedAt)
	assert.Len(t, result.Snapshot.Filters, 4)
}

func TestAnalyze_SnapshotIsDeterministic(t *testing.T) {
	svc := &Service{Clock: SystemClock{}}
	cmd := AnalyzeCommand{Thesis: "Strong brand with buybacks.", PE: "20", FCFYield: "3"}

	first, err := svc.Analyze(context.Background(), cmd)
	require.NoError(t, err)
	second, err := svc.Analyze(context.Background(), cmd)
	require.NoError(t, err)

	// Metadata differs per request; the scored snapshot must not.
	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, first.Snapshot, second.Snapshot)
}

func TestAnalyze_CancelledContext(t *testing.T) {
	svc := &Service{Clock: SystemClock{}}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Analyze(ctx, AnalyzeCommand{Thesis: "anything"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestAnalyze_PermissiveInputs(t *testing.T) {
	svc := &Service{Clock: SystemClock{}}

	result, err := svc.Analyze(context.Background(), AnalyzeCommand{Thesis: "", PE: "junk", FCFYield: ""})
	require.NoError(t, err)

	assert.Equal(t, domain.StatusFail, result.Snapshot.Filters[domain.FilterUnderstandable].Status)
	assert.Equal(t, domain.StatusNeedsData, result.Snapshot.Filters[domain.FilterMarginOfSafety].Status)
}
