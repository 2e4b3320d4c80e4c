package handlers

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/groverneev/editwars/internal/domain/entities"
	"github.com/groverneev/editwars/internal/domain/mocks"
	"github.com/groverneev/editwars/internal/domain/services"
)

func newContestedFixture() (*ContestedHandler, *mocks.RevisionSource) {
	service := services.NewAnalysisService(services.DefaultDetectionConfig())
	source := mocks.NewRevisionSource()
	return NewContestedHandler(service, source), source
}

func TestContestedHandler_Handle_FiltersQuietPages(t *testing.T) {
	handler, source := newContestedFixture()
	source.Random = []string{"Hot Topic", "Quiet Topic"}
	source.Revisions["Hot Topic"] = warHistory()
	source.Revisions["Quiet Topic"] = quietHistory()

	result, err := handler.Handle(context.Background(), ContestedOptions{SampleSize: 2})
	require.NoError(t, err)

	assert.Equal(t, 2, result.Scanned)
	assert.Equal(t, 0, result.Skipped)
	require.Len(t, result.Contested, 1)
	assert.Equal(t, "Hot Topic", result.Contested[0].PageTitle)
}

func TestContestedHandler_Handle_SortsByRevertRate(t *testing.T) {
	handler, source := newContestedFixture()

	// Same war appended to a longer quiet prefix dilutes the revert rate.
	diluted := append(quietHistory(), warHistory()...)
	for i := range diluted {
		diluted[i].Timestamp = time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC).
			Add(time.Duration(i) * time.Hour)
	}

	source.Random = []string{"Diluted", "Intense"}
	source.Revisions["Diluted"] = diluted
	source.Revisions["Intense"] = warHistory()

	result, err := handler.Handle(context.Background(), ContestedOptions{SampleSize: 2})
	require.NoError(t, err)

	require.Len(t, result.Contested, 2)
	assert.Equal(t, "Intense", result.Contested[0].PageTitle)
	assert.Greater(t, result.Contested[0].RevertRate, result.Contested[1].RevertRate)
}

func TestContestedHandler_Handle_SkipsShortHistories(t *testing.T) {
	handler, source := newContestedFixture()
	source.Random = []string{"Stub", "Hot Topic"}
	source.Revisions["Stub"] = quietHistory()[:1]
	source.Revisions["Hot Topic"] = warHistory()

	result, err := handler.Handle(context.Background(), ContestedOptions{
		SampleSize:   2,
		MinRevisions: 3,
	})
	require.NoError(t, err)

	assert.Equal(t, 2, result.Scanned)
	assert.Equal(t, 1, result.Skipped)
	require.Len(t, result.Contested, 1)
}

func TestContestedHandler_Handle_IncludeContext(t *testing.T) {
	handler, source := newContestedFixture()
	source.Random = []string{"Hot Topic"}
	source.Revisions["Hot Topic"] = warHistory()
	source.Protected["Hot Topic"] = &entities.ProtectionStatus{Protected: true}

	result, err := handler.Handle(context.Background(), ContestedOptions{
		SampleSize:     1,
		IncludeContext: true,
	})
	require.NoError(t, err)

	require.Len(t, result.Contested, 1)
	require.NotNil(t, result.Contested[0].Protection)
	assert.True(t, result.Contested[0].Protection.Protected)
}

func TestContestedHandler_Handle_SampleError(t *testing.T) {
	handler, source := newContestedFixture()
	source.Err = errors.New("api unreachable")

	_, err := handler.Handle(context.Background(), ContestedOptions{SampleSize: 5})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sampling random pages")
}

func TestContestedHandler_Handle_CanceledContext(t *testing.T) {
	handler, source := newContestedFixture()
	source.Random = []string{"Hot Topic"}
	source.Revisions["Hot Topic"] = warHistory()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := handler.Handle(ctx, ContestedOptions{SampleSize: 1})
	require.ErrorIs(t, err, context.Canceled)
}
