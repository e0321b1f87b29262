package imposition

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanChunksSingleChunkBelowThreshold(t *testing.T) {
	chunks := PlanChunks(40, true, Stack, 1_000_000, 4)
	require.Len(t, chunks, 1)
	assert.Equal(t, "", chunks[0].Label())
	assert.Equal(t, 0, chunks[0].StartSheet)
	assert.Equal(t, 40, chunks[0].EndSheet)
}

func TestPlanChunksSplitsAboveThreshold(t *testing.T) {
	chunks := PlanChunks(500, true, Stack, chunkByteThreshold, 2)
	require.Greater(t, len(chunks), 1)

	assert.Equal(t, 0, chunks[0].StartSheet)
	for i := 1; i < len(chunks); i++ {
		assert.Equal(t, chunks[i-1].EndSheet, chunks[i].StartSheet)
	}
	assert.Equal(t, 500, chunks[len(chunks)-1].EndSheet)
	assert.Contains(t, chunks[0].Label(), "part 1 of")
}

func TestPlanChunksRepeatModeUsesLowerCeiling(t *testing.T) {
	repeatChunks := PlanChunks(1000, false, Repeat, chunkByteThreshold, 2)
	stackChunks := PlanChunks(1000, false, Stack, chunkByteThreshold, 2)

	repeatSheetsPerChunk := repeatChunks[0].EndSheet - repeatChunks[0].StartSheet
	stackSheetsPerChunk := stackChunks[0].EndSheet - stackChunks[0].StartSheet
	assert.Less(t, repeatSheetsPerChunk, stackSheetsPerChunk)
}

func TestPlanChunksDuplexHalvesSheetsPerChunk(t *testing.T) {
	duplexChunks := PlanChunks(1000, true, Stack, chunkByteThreshold, 2)
	simplexChunks := PlanChunks(1000, false, Stack, chunkByteThreshold, 2)

	duplexSheetsPerChunk := duplexChunks[0].EndSheet - duplexChunks[0].StartSheet
	simplexSheetsPerChunk := simplexChunks[0].EndSheet - simplexChunks[0].StartSheet
	assert.Equal(t, simplexSheetsPerChunk, duplexSheetsPerChunk*2)
}
