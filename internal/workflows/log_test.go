package workflows

import (
	"context"
	"testing"

	"github.com/PolarWolf314/sealkit/internal/audit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLog(t *testing.T) {
	newTestEnv(t)
	for _, op := range []string{"encode", "seal", "decode", "seal", "unseal"} {
		audit.Log(audit.NewEntry(op))
	}

	result, err := Log(context.Background(), LogOptions{})
	require.NoError(t, err)
	assert.Equal(t, 5, result.Total)
	assert.Len(t, result.Entries, 5)
	assert.Equal(t, audit.LogPath(), result.LogPath)

	result, err = Log(context.Background(), LogOptions{Operation: "seal"})
	require.NoError(t, err)
	assert.Len(t, result.Entries, 2)

	result, err = Log(context.Background(), LogOptions{Limit: 2, Reverse: true})
	require.NoError(t, err)
	require.Len(t, result.Entries, 2)
	assert.Equal(t, "unseal", result.Entries[0].Operation)
	assert.Equal(t, "seal", result.Entries[1].Operation)
}

func TestLog_Empty(t *testing.T) {
	newTestEnv(t)

	result, err := Log(context.Background(), LogOptions{})
	require.NoError(t, err)
	assert.Equal(t, 0, result.Total)
	assert.Empty(t, result.Entries)
}
