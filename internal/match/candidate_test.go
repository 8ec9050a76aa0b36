package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRank(t *testing.T) {
	names := []string{"app.Clock", "app.MemStore", "app.SQLStore", "other.Clock"}

	ranked := Rank("app.Clok", names)
	require.Len(t, ranked, len(names))

	assert.Equal(t, "app.Clock", ranked[0].Name)

	// other.Clock only matches on its simple name
	assert.Equal(t, "other.Clock", ranked[1].Name)
	assert.InDelta(t, 1-1.0/9, ranked[0].Score, 1e-9)
	assert.InDelta(t, 0.8, ranked[1].Score, 1e-9)
}

func TestRankIgnoresPackageWhenSimpleNameMatches(t *testing.T) {
	ranked := Rank("MemStore", []string{"app.SQLStore", "app.storage.MemStore"})

	assert.Equal(t, []string{"app.storage.MemStore", "app.SQLStore"}, ranked.Names())
	assert.InDelta(t, 1.0, ranked[0].Score, 1e-9)
}

func TestCandidateListHelpers(t *testing.T) {
	list := CandidateList{
		{Name: "a", Score: 0.9},
		{Name: "b", Score: 0.6},
		{Name: "c", Score: 0.3},
	}

	assert.Equal(t, []string{"a", "b"}, list.Top(2).Names())
	assert.Len(t, list.Top(10), 3)
	assert.Equal(t, []string{"a", "b"}, list.AboveThreshold(0.5).Names())
	assert.Empty(t, list.AboveThreshold(0.95))
	assert.Empty(t, CandidateList{}.Top(3))
}
