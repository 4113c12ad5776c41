package pdfanalyze_test

import (
	"testing"

	pdfanalyze "github.com/MarkRogolino07/pdf-analyze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSectionIndex_Groups(t *testing.T) {
	t.Parallel()

	t.Run("groups in first-occurrence order", func(t *testing.T) {
		t.Parallel()

		idx := pdfanalyze.NewSectionIndex([]pdfanalyze.Section{
			{ID: "1", GroupLabel: "A"},
			{ID: "2", GroupLabel: "B"},
			{ID: "3", GroupLabel: "A"},
		})

		groups := idx.Groups()
		require.Len(t, groups, 2)
		assert.Equal(t, "A", groups[0].Label)
		assert.Equal(t, "B", groups[1].Label)

		// Group A keeps both members in original order.
		require.Len(t, groups[0].Sections, 2)
		assert.Equal(t, "1", groups[0].Sections[0].ID)
		assert.Equal(t, "3", groups[0].Sections[1].ID)
	})

	t.Run("does not sort within groups", func(t *testing.T) {
		t.Parallel()

		idx := pdfanalyze.NewSectionIndex([]pdfanalyze.Section{
			{ID: "z", GroupLabel: "Intro", SubLabel: "1.2"},
			{ID: "a", GroupLabel: "Intro", SubLabel: "1.1"},
		})

		groups := idx.Groups()
		require.Len(t, groups, 1)
		assert.Equal(t, "z", groups[0].Sections[0].ID)
		assert.Equal(t, "a", groups[0].Sections[1].ID)
	})

	t.Run("empty input yields no groups", func(t *testing.T) {
		t.Parallel()

		idx := pdfanalyze.NewSectionIndex(nil)
		assert.Empty(t, idx.Groups())
		assert.Zero(t, idx.Len())
	})
}

func TestSectionIndex_First(t *testing.T) {
	t.Parallel()

	idx := pdfanalyze.NewSectionIndex([]pdfanalyze.Section{
		{ID: "s1", GroupLabel: "A"},
		{ID: "s2", GroupLabel: "B"},
	})

	first, ok := idx.First()
	require.True(t, ok)
	assert.Equal(t, "s1", first.ID)

	_, ok = pdfanalyze.NewSectionIndex(nil).First()
	assert.False(t, ok)
}

func TestSectionIndex_FindByCitationKey(t *testing.T) {
	t.Parallel()

	idx := pdfanalyze.NewSectionIndex([]pdfanalyze.Section{
		{ID: "s1", GroupLabel: "A", CitationKey: "source-1"},
		{ID: "s2", GroupLabel: "B", CitationKey: "source-2"},
	})

	s, ok := idx.FindByCitationKey("source-2")
	require.True(t, ok)
	assert.Equal(t, "s2", s.ID)

	_, ok = idx.FindByCitationKey("missing")
	assert.False(t, ok)

	// Lookup matches citation keys, not ids.
	_, ok = idx.FindByCitationKey("s1")
	assert.False(t, ok)
}

func TestSectionIndex_FindByID(t *testing.T) {
	t.Parallel()

	idx := pdfanalyze.NewSectionIndex([]pdfanalyze.Section{
		{ID: "s1", GroupLabel: "A"},
		{ID: "s2", GroupLabel: "A"},
	})

	s, ok := idx.FindByID("s2")
	require.True(t, ok)
	assert.Equal(t, "s2", s.ID)

	_, ok = idx.FindByID("nope")
	assert.False(t, ok)
}

func TestSectionIndex_Len(t *testing.T) {
	t.Parallel()

	idx := pdfanalyze.NewSectionIndex([]pdfanalyze.Section{
		{ID: "1", GroupLabel: "A"},
		{ID: "2", GroupLabel: "B"},
		{ID: "3", GroupLabel: "A"},
	})
	assert.Equal(t, 3, idx.Len())
}
