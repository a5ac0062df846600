package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalogGroups(t *testing.T) {
	c := DefaultCatalog()
	assert.Equal(t, []Category{CategoryImage, CategoryText, CategoryExport, CategoryDevelopment, CategoryData}, c.Categories())

	total := 0
	for _, tasks := range c.Grouped() {
		total += len(tasks)
	}
	assert.Equal(t, len(c.All()), total)

	ocr, ok := c.Lookup("text-ocr")
	require.True(t, ok)
	assert.True(t, ocr.RequiresFileInput)
	_, ok = c.Lookup("nope")
	assert.False(t, ok)
}

func TestCatalogIDsAreUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, task := range DefaultCatalog().All() {
		assert.False(t, seen[task.ID], task.ID)
		seen[task.ID] = true
	}
}

func TestUnknownCategoriesSortLast(t *testing.T) {
	c := NewCatalog([]TaskDescriptor{
		{ID: "x", Category: "custom"},
		{ID: "y", Category: CategoryText},
	})
	assert.Equal(t, []Category{CategoryText, "custom"}, c.Categories())
}

func TestUnknownCategoriesAreSortedByName(t *testing.T) {
	c := NewCatalog([]TaskDescriptor{
		{ID: "z", Category: "zeta"},
		{ID: "a", Category: "alpha"},
		{ID: "m", Category: "mu"},
		{ID: "i", Category: CategoryImage},
	})
	for i := 0; i < 10; i++ {
		assert.Equal(t, []Category{CategoryImage, "alpha", "mu", "zeta"}, c.Categories())
	}
}

func TestDragPayloadRoundTrip(t *testing.T) {
	payload, err := EncodeDragPayload(ocrTask)
	require.NoError(t, err)
	got, err := DecodeDragPayload("  " + payload + "\n")
	require.NoError(t, err)
	assert.Equal(t, ocrTask, got)
}

func TestDecodeDragPayloadErrors(t *testing.T) {
	for _, payload := range []string{"", "   ", "{", `{"id":""}`, `"text"`} {
		_, err := DecodeDragPayload(payload)
		assert.Error(t, err, payload)
	}
}

func TestTaskColorHex(t *testing.T) {
	assert.Equal(t, "#3B82F6", ColorBlue.Hex())
	assert.Equal(t, "#64748B", TaskColor("").Hex())
}
