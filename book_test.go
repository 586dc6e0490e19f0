package xlbook_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/UNO-SOFT/xlbook"
)

func TestCollectionOrder(t *testing.T) {
	c := xlbook.NewCollection()
	c.Set("beta", xlbook.NewTable("b"))
	c.Set("alpha", xlbook.NewTable("a"))
	c.Set("gamma", xlbook.NewTable("g"))
	require.Equal(t, 3, c.Len())
	assert.Equal(t, []string{"beta", "alpha", "gamma"}, c.Names())

	// Replacing keeps the position.
	repl := xlbook.NewTable("a2")
	c.Set("alpha", repl)
	assert.Equal(t, []string{"beta", "alpha", "gamma"}, c.Names())
	got, err := c.Get("alpha")
	require.NoError(t, err)
	assert.Equal(t, []string{"a2"}, got.Columns())

	_, err = c.Get("delta")
	require.ErrorIs(t, err, xlbook.ErrSheetNotFound)
}

func TestCollectionUpdate(t *testing.T) {
	c := xlbook.NewCollection()
	c.Set("A", xlbook.NewTable("a"))
	c.Set("B", xlbook.NewTable("b"))

	other := xlbook.NewCollection()
	other.Set("B", xlbook.NewTable("b2"))
	other.Set("C", xlbook.NewTable("c"))
	c.Update(other)

	assert.Equal(t, []string{"A", "B", "C"}, c.Names())
	b, err := c.Get("B")
	require.NoError(t, err)
	assert.Equal(t, []string{"b2"}, b.Columns())
}

func TestCollectionAllStops(t *testing.T) {
	c := xlbook.NewCollection()
	c.Set("one", xlbook.NewTable())
	c.Set("two", xlbook.NewTable())
	var seen []string
	for name := range c.All() {
		seen = append(seen, name)
		break
	}
	assert.Equal(t, []string{"one"}, seen)
}

func TestTableRaggedRows(t *testing.T) {
	tbl := xlbook.NewTable("a", "b")
	tbl.AppendRow("1")
	tbl.AppendRow("1", "2", "3")
	assert.Equal(t, []string{"a", "b", "Unnamed: 2"}, tbl.Columns())
	assert.Equal(t, [][]string{
		{"1", "", ""},
		{"1", "2", "3"},
	}, tbl.Rows())

	v, ok := tbl.Cell(0, "b")
	require.True(t, ok)
	assert.Equal(t, "", v)
	_, ok = tbl.Cell(0, "nope")
	assert.False(t, ok)
	_, ok = tbl.Cell(2, "a")
	assert.False(t, ok)
}

func TestMergeAll(t *testing.T) {
	a := xlbook.NewTable("x")
	a.AppendRow("a1")
	a.AppendRow("a2")
	b := xlbook.NewTable("y")
	b.AppendRow("b1")

	c := xlbook.NewCollection()
	c.Set("A", a)
	c.Set("B", b)

	merged := xlbook.MergeAll(c)
	assert.Equal(t, []string{"x", "y"}, merged.Columns())
	// Later sheets' rows come first, gaps read as "".
	assert.Equal(t, [][]string{
		{"", "b1"},
		{"a1", ""},
		{"a2", ""},
	}, merged.Rows())

	v, ok := merged.Cell(1, "y")
	require.True(t, ok)
	assert.Equal(t, "", v)
}

func TestMergeAllSharedColumns(t *testing.T) {
	a := xlbook.NewTable("id", "name")
	a.AppendRow("1", "one")
	b := xlbook.NewTable("name", "id")
	b.AppendRow("two", "2")

	c := xlbook.NewCollection()
	c.Set("A", a)
	c.Set("B", b)

	merged := xlbook.MergeAll(c)
	assert.Equal(t, []string{"id", "name"}, merged.Columns())
	assert.Equal(t, [][]string{
		{"2", "two"},
		{"1", "one"},
	}, merged.Rows())
}
