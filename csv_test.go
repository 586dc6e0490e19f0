package xlbook_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/UNO-SOFT/xlbook"
)

func TestReadCSVSniffsSeparator(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path,
		[]byte("name;qty\napple;1\npear;2\n"), 0o644))

	tbl, err := xlbook.ReadCSV(path, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"name", "qty"}, tbl.Columns())
	assert.Equal(t, [][]string{
		{"apple", "1"},
		{"pear", "2"},
	}, tbl.Rows())
}

func TestReadCSVRagged(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path,
		[]byte("a,b\n1,2,3\n4\n"), 0o644))

	tbl, err := xlbook.ReadCSV(path, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "Unnamed: 2"}, tbl.Columns())
	assert.Equal(t, [][]string{
		{"1", "2", "3"},
		{"4", "", ""},
	}, tbl.Rows())
}

func TestWriteCSVRoundTrip(t *testing.T) {
	want := sampleTable("apple", "1", "pear", "2")
	var buf bytes.Buffer
	require.NoError(t, xlbook.WriteCSV(&buf, want, 0, ""))

	path := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
	got, err := xlbook.ReadCSV(path, "")
	require.NoError(t, err)
	assert.Equal(t, want.Columns(), got.Columns())
	assert.Equal(t, want.Rows(), got.Rows())
}

func TestGetEncoding(t *testing.T) {
	enc, err := xlbook.GetEncoding("utf-8")
	require.NoError(t, err)
	assert.Nil(t, enc)

	enc, err = xlbook.GetEncoding("iso-8859-2")
	require.NoError(t, err)
	assert.NotNil(t, enc)

	_, err = xlbook.GetEncoding("no-such-charset")
	require.Error(t, err)
}
