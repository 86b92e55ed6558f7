package dataset_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/paybatch/internal/dataset"
)

func row(values ...string) dataset.Row {
	r := make(dataset.Row, len(values))
	for i, v := range values {
		if v == "<nil>" {
			r[i] = dataset.Missing()
			continue
		}
		r[i] = dataset.Text(v)
	}
	return r
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("pads short rows", func(t *testing.T) {
		t.Parallel()
		tbl, err := dataset.New([]string{"a", "b", "c"}, []dataset.Row{row("1")})
		require.NoError(t, err)
		assert.Equal(t, 1, tbl.Len())
		assert.True(t, tbl.Get(0, "a").Valid)
		assert.False(t, tbl.Get(0, "c").Valid)
	})

	t.Run("rejects long rows", func(t *testing.T) {
		t.Parallel()
		_, err := dataset.New([]string{"a"}, []dataset.Row{row("1", "2")})
		assert.Error(t, err)
	})

	t.Run("rejects duplicate columns", func(t *testing.T) {
		t.Parallel()
		_, err := dataset.New([]string{"a", "a"}, nil)
		assert.Error(t, err)
	})
}

func TestCellFloat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		cell   dataset.Cell
		want   float64
		wantOK bool
	}{
		{name: "integer", cell: dataset.Text("1000"), want: 1000, wantOK: true},
		{name: "decimal", cell: dataset.Text("12.5"), want: 12.5, wantOK: true},
		{name: "surrounding spaces", cell: dataset.Text(" 7 "), want: 7, wantOK: true},
		{name: "missing", cell: dataset.Missing(), wantOK: false},
		{name: "not numeric", cell: dataset.Text("n/a"), wantOK: false},
		{name: "thousands separator", cell: dataset.Text("1,000"), wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := tt.cell.Float()
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.InDelta(t, tt.want, got, 1e-9)
			}
		})
	}
}

func TestConcat(t *testing.T) {
	t.Parallel()

	a := dataset.MustNew([]string{"id", "name"}, []dataset.Row{row("1", "x"), row("2", "y")})
	b := dataset.MustNew([]string{"id", "extra"}, []dataset.Row{row("3", "e")})

	got := dataset.Concat(a, nil, b)

	assert.Equal(t, []string{"id", "name", "extra"}, got.Columns())
	require.Equal(t, 3, got.Len())
	assert.Equal(t, "1", got.Get(0, "id").Value)
	assert.Equal(t, "3", got.Get(2, "id").Value)
	assert.False(t, got.Get(0, "extra").Valid)
	assert.False(t, got.Get(2, "name").Valid)
	assert.Equal(t, "e", got.Get(2, "extra").Value)
}

func TestConcat_NoTables(t *testing.T) {
	t.Parallel()

	got := dataset.Concat()
	assert.True(t, got.Empty())
	assert.Empty(t, got.Columns())
}

func TestDropDuplicates(t *testing.T) {
	t.Parallel()

	tbl := dataset.MustNew([]string{"id", "v"}, []dataset.Row{
		row("1", "a"),
		row("2", "b"),
		row("1", "a"),
		row("1", "<nil>"),
		row("1", "<nil>"),
		row("1", ""),
		row("3", "c"),
	})

	got := dataset.DropDuplicates(tbl)

	require.Equal(t, 5, got.Len())
	assert.Equal(t, "1", got.Get(0, "id").Value)
	assert.Equal(t, "2", got.Get(1, "id").Value)
	assert.False(t, got.Get(2, "v").Valid)
	assert.True(t, got.Get(3, "v").Valid, "empty string is distinct from missing")
	assert.Equal(t, "3", got.Get(4, "id").Value)

	again := dataset.DropDuplicates(got)
	assert.Equal(t, got.Len(), again.Len())
	for i := range got.Len() {
		assert.Equal(t, got.Row(i), again.Row(i))
	}

	assert.Equal(t, 7, tbl.Len(), "input must not be modified")
}

func TestDropDuplicates_NoKeyCollision(t *testing.T) {
	t.Parallel()

	tbl := dataset.MustNew([]string{"a", "b"}, []dataset.Row{
		row("x|", "y"),
		row("x", "|y"),
	})
	assert.Equal(t, 2, dataset.DropDuplicates(tbl).Len())
}

func TestDropDuplicates_NumericColumns(t *testing.T) {
	t.Parallel()

	tbl := dataset.MustNew([]string{"id", "salary", "code"}, []dataset.Row{
		row("1", "1000", "7"),
		row("1.0", "1000.0", "7"),
		row("1", " 1e3", "7"),
		row("2", "1000", "07"),
		row("2", "1000", "x"),
		row("2", "1000", "7.0"),
	})

	got := dataset.DropDuplicates(tbl)

	require.Equal(t, 4, got.Len())
	assert.Equal(t, "1000", got.Get(0, "salary").Value, "first occurrence is kept")
	assert.Equal(t, "07", got.Get(1, "code").Value)
	assert.Equal(t, "x", got.Get(2, "code").Value)
	assert.Equal(t, "7.0", got.Get(3, "code").Value, "text column compares by text")
}

func TestHead(t *testing.T) {
	t.Parallel()

	rows := make([]dataset.Row, 12)
	for i := range rows {
		rows[i] = row(string(rune('a' + i)))
	}
	tbl := dataset.MustNew([]string{"k"}, rows)

	assert.Equal(t, 10, dataset.Head(tbl, 10).Len())
	assert.Equal(t, 12, dataset.Head(tbl, 50).Len())
	assert.Equal(t, 0, dataset.Head(tbl, -1).Len())
	assert.Equal(t, "a", dataset.Head(tbl, 3).Get(0, "k").Value)
}

func TestWithColumn(t *testing.T) {
	t.Parallel()

	tbl := dataset.MustNew([]string{"a"}, []dataset.Row{row("1"), row("2")})

	added, err := tbl.WithColumn("b", []dataset.Cell{dataset.Text("x"), dataset.Missing()})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, added.Columns())
	assert.Equal(t, "x", added.Get(0, "b").Value)
	assert.False(t, tbl.HasColumn("b"))

	replaced, err := added.WithColumn("a", []dataset.Cell{dataset.Text("9"), dataset.Text("8")})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, replaced.Columns())
	assert.Equal(t, "9", replaced.Get(0, "a").Value)

	_, err = tbl.WithColumn("c", []dataset.Cell{dataset.Text("x")})
	assert.Error(t, err)
}

func TestSelect(t *testing.T) {
	t.Parallel()

	tbl := dataset.MustNew([]string{"a", "b", "c"}, []dataset.Row{row("1", "<nil>", "3")})

	got, err := tbl.Select([]string{"c", "b"})
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"3", ""}}, got)

	_, err = tbl.Select([]string{"a", "z", "y"})
	var missing *dataset.MissingColumnsError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, []string{"z", "y"}, missing.Columns)
}
