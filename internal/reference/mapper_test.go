package reference

import (
	"errors"
	"testing"
)

type storedCell struct {
	ref     Cell
	formula string
}

func (s storedCell) Reference() Cell { return s.ref }

type memLoader map[Cell]storedCell

func (m memLoader) LoadCell(c Cell) (storedCell, bool) {
	v, ok := m[c.Key()]
	return v, ok
}

func (m memLoader) LoadCellRange(r CellRange) []storedCell {
	var out []storedCell
	for k, v := range m {
		if r.Contains(k) {
			out = append(out, v)
		}
	}
	return out
}

func TestReplaceReferencesIdentity(t *testing.T) {
	for _, text := range []string{"$B$2", "B2:D9", "C", "C:E", "3", "2:4", "Total"} {
		sel := mustSelection(t, text)
		got, ok, err := ReplaceReferences(sel, IdentityMapper)
		if err != nil || !ok {
			t.Fatalf("ReplaceReferences(%s) = %v, %v, %v", text, got, ok, err)
		}
		if !Equal(got, sel) {
			t.Errorf("identity mapping of %s gave %v", text, got)
		}
	}
}

func TestReplaceReferencesNilMapper(t *testing.T) {
	if _, _, err := ReplaceReferences(MustCell("A1"), nil); !errors.Is(err, ErrNilArgument) {
		t.Errorf("error = %v, want ErrNilArgument", err)
	}
	if _, _, err := ReplaceReferences(nil, IdentityMapper); !errors.Is(err, ErrNilArgument) {
		t.Errorf("error = %v, want ErrNilArgument", err)
	}
}

func TestOffsetMapper(t *testing.T) {
	tests := []struct {
		cell   string
		dx, dy int
		want   string
		ok     bool
	}{
		{"B2", 1, 1, "C3", true},
		{"B2", -1, -1, "A1", true},
		{"B2", -2, 0, "", false},
		{"B2", 0, -2, "", false},
		{"XFD1", 1, 0, "", false},
		{"A1048576", 0, 1, "", false},
		{"$C$3", 2, 0, "$E$3", true},
	}
	for _, tt := range tests {
		c := MustCell(tt.cell)
		got, ok := OffsetMapper(tt.dx, tt.dy).MapCell(c)
		if ok != tt.ok {
			t.Errorf("%s + (%d,%d) ok = %v, want %v", tt.cell, tt.dx, tt.dy, ok, tt.ok)
			continue
		}
		if ok && got.String() != tt.want {
			t.Errorf("%s + (%d,%d) = %v, want %s", tt.cell, tt.dx, tt.dy, got, tt.want)
		}
		saturated := c.AddSaturated(tt.dx, tt.dy)
		clipped := saturated.Column().Value() != c.Column().Value()+tt.dx ||
			saturated.Row().Value() != c.Row().Value()+tt.dy
		if clipped == ok {
			t.Errorf("%s + (%d,%d): absent must mean clipped", tt.cell, tt.dx, tt.dy)
		}
	}
}

func TestReplaceReferencesOffset(t *testing.T) {
	got, ok, err := ReplaceReferences(mustSelection(t, "B2:D9"), OffsetMapper(1, 2))
	if err != nil || !ok || got.String() != "C4:E11" {
		t.Errorf("got %v, %v, %v; want C4:E11", got, ok, err)
	}

	got, ok, _ = ReplaceReferences(mustSelection(t, "C:E"), OffsetMapper(-2, 0))
	if !ok || got.String() != "A:C" {
		t.Errorf("column range offset = %v, %v; want A:C", got, ok)
	}

	if _, ok, _ := ReplaceReferences(mustSelection(t, "A1:B2"), OffsetMapper(-1, 0)); ok {
		t.Error("range pushed past column A should be absent")
	}
}

func TestStructuralMappers(t *testing.T) {
	c := MustColumn(2, Relative) // C
	tests := []struct {
		name   string
		mapper Mapper
		sel    string
		want   string
		ok     bool
	}{
		{"insert columns before", InsertColumnsMapper(c, 2), "D5", "F5", true},
		{"insert columns after", InsertColumnsMapper(c, 2), "B5", "B5", true},
		{"delete columns inside", DeleteColumnsMapper(c, 2), "D5", "", false},
		{"delete columns right", DeleteColumnsMapper(c, 2), "F5", "D5", true},
		{"delete columns range", DeleteColumnsMapper(c, 1), "E:G", "D:F", true},
		{"insert rows", InsertRowsMapper(MustRow(1, Relative), 3), "2:4", "5:7", true},
		{"delete rows", DeleteRowsMapper(MustRow(0, Relative), 1), "A3", "A2", true},
		{"delete rows inside", DeleteRowsMapper(MustRow(0, Relative), 1), "1", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok, err := ReplaceReferences(mustSelection(t, tt.sel), tt.mapper)
			if err != nil {
				t.Fatalf("ReplaceReferences failed: %v", err)
			}
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v (got %v)", ok, tt.ok, got)
			}
			if ok && got.String() != tt.want {
				t.Errorf("got %v, want %s", got, tt.want)
			}
		})
	}
}

func TestForEachCell(t *testing.T) {
	loader := memLoader{
		MustCell("A1").Key(): {ref: MustCell("A1"), formula: "=1"},
		MustCell("B2").Key(): {ref: MustCell("B2"), formula: "=2"},
		MustCell("Z9").Key(): {ref: MustCell("Z9"), formula: "=3"},
	}

	var present, absent []string
	err := ForEachCell[storedCell](CellRangeOf(MustCell("A1"), MustCell("B2")), LRTD, loader,
		func(v storedCell) { present = append(present, v.ref.String()) },
		func(c Cell) { absent = append(absent, c.String()) },
	)
	if err != nil {
		t.Fatalf("ForEachCell failed: %v", err)
	}
	if len(present) != 2 || present[0] != "A1" || present[1] != "B2" {
		t.Errorf("present = %v", present)
	}
	if len(absent) != 2 || absent[0] != "B1" || absent[1] != "A2" {
		t.Errorf("absent = %v", absent)
	}

	if err := ForEachCell[storedCell](CellRange{}, LRTD, nil, func(storedCell) {}, func(Cell) {}); !errors.Is(err, ErrNilArgument) {
		t.Errorf("nil loader error = %v", err)
	}
}

func TestReplaceReferencesCrossAxis(t *testing.T) {
	first := MustColumn(0, Relative)
	tests := []struct {
		name   string
		mapper Mapper
		sel    string
		want   string
	}{
		{"column ignores row offset", OffsetMapper(1, -1), "B", "C"},
		{"column range ignores row offset", OffsetMapper(0, -5), "C:E", "C:E"},
		{"row ignores column offset", OffsetMapper(-5, 0), "3", "3"},
		{"row range with both offsets", OffsetMapper(1, -1), "2:4", "1:3"},
		{"cell moves on both axes", OffsetMapper(1, -1), "B2", "C1"},
		{"column survives delete of row 1", DeleteRowsMapper(MustRow(0, Relative), 1), "B", "B"},
		{"column range survives delete of row 1", DeleteRowsMapper(MustRow(0, Relative), 1), "F:H", "F:H"},
		{"row survives delete of column A", DeleteColumnsMapper(first, 1), "7", "7"},
		{"row range survives column insert", InsertColumnsMapper(first, 4), "2:3", "2:3"},
		{"column survives row insert", InsertRowsMapper(MustRow(0, Relative), 4), "$D", "$D"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok, err := ReplaceReferences(mustSelection(t, tt.sel), tt.mapper)
			if err != nil || !ok {
				t.Fatalf("ReplaceReferences(%s) = %v, %v, %v", tt.sel, got, ok, err)
			}
			if got.String() != tt.want {
				t.Errorf("got %v, want %s", got, tt.want)
			}
		})
	}
}

func TestAxisMapperNilProjections(t *testing.T) {
	m := AxisMapper{Rows: func(r Row) (Row, bool) { return r.AddSaturated(1), true }}
	got, ok := m.MapCell(MustCell("C3"))
	if !ok || got.String() != "C4" {
		t.Errorf("MapCell = %v, %v; want C4", got, ok)
	}
	if c, ok := m.MapColumn(MustColumn(5, Absolute)); !ok || c.String() != "$F" {
		t.Errorf("MapColumn = %v, %v; want $F", c, ok)
	}
}
