package entombed

import (
	"errors"
	"strings"
	"testing"
)

func TestDefaultTableValues(t *testing.T) {
	want := "1,1,1,2,0,0,2,2,1,1,1,1,2,0,0,0,1,1,1,2,0,0,0,0,2,0,1,2,2,0,0,0"
	if got := DefaultTable().String(); got != want {
		t.Fatalf("default table = %s, want %s", got, want)
	}
	noWall, wall, random := DefaultTable().Counts()
	if noWall != 13 || wall != 11 || random != 8 {
		t.Fatalf("counts = %d/%d/%d, want 13/11/8", noWall, wall, random)
	}
}

func TestIndexBitLayout(t *testing.T) {
	cases := []struct {
		a, b, c, d, e uint8
		want          int
	}{
		{0, 0, 0, 0, 0, 0},
		{1, 0, 0, 0, 0, 1},
		{0, 1, 0, 0, 0, 2},
		{0, 0, 1, 0, 0, 4},
		{0, 0, 0, 1, 0, 8},
		{0, 0, 0, 0, 1, 16},
		{1, 1, 1, 1, 1, 31},
		{3, 2, 0, 0, 0, 1},
	}
	for _, tc := range cases {
		if got := Index(tc.a, tc.b, tc.c, tc.d, tc.e); got != tc.want {
			t.Fatalf("Index(%d,%d,%d,%d,%d) = %d, want %d", tc.a, tc.b, tc.c, tc.d, tc.e, got, tc.want)
		}
	}
}

func TestLookupTotal(t *testing.T) {
	table := DefaultTable()
	for idx := 0; idx < TableSize; idx++ {
		a, b, c, d, e := uint8(idx&1), uint8(idx>>1&1), uint8(idx>>2&1), uint8(idx>>3&1), uint8(idx>>4&1)
		got := table.Lookup(a, b, c, d, e)
		if !got.Valid() {
			t.Fatalf("lookup of index %d returned invalid decision %d", idx, got)
		}
		if got != table[idx] {
			t.Fatalf("lookup of index %d = %v, want %v", idx, got, table[idx])
		}
	}
}

func TestParseTableRejectsMalformed(t *testing.T) {
	short := strings.Repeat("1,", 30) + "1"
	outOfRange := strings.Repeat("0,", 31) + "3"
	negative := strings.Repeat("0,", 31) + "-1"
	cases := map[string]string{
		"31 values":    short,
		"value 3":      outOfRange,
		"negative":     negative,
		"wraps uint8":  strings.Repeat("0,", 31) + "258",
		"plus sign":    strings.Repeat("0,", 31) + "+1",
		"not a number": strings.Repeat("0,", 31) + "x",
		"empty":        "",
		"33 values":    strings.Repeat("0,", 32) + "0",
		"empty field":  strings.Repeat("0,", 15) + "," + strings.Repeat("0,", 15) + "0",
	}
	for name, input := range cases {
		if _, err := ParseTable(input); !errors.Is(err, ErrMalformedTable) {
			t.Fatalf("%s: expected ErrMalformedTable, got %v", name, err)
		}
	}
}

func TestParseTableAcceptsTrailingCommaAndSpaces(t *testing.T) {
	input := " " + strings.ReplaceAll(DefaultTable().String(), ",", ", ") + ",\n"
	table, err := ParseTable(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if table != DefaultTable() {
		t.Fatalf("parsed %s, want default table", table)
	}
}

func TestTableRoundTrip(t *testing.T) {
	tables := []Table{DefaultTable(), UniformTable(NoWall), UniformTable(Wall), UniformTable(RandomChoice)}
	var cycle Table
	for i := range cycle {
		cycle[i] = Decision(i % 3)
	}
	tables = append(tables, cycle)

	for _, table := range tables {
		parsed, err := ParseTable(table.String())
		if err != nil {
			t.Fatalf("parse of %s failed: %v", table, err)
		}
		if parsed != table {
			t.Fatalf("round trip mismatch: got %s, want %s", parsed, table)
		}
	}
}

func TestNewTableRejectsWrongLength(t *testing.T) {
	if _, err := NewTable(make([]int, 31)); !errors.Is(err, ErrMalformedTable) {
		t.Fatalf("expected ErrMalformedTable, got %v", err)
	}
}
