package entombed

import (
	"errors"
	"slices"
	"strings"
	"testing"
)

func TestGenerateSingleCellNoRows(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Columns = 1
	cfg.Rows = 0
	src := &scriptedBits{bits: []bool{true}}
	m, err := Generate(cfg, src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(m.Rows) != 1 || !slices.Equal(m.Rows[0], Row{true}) {
		t.Fatalf("rows = %v, want [[true]]", m.Rows)
	}
	if src.drawn != 1 {
		t.Fatalf("drew %d bits, want 1", src.drawn)
	}
}

func TestGenerateShapeAndDeterminism(t *testing.T) {
	cfg := DefaultConfig()
	a, err := Generate(cfg, newPCGBits(3))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, _ := Generate(cfg, newPCGBits(3))
	if len(a.Rows) != cfg.Rows+1 {
		t.Fatalf("got %d rows, want %d", len(a.Rows), cfg.Rows+1)
	}
	for i := range a.Rows {
		if len(a.Rows[i]) != cfg.Columns {
			t.Fatalf("row %d has %d cells, want %d", i, len(a.Rows[i]), cfg.Columns)
		}
		if !slices.Equal(a.Rows[i], b.Rows[i]) {
			t.Fatalf("row %d differs between identical seeds", i)
		}
	}

	display := a.Display()
	if len(display[0]) != cfg.DisplayWidth() {
		t.Fatalf("display width = %d, want %d", len(display[0]), cfg.DisplayWidth())
	}
	a.Symmetric = false
	if len(a.Display()[0]) != cfg.Columns {
		t.Fatal("asymmetric display should not mirror rows")
	}
}

func TestGenerateRejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Columns = 0
	if _, err := Generate(cfg, constBits(true)); !errors.Is(err, ErrInvalidWidth) {
		t.Fatalf("expected ErrInvalidWidth, got %v", err)
	}
	cfg = DefaultConfig()
	cfg.Rows = -1
	if _, err := Generate(cfg, constBits(true)); !errors.Is(err, ErrInvalidDimensions) {
		t.Fatalf("expected ErrInvalidDimensions, got %v", err)
	}
	cfg = DefaultConfig()
	cfg.Table[4] = Decision(7)
	if _, err := Generate(cfg, constBits(true)); !errors.Is(err, ErrMalformedTable) {
		t.Fatalf("expected ErrMalformedTable, got %v", err)
	}
}

func TestFromMap(t *testing.T) {
	cfg := FromMap(map[string]string{
		"w":         "12",
		"rows":      "0",
		"symmetric": "false",
		"rules":     UniformTable(Wall).String(),
		"seed":      "42",
	})
	if cfg.Columns != 12 || cfg.Rows != 0 || cfg.Symmetric || cfg.Seed != 42 {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if cfg.Table != UniformTable(Wall) {
		t.Fatalf("table = %s", cfg.Table)
	}

	strict, err := ParseMap(map[string]string{"columns": "12", "h": "0", "symmetric": "false"})
	if err != nil || strict.Columns != 12 || strict.Rows != 0 || strict.Symmetric {
		t.Fatalf("ParseMap = %+v, %v", strict, err)
	}

	bad := FromMap(map[string]string{"w": "-1", "h": "x", "rules": "1,2"})
	def := DefaultConfig()
	if bad.Columns != def.Columns || bad.Rows != def.Rows || bad.Table != def.Table {
		t.Fatalf("invalid values should keep defaults, got %+v", bad)
	}
}

func TestParseMapReportsBadValues(t *testing.T) {
	cases := []struct {
		params map[string]string
		want   error
	}{
		{map[string]string{"rules": "1,2"}, ErrMalformedTable},
		{map[string]string{"rules": strings.Repeat("0,", 31) + "3"}, ErrMalformedTable},
		{map[string]string{"w": "0"}, ErrInvalidWidth},
		{map[string]string{"w": "wide"}, ErrInvalidWidth},
		{map[string]string{"h": "-1"}, ErrInvalidDimensions},
		{map[string]string{"rows": "tall"}, ErrInvalidDimensions},
	}
	for _, tc := range cases {
		if _, err := ParseMap(tc.params); !errors.Is(err, tc.want) {
			t.Fatalf("ParseMap(%v): expected %v, got %v", tc.params, tc.want, err)
		}
	}
	for _, params := range []map[string]string{{"symmetric": "maybe"}, {"seed": "x"}, {"depth": "3"}} {
		if _, err := ParseMap(params); err == nil {
			t.Fatalf("ParseMap(%v): expected an error", params)
		}
	}
}
