package app

import (
	"errors"
	"flag"
	"testing"

	"entombed/internal/render"
	"entombed/pkg/entombed"
)

func TestConfigBind(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("view", flag.ContinueOnError)
	cfg.Bind(fs)
	err := fs.Parse([]string{"-sim", "entombed-prob", "-fg", "ffffff", "-param", "w=20", "-param", "symmetric=false", "-seed", "9"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Sim != "entombed-prob" || cfg.Seed != 9 {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if cfg.Foreground != render.FromHex(0xffffff) || cfg.Background != render.DefaultBackground {
		t.Fatalf("colours = %v/%v", cfg.Foreground, cfg.Background)
	}
	if cfg.Params["w"] != "20" || cfg.Params["symmetric"] != "false" {
		t.Fatalf("params = %v", cfg.Params)
	}
	if err := fs.Parse([]string{"-param", "novalue"}); err == nil {
		t.Fatal("expected error for malformed param")
	}
}

func TestConfigRandomColour(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("view", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-fg", "random", "-bg", "random"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestConfigValidateParams(t *testing.T) {
	cfg := NewConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults should validate, got %v", err)
	}

	cfg.Params["rules"] = "1,2"
	if err := cfg.Validate(); !errors.Is(err, entombed.ErrMalformedTable) {
		t.Fatalf("expected ErrMalformedTable, got %v", err)
	}

	cfg = NewConfig()
	cfg.Params["w"] = "0"
	if err := cfg.Validate(); !errors.Is(err, entombed.ErrInvalidWidth) {
		t.Fatalf("expected ErrInvalidWidth, got %v", err)
	}

	cfg = NewConfig()
	cfg.Params["h"] = "-1"
	if err := cfg.Validate(); !errors.Is(err, entombed.ErrInvalidDimensions) {
		t.Fatalf("expected ErrInvalidDimensions, got %v", err)
	}
}
