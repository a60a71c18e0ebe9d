package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	r, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if r.CellWidth != 500 || r.CellHeight != 330 {
		t.Fatalf("unexpected defaults: %+v", r)
	}
	if r.HSpace != 14 || r.WSpace != 10 {
		t.Fatalf("unexpected spacing defaults: %+v", r)
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("KSPGRAPH_CELL_WIDTH", "640")
	t.Setenv("KSPGRAPH_H_SPACE", "20")
	r, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if r.CellWidth != 640 {
		t.Fatalf("CellWidth = %d, want 640", r.CellWidth)
	}
	if r.HSpace != 20 {
		t.Fatalf("HSpace = %d, want 20", r.HSpace)
	}
}

func TestLoad_ClampsTinyCells(t *testing.T) {
	t.Setenv("KSPGRAPH_CELL_WIDTH", "10")
	t.Setenv("KSPGRAPH_CELL_HEIGHT", "10")
	t.Setenv("KSPGRAPH_W_SPACE", "-5")
	r, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if r.CellWidth != 320 || r.CellHeight != 240 {
		t.Fatalf("clamp failed: %+v", r)
	}
	if r.WSpace != 0 {
		t.Fatalf("negative spacing not clamped: %+v", r)
	}
}

func TestLoad_BadValue(t *testing.T) {
	t.Setenv("KSPGRAPH_CELL_WIDTH", "wide")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for non-integer value")
	}
}
