package data

import "testing"

func TestDefaultLoadsEmbeddedTables(t *testing.T) {
	tbl, err := Default()
	if err != nil {
		t.Fatalf("Default() error = %v", err)
	}
	if len(tbl.Dictionary["a"]) == 0 {
		t.Error("Dictionary[\"a\"] is empty")
	}
	if tbl.Suffix["gulo"] != "গুলো" {
		t.Errorf("Suffix[gulo] = %q, want গুলো", tbl.Suffix["gulo"])
	}
	if tbl.Autocorrect["academy"] != "oZakaDemi" {
		t.Errorf("Autocorrect[academy] = %q, want oZakaDemi", tbl.Autocorrect["academy"])
	}
	if tbl.Patterns == nil {
		t.Fatal("Patterns table is nil")
	}
	if tbl.Emoji.ByEmoticon[":)"] == "" {
		t.Error("Emoji.ByEmoticon[:)] is empty")
	}
}

func TestDefaultIsCachedAcrossCalls(t *testing.T) {
	a, err := Default()
	if err != nil {
		t.Fatalf("Default() error = %v", err)
	}
	b, err := Default()
	if err != nil {
		t.Fatalf("Default() error = %v", err)
	}
	if a != b {
		t.Error("Default() returned distinct *Tables across calls; expected the sync.Once-cached instance")
	}
}

func TestLoadWithNoDatabaseDirFallsBackToDefault(t *testing.T) {
	got, err := Load(nil)
	if err != nil {
		t.Fatalf("Load(nil) error = %v", err)
	}
	want, _ := Default()
	if got != want {
		t.Error("Load(nil) did not fall back to the cached Default() tables")
	}
}
