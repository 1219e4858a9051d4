package ledger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stalkmarket/stalkbot/internal/model"
)

func TestStore_LoadMissingFile(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "prices.csv"), []string{"a", "b"})

	rows, err := s.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("Load() = %v, want empty", rows)
	}
}

func TestStore_AppendWritesHeaderOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prices.csv")
	s := NewStore(path, []string{"author", "name"})

	if err := s.Append([]string{"u1", "amber"}); err != nil {
		t.Fatalf("Append() error = %v", err)
	}
	if err := s.Append([]string{"u2", "coprolite"}); err != nil {
		t.Fatalf("Append() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read file: %v", err)
	}
	want := "author,name\nu1,amber\nu2,coprolite\n"
	if string(data) != want {
		t.Errorf("file = %q, want %q", data, want)
	}
}

func TestStore_AppendFieldCountMismatch(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "x.csv"), []string{"a", "b"})

	if err := s.Append([]string{"only-one"}); err == nil {
		t.Error("Append() with wrong field count expected error, got nil")
	}
}

func TestStore_OverwriteRoundTrip(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "x.csv"), []string{"a", "b"})

	rows := [][]string{
		{"u1", "amber"},
		{"u1", "ankylo skull"},
		{"u2", "amber"},
	}
	if err := s.Overwrite(rows); err != nil {
		t.Fatalf("Overwrite() error = %v", err)
	}

	got, err := s.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(got) != len(rows) {
		t.Fatalf("Load() returned %d rows, want %d", len(got), len(rows))
	}
	for i := range rows {
		if !equalFields(got[i], rows[i]) {
			t.Errorf("row %d = %v, want %v", i, got[i], rows[i])
		}
	}
}

func TestStore_OverwriteEmptyKeepsHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "x.csv")
	s := NewStore(path, []string{"a", "b"})

	if err := s.Append([]string{"u1", "amber"}); err != nil {
		t.Fatalf("Append() error = %v", err)
	}
	if err := s.Overwrite(nil); err != nil {
		t.Fatalf("Overwrite() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read file: %v", err)
	}
	if string(data) != "a,b\n" {
		t.Errorf("file = %q, want header only", data)
	}
}

func TestStore_HeaderMismatchFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "x.csv")
	if err := os.WriteFile(path, []byte("wrong,header\nu1,amber\n"), 0644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	s := NewStore(path, []string{"author", "name"})
	if _, err := s.Load(); err == nil {
		t.Error("Load() with wrong header expected error, got nil")
	}
}

func TestStore_BackupLeavesSourceIntact(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prices.csv")
	s := NewStore(path, []string{"a", "b"})

	if err := s.Append([]string{"u1", "amber"}); err != nil {
		t.Fatalf("Append() error = %v", err)
	}
	before, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read file: %v", err)
	}

	dest, err := s.Backup("2020-04-12")
	if err != nil {
		t.Fatalf("Backup() error = %v", err)
	}
	if want := strings.TrimSuffix(path, ".csv") + "-2020-04-12.csv"; dest != want {
		t.Errorf("backup path = %q, want %q", dest, want)
	}

	copied, err := os.ReadFile(dest)
	if err != nil {
		t.Fatalf("read backup: %v", err)
	}
	if string(copied) != string(before) {
		t.Errorf("backup = %q, want verbatim copy %q", copied, before)
	}

	after, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read file: %v", err)
	}
	if string(after) != string(before) {
		t.Errorf("source changed by backup: %q -> %q", before, after)
	}
}

func TestStore_BackupMissingSourceWritesHeader(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "prices.csv"), []string{"a", "b"})

	dest, err := s.Backup("2020-04-12")
	if err != nil {
		t.Fatalf("Backup() error = %v", err)
	}
	data, err := os.ReadFile(dest)
	if err != nil {
		t.Fatalf("read backup: %v", err)
	}
	if string(data) != "a,b\n" {
		t.Errorf("backup = %q, want header only", data)
	}
}

func TestPriceLogRoundTrip(t *testing.T) {
	log := NewPriceLog(t.TempDir())

	ts := time.Date(2020, 4, 6, 12, 30, 0, 0, time.UTC)
	events := []model.PriceEvent{
		{Author: "u1", Kind: model.KindBuy, Price: 102, Timestamp: ts},
		{Author: "u1", Kind: model.KindSell, Price: 598, Timestamp: ts.Add(time.Hour)},
		{Author: "u2", Kind: model.KindSell, Price: 43, Timestamp: ts.Add(2 * time.Hour)},
	}
	for _, ev := range events {
		if err := log.Append(ev); err != nil {
			t.Fatalf("Append() error = %v", err)
		}
	}

	got, err := log.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(got) != len(events) {
		t.Fatalf("Load() returned %d events, want %d", len(got), len(events))
	}
	for i, ev := range events {
		if got[i] != ev {
			t.Errorf("event %d = %+v, want %+v", i, got[i], ev)
		}
	}
}

func TestPriceLogRejectsMalformedRows(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, PricesFile)
	content := "author,kind,price,timestamp\nu1,hold,100,2020-04-06T12:00:00Z\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	if _, err := NewPriceLog(dir).Load(); err == nil {
		t.Error("Load() with unknown kind expected error, got nil")
	}
}

func TestPrefLogPartialUpdate(t *testing.T) {
	log := NewPrefLog(t.TempDir())

	if err := log.SetTimezone("u1", "America/New_York"); err != nil {
		t.Fatalf("SetTimezone() error = %v", err)
	}
	if err := log.SetHemisphere("u1", model.HemisphereNorthern); err != nil {
		t.Fatalf("SetHemisphere() error = %v", err)
	}

	p, err := log.For("u1")
	if err != nil {
		t.Fatalf("For() error = %v", err)
	}
	if p.Timezone != "America/New_York" {
		t.Errorf("Timezone = %q, want preserved %q", p.Timezone, "America/New_York")
	}
	if p.Hemisphere != model.HemisphereNorthern {
		t.Errorf("Hemisphere = %q, want %q", p.Hemisphere, model.HemisphereNorthern)
	}

	// Superseded rows stay in the file; only the latest is authoritative.
	all, err := log.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(all) != 2 {
		t.Errorf("Load() returned %d rows, want 2", len(all))
	}
}

func TestPrefLogUnknownUserDefaults(t *testing.T) {
	log := NewPrefLog(t.TempDir())

	p, err := log.For("nobody")
	if err != nil {
		t.Fatalf("For() error = %v", err)
	}
	if p.Hemisphere != model.HemisphereUnset || p.Timezone != "" {
		t.Errorf("For() = %+v, want unset preferences", p)
	}
	if p.Location() != time.UTC {
		t.Errorf("Location() = %v, want UTC", p.Location())
	}
}

func TestFossilLogCollected(t *testing.T) {
	log := NewFossilLog(t.TempDir())

	for _, ev := range []model.CollectionEvent{
		{Author: "u1", Name: "amber"},
		{Author: "u1", Name: "ankylo skull"},
		{Author: "u2", Name: "amber"},
	} {
		if err := log.Append(ev); err != nil {
			t.Fatalf("Append() error = %v", err)
		}
	}

	have, err := log.Collected("u1")
	if err != nil {
		t.Fatalf("Collected() error = %v", err)
	}
	if len(have) != 2 || !have["amber"] || !have["ankylo skull"] {
		t.Errorf("Collected() = %v, want amber + ankylo skull", have)
	}
}
