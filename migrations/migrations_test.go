package migrations

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/rs/zerolog"
)

func TestReadMigrationFilesSortsAndSkips(t *testing.T) {
	fsys := fstest.MapFS{
		"sql/010_later.sql":       {Data: []byte("SELECT 10;")},
		"sql/002_second.sql":      {Data: []byte("SELECT 2;")},
		"sql/001_first.sql":       {Data: []byte("SELECT 1;")},
		"sql/README.md":           {Data: []byte("docs")},
		"sql/not_numbered.sql":    {Data: []byte("SELECT 0;")},
		"sql/nested/003_deep.sql": {Data: []byte("SELECT 3;")},
	}

	got, err := readMigrationFiles(fsys, "sql", zerolog.Nop())
	if err != nil {
		t.Fatalf("readMigrationFiles() error: %v", err)
	}

	want := []Migration{
		{Version: 1, Name: "first", SQL: "SELECT 1;"},
		{Version: 2, Name: "second", SQL: "SELECT 2;"},
		{Version: 10, Name: "later", SQL: "SELECT 10;"},
	}
	if len(got) != len(want) {
		t.Fatalf("readMigrationFiles() returned %d migrations, want %d: %+v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("migration %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestEmbeddedMigrations(t *testing.T) {
	got, err := readMigrationFiles(migrationFiles, "sql", zerolog.Nop())
	if err != nil {
		t.Fatalf("readMigrationFiles() error: %v", err)
	}
	if len(got) == 0 || got[0].Version != 1 {
		t.Fatalf("embedded migrations = %+v", got)
	}
	if !strings.Contains(got[0].SQL, "CREATE TABLE IF NOT EXISTS daily_color") {
		t.Fatal("first migration does not create daily_color")
	}
}

func TestPending(t *testing.T) {
	all := []Migration{{Version: 1}, {Version: 2}, {Version: 3}}
	got := pending(all, map[int]bool{1: true, 3: true})
	if len(got) != 1 || got[0].Version != 2 {
		t.Fatalf("pending() = %+v, want only version 2", got)
	}
}
