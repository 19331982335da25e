package discovery

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParsePgPassLine(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		want    PgPassEntry
		wantErr bool
	}{
		{
			name: "plain entry",
			line: "localhost:5432:shop:alice:secret",
			want: PgPassEntry{Host: "localhost", Port: 5432, Database: "shop", User: "alice", Password: "secret"},
		},
		{
			name: "wildcard port",
			line: "db.example.com:*:shop:alice:secret",
			want: PgPassEntry{Host: "db.example.com", Port: 5432, Database: "shop", User: "alice", Password: "secret"},
		},
		{
			name: "escaped colon in password",
			line: `localhost:5432:shop:alice:pa\:ss`,
			want: PgPassEntry{Host: "localhost", Port: 5432, Database: "shop", User: "alice", Password: "pa:ss"},
		},
		{
			name: "escaped backslash",
			line: `localhost:5432:shop:alice:pa\\ss`,
			want: PgPassEntry{Host: "localhost", Port: 5432, Database: "shop", User: "alice", Password: `pa\ss`},
		},
		{
			name:    "too few fields",
			line:    "localhost:5432:shop:alice",
			wantErr: true,
		},
		{
			name:    "bad port",
			line:    "localhost:abc:shop:alice:secret",
			wantErr: true,
		},
		{
			name:    "port out of range",
			line:    "localhost:70000:shop:alice:secret",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parsePgPassLine(tt.line)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %+v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParsePgPassFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pgpass")

	content := "# comment\n\nlocalhost:5432:shop:alice:secret\ninvalid line\n*:*:*:bob:fallback\n"
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	entries, err := ParsePgPassFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Host != "localhost" || entries[1].User != "bob" {
		t.Errorf("unexpected entries: %+v", entries)
	}
}

func TestParsePgPassFileInsecurePermissions(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pgpass")

	if err := os.WriteFile(path, []byte("localhost:5432:shop:alice:secret\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := ParsePgPassFile(path); err == nil {
		t.Error("expected permission error for 0644 file")
	}
}

func TestParsePgPassFileMissing(t *testing.T) {
	entries, err := ParsePgPassFile(filepath.Join(t.TempDir(), "nope"))
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected no entries, got %d", len(entries))
	}
}

func TestFindPassword(t *testing.T) {
	entries := []PgPassEntry{
		{Host: "localhost", Port: 5432, Database: "shop", User: "alice", Password: "secret"},
		{Host: "*", Port: 5432, Database: "*", User: "bob", Password: "fallback"},
	}

	if got := findPassword(entries, "localhost", 5432, "shop", "alice"); got != "secret" {
		t.Errorf("exact match: got %q", got)
	}
	if got := findPassword(entries, "db.example.com", 5432, "other", "bob"); got != "fallback" {
		t.Errorf("wildcard match: got %q", got)
	}
	if got := findPassword(entries, "localhost", 5433, "shop", "alice"); got != "" {
		t.Errorf("port mismatch should not match, got %q", got)
	}
}
