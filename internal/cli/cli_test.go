package cli

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/proinvestix/desktop/internal/config"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func isolate(t *testing.T) string {
	t.Helper()
	t.Setenv(config.EnvDataDir, "")
	t.Setenv(config.EnvDSN, "")
	t.Setenv(config.EnvUpdateURL, "")
	return t.TempDir()
}

func TestSettingsCommands(t *testing.T) {
	dir := isolate(t)

	out, err := run(t, "--data", dir, "settings", "list")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if !strings.Contains(out, "No settings stored.") {
		t.Errorf("list on empty store = %q", out)
	}

	if _, err := run(t, "--data", dir, "settings", "set", "theme", "dark"); err != nil {
		t.Fatalf("set: %v", err)
	}

	out, err = run(t, "--data", dir, "settings", "get", "theme")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if strings.TrimSpace(out) != "dark" {
		t.Errorf("get = %q, want dark", out)
	}

	out, err = run(t, "--data", dir, "settings", "ls")
	if err != nil {
		t.Fatalf("ls: %v", err)
	}
	if !strings.Contains(out, "theme") || !strings.Contains(out, "dark") {
		t.Errorf("ls = %q", out)
	}

	if _, err := run(t, "--data", dir, "settings", "rm", "theme"); err != nil {
		t.Fatalf("rm: %v", err)
	}
	if _, err := run(t, "--data", dir, "settings", "get", "theme"); err == nil {
		t.Error("get after rm: error = nil, want not found")
	}
	if _, err := run(t, "--data", dir, "settings", "rm", "theme"); err == nil {
		t.Error("second rm: error = nil, want not found")
	}
}

func TestSettingsArgsValidation(t *testing.T) {
	dir := isolate(t)

	tests := [][]string{
		{"settings", "get"},
		{"settings", "set", "only-key"},
		{"settings", "list", "extra"},
		{"settings", "set", "", "x"},
		{"settings", "set", "  ", "x"},
		{"settings", "get", ""},
		{"settings", "delete", ""},
		{"settings", "delete", "never-stored"},
	}
	for _, args := range tests {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			if _, err := run(t, append([]string{"--data", dir}, args...)...); err == nil {
				t.Error("error = nil, want argument error")
			}
		})
	}

	out, err := run(t, "--data", dir, "settings", "list")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if !strings.Contains(out, "No settings stored.") {
		t.Errorf("rejected commands left rows behind: %q", out)
	}
}

func TestUpdateCommand(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		want    string
		wantErr bool
	}{
		{
			name:   "newer release",
			status: http.StatusOK,
			body:   `{"tag_name":"v99.0.0","html_url":"https://example.com/r"}`,
			want:   "Update available",
		},
		{
			name:   "no releases",
			status: http.StatusNotFound,
			want:   "Already up to date",
		},
		{
			name:    "feed error",
			status:  http.StatusInternalServerError,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := isolate(t)
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()
			t.Setenv(config.EnvUpdateURL, srv.URL)

			out, err := run(t, "--data", dir, "update")
			if (err != nil) != tt.wantErr {
				t.Fatalf("update error = %v, wantErr %v", err, tt.wantErr)
			}
			if !strings.Contains(out, tt.want) {
				t.Errorf("output = %q, want %q", out, tt.want)
			}
		})
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.HasPrefix(out, "proinvestixctl ") || !strings.Contains(out, "OS/Arch:") {
		t.Errorf("version output = %q", out)
	}
}
