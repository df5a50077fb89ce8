package version

import (
	"runtime"
	"testing"
)

func TestPlatform(t *testing.T) {
	want := runtime.GOOS + "-" + runtime.GOARCH
	if got := Platform(); got != want {
		t.Errorf("Platform() = %q, want %q", got, want)
	}
}

func TestFull(t *testing.T) {
	old := [3]string{Version, Commit, BuildTime}
	t.Cleanup(func() { Version, Commit, BuildTime = old[0], old[1], old[2] })

	Version, Commit, BuildTime = "1.2.3", "abc123", "2026-01-01"
	if got, want := Info(), "1.2.3 (abc123)"; got != want {
		t.Errorf("Info() = %q, want %q", got, want)
	}
	if got, want := Full(), "1.2.3 (commit: abc123, built: 2026-01-01)"; got != want {
		t.Errorf("Full() = %q, want %q", got, want)
	}
}
