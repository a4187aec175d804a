package buildinfo

import (
	"strings"
	"testing"
)

func TestTemplate(t *testing.T) {
	Version, Commit, Date = "v0.3.0", "abc123", "2026-01-02"
	t.Cleanup(func() { Version, Commit, Date = "dev", "none", "unknown" })

	got := Template()
	for _, want := range []string{"{{.Name}} version v0.3.0", "commit: abc123", "built: 2026-01-02"} {
		if !strings.Contains(got, want) {
			t.Errorf("Template() = %q, missing %q", got, want)
		}
	}
	if !strings.HasPrefix(String(), "version: v0.3.0") {
		t.Errorf("String() = %q", String())
	}
}
