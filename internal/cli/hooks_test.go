package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestRenderStats(t *testing.T) {
	ctx := context.Background()
	s := newRenderStats()

	s.OnRender(ctx, "out/a.gv", "out/a.png", false, 20*time.Millisecond, nil)
	s.OnRender(ctx, "out/b.gv", "out/b.png", false, 80*time.Millisecond, nil)
	s.OnRender(ctx, "out/c.gv", "out/c.png", true, time.Second, nil)
	s.OnRender(ctx, "out/d.gv", "out/d.png", false, 2*time.Second, errors.New("syntax error"))
	s.OnCleanup(ctx, "*.gv", 4)

	if s.fresh != 2 {
		t.Errorf("fresh = %d, want 2", s.fresh)
	}
	if s.slowest != "b.gv" {
		t.Errorf("slowest = %q, want b.gv (cached and failed renders are ignored)", s.slowest)
	}
	if s.removed["*.gv"] != 4 {
		t.Errorf("removed[*.gv] = %d, want 4", s.removed["*.gv"])
	}

	var buf bytes.Buffer
	s.logTo(newLogger(&buf, LogDebug))
	out := buf.String()
	for _, want := range []string{"Slowest render", "b.gv", "Cleanup"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderStatsQuietWithoutRenders(t *testing.T) {
	var buf bytes.Buffer
	newRenderStats().logTo(newLogger(&buf, LogDebug))
	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}
