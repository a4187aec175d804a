package observability

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	h := NoopConvertHooks{}
	h.OnRunStart(ctx, "out")
	h.OnRender(ctx, "a.gv", "a.png", false, time.Second, nil)
	h.OnRender(ctx, "b.gv", "b.png", false, time.Second, errors.New("exit status 1"))
	h.OnCleanup(ctx, "*.gv", 2)
	h.OnRunComplete(ctx, "out", 1, 1, time.Second, nil)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	if _, ok := Convert().(NoopConvertHooks); !ok {
		t.Error("Convert() should return NoopConvertHooks by default")
	}

	custom := &testConvertHooks{}
	SetConvertHooks(custom)
	if Convert() != custom {
		t.Error("SetConvertHooks should set custom hooks")
	}

	SetConvertHooks(nil)
	if Convert() != custom {
		t.Error("SetConvertHooks(nil) should keep the current hooks")
	}

	Convert().OnRender(context.Background(), "a.gv", "a.png", true, 0, nil)
	if custom.renders != 1 || custom.cached != 1 {
		t.Errorf("renders=%d cached=%d, want 1 and 1", custom.renders, custom.cached)
	}

	Reset()
	if _, ok := Convert().(NoopConvertHooks); !ok {
		t.Error("Reset should restore NoopConvertHooks")
	}
}

type testConvertHooks struct {
	NoopConvertHooks
	renders int
	cached  int
}

func (h *testConvertHooks) OnRender(_ context.Context, _, _ string, cached bool, _ time.Duration, _ error) {
	h.renders++
	if cached {
		h.cached++
	}
}
