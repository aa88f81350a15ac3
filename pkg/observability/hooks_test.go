package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	// Pass hooks
	p := NoopPassHooks{}
	p.OnDetectStart(ctx, "hash123")
	p.OnDetectComplete(ctx, "hash123", true, time.Second)
	p.OnReconcileStart(ctx, 3)
	p.OnReconcileComplete(ctx, 5, time.Second)
	p.OnRenderStart(ctx, "svg")
	p.OnRenderComplete(ctx, "svg", 1024, time.Second, nil)

	// Cache hooks
	c := NoopCacheHooks{}
	c.OnCacheHit(ctx, "contour")
	c.OnCacheMiss(ctx, "drawing")
	c.OnCacheSet(ctx, "artifact", 1024)

	// Store hooks
	s := NoopStoreHooks{}
	s.OnLoad(ctx, "file", "plan-a", 42, time.Second, nil)
	s.OnSave(ctx, "mongo", "plan-a", 42, time.Second, nil)
}

func TestGlobalHooksRegistry(t *testing.T) {
	// Reset to known state
	Reset()

	// Verify defaults are noop
	if _, ok := Pass().(NoopPassHooks); !ok {
		t.Error("Pass() should return NoopPassHooks by default")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Cache() should return NoopCacheHooks by default")
	}
	if _, ok := Store().(NoopStoreHooks); !ok {
		t.Error("Store() should return NoopStoreHooks by default")
	}

	// Set custom hooks
	customPass := &testPassHooks{}
	SetPassHooks(customPass)
	if Pass() != customPass {
		t.Error("SetPassHooks should set custom hooks")
	}

	customCache := &testCacheHooks{}
	SetCacheHooks(customCache)
	if Cache() != customCache {
		t.Error("SetCacheHooks should set custom hooks")
	}

	customStore := &testStoreHooks{}
	SetStoreHooks(customStore)
	if Store() != customStore {
		t.Error("SetStoreHooks should set custom hooks")
	}

	// Reset and verify
	Reset()
	if _, ok := Pass().(NoopPassHooks); !ok {
		t.Error("Reset() should restore NoopPassHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testPassHooks{}
	SetPassHooks(custom)

	// Setting nil should be ignored
	SetPassHooks(nil)

	if Pass() != custom {
		t.Error("SetPassHooks(nil) should be ignored")
	}

	Reset()
}

// Test implementations
type testPassHooks struct{ NoopPassHooks }
type testCacheHooks struct{ NoopCacheHooks }
type testStoreHooks struct{ NoopStoreHooks }
