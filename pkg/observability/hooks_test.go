package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	r := NoopResolveHooks{}
	r.OnResolveStart(ctx, 3)
	r.OnLookup(ctx, "com.google.guava:guava", time.Second, nil)
	r.OnResolveComplete(ctx, 3, 1, time.Second)

	h := NoopHTTPHooks{}
	h.OnRequest(ctx, "GET", "repo1.maven.org", "/maven2/junit/junit/maven-metadata.xml")
	h.OnResponse(ctx, "GET", "repo1.maven.org", "/maven2/junit/junit/maven-metadata.xml", 200, time.Second)
	h.OnError(ctx, "GET", "repo1.maven.org", "/maven2/junit/junit/maven-metadata.xml", nil)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()

	if _, ok := Resolve().(NoopResolveHooks); !ok {
		t.Error("Resolve() should return NoopResolveHooks by default")
	}
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Error("HTTP() should return NoopHTTPHooks by default")
	}

	customResolve := &testResolveHooks{}
	SetResolveHooks(customResolve)
	if Resolve() != customResolve {
		t.Error("SetResolveHooks should set custom hooks")
	}

	customHTTP := &testHTTPHooks{}
	SetHTTPHooks(customHTTP)
	if HTTP() != customHTTP {
		t.Error("SetHTTPHooks should set custom hooks")
	}

	Reset()
	if _, ok := Resolve().(NoopResolveHooks); !ok {
		t.Error("Reset() should restore NoopResolveHooks")
	}
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Error("Reset() should restore NoopHTTPHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testResolveHooks{}
	SetResolveHooks(custom)

	// Setting nil should be ignored
	SetResolveHooks(nil)

	if Resolve() != custom {
		t.Error("SetResolveHooks(nil) should be ignored")
	}

	Reset()
}

// Test implementations
type testResolveHooks struct{ NoopResolveHooks }
type testHTTPHooks struct{ NoopHTTPHooks }
