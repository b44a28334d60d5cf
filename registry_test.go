package lametta_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	lametta "github.com/lametta/lametta-go"
	d "github.com/lametta/lametta-go/dsl"
)

func TestRegistry_RegisterAndResolve(t *testing.T) {
	r := lametta.NewRegistry()
	schema := d.Object().Field("a", d.Int()).MustBuild()
	if err := r.Register("app", schema); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, ok := r.Resolve("app")
	if !ok || got != schema {
		t.Fatalf("Resolve returned %v, %v", got, ok)
	}
	if _, ok := r.Resolve("missing"); ok {
		t.Fatalf("Resolve of unknown id should fail")
	}
}

func TestRegistry_DuplicateKeepsFirstRegistration(t *testing.T) {
	r := lametta.NewRegistry()
	first := d.Object().Field("a", d.Int()).MustBuild()
	second := d.Object().Field("b", d.String()).MustBuild()
	if err := r.Register("app", first); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	err := r.Register("app", second)
	se, ok := lametta.AsSchemaError(err)
	if !ok || se.Code != lametta.SchemaCodeDuplicate || se.SchemaID != "app" {
		t.Fatalf("expected duplicate_schema for app, got %v", err)
	}
	got, _ := r.Resolve("app")
	if got != first {
		t.Fatalf("first registration must stay intact")
	}
}

func TestRegistry_ConcurrentSameIDHasOneWinner(t *testing.T) {
	r := lametta.NewRegistry()
	schema := d.Object().Field("a", d.Int()).MustBuild()
	const n = 32
	var wins atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if r.Register("race", schema) == nil {
				wins.Add(1)
			}
		}()
	}
	wg.Wait()
	if wins.Load() != 1 {
		t.Fatalf("expected exactly one winning registration, got %d", wins.Load())
	}
}

func TestRegistry_RejectsInconsistentUnion(t *testing.T) {
	r := lametta.NewRegistry()
	withoutDisc := d.Object().Field("a", d.Int()).MustBuild()
	bad := lametta.MustUnionOf("type", lametta.NewVariant("x", withoutDisc))
	schema := d.Object().Field("backend", bad).MustBuild()
	err := r.Register("app", schema)
	se, ok := lametta.AsSchemaError(err)
	if !ok || se.Code != lametta.SchemaCodeInconsistentUnion {
		t.Fatalf("expected inconsistent_union, got %v", err)
	}
	if _, ok := r.Resolve("app"); ok {
		t.Fatalf("failed registration must not be resolvable")
	}
}

func TestRegistry_IDsSorted(t *testing.T) {
	r := lametta.NewRegistry()
	schema := d.Object().Field("a", d.Int()).MustBuild()
	for _, id := range []string{"c", "a", "b"} {
		if err := r.Register(id, schema); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	ids := r.IDs()
	if len(ids) != 3 || ids[0] != "a" || ids[1] != "b" || ids[2] != "c" {
		t.Fatalf("IDs = %v", ids)
	}
}

func TestRegistry_ValidateByID(t *testing.T) {
	r := lametta.NewRegistry()
	schema := d.Object().Field("a", d.Int()).MustBuild()
	if err := r.Register("app", schema); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ctx := context.Background()
	if _, err := r.Validate(ctx, "app", map[string]any{"a": int64(1)}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err := r.Validate(ctx, "nope", map[string]any{})
	findIssue(t, err, lametta.CodeParseError, "")
}

func TestDefaultRegistry(t *testing.T) {
	schema := d.Object().Field("a", d.Int()).MustBuild()
	// tolerate repeated runs within one process; the id may already be taken
	_ = lametta.Register("registry_test.default", schema)
	if _, ok := lametta.Resolve("registry_test.default"); !ok {
		t.Fatalf("default registry should resolve registered id")
	}
	if err := lametta.Register("registry_test.default", schema); err == nil {
		t.Fatalf("expected duplicate_schema from default registry")
	}
}
