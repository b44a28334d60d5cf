package lametta_test

import (
	"context"
	"testing"

	lametta "github.com/lametta/lametta-go"
	d "github.com/lametta/lametta-go/dsl"
)

func TestApplyDefaults_MergesMissingFields(t *testing.T) {
	schema := d.Object().
		Field("host", d.String()).
		Field("port", d.Int()).Default(8080).
		MustBuild()
	in := map[string]any{"host": "h"}
	merged, ok := lametta.ApplyDefaults(schema, in).(map[string]any)
	if !ok {
		t.Fatalf("expected mapping, got %T", merged)
	}
	if merged["port"] != int64(8080) {
		t.Fatalf("port default = %v (%T)", merged["port"], merged["port"])
	}
	if _, exists := in["port"]; exists {
		t.Fatalf("caller input must not be mutated")
	}
}

func TestApplyDefaults_InputWins(t *testing.T) {
	schema := d.Object().
		Field("port", d.Int()).Default(8080).
		MustBuild()
	merged := lametta.ApplyDefaults(schema, map[string]any{"port": int64(9)}).(map[string]any)
	if merged["port"] != int64(9) {
		t.Fatalf("explicit value must win over default, got %v", merged["port"])
	}
}

func TestApplyDefaults_NestedObjects(t *testing.T) {
	limits := d.Object().
		Field("rate", d.Float()).Default(1.5).
		Field("burst", d.Int()).
		MustBuild()
	schema := d.Object().Field("limits", limits).MustBuild()

	in := map[string]any{"limits": map[string]any{"burst": int64(3)}}
	merged := lametta.ApplyDefaults(schema, in).(map[string]any)
	nested := merged["limits"].(map[string]any)
	if nested["rate"] != 1.5 {
		t.Fatalf("nested default = %v", nested["rate"])
	}
	if nested["burst"] != int64(3) {
		t.Fatalf("nested explicit value = %v", nested["burst"])
	}
}

func TestParseFrom_AppliesDefaults(t *testing.T) {
	schema := d.Object().
		Field("host", d.String()).
		Field("port", d.Int()).Default(8080).
		MustBuild()
	ctx := context.Background()

	v, err := lametta.ParseFrom(ctx, schema, lametta.JSONBytes([]byte(`{"host":"h"}`)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, _ := mustField(t, v, "port").Int(); got != 8080 {
		t.Fatalf("port = %d", got)
	}

	// SkipDefaults validates the document exactly as written
	_, err = lametta.ParseFrom(ctx, schema, lametta.JSONBytes([]byte(`{"host":"h"}`)), lametta.ParseOpt{SkipDefaults: true})
	findIssue(t, err, lametta.CodeMissingField, "port")
}

func TestParseFrom_DefaultsInsideUnionVariant(t *testing.T) {
	fs := d.Object().
		Field("type", d.String()).
		Field("root", d.String()).Default("/var/data").
		MustBuild()
	mongo := d.Object().
		Field("type", d.String()).
		Field("database", d.String()).
		Field("collection", d.String()).
		MustBuild()
	u := d.Union("type").Variant("filesystem", fs).Variant("mongodb", mongo).MustBuild()
	schema := d.Object().Field("backend", u).MustBuild()

	v, err := lametta.ParseFrom(context.Background(), schema, lametta.JSONBytes([]byte(`{"backend":{"type":"filesystem"}}`)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	backend := mustField(t, v, "backend")
	if got, _ := mustField(t, backend, "root").Str(); got != "/var/data" {
		t.Fatalf("root default = %q", got)
	}
	// defaults never resolve the discriminant itself
	_, err = lametta.ParseFrom(context.Background(), schema, lametta.JSONBytes([]byte(`{"backend":{}}`)))
	findIssue(t, err, lametta.CodeDiscriminantMissing, "backend")
}

func TestApplyDefaults_DefaultIsCopied(t *testing.T) {
	def := map[string]any{"rate": 1.5}
	limits := d.Object().Field("rate", d.Float()).MustBuild()
	schema := d.Object().Field("limits", limits).Default(def).MustBuild()

	merged := lametta.ApplyDefaults(schema, map[string]any{}).(map[string]any)
	got := merged["limits"].(map[string]any)
	got["rate"] = 9.9
	again := lametta.ApplyDefaults(schema, map[string]any{}).(map[string]any)
	if again["limits"].(map[string]any)["rate"] != 1.5 {
		t.Fatalf("defaults must be deep-copied per merge")
	}
}
