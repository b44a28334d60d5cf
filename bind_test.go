package lametta_test

import (
	"context"
	"testing"

	lametta "github.com/lametta/lametta-go"
	d "github.com/lametta/lametta-go/dsl"
)

func TestBind_ProjectsValueOntoStruct(t *testing.T) {
	type Backend struct {
		Type string `lametta:"type"`
		Root string `lametta:"root"`
	}
	type Config struct {
		Name    string  `lametta:"name"`
		Port    int     `lametta:"port"`
		Ratio   float64 `lametta:"ratio"`
		Tags    []string
		Backend Backend `lametta:"backend"`
	}

	fs := d.Object().
		Field("type", d.String()).
		Field("root", d.String()).
		MustBuild()
	schema := d.Object().
		Field("name", d.String()).
		Field("port", d.Int()).
		Field("ratio", d.Float()).
		Field("tags", d.SequenceOf(d.String())).
		Field("backend", d.Union("type").Variant("filesystem", fs).MustBuild()).
		MustBuild()

	doc := `{"name":"web","port":8080,"ratio":0.5,"tags":["a","b"],"backend":{"type":"filesystem","root":"/x"}}`
	v, err := lametta.ParseFrom(context.Background(), schema, lametta.JSONBytes([]byte(doc)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var cfg Config
	if err := lametta.Bind(v, &cfg); err != nil {
		t.Fatalf("unexpected bind error: %v", err)
	}
	if cfg.Name != "web" || cfg.Port != 8080 || cfg.Ratio != 0.5 {
		t.Fatalf("bound scalars = %+v", cfg)
	}
	if len(cfg.Tags) != 2 || cfg.Tags[0] != "a" {
		t.Fatalf("bound tags = %v", cfg.Tags)
	}
	if cfg.Backend.Root != "/x" || cfg.Backend.Type != "filesystem" {
		t.Fatalf("bound backend = %+v", cfg.Backend)
	}
}

func TestBind_NonStructTargetFails(t *testing.T) {
	schema := d.Object().Field("a", d.Int()).MustBuild()
	v, err := lametta.Validate(context.Background(), schema, map[string]any{"a": int64(1)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var s string
	if err := lametta.Bind(v, &s); err == nil {
		t.Fatalf("binding a mapping onto a string should fail")
	}
}
