package lametta

import (
	"bytes"
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
	gojson "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Source decodes one serialized configuration document into the generic
// nested form the Validator consumes: string-keyed mappings, []any
// sequences, and the scalars string/int64/float64/bool. Every Source must
// preserve the integer/float distinction exactly as written in the document;
// the no-coercion contract is meaningless otherwise.
type Source interface {
	Decode() (any, error)
	// Format names the document format, e.g. "json".
	Format() string
}

// JSONBytes returns a Source over a JSON document. Numbers are decoded via
// go-json in Number mode and resolved to int64 when the literal is integral
// ("1" -> int64, "1.0" and "1e3" -> float64).
func JSONBytes(b []byte) Source { return jsonSource{r: bytes.NewReader(b)} }

// JSONReader returns a Source streaming a JSON document from r.
func JSONReader(r io.Reader) Source { return jsonSource{r: r} }

type jsonSource struct{ r io.Reader }

func (s jsonSource) Format() string { return "json" }

func (s jsonSource) Decode() (any, error) {
	dec := gojson.NewDecoder(s.r)
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("json: %w", err)
	}
	return normalizeDecoded(v), nil
}

// YAMLBytes returns a Source over a YAML document. yaml.v3 keeps integer,
// float, boolean and string scalars distinct on its own.
func YAMLBytes(b []byte) Source { return yamlSource{b: b} }

type yamlSource struct{ b []byte }

func (s yamlSource) Format() string { return "yaml" }

func (s yamlSource) Decode() (any, error) {
	var v any
	if err := yaml.Unmarshal(s.b, &v); err != nil {
		return nil, fmt.Errorf("yaml: %w", err)
	}
	return normalizeDecoded(v), nil
}

// TOMLBytes returns a Source over a TOML document.
func TOMLBytes(b []byte) Source { return tomlSource{b: b} }

type tomlSource struct{ b []byte }

func (s tomlSource) Format() string { return "toml" }

func (s tomlSource) Decode() (any, error) {
	var m map[string]any
	if err := toml.Unmarshal(s.b, &m); err != nil {
		return nil, fmt.Errorf("toml: %w", err)
	}
	return normalizeDecoded(m), nil
}

// normalizeDecoded brings decoder-specific shapes into the canonical input
// form. Integral kinds widen to int64 and json.Number resolves to int64 or
// float64 by literal form; nothing crosses between integer and float.
func normalizeDecoded(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[k] = normalizeDecoded(e)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = normalizeDecoded(e)
		}
		return out
	case []map[string]any: // BurntSushi array-of-tables
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = normalizeDecoded(e)
		}
		return out
	case gojson.Number:
		if n, err := t.Int64(); err == nil {
			return n
		}
		f, _ := t.Float64()
		return f
	case int:
		return int64(t)
	case int32:
		return int64(t)
	case uint64:
		return int64(t)
	case float32:
		return float64(t)
	default:
		return v
	}
}
