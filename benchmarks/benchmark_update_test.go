package benchmarks_test

import (
	"bytes"
	"fmt"
	"testing"

	govalues "github.com/reoring/govalues"
	"github.com/reoring/govalues/codec"
	"github.com/reoring/govalues/dsl"
)

// ---- Helpers ----

// wideCollection returns n string values "v0".."v{n-1}" plus a required
// integer "age" and a list "tags".
func wideCollection(tb testing.TB, n int) *govalues.Collection {
	tb.Helper()
	vals := make([]*govalues.Value, 0, n+2)
	for i := 0; i < n; i++ {
		s, err := dsl.String(govalues.Config{govalues.KeyID: fmt.Sprintf("v%d", i)}, dsl.MaxLen(64))
		if err != nil {
			tb.Fatalf("schema build failed: %v", err)
		}
		vals = append(vals, govalues.NewValue(nil, s))
	}
	age, err := dsl.Integer(govalues.Config{govalues.KeyID: "age", govalues.KeyRequired: true}, dsl.AtLeast(0))
	if err != nil {
		tb.Fatalf("schema build failed: %v", err)
	}
	tags, err := dsl.List(govalues.Config{govalues.KeyID: "tags"}, dsl.UniqueItems())
	if err != nil {
		tb.Fatalf("schema build failed: %v", err)
	}
	vals = append(vals, govalues.NewValue(1, age), govalues.NewValue(nil, tags))
	return govalues.NewCollection(vals)
}

// widePayload builds {"v0":" x0 ",...,"age":"42","tags":"a,b,c"}.
func widePayload(n int) []byte {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i := 0; i < n; i++ {
		fmt.Fprintf(&buf, "\"v%d\":\" x%d \",", i, i)
	}
	buf.WriteString(`"age":"42","tags":"a, b, c"}`)
	return buf.Bytes()
}

// ---- Benchmarks ----

func Benchmark_UpdateValues_Small(b *testing.B) {
	c := wideCollection(b, 4)
	data, err := codec.DecodeJSON(widePayload(4))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := c.UpdateValues(data); err != nil {
			b.Fatal(err)
		}
	}
}

func Benchmark_UpdateValues_Wide(b *testing.B) {
	c := wideCollection(b, 500)
	data, err := codec.DecodeJSON(widePayload(500))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := c.UpdateValues(data); err != nil {
			b.Fatal(err)
		}
	}
}

func Benchmark_Patch_SingleID_Wide(b *testing.B) {
	c := wideCollection(b, 500)
	data := map[string]any{"age": 7}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := c.Patch(data); err != nil {
			b.Fatal(err)
		}
	}
}

func Benchmark_DecodeAndUpdate_Wide(b *testing.B) {
	c := wideCollection(b, 500)
	raw := widePayload(500)
	b.ReportAllocs()
	b.SetBytes(int64(len(raw)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		data, err := codec.DecodeJSON(raw)
		if err != nil {
			b.Fatal(err)
		}
		if _, err := c.UpdateValues(data); err != nil {
			b.Fatal(err)
		}
	}
}
