package ir

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSetLastWriteWins(t *testing.T) {
	obj := Object().
		Set("a", FromInt(1)).
		Set("b", FromInt(2)).
		Set("a", FromInt(3))
	if len(obj.Fields) != 2 {
		t.Fatalf("expected 2 fields, got %d", len(obj.Fields))
	}
	// the later value wins but the key keeps its first position
	if obj.Fields[0].String != "a" || obj.Fields[1].String != "b" {
		t.Errorf("field order changed: %q, %q", obj.Fields[0].String, obj.Fields[1].String)
	}
	if v := Get(obj, "a"); v == nil || v.Int64 == nil || *v.Int64 != 3 {
		t.Errorf("Get(a) = %v, want 3", v)
	}
}

func TestSetNil(t *testing.T) {
	obj := Object().Set("a", nil)
	if v := Get(obj, "a"); v == nil || v.Type != NullType {
		t.Errorf("Set(a, nil) stored %v, want null", v)
	}
}

func TestMarshalJSONOrder(t *testing.T) {
	obj := Object().
		Set("z", FromInt(1)).
		Set("a", FromString("x")).
		Set("m", FromBool(true))
	want := `{"z":1,"a":"x","m":true}`
	if got := mustJSON(t, obj); got != want {
		t.Errorf("MarshalJSON() = %s, want %s", got, want)
	}
}

func TestMarshalJSONNested(t *testing.T) {
	obj := Object().
		Set("tags", FromSlice([]*Node{FromString("x"), Null()})).
		Set("meta", Object().Set("n", FromFloat(2.5)))
	want := `{"tags":["x",null],"meta":{"n":2.5}}`
	if got := mustJSON(t, obj); got != want {
		t.Errorf("MarshalJSON() = %s, want %s", got, want)
	}
}

func TestCloneIndependent(t *testing.T) {
	obj := Object().Set("a", Object().Set("b", FromInt(1)))
	cp := obj.Clone()
	if !Equal(obj, cp) {
		t.Fatal("clone not equal to original")
	}
	cp.Set("a", FromInt(9))
	if Equal(obj, cp) {
		t.Error("mutating the clone changed the original")
	}
}

func TestPath(t *testing.T) {
	obj := Object().Set("a", FromSlice([]*Node{Object().Set("b", FromInt(1))}))
	leaf := Get(Get(obj, "a").Values[0], "b")
	if got := leaf.Path(); got != "$.a[0].b" {
		t.Errorf("Path() = %q, want $.a[0].b", got)
	}
}

func TestToAny(t *testing.T) {
	obj := Object().
		Set("n", FromInt(30)).
		Set("f", FromFloat(1.5)).
		Set("s", FromString("x")).
		Set("b", FromBool(true)).
		Set("z", Null())
	want := map[string]any{
		"n": int64(30),
		"f": 1.5,
		"s": "x",
		"b": true,
		"z": nil,
	}
	if diff := cmp.Diff(want, ToAny(obj)); diff != "" {
		t.Errorf("ToAny() mismatch (-want +got):\n%s", diff)
	}
}
