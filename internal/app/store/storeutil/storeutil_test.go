package storeutil

import (
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestStr(t *testing.T) {
	raw := bson.M{
		"present": "hello",
		"empty":   "",
		"number":  42,
		"null":    nil,
	}

	if got := Str(raw, "present", "def"); got != "hello" {
		t.Errorf("Str(present) = %q", got)
	}
	if got := Str(raw, "empty", "def"); got != "" {
		t.Errorf("Str(empty) = %q, want empty string (stored value wins)", got)
	}
	if got := Str(raw, "number", "def"); got != "def" {
		t.Errorf("Str(number) = %q, want default", got)
	}
	if got := Str(raw, "null", "def"); got != "def" {
		t.Errorf("Str(null) = %q, want default", got)
	}
	if got := Str(raw, "missing", "def"); got != "def" {
		t.Errorf("Str(missing) = %q, want default", got)
	}
}

func TestInt(t *testing.T) {
	raw := bson.M{
		"int":     7,
		"int32":   int32(8),
		"int64":   int64(9),
		"float":   float64(10.9),
		"string":  "11",
		"missing": nil,
	}

	if got := Int(raw, "int", -1); got != 7 {
		t.Errorf("Int(int) = %d", got)
	}
	if got := Int(raw, "int32", -1); got != 8 {
		t.Errorf("Int(int32) = %d", got)
	}
	if got := Int(raw, "int64", -1); got != 9 {
		t.Errorf("Int(int64) = %d", got)
	}
	if got := Int(raw, "float", -1); got != 10 {
		t.Errorf("Int(float) = %d, want truncation to 10", got)
	}
	if got := Int(raw, "string", -1); got != -1 {
		t.Errorf("Int(string) = %d, want default", got)
	}
	if got := Int(raw, "absent", -1); got != -1 {
		t.Errorf("Int(absent) = %d, want default", got)
	}
}

func TestTime(t *testing.T) {
	now := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)
	raw := bson.M{
		"native":    now,
		"datetime":  primitive.NewDateTimeFromTime(now),
		"timestamp": primitive.Timestamp{T: uint32(now.Unix())},
		"string":    "2025-03-14",
	}

	if got := Time(raw, "native"); !got.Equal(now) {
		t.Errorf("Time(native) = %v", got)
	}
	if got := Time(raw, "datetime"); !got.Equal(now) {
		t.Errorf("Time(datetime) = %v", got)
	}
	if got := Time(raw, "timestamp"); !got.Equal(now) {
		t.Errorf("Time(timestamp) = %v", got)
	}
	if got := Time(raw, "string"); !got.Equal(Epoch) {
		t.Errorf("Time(string) = %v, want Epoch", got)
	}
	if got := Time(raw, "missing"); !got.Equal(Epoch) {
		t.Errorf("Time(missing) = %v, want Epoch", got)
	}
}

func TestStrSlice(t *testing.T) {
	def := []string{"fallback"}
	raw := bson.M{
		"strings": primitive.A{"a", "b"},
		"mixed":   primitive.A{"a", 1, "b", nil},
		"empty":   primitive.A{},
		"goSlice": []any{"x", "y"},
		"scalar":  "not an array",
	}

	if got := StrSlice(raw, "strings", def); len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("StrSlice(strings) = %v", got)
	}
	if got := StrSlice(raw, "mixed", def); len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("StrSlice(mixed) = %v, non-string elements should be skipped", got)
	}
	if got := StrSlice(raw, "empty", def); len(got) != 0 {
		t.Errorf("StrSlice(empty) = %v, stored empty array wins over default", got)
	}
	if got := StrSlice(raw, "goSlice", def); len(got) != 2 {
		t.Errorf("StrSlice(goSlice) = %v", got)
	}
	if got := StrSlice(raw, "scalar", def); len(got) != 1 || got[0] != "fallback" {
		t.Errorf("StrSlice(scalar) = %v, want default", got)
	}
	if got := StrSlice(raw, "missing", def); len(got) != 1 || got[0] != "fallback" {
		t.Errorf("StrSlice(missing) = %v, want default", got)
	}
}

func TestMap(t *testing.T) {
	if m, ok := Map(bson.M{"k": "v"}); !ok || m["k"] != "v" {
		t.Errorf("Map(bson.M) = %v, %v", m, ok)
	}
	if m, ok := Map(bson.D{{Key: "k", Value: "v"}}); !ok || m["k"] != "v" {
		t.Errorf("Map(bson.D) = %v, %v", m, ok)
	}
	if m, ok := Map(map[string]any{"k": "v"}); !ok || m["k"] != "v" {
		t.Errorf("Map(map) = %v, %v", m, ok)
	}
	if _, ok := Map("scalar"); ok {
		t.Error("Map(scalar) should report false")
	}
	if _, ok := Map(nil); ok {
		t.Error("Map(nil) should report false")
	}
}

func TestID(t *testing.T) {
	oid := primitive.NewObjectID()
	if got := ID(bson.M{"_id": oid}); got != oid.Hex() {
		t.Errorf("ID(ObjectID) = %q, want hex %q", got, oid.Hex())
	}
	if got := ID(bson.M{"_id": "hero"}); got != "hero" {
		t.Errorf("ID(string) = %q", got)
	}
	if got := ID(bson.M{"_id": 5}); got != "" {
		t.Errorf("ID(int) = %q, want empty", got)
	}
	if got := ID(bson.M{}); got != "" {
		t.Errorf("ID(missing) = %q, want empty", got)
	}
}

func TestPaginate(t *testing.T) {
	opts := Paginate(10, 3)
	if *opts.Limit != 10 {
		t.Errorf("Limit = %d, want 10", *opts.Limit)
	}
	if *opts.Skip != 20 {
		t.Errorf("Skip = %d, want 20", *opts.Skip)
	}

	// Non-positive arguments fall back to defaults.
	opts = Paginate(0, 0)
	if *opts.Limit != 20 {
		t.Errorf("default Limit = %d, want 20", *opts.Limit)
	}
	if *opts.Skip != 0 {
		t.Errorf("default Skip = %d, want 0", *opts.Skip)
	}
}
