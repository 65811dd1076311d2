// internal/app/store/storeutil/storeutil.go
package storeutil

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Paginate returns *options.FindOptions with skip/limit given a 1-based page.
func Paginate(limit, page int64) *options.FindOptions {
	if limit <= 0 {
		limit = 20
	}
	if page <= 0 {
		page = 1
	}
	sk := (page - 1) * limit
	return options.Find().SetLimit(limit).SetSkip(sk)
}

// Field coercion for raw bson.M documents. Stored content comes from
// admin forms and an earlier data import, so every field read defaults
// individually instead of failing the whole document.

// Epoch is the fixed default for date fields that are missing or
// cannot be interpreted as a timestamp.
var Epoch = time.Unix(0, 0).UTC()

// Str returns the stored string for key, or def when the field is
// missing, null, or not a string.
func Str(raw bson.M, key, def string) string {
	if v, ok := raw[key].(string); ok {
		return v
	}
	return def
}

// Int returns the stored numeric value for key as an int, or def when
// the field is missing or not a number. All numeric BSON kinds count
// as numbers.
func Int(raw bson.M, key string, def int) int {
	switch v := raw[key].(type) {
	case int:
		return v
	case int32:
		return int(v)
	case int64:
		return int(v)
	case float64:
		return int(v)
	default:
		return def
	}
}

// Time returns the stored timestamp for key. Native time values and
// BSON date/timestamp kinds are accepted; anything else resolves to
// the Epoch, never an error.
func Time(raw bson.M, key string) time.Time {
	switch v := raw[key].(type) {
	case time.Time:
		return v
	case primitive.DateTime:
		return v.Time().UTC()
	case primitive.Timestamp:
		return time.Unix(int64(v.T), 0).UTC()
	default:
		return Epoch
	}
}

// StrSlice returns the stored array of strings for key, or def when
// the field is missing or not an array. Non-string elements are
// skipped rather than failing the whole field.
func StrSlice(raw bson.M, key string, def []string) []string {
	arr, ok := Array(raw[key])
	if !ok {
		return def
	}
	out := make([]string, 0, len(arr))
	for _, el := range arr {
		if s, ok := el.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// Array reports whether v is an array value and returns its elements.
func Array(v any) ([]any, bool) {
	switch arr := v.(type) {
	case primitive.A:
		return arr, true
	case []any:
		return arr, true
	default:
		return nil, false
	}
}

// Map reports whether v is a document value and returns it as bson.M.
func Map(v any) (bson.M, bool) {
	switch m := v.(type) {
	case bson.M:
		return m, true
	case bson.D:
		return m.Map(), true
	case map[string]any:
		return m, true
	default:
		return nil, false
	}
}

// ID returns the document _id as a string. ObjectIDs render as hex;
// anything else unusable returns "".
func ID(raw bson.M) string {
	switch v := raw["_id"].(type) {
	case string:
		return v
	case primitive.ObjectID:
		return v.Hex()
	default:
		return ""
	}
}
