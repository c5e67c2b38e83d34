package catalog

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// refAliases maps alternate reference field names the backend has used over
// time onto the canonical field. An alias is only applied when the canonical
// field is absent.
var refAliases = []struct{ alias, canonical string }{
	{"languageId", "language"},
	{"skillId", "skill"},
	{"grammarTypeId", "grammar"},
	{"grammarId", "grammar"},
}

// refFields hold references to other entities. Populated (object) references
// are collapsed to their id.
var refFields = []string{"language", "skill", "grammar", "vocabularyId", "rolePlayId"}

// NormalizeRecord returns a copy of rec in the canonical shape:
//   - exactly one "id" key (from "id", else "_id"), stringified; "_id" is dropped
//   - legacy reference aliases (languageId, skillId, ...) folded into their canonical field
//   - populated references ({"id": ...} or {"_id": ...}) collapsed to the id string
//
// NormalizeRecord is idempotent.
func NormalizeRecord(rec map[string]any) map[string]any {
	out := make(map[string]any, len(rec))
	for k, v := range rec {
		if k == "_id" {
			continue
		}
		out[k] = v
	}

	if id, ok := idString(rec["id"]); ok {
		out["id"] = id
	} else if id, ok := idString(rec["_id"]); ok {
		out["id"] = id
	} else {
		delete(out, "id")
	}

	for _, a := range refAliases {
		v, ok := out[a.alias]
		if !ok {
			continue
		}
		if _, exists := out[a.canonical]; !exists || out[a.canonical] == nil {
			out[a.canonical] = v
		}
		delete(out, a.alias)
	}

	for _, f := range refFields {
		v, ok := out[f]
		if !ok || v == nil {
			continue
		}
		if _, isMap := v.(map[string]any); !isMap {
			continue
		}
		if id, ok := idString(v); ok {
			out[f] = id
		}
	}

	return out
}

// NormalizeCollection applies NormalizeRecord to every record.
func NormalizeCollection(records []map[string]any) []map[string]any {
	out := make([]map[string]any, len(records))
	for i, rec := range records {
		out[i] = NormalizeRecord(rec)
	}
	return out
}

// idString extracts an id from the shapes the backend emits: plain strings,
// numbers, extended-JSON {"$oid": ...} and populated objects.
func idString(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, t != ""
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case json.Number:
		return t.String(), true
	case map[string]any:
		for _, key := range []string{"$oid", "$uuid", "id", "_id"} {
			if id, ok := idString(t[key]); ok {
				return id, true
			}
		}
		return "", false
	case nil:
		return "", false
	default:
		s := fmt.Sprint(t)
		return s, s != ""
	}
}

// decodeRecords converts normalized records into typed entities.
// Records that do not fit T are skipped and reported in the returned count.
func decodeRecords[T any](records []map[string]any) ([]T, int) {
	result := make([]T, 0, len(records))
	skipped := 0
	for _, rec := range records {
		var item T
		if err := remarshal(rec, &item); err != nil {
			skipped++
			continue
		}
		result = append(result, item)
	}
	return result, skipped
}

func remarshal(src any, dst any) error {
	b, err := json.Marshal(src)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, dst)
}
