// Package args turns a console-style variadic argument list into a message
// and structured key/values, the shape structured backends expect.
package args

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ErrorKey is the key the first error argument is stored under.
const ErrorKey = "error"

// KV is one structured key/value extracted from the arguments.
type KV struct {
	Key   string
	Value any
}

// Split separates args:
//   - map[string]any values (loglayer metadata) become KVs, sorted by key;
//   - errors become KVs under "error", "error_2", ...;
//   - everything else is formatted with fmt.Sprint and joined by one space.
//
// Later maps override earlier keys. args is not modified.
func Split(args []any) (msg string, kvs []KV) {
	var parts []string
	var meta map[string]any
	errN := 0

	for _, a := range args {
		switch v := a.(type) {
		case string:
			parts = append(parts, v)
		case map[string]any:
			if meta == nil {
				meta = make(map[string]any, len(v))
			}
			for k, val := range v {
				meta[k] = val
			}
		case error:
			errN++
			key := ErrorKey
			if errN > 1 {
				key = ErrorKey + "_" + strconv.Itoa(errN)
			}
			kvs = append(kvs, KV{Key: key, Value: v})
		default:
			parts = append(parts, fmt.Sprint(v))
		}
	}

	if len(meta) > 0 {
		keys := make([]string, 0, len(meta))
		for k := range meta {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			kvs = append(kvs, KV{Key: k, Value: meta[k]})
		}
	}

	return strings.Join(parts, " "), kvs
}

// Flatten returns kvs as alternating key/value pairs for sugared and logr
// style APIs.
func Flatten(kvs []KV) []any {
	if len(kvs) == 0 {
		return nil
	}
	out := make([]any, 0, 2*len(kvs))
	for _, kv := range kvs {
		out = append(out, kv.Key, kv.Value)
	}
	return out
}
