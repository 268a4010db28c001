// Package metavalue converts raw custom-field values to and from the
// tagged shapes the resolver works with.
//
// A raw value arrives as one of: a scalar (5, "5"), a comma delimited
// string ("5, 6"), a native sequence ([]any{5, 6}) or a PHP-serialized
// array ("a:2:{i:0;i:5;i:1;i:6;}"). Parse records which, so Encode can
// write the result back in the same convention.
package metavalue

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/elliotchance/phpserialize"

	"github.com/custodia-labs/relsync/internal/core/domain"
)

// Delimiter separates IDs in a delimited string value.
const Delimiter = ","

// Parse detects the shape of raw and splits it into items.
func Parse(raw any) domain.FieldValue {
	if items, ok := sequenceItems(raw); ok {
		return domain.FieldValue{Shape: domain.ShapeList, Items: items}
	}

	if s, ok := raw.(string); ok {
		if LooksSerialized(s) {
			if items, err := Unserialize(s); err == nil {
				return domain.FieldValue{Shape: domain.ShapeList, Items: items, Serialized: true}
			}
		}
		if strings.Contains(s, Delimiter) {
			return domain.FieldValue{Shape: domain.ShapeDelimited, Items: splitDelimited(s)}
		}
		return domain.FieldValue{Shape: domain.ShapeScalar, Items: []string{strings.TrimSpace(s)}}
	}

	if raw == nil {
		return domain.FieldValue{Shape: domain.ShapeScalar, Items: []string{}}
	}

	return domain.FieldValue{Shape: domain.ShapeScalar, Items: []string{formatScalar(raw)}}
}

// LooksSerialized reports whether s has the envelope of a serialized array.
func LooksSerialized(s string) bool {
	s = strings.TrimSpace(s)
	return len(s) >= len("a:0:{}") && strings.HasPrefix(s, "a:") && strings.HasSuffix(s, "}")
}

// Unserialize decodes a serialized array into its items, ordered by key.
// Nested arrays and null entries are skipped.
func Unserialize(s string) ([]string, error) {
	arr, err := phpserialize.UnmarshalAssociativeArray([]byte(strings.TrimSpace(s)))
	if err != nil {
		return nil, fmt.Errorf("unserialize: %w", err)
	}

	keys := make([]any, 0, len(arr))
	for k := range arr {
		keys = append(keys, k)
	}
	sort.SliceStable(keys, func(i, j int) bool {
		return keyLess(keys[i], keys[j])
	})

	items := make([]string, 0, len(keys))
	for _, k := range keys {
		v := arr[k]
		switch v.(type) {
		case nil, map[any]any, []any:
			continue
		}
		items = append(items, formatScalar(v))
	}
	return items, nil
}

// Serialize encodes ids as a serialized indexed array.
func Serialize(ids []int64) (string, error) {
	values := make([]any, len(ids))
	for i, id := range ids {
		values[i] = id
	}
	out, err := phpserialize.Marshal(values, nil)
	if err != nil {
		return "", fmt.Errorf("serialize: %w", err)
	}
	return string(out), nil
}

// Encode renders a resolution in its storage form.
// Serialized lists are serialized again, other lists become JSON arrays,
// and the unresolved sentinel is written as "0".
func Encode(r domain.Resolution) (string, error) {
	switch v := r.Value().(type) {
	case []int64:
		if r.Serialized {
			return Serialize(v)
		}
		out, err := json.Marshal(v)
		if err != nil {
			return "", fmt.Errorf("encode list: %w", err)
		}
		return string(out), nil
	case string:
		return v, nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	default:
		return "", fmt.Errorf("%w: unexpected resolution value %T", domain.ErrInvalidInput, v)
	}
}

// sequenceItems flattens the sequence types a caller might hand over.
func sequenceItems(raw any) ([]string, bool) {
	switch v := raw.(type) {
	case []any:
		items := make([]string, 0, len(v))
		for _, item := range v {
			if item == nil {
				continue
			}
			items = append(items, formatScalar(item))
		}
		return items, true
	case []string:
		items := make([]string, len(v))
		for i, item := range v {
			items[i] = strings.TrimSpace(item)
		}
		return items, true
	case []int:
		items := make([]string, len(v))
		for i, item := range v {
			items[i] = strconv.Itoa(item)
		}
		return items, true
	case []int64:
		items := make([]string, len(v))
		for i, item := range v {
			items[i] = strconv.FormatInt(item, 10)
		}
		return items, true
	case []float64:
		items := make([]string, len(v))
		for i, item := range v {
			items[i] = strconv.FormatFloat(item, 'f', -1, 64)
		}
		return items, true
	default:
		return nil, false
	}
}

func splitDelimited(s string) []string {
	parts := strings.Split(s, Delimiter)
	items := make([]string, len(parts))
	for i, part := range parts {
		items[i] = strings.TrimSpace(part)
	}
	return items
}

func formatScalar(v any) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case int:
		return strconv.Itoa(t)
	case int32:
		return strconv.FormatInt(int64(t), 10)
	case int64:
		return strconv.FormatInt(t, 10)
	case uint:
		return strconv.FormatUint(uint64(t), 10)
	case uint64:
		return strconv.FormatUint(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	case json.Number:
		return t.String()
	default:
		return fmt.Sprint(t)
	}
}

// keyLess orders array keys: integer keys numerically, then string keys.
func keyLess(a, b any) bool {
	ai, aNum := intKey(a)
	bi, bNum := intKey(b)
	switch {
	case aNum && bNum:
		return ai < bi
	case aNum != bNum:
		return aNum
	default:
		return fmt.Sprint(a) < fmt.Sprint(b)
	}
}

func intKey(k any) (int64, bool) {
	switch t := k.(type) {
	case int64:
		return t, true
	case int:
		return int64(t), true
	case string:
		n, err := strconv.ParseInt(t, 10, 64)
		return n, err == nil
	default:
		return 0, false
	}
}
