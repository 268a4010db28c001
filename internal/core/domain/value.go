package domain

import (
	"strconv"
	"strings"
)

// NoRelation is the value written to a relationship field when nothing
// resolved. The remote side reads 0 as "no relationship", which is not
// the same as the field being absent.
const NoRelation int64 = 0

// Shape is the encoding a raw field value arrived in.
// It is decided once on input and reused to encode the output.
type Shape int

const (
	// ShapeScalar is a single identifier, e.g. 5 or "5".
	ShapeScalar Shape = iota
	// ShapeDelimited is a comma separated string, e.g. "5, 6".
	ShapeDelimited
	// ShapeList is a sequence, either native or serialized.
	ShapeList
)

// String returns the string representation of the shape.
func (s Shape) String() string {
	switch s {
	case ShapeDelimited:
		return "delimited"
	case ShapeList:
		return "list"
	default:
		return "scalar"
	}
}

// FieldValue is a raw custom-field value after shape detection.
type FieldValue struct {
	// Shape is the detected input encoding.
	Shape Shape

	// Items are the referenced local IDs as found in the input, in order.
	Items []string

	// Serialized is true when a ShapeList value came in as a serialized string.
	Serialized bool
}

// IDs parses Items as local IDs, skipping entries that are not positive integers.
func (v FieldValue) IDs() []int64 {
	ids := make([]int64, 0, len(v.Items))
	for _, item := range v.Items {
		id, err := strconv.ParseInt(strings.TrimSpace(item), 10, 64)
		if err != nil || id <= 0 {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}

// Resolution holds the remote IDs that a FieldValue resolved to.
type Resolution struct {
	// Shape is copied from the input FieldValue.
	Shape Shape

	// IDs are the resolved remote IDs. Unresolved items are not represented.
	IDs []int64

	// Serialized is copied from the input FieldValue.
	Serialized bool

	// unresolved forces the sentinel regardless of Shape.
	unresolved bool
}

// NewResolution creates a resolution carrying the input's shape.
func NewResolution(in FieldValue, ids []int64) Resolution {
	if ids == nil {
		ids = []int64{}
	}
	return Resolution{Shape: in.Shape, IDs: ids, Serialized: in.Serialized}
}

// Unresolved returns a resolution whose value is NoRelation whatever the input shape.
func Unresolved(in FieldValue) Resolution {
	return Resolution{Shape: in.Shape, IDs: []int64{}, Serialized: in.Serialized, unresolved: true}
}

// IsUnresolved reports whether the resolution encodes to NoRelation.
func (r Resolution) IsUnresolved() bool {
	if r.unresolved {
		return true
	}
	return r.Shape != ShapeList && len(r.IDs) == 0
}

// Value returns the field value to hand back to the cross-post pipeline.
//
//   - ShapeList: []int64 (empty when nothing resolved)
//   - ShapeDelimited: comma joined string, or NoRelation
//   - ShapeScalar: the first ID as int64, or NoRelation
func (r Resolution) Value() any {
	if r.unresolved {
		return NoRelation
	}

	switch r.Shape {
	case ShapeList:
		out := make([]int64, len(r.IDs))
		copy(out, r.IDs)
		return out
	case ShapeDelimited:
		if len(r.IDs) == 0 {
			return NoRelation
		}
		return JoinIDs(r.IDs)
	default:
		if len(r.IDs) == 0 {
			return NoRelation
		}
		return r.IDs[0]
	}
}

// JoinIDs renders IDs as a comma separated string.
func JoinIDs(ids []int64) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatInt(id, 10)
	}
	return strings.Join(parts, ",")
}
