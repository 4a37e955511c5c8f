package storage

import "go.mongodb.org/mongo-driver/bson"

type filterKind int

const (
	kindAlways filterKind = iota
	kindEq
	kindRange
	kindAnd
)

// Filter is a small structural predicate built by the window and retention
// code and compiled to a bson.M in exactly one place. Supported shapes are
// match-everything, exact match, range and logical AND.
type Filter struct {
	kind  filterKind
	field string
	eq    interface{}
	gte   interface{}
	lte   interface{}
	lt    interface{}
	parts []Filter
}

// Always matches every document in a collection.
func Always() Filter {
	return Filter{kind: kindAlways}
}

func Eq(field string, value interface{}) Filter {
	return Filter{kind: kindEq, field: field, eq: value}
}

// Between matches field values in [gte, lte]. A nil bound leaves that side
// unbounded; two nil bounds collapse to Always.
func Between(field string, gte, lte interface{}) Filter {
	if gte == nil && lte == nil {
		return Always()
	}
	return Filter{kind: kindRange, field: field, gte: gte, lte: lte}
}

// Before matches field values strictly less than the given value.
func Before(field string, lt interface{}) Filter {
	return Filter{kind: kindRange, field: field, lt: lt}
}

// And combines filters. Always parts are dropped; zero remaining parts is
// Always, one part is returned as-is.
func And(filters ...Filter) Filter {
	parts := make([]Filter, 0, len(filters))
	for _, f := range filters {
		if f.kind == kindAlways {
			continue
		}
		parts = append(parts, f)
	}
	switch len(parts) {
	case 0:
		return Always()
	case 1:
		return parts[0]
	}
	return Filter{kind: kindAnd, parts: parts}
}

// IsAlways reports whether the filter matches everything.
func (f Filter) IsAlways() bool {
	return f.kind == kindAlways
}

// BSON compiles the filter for the mongo driver.
func (f Filter) BSON() bson.M {
	switch f.kind {
	case kindEq:
		return bson.M{f.field: f.eq}
	case kindRange:
		rng := bson.M{}
		if f.gte != nil {
			rng["$gte"] = f.gte
		}
		if f.lte != nil {
			rng["$lte"] = f.lte
		}
		if f.lt != nil {
			rng["$lt"] = f.lt
		}
		return bson.M{f.field: rng}
	case kindAnd:
		parts := make([]bson.M, 0, len(f.parts))
		for _, p := range f.parts {
			parts = append(parts, p.BSON())
		}
		return bson.M{"$and": parts}
	default:
		return bson.M{}
	}
}
