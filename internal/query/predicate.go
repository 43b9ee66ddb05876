package query

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
)

// Operator is the closed comparison vocabulary a filter condition may
// carry. Anything outside this set never reaches the store.
type Operator int

const (
	OpEq Operator = iota
	OpGte
	OpGt
	OpLte
	OpLt
)

func (op Operator) mongoKey() string {
	switch op {
	case OpGte:
		return "$gte"
	case OpGt:
		return "$gt"
	case OpLte:
		return "$lte"
	case OpLt:
		return "$lt"
	}
	return ""
}

// Condition is a single (field, operator, value) leaf.
type Condition struct {
	Field string
	Op    Operator
	Value interface{}
}

// Predicate is the structured selection handed to the catalog store.
// The zero value matches every document.
type Predicate struct {
	Conditions []Condition
	Keyword    string
	Fields     []string
}

// ToBSON renders the predicate as a store query document. Keyword
// clauses become a case-insensitive substring $or across the keyword
// fields, ANDed with the field conditions. Regex metacharacters in the
// keyword are escaped; the reference behavior passed them through, so
// this is a documented hardening deviation.
func (p Predicate) ToBSON() bson.M {
	m := bson.M{}

	for _, cond := range p.Conditions {
		if cond.Op == OpEq {
			m[cond.Field] = cond.Value
			continue
		}

		sub, ok := m[cond.Field].(bson.M)
		if !ok {
			sub = bson.M{}
			m[cond.Field] = sub
		}
		sub[cond.Op.mongoKey()] = cond.Value
	}

	if p.Keyword != "" && len(p.Fields) > 0 {
		pattern := regexp.QuoteMeta(p.Keyword)
		or := make(bson.A, 0, len(p.Fields))
		for _, field := range p.Fields {
			or = append(or, bson.M{field: bson.M{"$regex": pattern, "$options": "i"}})
		}
		m["$or"] = or
	}

	return m
}
