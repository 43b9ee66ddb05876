package query

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/noyo-commerce/storefront-service/pkg/errs"
)

// Control parameters drive search and windowing and are never treated
// as field filters.
var controlParams = map[string]bool{
	"keyword": true,
	"page":    true,
	"limit":   true,
}

var comparisonTokens = map[string]Operator{
	"gte": OpGte,
	"gt":  OpGt,
	"lte": OpLte,
	"lt":  OpLt,
}

// Compile turns raw request parameters into a typed predicate. Keys of
// the form field[tok] with tok in {gte, gt, lte, lt} become comparison
// conditions; bare keys become exact matches. Keys carrying an
// unrecognized bracket token are dropped rather than passed through as
// literals. Empty input compiles to a match-all predicate.
func Compile(params url.Values) (Predicate, error) {
	pred := Predicate{}

	for key, values := range params {
		if controlParams[key] {
			continue
		}
		if len(values) == 0 || values[0] == "" {
			continue
		}

		field, token, err := splitFilterKey(key)
		if err != nil {
			return Predicate{}, err
		}

		value := coerceValue(values[0])

		if token == "" {
			pred.Conditions = append(pred.Conditions, Condition{Field: field, Op: OpEq, Value: value})
			continue
		}

		op, ok := comparisonTokens[token]
		if !ok {
			continue
		}
		pred.Conditions = append(pred.Conditions, Condition{Field: field, Op: op, Value: value})
	}

	return pred, nil
}

// splitFilterKey parses "field" or "field[token]". Any other use of
// brackets is malformed input.
func splitFilterKey(key string) (field string, token string, err error) {
	open := strings.IndexByte(key, '[')
	if open == -1 {
		if strings.ContainsRune(key, ']') {
			return "", "", errs.ErrQueryCompile
		}
		return key, "", nil
	}

	if open == 0 || !strings.HasSuffix(key, "]") {
		return "", "", errs.ErrQueryCompile
	}

	field = key[:open]
	token = key[open+1 : len(key)-1]
	if token == "" || strings.ContainsAny(token, "[]") || strings.ContainsAny(field, "]") {
		return "", "", errs.ErrQueryCompile
	}

	return field, token, nil
}

// coerceValue parses numeric-looking strings so comparisons against
// numeric fields compare numbers, not lexicographic strings.
func coerceValue(raw string) interface{} {
	if n, err := strconv.ParseFloat(raw, 64); err == nil {
		return n
	}
	return raw
}
