package query

// ProductKeywordFields is the fixed OR set a catalog keyword search
// expands over.
var ProductKeywordFields = []string{"name", "brand", "category"}

// WithKeyword attaches a case-insensitive substring search across the
// given fields. An empty keyword leaves the predicate unchanged.
func WithKeyword(pred Predicate, keyword string, fields []string) Predicate {
	if keyword == "" {
		return pred
	}

	pred.Keyword = keyword
	pred.Fields = fields
	return pred
}
