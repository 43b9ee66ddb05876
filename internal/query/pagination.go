package query

import "strconv"

const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// Page is one result window. Absent, non-numeric, and non-positive
// inputs fall back to the defaults, so a zero limit can never reach
// the page-count division.
type Page struct {
	Number int
	Limit  int
}

func PlanPage(rawPage string, rawLimit string) Page {
	page, err := strconv.Atoi(rawPage)
	if err != nil || page < 1 {
		page = DefaultPage
	}

	limit, err := strconv.Atoi(rawLimit)
	if err != nil || limit < 1 {
		limit = DefaultLimit
	}

	return Page{Number: page, Limit: limit}
}

func (p Page) Skip() int64 {
	return int64(p.Number-1) * int64(p.Limit)
}

func (p Page) TotalPages(total int64) int64 {
	if p.Limit < 1 {
		return 0
	}
	return (total + int64(p.Limit) - 1) / int64(p.Limit)
}
