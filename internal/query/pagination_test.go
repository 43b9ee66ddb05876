package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlanPageDefaults(t *testing.T) {
	page := PlanPage("", "")

	assert.Equal(t, Page{Number: 1, Limit: 10}, page)
}

func TestPlanPageRejectsNonPositiveInputs(t *testing.T) {
	assert.Equal(t, Page{Number: 1, Limit: 10}, PlanPage("0", "0"))
	assert.Equal(t, Page{Number: 1, Limit: 10}, PlanPage("-1", "-5"))
	assert.Equal(t, Page{Number: 1, Limit: 10}, PlanPage("abc", "xyz"))
}

func TestPlanPageAcceptsExplicitWindow(t *testing.T) {
	page := PlanPage("3", "20")

	assert.Equal(t, Page{Number: 3, Limit: 20}, page)
	assert.Equal(t, int64(40), page.Skip())
}

func TestSkipFirstPageIsZero(t *testing.T) {
	assert.Equal(t, int64(0), PlanPage("1", "10").Skip())
}

func TestTotalPagesRoundsUp(t *testing.T) {
	page := Page{Number: 1, Limit: 10}

	assert.Equal(t, int64(3), page.TotalPages(25))
	assert.Equal(t, int64(2), page.TotalPages(20))
	assert.Equal(t, int64(1), page.TotalPages(1))
	assert.Equal(t, int64(0), page.TotalPages(0))
}
