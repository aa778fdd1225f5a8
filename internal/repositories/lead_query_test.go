package repositories

import (
	"testing"

	"leadtrack-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestBuildListFilterSearch(t *testing.T) {
	filter := buildListFilter(models.ListLeadsParams{
		SortField: "createdAt",
		Search:    "acme",
	})

	or, ok := filter["$or"].([]bson.M)
	require.True(t, ok, "search must produce an $or clause")
	require.Len(t, or, 3)

	expected := bson.M{"$regex": "acme", "$options": "i"}
	assert.Equal(t, expected, or[0]["name"])
	assert.Equal(t, expected, or[1]["email"])
	assert.Equal(t, expected, or[2]["company"])
}

func TestBuildListFilterSearchEscapesRegex(t *testing.T) {
	filter := buildListFilter(models.ListLeadsParams{
		SortField: "createdAt",
		Search:    "a.b(c",
	})

	or := filter["$or"].([]bson.M)
	search := or[0]["name"].(bson.M)
	assert.Equal(t, `a\.b\(c`, search["$regex"])
}

func TestBuildListFilterSortFieldGuard(t *testing.T) {
	filter := buildListFilter(models.ListLeadsParams{SortField: "nextFollowUpDate"})

	assert.Equal(t, bson.M{"$ne": nil}, filter["nextFollowUpDate"])
}

func TestBuildListFilterAllowList(t *testing.T) {
	filter := buildListFilter(models.ListLeadsParams{
		SortField: "createdAt",
		Filters: map[string]string{
			"status":     "won",
			"priority":   "all", // no constraint
			"source":     "",    // no constraint
			"__proto__":  "x",   // not allow-listed
			"assignedTo": "sam",
		},
	})

	assert.Equal(t, "won", filter["status"])
	assert.Equal(t, "sam", filter["assignedTo"])
	assert.NotContains(t, filter, "priority")
	assert.NotContains(t, filter, "source")
	assert.NotContains(t, filter, "__proto__")
}

func TestBuildListFilterEqualityReplacesGuard(t *testing.T) {
	filter := buildListFilter(models.ListLeadsParams{
		SortField: "status",
		Filters:   map[string]string{"status": "won"},
	})

	// Equality on the sort field wins over the non-null guard.
	assert.Equal(t, "won", filter["status"])
}

func TestBuildListSort(t *testing.T) {
	sort := buildListSort("createdAt", "desc")
	require.Len(t, sort, 2)
	assert.Equal(t, bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}, sort)

	sort = buildListSort("name", "asc")
	assert.Equal(t, bson.D{{Key: "name", Value: 1}, {Key: "_id", Value: 1}}, sort)
}

func TestFilterableFields(t *testing.T) {
	assert.True(t, FilterableFields("status"))
	assert.True(t, FilterableFields("company"))
	assert.False(t, FilterableFields("email"))
	assert.False(t, FilterableFields("$where"))
}

func TestBuildLeadUpdatePartial(t *testing.T) {
	name := "New Name"
	cost := 1200.50
	tags := []string{"vip", "q3"}

	set := buildLeadUpdate(&models.UpdateLeadRequest{
		Name:         &name,
		ProposedCost: &cost,
		Tags:         &tags,
	})

	assert.Equal(t, bson.M{
		"name":         "New Name",
		"proposedCost": 1200.50,
		"tags":         []string{"vip", "q3"},
	}, set)
}

func TestBuildLeadUpdateEmpty(t *testing.T) {
	set := buildLeadUpdate(&models.UpdateLeadRequest{})
	assert.Empty(t, set)
}

func TestListSkip(t *testing.T) {
	assert.Equal(t, int64(0), listSkip(models.ListLeadsParams{Page: 1, Limit: 10}))
	assert.Equal(t, int64(10), listSkip(models.ListLeadsParams{Page: 2, Limit: 10}))
	assert.Equal(t, int64(50), listSkip(models.ListLeadsParams{Page: 3, Limit: 25}))
}

func TestNewLeadPageTotals(t *testing.T) {
	params := models.ListLeadsParams{Page: 2, Limit: 10}
	leads := make([]models.Lead, 10)

	page := newLeadPage(params, 25, leads)

	assert.Equal(t, int64(25), page.Total)
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 10, page.Limit)
	// 25 records at 10 per page round up to 3 pages.
	assert.Equal(t, int64(3), page.TotalPages)
	assert.LessOrEqual(t, len(page.Data), params.Limit)
}

func TestNewLeadPageExactDivision(t *testing.T) {
	page := newLeadPage(models.ListLeadsParams{Page: 1, Limit: 10}, 30, nil)
	assert.Equal(t, int64(3), page.TotalPages)
}

func TestNewLeadPageEmpty(t *testing.T) {
	page := newLeadPage(models.ListLeadsParams{Page: 1, Limit: 10}, 0, []models.Lead{})

	assert.Equal(t, int64(0), page.Total)
	assert.Equal(t, int64(0), page.TotalPages)
	assert.Empty(t, page.Data)
}

func TestNewLeadPageLastPartialPage(t *testing.T) {
	params := models.ListLeadsParams{Page: 3, Limit: 10}
	leads := make([]models.Lead, 5) // 25 total, last page holds the remainder

	page := newLeadPage(params, 25, leads)

	assert.Equal(t, int64(3), page.TotalPages)
	assert.LessOrEqual(t, len(page.Data), params.Limit)
}

func TestBuildLeadUpdatePaymentFields(t *testing.T) {
	total := 5000.0
	payments := []models.Payment{{Amount: 1000, Source: "bank"}}

	set := buildLeadUpdate(&models.UpdateLeadRequest{
		TotalPaymentRequired: &total,
		AddedPayments:        &payments,
	})

	assert.Equal(t, 5000.0, set["total_payment_required"])
	assert.Equal(t, payments, set["addedPayments"])
}
