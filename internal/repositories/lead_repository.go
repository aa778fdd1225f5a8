package repositories

import (
	"context"
	"errors"
	"math"
	"regexp"
	"time"

	"leadtrack-backend/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/sync/errgroup"
)

// ErrInvalidSortField rejects sort fields outside the allow-list.
var ErrInvalidSortField = errors.New("unsupported sort field")

// Only these fields may appear as equality filters. Unknown query keys are
// ignored rather than passed through to the store.
var filterableFields = map[string]bool{
	"status":         true,
	"priority":       true,
	"source":         true,
	"assignedTo":     true,
	"projectStatus":  true,
	"proposalStatus": true,
	"company":        true,
}

var sortableFields = map[string]bool{
	"createdAt":              true,
	"modifiedAt":             true,
	"name":                   true,
	"company":                true,
	"status":                 true,
	"priority":               true,
	"proposedCost":           true,
	"total_payment_required": true,
	"nextFollowUpDate":       true,
}

// FilterableFields reports whether key is an accepted listing filter.
func FilterableFields(key string) bool { return filterableFields[key] }

type LeadRepository struct {
	Col *mongo.Collection
}

func NewLeadRepository(database *mongo.Database, collection string) *LeadRepository {
	return &LeadRepository{Col: database.Collection(collection)}
}

func (r *LeadRepository) Create(ctx context.Context, lead *models.Lead) error {
	res, err := r.Col.InsertOne(ctx, lead)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		lead.ID = oid
	}
	return nil
}

func (r *LeadRepository) Get(ctx context.Context, id primitive.ObjectID) (*models.Lead, error) {
	var lead models.Lead
	err := r.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&lead)
	if err != nil {
		return nil, err
	}
	return &lead, nil
}

// Update applies a partial $set built from the non-nil request fields and
// returns the document after the update.
func (r *LeadRepository) Update(ctx context.Context, id primitive.ObjectID, req *models.UpdateLeadRequest) (*models.Lead, error) {
	set := buildLeadUpdate(req)
	set["modifiedAt"] = time.Now()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var lead models.Lead
	err := r.Col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&lead)
	if err != nil {
		return nil, err
	}
	return &lead, nil
}

func (r *LeadRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.Col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// List runs the paged fetch and the total count concurrently against the
// identical predicate, so the totals can never drift from the page contents.
func (r *LeadRepository) List(ctx context.Context, params models.ListLeadsParams) (*models.LeadPage, error) {
	if !sortableFields[params.SortField] {
		return nil, ErrInvalidSortField
	}

	filter := buildListFilter(params)
	sort := buildListSort(params.SortField, params.SortOrder)

	findOpts := options.Find().
		SetSort(sort).
		SetSkip(listSkip(params)).
		SetLimit(int64(params.Limit))

	var (
		leads = []models.Lead{}
		total int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		cur, err := r.Col.Find(gctx, filter, findOpts)
		if err != nil {
			return err
		}
		return cur.All(gctx, &leads)
	})
	g.Go(func() error {
		var err error
		total, err = r.Col.CountDocuments(gctx, filter)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return newLeadPage(params, total, leads), nil
}

// listSkip converts 1-based page/limit into the cursor offset.
func listSkip(params models.ListLeadsParams) int64 {
	return int64(params.Page-1) * int64(params.Limit)
}

// newLeadPage assembles one page of results with totals computed against the
// same predicate as the data fetch.
func newLeadPage(params models.ListLeadsParams, total int64, leads []models.Lead) *models.LeadPage {
	return &models.LeadPage{
		Total:      total,
		Page:       params.Page,
		Limit:      params.Limit,
		TotalPages: int64(math.Ceil(float64(total) / float64(params.Limit))),
		Data:       leads,
	}
}

// buildListFilter translates listing params into a single predicate:
// free-text search OR'd over name/email/company, a non-null guard on the
// sort field (documents without it have no defined sort position and are
// excluded), and allow-listed equality filters. "all" and empty values
// mean no constraint.
func buildListFilter(params models.ListLeadsParams) bson.M {
	filter := bson.M{}

	if params.Search != "" {
		pattern := regexp.QuoteMeta(params.Search)
		search := bson.M{"$regex": pattern, "$options": "i"}
		filter["$or"] = []bson.M{
			{"name": search},
			{"email": search},
			{"company": search},
		}
	}

	filter[params.SortField] = bson.M{"$ne": nil}

	for key, value := range params.Filters {
		if !filterableFields[key] {
			continue
		}
		if value == "" || value == "all" {
			continue
		}
		// Equality on the sort field subsumes the non-null guard.
		filter[key] = value
	}

	return filter
}

// buildListSort orders by the requested field with _id as the tie-break so
// equal sort values page deterministically.
func buildListSort(field, order string) bson.D {
	dir := -1
	if order == "asc" {
		dir = 1
	}
	return bson.D{
		{Key: field, Value: dir},
		{Key: "_id", Value: dir},
	}
}
