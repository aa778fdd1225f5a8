package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// BucketCount is one aggregation group: a raw field value and how many
// documents carry it.
type BucketCount struct {
	Label string `bson:"_id"`
	Count int64  `bson:"count"`
}

// DashboardRepository holds the fixed menu of read-only aggregation queries
// behind the dashboard endpoints. Every method recomputes from the store;
// nothing is cached.
type DashboardRepository struct {
	Col *mongo.Collection
}

func NewDashboardRepository(database *mongo.Database, collection string) *DashboardRepository {
	return &DashboardRepository{Col: database.Collection(collection)}
}

func (r *DashboardRepository) TotalCount(ctx context.Context) (int64, error) {
	return r.Col.CountDocuments(ctx, bson.M{})
}

func (r *DashboardRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	return r.Col.CountDocuments(ctx, bson.M{"status": status})
}

// CountCreatedBetween counts leads with createdAt in [from, to). Callers pass
// period boundaries from timeutil so the window follows the local calendar.
func (r *DashboardRepository) CountCreatedBetween(ctx context.Context, from, to time.Time) (int64, error) {
	return r.Col.CountDocuments(ctx, bson.M{
		"createdAt": bson.M{"$gte": from, "$lt": to},
	})
}

func (r *DashboardRepository) SumPaymentRequired(ctx context.Context) (float64, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"total_payment_required": bson.M{"$ne": nil}}}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id":   nil,
			"total": bson.M{"$sum": "$total_payment_required"},
		}}},
	}
	return r.sumPipeline(ctx, pipeline)
}

func (r *DashboardRepository) SumPaid(ctx context.Context) (float64, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$unwind", Value: "$addedPayments"}},
		bson.D{{Key: "$match", Value: bson.M{"addedPayments.amount": bson.M{"$ne": nil}}}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id":   nil,
			"total": bson.M{"$sum": "$addedPayments.amount"},
		}}},
	}
	return r.sumPipeline(ctx, pipeline)
}

// SumRemaining totals per-record (required − paid) across all leads. Overpaid
// records contribute negative remainders that offset the total.
func (r *DashboardRepository) SumRemaining(ctx context.Context) (float64, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$project", Value: bson.M{
			"remaining": bson.M{"$subtract": bson.A{
				bson.M{"$ifNull": bson.A{"$total_payment_required", 0}},
				bson.M{"$sum": bson.M{"$map": bson.M{
					"input": bson.M{"$ifNull": bson.A{"$addedPayments", bson.A{}}},
					"as":    "p",
					"in":    bson.M{"$ifNull": bson.A{"$$p.amount", 0}},
				}}},
			}},
		}}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id":   nil,
			"total": bson.M{"$sum": "$remaining"},
		}}},
	}
	return r.sumPipeline(ctx, pipeline)
}

// DailyCounts groups lead creations per local calendar day within [from, to),
// keyed "2006-01-02". Days with no leads are absent; the service fills them.
func (r *DashboardRepository) DailyCounts(ctx context.Context, from, to time.Time) (map[string]int64, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{
			"createdAt": bson.M{"$gte": from, "$lt": to},
		}}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id": bson.M{"$dateToString": bson.M{
				"format":   "%Y-%m-%d",
				"date":     "$createdAt",
				"timezone": from.Format("-07:00"),
			}},
			"count": bson.M{"$sum": 1},
		}}},
	}

	cur, err := r.Col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	var rows []BucketCount
	if err := cur.All(ctx, &rows); err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Label] = row.Count
	}
	return counts, nil
}

func (r *DashboardRepository) StatusCounts(ctx context.Context) ([]BucketCount, error) {
	return r.groupCounts(ctx, "$status")
}

// SourceCounts groups by the raw source value; bucketing (website/Unknown/
// literal) happens in the service so it stays unit-testable.
func (r *DashboardRepository) SourceCounts(ctx context.Context) ([]BucketCount, error) {
	return r.groupCounts(ctx, "$source")
}

func (r *DashboardRepository) groupCounts(ctx context.Context, field string) ([]BucketCount, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$group", Value: bson.M{
			"_id":   bson.M{"$ifNull": bson.A{field, ""}},
			"count": bson.M{"$sum": 1},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "count", Value: -1}, {Key: "_id", Value: 1}}}},
	}

	cur, err := r.Col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	var rows []BucketCount
	if err := cur.All(ctx, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *DashboardRepository) sumPipeline(ctx context.Context, pipeline mongo.Pipeline) (float64, error) {
	cur, err := r.Col.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, err
	}
	var rows []struct {
		Total float64 `bson:"total"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		return 0, nil
	}
	return rows[0].Total, nil
}
