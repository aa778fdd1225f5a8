package repositories

import (
	"context"

	"leadtrack-backend/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ExpenseRepository keys every lookup by the business "id" field, not the
// storage _id. A unique index enforces the business key.
type ExpenseRepository struct {
	Col *mongo.Collection
}

func NewExpenseRepository(database *mongo.Database, collection string) *ExpenseRepository {
	return &ExpenseRepository{Col: database.Collection(collection)}
}

// EnsureIndexes creates the unique business-key index. Safe to call on every
// startup; Mongo treats an existing identical index as a no-op.
func (r *ExpenseRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.Col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (r *ExpenseRepository) Create(ctx context.Context, expense *models.Expense) error {
	res, err := r.Col.InsertOne(ctx, expense)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		expense.ID = oid
	}
	return nil
}

func (r *ExpenseRepository) GetByBusinessID(ctx context.Context, businessID string) (*models.Expense, error) {
	var expense models.Expense
	err := r.Col.FindOne(ctx, bson.M{"id": businessID}).Decode(&expense)
	if err != nil {
		return nil, err
	}
	return &expense, nil
}

func (r *ExpenseRepository) UpdateByBusinessID(ctx context.Context, businessID string, req *models.UpdateExpenseRequest) (*models.Expense, error) {
	set := bson.M{}
	if req.NamedExpenses != nil {
		set["namedExpenses"] = *req.NamedExpenses
	}
	if req.EmployeeDetails != nil {
		set["employeeDetails"] = *req.EmployeeDetails
	}
	if req.ProjectDetails != nil {
		set["projectDetails"] = *req.ProjectDetails
	}
	if len(set) == 0 {
		// Nothing to change; an empty $set is rejected by the server.
		return r.GetByBusinessID(ctx, businessID)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var expense models.Expense
	err := r.Col.FindOneAndUpdate(ctx, bson.M{"id": businessID}, bson.M{"$set": set}, opts).Decode(&expense)
	if err != nil {
		return nil, err
	}
	return &expense, nil
}

func (r *ExpenseRepository) DeleteByBusinessID(ctx context.Context, businessID string) error {
	res, err := r.Col.DeleteOne(ctx, bson.M{"id": businessID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
