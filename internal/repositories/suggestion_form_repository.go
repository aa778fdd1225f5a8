package repositories

import (
	"context"
	"time"

	"leadtrack-backend/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type SuggestionFormRepository struct {
	Col *mongo.Collection
}

func NewSuggestionFormRepository(database *mongo.Database, collection string) *SuggestionFormRepository {
	return &SuggestionFormRepository{Col: database.Collection(collection)}
}

func (r *SuggestionFormRepository) Create(ctx context.Context, form *models.SuggestionForm) error {
	res, err := r.Col.InsertOne(ctx, form)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		form.ID = oid
	}
	return nil
}

func (r *SuggestionFormRepository) Get(ctx context.Context, id primitive.ObjectID) (*models.SuggestionForm, error) {
	var form models.SuggestionForm
	err := r.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&form)
	if err != nil {
		return nil, err
	}
	return &form, nil
}

func (r *SuggestionFormRepository) List(ctx context.Context) ([]models.SuggestionForm, error) {
	cur, err := r.Col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, err
	}
	forms := []models.SuggestionForm{}
	if err := cur.All(ctx, &forms); err != nil {
		return nil, err
	}
	return forms, nil
}

func (r *SuggestionFormRepository) Update(ctx context.Context, id primitive.ObjectID, req *models.UpdateSuggestionFormRequest) (*models.SuggestionForm, error) {
	set := bson.M{"updatedAt": time.Now()}
	if req.Name != nil {
		set["name"] = *req.Name
	}
	if req.Phone != nil {
		set["phone"] = *req.Phone
	}
	if req.Email != nil {
		set["email"] = *req.Email
	}
	if req.FormType != nil {
		set["formType"] = *req.FormType
	}
	if req.Message != nil {
		set["message"] = *req.Message
	}
	if req.Services != nil {
		set["services"] = *req.Services
	}
	if req.Technologies != nil {
		set["technologies"] = *req.Technologies
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var form models.SuggestionForm
	err := r.Col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&form)
	if err != nil {
		return nil, err
	}
	return &form, nil
}

func (r *SuggestionFormRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.Col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
