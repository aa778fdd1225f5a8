package services

import (
	"context"
	"testing"

	"leadtrack-backend/internal/models"
	"leadtrack-backend/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type fakeLeadRepo struct {
	createFn func(ctx context.Context, lead *models.Lead) error
	getFn    func(ctx context.Context, id primitive.ObjectID) (*models.Lead, error)
	updateFn func(ctx context.Context, id primitive.ObjectID, req *models.UpdateLeadRequest) (*models.Lead, error)
	deleteFn func(ctx context.Context, id primitive.ObjectID) error
	listFn   func(ctx context.Context, params models.ListLeadsParams) (*models.LeadPage, error)
}

func (f *fakeLeadRepo) Create(ctx context.Context, lead *models.Lead) error {
	return f.createFn(ctx, lead)
}

func (f *fakeLeadRepo) Get(ctx context.Context, id primitive.ObjectID) (*models.Lead, error) {
	return f.getFn(ctx, id)
}

func (f *fakeLeadRepo) Update(ctx context.Context, id primitive.ObjectID, req *models.UpdateLeadRequest) (*models.Lead, error) {
	return f.updateFn(ctx, id, req)
}

func (f *fakeLeadRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	return f.deleteFn(ctx, id)
}

func (f *fakeLeadRepo) List(ctx context.Context, params models.ListLeadsParams) (*models.LeadPage, error) {
	return f.listFn(ctx, params)
}

func TestCreateLeadRequiresNameAndPhone(t *testing.T) {
	svc := NewLeadService(&fakeLeadRepo{}, nil)

	_, err := svc.CreateLead(context.Background(), &models.Lead{Phone: "123"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.CreateLead(context.Background(), &models.Lead{Name: "Ann"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreateLeadAppliesDefaults(t *testing.T) {
	var stored *models.Lead
	repo := &fakeLeadRepo{
		createFn: func(ctx context.Context, lead *models.Lead) error {
			lead.ID = primitive.NewObjectID()
			stored = lead
			return nil
		},
	}
	svc := NewLeadService(repo, nil)

	created, err := svc.CreateLead(context.Background(), &models.Lead{
		Name:  "Ann",
		Phone: "123",
	})
	require.NoError(t, err)
	require.NotNil(t, stored)

	assert.Equal(t, "new", created.Status)
	assert.NotNil(t, created.Tags)
	assert.NotNil(t, created.AddedPayments)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Nil(t, created.ModifiedAt)
	assert.False(t, created.ID.IsZero())
}

func TestCreateLeadKeepsProvidedStatus(t *testing.T) {
	repo := &fakeLeadRepo{
		createFn: func(ctx context.Context, lead *models.Lead) error { return nil },
	}
	svc := NewLeadService(repo, nil)

	created, err := svc.CreateLead(context.Background(), &models.Lead{
		Name:   "Ann",
		Phone:  "123",
		Status: "contacted",
	})
	require.NoError(t, err)
	assert.Equal(t, "contacted", created.Status)
}

func TestGetLeadInvalidID(t *testing.T) {
	svc := NewLeadService(&fakeLeadRepo{}, nil)

	_, err := svc.GetLead(context.Background(), "not-a-hex-id")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestGetLeadNotFound(t *testing.T) {
	repo := &fakeLeadRepo{
		getFn: func(ctx context.Context, id primitive.ObjectID) (*models.Lead, error) {
			return nil, mongo.ErrNoDocuments
		},
	}
	svc := NewLeadService(repo, nil)

	_, err := svc.GetLead(context.Background(), primitive.NewObjectID().Hex())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateLeadRejectsClearingRequiredFields(t *testing.T) {
	svc := NewLeadService(&fakeLeadRepo{}, nil)
	id := primitive.NewObjectID().Hex()
	empty := ""

	_, err := svc.UpdateLead(context.Background(), id, &models.UpdateLeadRequest{Name: &empty})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.UpdateLead(context.Background(), id, &models.UpdateLeadRequest{Phone: &empty})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestUpdateLeadNotFound(t *testing.T) {
	repo := &fakeLeadRepo{
		updateFn: func(ctx context.Context, id primitive.ObjectID, req *models.UpdateLeadRequest) (*models.Lead, error) {
			return nil, mongo.ErrNoDocuments
		},
	}
	svc := NewLeadService(repo, nil)

	_, err := svc.UpdateLead(context.Background(), primitive.NewObjectID().Hex(), &models.UpdateLeadRequest{})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteLeadNotFound(t *testing.T) {
	repo := &fakeLeadRepo{
		deleteFn: func(ctx context.Context, id primitive.ObjectID) error {
			return mongo.ErrNoDocuments
		},
	}
	svc := NewLeadService(repo, nil)

	err := svc.DeleteLead(context.Background(), primitive.NewObjectID().Hex())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListLeadsAppliesDefaults(t *testing.T) {
	var got models.ListLeadsParams
	repo := &fakeLeadRepo{
		listFn: func(ctx context.Context, params models.ListLeadsParams) (*models.LeadPage, error) {
			got = params
			return &models.LeadPage{Data: []models.Lead{}}, nil
		},
	}
	svc := NewLeadService(repo, nil)

	_, err := svc.ListLeads(context.Background(), models.ListLeadsParams{})
	require.NoError(t, err)

	assert.Equal(t, 1, got.Page)
	assert.Equal(t, 10, got.Limit)
	assert.Equal(t, "createdAt", got.SortField)
	assert.Equal(t, "desc", got.SortOrder)
}

func TestListLeadsNormalizesSortOrder(t *testing.T) {
	var got models.ListLeadsParams
	repo := &fakeLeadRepo{
		listFn: func(ctx context.Context, params models.ListLeadsParams) (*models.LeadPage, error) {
			got = params
			return &models.LeadPage{}, nil
		},
	}
	svc := NewLeadService(repo, nil)

	_, err := svc.ListLeads(context.Background(), models.ListLeadsParams{SortOrder: "bogus"})
	require.NoError(t, err)
	assert.Equal(t, "desc", got.SortOrder)

	_, err = svc.ListLeads(context.Background(), models.ListLeadsParams{SortOrder: "asc"})
	require.NoError(t, err)
	assert.Equal(t, "asc", got.SortOrder)
}

func TestListLeadsInvalidSortField(t *testing.T) {
	repo := &fakeLeadRepo{
		listFn: func(ctx context.Context, params models.ListLeadsParams) (*models.LeadPage, error) {
			return nil, repositories.ErrInvalidSortField
		},
	}
	svc := NewLeadService(repo, nil)

	_, err := svc.ListLeads(context.Background(), models.ListLeadsParams{SortField: "email"})
	assert.ErrorIs(t, err, ErrValidation)
}
