package services

import (
	"context"
	"fmt"
	"time"

	"leadtrack-backend/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type SuggestionFormRepo interface {
	Create(ctx context.Context, form *models.SuggestionForm) error
	Get(ctx context.Context, id primitive.ObjectID) (*models.SuggestionForm, error)
	List(ctx context.Context) ([]models.SuggestionForm, error)
	Update(ctx context.Context, id primitive.ObjectID, req *models.UpdateSuggestionFormRequest) (*models.SuggestionForm, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type SuggestionFormService struct {
	Repo SuggestionFormRepo
}

func NewSuggestionFormService(repo SuggestionFormRepo) *SuggestionFormService {
	return &SuggestionFormService{Repo: repo}
}

func (s *SuggestionFormService) CreateForm(ctx context.Context, form *models.SuggestionForm) (*models.SuggestionForm, error) {
	if form.Name == "" || form.Phone == "" {
		return nil, fmt.Errorf("%w: name and phone are required", ErrValidation)
	}

	if form.Services == nil {
		form.Services = []string{}
	}
	if form.Technologies == nil {
		form.Technologies = []string{}
	}
	form.ID = primitive.NilObjectID
	now := time.Now()
	form.CreatedAt = now
	form.UpdatedAt = now

	if err := s.Repo.Create(ctx, form); err != nil {
		return nil, err
	}
	return form, nil
}

func (s *SuggestionFormService) GetForm(ctx context.Context, id string) (*models.SuggestionForm, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}
	form, err := s.Repo.Get(ctx, oid)
	if err != nil {
		return nil, mapMongoErr(err)
	}
	return form, nil
}

func (s *SuggestionFormService) ListForms(ctx context.Context) ([]models.SuggestionForm, error) {
	return s.Repo.List(ctx)
}

func (s *SuggestionFormService) UpdateForm(ctx context.Context, id string, req *models.UpdateSuggestionFormRequest) (*models.SuggestionForm, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}
	if req.Name != nil && *req.Name == "" {
		return nil, fmt.Errorf("%w: name cannot be empty", ErrValidation)
	}
	if req.Phone != nil && *req.Phone == "" {
		return nil, fmt.Errorf("%w: phone cannot be empty", ErrValidation)
	}

	form, err := s.Repo.Update(ctx, oid, req)
	if err != nil {
		return nil, mapMongoErr(err)
	}
	return form, nil
}

func (s *SuggestionFormService) DeleteForm(ctx context.Context, id string) error {
	oid, err := parseObjectID(id)
	if err != nil {
		return err
	}
	if err := s.Repo.Delete(ctx, oid); err != nil {
		return mapMongoErr(err)
	}
	return nil
}
