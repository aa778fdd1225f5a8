package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"leadtrack-backend/internal/events"
	"leadtrack-backend/internal/models"
	"leadtrack-backend/internal/repositories"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// LeadRepo is the slice of the lead repository the service depends on.
type LeadRepo interface {
	Create(ctx context.Context, lead *models.Lead) error
	Get(ctx context.Context, id primitive.ObjectID) (*models.Lead, error)
	Update(ctx context.Context, id primitive.ObjectID, req *models.UpdateLeadRequest) (*models.Lead, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	List(ctx context.Context, params models.ListLeadsParams) (*models.LeadPage, error)
}

type LeadService struct {
	Repo   LeadRepo
	Events events.Publisher
}

func NewLeadService(repo LeadRepo, publisher events.Publisher) *LeadService {
	return &LeadService{Repo: repo, Events: publisher}
}

func (s *LeadService) CreateLead(ctx context.Context, lead *models.Lead) (*models.Lead, error) {
	if lead.Name == "" || lead.Phone == "" {
		return nil, fmt.Errorf("%w: name and phone are required", ErrValidation)
	}

	// Schema defaults
	if lead.Status == "" {
		lead.Status = "new"
	}
	if lead.Tags == nil {
		lead.Tags = []string{}
	}
	if lead.AddedPayments == nil {
		lead.AddedPayments = []models.Payment{}
	}
	lead.ID = primitive.NilObjectID
	lead.CreatedAt = time.Now()
	lead.ModifiedAt = nil

	if err := s.Repo.Create(ctx, lead); err != nil {
		return nil, err
	}

	s.publish(ctx, events.ActionCreated, lead.ID)
	return lead, nil
}

func (s *LeadService) GetLead(ctx context.Context, id string) (*models.Lead, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	lead, err := s.Repo.Get(ctx, oid)
	if err != nil {
		return nil, mapMongoErr(err)
	}
	return lead, nil
}

func (s *LeadService) UpdateLead(ctx context.Context, id string, req *models.UpdateLeadRequest) (*models.Lead, error) {
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

	lead, err := s.Repo.Update(ctx, oid, req)
	if err != nil {
		return nil, mapMongoErr(err)
	}

	s.publish(ctx, events.ActionUpdated, lead.ID)
	return lead, nil
}

func (s *LeadService) DeleteLead(ctx context.Context, id string) error {
	oid, err := parseObjectID(id)
	if err != nil {
		return err
	}

	if err := s.Repo.Delete(ctx, oid); err != nil {
		return mapMongoErr(err)
	}

	s.publish(ctx, events.ActionDeleted, oid)
	return nil
}

// ListLeads applies the listing defaults and delegates to the query builder.
func (s *LeadService) ListLeads(ctx context.Context, params models.ListLeadsParams) (*models.LeadPage, error) {
	if params.Page < 1 {
		params.Page = 1
	}
	if params.Limit < 1 {
		params.Limit = 10
	}
	if params.SortField == "" {
		params.SortField = "createdAt"
	}
	if params.SortOrder != "asc" {
		params.SortOrder = "desc"
	}

	page, err := s.Repo.List(ctx, params)
	if err != nil {
		if errors.Is(err, repositories.ErrInvalidSortField) {
			return nil, fmt.Errorf("%w: %s %q", ErrValidation, err, params.SortField)
		}
		return nil, err
	}
	return page, nil
}

// publish reports event failures in the log only; a broker outage must not
// fail the write that already happened.
func (s *LeadService) publish(ctx context.Context, action string, id primitive.ObjectID) {
	if s.Events == nil {
		return
	}
	if err := s.Events.PublishLead(ctx, action, id.Hex()); err != nil {
		log.Printf("[Events] Publish %s failed: %v", action, err)
	}
}

func parseObjectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: invalid id %q", ErrValidation, id)
	}
	return oid, nil
}

func mapMongoErr(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("%w: duplicate key", ErrValidation)
	}
	return err
}
