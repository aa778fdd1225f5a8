package services

import (
	"context"
	"fmt"

	"leadtrack-backend/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ExpenseRepo interface {
	Create(ctx context.Context, expense *models.Expense) error
	GetByBusinessID(ctx context.Context, businessID string) (*models.Expense, error)
	UpdateByBusinessID(ctx context.Context, businessID string, req *models.UpdateExpenseRequest) (*models.Expense, error)
	DeleteByBusinessID(ctx context.Context, businessID string) error
}

type ExpenseService struct {
	Repo ExpenseRepo
}

func NewExpenseService(repo ExpenseRepo) *ExpenseService {
	return &ExpenseService{Repo: repo}
}

func (s *ExpenseService) CreateExpense(ctx context.Context, expense *models.Expense) (*models.Expense, error) {
	if expense.BusinessID == "" {
		return nil, fmt.Errorf("%w: id is required", ErrValidation)
	}

	if expense.NamedExpenses == nil {
		expense.NamedExpenses = []models.NamedExpense{}
	}
	if expense.EmployeeDetails == nil {
		expense.EmployeeDetails = []models.EmployeeDetail{}
	}
	if expense.ProjectDetails == nil {
		expense.ProjectDetails = []models.ProjectExpense{}
	}
	expense.ID = primitive.NilObjectID

	if err := s.Repo.Create(ctx, expense); err != nil {
		// A duplicate business id is a client error, not a storage fault.
		return nil, mapMongoErr(err)
	}
	return expense, nil
}

func (s *ExpenseService) GetExpense(ctx context.Context, businessID string) (*models.Expense, error) {
	expense, err := s.Repo.GetByBusinessID(ctx, businessID)
	if err != nil {
		return nil, mapMongoErr(err)
	}
	return expense, nil
}

func (s *ExpenseService) UpdateExpense(ctx context.Context, businessID string, req *models.UpdateExpenseRequest) (*models.Expense, error) {
	expense, err := s.Repo.UpdateByBusinessID(ctx, businessID, req)
	if err != nil {
		return nil, mapMongoErr(err)
	}
	return expense, nil
}

func (s *ExpenseService) DeleteExpense(ctx context.Context, businessID string) error {
	if err := s.Repo.DeleteByBusinessID(ctx, businessID); err != nil {
		return mapMongoErr(err)
	}
	return nil
}
