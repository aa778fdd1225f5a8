package services

import (
	"context"
	"testing"

	"leadtrack-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
)

type fakeExpenseRepo struct {
	createFn func(ctx context.Context, expense *models.Expense) error
	getFn    func(ctx context.Context, businessID string) (*models.Expense, error)
	updateFn func(ctx context.Context, businessID string, req *models.UpdateExpenseRequest) (*models.Expense, error)
	deleteFn func(ctx context.Context, businessID string) error
}

func (f *fakeExpenseRepo) Create(ctx context.Context, expense *models.Expense) error {
	return f.createFn(ctx, expense)
}

func (f *fakeExpenseRepo) GetByBusinessID(ctx context.Context, businessID string) (*models.Expense, error) {
	return f.getFn(ctx, businessID)
}

func (f *fakeExpenseRepo) UpdateByBusinessID(ctx context.Context, businessID string, req *models.UpdateExpenseRequest) (*models.Expense, error) {
	return f.updateFn(ctx, businessID, req)
}

func (f *fakeExpenseRepo) DeleteByBusinessID(ctx context.Context, businessID string) error {
	return f.deleteFn(ctx, businessID)
}

func TestCreateExpenseRequiresBusinessID(t *testing.T) {
	svc := NewExpenseService(&fakeExpenseRepo{})

	_, err := svc.CreateExpense(context.Background(), &models.Expense{})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreateExpenseInitializesLists(t *testing.T) {
	repo := &fakeExpenseRepo{
		createFn: func(ctx context.Context, expense *models.Expense) error { return nil },
	}
	svc := NewExpenseService(repo)

	created, err := svc.CreateExpense(context.Background(), &models.Expense{BusinessID: "acme-1"})
	require.NoError(t, err)

	assert.NotNil(t, created.NamedExpenses)
	assert.NotNil(t, created.EmployeeDetails)
	assert.NotNil(t, created.ProjectDetails)
}

func TestCreateExpenseDuplicateBusinessID(t *testing.T) {
	repo := &fakeExpenseRepo{
		createFn: func(ctx context.Context, expense *models.Expense) error {
			return mongo.WriteException{WriteErrors: []mongo.WriteError{{Code: 11000}}}
		},
	}
	svc := NewExpenseService(repo)

	_, err := svc.CreateExpense(context.Background(), &models.Expense{BusinessID: "acme-1"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestGetExpenseNotFound(t *testing.T) {
	repo := &fakeExpenseRepo{
		getFn: func(ctx context.Context, businessID string) (*models.Expense, error) {
			return nil, mongo.ErrNoDocuments
		},
	}
	svc := NewExpenseService(repo)

	_, err := svc.GetExpense(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteExpenseNotFound(t *testing.T) {
	repo := &fakeExpenseRepo{
		deleteFn: func(ctx context.Context, businessID string) error {
			return mongo.ErrNoDocuments
		},
	}
	svc := NewExpenseService(repo)

	err := svc.DeleteExpense(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}
