package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type NamedExpense struct {
	Category          string  `bson:"category" json:"category"`
	CustomExpenseName string  `bson:"customExpenseName" json:"customExpenseName"`
	Amount            float64 `bson:"amount" json:"amount"`
}

type EmployeeDetail struct {
	EmployeeName  string  `bson:"employeeName" json:"employeeName"`
	Designation   string  `bson:"designation" json:"designation"`
	MonthlySalary float64 `bson:"monthlySalary" json:"monthlySalary"`
}

type ProjectExpense struct {
	Date                 time.Time `bson:"date" json:"date"`
	ProjectName          string    `bson:"projectName" json:"projectName"`
	ProjectExpenseAmount float64   `bson:"projectExpenseAmount" json:"projectExpenseAmount"`
	ProjectNotes         string    `bson:"projectNotes" json:"projectNotes"`
}

// Expense groups three independent line-item lists under a business key.
// All lookups use BusinessID, not the storage _id.
type Expense struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	BusinessID      string             `bson:"id" json:"id"`
	NamedExpenses   []NamedExpense     `bson:"namedExpenses" json:"namedExpenses"`
	EmployeeDetails []EmployeeDetail   `bson:"employeeDetails" json:"employeeDetails"`
	ProjectDetails  []ProjectExpense   `bson:"projectDetails" json:"projectDetails"`
}

// UpdateExpenseRequest replaces any list that is present; nil lists are untouched.
type UpdateExpenseRequest struct {
	NamedExpenses   *[]NamedExpense   `json:"namedExpenses,omitempty"`
	EmployeeDetails *[]EmployeeDetail `json:"employeeDetails,omitempty"`
	ProjectDetails  *[]ProjectExpense `json:"projectDetails,omitempty"`
}
