package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment is a manually recorded instalment embedded in its lead. The sum of
// payment amounts and total_payment_required are maintained independently;
// the remaining balance is always computed on read.
type Payment struct {
	Amount float64   `bson:"amount" json:"amount"`
	Date   time.Time `bson:"date" json:"date"`
	Source string    `bson:"source" json:"source"`
	Notes  string    `bson:"notes,omitempty" json:"notes,omitempty"`
}

// Lead is a submitted contact/project form, the primary tracked entity.
// Canonical schema: name and phone are required, email is optional.
type Lead struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name    string             `bson:"name" json:"name"`
	Email   string             `bson:"email,omitempty" json:"email,omitempty"`
	Phone   string             `bson:"phone" json:"phone"`
	Company string             `bson:"company,omitempty" json:"company,omitempty"`
	Budget  string             `bson:"budget,omitempty" json:"budget,omitempty"`

	Source   string   `bson:"source" json:"source"`
	Status   string   `bson:"status" json:"status"`
	Priority string   `bson:"priority" json:"priority"`
	Tags     []string `bson:"tags" json:"tags"`

	ProjectStartDate *time.Time `bson:"projectStartDate,omitempty" json:"projectStartDate,omitempty"`
	ProjectEndDate   *time.Time `bson:"projectEndDate,omitempty" json:"projectEndDate,omitempty"`
	ProjectStatus    string     `bson:"projectStatus" json:"projectStatus"`
	ProjectLink      string     `bson:"projectLink" json:"projectLink"`
	ProjectNotes     string     `bson:"projectNotes" json:"projectNotes"`

	ProposedCost   float64    `bson:"proposedCost" json:"proposedCost"`
	ProposalLink   string     `bson:"proposalLink" json:"proposalLink"`
	ProposalNotes  string     `bson:"proposalNotes" json:"proposalNotes"`
	ProposalStatus string     `bson:"proposalStatus" json:"proposalStatus"`
	ProposalDate   *time.Time `bson:"proposalDate,omitempty" json:"proposalDate,omitempty"`

	LastContactDate   *time.Time `bson:"lastContactDate,omitempty" json:"lastContactDate,omitempty"`
	FirstFollowUpDate *time.Time `bson:"firstFollowUpDate,omitempty" json:"firstFollowUpDate,omitempty"`
	NextFollowUpDate  *time.Time `bson:"nextFollowUpDate,omitempty" json:"nextFollowUpDate,omitempty"`
	FollowUpNotes     string     `bson:"followUpNotes" json:"followUpNotes"`
	InternalNotes     string     `bson:"internalNotes" json:"internalNotes"`

	CreatedAt  time.Time  `bson:"createdAt" json:"createdAt"`
	ModifiedAt *time.Time `bson:"modifiedAt,omitempty" json:"modifiedAt,omitempty"`
	AssignedTo string     `bson:"assignedTo" json:"assignedTo"`
	ModifiedBy string     `bson:"modifiedBy" json:"modifiedBy"`

	TotalPaymentRequired float64   `bson:"total_payment_required" json:"total_payment_required"`
	AddedPayments        []Payment `bson:"addedPayments" json:"addedPayments"`
}

// UpdateLeadRequest carries a partial update; nil fields are left untouched.
// Slices replace the stored value wholesale when present.
type UpdateLeadRequest struct {
	Name    *string `json:"name,omitempty"`
	Email   *string `json:"email,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Company *string `json:"company,omitempty"`
	Budget  *string `json:"budget,omitempty"`

	Source   *string   `json:"source,omitempty"`
	Status   *string   `json:"status,omitempty"`
	Priority *string   `json:"priority,omitempty"`
	Tags     *[]string `json:"tags,omitempty"`

	ProjectStartDate *time.Time `json:"projectStartDate,omitempty"`
	ProjectEndDate   *time.Time `json:"projectEndDate,omitempty"`
	ProjectStatus    *string    `json:"projectStatus,omitempty"`
	ProjectLink      *string    `json:"projectLink,omitempty"`
	ProjectNotes     *string    `json:"projectNotes,omitempty"`

	ProposedCost   *float64   `json:"proposedCost,omitempty"`
	ProposalLink   *string    `json:"proposalLink,omitempty"`
	ProposalNotes  *string    `json:"proposalNotes,omitempty"`
	ProposalStatus *string    `json:"proposalStatus,omitempty"`
	ProposalDate   *time.Time `json:"proposalDate,omitempty"`

	LastContactDate   *time.Time `json:"lastContactDate,omitempty"`
	FirstFollowUpDate *time.Time `json:"firstFollowUpDate,omitempty"`
	NextFollowUpDate  *time.Time `json:"nextFollowUpDate,omitempty"`
	FollowUpNotes     *string    `json:"followUpNotes,omitempty"`
	InternalNotes     *string    `json:"internalNotes,omitempty"`

	AssignedTo *string `json:"assignedTo,omitempty"`
	ModifiedBy *string `json:"modifiedBy,omitempty"`

	TotalPaymentRequired *float64   `json:"total_payment_required,omitempty"`
	AddedPayments        *[]Payment `json:"addedPayments,omitempty"`
}

// ListLeadsParams is the parsed form of the lead listing query string.
type ListLeadsParams struct {
	Page      int
	Limit     int
	SortField string
	SortOrder string
	Search    string
	Filters   map[string]string
}

// LeadPage is one page of listing results plus the totals computed against
// the same predicate.
type LeadPage struct {
	Total      int64  `json:"total"`
	Page       int    `json:"page"`
	Limit      int    `json:"limit"`
	TotalPages int64  `json:"totalPages"`
	Data       []Lead `json:"data"`
}
