package repositories

import (
	"leadtrack-backend/internal/models"

	"go.mongodb.org/mongo-driver/bson"
)

// buildLeadUpdate maps the non-nil fields of a partial update onto their
// stored names. Slices replace the stored value wholesale.
func buildLeadUpdate(req *models.UpdateLeadRequest) bson.M {
	set := bson.M{}

	setString := func(key string, v *string) {
		if v != nil {
			set[key] = *v
		}
	}
	setFloat := func(key string, v *float64) {
		if v != nil {
			set[key] = *v
		}
	}

	setString("name", req.Name)
	setString("email", req.Email)
	setString("phone", req.Phone)
	setString("company", req.Company)
	setString("budget", req.Budget)

	setString("source", req.Source)
	setString("status", req.Status)
	setString("priority", req.Priority)
	if req.Tags != nil {
		set["tags"] = *req.Tags
	}

	if req.ProjectStartDate != nil {
		set["projectStartDate"] = *req.ProjectStartDate
	}
	if req.ProjectEndDate != nil {
		set["projectEndDate"] = *req.ProjectEndDate
	}
	setString("projectStatus", req.ProjectStatus)
	setString("projectLink", req.ProjectLink)
	setString("projectNotes", req.ProjectNotes)

	setFloat("proposedCost", req.ProposedCost)
	setString("proposalLink", req.ProposalLink)
	setString("proposalNotes", req.ProposalNotes)
	setString("proposalStatus", req.ProposalStatus)
	if req.ProposalDate != nil {
		set["proposalDate"] = *req.ProposalDate
	}

	if req.LastContactDate != nil {
		set["lastContactDate"] = *req.LastContactDate
	}
	if req.FirstFollowUpDate != nil {
		set["firstFollowUpDate"] = *req.FirstFollowUpDate
	}
	if req.NextFollowUpDate != nil {
		set["nextFollowUpDate"] = *req.NextFollowUpDate
	}
	setString("followUpNotes", req.FollowUpNotes)
	setString("internalNotes", req.InternalNotes)

	setString("assignedTo", req.AssignedTo)
	setString("modifiedBy", req.ModifiedBy)

	setFloat("total_payment_required", req.TotalPaymentRequired)
	if req.AddedPayments != nil {
		set["addedPayments"] = *req.AddedPayments
	}

	return set
}
