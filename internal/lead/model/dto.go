// Package model provides domain models and DTOs for lead module.
package model

// CreateLeadRequest represents a public web form submission.
// Bound from form fields or JSON.
type CreateLeadRequest struct {
	Company string `form:"company" json:"company"`
	Name    string `form:"name"    json:"name"`
	Email   string `form:"email"   json:"email"`
	Comment string `form:"comment" json:"comment"`
	Country string `form:"country" json:"country"`
}

// CreateLeadResponse represents the response for a web form submission.
type CreateLeadResponse struct {
	Success bool   `json:"success"`
	LeadID  string `json:"lead_id,omitempty"`
}

// ConvertLeadRequest represents the request to convert a lead into a
// revenue opportunity.
type ConvertLeadRequest struct {
	Probability int     `form:"probability" json:"probability"`
	Amount      float64 `form:"amount"      json:"amount"`
}

// AssignLeadRequest represents the request to assign a lead to a
// sales-team member.
type AssignLeadRequest struct {
	UserID string `form:"user" json:"user" binding:"required"`
}

// AssignResult reports the outcome of an assignment.
type AssignResult struct {
	// Lead is the record state after the operation.
	Lead *Lead
	// Message is the human-readable status shown to the actor.
	Message string
	// Changed is false when the requested assignee already owned the lead.
	Changed bool
}

// LeadsResponse represents the JSON representation of a lead listing.
type LeadsResponse struct {
	Leads []Lead `json:"leads"`
	Count int    `json:"count"`
}
