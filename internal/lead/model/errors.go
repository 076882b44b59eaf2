package model

import "errors"

var (
	// ErrLeadNotFound indicates that the requested lead does not exist.
	ErrLeadNotFound = errors.New("lead not found")
	// ErrInvalidLeadID indicates that the provided lead ID is invalid (e.g., empty).
	ErrInvalidLeadID = errors.New("invalid lead ID")
	// ErrMissingCompany indicates the submission lacks a company name.
	ErrMissingCompany = errors.New("company is required")
	// ErrMissingName indicates the submission lacks a contact name.
	ErrMissingName = errors.New("name is required")
	// ErrMissingEmail indicates the submission lacks a contact email.
	ErrMissingEmail = errors.New("email is required")
	// ErrInvalidProbability indicates a probability outside [0, 100].
	ErrInvalidProbability = errors.New("probability must be between 0 and 100")
	// ErrInvalidAmount indicates a non-positive opportunity amount.
	ErrInvalidAmount = errors.New("amount must be greater than 0")
	// ErrNotLeadStage indicates a conversion on an already converted record.
	ErrNotLeadStage = errors.New("record is not in lead stage")
	// ErrAssigneeNotFound indicates the requested assignee does not exist.
	ErrAssigneeNotFound = errors.New("assignee not found")
	// ErrAssigneeNotTeamMember indicates the assignee is not a sales-team member.
	ErrAssigneeNotTeamMember = errors.New("assignee is not a sales team member")
)
