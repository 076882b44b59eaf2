// Package service provides business logic layer for lead module.
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/crmkit/leads-service/internal/config"
	"github.com/crmkit/leads-service/internal/flash"
	leadModel "github.com/crmkit/leads-service/internal/lead/model"
	"github.com/crmkit/leads-service/internal/lead/repository"
	"github.com/crmkit/leads-service/internal/middleware"
	"github.com/crmkit/leads-service/internal/notification"
	partyRepository "github.com/crmkit/leads-service/internal/party/repository"
	userModel "github.com/crmkit/leads-service/internal/user/model"
	userRepository "github.com/crmkit/leads-service/internal/user/repository"
)

// Service defines the interface for lead business logic operations.
type Service interface {
	// CreateFromSubmission creates a lead from a public web form
	// submission, creating the submitting party when needed, and
	// triggers best-effort notifications.
	CreateFromSubmission(
		ctx context.Context,
		req *leadModel.CreateLeadRequest,
		ipAddress string,
	) (*leadModel.CreateLeadResponse, error)

	// ConvertToOpportunity quantifies a lead with probability and
	// amount and moves it to the opportunity stage.
	ConvertToOpportunity(
		ctx context.Context,
		leadID string,
		req *leadModel.ConvertLeadRequest,
	) (*leadModel.Lead, error)

	// Assign sets the lead's owner to the requested team member and
	// queues a status message for the acting user.
	Assign(ctx context.Context, leadID, assigneeID, actorID string) (*leadModel.AssignResult, error)

	// GetLead returns a single lead.
	GetLead(ctx context.Context, leadID string) (*leadModel.Lead, error)

	// ListLeads returns the leads visible to a company's team.
	ListLeads(ctx context.Context, companyID string) ([]leadModel.Lead, error)

	// CountLeads returns the number of leads visible to a company's team.
	CountLeads(ctx context.Context, companyID string) (int64, error)

	// ListAssignees returns the company's team members a lead can be
	// assigned to.
	ListAssignees(ctx context.Context, companyID string) ([]userModel.User, error)
}

type service struct {
	repo   repository.Repository
	users  userRepository.Repository
	flash  flash.Store
	sender notification.Sender
	cfg    config.CRMConfig
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new lead service instance.
func New(
	repo repository.Repository,
	users userRepository.Repository,
	flashStore flash.Store,
	sender notification.Sender,
	cfg config.CRMConfig,
	db *gorm.DB,
	logger *zap.SugaredLogger,
) Service {
	return &service{
		repo:   repo,
		users:  users,
		flash:  flashStore,
		sender: sender,
		cfg:    cfg,
		db:     db,
		logger: logger,
	}
}

// CreateFromSubmission creates a lead from a public web form submission.
func (s *service) CreateFromSubmission(
	ctx context.Context,
	req *leadModel.CreateLeadRequest,
	ipAddress string,
) (*leadModel.CreateLeadResponse, error) {
	s.logger.Debugw("CreateFromSubmission called", "company", req.Company, "email", req.Email)

	if err := validateSubmission(req); err != nil {
		s.logger.Debugw("CreateFromSubmission validation failed", "error", err)
		return nil, err
	}

	var detectedCountry *string
	if req.Country != "" {
		country := req.Country
		detectedCountry = &country
	}

	lead := &leadModel.Lead{
		LeadID:          uuid.New().String(),
		CompanyID:       s.cfg.CompanyID,
		Company:         req.Company,
		Description:     fmt.Sprintf("Created from web submission by %s", req.Name),
		Comment:         req.Comment,
		IPAddress:       ipAddress,
		DetectedCountry: detectedCountry,
		Stage:           leadModel.StageLead,
	}

	if s.cfg.DefaultEmployeeID != "" {
		ownerID := s.cfg.DefaultEmployeeID
		lead.OwnerID = &ownerID
	}

	// Party lookup/creation and lead creation commit together.
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txParties := partyRepository.New(tx, s.logger)
		txLeads := repository.New(tx, s.logger)

		party, txErr := txParties.GetOrCreateByEmail(ctx, req.Email, req.Name)
		if txErr != nil {
			return txErr
		}

		lead.PartyID = party.PartyID
		return txLeads.Create(ctx, lead)
	})

	if err != nil {
		s.logger.Errorw("CreateFromSubmission failed", "company", req.Company, "error", err)
		return nil, err
	}

	// Notifications run after the commit and never fail the request.
	s.dispatch(notification.Message{
		Template: notification.TemplateLeadThankYou,
		To:       req.Email,
		Context: map[string]interface{}{
			"Name": req.Name,
		},
	})
	s.dispatch(notification.Message{
		Template: notification.TemplateLeadNotification,
		To:       s.cfg.SalesContactEmail,
		Context: map[string]interface{}{
			"Company":   req.Company,
			"Name":      req.Name,
			"Email":     req.Email,
			"Comment":   req.Comment,
			"IPAddress": ipAddress,
			"LeadID":    lead.LeadID,
		},
	})

	s.logger.Infow("CreateFromSubmission completed", "lead_id", lead.LeadID)
	return &leadModel.CreateLeadResponse{Success: true, LeadID: lead.LeadID}, nil
}

// validateSubmission checks required submission fields. Email format
// is deliberately not enforced: the public form accepts any non-empty
// value and delivery failures are absorbed by the dispatcher.
func validateSubmission(req *leadModel.CreateLeadRequest) error {
	if req.Company == "" {
		return leadModel.ErrMissingCompany
	}
	if req.Name == "" {
		return leadModel.ErrMissingName
	}
	if req.Email == "" {
		return leadModel.ErrMissingEmail
	}
	return nil
}

// dispatch makes a single best-effort delivery attempt.
func (s *service) dispatch(msg notification.Message) {
	if err := s.sender.Send(msg); err != nil {
		middleware.RecordNotificationError(msg.Template)
		s.logger.Warnw("notification dispatch failed",
			"template", msg.Template, "to", msg.To, "error", err)
	}
}

// ConvertToOpportunity quantifies a lead and flips it to opportunity stage.
func (s *service) ConvertToOpportunity(
	ctx context.Context,
	leadID string,
	req *leadModel.ConvertLeadRequest,
) (*leadModel.Lead, error) {
	s.logger.Debugw("ConvertToOpportunity called", "lead_id", leadID,
		"probability", req.Probability, "amount", req.Amount)

	if leadID == "" {
		return nil, leadModel.ErrInvalidLeadID
	}
	if req.Probability < 0 || req.Probability > 100 {
		return nil, leadModel.ErrInvalidProbability
	}
	if req.Amount <= 0 {
		return nil, leadModel.ErrInvalidAmount
	}

	lead, err := s.repo.GetByID(ctx, leadID)
	if err != nil {
		return nil, err
	}

	if lead.Stage != leadModel.StageLead {
		return nil, leadModel.ErrNotLeadStage
	}

	converted, err := s.repo.UpdateRevenue(ctx, leadID, req.Probability, req.Amount)
	if err != nil {
		s.logger.Errorw("ConvertToOpportunity failed", "lead_id", leadID, "error", err)
		return nil, err
	}

	s.logger.Infow("ConvertToOpportunity completed", "lead_id", leadID)
	return converted, nil
}

// Assign sets the lead's owner and queues a status message for the actor.
//
// The requested assignee is compared against the current owner, not
// against the actor: an admin may take a lead away from anyone. When
// the assignee already owns the lead nothing is written.
func (s *service) Assign(ctx context.Context, leadID, assigneeID, actorID string) (*leadModel.AssignResult, error) {
	s.logger.Debugw("Assign called", "lead_id", leadID, "assignee_id", assigneeID, "actor_id", actorID)

	if leadID == "" {
		return nil, leadModel.ErrInvalidLeadID
	}

	lead, err := s.repo.GetByID(ctx, leadID)
	if err != nil {
		return nil, err
	}

	assignee, err := s.users.GetByID(ctx, assigneeID)
	if err != nil {
		if errors.Is(err, userModel.ErrUserNotFound) {
			return nil, leadModel.ErrAssigneeNotFound
		}
		return nil, err
	}

	if !assignee.IsTeamMember {
		return nil, leadModel.ErrAssigneeNotTeamMember
	}

	if lead.IsAssignedTo(assigneeID) {
		message := fmt.Sprintf("Lead already assigned to %s", assignee.DisplayName)
		if err := s.flash.Push(ctx, actorID, message); err != nil {
			return nil, err
		}
		s.logger.Infow("Assign no-op", "lead_id", leadID, "owner_id", assigneeID)
		return &leadModel.AssignResult{Lead: lead, Message: message, Changed: false}, nil
	}

	message := fmt.Sprintf("Lead assigned to %s", assignee.DisplayName)

	// Owner write and the actor's status message commit together so the
	// message always reflects the actor's own committed state.
	var updated *leadModel.Lead
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txLeads := repository.New(tx, s.logger)
		txFlash := flash.NewStore(tx, s.logger)

		var txErr error
		updated, txErr = txLeads.UpdateOwner(ctx, leadID, assigneeID)
		if txErr != nil {
			return txErr
		}

		return txFlash.Push(ctx, actorID, message)
	})

	if err != nil {
		s.logger.Errorw("Assign failed", "lead_id", leadID, "assignee_id", assigneeID, "error", err)
		return nil, err
	}

	s.logger.Infow("Assign completed", "lead_id", leadID, "owner_id", assigneeID)
	return &leadModel.AssignResult{Lead: updated, Message: message, Changed: true}, nil
}

// GetLead returns a single lead.
func (s *service) GetLead(ctx context.Context, leadID string) (*leadModel.Lead, error) {
	if leadID == "" {
		return nil, leadModel.ErrInvalidLeadID
	}
	return s.repo.GetByID(ctx, leadID)
}

// ListLeads returns the leads visible to a company's team.
func (s *service) ListLeads(ctx context.Context, companyID string) ([]leadModel.Lead, error) {
	return s.repo.ListByCompany(ctx, companyID)
}

// CountLeads returns the number of leads visible to a company's team.
func (s *service) CountLeads(ctx context.Context, companyID string) (int64, error) {
	return s.repo.CountByCompany(ctx, companyID)
}

// ListAssignees returns the company's team members a lead can be assigned to.
func (s *service) ListAssignees(ctx context.Context, companyID string) ([]userModel.User, error) {
	return s.users.ListTeamMembers(ctx, companyID)
}
