// Package handler provides HTTP handlers for lead endpoints.
package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/crmkit/leads-service/internal/auth"
	"github.com/crmkit/leads-service/internal/flash"
	"github.com/crmkit/leads-service/internal/lead/model"
	"github.com/crmkit/leads-service/internal/lead/service"
	"github.com/crmkit/leads-service/internal/middleware"
)

// Handler handles HTTP requests for lead endpoints.
type Handler struct {
	service service.Service
	flash   flash.Store
	logger  *zap.SugaredLogger
}

// New creates a new lead handler instance.
func New(svc service.Service, flashStore flash.Store, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, flash: flashStore, logger: logger}
}

// Create handles POST /sales/opportunity/-new requests from the public
// web form. Responds with {"success": bool}.
func (h *Handler) Create(c *gin.Context) {
	var req model.CreateLeadRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.CreateLeadResponse{Success: false})
		return
	}

	resp, err := h.service.CreateFromSubmission(c.Request.Context(), &req, c.ClientIP())
	if err != nil {
		if errors.Is(err, model.ErrMissingCompany) ||
			errors.Is(err, model.ErrMissingName) ||
			errors.Is(err, model.ErrMissingEmail) {
			c.JSON(http.StatusBadRequest, model.CreateLeadResponse{Success: false})
			return
		}
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	middleware.RecordLeadCreated()
	c.JSON(http.StatusOK, resp)
}

// Convert handles POST /sales/opportunity/lead-revenue/:id requests.
// Redirects to the lead view on success.
func (h *Handler) Convert(c *gin.Context) {
	leadID := c.Param("id")

	var req model.ConvertLeadRequest
	if err := c.ShouldBind(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	_, err := h.service.ConvertToOpportunity(c.Request.Context(), leadID, &req)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrLeadNotFound):
			notFoundResponse(c, "lead not found")
		case errors.Is(err, model.ErrInvalidProbability),
			errors.Is(err, model.ErrInvalidAmount),
			errors.Is(err, model.ErrNotLeadStage),
			errors.Is(err, model.ErrInvalidLeadID):
			errorResponse(c, "INVALID_REQUEST", err.Error(), http.StatusBadRequest)
		default:
			errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		}
		return
	}

	middleware.RecordLeadConverted()
	c.Redirect(http.StatusFound, "/leads/"+leadID)
}

// Assign handles POST /leads/:id/-assign requests. The status message
// is queued for the actor and surfaced on their next page view.
func (h *Handler) Assign(c *gin.Context) {
	leadID := c.Param("id")

	actor, ok := auth.FromContext(c)
	if !ok {
		errorResponse(c, "UNAUTHORIZED", "authentication required", http.StatusUnauthorized)
		return
	}

	var req model.AssignLeadRequest
	if err := c.ShouldBind(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "user field is required", http.StatusBadRequest)
		return
	}

	_, err := h.service.Assign(c.Request.Context(), leadID, req.UserID, actor.UserID)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrLeadNotFound):
			notFoundResponse(c, "lead not found")
		case errors.Is(err, model.ErrAssigneeNotFound):
			notFoundResponse(c, "assignee not found")
		case errors.Is(err, model.ErrAssigneeNotTeamMember):
			errorResponse(c, "INVALID_REQUEST", "assignee is not a sales team member", http.StatusBadRequest)
		default:
			errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		}
		return
	}

	c.Redirect(http.StatusFound, "/leads/"+leadID)
}

// Leads handles GET /sales/opportunity/leads requests. Responds with
// the plain count of visible leads; ?format=json returns the records.
func (h *Handler) Leads(c *gin.Context) {
	actor, ok := auth.FromContext(c)
	if !ok {
		errorResponse(c, "UNAUTHORIZED", "authentication required", http.StatusUnauthorized)
		return
	}

	if c.Query("format") == "json" {
		leads, err := h.service.ListLeads(c.Request.Context(), actor.CompanyID)
		if err != nil {
			errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, model.LeadsResponse{Leads: leads, Count: len(leads)})
		return
	}

	count, err := h.service.CountLeads(c.Request.Context(), actor.CompanyID)
	if err != nil {
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.String(http.StatusOK, strconv.FormatInt(count, 10))
}

// Get handles GET /leads/:id requests, the redirect target of the
// convert and assign operations.
func (h *Handler) Get(c *gin.Context) {
	leadID := c.Param("id")

	lead, err := h.service.GetLead(c.Request.Context(), leadID)
	if err != nil {
		if errors.Is(err, model.ErrLeadNotFound) || errors.Is(err, model.ErrInvalidLeadID) {
			notFoundResponse(c, "lead not found")
			return
		}
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, lead)
}

// Assignees handles GET /sales/team requests: the team members a lead
// can be assigned to, used to populate the assignment form.
func (h *Handler) Assignees(c *gin.Context) {
	actor, ok := auth.FromContext(c)
	if !ok {
		errorResponse(c, "UNAUTHORIZED", "authentication required", http.StatusUnauthorized)
		return
	}

	members, err := h.service.ListAssignees(c.Request.Context(), actor.CompanyID)
	if err != nil {
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, gin.H{"members": members})
}

// Messages handles GET /messages requests: returns the actor's pending
// status messages exactly once.
func (h *Handler) Messages(c *gin.Context) {
	actor, ok := auth.FromContext(c)
	if !ok {
		errorResponse(c, "UNAUTHORIZED", "authentication required", http.StatusUnauthorized)
		return
	}

	messages, err := h.flash.Pop(c.Request.Context(), actor.UserID)
	if err != nil {
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, gin.H{"messages": messages})
}
