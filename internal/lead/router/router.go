// Package router provides lead module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/crmkit/leads-service/internal/auth"
	"github.com/crmkit/leads-service/internal/config"
	"github.com/crmkit/leads-service/internal/flash"
	"github.com/crmkit/leads-service/internal/lead/handler"
	"github.com/crmkit/leads-service/internal/lead/repository"
	"github.com/crmkit/leads-service/internal/lead/service"
	"github.com/crmkit/leads-service/internal/notification"
	userRepository "github.com/crmkit/leads-service/internal/user/repository"
)

// RegisterRoutes registers lead module routes.
//
// The public form endpoint needs no session; everything else goes
// through the auth guards.
func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg config.CRMConfig,
	sender notification.Sender,
	logger *zap.SugaredLogger,
) {
	users := userRepository.New(db, logger)
	flashStore := flash.NewStore(db, logger)
	repo := repository.New(db, logger)
	svc := service.New(repo, users, flashStore, sender, cfg, db, logger)
	h := handler.New(svc, flashStore, logger)

	authenticate := auth.Authenticate(users, logger)

	r.POST("/sales/opportunity/-new", h.Create)
	r.GET("/sales/opportunity/leads", authenticate, auth.RequireTeamMember(), h.Leads)
	r.GET("/sales/team", authenticate, auth.RequireAdmin(), h.Assignees)
	r.POST("/sales/opportunity/lead-revenue/:id", authenticate, auth.RequireTeamMember(), h.Convert)
	r.GET("/leads/:id", authenticate, auth.RequireTeamMember(), h.Get)
	r.POST("/leads/:id/-assign", authenticate, auth.RequireAdmin(), h.Assign)
	r.GET("/messages", authenticate, auth.RequireUser(), h.Messages)
}
