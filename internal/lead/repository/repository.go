// Package repository provides data access layer for lead module.
package repository

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/crmkit/leads-service/internal/lead/model"
)

// Repository defines the interface for lead data access operations.
type Repository interface {
	// Create persists a new lead.
	Create(ctx context.Context, lead *model.Lead) error

	// GetByID finds lead by lead_id.
	GetByID(ctx context.Context, leadID string) (*model.Lead, error)

	// UpdateRevenue sets probability and amount and moves the record to
	// the opportunity stage in a single write.
	UpdateRevenue(ctx context.Context, leadID string, probability int, amount float64) (*model.Lead, error)

	// UpdateOwner sets the owning user.
	UpdateOwner(ctx context.Context, leadID, ownerID string) (*model.Lead, error)

	// ListByCompany returns all leads belonging to a company.
	ListByCompany(ctx context.Context, companyID string) ([]model.Lead, error)

	// CountByCompany returns the number of leads belonging to a company.
	CountByCompany(ctx context.Context, companyID string) (int64, error)
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new lead repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

// Create persists a new lead.
func (r *repository) Create(ctx context.Context, lead *model.Lead) error {
	r.logger.Debugw("Create called", "lead_id", lead.LeadID)

	if err := r.db.WithContext(ctx).Create(lead).Error; err != nil {
		r.logger.Errorw("Create database error", "lead_id", lead.LeadID, "error", err)
		return err
	}

	r.logger.Infow("Create completed", "lead_id", lead.LeadID, "company", lead.Company)
	return nil
}

// GetByID finds lead by lead_id.
func (r *repository) GetByID(ctx context.Context, leadID string) (*model.Lead, error) {
	r.logger.Debugw("GetByID called", "lead_id", leadID)

	var lead model.Lead
	err := r.db.WithContext(ctx).
		Where("lead_id = ?", leadID).
		First(&lead).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.logger.Debugw("GetByID lead not found", "lead_id", leadID)
			return nil, model.ErrLeadNotFound
		}
		r.logger.Errorw("GetByID database error", "lead_id", leadID, "error", err)
		return nil, err
	}

	return &lead, nil
}

// UpdateRevenue sets probability and amount and flips the stage.
func (r *repository) UpdateRevenue(ctx context.Context, leadID string, probability int, amount float64) (*model.Lead, error) {
	r.logger.Infow("UpdateRevenue called", "lead_id", leadID, "probability", probability, "amount", amount)

	result := r.db.WithContext(ctx).
		Model(&model.Lead{}).
		Where("lead_id = ?", leadID).
		Updates(map[string]interface{}{
			"probability": probability,
			"amount":      amount,
			"stage":       model.StageOpportunity,
		})

	if result.Error != nil {
		r.logger.Errorw("UpdateRevenue database error", "lead_id", leadID, "error", result.Error)
		return nil, result.Error
	}

	if result.RowsAffected == 0 {
		return nil, model.ErrLeadNotFound
	}

	return r.GetByID(ctx, leadID)
}

// UpdateOwner sets the owning user.
func (r *repository) UpdateOwner(ctx context.Context, leadID, ownerID string) (*model.Lead, error) {
	r.logger.Infow("UpdateOwner called", "lead_id", leadID, "owner_id", ownerID)

	result := r.db.WithContext(ctx).
		Model(&model.Lead{}).
		Where("lead_id = ?", leadID).
		Update("owner_id", ownerID)

	if result.Error != nil {
		r.logger.Errorw("UpdateOwner database error", "lead_id", leadID, "error", result.Error)
		return nil, result.Error
	}

	if result.RowsAffected == 0 {
		return nil, model.ErrLeadNotFound
	}

	return r.GetByID(ctx, leadID)
}

// ListByCompany returns all leads belonging to a company.
func (r *repository) ListByCompany(ctx context.Context, companyID string) ([]model.Lead, error) {
	r.logger.Debugw("ListByCompany called", "company_id", companyID)

	var leads []model.Lead
	err := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("created_at DESC, lead_id ASC").
		Find(&leads).Error

	if err != nil {
		r.logger.Errorw("ListByCompany database error", "company_id", companyID, "error", err)
		return nil, err
	}

	if leads == nil {
		leads = []model.Lead{}
	}

	r.logger.Debugw("ListByCompany completed", "company_id", companyID, "count", len(leads))
	return leads, nil
}

// CountByCompany returns the number of leads belonging to a company.
func (r *repository) CountByCompany(ctx context.Context, companyID string) (int64, error) {
	r.logger.Debugw("CountByCompany called", "company_id", companyID)

	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Lead{}).
		Where("company_id = ?", companyID).
		Count(&count).Error

	if err != nil {
		r.logger.Errorw("CountByCompany database error", "company_id", companyID, "error", err)
		return 0, err
	}

	return count, nil
}
