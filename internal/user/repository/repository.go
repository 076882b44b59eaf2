// Package repository provides data access layer for user module.
package repository

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/crmkit/leads-service/internal/user/model"
)

// Repository defines the interface for user data access operations.
type Repository interface {
	// GetByID finds user by user_id.
	GetByID(ctx context.Context, userID string) (*model.User, error)

	// GetByEmail finds user by email.
	GetByEmail(ctx context.Context, email string) (*model.User, error)

	// ListTeamMembers returns all team members for a company.
	ListTeamMembers(ctx context.Context, companyID string) ([]model.User, error)
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new user repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

// GetByID finds user by user_id.
func (r *repository) GetByID(ctx context.Context, userID string) (*model.User, error) {
	r.logger.Debugw("GetByID called", "user_id", userID)

	var user model.User
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&user).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.logger.Debugw("GetByID user not found", "user_id", userID)
			return nil, model.ErrUserNotFound
		}
		r.logger.Errorw("GetByID database error", "user_id", userID, "error", err)
		return nil, err
	}

	return &user, nil
}

// GetByEmail finds user by email.
func (r *repository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	r.logger.Debugw("GetByEmail called", "email", email)

	var user model.User
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&user).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrUserNotFound
		}
		r.logger.Errorw("GetByEmail database error", "email", email, "error", err)
		return nil, err
	}

	return &user, nil
}

// ListTeamMembers returns all team members for a company.
func (r *repository) ListTeamMembers(ctx context.Context, companyID string) ([]model.User, error) {
	r.logger.Debugw("ListTeamMembers called", "company_id", companyID)

	var users []model.User
	err := r.db.WithContext(ctx).
		Where("company_id = ? AND is_team_member = ?", companyID, true).
		Order("user_id ASC").
		Find(&users).Error

	if err != nil {
		r.logger.Errorw("ListTeamMembers database error", "company_id", companyID, "error", err)
		return nil, err
	}

	if users == nil {
		users = []model.User{}
	}

	r.logger.Debugw("ListTeamMembers completed", "company_id", companyID, "count", len(users))
	return users, nil
}
