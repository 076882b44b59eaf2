// Package repository provides data access layer for party module.
package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/crmkit/leads-service/internal/party/model"
)

// Repository defines the interface for party data access operations.
type Repository interface {
	// GetByID finds party by party_id.
	GetByID(ctx context.Context, partyID string) (*model.Party, error)

	// GetOrCreateByEmail finds a party by email, creating one when absent.
	// An existing party keeps its stored name; the supplied name is only
	// used for creation.
	GetOrCreateByEmail(ctx context.Context, email, name string) (*model.Party, error)
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new party repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

// GetByID finds party by party_id.
func (r *repository) GetByID(ctx context.Context, partyID string) (*model.Party, error) {
	r.logger.Debugw("GetByID called", "party_id", partyID)

	var party model.Party
	err := r.db.WithContext(ctx).
		Where("party_id = ?", partyID).
		First(&party).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrPartyNotFound
		}
		r.logger.Errorw("GetByID database error", "party_id", partyID, "error", err)
		return nil, err
	}

	return &party, nil
}

// GetOrCreateByEmail finds a party by email, creating one when absent.
func (r *repository) GetOrCreateByEmail(ctx context.Context, email, name string) (*model.Party, error) {
	r.logger.Debugw("GetOrCreateByEmail called", "email", email)

	if email == "" {
		return nil, model.ErrInvalidEmail
	}

	var party model.Party
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&party).Error

	if err == nil {
		return &party, nil
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		r.logger.Errorw("GetOrCreateByEmail database error", "email", email, "error", err)
		return nil, err
	}

	party = model.Party{
		PartyID: uuid.New().String(),
		Name:    name,
		Email:   email,
	}

	if err := r.db.WithContext(ctx).Create(&party).Error; err != nil {
		r.logger.Errorw("GetOrCreateByEmail create failed", "email", email, "error", err)
		return nil, err
	}

	r.logger.Infow("GetOrCreateByEmail created party", "party_id", party.PartyID, "email", email)
	return &party, nil
}
