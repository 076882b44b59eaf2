// Package model provides domain models for the party module.
package model

import (
	"time"

	"gorm.io/gorm"
)

// Party represents an external contact a lead belongs to, typically
// created from a web form submission and keyed by email.
type Party struct {
	PartyID   string    `gorm:"primaryKey;column:party_id;type:varchar(255)"                           json:"party_id"`
	Name      string    `gorm:"column:name;type:varchar(255);not null"                                 json:"name"`
	Email     string    `gorm:"column:email;type:varchar(255);not null;uniqueIndex:idx_parties_email"  json:"email"`
	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz;not null;default:now()"              json:"-"`
	UpdatedAt time.Time `gorm:"column:updated_at;type:timestamptz;not null;default:now()"              json:"-"`
}

// TableName specifies the table name for GORM.
func (Party) TableName() string {
	return "parties"
}

// BeforeUpdate updates the UpdatedAt timestamp before saving.
func (p *Party) BeforeUpdate(tx *gorm.DB) error {
	p.UpdatedAt = time.Now()
	return nil
}
