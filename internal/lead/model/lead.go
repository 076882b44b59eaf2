package model

import (
	"time"

	"gorm.io/gorm"
)

// Lead stages. A record starts as a lead and becomes an opportunity
// once probability and amount are quantified.
const (
	StageLead        = "lead"
	StageOpportunity = "opportunity"
)

// Lead represents a prospective sale submitted through the public web
// form. Matches the leads table schema.
//
// Probability and Amount stay nil until the record is converted to an
// opportunity; they are always written together. OwnerID is nil until
// the lead is assigned and is never cleared afterwards, only
// reassigned.
type Lead struct {
	LeadID          string    `gorm:"primaryKey;column:lead_id;type:varchar(255)"                       json:"lead_id"`
	PartyID         string    `gorm:"column:party_id;type:varchar(255);not null;index:idx_leads_party"  json:"party_id"`
	CompanyID       string    `gorm:"column:company_id;type:varchar(255);not null;index:idx_leads_company" json:"company_id"`
	Company         string    `gorm:"column:company;type:varchar(255);not null"                         json:"company"`
	Description     string    `gorm:"column:description;type:text"                                      json:"description"`
	Comment         string    `gorm:"column:comment;type:text"                                          json:"comment"`
	IPAddress       string    `gorm:"column:ip_address;type:varchar(64)"                                json:"ip_address"`
	DetectedCountry *string   `gorm:"column:detected_country;type:varchar(64)"                          json:"detected_country,omitempty"`
	Probability     *int      `gorm:"column:probability"                                                json:"probability,omitempty"`
	Amount          *float64  `gorm:"column:amount"                                                     json:"amount,omitempty"`
	OwnerID         *string   `gorm:"column:owner_id;type:varchar(255);index:idx_leads_owner"           json:"owner_id,omitempty"`
	Stage           string    `gorm:"column:stage;type:varchar(32);not null;default:lead"               json:"stage"`
	CreatedAt       time.Time `gorm:"column:created_at;type:timestamptz;not null;default:now()"         json:"created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at;type:timestamptz;not null;default:now()"         json:"-"`
}

// TableName specifies the table name for GORM.
func (Lead) TableName() string {
	return "leads"
}

// BeforeUpdate updates the UpdatedAt timestamp before saving.
func (l *Lead) BeforeUpdate(tx *gorm.DB) error {
	l.UpdatedAt = time.Now()
	return nil
}

// IsAssignedTo reports whether the lead is currently owned by userID.
func (l *Lead) IsAssignedTo(userID string) bool {
	return l.OwnerID != nil && *l.OwnerID == userID
}
