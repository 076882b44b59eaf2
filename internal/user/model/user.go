// Package model provides domain models for the user module.
package model

import (
	"time"

	"gorm.io/gorm"
)

// User represents a sales-team user account.
// Matches the users table schema. Authentication itself is handled by
// the web layer; this record carries identity and authorization flags.
type User struct {
	UserID       string    `gorm:"primaryKey;column:user_id;type:varchar(255)"                          json:"user_id"`
	DisplayName  string    `gorm:"column:display_name;type:varchar(255);not null"                       json:"display_name"`
	Email        string    `gorm:"column:email;type:varchar(255);not null;uniqueIndex:idx_users_email"  json:"email"`
	CompanyID    string    `gorm:"column:company_id;type:varchar(255);not null;index:idx_users_company" json:"company_id"`
	EmployeeID   *string   `gorm:"column:employee_id;type:varchar(255)"                                 json:"employee_id,omitempty"`
	IsTeamMember bool      `gorm:"column:is_team_member;type:boolean;not null;default:false"            json:"is_team_member"`
	IsAdmin      bool      `gorm:"column:is_admin;type:boolean;not null;default:false"                  json:"is_admin"`
	CreatedAt    time.Time `gorm:"column:created_at;type:timestamptz;not null;default:now()"            json:"-"`
	UpdatedAt    time.Time `gorm:"column:updated_at;type:timestamptz;not null;default:now()"            json:"-"`
}

// TableName specifies the table name for GORM.
func (User) TableName() string {
	return "users"
}

// BeforeUpdate updates the UpdatedAt timestamp before saving.
func (u *User) BeforeUpdate(tx *gorm.DB) error {
	u.UpdatedAt = time.Now()
	return nil
}
