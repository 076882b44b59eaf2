// Package flash provides per-user one-time status messages.
//
// A message pushed for a user is returned exactly once by Pop and then
// deleted, which models the "status shown on the next page view"
// behavior of session flash messages without a server-side session.
package flash

import (
	"context"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Message is a pending one-time message for a user.
type Message struct {
	ID        int64     `gorm:"primaryKey;autoIncrement;column:id"                          json:"-"`
	UserID    string    `gorm:"column:user_id;type:varchar(255);not null;index:idx_flash_user" json:"-"`
	Text      string    `gorm:"column:text;type:text;not null"                              json:"text"`
	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz;not null;default:now()"   json:"-"`
}

// TableName specifies the table name for GORM.
func (Message) TableName() string {
	return "flash_messages"
}

// Store defines the interface for flash message persistence.
type Store interface {
	// Push queues a message for the user.
	Push(ctx context.Context, userID, text string) error

	// Pop returns all pending messages for the user in insertion order
	// and deletes them. A second Pop returns nothing.
	Pop(ctx context.Context, userID string) ([]string, error)
}

type store struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// NewStore creates a new flash message store instance.
func NewStore(db *gorm.DB, logger *zap.SugaredLogger) Store {
	return &store{db: db, logger: logger}
}

// Push queues a message for the user.
func (s *store) Push(ctx context.Context, userID, text string) error {
	s.logger.Debugw("Push called", "user_id", userID)

	err := s.db.WithContext(ctx).Create(&Message{
		UserID: userID,
		Text:   text,
	}).Error

	if err != nil {
		s.logger.Errorw("Push database error", "user_id", userID, "error", err)
		return err
	}

	return nil
}

// Pop returns and deletes all pending messages for the user.
func (s *store) Pop(ctx context.Context, userID string) ([]string, error) {
	s.logger.Debugw("Pop called", "user_id", userID)

	var texts []string
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var messages []Message
		if err := tx.
			Where("user_id = ?", userID).
			Order("id ASC").
			Find(&messages).Error; err != nil {
			return err
		}

		if len(messages) == 0 {
			return nil
		}

		ids := make([]int64, 0, len(messages))
		for _, m := range messages {
			texts = append(texts, m.Text)
			ids = append(ids, m.ID)
		}

		return tx.Where("id IN ?", ids).Delete(&Message{}).Error
	})

	if err != nil {
		s.logger.Errorw("Pop database error", "user_id", userID, "error", err)
		return nil, err
	}

	if texts == nil {
		texts = []string{}
	}

	return texts, nil
}
