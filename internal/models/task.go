package models

import (
	"time"

	"github.com/taskflow-dev/taskflow/internal/types"
)

type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "TODO"
	TaskStatusInProgress TaskStatus = "IN_PROGRESS"
	TaskStatusDone       TaskStatus = "DONE"
)

// Task deletion is permanent, so there is no DeletedAt column.
type Task struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Title       string `gorm:"not null"`
	Description string
	DueDate     types.Date `gorm:"type:date;not null"`
	Status      TaskStatus `gorm:"type:varchar(20);not null;default:'TODO'"`

	// Owner is fixed at creation and never reassigned.
	UserID uint `gorm:"not null;index"`
	User   User `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
