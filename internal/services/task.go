package services

import (
	"errors"
	"strings"

	"github.com/taskflow-dev/taskflow/db"
	"github.com/taskflow-dev/taskflow/internal/models"
	"github.com/taskflow-dev/taskflow/internal/types"
	"gorm.io/gorm"
)

type TaskInput struct {
	Title       string
	Description string
	DueDate     types.Date
	Status      models.TaskStatus
}

func resolveOwner(tx *gorm.DB, ownerEmail string) (*models.User, error) {
	var owner models.User

	if err := tx.Where("email = ?", NormalizeEmail(ownerEmail)).First(&owner).Error; err != nil {
		return nil, err
	}

	return &owner, nil
}

// findOwnedTask looks a task up with the owner folded into the predicate,
// so a missing task and another user's task are indistinguishable.
func findOwnedTask(tx *gorm.DB, id uint, ownerEmail string) (*models.Task, error) {
	owner, err := resolveOwner(tx, ownerEmail)

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, err
	}

	var task models.Task

	if err := tx.Where("id = ? AND user_id = ?", id, owner.ID).First(&task).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, err
	}

	return &task, nil
}

func ListTasks(ownerEmail string) ([]models.Task, error) {
	owner, err := resolveOwner(db.DB, ownerEmail)

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []models.Task{}, nil
		}
		return nil, err
	}

	tasks := []models.Task{}

	if err := db.DB.Where("user_id = ?", owner.ID).Order("created_at DESC, id DESC").Find(&tasks).Error; err != nil {
		return nil, err
	}

	return tasks, nil
}

func GetTask(id uint, ownerEmail string) (*models.Task, error) {
	return findOwnedTask(db.DB, id, ownerEmail)
}

func CreateTask(input TaskInput, ownerEmail string) (*models.Task, error) {
	title := strings.TrimSpace(input.Title)

	if title == "" {
		return nil, ErrEmptyTitle
	}

	owner, err := resolveOwner(db.DB, ownerEmail)

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnknownUser
		}
		return nil, err
	}

	status := input.Status

	if status == "" {
		status = models.TaskStatusTodo
	}

	task := models.Task{
		Title:       title,
		Description: input.Description,
		DueDate:     input.DueDate,
		Status:      status,
		UserID:      owner.ID,
	}

	if err := db.DB.Create(&task).Error; err != nil {
		return nil, err
	}

	return &task, nil
}

// UpdateTask replaces every mutable field; there is no partial merge.
func UpdateTask(id uint, input TaskInput, ownerEmail string) (*models.Task, error) {
	title := strings.TrimSpace(input.Title)

	if title == "" {
		return nil, ErrEmptyTitle
	}

	status := input.Status

	if status == "" {
		status = models.TaskStatusTodo
	}

	var task *models.Task

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		found, err := findOwnedTask(tx, id, ownerEmail)

		if err != nil {
			return err
		}

		found.Title = title
		found.Description = input.Description
		found.DueDate = input.DueDate
		found.Status = status

		if err := tx.Save(found).Error; err != nil {
			return err
		}

		task = found
		return nil
	})

	if err != nil {
		return nil, err
	}

	return task, nil
}

func DeleteTask(id uint, ownerEmail string) error {
	return db.DB.Transaction(func(tx *gorm.DB) error {
		task, err := findOwnedTask(tx, id, ownerEmail)

		if err != nil {
			return err
		}

		return tx.Delete(task).Error
	})
}
