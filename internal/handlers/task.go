package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/taskflow-dev/taskflow/internal/models"
	"github.com/taskflow-dev/taskflow/internal/services"
	"github.com/taskflow-dev/taskflow/internal/types"
	"github.com/taskflow-dev/taskflow/internal/utils"
)

type TaskRequest struct {
	Title       string            `json:"title" binding:"required"`
	Description string            `json:"description"`
	DueDate     types.Date        `json:"dueDate" binding:"required"`
	Status      models.TaskStatus `json:"status" binding:"omitempty,oneof=TODO IN_PROGRESS DONE"`
}

type TaskResponse struct {
	ID          uint              `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	DueDate     types.Date        `json:"dueDate"`
	Status      models.TaskStatus `json:"status"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}

func toTaskResponse(task *models.Task) TaskResponse {
	return TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		DueDate:     task.DueDate,
		Status:      task.Status,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
}

func taskID(ctx *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID"})
		return 0, false
	}

	return uint(id), true
}

func ListTasks(ctx *gin.Context) {
	ownerEmail, err := utils.GetCurrentUserEmail(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	tasks, err := services.ListTasks(ownerEmail)

	if err != nil {
		log.Printf("Failed to list tasks: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve tasks"})
		return
	}

	response := make([]TaskResponse, 0, len(tasks))

	for i := range tasks {
		response = append(response, toTaskResponse(&tasks[i]))
	}

	ctx.JSON(http.StatusOK, response)
}

func GetTask(ctx *gin.Context) {
	ownerEmail, err := utils.GetCurrentUserEmail(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	id, ok := taskID(ctx)

	if !ok {
		return
	}

	task, err := services.GetTask(id, ownerEmail)

	if err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
			return
		}
		log.Printf("Failed to retrieve task: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve task"})
		return
	}

	ctx.JSON(http.StatusOK, toTaskResponse(task))
}

func CreateTask(ctx *gin.Context) {
	ownerEmail, err := utils.GetCurrentUserEmail(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var body TaskRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	task, err := services.CreateTask(services.TaskInput{
		Title:       body.Title,
		Description: body.Description,
		DueDate:     body.DueDate,
		Status:      body.Status,
	}, ownerEmail)

	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyTitle):
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Title must not be empty"})
		case errors.Is(err, services.ErrUnknownUser):
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
		default:
			log.Printf("Failed to create task: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create task"})
		}
		return
	}

	ctx.JSON(http.StatusCreated, toTaskResponse(task))
}

func UpdateTask(ctx *gin.Context) {
	ownerEmail, err := utils.GetCurrentUserEmail(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	id, ok := taskID(ctx)

	if !ok {
		return
	}

	var body TaskRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	task, err := services.UpdateTask(id, services.TaskInput{
		Title:       body.Title,
		Description: body.Description,
		DueDate:     body.DueDate,
		Status:      body.Status,
	}, ownerEmail)

	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyTitle):
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Title must not be empty"})
		case errors.Is(err, services.ErrTaskNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		default:
			log.Printf("Failed to update task: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update task"})
		}
		return
	}

	ctx.JSON(http.StatusOK, toTaskResponse(task))
}

func DeleteTask(ctx *gin.Context) {
	ownerEmail, err := utils.GetCurrentUserEmail(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	id, ok := taskID(ctx)

	if !ok {
		return
	}

	if err := services.DeleteTask(id, ownerEmail); err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
			return
		}
		log.Printf("Failed to delete task: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete task"})
		return
	}

	ctx.Status(http.StatusNoContent)
}
