package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"go-task-api/internal/domain"
	"go-task-api/internal/repo"
	"go-task-api/internal/service"
	"go-task-api/internal/transport/http/middleware"
	resp "go-task-api/internal/transport/http/response"
)

type TaskHandler struct {
	tasks *service.TaskService
}

func NewTaskHandler(tasks *service.TaskService) *TaskHandler {
	return &TaskHandler{tasks: tasks}
}

type listTasksQ struct {
	Status string `form:"status" binding:"omitempty,oneof=OPEN IN_PROGRESS DONE"`
	Search string `form:"search"`
}

type createTaskIn struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
}

type updateStatusIn struct {
	Status string `json:"status" binding:"required,oneof=OPEN IN_PROGRESS DONE"`
}

func (h *TaskHandler) List(c *gin.Context) {
	var q listTasksQ
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusOK, resp.Error(resp.CodeBadRequest, err.Error()))
		return
	}
	owner := middleware.CurrentUser(c)
	filter := repo.TaskFilter{Status: domain.TaskStatus(q.Status), Search: q.Search}
	tasks, err := h.tasks.GetTasks(c.Request.Context(), filter, owner)
	if err != nil {
		writeTaskErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resp.OK(tasks))
}

func (h *TaskHandler) Get(c *gin.Context) {
	id, ok := taskID(c)
	if !ok {
		return
	}
	t, err := h.tasks.GetTaskByID(c.Request.Context(), id, middleware.CurrentUser(c))
	if err != nil {
		writeTaskErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resp.OK(t))
}

func (h *TaskHandler) Create(c *gin.Context) {
	var in createTaskIn
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusOK, resp.Error(resp.CodeBadRequest, err.Error()))
		return
	}
	t, err := h.tasks.CreateTask(c.Request.Context(), in.Title, in.Description, middleware.CurrentUser(c))
	if err != nil {
		writeTaskErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resp.OK(t))
}

func (h *TaskHandler) Delete(c *gin.Context) {
	id, ok := taskID(c)
	if !ok {
		return
	}
	if err := h.tasks.DeleteTask(c.Request.Context(), id, middleware.CurrentUser(c)); err != nil {
		writeTaskErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resp.OK(gin.H{"id": id}))
}

func (h *TaskHandler) UpdateStatus(c *gin.Context) {
	id, ok := taskID(c)
	if !ok {
		return
	}
	var in updateStatusIn
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusOK, resp.Error(resp.CodeBadRequest, err.Error()))
		return
	}
	t, err := h.tasks.UpdateTaskStatus(c.Request.Context(), id, domain.TaskStatus(in.Status), middleware.CurrentUser(c))
	if err != nil {
		writeTaskErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resp.OK(t))
}

func taskID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusOK, resp.Error(resp.CodeBadRequest, "invalid task id"))
		return 0, false
	}
	return uint(id), true
}

func writeTaskErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusOK, resp.Error(resp.CodeNotFound, "task not found"))
	case errors.Is(err, service.ErrUnauthorized):
		c.JSON(http.StatusOK, resp.Error(resp.CodeUnauthorized, "unauthorized"))
	default:
		c.JSON(http.StatusOK, resp.Error(resp.CodeServerError, err.Error()))
	}
}
