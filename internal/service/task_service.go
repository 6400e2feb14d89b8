package service

import (
	"context"

	"go-task-api/internal/domain"
	"go-task-api/internal/repo"
)

type TaskService struct {
	tasks *repo.TaskRepo
}

func NewTaskService(tasks *repo.TaskRepo) *TaskService {
	return &TaskService{tasks: tasks}
}

func (s *TaskService) GetTasks(ctx context.Context, f repo.TaskFilter, owner *domain.User) ([]domain.Task, error) {
	return s.tasks.GetTasks(ctx, f, owner.ID)
}

func (s *TaskService) GetTaskByID(ctx context.Context, id uint, owner *domain.User) (*domain.Task, error) {
	t, err := s.tasks.FindByID(ctx, id, owner.ID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, ErrNotFound
	}
	return t, nil
}

func (s *TaskService) CreateTask(ctx context.Context, title, description string, owner *domain.User) (*domain.Task, error) {
	t := &domain.Task{
		Title:       title,
		Description: description,
		Status:      domain.StatusOpen,
		UserID:      owner.ID,
	}
	if err := s.tasks.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *TaskService) DeleteTask(ctx context.Context, id uint, owner *domain.User) error {
	affected, err := s.tasks.Delete(ctx, id, owner.ID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateTaskStatus 取出-改-存，不加锁；同一任务并发更新按最后写入为准
func (s *TaskService) UpdateTaskStatus(ctx context.Context, id uint, status domain.TaskStatus, owner *domain.User) (*domain.Task, error) {
	t, err := s.GetTaskByID(ctx, id, owner)
	if err != nil {
		return nil, err
	}
	t.Status = status
	if err := s.tasks.Save(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}
