package repo

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"go-task-api/internal/domain"
)

// TaskFilter 两个条件独立可选，都给则 AND；owner 维度总是强制
type TaskFilter struct {
	Status domain.TaskStatus
	Search string
}

type TaskRepo struct{ db *gorm.DB }

func NewTaskRepo(db *gorm.DB) *TaskRepo { return &TaskRepo{db: db} }

func (r *TaskRepo) GetTasks(ctx context.Context, f TaskFilter, ownerID uint) ([]domain.Task, error) {
	q := r.db.WithContext(ctx).Where("user_id = ?", ownerID)
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if s := strings.TrimSpace(f.Search); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		q = q.Where("(LOWER(title) LIKE ? OR LOWER(description) LIKE ?)", like, like)
	}
	var tasks []domain.Task
	if err := q.Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *TaskRepo) FindByID(ctx context.Context, id, ownerID uint) (*domain.Task, error) {
	var t domain.Task
	err := r.db.WithContext(ctx).First(&t, "id = ? AND user_id = ?", id, ownerID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TaskRepo) Create(ctx context.Context, t *domain.Task) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *TaskRepo) Save(ctx context.Context, t *domain.Task) error {
	return r.db.WithContext(ctx).Save(t).Error
}

// Delete 物理删除，返回影响行数；0 行由上层判为 NotFound
func (r *TaskRepo) Delete(ctx context.Context, id, ownerID uint) (int64, error) {
	res := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, ownerID).Delete(&domain.Task{})
	return res.RowsAffected, res.Error
}
