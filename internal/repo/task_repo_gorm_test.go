package repo

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"go-task-api/internal/domain"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.User{}, &domain.Task{}))
	return db
}

func seedTask(t *testing.T, db *gorm.DB, ownerID uint, title, desc string, status domain.TaskStatus) *domain.Task {
	t.Helper()
	task := &domain.Task{Title: title, Description: desc, Status: status, UserID: ownerID}
	require.NoError(t, db.Create(task).Error)
	return task
}

func TestTaskRepoGetTasks_OwnerScope(t *testing.T) {
	db := setupTestDB(t)
	r := NewTaskRepo(db)
	ctx := context.Background()

	seedTask(t, db, 1, "mine", "d", domain.StatusOpen)
	seedTask(t, db, 2, "theirs", "d", domain.StatusOpen)

	got, err := r.GetTasks(ctx, TaskFilter{}, 1)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "mine", got[0].Title)
}

func TestTaskRepoGetTasks_Filters(t *testing.T) {
	db := setupTestDB(t)
	r := NewTaskRepo(db)
	ctx := context.Background()

	seedTask(t, db, 1, "foo one", "plain", domain.StatusInProgress)
	seedTask(t, db, 1, "bar", "has FOO inside", domain.StatusInProgress)
	seedTask(t, db, 1, "foo open", "plain", domain.StatusOpen)
	seedTask(t, db, 1, "bar done", "plain", domain.StatusInProgress)

	// status 和 search 同时给要按 AND 组合
	got, err := r.GetTasks(ctx, TaskFilter{Status: domain.StatusInProgress, Search: "foo"}, 1)
	require.NoError(t, err)
	require.Len(t, got, 2)
	for _, task := range got {
		require.Equal(t, domain.StatusInProgress, task.Status)
	}
}

func TestTaskRepoGetTasks_SearchCaseInsensitive(t *testing.T) {
	db := setupTestDB(t)
	r := NewTaskRepo(db)
	ctx := context.Background()

	seedTask(t, db, 1, "Buy Groceries", "milk and eggs", domain.StatusOpen)

	for _, q := range []string{"groceries", "GROCERIES", "Milk"} {
		got, err := r.GetTasks(ctx, TaskFilter{Search: q}, 1)
		require.NoError(t, err)
		require.Len(t, got, 1, "search %q", q)
	}
}

func TestTaskRepoGetTasks_EmptyResultIsNotError(t *testing.T) {
	db := setupTestDB(t)
	r := NewTaskRepo(db)

	got, err := r.GetTasks(context.Background(), TaskFilter{Search: "nothing"}, 1)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestTaskRepoFindByID_NotFoundIsNil(t *testing.T) {
	db := setupTestDB(t)
	r := NewTaskRepo(db)

	got, err := r.FindByID(context.Background(), 42, 1)
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestTaskRepoDelete_ReportsAffectedRows(t *testing.T) {
	db := setupTestDB(t)
	r := NewTaskRepo(db)
	ctx := context.Background()

	task := seedTask(t, db, 1, "t", "d", domain.StatusOpen)

	affected, err := r.Delete(ctx, task.ID, 1)
	require.NoError(t, err)
	require.EqualValues(t, 1, affected)

	affected, err = r.Delete(ctx, task.ID, 1)
	require.NoError(t, err)
	require.EqualValues(t, 0, affected)
}

func TestUserRepoFindByUsername_EagerTasks(t *testing.T) {
	db := setupTestDB(t)
	users := NewUserRepo(db)
	ctx := context.Background()

	u := &domain.User{Username: "Test User", Password: "h", Salt: "s"}
	require.NoError(t, users.Create(ctx, u))
	seedTask(t, db, u.ID, "a", "d", domain.StatusOpen)
	seedTask(t, db, u.ID, "b", "d", domain.StatusDone)

	got, err := users.FindByUsername(ctx, "Test User")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Len(t, got.Tasks, 2)

	byID, err := users.FindByID(ctx, u.ID)
	require.NoError(t, err)
	require.NotNil(t, byID)
	require.Equal(t, "Test User", byID.Username)

	missing, err := users.FindByUsername(ctx, "nobody")
	require.NoError(t, err)
	require.Nil(t, missing)
}
