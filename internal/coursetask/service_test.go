package coursetask

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"certifytrack-go/internal/common/models"
)

// fakeRepo keeps tasks in memory so service defaults can be checked
// without a database.
type fakeRepo struct {
	tasks map[uuid.UUID]*models.CourseTask
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{tasks: make(map[uuid.UUID]*models.CourseTask)}
}

func (f *fakeRepo) Create(_ context.Context, task *models.CourseTask) error {
	copied := *task
	f.tasks[task.ID] = &copied
	return nil
}

func (f *fakeRepo) GetByID(_ context.Context, id uuid.UUID) (*models.CourseTask, error) {
	task, ok := f.tasks[id]
	if !ok {
		return nil, ErrTaskNotFound
	}
	copied := *task
	return &copied, nil
}

func (f *fakeRepo) GetByCourse(_ context.Context, courseID uuid.UUID) ([]models.CourseTask, error) {
	var tasks []models.CourseTask
	for _, task := range f.tasks {
		if task.CourseID == courseID {
			tasks = append(tasks, *task)
		}
	}
	return tasks, nil
}

func (f *fakeRepo) Update(_ context.Context, task *models.CourseTask) error {
	if _, ok := f.tasks[task.ID]; !ok {
		return ErrTaskNotFound
	}
	copied := *task
	f.tasks[task.ID] = &copied
	return nil
}

func (f *fakeRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.tasks[id]; !ok {
		return ErrTaskNotFound
	}
	delete(f.tasks, id)
	return nil
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()
	courseID := uuid.New()

	t.Run("defaults difficulty to medium", func(t *testing.T) {
		svc := NewService(newFakeRepo())

		created, err := svc.Create(ctx, &models.CourseTask{
			CourseID:    courseID,
			Title:       "Set up the toolchain",
			IsMandatory: true,
		})
		require.NoError(t, err)
		assert.Equal(t, models.DifficultyMedium, created.DifficultyLevel)
	})

	t.Run("keeps an explicit difficulty", func(t *testing.T) {
		svc := NewService(newFakeRepo())

		created, err := svc.Create(ctx, &models.CourseTask{
			CourseID:        courseID,
			Title:           "Write a parser",
			DifficultyLevel: models.DifficultyHard,
			IsMandatory:     true,
		})
		require.NoError(t, err)
		assert.Equal(t, models.DifficultyHard, created.DifficultyLevel)
	})

	t.Run("normalizes nil arrays to empty", func(t *testing.T) {
		svc := NewService(newFakeRepo())

		created, err := svc.Create(ctx, &models.CourseTask{
			CourseID: courseID,
			Title:    "Deploy",
		})
		require.NoError(t, err)
		assert.Equal(t, []string{}, []string(created.ResourceLinks))
		assert.Equal(t, []string{}, []string(created.Hints))
		assert.Equal(t, []string{}, []string(created.Tags))
		assert.Equal(t, []string{}, []string(created.EvaluationCriteria))
	})
}

func TestService_Update(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newFakeRepo())

	created, err := svc.Create(ctx, &models.CourseTask{
		CourseID:        uuid.New(),
		Title:           "Original",
		DifficultyLevel: models.DifficultyEasy,
		IsMandatory:     true,
	})
	require.NoError(t, err)

	t.Run("keeps stored difficulty when omitted", func(t *testing.T) {
		updated, err := svc.Update(ctx, created.ID, &models.CourseTask{
			Title:       "Renamed",
			IsMandatory: true,
		})
		require.NoError(t, err)
		assert.Equal(t, models.DifficultyEasy, updated.DifficultyLevel)
		assert.Equal(t, "Renamed", updated.Title)
		assert.Equal(t, created.CourseID, updated.CourseID)
	})

	t.Run("unknown task", func(t *testing.T) {
		_, err := svc.Update(ctx, uuid.New(), &models.CourseTask{Title: "Ghost"})
		assert.ErrorIs(t, err, ErrTaskNotFound)
	})
}
