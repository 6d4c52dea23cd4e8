package internship

import (
	"context"
	"log"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"certifytrack-go/internal/common/models"
	usercontext "certifytrack-go/internal/context"
	"certifytrack-go/internal/database"
	"certifytrack-go/internal/database/migrate"
)

var (
	testDatabase string
	testPassword string
	testUsername string
	testHost     string
	testPort     string
)

func mustStartPostgresContainer() (func(context.Context) error, error) {
	var (
		dbName = "testdb"
		dbPwd  = "testpass"
		dbUser = "testuser"
	)

	dbContainer, err := postgres.Run(
		context.Background(),
		"postgres:latest",
		postgres.WithDatabase(dbName),
		postgres.WithUsername(dbUser),
		postgres.WithPassword(dbPwd),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Second)),
	)
	if err != nil {
		return nil, err
	}

	testDatabase = dbName
	testPassword = dbPwd
	testUsername = dbUser

	dbHost, err := dbContainer.Host(context.Background())
	if err != nil {
		return dbContainer.Terminate, err
	}

	dbPort, err := dbContainer.MappedPort(context.Background(), "5432/tcp")
	if err != nil {
		return dbContainer.Terminate, err
	}

	testHost = dbHost
	testPort = dbPort.Port()

	return dbContainer.Terminate, err
}

func TestMain(m *testing.M) {
	teardown, err := mustStartPostgresContainer()
	if err != nil {
		log.Fatalf("could not start postgres container: %v", err)
	}

	m.Run()

	if teardown != nil && teardown(context.Background()) != nil {
		log.Fatalf("could not teardown postgres container: %v", err)
	}
}

func setupTestDB(t *testing.T) *database.DB {
	cfg := database.Config{
		Host:     testHost,
		Port:     testPort,
		Database: testDatabase,
		Username: testUsername,
		Password: testPassword,
		Schema:   "public",
	}
	db, err := database.New(cfg)
	require.NoError(t, err)
	require.NotNil(t, db)

	err = migrate.RunMigrations(db.DB)
	require.NoError(t, err)

	return db
}

func createTestUser(t *testing.T, db *database.DB, role string) uuid.UUID {
	id := uuid.New()
	_, err := db.Exec(`
        INSERT INTO users (id, email, full_name, password_hash, role)
        VALUES ($1, $2, 'Test User', 'hashed', $3)`,
		id, "user-"+id.String()+"@example.com", role)
	require.NoError(t, err)
	return id
}

func createTestTask(t *testing.T, db *database.DB, internshipID uuid.UUID, difficulty string, mandatory bool) uuid.UUID {
	id := uuid.New()
	_, err := db.Exec(`
        INSERT INTO tasks (id, internship_id, title, assigned_day, difficulty_level, is_mandatory)
        VALUES ($1, $2, 'Task', 1, $3, $4)`,
		id, internshipID, difficulty, mandatory)
	require.NoError(t, err)
	return id
}

func createTestSubmission(t *testing.T, db *database.DB, taskID, userID uuid.UUID, status string) uuid.UUID {
	id := uuid.New()
	_, err := db.Exec(`
        INSERT INTO submissions (id, task_id, user_id, status)
        VALUES ($1, $2, $3, $4)`, id, taskID, userID, status)
	require.NoError(t, err)
	return id
}

func adminContext(adminID uuid.UUID) context.Context {
	return usercontext.WithUser(context.Background(), &usercontext.UserInfo{
		ID:    adminID,
		Email: "admin@example.com",
		Role:  models.RoleAdmin,
	})
}

func TestService_Create(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	svc := NewService(NewRepository(db))
	adminID := createTestUser(t, db, models.RoleAdmin)
	ctx := adminContext(adminID)

	t.Run("applies defaults and derives slug", func(t *testing.T) {
		created, err := svc.Create(ctx, &models.Internship{Title: "Backend Internship 2026"})
		require.NoError(t, err)

		assert.Equal(t, "backend-internship-2026", created.Slug)
		assert.Equal(t, models.PriceFree, created.PriceType)
		assert.Equal(t, models.ModeOnline, created.Mode)
		assert.Equal(t, models.InternshipUpcoming, created.Status)
		assert.Equal(t, []string{}, []string(created.Tags))
		require.NotNil(t, created.Stats)
		assert.Equal(t, models.InternshipStats{}, *created.Stats)
	})

	t.Run("rejects anonymous caller", func(t *testing.T) {
		_, err := svc.Create(context.Background(), &models.Internship{Title: "Nope"})
		assert.ErrorIs(t, err, ErrNotAuthorized)
	})
}

func TestService_GetByID_Stats(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	repo := NewRepository(db)
	svc := NewService(repo)
	adminID := createTestUser(t, db, models.RoleAdmin)
	ctx := adminContext(adminID)

	created, err := svc.Create(ctx, &models.Internship{Title: "Data Engineering"})
	require.NoError(t, err)

	easyTask := createTestTask(t, db, created.ID, models.DifficultyEasy, true)
	hardTask := createTestTask(t, db, created.ID, models.DifficultyHard, false)

	student := createTestUser(t, db, models.RoleUser)
	createTestSubmission(t, db, easyTask, student, models.SubmissionPending)
	createTestSubmission(t, db, hardTask, student, models.SubmissionApproved)

	_, err = db.Exec(`
        INSERT INTO internship_subscriptions (id, internship_id, user_id, status)
        VALUES ($1, $2, $3, 'active')`, uuid.New(), created.ID, student)
	require.NoError(t, err)

	fetched, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, fetched.Stats)

	assert.Equal(t, 1, fetched.Stats.TotalStudents)
	assert.Equal(t, 1, fetched.Stats.ActiveStudents)
	assert.Equal(t, 2, fetched.Stats.TotalTasks)
	assert.Equal(t, 1, fetched.Stats.MandatoryTasks)
	assert.Equal(t, 1, fetched.Stats.TasksByDifficulty.Easy)
	assert.Equal(t, 1, fetched.Stats.TasksByDifficulty.Hard)
	assert.Equal(t, 2, fetched.Stats.TotalSubmissions)
	assert.Equal(t, 1, fetched.Stats.PendingSubmissions)
	assert.Equal(t, 1, fetched.Stats.ApprovedSubmissions)

	require.Len(t, fetched.Tasks, 2)
	require.Len(t, fetched.Tasks[0].Submissions, 1)
}

func TestRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	repo := NewRepository(db)
	svc := NewService(repo)
	adminID := createTestUser(t, db, models.RoleAdmin)
	ctx := adminContext(adminID)

	created, err := svc.Create(ctx, &models.Internship{Title: "Short Lived"})
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, created.ID))
	_, err = repo.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, ErrInternshipNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, uuid.New()), ErrInternshipNotFound)
}
