package submission

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

// seedSubmission inserts a user, internship, task and pending submission,
// returning the submission and reviewing admin ids.
func seedSubmission(t *testing.T, db *database.DB) (submissionID, adminID uuid.UUID) {
	adminID = uuid.New()
	_, err := db.Exec(`
        INSERT INTO users (id, email, full_name, password_hash, role)
        VALUES ($1, $2, 'Admin', 'hashed', 'admin')`,
		adminID, "admin-"+adminID.String()+"@example.com")
	require.NoError(t, err)

	studentID := uuid.New()
	_, err = db.Exec(`
        INSERT INTO users (id, email, full_name, password_hash, role)
        VALUES ($1, $2, 'Student', 'hashed', 'user')`,
		studentID, "student-"+studentID.String()+"@example.com")
	require.NoError(t, err)

	internshipID := uuid.New()
	_, err = db.Exec(`
        INSERT INTO internships (id, title, slug)
        VALUES ($1, 'Internship', $2)`, internshipID, "internship-"+internshipID.String())
	require.NoError(t, err)

	taskID := uuid.New()
	_, err = db.Exec(`
        INSERT INTO tasks (id, internship_id, title, assigned_day)
        VALUES ($1, $2, 'Task One', 3)`, taskID, internshipID)
	require.NoError(t, err)

	submissionID = uuid.New()
	_, err = db.Exec(`
        INSERT INTO submissions (id, task_id, user_id, status, text_answer)
        VALUES ($1, $2, $3, 'pending', 'my answer')`, submissionID, taskID, studentID)
	require.NoError(t, err)

	return submissionID, adminID
}

func adminContext(adminID uuid.UUID) context.Context {
	return usercontext.WithUser(context.Background(), &usercontext.UserInfo{
		ID:    adminID,
		Email: "admin@example.com",
		Role:  models.RoleAdmin,
	})
}

func TestRepository_GetAll(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	repo := NewRepository(db)
	submissionID, _ := seedSubmission(t, db)

	overviews, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, overviews)

	var found *models.SubmissionOverview
	for i := range overviews {
		if overviews[i].ID == submissionID {
			found = &overviews[i]
		}
	}
	require.NotNil(t, found)
	assert.Equal(t, "Student", found.StudentName)
	assert.Equal(t, "Task One", found.TaskTitle)
	assert.Equal(t, 3, found.AssignedDay)
	assert.Equal(t, "Internship", found.InternshipTitle)
	assert.Equal(t, models.SubmissionPending, found.Status)
}

func TestService_Review(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	repo := NewRepository(db)
	svc := NewService(repo)

	t.Run("approve stamps reviewer and review time", func(t *testing.T) {
		submissionID, adminID := seedSubmission(t, db)
		ctx := adminContext(adminID)

		reviewed, err := svc.Review(ctx, submissionID, models.SubmissionApproved)
		require.NoError(t, err)

		assert.Equal(t, models.SubmissionApproved, reviewed.Status)
		require.NotNil(t, reviewed.ReviewedAt)
		require.NotNil(t, reviewed.ReviewerID)
		assert.Equal(t, adminID, *reviewed.ReviewerID)
		assert.False(t, reviewed.ReviewedAt.Before(reviewed.SubmittedAt))
	})

	t.Run("re-review overwrites the previous verdict", func(t *testing.T) {
		submissionID, adminID := seedSubmission(t, db)
		ctx := adminContext(adminID)

		_, err := svc.Review(ctx, submissionID, models.SubmissionApproved)
		require.NoError(t, err)

		reviewed, err := svc.Review(ctx, submissionID, models.SubmissionRejected)
		require.NoError(t, err)
		assert.Equal(t, models.SubmissionRejected, reviewed.Status)
	})

	t.Run("anonymous reviewer is rejected", func(t *testing.T) {
		submissionID, _ := seedSubmission(t, db)

		_, err := svc.Review(context.Background(), submissionID, models.SubmissionApproved)
		assert.ErrorIs(t, err, ErrNotAuthorized)
	})

	t.Run("unknown submission", func(t *testing.T) {
		_, adminID := seedSubmission(t, db)

		_, err := svc.Review(adminContext(adminID), uuid.New(), models.SubmissionApproved)
		assert.ErrorIs(t, err, ErrSubmissionNotFound)
	})
}
