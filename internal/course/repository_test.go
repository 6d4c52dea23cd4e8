package course

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

func createTestAdmin(t *testing.T, db *database.DB) uuid.UUID {
	id := uuid.New()
	_, err := db.Exec(`
        INSERT INTO users (id, email, full_name, password_hash, role)
        VALUES ($1, $2, 'Test Admin', 'hashed', 'admin')`,
		id, "admin-"+id.String()+"@example.com")
	require.NoError(t, err)
	return id
}

func createTestTemplate(t *testing.T, db *database.DB, name string) uuid.UUID {
	id := uuid.New()
	_, err := db.Exec(`
        INSERT INTO certificate_templates (id, name, template_json)
        VALUES ($1, $2, '{}')`, id, name)
	require.NoError(t, err)
	return id
}

func TestRepository_Create(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()
	adminID := createTestAdmin(t, db)

	t.Run("creates course with certificate links", func(t *testing.T) {
		certID := createTestTemplate(t, db, "Completion Certificate")

		c := &models.Course{
			ID:        uuid.New(),
			Title:     "Intro to Databases",
			Features:  []string{"lifetime access"},
			Mentors:   []string{},
			Tags:      []string{"sql"},
			Slug:      "intro-to-databases",
			CreatedBy: &adminID,
		}

		err := repo.Create(ctx, c, []uuid.UUID{certID})
		require.NoError(t, err)

		fetched, err := repo.GetByID(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, c.Title, fetched.Title)
		assert.Equal(t, []string{"lifetime access"}, []string(fetched.Features))
		assert.Equal(t, []string{}, []string(fetched.Mentors))
		require.Len(t, fetched.Certificates, 1)
		assert.Equal(t, certID, fetched.Certificates[0].CertificateID)
		assert.Equal(t, "Completion Certificate", fetched.Certificates[0].Name)
	})

	t.Run("rolls back when a certificate link is invalid", func(t *testing.T) {
		c := &models.Course{
			ID:        uuid.New(),
			Title:     "Broken Links",
			Features:  []string{},
			Mentors:   []string{},
			Tags:      []string{},
			Slug:      "broken-links",
			CreatedBy: &adminID,
		}

		err := repo.Create(ctx, c, []uuid.UUID{uuid.New()})
		assert.Error(t, err)

		_, err = repo.GetByID(ctx, c.ID)
		assert.ErrorIs(t, err, ErrCourseNotFound)
	})
}

func TestRepository_GetAll(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()
	adminID := createTestAdmin(t, db)

	first := &models.Course{
		ID: uuid.New(), Title: "First", Slug: "first",
		Features: []string{}, Mentors: []string{}, Tags: []string{},
		CreatedBy: &adminID,
	}
	require.NoError(t, repo.Create(ctx, first, nil))
	time.Sleep(10 * time.Millisecond)

	second := &models.Course{
		ID: uuid.New(), Title: "Second", Slug: "second",
		Features: []string{}, Mentors: []string{}, Tags: []string{},
		CreatedBy: &adminID,
	}
	require.NoError(t, repo.Create(ctx, second, nil))

	courses, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(courses), 2)
	// Newest first
	assert.Equal(t, second.ID, courses[0].ID)
	assert.Equal(t, first.ID, courses[1].ID)
}

func TestRepository_Update(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()
	adminID := createTestAdmin(t, db)

	t.Run("replaces certificate links", func(t *testing.T) {
		oldCert := createTestTemplate(t, db, "Old")
		newCert := createTestTemplate(t, db, "New")

		c := &models.Course{
			ID: uuid.New(), Title: "Linked", Slug: "linked",
			Features: []string{}, Mentors: []string{}, Tags: []string{},
			CreatedBy: &adminID,
		}
		require.NoError(t, repo.Create(ctx, c, []uuid.UUID{oldCert}))

		require.NoError(t, repo.Update(ctx, c, []uuid.UUID{newCert}))

		fetched, err := repo.GetByID(ctx, c.ID)
		require.NoError(t, err)
		require.Len(t, fetched.Certificates, 1)
		assert.Equal(t, newCert, fetched.Certificates[0].CertificateID)
	})

	t.Run("unknown course", func(t *testing.T) {
		c := &models.Course{
			ID: uuid.New(), Title: "Ghost", Slug: "ghost",
			Features: []string{}, Mentors: []string{}, Tags: []string{},
		}
		err := repo.Update(ctx, c, nil)
		assert.ErrorIs(t, err, ErrCourseNotFound)
	})
}

func TestRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()
	adminID := createTestAdmin(t, db)

	c := &models.Course{
		ID: uuid.New(), Title: "Doomed", Slug: "doomed",
		Features: []string{}, Mentors: []string{}, Tags: []string{},
		CreatedBy: &adminID,
	}
	require.NoError(t, repo.Create(context.Background(), c, nil))

	require.NoError(t, repo.Delete(ctx, c.ID))

	_, err := repo.GetByID(ctx, c.ID)
	assert.ErrorIs(t, err, ErrCourseNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, uuid.New()), ErrCourseNotFound)
}

func TestService_Create(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	repo := NewRepository(db)
	svc := NewService(repo)
	adminID := createTestAdmin(t, db)

	ctx := usercontext.WithUser(context.Background(), &usercontext.UserInfo{
		ID:    adminID,
		Email: "admin@example.com",
		Role:  models.RoleAdmin,
	})

	t.Run("derives slug and defaults arrays", func(t *testing.T) {
		created, err := svc.Create(ctx, &models.Course{Title: "Intro to Go!"}, nil)
		require.NoError(t, err)
		assert.Equal(t, "intro-to-go-", created.Slug)
		assert.Equal(t, []string{}, []string(created.Features))
		assert.Equal(t, []string{}, []string(created.Mentors))
		assert.Equal(t, []string{}, []string(created.Tags))
		require.NotNil(t, created.CreatedBy)
		assert.Equal(t, adminID, *created.CreatedBy)
	})

	t.Run("rejects anonymous caller", func(t *testing.T) {
		_, err := svc.Create(context.Background(), &models.Course{Title: "Nope"}, nil)
		assert.ErrorIs(t, err, ErrNotAuthorized)
	})
}
