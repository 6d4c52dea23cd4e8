package mentor

import (
	"context"
	"encoding/base64"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"certifytrack-go/internal/common/models"
)

type fakeRepo struct {
	mentors map[uuid.UUID]*models.Mentor
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{mentors: make(map[uuid.UUID]*models.Mentor)}
}

func (f *fakeRepo) Create(_ context.Context, mentor *models.Mentor) error {
	for _, m := range f.mentors {
		if m.Email == mentor.Email {
			return ErrEmailExists
		}
	}
	copied := *mentor
	f.mentors[mentor.ID] = &copied
	return nil
}

func (f *fakeRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Mentor, error) {
	mentor, ok := f.mentors[id]
	if !ok {
		return nil, ErrMentorNotFound
	}
	copied := *mentor
	return &copied, nil
}

func (f *fakeRepo) GetByEmail(_ context.Context, email string) (*models.Mentor, error) {
	for _, m := range f.mentors {
		if m.Email == email {
			copied := *m
			return &copied, nil
		}
	}
	return nil, ErrMentorNotFound
}

func (f *fakeRepo) GetAll(_ context.Context) ([]models.Mentor, error) {
	var mentors []models.Mentor
	for _, m := range f.mentors {
		mentors = append(mentors, *m)
	}
	return mentors, nil
}

func (f *fakeRepo) Update(_ context.Context, mentor *models.Mentor) error {
	if _, ok := f.mentors[mentor.ID]; !ok {
		return ErrMentorNotFound
	}
	copied := *mentor
	f.mentors[mentor.ID] = &copied
	return nil
}

func (f *fakeRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.mentors[id]; !ok {
		return ErrMentorNotFound
	}
	delete(f.mentors, id)
	return nil
}

func TestService_Invite(t *testing.T) {
	ctx := context.Background()

	t.Run("fills placeholder profile from the email", func(t *testing.T) {
		svc := NewService(newFakeRepo())

		mentor, formLink, err := svc.Invite(ctx, "jane.doe@example.com")
		require.NoError(t, err)

		assert.Equal(t, "jane.doe", mentor.FullName)
		assert.Equal(t, "Not Specified", mentor.Domain)

		encoded := base64.StdEncoding.EncodeToString([]byte("jane.doe@example.com"))
		assert.Equal(t, "/mentor/form/"+encoded, formLink)
	})

	t.Run("duplicate email", func(t *testing.T) {
		svc := NewService(newFakeRepo())

		_, _, err := svc.Invite(ctx, "dup@example.com")
		require.NoError(t, err)

		_, _, err = svc.Invite(ctx, "dup@example.com")
		assert.ErrorIs(t, err, ErrEmailExists)
	})
}

func TestService_Update(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newFakeRepo())

	invited, _, err := svc.Invite(ctx, "mentor@example.com")
	require.NoError(t, err)

	t.Run("email is immutable and blanks keep stored values", func(t *testing.T) {
		updated, err := svc.Update(ctx, invited.ID, &models.Mentor{Verified: true})
		require.NoError(t, err)

		assert.Equal(t, "mentor@example.com", updated.Email)
		assert.Equal(t, "mentor", updated.FullName)
		assert.Equal(t, "Not Specified", updated.Domain)
		assert.True(t, updated.Verified)
	})

	t.Run("unknown mentor", func(t *testing.T) {
		_, err := svc.Update(ctx, uuid.New(), &models.Mentor{})
		assert.ErrorIs(t, err, ErrMentorNotFound)
	})
}
