package users

import (
	"context"
	"testing"
	"time"

	"medication-management/internal/platform/apperr"
	"medication-management/internal/ports/auth"
	"medication-management/internal/ports/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type testRepo struct {
	byID map[string]User
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]User{}}
}

func (r *testRepo) Create(ctx context.Context, u User) error {
	for _, existing := range r.byID {
		if existing.Email == u.Email {
			return storage.ErrConflict
		}
	}
	r.byID[u.ID] = u
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (User, error) {
	u, ok := r.byID[id]
	if !ok {
		return User{}, storage.ErrNotFound
	}
	return u, nil
}

func (r *testRepo) GetByEmail(ctx context.Context, email string) (User, error) {
	for _, u := range r.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return User{}, storage.ErrNotFound
}

type testIssuer struct {
	last auth.Claims
}

func (i *testIssuer) Issue(ctx context.Context, c auth.Claims) (string, time.Time, error) {
	i.last = c
	return "token-" + c.UserID, time.Date(2025, 12, 25, 9, 0, 0, 0, time.UTC), nil
}

func newTestService() (*Service, *testRepo, *testIssuer) {
	repo := newTestRepo()
	issuer := &testIssuer{}
	svc := NewService(repo, issuer)
	svc.cost = bcrypt.MinCost
	return svc, repo, issuer
}

func TestRegister_DefaultsToCaregiverAndHashesPassword(t *testing.T) {
	svc, repo, issuer := newTestService()

	sess, err := svc.Register(context.Background(), RegisterInput{
		Email:     "  Ana@Example.com ",
		Password:  "s3cret",
		FirstName: "Ana",
		LastName:  "Pérez",
	})
	require.NoError(t, err)

	assert.Equal(t, "ana@example.com", sess.User.Email)
	assert.Equal(t, RoleCaregiver, sess.User.Role)
	assert.Equal(t, "token-"+sess.User.ID, sess.Token)
	assert.Equal(t, "caregiver", issuer.last.Role)

	stored := repo.byID[sess.User.ID]
	assert.NotEqual(t, "s3cret", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("s3cret")))
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc, _, _ := newTestService()
	in := RegisterInput{Email: "ana@example.com", Password: "x", FirstName: "Ana", LastName: "P"}

	_, err := svc.Register(context.Background(), in)
	require.NoError(t, err)

	in.Email = "ANA@example.com"
	_, err = svc.Register(context.Background(), in)
	require.Error(t, err)
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
}

func TestRegister_Validation(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.Register(context.Background(), RegisterInput{Email: "ana@example.com"})
	assert.True(t, apperr.IsValidation(err))

	_, err = svc.Register(context.Background(), RegisterInput{Email: "a@b.c", Password: "x", FirstName: "A", LastName: "B", Role: "root"})
	assert.True(t, apperr.IsValidation(err))
}

func TestLogin(t *testing.T) {
	svc, repo, _ := newTestService()
	ctx := context.Background()

	reg, err := svc.Register(ctx, RegisterInput{Email: "ana@example.com", Password: "s3cret", FirstName: "Ana", LastName: "P"})
	require.NoError(t, err)

	sess, err := svc.Login(ctx, "ANA@example.com", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, reg.User.ID, sess.User.ID)

	_, err = svc.Login(ctx, "ana@example.com", "wrong")
	assert.Equal(t, apperr.KindUnauthorized, apperr.KindOf(err))
	assert.Equal(t, "Invalid credentials", err.Error())

	_, err = svc.Login(ctx, "nobody@example.com", "s3cret")
	assert.Equal(t, "Invalid credentials", err.Error())

	u := repo.byID[reg.User.ID]
	u.IsActive = false
	repo.byID[u.ID] = u
	_, err = svc.Login(ctx, "ana@example.com", "s3cret")
	assert.Equal(t, apperr.KindUnauthorized, apperr.KindOf(err))
	assert.Equal(t, "Account is inactive", err.Error())
}

func TestProfile_NotFound(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.Profile(context.Background(), "missing")
	assert.True(t, apperr.IsNotFound(err))
}
