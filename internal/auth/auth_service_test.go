package auth

import (
	"context"
	"errors"
	"net/http"
	"os"
	"testing"
	"time"

	autherrors "campus-hrms/internal/auth/errors"
	"campus-hrms/internal/shared/apperror"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fakeUserRepo struct {
	byEmail map[string]*User
	byID    map[string]*User
	findErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byEmail: map[string]*User{},
		byID:    map[string]*User{},
	}
}

func (f *fakeUserRepo) Create(ctx context.Context, u *User) error {
	f.byEmail[u.Email] = u
	f.byID[u.ID.String()] = u
	return nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*User, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	if u, ok := f.byEmail[email]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id string) (*User, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	if u, ok := f.byID[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func TestRegister(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	t.Run("returns token and never echoes the password", func(t *testing.T) {
		repo := newFakeUserRepo()
		svc := NewService(repo)

		resp, err := svc.Register(context.Background(), RegisterRequest{
			Email:    "admin@campus.edu",
			Password: "s3cret!",
			Name:     "Admin",
			Role:     RoleAdmin,
		})

		assert.NoError(t, err)
		assert.NotEmpty(t, resp.AccessToken)
		assert.Equal(t, "bearer", resp.TokenType)
		assert.Equal(t, "admin@campus.edu", resp.User.Email)

		stored := repo.byEmail["admin@campus.edu"]
		assert.NotEqual(t, "s3cret!", stored.Password)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("s3cret!")))
	})

	t.Run("rejects duplicate email", func(t *testing.T) {
		repo := newFakeUserRepo()
		svc := NewService(repo)

		_, err := svc.Register(context.Background(), RegisterRequest{
			Email: "hr@campus.edu", Password: "pw", Name: "HR One", Role: RoleHR,
		})
		assert.NoError(t, err)

		_, err = svc.Register(context.Background(), RegisterRequest{
			Email: "hr@campus.edu", Password: "pw2", Name: "HR Two", Role: RoleHR,
		})
		assert.ErrorIs(t, err, autherrors.ErrEmailAlreadyRegistered)
	})

	t.Run("token carries subject, role and 24h expiry", func(t *testing.T) {
		repo := newFakeUserRepo()
		svc := NewService(repo)

		resp, err := svc.Register(context.Background(), RegisterRequest{
			Email: "acct@campus.edu", Password: "pw", Name: "Accounts", Role: RoleAccounts,
		})
		assert.NoError(t, err)

		token, err := jwt.Parse(resp.AccessToken, func(t *jwt.Token) (interface{}, error) {
			return []byte(os.Getenv("JWT_SECRET")), nil
		})
		assert.NoError(t, err)
		assert.True(t, token.Valid)

		claims := token.Claims.(jwt.MapClaims)
		assert.Equal(t, resp.User.ID, claims["sub"])
		assert.Equal(t, RoleAccounts, claims["role"])

		exp := time.Unix(int64(claims["exp"].(float64)), 0)
		assert.WithinDuration(t, time.Now().Add(24*time.Hour), exp, time.Minute)
	})
}

func TestLogin(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	repo := newFakeUserRepo()
	svc := NewService(repo)

	_, err := svc.Register(context.Background(), RegisterRequest{
		Email: "fac@campus.edu", Password: "correct-horse", Name: "Faculty", Role: RoleFaculty,
	})
	assert.NoError(t, err)

	t.Run("valid credentials", func(t *testing.T) {
		resp, err := svc.Login(context.Background(), "fac@campus.edu", "correct-horse")
		assert.NoError(t, err)
		assert.NotEmpty(t, resp.AccessToken)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(context.Background(), "fac@campus.edu", "battery-staple")
		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Login(context.Background(), "ghost@campus.edu", "whatever")
		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})

	t.Run("storage failure is not a credential failure", func(t *testing.T) {
		broken := newFakeUserRepo()
		broken.findErr = errors.New("connection refused")

		_, err := NewService(broken).Login(context.Background(), "fac@campus.edu", "correct-horse")
		assert.Error(t, err)
		assert.NotErrorIs(t, err, autherrors.ErrInvalidCredentials)
		assert.Equal(t, http.StatusInternalServerError, apperror.ToHTTP(err).Status)
	})
}

func TestGetMe(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	repo := newFakeUserRepo()
	svc := NewService(repo)

	resp, err := svc.Register(context.Background(), RegisterRequest{
		Email: "me@campus.edu", Password: "pw", Name: "Me", Role: RoleStudent,
	})
	assert.NoError(t, err)

	t.Run("returns stored user", func(t *testing.T) {
		me, err := svc.GetMe(context.Background(), resp.User.ID)
		assert.NoError(t, err)
		assert.Equal(t, "me@campus.edu", me.Email)
	})

	t.Run("unknown subject", func(t *testing.T) {
		_, err := svc.GetMe(context.Background(), uuid.NewString())
		assert.ErrorIs(t, err, autherrors.ErrUserNotFound)
	})

	t.Run("storage failure is not a missing user", func(t *testing.T) {
		broken := newFakeUserRepo()
		broken.findErr = errors.New("connection refused")

		_, err := NewService(broken).GetMe(context.Background(), resp.User.ID)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, autherrors.ErrUserNotFound)
		assert.Equal(t, http.StatusInternalServerError, apperror.ToHTTP(err).Status)
	})
}

func TestSubjectResolver(t *testing.T) {
	repo := newFakeUserRepo()
	resolver := NewSubjectResolver(repo)

	empID := "EMP-000001"
	user := &User{
		ID:         uuid.New(),
		Email:      "hr@campus.edu",
		Name:       "HR",
		Role:       RoleHR,
		EmployeeID: &empID,
	}
	_ = repo.Create(context.Background(), user)

	t.Run("resolves stored user", func(t *testing.T) {
		subject, err := resolver.Resolve(context.Background(), user.ID.String())
		assert.NoError(t, err)
		assert.Equal(t, user.Email, subject.Email)
		assert.Equal(t, RoleHR, subject.Role)
		assert.Equal(t, empID, subject.EmployeeID)
	})

	t.Run("rejects unknown subject", func(t *testing.T) {
		_, err := resolver.Resolve(context.Background(), uuid.NewString())
		assert.ErrorIs(t, err, autherrors.ErrUserNotFound)
	})

	t.Run("propagates storage failure", func(t *testing.T) {
		broken := newFakeUserRepo()
		broken.findErr = errors.New("connection refused")

		_, err := NewSubjectResolver(broken).Resolve(context.Background(), user.ID.String())
		assert.Error(t, err)
		assert.NotErrorIs(t, err, autherrors.ErrUserNotFound)
	})
}
