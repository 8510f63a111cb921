package auth

import (
	"context"
	"errors"
	"os"
	"time"

	autherrors "campus-hrms/internal/auth/errors"
	"campus-hrms/internal/middleware"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Issued tokens are valid for a fixed 24 hours.
const tokenValidity = 24 * time.Hour

type Service interface {
	Register(ctx context.Context, req RegisterRequest) (TokenResponse, error)
	Login(ctx context.Context, email, password string) (TokenResponse, error)
	GetMe(ctx context.Context, userID string) (*UserResponse, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Register(ctx context.Context, req RegisterRequest) (TokenResponse, error) {
	existing, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return TokenResponse{}, err
	}
	if existing != nil {
		return TokenResponse{}, autherrors.ErrEmailAlreadyRegistered
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return TokenResponse{}, err
	}

	user := &User{
		ID:         uuid.New(),
		Email:      req.Email,
		Password:   string(hashed),
		Name:       req.Name,
		Role:       req.Role,
		EmployeeID: req.EmployeeID,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return TokenResponse{}, mapRepositoryError(err)
	}

	token, err := generateToken(user.ID.String(), user.Role, tokenValidity)
	if err != nil {
		return TokenResponse{}, autherrors.ErrTokenGenerationFailed
	}

	return TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        mapToUserResponse(*user),
	}, nil
}

func (s *service) Login(ctx context.Context, email, password string) (TokenResponse, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return TokenResponse{}, autherrors.ErrInvalidCredentials
	}
	if err != nil {
		return TokenResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return TokenResponse{}, autherrors.ErrInvalidCredentials
	}

	token, err := generateToken(user.ID.String(), user.Role, tokenValidity)
	if err != nil {
		return TokenResponse{}, autherrors.ErrTokenGenerationFailed
	}

	return TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        mapToUserResponse(*user),
	}, nil
}

func (s *service) GetMe(ctx context.Context, userID string) (*UserResponse, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, autherrors.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	resp := mapToUserResponse(*user)
	return &resp, nil
}

func generateToken(userID, role string, expiry time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":  userID,
		"role": role,
		"exp":  time.Now().Add(expiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

func mapToUserResponse(u User) UserResponse {
	return UserResponse{
		ID:         u.ID.String(),
		Email:      u.Email,
		Name:       u.Name,
		Role:       u.Role,
		EmployeeID: u.EmployeeID,
		CreatedAt:  u.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// subjectResolver adapts the user repository to the auth gate: tokens whose
// subject no longer resolves to a stored user are rejected.
type subjectResolver struct {
	repo Repository
}

func NewSubjectResolver(repo Repository) middleware.SubjectResolver {
	return &subjectResolver{repo: repo}
}

func (r *subjectResolver) Resolve(ctx context.Context, userID string) (*middleware.Subject, error) {
	user, err := r.repo.FindByID(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, autherrors.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	subject := &middleware.Subject{
		ID:    user.ID.String(),
		Email: user.Email,
		Name:  user.Name,
		Role:  user.Role,
	}
	if user.EmployeeID != nil {
		subject.EmployeeID = *user.EmployeeID
	}
	return subject, nil
}
