package auth

import (
	"errors"
	"strings"

	autherrors "campus-hrms/internal/auth/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return autherrors.ErrUserNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "uq_user_email" {
			return autherrors.ErrEmailAlreadyRegistered
		}
	}

	if strings.Contains(strings.ToLower(err.Error()), "duplicate key value") {
		return autherrors.ErrEmailAlreadyRegistered
	}

	return err
}
