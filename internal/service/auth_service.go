package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	apperrors "spudhouse/internal/errors"
	"spudhouse/internal/model"
	"spudhouse/internal/repository"
)

const bcryptCost = 10

// mysqlDuplicateEntry is the MySQL error number for unique-key violations.
const mysqlDuplicateEntry = 1062

// AuthService handles registration and credential verification.
type AuthService interface {
	Register(ctx context.Context, username, email, password string) (*model.User, error)
	Login(ctx context.Context, email, password string) (*model.User, error)
	ChangePassword(ctx context.Context, userID uint, currentPassword, newPassword string) error
}

type authService struct {
	users repository.UserRepository
}

// NewAuthService creates a new authentication service.
func NewAuthService(users repository.UserRepository) AuthService {
	return &authService{users: users}
}

// Register creates a new user with a hashed password. The existence check
// and the insert run in one transaction; the unique indexes on email and
// username are the backstop against a concurrent duplicate.
func (s *authService) Register(ctx context.Context, username, email, password string) (*model.User, error) {
	if err := ValidatePassword(password); err != nil {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hashed),
	}

	err = s.users.WithTransaction(ctx, func(ctx context.Context, users repository.UserRepository) error {
		existing, err := users.FindByEmailOrUsername(ctx, email, username)
		if err == nil && existing != nil {
			return apperrors.ErrUserExists
		}
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("check user existence: %w", err)
		}
		return users.Create(ctx, user)
	})
	if err != nil {
		if isDuplicateEntry(err) {
			return nil, apperrors.ErrUserExists
		}
		return nil, err
	}

	return user, nil
}

// Login verifies email and password. Both an unknown email and a wrong
// password produce the same generic error.
func (s *authService) Login(ctx context.Context, email, password string) (*model.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}
	return user, nil
}

// ChangePassword verifies the current password before applying the new one.
func (s *authService) ChangePassword(ctx context.Context, userID uint, currentPassword, newPassword string) error {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)); err != nil {
		return apperrors.ErrInvalidCredentials
	}
	if err := ValidatePassword(newPassword); err != nil {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	return s.users.UpdatePassword(ctx, userID, string(hashed))
}

func isDuplicateEntry(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry
}
