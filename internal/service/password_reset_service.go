package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log"
	"math/big"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	apperrors "spudhouse/internal/errors"
	"spudhouse/internal/mailer"
	"spudhouse/internal/model"
	"spudhouse/internal/repository"
)

// ResetCodeTTL is how long a reset code stays valid.
const ResetCodeTTL = 15 * time.Minute

// PasswordResetService implements the forgot/verify/reset flow.
type PasswordResetService interface {
	// Forgot issues a code for the email if the account exists. It never
	// reveals whether it does; devCode is non-empty only in dev mode.
	Forgot(ctx context.Context, email string) (devCode string, err error)
	VerifyCode(ctx context.Context, email, code string) error
	Reset(ctx context.Context, email, code, newPassword string) error
}

type passwordResetService struct {
	resets repository.PasswordResetRepository
	users  repository.UserRepository
	mail   mailer.Mailer
	dev    bool
}

// NewPasswordResetService creates a new password reset service.
func NewPasswordResetService(resets repository.PasswordResetRepository, users repository.UserRepository, mail mailer.Mailer, dev bool) PasswordResetService {
	return &passwordResetService{resets: resets, users: users, mail: mail, dev: dev}
}

// Forgot invalidates any prior codes for the email, stores a fresh 6-digit
// code, and emails it. Email delivery is best-effort: the stored row defines
// the code, so a delivery failure is logged and the code stays usable.
func (s *passwordResetService) Forgot(ctx context.Context, email string) (string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Same outward behavior as the success path.
			return "", nil
		}
		return "", err
	}

	code, err := generateResetCode()
	if err != nil {
		return "", err
	}

	err = s.resets.WithTransaction(ctx, func(ctx context.Context, resets repository.PasswordResetRepository, _ repository.UserRepository) error {
		if err := resets.DeleteByEmail(ctx, email); err != nil {
			return err
		}
		return resets.Create(ctx, &model.PasswordReset{
			Email:     email,
			Code:      code,
			ExpiresAt: time.Now().Add(ResetCodeTTL),
		})
	})
	if err != nil {
		return "", err
	}

	body := fmt.Sprintf("Hi %s,\n\nYour Spud House password reset code is: %s\n\nIt expires in 15 minutes. If you did not request a reset, you can ignore this email.\n", user.Username, code)
	if err := s.mail.Send(email, "Your password reset code", body); err != nil {
		log.Printf("password reset email to %s failed: %v", email, err)
	}

	if s.dev {
		return code, nil
	}
	return "", nil
}

// VerifyCode checks (email, code, unexpired) without consuming the code.
func (s *passwordResetService) VerifyCode(ctx context.Context, email, code string) error {
	if _, err := s.resets.FindActive(ctx, email, code); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrInvalidResetCode
		}
		return err
	}
	return nil
}

// Reset validates the code, updates the password, and deletes the code in
// one transaction, making the code single-use.
func (s *passwordResetService) Reset(ctx context.Context, email, code, newPassword string) error {
	if err := ValidatePassword(newPassword); err != nil {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	return s.resets.WithTransaction(ctx, func(ctx context.Context, resets repository.PasswordResetRepository, users repository.UserRepository) error {
		reset, err := resets.FindActive(ctx, email, code)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrInvalidResetCode
			}
			return err
		}

		user, err := users.FindByEmail(ctx, email)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrInvalidResetCode
			}
			return err
		}

		if err := users.UpdatePassword(ctx, user.ID, string(hashed)); err != nil {
			return err
		}
		return resets.Delete(ctx, reset.ID)
	})
}

// generateResetCode returns a crypto-random 6-digit code, zero-padded.
func generateResetCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", fmt.Errorf("generate reset code: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
