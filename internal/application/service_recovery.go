package application

import (
	"context"
	"fmt"
	"net/mail"
	"strings"

	"github.com/gurushop/commerce-ledger/internal/domain"
)

// ForgotPassword issues a temporary password to a registered email: generate,
// hash, persist the hash, then mail the clear text. The caller gets
// ErrNotFound for unregistered addresses (the platform's public behavior) and
// ErrMailDelivery when the transport fails after the hash was updated.
func (s *Service) ForgotPassword(ctx context.Context, email string) error {
	normalized, err := normalizeEmail(email)
	if err != nil {
		return err
	}

	allowed, err := s.resetLimit.Allow(ctx, normalized, s.cfg.ResetRateThreshold, s.cfg.ResetRateWindow)
	if err != nil {
		return err
	}
	if !allowed {
		return domain.ErrRateLimited
	}

	user, err := s.users.GetByEmail(ctx, normalized)
	if err != nil {
		return err
	}

	tempPassword, err := domain.GenerateTempPassword(s.cfg.TempPasswordLength)
	if err != nil {
		return err
	}
	passwordHash, err := s.hasher.Hash(tempPassword)
	if err != nil {
		return fmt.Errorf("hash temp password: %w", err)
	}

	if err := s.users.UpdatePasswordHash(ctx, user.UserID, passwordHash); err != nil {
		return err
	}

	body := recoveryMailBody(tempPassword)
	if err := s.mail.Send(ctx, user.Email, s.cfg.RecoveryMailSubject, body); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrMailDelivery, err)
	}
	return nil
}

func recoveryMailBody(tempPassword string) string {
	return fmt.Sprintf(
		"<h1>Password reset</h1>"+
			"<p>Your temporary password is: <strong>%s</strong></p>"+
			"<p>Use it to sign in, then change your password immediately.</p>"+
			"<p>If you did not request this, contact support right away.</p>",
		tempPassword,
	)
}

func normalizeEmail(raw string) (string, error) {
	trimmed := strings.TrimSpace(strings.ToLower(raw))
	if trimmed == "" {
		return "", fmt.Errorf("%w: email is required", domain.ErrInvalidInput)
	}
	if _, err := mail.ParseAddress(trimmed); err != nil {
		return "", fmt.Errorf("%w: malformed email", domain.ErrInvalidInput)
	}
	return trimmed, nil
}
