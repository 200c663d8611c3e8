package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/aussiebroadwan/vcdoor/internal/door/domain"
	"github.com/aussiebroadwan/vcdoor/internal/door/store"
	"github.com/aussiebroadwan/vcdoor/pkg/cryptox"
	"github.com/aussiebroadwan/vcdoor/pkg/mailx"
	"github.com/aussiebroadwan/vcdoor/pkg/slogx"
	"github.com/aussiebroadwan/vcdoor/pkg/vcshare"
)

const (
	minPasswordLen     = 3
	maxPasswordLen     = 128
	validationCodeLen  = 5
	maxRegisterRetries = 3
)

var (
	ErrUserNotFound          = errors.New("user not found")
	ErrUserExists            = errors.New("user name or email already in use")
	ErrInvalidEmail          = errors.New("invalid email address")
	ErrInvalidPassword       = errors.New("password must be between 3 and 128 bytes")
	ErrInvalidValidationCode = errors.New("invalid validation code")
	ErrMailDelivery          = errors.New("could not deliver validation email")
)

type UserService struct {
	Store store.Store
	Codec *vcshare.Codec
	Mail  mailx.Sender

	// EmailValidation creates users inactive until they confirm the code
	// mailed to them.
	EmailValidation bool
}

// Register creates an account. With email validation enabled the account
// stays inactive until ValidateEmail is called with the mailed code.
func (s *UserService) Register(ctx context.Context, req domain.Registration) (domain.User, error) {
	l := slogx.FromContext(ctx)

	email := strings.TrimSpace(req.Email)
	if err := checkName(s.Codec, req.UserName); err != nil {
		return domain.User{}, err
	}
	if i := strings.IndexByte(email, '@'); i <= 0 || i == len(email)-1 {
		return domain.User{}, ErrInvalidEmail
	}
	if n := len(req.Password); n < minPasswordLen || n > maxPasswordLen {
		return domain.User{}, ErrInvalidPassword
	}

	hash, err := cryptox.HashPassword(req.Password)
	if err != nil {
		return domain.User{}, fmt.Errorf("hash password: %w", err)
	}

	u := domain.User{
		Name:         req.UserName,
		Email:        email,
		PasswordHash: hash,
		IsActive:     !s.EmailValidation,
	}

	var code string
	for attempt := 0; ; attempt++ {
		if s.EmailValidation {
			code, err = cryptox.GenerateNumericCode(validationCodeLen)
			if err != nil {
				return domain.User{}, err
			}
			u.ValidationCodeHash = cryptox.FingerprintToken(code)
		}

		err = s.Store.Users().CreateUser(ctx, u)
		if err == nil {
			break
		}
		if !errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, err
		}
		// The conflict is either the name, the email or, rarely, a pending
		// validation code held by someone else.
		if taken, terr := s.taken(ctx, u.Name, u.Email); terr != nil || taken || !s.EmailValidation || attempt >= maxRegisterRetries {
			return domain.User{}, ErrUserExists
		}
	}

	if s.EmailValidation {
		if err := s.sendCode(ctx, u, code); err != nil {
			_ = s.Store.Users().DeleteUser(ctx, u.Name)
			return domain.User{}, err
		}
	}

	l.Info("user registered", slog.String("user", u.Name), slog.Bool("active", u.IsActive))
	return s.Store.Users().GetUserByName(ctx, u.Name)
}

func (s *UserService) taken(ctx context.Context, name, email string) (bool, error) {
	for _, lookup := range []func() error{
		func() error { _, err := s.Store.Users().GetUserByName(ctx, name); return err },
		func() error { _, err := s.Store.Users().GetUserByEmail(ctx, email); return err },
	} {
		switch err := lookup(); {
		case err == nil:
			return true, nil
		case !errors.Is(err, store.ErrNotFound):
			return false, err
		}
	}
	return false, nil
}

func (s *UserService) sendCode(ctx context.Context, u domain.User, code string) error {
	msg := mailx.Message{
		To:      u.Email,
		Subject: "Confirm your door key account",
		Body: fmt.Sprintf("Hello %s,\n\nyour validation code is %s.\n\n"+
			"Enter it to activate your account before requesting door keys.\n", u.Name, code),
	}
	if err := s.Mail.Send(ctx, msg); err != nil {
		slogx.FromContext(ctx).Error("send validation email", slog.String("user", u.Name), slog.Any("error", err))
		return fmt.Errorf("%w: %w", ErrMailDelivery, err)
	}
	return nil
}

// ValidateEmail activates the pending account holding code.
func (s *UserService) ValidateEmail(ctx context.Context, code string) (domain.User, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return domain.User{}, ErrInvalidValidationCode
	}

	u, err := s.Store.Users().GetUserByValidationCode(ctx, cryptox.FingerprintToken(code))
	if err != nil {
		return domain.User{}, notFound(err, ErrInvalidValidationCode)
	}
	if err := s.Store.Users().ActivateUser(ctx, u.Name); err != nil {
		return domain.User{}, notFound(err, ErrInvalidValidationCode)
	}

	slogx.FromContext(ctx).Info("email validated", slog.String("user", u.Name))
	return s.Get(ctx, u.Name)
}

func (s *UserService) Get(ctx context.Context, name string) (domain.User, error) {
	u, err := s.Store.Users().GetUserByName(ctx, name)
	if err != nil {
		return domain.User{}, notFound(err, ErrUserNotFound)
	}
	return u, nil
}

// Delete removes the account and every share issued to it.
func (s *UserService) Delete(ctx context.Context, name string) error {
	if err := s.Store.Users().DeleteUser(ctx, name); err != nil {
		return notFound(err, ErrUserNotFound)
	}
	slogx.FromContext(ctx).Info("user deleted", slog.String("user", name))
	return nil
}

func (s *UserService) List(ctx context.Context, page domain.Page) ([]domain.User, error) {
	return s.Store.Users().ListUsers(ctx, page.Normalize())
}
