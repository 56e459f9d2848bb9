package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"commune/internal/apperr"
	"commune/internal/model"
	"commune/internal/pkg"
	"commune/internal/repository"
)

type UserService struct {
	users    repository.UserRepository
	sessions repository.SessionStore
	smtp     *pkg.SMTPConfig
	log      *zap.Logger
}

func NewUserService(users repository.UserRepository, sessions repository.SessionStore, smtp *pkg.SMTPConfig, log *zap.Logger) *UserService {
	return &UserService{users: users, sessions: sessions, smtp: smtp, log: log}
}

// SignUp creates the account and issues a session token. The password is
// hashed by the model's create hook, never here.
func (s *UserService) SignUp(ctx context.Context, name, email, password string) (*model.User, string, error) {
	_, err := s.users.FindByEmail(ctx, email)
	if err == nil {
		return nil, "", apperr.Field("email", "Email is already in use.", apperr.CodeResourceExists)
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, "", err
	}

	user := &model.User{Name: name, Email: email, Password: password}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := pkg.EncodeToken(user.ID)
	if err != nil {
		return nil, "", err
	}
	s.recordSession(ctx, user.ID, token)
	s.sendWelcome(user)

	return user, token, nil
}

func (s *UserService) SignIn(ctx context.Context, email, password string) (*model.User, string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, "", apperr.Field("user", "User not found.", apperr.CodeResourceNotFound)
		}
		return nil, "", err
	}

	if err := pkg.CheckPassword(user.Password, password); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, "", apperr.Field("password", "Invalid credentials.", apperr.CodeInvalidCredentials)
		}
		return nil, "", apperr.Field("password", "Invalid input.", apperr.CodeInvalidInput)
	}

	token, err := pkg.EncodeToken(user.ID)
	if err != nil {
		return nil, "", err
	}
	s.recordSession(ctx, user.ID, token)

	return user, token, nil
}

// SignOut drops the server-side session record. The cookie itself is
// cleared by the handler.
func (s *UserService) SignOut(ctx context.Context, userID string) {
	if s.sessions == nil {
		return
	}
	if err := s.sessions.Delete(ctx, userID); err != nil {
		s.log.Warn("session record delete failed", zap.String("user", userID), zap.Error(err))
	}
}

func (s *UserService) Me(ctx context.Context, userID string) (*model.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.Field("user", "User not found.", apperr.CodeResourceNotFound)
		}
		return nil, err
	}
	return user, nil
}

// recordSession is best effort: a down redis must not block sign-in.
func (s *UserService) recordSession(ctx context.Context, userID, token string) {
	if s.sessions == nil {
		return
	}
	if err := s.sessions.Save(ctx, userID, token); err != nil {
		s.log.Warn("session record save failed", zap.String("user", userID), zap.Error(err))
	}
}

func (s *UserService) sendWelcome(user *model.User) {
	if s.smtp == nil {
		return
	}
	cfg := *s.smtp
	to, name := user.Email, user.Name
	go func() {
		if err := pkg.SendEmail(cfg, to, "Welcome", pkg.WelcomeHTML(name)); err != nil {
			s.log.Warn("welcome mail failed", zap.String("to", to), zap.Error(err))
		}
	}()
}
