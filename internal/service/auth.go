package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mytasks/mytasks-server/internal/logger"
	"github.com/mytasks/mytasks-server/internal/model"
	"github.com/mytasks/mytasks-server/internal/password"
)

// Auth implements registration and login on top of the user store, the
// password hasher and the token manager.
type Auth struct {
	userStore    model.UserStore
	hasher       password.PasswordHasher
	tokenManager model.TokenManager
	logger       *logger.Logger
}

func NewAuth(
	userStore model.UserStore,
	hasher password.PasswordHasher,
	tokenManager model.TokenManager,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		userStore:    userStore,
		hasher:       hasher,
		tokenManager: tokenManager,
		logger:       logger,
	}
}

// Register hashes the password and creates the user. A taken email yields
// model.ErrDuplicateEmail whether caught by the precheck or by the unique
// constraint; the constraint is the backstop for the check-then-insert race.
func (a *Auth) Register(ctx context.Context, name, email, plainPassword string) (model.User, error) {
	a.logger.Debug("Auth service: starting user registration", "email", email)

	existingUser, err := a.userStore.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		a.logger.Error("Auth service: failed to get user by email",
			"email", email,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if existingUser.ID != uuid.Nil {
		a.logger.Info("Auth service: email already registered", "email", email)
		return model.User{}, model.ErrDuplicateEmail
	}

	hash, err := a.hasher.Hash(plainPassword)
	if err != nil {
		a.logger.Error("Auth service: failed to hash password",
			"email", email,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user := model.User{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	savedUser, err := a.userStore.Create(ctx, user)
	if err != nil {
		if errors.Is(err, model.ErrDuplicateEmail) {
			return model.User{}, model.ErrDuplicateEmail
		}
		a.logger.Error("Auth service: failed to create user",
			"email", email,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	a.logger.Info("Auth service: user registered", "email", email, "user_id", savedUser.ID)

	return savedUser, nil
}

// Login verifies the credentials and mints a session token. Unknown email and
// wrong password are answered with the same model.ErrInvalidCredentials.
func (a *Auth) Login(ctx context.Context, email, plainPassword string) (string, model.User, error) {
	a.logger.Debug("Auth service: starting user login", "email", email)

	user, err := a.userStore.GetByEmail(ctx, email)
	if errors.Is(err, model.ErrNotFound) {
		return "", model.User{}, model.ErrInvalidCredentials
	}
	if err != nil {
		a.logger.Error("Auth service: failed to get user by email",
			"email", email,
			"error", err.Error())
		return "", model.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if !a.hasher.Verify(plainPassword, user.PasswordHash) {
		a.logger.Info("Auth service: password verification failed", "email", email)
		return "", model.User{}, model.ErrInvalidCredentials
	}

	tokenString, err := a.tokenManager.Generate(user)
	if err != nil {
		a.logger.Error("Auth service: failed to generate session token",
			"email", email,
			"error", err.Error())
		return "", model.User{}, fmt.Errorf("failed to generate session token: %w", err)
	}

	a.logger.Info("Auth service: user logged in", "email", email, "user_id", user.ID)

	return tokenString, user, nil
}
