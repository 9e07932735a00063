// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	"vitae/config"
	deliverycontext "vitae/internal/delivery/context"
	"vitae/internal/domain/entity"
	domainerrors "vitae/internal/domain/errors"
	"vitae/internal/domain/repository"
	"vitae/internal/domain/service"
	"vitae/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager     repository.TransactionManager
	userRepo      repository.UserRepository
	hasher        service.PasswordHasher
	tokenService  service.TokenService
	publisher     service.EventPublisher
	rehashOnLogin bool
	logger        *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Publisher    service.EventPublisher
	Config       *config.Config
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	rehashOnLogin := false
	if params.Config != nil && params.Config.Auth != nil {
		rehashOnLogin = params.Config.Auth.RehashOnLogin
	}

	return &userService{
		txManager:     params.TxManager,
		userRepo:      params.UserRepo,
		hasher:        params.Hasher,
		tokenService:  params.TokenService,
		publisher:     params.Publisher,
		rehashOnLogin: rehashOnLogin,
		logger:        params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Signup registers a new account. The username must be unused.
func (srv *userService) Signup(ctx context.Context, input *usecase.SignupInput) (*usecase.SignupOutput, error) {
	username := strings.TrimSpace(input.Username)
	if username == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("username is required")
	}
	if !entity.IsValidUsername(username) {
		return nil, domainerrors.ErrValidationFailed.WithDetails(
			"username must start with a letter or digit and contain only letters, digits, '_', '.' or '-'")
	}

	srv.log(ctx).Info("Starting signup", slog.String("username", username))

	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		return nil, errors.WithStack(err)
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during signup", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password during signup")
	}

	newUser := &entity.User{
		Username:     username,
		PasswordHash: hashedPassword,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		_, err := userRepo.FindByUsername(ctx, username)
		if err == nil {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("signup failed")
		}
		if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to look up username")
		}

		return errors.WithStack(userRepo.Create(ctx, newUser))
	})
	if err != nil {
		srv.log(ctx).Warn("Signup failed", slog.String("username", username), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute signup transaction")
	}

	srv.log(ctx).Debug("Signup completed", slog.Any("userID", newUser.ID))
	publishAccountEvent(ctx, srv.publisher, srv.log(ctx), newUser, entity.AccountEventRegistered)

	return &usecase.SignupOutput{User: newUser}, nil
}

// Login verifies the credential and issues a session token.
// Unknown usernames and wrong passwords produce the same error.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	username := strings.TrimSpace(input.Username)
	srv.log(ctx).Debug("Starting login", slog.String("username", username))

	user, err := srv.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Info("Login rejected", slog.String("username", username))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	if srv.rehashOnLogin && srv.hasher.NeedsRehash(user.PasswordHash) {
		srv.upgradeCredential(ctx, user, input.Password)
	}

	issued, err := srv.tokenService.Issue(user.Username)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue session token")
	}

	srv.log(ctx).Debug("User logged in", slog.Any("userID", user.ID))

	return &usecase.LoginOutput{
		AccessToken: issued.Token,
		TokenType:   usecase.TokenTypeBearer,
		ExpiresAt:   issued.ExpiresAt,
		User:        user,
	}, nil
}

// upgradeCredential replaces a credential made with an outdated scheme. Failures only cost the upgrade.
func (srv *userService) upgradeCredential(ctx context.Context, user *entity.User, password string) {
	hashed, err := srv.hasher.Hash(password)
	if err != nil {
		srv.log(ctx).Warn("Failed to rehash credential", slog.Any("userID", user.ID), slog.Any("error", err))

		return
	}

	previous := user.PasswordHash
	user.PasswordHash = hashed
	if err := srv.userRepo.Update(ctx, user); err != nil {
		user.PasswordHash = previous
		srv.log(ctx).Warn("Failed to store rehashed credential", slog.Any("userID", user.ID), slog.Any("error", err))

		return
	}

	srv.log(ctx).Info("Credential upgraded", slog.Any("userID", user.ID))
}

// Authenticate validates a session token and resolves the account it names.
func (srv *userService) Authenticate(ctx context.Context, token string) (*entity.User, error) {
	result := srv.tokenService.Validate(token)
	if !result.Accepted() {
		srv.log(ctx).Debug("Token rejected", slog.String("reason", result.Rejection.String()))

		return nil, domainerrors.ErrInvalidToken.WithDetails("token " + result.Rejection.String())
	}

	user, err := srv.userRepo.FindByUsername(ctx, result.Subject)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrAccountUnavailable, "token subject has no account")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}
