package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/personal_finance_app/internal/apperrors"
	"github.com/SscSPs/personal_finance_app/internal/core/domain"
	portsrepo "github.com/SscSPs/personal_finance_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/personal_finance_app/internal/core/ports/services"
	"github.com/SscSPs/personal_finance_app/internal/dto"
	"github.com/SscSPs/personal_finance_app/internal/validation"
	"github.com/google/uuid"
)

type userService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
}

// NewUserService creates a new user service with the provided options
func NewUserService(repo portsrepo.UserRepositoryFacade, options ...ServiceOption) portssvc.UserSvcFacade {
	return &userService{
		BaseService: newBaseService(options...),
		userRepo:    repo,
	}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

func (s *userService) GetCurrentUser(ctx context.Context, userID string) (*domain.UserDTO, error) {
	return WithAuth(s.getCurrentUser)(ctx, userID, nil)
}

func (s *userService) getCurrentUser(ctx context.Context, userID string, _ domain.Void) (*domain.UserDTO, error) {
	user, found, err := lookup(s.userRepo.GetOneByID(ctx, userID))
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, apperrors.NewNotFoundError("User not found")
	}
	return user, nil
}

type authService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
	authRepo portsrepo.AuthRepository
}

// NewAuthService creates the token issuing service.
func NewAuthService(users portsrepo.UserRepositoryFacade, auth portsrepo.AuthRepository, options ...ServiceOption) portssvc.AuthSvcFacade {
	return &authService{
		BaseService: newBaseService(options...),
		userRepo:    users,
		authRepo:    auth,
	}
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

// DevUserID derives a stable user id from an email address, so repeated
// logins with the same email resolve to the same user.
func DevUserID(email string) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte("mailto:"+email)).String()
}

func (s *authService) DevLogin(ctx context.Context, req *dto.DevLoginRequest) (*dto.LoginResponse, error) {
	var input dto.DevLoginRequest
	if req != nil {
		input = *req
	}
	if err := validation.Parse(&input); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user, err := s.userRepo.UpsertOne(ctx, domain.UserDTO{
		ID:        DevUserID(input.Email),
		Name:      input.Name,
		Email:     input.Email,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to upsert user", slog.String("email", input.Email))
		return nil, err
	}

	token, expiresAt, err := s.authRepo.IssueToken(ctx, user.ID)
	if err != nil {
		s.LogError(ctx, err, "Failed to issue token", slog.String("user_id", user.ID))
		return nil, err
	}
	s.LogInfo(ctx, "User logged in", slog.String("user_id", user.ID))
	return &dto.LoginResponse{Token: token, ExpiresAt: expiresAt}, nil
}

func (s *authService) RefreshToken(ctx context.Context, userID string) (*dto.RefreshTokenResponse, error) {
	return WithAuth(s.refreshToken)(ctx, userID, nil)
}

func (s *authService) refreshToken(ctx context.Context, userID string, _ domain.Void) (*dto.RefreshTokenResponse, error) {
	token, expiresAt, err := s.authRepo.IssueToken(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &dto.RefreshTokenResponse{Token: token, ExpiresAt: expiresAt}, nil
}
