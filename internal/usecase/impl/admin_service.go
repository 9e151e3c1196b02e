package impl

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultSessionTTL = 24 * time.Hour

type adminService struct {
	adminRepo    repository.AdminRepository
	sessionRepo  repository.SessionRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	sessionTTL   time.Duration
}

// AdminServiceParams holds dependencies for AdminService, injected by Fx.
type AdminServiceParams struct {
	fx.In

	AdminRepo    repository.AdminRepository
	SessionRepo  repository.SessionRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Config       *config.Config
}

// NewAdminService creates a new admin service instance
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	sessionTTL := defaultSessionTTL
	if params.Config.Auth != nil && params.Config.Auth.SessionTTL > 0 {
		sessionTTL = params.Config.Auth.SessionTTL
	}

	return &adminService{
		adminRepo:    params.AdminRepo,
		sessionRepo:  params.SessionRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		sessionTTL:   sessionTTL,
	}
}

// Login verifies credentials and opens a session. The bearer token embeds the
// session ID; only a SHA-256 hash of the token is stored server-side.
func (s *adminService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginResult, error) {
	admin, err := s.adminRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrAdminNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find admin by email")
	}

	if !admin.IsActive || !s.hasher.Check(input.Password, admin.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	// Housekeeping; a failure here must not block the login.
	_ = s.sessionRepo.DeleteExpired(ctx)

	sessionID := uuid.New()
	expiresAt := time.Now().Add(s.sessionTTL)

	token, err := s.tokenService.GenerateToken(admin.ID, sessionID, s.sessionTTL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate token")
	}

	session := &entity.AdminSession{
		ID:        sessionID,
		AdminID:   admin.ID,
		TokenHash: hashToken(token),
		ExpiresAt: expiresAt,
	}
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, err
	}

	return &usecase.LoginResult{
		Token:     token,
		ExpiresAt: expiresAt.UTC().Format(time.RFC3339),
		Admin:     admin,
	}, nil
}

// Logout revokes the session behind the given token
func (s *adminService) Logout(ctx context.Context, token string) error {
	session, err := s.sessionRepo.FindByTokenHash(ctx, hashToken(token))
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return domainerrors.ErrSessionInvalid
		}

		return errors.Wrap(err, "failed to find session")
	}

	if err := s.sessionRepo.Revoke(ctx, session.ID); err != nil {
		return errors.Wrap(err, "failed to revoke session")
	}

	return nil
}

// ValidateSession checks a bearer token against its session row. The token
// signature proves the claims; the session row proves the login has not been
// revoked or expired, and the admin account is still active.
func (s *adminService) ValidateSession(ctx context.Context, token string) (*service.TokenClaims, error) {
	claims, err := s.tokenService.ValidateToken(token)
	if err != nil {
		return nil, domainerrors.ErrSessionInvalid
	}

	session, err := s.sessionRepo.FindByTokenHash(ctx, hashToken(token))
	if err != nil {
		return nil, domainerrors.ErrSessionInvalid
	}

	if session.ID != claims.SessionID || session.AdminID != claims.AdminID || !session.Active(time.Now()) {
		return nil, domainerrors.ErrSessionInvalid
	}

	admin, err := s.adminRepo.FindByID(ctx, claims.AdminID)
	if err != nil || !admin.IsActive {
		return nil, domainerrors.ErrSessionInvalid
	}

	return claims, nil
}

// ListAdmins retrieves every admin account
func (s *adminService) ListAdmins(ctx context.Context) ([]*entity.Admin, error) {
	admins, err := s.adminRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list admins")
	}

	return admins, nil
}

// GetAdmin retrieves an admin account by ID
func (s *adminService) GetAdmin(ctx context.Context, id uuid.UUID) (*entity.Admin, error) {
	admin, err := s.adminRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAdminNotFound) {
			return nil, domainerrors.ErrAdminNotFound
		}

		return nil, errors.Wrap(err, "failed to get admin")
	}

	return admin, nil
}

// CreateAdmin creates a new admin account
func (s *adminService) CreateAdmin(ctx context.Context, input *usecase.AdminInput) (*entity.Admin, error) {
	if input.Password == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("password is required")
	}

	passwordHash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, domainerrors.ErrPasswordHashFailed
	}

	admin := &entity.Admin{
		Email:        input.Email,
		Name:         input.Name,
		PasswordHash: passwordHash,
		IsActive:     input.IsActive,
	}

	if err := s.adminRepo.Create(ctx, admin); err != nil {
		return nil, err
	}

	return admin, nil
}

// UpdateAdmin rewrites an existing admin account. An empty password keeps the
// current one.
func (s *adminService) UpdateAdmin(ctx context.Context, id uuid.UUID, input *usecase.AdminInput) (*entity.Admin, error) {
	admin, err := s.GetAdmin(ctx, id)
	if err != nil {
		return nil, err
	}

	admin.Email = input.Email
	admin.Name = input.Name
	admin.IsActive = input.IsActive
	if input.Password != "" {
		passwordHash, err := s.hasher.Hash(input.Password)
		if err != nil {
			return nil, domainerrors.ErrPasswordHashFailed
		}
		admin.PasswordHash = passwordHash
	}

	if err := s.adminRepo.Update(ctx, admin); err != nil {
		if errors.Is(err, repository.ErrAdminNotFound) {
			return nil, domainerrors.ErrAdminNotFound
		}

		return nil, err
	}

	return admin, nil
}

// DeleteAdmin removes an admin account
func (s *adminService) DeleteAdmin(ctx context.Context, id uuid.UUID) error {
	if err := s.adminRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrAdminNotFound) {
			return domainerrors.ErrAdminNotFound
		}

		return err
	}

	return nil
}

// hashToken derives the stored lookup hash of a bearer token.
func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))

	return hex.EncodeToString(sum[:])
}
