package impl

import (
	"context"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePasswordHasher treats "hash:" + password as the stored hash.
type fakePasswordHasher struct{}

func (fakePasswordHasher) Hash(password string) (string, error) {
	return "hash:" + password, nil
}

func (fakePasswordHasher) Check(password, hash string) bool {
	return hash == "hash:"+password
}

// fakeTokenService issues predictable tokens and records the claims behind them.
type fakeTokenService struct {
	issued map[string]*service.TokenClaims
}

func newFakeTokenService() *fakeTokenService {
	return &fakeTokenService{issued: make(map[string]*service.TokenClaims)}
}

func (f *fakeTokenService) GenerateToken(adminID, sessionID uuid.UUID, _ time.Duration) (string, error) {
	token := "token-" + sessionID.String()
	f.issued[token] = &service.TokenClaims{AdminID: adminID, SessionID: sessionID}

	return token, nil
}

func (f *fakeTokenService) ValidateToken(tokenString string) (*service.TokenClaims, error) {
	claims, ok := f.issued[tokenString]
	if !ok {
		return nil, domainerrors.ErrSessionInvalid
	}

	return claims, nil
}

func newAdminTestService(adminRepo *fakeAdminRepo, sessionRepo *fakeSessionRepo) usecase.AdminUsecase {
	return NewAdminService(AdminServiceParams{
		AdminRepo:    adminRepo,
		SessionRepo:  sessionRepo,
		Hasher:       fakePasswordHasher{},
		TokenService: newFakeTokenService(),
		Config:       testConfig(),
	})
}

func activeAdmin(email, password string) *entity.Admin {
	return &entity.Admin{
		ID:           uuid.New(),
		Email:        email,
		Name:         "Store Owner",
		PasswordHash: "hash:" + password,
		IsActive:     true,
	}
}

func TestAdminService_LoginAndValidate(t *testing.T) {
	adminRepo := &fakeAdminRepo{admins: []*entity.Admin{activeAdmin("owner@example.com", "s3cret-pass")}}
	sessionRepo := &fakeSessionRepo{}
	service := newAdminTestService(adminRepo, sessionRepo)

	result, err := service.Login(context.Background(), &usecase.LoginInput{
		Email:    "owner@example.com",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, "owner@example.com", result.Admin.Email)
	require.Len(t, sessionRepo.sessions, 1)

	claims, err := service.ValidateSession(context.Background(), result.Token)
	require.NoError(t, err)
	assert.Equal(t, result.Admin.ID, claims.AdminID)
	assert.Equal(t, sessionRepo.sessions[0].ID, claims.SessionID)
}

func TestAdminService_Login_WrongPassword(t *testing.T) {
	adminRepo := &fakeAdminRepo{admins: []*entity.Admin{activeAdmin("owner@example.com", "s3cret-pass")}}
	service := newAdminTestService(adminRepo, &fakeSessionRepo{})

	_, err := service.Login(context.Background(), &usecase.LoginInput{
		Email:    "owner@example.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAdminService_Login_UnknownEmail(t *testing.T) {
	service := newAdminTestService(&fakeAdminRepo{}, &fakeSessionRepo{})

	_, err := service.Login(context.Background(), &usecase.LoginInput{
		Email:    "nobody@example.com",
		Password: "whatever",
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAdminService_Login_InactiveAdmin(t *testing.T) {
	admin := activeAdmin("owner@example.com", "s3cret-pass")
	admin.IsActive = false
	service := newAdminTestService(&fakeAdminRepo{admins: []*entity.Admin{admin}}, &fakeSessionRepo{})

	_, err := service.Login(context.Background(), &usecase.LoginInput{
		Email:    "owner@example.com",
		Password: "s3cret-pass",
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAdminService_Logout_RevokesImmediately(t *testing.T) {
	adminRepo := &fakeAdminRepo{admins: []*entity.Admin{activeAdmin("owner@example.com", "s3cret-pass")}}
	sessionRepo := &fakeSessionRepo{}
	service := newAdminTestService(adminRepo, sessionRepo)

	result, err := service.Login(context.Background(), &usecase.LoginInput{
		Email:    "owner@example.com",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)

	require.NoError(t, service.Logout(context.Background(), result.Token))

	// The token has not expired, but the revoked session kills it.
	_, err = service.ValidateSession(context.Background(), result.Token)
	assert.ErrorIs(t, err, domainerrors.ErrSessionInvalid)
}

func TestAdminService_ValidateSession_UnknownToken(t *testing.T) {
	service := newAdminTestService(&fakeAdminRepo{}, &fakeSessionRepo{})

	_, err := service.ValidateSession(context.Background(), "forged-token")
	assert.ErrorIs(t, err, domainerrors.ErrSessionInvalid)
}

func TestAdminService_CreateAdmin(t *testing.T) {
	adminRepo := &fakeAdminRepo{}
	service := newAdminTestService(adminRepo, &fakeSessionRepo{})

	admin, err := service.CreateAdmin(context.Background(), &usecase.AdminInput{
		Email:    "new@example.com",
		Name:     "New Admin",
		Password: "longenough",
		IsActive: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "hash:longenough", admin.PasswordHash)
	assert.Len(t, adminRepo.admins, 1)
}

func TestAdminService_CreateAdmin_RequiresPassword(t *testing.T) {
	service := newAdminTestService(&fakeAdminRepo{}, &fakeSessionRepo{})

	_, err := service.CreateAdmin(context.Background(), &usecase.AdminInput{
		Email: "new@example.com",
		Name:  "New Admin",
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestAdminService_UpdateAdmin_KeepsPasswordWhenEmpty(t *testing.T) {
	admin := activeAdmin("owner@example.com", "s3cret-pass")
	service := newAdminTestService(&fakeAdminRepo{admins: []*entity.Admin{admin}}, &fakeSessionRepo{})

	updated, err := service.UpdateAdmin(context.Background(), admin.ID, &usecase.AdminInput{
		Email:    "renamed@example.com",
		Name:     "Renamed",
		IsActive: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "renamed@example.com", updated.Email)
	assert.Equal(t, "hash:s3cret-pass", updated.PasswordHash)
}

func TestAdminService_DeleteAdmin_NotFound(t *testing.T) {
	service := newAdminTestService(&fakeAdminRepo{}, &fakeSessionRepo{})

	err := service.DeleteAdmin(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrAdminNotFound)
}
