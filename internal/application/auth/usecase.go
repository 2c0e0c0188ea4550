package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/multiempresa-api/internal/application/dto"
	"github.com/jhoicas/multiempresa-api/internal/domain"
	"github.com/jhoicas/multiempresa-api/internal/domain/entity"
	"github.com/jhoicas/multiempresa-api/internal/domain/repository"
	"github.com/jhoicas/multiempresa-api/internal/domain/tenancy"
	"github.com/jhoicas/multiempresa-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: login y alta de usuarios.
type AuthUseCase struct {
	userRepo repository.UserRepository
	orgRepo  repository.OrganizationRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, orgRepo repository.OrganizationRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, orgRepo: orgRepo, jwtCfg: jwtCfg}
}

// Login verifica email/password, genera JWT y retorna token + usuario. Rechaza
// usuarios de organizaciones suspendidas o expiradas.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if user.Status != "active" {
		return nil, domain.ErrForbidden
	}
	if user.OrganizationID != nil {
		org, err := uc.orgRepo.GetByID(ctx, *user.OrganizationID)
		if err != nil {
			return nil, err
		}
		if org == nil || !org.IsOperational() {
			return nil, fmt.Errorf("organización inactiva: %w", domain.ErrForbidden)
		}
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.OrganizationID, user.PlatformAdmin, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *toUserResponse(user),
	}, nil
}

// CreateUser da de alta un usuario dentro de la organización del scope. Sólo
// un admin de la organización (o plataforma con target) puede invocarlo.
func (uc *AuthUseCase) CreateUser(ctx context.Context, scope tenancy.Scope, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	orgID, err := scope.RequireOrganizationID()
	if err != nil {
		return nil, err
	}
	existing, err := uc.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	role := in.Role
	if role == "" {
		role = entity.RoleConsulta
	}
	user := &entity.User{
		ID:             uuid.New().String(),
		OrganizationID: &orgID,
		Email:          in.Email,
		PasswordHash:   string(hash),
		Name:           in.Name,
		Role:           role,
		Status:         "active",
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// ListUsers lista los usuarios de la organización del scope.
func (uc *AuthUseCase) ListUsers(ctx context.Context, scope tenancy.Scope, page dto.PageRequest) ([]dto.UserResponse, error) {
	orgID, err := scope.RequireOrganizationID()
	if err != nil {
		return nil, err
	}
	page.DefaultPage()
	users, err := uc.userRepo.ListByOrganization(ctx, orgID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, *toUserResponse(u))
	}
	return out, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:             u.ID,
		OrganizationID: u.OrganizationID,
		Email:          u.Email,
		Name:           u.Name,
		Role:           u.Role,
		PlatformAdmin:  u.PlatformAdmin,
		Status:         u.Status,
		CreatedAt:      u.CreatedAt,
		UpdatedAt:      u.UpdatedAt,
	}
}
