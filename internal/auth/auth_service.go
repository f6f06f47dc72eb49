package auth

import (
	"context"
	"errors"
	"os"
	"time"

	"go-hrms/internal/admin"
	autherrors "go-hrms/internal/auth/errors"
	"go-hrms/internal/user"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	AccessTokenTTL  = 15 * time.Minute
	RefreshTokenTTL = 7 * 24 * time.Hour
)

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
	Refresh(ctx context.Context, refreshToken string) (LoginResponse, error)
	GetMe(ctx context.Context, organizationID, userID, role string) (AccountResponse, error)
}

type service struct {
	userRepo  user.Repository
	adminRepo admin.Repository
	logger    *zap.Logger
}

func NewService(userRepo user.Repository, adminRepo admin.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{userRepo: userRepo, adminRepo: adminRepo, logger: l}
}

// account is the common slice of users and admins that auth cares about.
type account struct {
	ID             string
	Email          string
	Name           string
	Role           string
	OrganizationID string
	Password       string
	IsActive       bool
	isAdmin        bool
}

// Login resolves the email against users first and admins second; the
// two tables never share an email in practice, the order only matters
// for pathological data.
func (s *service) Login(ctx context.Context, req LoginRequest) (LoginResponse, error) {
	acct, err := s.findAccount(ctx, req.Email)
	if err != nil {
		return LoginResponse{}, err
	}
	if !acct.IsActive {
		return LoginResponse{}, autherrors.ErrAccountInactive
	}

	if err := bcrypt.CompareHashAndPassword([]byte(acct.Password), []byte(req.Password)); err != nil {
		s.logger.Warn("login password mismatch", zap.String("email", req.Email))
		return LoginResponse{}, autherrors.ErrInvalidCredentials
	}

	now := time.Now().UTC()
	if acct.isAdmin {
		if err := s.adminRepo.UpdateLastLogin(ctx, acct.ID, now); err != nil {
			s.logger.Warn("update admin last login failed", zap.Error(err))
		}
	} else {
		if err := s.userRepo.UpdateLastLogin(ctx, acct.ID, now); err != nil {
			s.logger.Warn("update user last login failed", zap.Error(err))
		}
	}

	resp, err := s.issueTokens(acct)
	if err != nil {
		return LoginResponse{}, err
	}

	s.logger.Info("login success",
		zap.String("account_id", acct.ID),
		zap.String("role", acct.Role),
	)
	return resp, nil
}

// Refresh validates the refresh token and reissues a fresh pair. The
// account is re-read so a deactivated account cannot keep renewing.
func (s *service) Refresh(ctx context.Context, refreshToken string) (LoginResponse, error) {
	claims, err := parseToken(refreshToken)
	if err != nil {
		return LoginResponse{}, autherrors.ErrInvalidRefreshToken
	}
	if tokenType, _ := claims["token_type"].(string); tokenType != "refresh" {
		return LoginResponse{}, autherrors.ErrInvalidRefreshToken
	}

	email, _ := claims["email"].(string)
	if email == "" {
		return LoginResponse{}, autherrors.ErrInvalidRefreshToken
	}

	acct, err := s.findAccount(ctx, email)
	if err != nil {
		return LoginResponse{}, autherrors.ErrInvalidRefreshToken
	}
	if !acct.IsActive {
		return LoginResponse{}, autherrors.ErrAccountInactive
	}

	return s.issueTokens(acct)
}

func (s *service) GetMe(ctx context.Context, organizationID, userID, role string) (AccountResponse, error) {
	if a, err := s.adminRepo.FindByIDAndOrganization(ctx, organizationID, userID); err == nil {
		return AccountResponse{
			ID:             a.ID.String(),
			Email:          a.Email,
			Name:           a.Name,
			Role:           a.Role,
			OrganizationID: a.OrganizationID.String(),
		}, nil
	}

	u, err := s.userRepo.FindByIDAndOrganization(ctx, organizationID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AccountResponse{}, autherrors.ErrUserNotFound
		}
		return AccountResponse{}, err
	}
	return AccountResponse{
		ID:             u.ID.String(),
		Email:          u.Email,
		Name:           u.Name,
		Role:           u.Role,
		OrganizationID: u.OrganizationID.String(),
	}, nil
}

func (s *service) findAccount(ctx context.Context, email string) (account, error) {
	if u, err := s.userRepo.FindByEmail(ctx, email); err == nil {
		return account{
			ID:             u.ID.String(),
			Email:          u.Email,
			Name:           u.Name,
			Role:           u.Role,
			OrganizationID: u.OrganizationID.String(),
			Password:       u.Password,
			IsActive:       u.IsActive,
		}, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return account{}, err
	}

	a, err := s.adminRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return account{}, autherrors.ErrInvalidCredentials
		}
		return account{}, err
	}
	return account{
		ID:             a.ID.String(),
		Email:          a.Email,
		Name:           a.Name,
		Role:           a.Role,
		OrganizationID: a.OrganizationID.String(),
		Password:       a.Password,
		IsActive:       a.IsActive,
		isAdmin:        true,
	}, nil
}

func (s *service) issueTokens(acct account) (LoginResponse, error) {
	now := time.Now().UTC()

	accessToken, err := signToken(jwt.MapClaims{
		"user_id":         acct.ID,
		"organization_id": acct.OrganizationID,
		"role":            acct.Role,
		"iat":             now.Unix(),
		"exp":             now.Add(AccessTokenTTL).Unix(),
	})
	if err != nil {
		s.logger.Error("sign access token failed", zap.Error(err))
		return LoginResponse{}, autherrors.ErrTokenGenerationFailed
	}

	refreshToken, err := signToken(jwt.MapClaims{
		"token_type": "refresh",
		"email":      acct.Email,
		"iat":        now.Unix(),
		"exp":        now.Add(RefreshTokenTTL).Unix(),
	})
	if err != nil {
		s.logger.Error("sign refresh token failed", zap.Error(err))
		return LoginResponse{}, autherrors.ErrTokenGenerationFailed
	}

	return LoginResponse{
		Account: AccountResponse{
			ID:             acct.ID,
			Email:          acct.Email,
			Name:           acct.Name,
			Role:           acct.Role,
			OrganizationID: acct.OrganizationID,
		},
		Tokens: TokenPair{
			AccessToken:  accessToken,
			RefreshToken: refreshToken,
			ExpiresIn:    int64(AccessTokenTTL.Seconds()),
		},
	}, nil
}

func signToken(claims jwt.MapClaims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

func parseToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return nil, autherrors.ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, autherrors.ErrInvalidToken
	}
	return claims, nil
}
