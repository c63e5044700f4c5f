package authenticating

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/lib/pq"
	"github.com/vfg2006/monetization-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/monetization-dashboard-api/internal/config"
	"github.com/vfg2006/monetization-dashboard-api/internal/domain"
	"github.com/vfg2006/monetization-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/monetization-dashboard-api/pkg/log"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 8

type Authenticator interface {
	Register(ctx context.Context, request *domain.RegisterRequest) (*domain.Session, error)
	Login(ctx context.Context, request *domain.LoginRequest) (*domain.Session, error)
	GetProfile(ctx context.Context, loginID int64) (*domain.Profile, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
	VerifyLogin(ctx context.Context, claims *domain.Claims) (*domain.Login, error)
}

type Service struct {
	loginRepo      repository.LoginRepository
	advertiserRepo repository.AdvertiserRepository
	cfg            *config.Config
	now            func() time.Time
}

func NewService(loginRepo repository.LoginRepository, advertiserRepo repository.AdvertiserRepository, cfg *config.Config) Authenticator {
	return &Service{
		loginRepo:      loginRepo,
		advertiserRepo: advertiserRepo,
		cfg:            cfg,
		now:            time.Now,
	}
}

func handleEmail(s string) string {
	email := strings.ToLower(s)
	email = strings.TrimSpace(email)
	email = strings.ReplaceAll(email, " ", "")
	return email
}

func (s *Service) bcryptCost() int {
	if s.cfg.Auth.BcryptCost < bcrypt.MinCost {
		return bcrypt.DefaultCost
	}
	return s.cfg.Auth.BcryptCost
}

// Register cria o anunciante e o login com papel advertiser e já devolve a sessão
func (s *Service) Register(ctx context.Context, request *domain.RegisterRequest) (*domain.Session, error) {
	if request.Email == "" || strings.TrimSpace(request.AdvertiserName) == "" || request.Password == "" {
		return nil, NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Nome do anunciante, email e senha são obrigatórios")
	}

	if len(request.Password) < minPasswordLength {
		return nil, NewAuthError(ErrWeakPassword, apiErrors.ErrInvalidRequest, fmt.Sprintf("A senha deve conter pelo menos %d caracteres", minPasswordLength))
	}

	email := handleEmail(request.Email)

	existing, err := s.loginRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, NewAuthError(ErrUserAlreadyExists, apiErrors.ErrUserAlreadyExists, "Email já cadastrado")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(request.Password), s.bcryptCost())
	if err != nil {
		return nil, err
	}

	advertiser, login, err := s.loginRepo.Register(ctx,
		&domain.Advertiser{
			Name:    strings.TrimSpace(request.AdvertiserName),
			Email:   email,
			Company: request.Company,
			Country: request.Country,
		},
		&domain.Login{
			Email:        email,
			PasswordHash: string(hashedPassword),
			Role:         domain.RoleAdvertiser,
		},
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return nil, NewAuthError(ErrUserAlreadyExists, apiErrors.ErrUserAlreadyExists, "Email já cadastrado")
		}
		return nil, err
	}

	log.ForContext(ctx).WithField("advertiser_id", advertiser.ID).Info("Anunciante cadastrado")

	return s.newSession(login, advertiser)
}

func (s *Service) Login(ctx context.Context, request *domain.LoginRequest) (*domain.Session, error) {
	// Validação de entrada
	if request.Email == "" || request.Password == "" {
		return nil, NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Email e senha são obrigatórios")
	}

	login, err := s.loginRepo.GetByEmail(ctx, handleEmail(request.Email))
	if err != nil {
		return nil, err
	}

	if login == nil {
		return nil, NewAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, "Email ou senha incorretos")
	}

	if !login.Active {
		return nil, NewLoginAuthError(ErrUserDisabled, apiErrors.ErrUserDisabled, login.ID, "Conta desativada")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(login.PasswordHash), []byte(request.Password)); err != nil {
		return nil, NewLoginAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, login.ID, "Email ou senha incorretos")
	}

	var advertiser *domain.Advertiser
	if login.AdvertiserID != nil {
		advertiser, err = s.advertiserRepo.GetByID(ctx, *login.AdvertiserID)
		if err != nil {
			return nil, err
		}
	}

	return s.newSession(login, advertiser)
}

func (s *Service) GetProfile(ctx context.Context, loginID int64) (*domain.Profile, error) {
	login, err := s.loginRepo.GetByID(ctx, loginID)
	if err != nil {
		return nil, err
	}
	if login == nil {
		return nil, NewLoginAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, loginID, "Usuário não encontrado")
	}

	profile := &domain.Profile{Login: login}
	if login.AdvertiserID != nil {
		profile.Advertiser, err = s.advertiserRepo.GetByID(ctx, *login.AdvertiserID)
		if err != nil {
			return nil, err
		}
	}

	return profile, nil
}

func (s *Service) newSession(login *domain.Login, advertiser *domain.Advertiser) (*domain.Session, error) {
	expiresAt := s.now().Add(s.cfg.Auth.TokenTTL)

	token, err := generateJWT(login, expiresAt, s.cfg.Auth.Secret)
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrInternalServer, "Erro ao gerar token de autenticação")
	}

	return &domain.Session{
		Token:     token,
		ExpiresAt: expiresAt,
		Profile: &domain.Profile{
			Login:      login,
			Advertiser: advertiser,
		},
	}, nil
}

func generateJWT(login *domain.Login, expiresAt time.Time, secretKey string) (string, error) {
	claims := domain.Claims{
		LoginID:      login.ID,
		AdvertiserID: login.AdvertiserID,
		Email:        login.Email,
		Role:         login.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprintf("%d", login.ID),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secretKey))
}

// ValidateToken distingue token expirado de token inválido para o cliente poder renovar a sessão
func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.Auth.Secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, NewAuthError(ErrExpiredToken, apiErrors.ErrExpiredToken, "Sessão expirada, faça login novamente")
		}
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "Token inválido")
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid {
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "Token inválido")
	}

	return claims, nil
}

// VerifyLogin confirma que o login do token ainda existe e está ativo
func (s *Service) VerifyLogin(ctx context.Context, claims *domain.Claims) (*domain.Login, error) {
	login, err := s.loginRepo.GetByID(ctx, claims.LoginID)
	if err != nil {
		return nil, err
	}

	if login == nil {
		return nil, NewLoginAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, claims.LoginID, "Usuário do token não existe mais")
	}

	if !login.Active {
		return nil, NewLoginAuthError(ErrUserDisabled, apiErrors.ErrUserDisabled, login.ID, "Conta desativada")
	}

	return login, nil
}
