package authenticating

import (
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/vfg2006/tradelite-api/internal/config"
	"github.com/vfg2006/tradelite-api/internal/domain"
	"github.com/vfg2006/tradelite-api/pkg/apiErrors"
	"github.com/vfg2006/tradelite-api/pkg/log"
	"golang.org/x/crypto/bcrypt"
)

const invalidCredentialsMessage = "Credenciais inválidas"

type Authenticator interface {
	Login(email, password, role string) (*domain.Identity, string, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
}

type Service struct {
	credentials map[string]domain.Credential
	secret      []byte
	ttl         time.Duration
	now         func() time.Time

	// dummyHash entra na comparação quando email ou papel não conferem:
	// todo login recusado paga um bcrypt
	dummyHash       []byte
	comparePassword func(hash, password []byte) error
}

// NewService indexa as credenciais por email e gera o hash bcrypt das senhas em texto puro
func NewService(credentials []domain.Credential, cfg config.Auth) (Authenticator, error) {
	if cfg.Secret == "" {
		return nil, errors.New("segredo de assinatura do token não configurado")
	}

	cost := cfg.BcryptCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}

	ttl := cfg.TokenTTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	dummyHash, err := bcrypt.GenerateFromPassword([]byte("tradelite-dummy-password"), cost)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao gerar hash de comparação")
	}

	index := make(map[string]domain.Credential, len(credentials))
	for _, cred := range credentials {
		if cred.PasswordHash == "" {
			hash, err := bcrypt.GenerateFromPassword([]byte(cred.Password), cost)
			if err != nil {
				return nil, errors.Wrapf(err, "erro ao gerar hash da senha de %s", cred.Email)
			}
			cred.PasswordHash = string(hash)
		}
		cred.Password = ""

		index[handleEmail(cred.Email)] = cred
	}

	return &Service{
		credentials: index,
		secret:      []byte(cfg.Secret),
		ttl:         ttl,
		now:         time.Now,

		dummyHash:       dummyHash,
		comparePassword: bcrypt.CompareHashAndPassword,
	}, nil
}

func handleEmail(s string) string {
	email := strings.ToLower(s)
	email = strings.TrimSpace(email)
	email = strings.ReplaceAll(email, " ", "")
	return email
}

// Login valida o trio email/senha/papel. Qualquer divergência, inclusive campos
// ausentes, resulta no mesmo erro de credenciais inválidas.
func (s *Service) Login(email, password, role string) (*domain.Identity, string, error) {
	email = handleEmail(email)

	if email == "" || password == "" || role == "" {
		return nil, "", NewLoginError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, email, invalidCredentialsMessage)
	}

	requestedRole, roleOK := domain.ParseRole(role)
	cred, found := s.credentials[email]
	if !roleOK || !found || cred.Role != requestedRole {
		_ = s.comparePassword(s.dummyHash, []byte(password))
		return nil, "", NewLoginError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, email, invalidCredentialsMessage)
	}

	if err := s.comparePassword([]byte(cred.PasswordHash), []byte(password)); err != nil {
		return nil, "", NewLoginError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, email, invalidCredentialsMessage)
	}

	token, err := s.generateJWT(cred)
	if err != nil {
		return nil, "", NewAuthError(err, apiErrors.ErrInternalServer, "Erro ao gerar token de autenticação")
	}

	log.L.WithFields(log.Fields{
		"user_id": cred.ID,
		"role":    cred.Role,
	}).Info("Login realizado")

	return &domain.Identity{
		ID:    cred.ID,
		Name:  cred.Name,
		Email: cred.Email,
		Role:  cred.Role,
	}, token, nil
}

func (s *Service) generateJWT(cred domain.Credential) (string, error) {
	now := s.now()
	claims := domain.Claims{
		UserID:    cred.ID,
		UserName:  cred.Name,
		UserEmail: cred.Email,
		UserRole:  cred.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.Itoa(cred.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("método de assinatura inesperado: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, NewAuthError(ErrExpiredToken, apiErrors.ErrExpiredToken, err.Error())
		}
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, err.Error())
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid {
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "claims inválidas")
	}

	if _, ok := domain.ParseRole(string(claims.UserRole)); !ok {
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "papel desconhecido no token")
	}

	return claims, nil
}
