package domain

import (
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

type Role string

const (
	RolePromoter Role = "promoter"
	RoleManager  Role = "manager"
	RoleAdmin    Role = "admin"
)

// Nomes legados enviados pelo frontend antigo
var roleAliases = map[string]Role{
	"promoter": RolePromoter,
	"promotor": RolePromoter,
	"manager":  RoleManager,
	"gestor":   RoleManager,
	"admin":    RoleAdmin,
}

// ParseRole normaliza o papel informado no login
func ParseRole(s string) (Role, bool) {
	role, ok := roleAliases[strings.ToLower(strings.TrimSpace(s))]
	return role, ok
}

// Credential é uma entrada da tabela de credenciais do catálogo de referência.
// Password só existe no YAML; PasswordHash é preenchido no carregamento.
type Credential struct {
	ID           int    `yaml:"id"`
	Name         string `yaml:"name"`
	Email        string `yaml:"email"`
	Role         Role   `yaml:"role"`
	Password     string `yaml:"password,omitempty"`
	PasswordHash string `yaml:"password_hash,omitempty"`
}

// Identity é o registro devolvido ao cliente após o login
type Identity struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

type Claims struct {
	UserID    int
	UserName  string
	UserEmail string
	UserRole  Role
	jwt.RegisteredClaims
}

// IsPrivileged indica se o papel pode agir em nome de outros usuários
func (c *Claims) IsPrivileged() bool {
	return c.UserRole == RoleAdmin || c.UserRole == RoleManager
}
