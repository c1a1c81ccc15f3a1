package domain

import "github.com/golang-jwt/jwt/v5"

const (
	RoleOperator = "operator"
	RoleViewer   = "viewer"
)

// Claims identifica quem chama a API de operação
type Claims struct {
	Operator string `json:"operator"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}
