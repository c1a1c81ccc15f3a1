package authenticating

import "errors"

var (
	ErrInvalidToken = errors.New("token inválido")
	ErrExpiredToken = errors.New("token expirado")
	ErrInvalidRole  = errors.New("perfil inválido")

	// ErrAuthDisabled indica que AUTH_SECRET não foi configurado
	ErrAuthDisabled = errors.New("autenticação desabilitada: AUTH_SECRET não configurado")
)

// IsAuthorizationError verifica se o erro está relacionado a problemas de autorização
func IsAuthorizationError(err error) bool {
	return errors.Is(err, ErrInvalidToken) ||
		errors.Is(err, ErrExpiredToken) ||
		errors.Is(err, ErrAuthDisabled)
}
