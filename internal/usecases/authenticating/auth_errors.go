package authenticating

import (
	"errors"
)

// Tipos de erros de autenticação personalizados
var (
	ErrMissingSecret = errors.New("segredo de assinatura não configurado")
	ErrInvalidToken  = errors.New("token inválido")
	ErrExpiredToken  = errors.New("token expirado")
	ErrInvalidRole   = errors.New("role inválido")
)

// IsTokenError verifica se o erro está relacionado ao token de acesso
func IsTokenError(err error) bool {
	return errors.Is(err, ErrInvalidToken) ||
		errors.Is(err, ErrExpiredToken)
}
