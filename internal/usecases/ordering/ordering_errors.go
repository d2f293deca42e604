package ordering

import (
	"errors"
)

// Erros específicos para o contexto de pedidos
var (
	// Erros de validação
	ErrOrderIDRequired       = errors.New("order ID is required")
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidAmount         = errors.New("invalid decimal amount")
	ErrNegativeAmount        = errors.New("amount must not be negative")

	// Erros de recurso
	ErrOrderNotFound = errors.New("order not found")
)
