package domain

import "errors"

// Erros de domínio (sem dependências externas).
var (
	ErrNotFound           = errors.New("recurso não encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrInvalidTransition  = errors.New("transição de status não permitida")
	ErrEmptyCart          = errors.New("carrinho vazio")
	ErrProductNotApproved = errors.New("produto ainda em conferência")
	ErrInsufficientStock  = errors.New("estoque insuficiente")
	ErrUnauthorized       = errors.New("não autorizado")
)
