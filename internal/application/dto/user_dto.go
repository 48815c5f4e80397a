package dto

// UserResponse saída de um usuário (painel administrativo).
type UserResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Role      string  `json:"role"`
	RoleLabel string  `json:"role_label"`
	Avatar    *string `json:"avatar,omitempty"`
	Initial   string  `json:"initial"`
}

// SessionRequest entrada de POST /api/session.
type SessionRequest struct {
	UserID  string `json:"user_id"`
	StoreID string `json:"store_id"`
}

// SessionResponse token de sessão (escopo de loja; não é controle de acesso).
type SessionResponse struct {
	Token     string       `json:"token"`
	ExpiresIn int          `json:"expires_in"`
	StoreID   string       `json:"store_id"`
	User      UserResponse `json:"user"`
}
