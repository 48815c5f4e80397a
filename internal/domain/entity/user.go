package entity

// Role perfil de acesso de um usuário.
type Role string

// Perfis válidos para User.
const (
	RoleAdmin    Role = "admin"
	RoleMechanic Role = "mechanic"
	RoleCashier  Role = "cashier"
	RoleCourier  Role = "courier"
)

// Valid indica se o perfil pertence ao conjunto fechado.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleMechanic, RoleCashier, RoleCourier:
		return true
	}
	return false
}

// Label rótulo exibido no painel administrativo.
func (r Role) Label() string {
	switch r {
	case RoleAdmin:
		return "Administrador"
	case RoleMechanic:
		return "Mecânico"
	case RoleCashier:
		return "Caixa"
	case RoleCourier:
		return "Courier"
	}
	return string(r)
}

// User representa um usuário do sistema. Somente leitura nesta versão.
type User struct {
	ID     string
	Name   string
	Role   Role
	Avatar *string
}
