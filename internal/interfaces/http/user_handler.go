package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/edinho-pneus-api/internal/application/dto"
	"github.com/jhoicas/edinho-pneus-api/internal/application/usecase"
	"github.com/jhoicas/edinho-pneus-api/pkg/jwt"
)

// UserHandler usuários e sessão.
type UserHandler struct {
	uc           *usecase.UserUseCase
	jwtSecret    string
	jwtIssuer    string
	jwtExpMin    int
	defaultStore string
}

// SessionConfig parâmetros de emissão do token de sessão.
type SessionConfig struct {
	Secret       string
	Issuer       string
	ExpMinutes   int
	DefaultStore string
}

// NewUserHandler constrói o handler.
func NewUserHandler(uc *usecase.UserUseCase, cfg SessionConfig) *UserHandler {
	return &UserHandler{
		uc:           uc,
		jwtSecret:    cfg.Secret,
		jwtIssuer:    cfg.Issuer,
		jwtExpMin:    cfg.ExpMinutes,
		defaultStore: cfg.DefaultStore,
	}
}

// List godoc
// @Summary      Listar usuários
// @Tags         users
// @Produce      json
// @Success      200  {object}  dto.ListResponse[dto.UserResponse]
// @Router       /api/users [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.NewList(out, ""))
}

// GetByID godoc
// @Summary      Obter usuário
// @Tags         users
// @Produce      json
// @Param        id   path  string  true  "ID do usuário"
// @Success      200  {object}  dto.UserResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/users/{id} [get]
func (h *UserHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return notFound(c, "usuário não encontrado")
	}
	return c.JSON(out)
}

// Session godoc
// @Summary      Abrir sessão (token com escopo de loja)
// @Description  Não há senha: o token só define o escopo de loja das leituras.
// @Tags         session
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SessionRequest  true  "Usuário e loja"
// @Success      200   {object}  dto.SessionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /api/session [post]
func (h *UserHandler) Session(c *fiber.Ctx) error {
	var in dto.SessionRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if strings.TrimSpace(in.UserID) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "user_id é obrigatório"})
	}
	user, err := h.uc.GetByID(c.Context(), in.UserID)
	if err != nil {
		return writeError(c, err)
	}
	if user == nil {
		return notFound(c, "usuário não encontrado")
	}
	storeID := in.StoreID
	if storeID == "" {
		storeID = h.defaultStore
	}
	token, err := jwt.Generate(h.jwtSecret, user.ID, storeID, user.Role, h.jwtIssuer, h.jwtExpMin)
	if err != nil {
		if errors.Is(err, jwt.ErrEmptySecret) {
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "SESSION_DISABLED", Message: "emissão de sessão desativada (JWT_SECRET vazio)"})
		}
		return writeError(c, err)
	}
	return c.JSON(dto.SessionResponse{
		Token:     token,
		ExpiresIn: h.jwtExpMin * 60,
		StoreID:   storeID,
		User:      *user,
	})
}
