package usecase

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/jhoicas/edinho-pneus-api/internal/application/dto"
	"github.com/jhoicas/edinho-pneus-api/internal/domain"
	"github.com/jhoicas/edinho-pneus-api/internal/domain/entity"
)

// isNotFound o "null" dos casos de uso: not-found vira (nil, nil).
func isNotFound(err error) bool {
	return errors.Is(err, domain.ErrNotFound)
}

// ToProductResponse converte a entidade para a saída HTTP.
func ToProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:             p.ID,
		StoreID:        p.StoreID,
		LabelID:        p.LabelID,
		Name:           p.Name,
		Condition:      string(p.Condition),
		Size:           p.Size,
		CostPrice:      p.CostPrice,
		SuggestedPrice: p.SuggestedPrice,
		Status:         string(p.Status),
		Stock:          p.Stock,
		Category:       p.Category,
	}
}

// ToProductResponses converte uma lista preservando a ordem.
func ToProductResponses(list []entity.Product) []dto.ProductResponse {
	out := make([]dto.ProductResponse, 0, len(list))
	for i := range list {
		out = append(out, *ToProductResponse(&list[i]))
	}
	return out
}

// ToServiceOrderResponse converte a entidade para a saída HTTP.
func ToServiceOrderResponse(so *entity.ServiceOrder) *dto.ServiceOrderResponse {
	if so == nil {
		return nil
	}
	return &dto.ServiceOrderResponse{
		ID:                 so.ID,
		StoreID:            so.StoreID,
		Status:             string(so.Status),
		CustomerName:       so.CustomerName,
		Plate:              so.Plate,
		AssignedTo:         so.AssignedTo,
		TotalEstimated:     so.TotalEstimated,
		UpdatedAt:          so.UpdatedAt,
		Vehicle:            so.Vehicle,
		ServiceDescription: so.ServiceDescription,
		Priority:           string(so.Priority),
		PriorityLabel:      so.Priority.Label(),
	}
}

// ToTransactionResponse converte a entidade para a saída HTTP.
func ToTransactionResponse(t *entity.Transaction) *dto.TransactionResponse {
	if t == nil {
		return nil
	}
	return &dto.TransactionResponse{
		ID:          t.ID,
		StoreID:     t.StoreID,
		Type:        string(t.Type),
		Amount:      t.Amount,
		Method:      string(t.Method),
		CreatedAt:   t.CreatedAt,
		ReferenceID: t.ReferenceID,
		Description: t.Description,
	}
}

// ToCourierOrderResponse converte a entidade; o OTP só aparece enquanto ACEITO.
func ToCourierOrderResponse(co *entity.CourierOrder) *dto.CourierOrderResponse {
	if co == nil {
		return nil
	}
	_, canAdvance := co.Status.Next()
	return &dto.CourierOrderResponse{
		ID:               co.ID,
		StoreID:          co.StoreID,
		FromStoreID:      co.FromStoreID,
		ToStoreID:        co.ToStoreID,
		Status:           string(co.Status),
		OTP:              co.VisibleOTP(),
		CreatedAt:        co.CreatedAt,
		Description:      co.Description,
		DriverName:       co.DriverName,
		EstimatedArrival: co.EstimatedArrival,
		CanAdvance:       canAdvance,
	}
}

// ToUserResponse converte a entidade; Initial substitui o avatar ausente.
func ToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	initial := ""
	if r, _ := utf8.DecodeRuneInString(strings.TrimSpace(u.Name)); r != utf8.RuneError {
		initial = string(r)
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Role:      string(u.Role),
		RoleLabel: u.Role.Label(),
		Avatar:    u.Avatar,
		Initial:   initial,
	}
}
