package memory

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/edinho-pneus-api/internal/domain/entity"
)

// DefaultStoreID loja única usada pelos dados de exemplo.
const DefaultStoreID = "1"

// Seed carrega os registros fixos de exemplo na loja storeID, substituindo o conteúdo atual.
func Seed(s *Store, storeID string) {
	if storeID == "" {
		storeID = DefaultStoreID
	}
	now := s.Now()
	at := func(hour, min int) time.Time {
		return time.Date(now.Year(), now.Month(), now.Day(), hour, min, 0, 0, now.Location())
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.users = []entity.User{
		{ID: "u1", Name: "Edinho Admin", Role: entity.RoleAdmin},
		{ID: "u2", Name: "Carlos Mecânico", Role: entity.RoleMechanic},
		{ID: "u3", Name: "Ana Caixa", Role: entity.RoleCashier},
		{ID: "u4", Name: "Roberto Motoboy", Role: entity.RoleCourier},
	}

	s.serviceOrders = []entity.ServiceOrder{
		{
			ID:                 "OS-1001",
			StoreID:            storeID,
			Status:             entity.ServiceOrderAguardando,
			CustomerName:       "João Silva",
			Plate:              "MKT1A23",
			AssignedTo:         strPtr("Carlos"),
			TotalEstimated:     decimal.NewFromInt(320),
			UpdatedAt:          now,
			Vehicle:            "Gol 1.6",
			ServiceDescription: "Troca de pneus + balanceamento",
			Priority:           entity.PriorityMedium,
		},
		{
			ID:                 "OS-1002",
			StoreID:            storeID,
			Status:             entity.ServiceOrderEmServico,
			CustomerName:       "Maria Souza",
			Plate:              "ABC2D34",
			AssignedTo:         strPtr("Rafael"),
			TotalEstimated:     decimal.NewFromInt(180),
			UpdatedAt:          now,
			Vehicle:            "Onix 1.0",
			ServiceDescription: "Alinhamento",
			Priority:           entity.PriorityLow,
		},
		{
			ID:                 "OS-1003",
			StoreID:            storeID,
			Status:             entity.ServiceOrderFinalizado,
			CustomerName:       "Bruno Lima",
			Plate:              "QWE9Z87",
			AssignedTo:         strPtr("Carlos"),
			TotalEstimated:     decimal.NewFromInt(540),
			UpdatedAt:          now,
			Vehicle:            "HB20",
			ServiceDescription: "2 pneus + alinhamento + balanceamento",
			Priority:           entity.PriorityHigh,
		},
	}

	s.products = []entity.Product{
		{
			ID:             s.newID(),
			StoreID:        storeID,
			LabelID:        "P-0001",
			Name:           "Pneu 175/70 R13",
			Condition:      entity.ConditionUsado,
			Size:           "175/70 R13",
			CostPrice:      decimal.NewFromInt(120),
			SuggestedPrice: decimal.NewFromInt(220),
			Status:         entity.ProductAprovado,
			Stock:          6,
			Category:       "Pneus",
		},
		{
			ID:             s.newID(),
			StoreID:        storeID,
			LabelID:        "P-0002",
			Name:           "Pneu 185/65 R15",
			Condition:      entity.ConditionNovo,
			Size:           "185/65 R15",
			CostPrice:      decimal.NewFromInt(220),
			SuggestedPrice: decimal.NewFromInt(390),
			Status:         entity.ProductEmConferencia,
			Stock:          3,
			Category:       "Pneus",
		},
		{
			ID:             s.newID(),
			StoreID:        storeID,
			LabelID:        "P-0100",
			Name:           "Válvula de Pneu",
			Condition:      entity.ConditionNovo,
			Size:           "Universal",
			CostPrice:      decimal.NewFromInt(2),
			SuggestedPrice: decimal.NewFromInt(8),
			Status:         entity.ProductAprovado,
			Stock:          120,
			Category:       "Peças",
		},
	}

	s.transactions = []entity.Transaction{
		{
			ID:          s.newID(),
			StoreID:     storeID,
			Type:        entity.TransactionReceita,
			Amount:      decimal.NewFromInt(320),
			Method:      entity.PaymentPix,
			CreatedAt:   now,
			ReferenceID: strPtr("OS-1001"),
			Description: "Venda OS-1001",
		},
		{
			ID:          s.newID(),
			StoreID:     storeID,
			Type:        entity.TransactionDespesa,
			Amount:      decimal.NewFromInt(150),
			Method:      entity.PaymentDinheiro,
			CreatedAt:   now,
			Description: "Compra de insumos",
		},
	}

	s.courierOrders = []entity.CourierOrder{
		{
			ID:               "1",
			StoreID:          storeID,
			FromStoreID:      storeID,
			ToStoreID:        "2",
			Status:           entity.CourierAceito,
			OTP:              strPtr("4590"),
			CreatedAt:        at(14, 0),
			Description:      "Transferência de Pneus (4x)",
			DriverName:       strPtr("Roberto"),
			EstimatedArrival: timePtr(at(14, 30)),
		},
		{
			ID:               "2",
			StoreID:          storeID,
			FromStoreID:      storeID,
			ToStoreID:        "3",
			Status:           entity.CourierPendente,
			CreatedAt:        at(14, 15),
			Description:      "Peças de Reposição",
			EstimatedArrival: timePtr(at(15, 0)),
		},
		{
			ID:               "3",
			StoreID:          storeID,
			FromStoreID:      storeID,
			ToStoreID:        "2",
			Status:           entity.CourierEntregue,
			CreatedAt:        at(10, 0),
			Description:      "Documentos Fiscais",
			DriverName:       strPtr("Carlos"),
			EstimatedArrival: timePtr(at(10, 45)),
		},
	}
}

func strPtr(s string) *string { return &s }

func timePtr(t time.Time) *time.Time { return &t }
