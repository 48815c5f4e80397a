package analytics

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/edinho-pneus-api/internal/domain/entity"
)

func TestServiceMix_AgrupaELimita(t *testing.T) {
	rows := []entity.ServiceOrder{
		{ServiceDescription: "Alinhamento"},
		{ServiceDescription: ""},
		{ServiceDescription: "Alinhamento"},
	}
	for i := 0; i < 8; i++ {
		rows = append(rows, entity.ServiceOrder{ServiceDescription: fmt.Sprintf("Serviço %d", i)})
	}

	mix := serviceMix(rows)
	assert.Len(t, mix, serviceMixLimit)
	assert.Equal(t, "Alinhamento", mix[0].Name)
	assert.Equal(t, 2, mix[0].Value)
	assert.Equal(t, "Outros", mix[1].Name)
}
