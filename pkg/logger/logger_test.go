package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/edinho-pneus-api/pkg/logger"
)

func TestLogger_JSONComComponente(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(logger.Config{Env: "production", Level: "info", Out: &buf})

	l.Component("pos").Info().Str("store_id", "1").Msg("venda registrada")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "pos", line["component"])
	assert.Equal(t, "1", line["store_id"])
	assert.Equal(t, "venda registrada", line["message"])
	assert.Equal(t, "info", line["level"])
}

func TestLogger_NivelFiltra(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(logger.Config{Env: "production", Level: "warn", Out: &buf})

	l.Info().Msg("ignorado")
	assert.Zero(t, buf.Len())

	l.Warn().Msg("registrado")
	assert.Contains(t, buf.String(), "registrado")
}
