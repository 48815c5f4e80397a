// Package idgen gera identificadores opacos para os registros do store em memória.
package idgen

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	mrand "math/rand/v2"
	"time"

	"github.com/google/uuid"
)

// New devolve um UUID v4. Se a fonte segura de aleatoriedade falhar,
// cai para Fallback (sem verificação de unicidade).
func New() string {
	id, err := uuid.NewRandom()
	if err != nil {
		return Fallback(time.Now())
	}
	return id.String()
}

// Fallback compõe "id_<unix ms>_<hex aleatório>".
func Fallback(now time.Time) string {
	buf := make([]byte, 6)
	if _, err := rand.Read(buf); err != nil {
		return fmt.Sprintf("id_%d_%x", now.UnixMilli(), mrand.Uint64())
	}
	return fmt.Sprintf("id_%d_%s", now.UnixMilli(), hex.EncodeToString(buf))
}
