package certid

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// Alphabet es el alfabeto fijo de los IDs de certificado (mayúsculas + dígitos).
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Length es el largo fijo del ID.
const Length = 6

// New genera un ID corto aleatorio usando crypto/rand.
// No verifica unicidad contra el store: con 36^6 (~2.2e9) valores posibles,
// la colisión es probabilísticamente despreciable para este volumen.
// Un error aquí significa que la fuente de entropía del sistema falló.
func New() (string, error) {
	max := big.NewInt(int64(len(Alphabet)))

	b := make([]byte, Length)
	for i := range b {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("certid: read random source: %w", err)
		}
		b[i] = Alphabet[n.Int64()]
	}
	return string(b), nil
}
