package certificates

import "context"

// Repository es el contrato de lectura/escritura sobre la tabla de certificados.
// Create es insert-only (nunca hay update). GetByID devuelve ErrNotFound
// cuando el id no existe.
type Repository interface {
	Create(ctx context.Context, c Certificate) error
	GetByID(ctx context.Context, id string) (Certificate, error)
}
