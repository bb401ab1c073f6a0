package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"jet-stamp/internal/domain/certificates"
)

type certificateRepo struct {
	mu   sync.RWMutex
	byID map[string]certificates.Certificate
}

// NewCertificateRepo crea el repo in-memory (default para dev y tests).
func NewCertificateRepo() certificates.Repository {
	return &certificateRepo{
		byID: make(map[string]certificates.Certificate),
	}
}

func (r *certificateRepo) Create(ctx context.Context, c certificates.Certificate) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(c.ID) == "" {
		return errors.New("certificate id required")
	}
	if _, exists := r.byID[c.ID]; exists {
		return errors.New("certificate already exists")
	}
	r.byID[c.ID] = c
	return nil
}

func (r *certificateRepo) GetByID(ctx context.Context, id string) (certificates.Certificate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.byID[id]
	if !ok {
		return certificates.Certificate{}, certificates.ErrNotFound
	}
	return c, nil
}
