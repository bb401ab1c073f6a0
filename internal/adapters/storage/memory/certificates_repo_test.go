package memory

import (
	"context"
	"testing"
	"time"

	"jet-stamp/internal/domain/certificates"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCertificateRepo_CreateAndGet(t *testing.T) {
	repo := NewCertificateRepo()
	ctx := context.Background()

	c := certificates.Certificate{
		ID:               "ABC123",
		VetName:          "Dr. Lee",
		LicenseNumber:    "VT-123",
		PetName:          "Rex",
		PetType:          "dog",
		VaccineType:      "Rabies",
		DateAdministered: "2024-01-15",
		CreatedAt:        time.Now().UTC(),
	}

	require.NoError(t, repo.Create(ctx, c))

	got, err := repo.GetByID(ctx, "ABC123")
	require.NoError(t, err)
	assert.Equal(t, c, got)
}

func TestCertificateRepo_GetUnknown(t *testing.T) {
	repo := NewCertificateRepo()

	_, err := repo.GetByID(context.Background(), "ZZZZZZ")
	require.ErrorIs(t, err, certificates.ErrNotFound)
}

func TestCertificateRepo_RejectsDuplicateAndEmptyID(t *testing.T) {
	repo := NewCertificateRepo()
	ctx := context.Background()

	require.Error(t, repo.Create(ctx, certificates.Certificate{}))

	c := certificates.Certificate{ID: "ABC123"}
	require.NoError(t, repo.Create(ctx, c))
	require.Error(t, repo.Create(ctx, c))
}
