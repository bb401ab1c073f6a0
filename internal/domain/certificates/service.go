package certificates

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"jet-stamp/internal/platform/certid"
	"jet-stamp/internal/ports/qr"
)

var (
	ErrInvalidInput = errors.New("missing required fields")
	ErrNotFound     = errors.New("certificate not found")
)

type Service struct {
	repo  Repository
	qr    qr.Encoder
	newID func() (string, error)
	now   func() time.Time
}

func NewService(repo Repository, enc qr.Encoder) *Service {
	return &Service{
		repo:  repo,
		qr:    enc,
		newID: certid.New,
		now:   time.Now,
	}
}

type CreateInput struct {
	VetName       string
	LicenseNumber string
	ClinicName    string

	PetName string
	PetType string

	VaccineType      string
	DateAdministered string
	NextDueDate      string
}

// Create valida los seis campos requeridos, emite el ID, genera el QR de
// verificación ({origin}/verify/{id}) e inserta la fila. La validación corre
// antes de generar nada, así un input inválido no deja estado parcial.
func (s *Service) Create(ctx context.Context, origin string, in CreateInput) (Certificate, error) {
	required := []string{
		in.VetName,
		in.LicenseNumber,
		in.PetName,
		in.PetType,
		in.VaccineType,
		in.DateAdministered,
	}
	for _, v := range required {
		if strings.TrimSpace(v) == "" {
			return Certificate{}, ErrInvalidInput
		}
	}

	id, err := s.newID()
	if err != nil {
		return Certificate{}, fmt.Errorf("generate certificate id: %w", err)
	}

	verifyURL := VerifyURL(origin, id)
	qrCode, err := s.qr.DataURI(verifyURL)
	if err != nil {
		return Certificate{}, fmt.Errorf("encode verification qr: %w", err)
	}

	c := Certificate{
		ID:               id,
		VetName:          strings.TrimSpace(in.VetName),
		LicenseNumber:    strings.TrimSpace(in.LicenseNumber),
		ClinicName:       strings.TrimSpace(in.ClinicName),
		PetName:          strings.TrimSpace(in.PetName),
		PetType:          strings.TrimSpace(in.PetType),
		VaccineType:      strings.TrimSpace(in.VaccineType),
		DateAdministered: strings.TrimSpace(in.DateAdministered),
		NextDueDate:      strings.TrimSpace(in.NextDueDate),
		CreatedAt:        s.now().UTC(),
		QRCode:           qrCode,
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return Certificate{}, fmt.Errorf("persist certificate: %w", err)
	}
	return c, nil
}

// GetByID trata el id como clave opaca: sin validación de formato,
// cualquier id desconocido es simplemente ErrNotFound.
func (s *Service) GetByID(ctx context.Context, id string) (Certificate, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Certificate{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

// VerifyURL arma el URL público de verificación para un certificado.
func VerifyURL(origin, id string) string {
	return strings.TrimRight(origin, "/") + "/verify/" + id
}

// CertificateURL arma el URL de la página del certificado.
func CertificateURL(origin, id string) string {
	return strings.TrimRight(origin, "/") + "/certificate/" + id
}
