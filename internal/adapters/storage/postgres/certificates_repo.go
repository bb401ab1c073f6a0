package postgres

import (
	"context"
	"database/sql"
	"strings"

	"jet-stamp/internal/domain/certificates"
)

type CertificatesRepo struct {
	db *sql.DB
}

func NewCertificatesRepo(db *sql.DB) *CertificatesRepo {
	return &CertificatesRepo{db: db}
}

func (r *CertificatesRepo) Create(ctx context.Context, c certificates.Certificate) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO certificates (
			id, vet_name, license_number, clinic_name,
			pet_name, pet_type,
			vaccine_type, date_administered, next_due_date,
			created_at, qr_code
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
	`,
		c.ID,
		c.VetName,
		c.LicenseNumber,
		toNullString(c.ClinicName),
		c.PetName,
		c.PetType,
		c.VaccineType,
		c.DateAdministered,
		toNullString(c.NextDueDate),
		c.CreatedAt,
		toNullString(c.QRCode),
	)
	return err
}

func (r *CertificatesRepo) GetByID(ctx context.Context, id string) (certificates.Certificate, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return certificates.Certificate{}, certificates.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT
			id, vet_name, license_number, clinic_name,
			pet_name, pet_type,
			vaccine_type, date_administered, next_due_date,
			created_at, qr_code
		FROM certificates
		WHERE id = $1
	`, id)

	var c certificates.Certificate
	var clinic, nextDue, qrCode sql.NullString
	if err := row.Scan(
		&c.ID,
		&c.VetName,
		&c.LicenseNumber,
		&clinic,
		&c.PetName,
		&c.PetType,
		&c.VaccineType,
		&c.DateAdministered,
		&nextDue,
		&c.CreatedAt,
		&qrCode,
	); err != nil {
		if err == sql.ErrNoRows {
			return certificates.Certificate{}, certificates.ErrNotFound
		}
		return certificates.Certificate{}, err
	}

	c.ClinicName = clinic.String
	c.NextDueDate = nextDue.String
	c.QRCode = qrCode.String

	return c, nil
}

// los opcionales viajan como NULL en la tabla, string vacío en el dominio
func toNullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
