package certificates

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
)

// DocumentRenderer produce la versión imprimible (PDF) de un certificado.
// Función pura de un registro; el contenido actual siempre entra en una página.
type DocumentRenderer interface {
	Render(c Certificate, verifyURL string) ([]byte, error)
}

func RegisterRoutes(r chi.Router, svc *Service, docs DocumentRenderer, baseURL string) {
	r.Route("/api/certificates", func(cr chi.Router) {
		cr.Post("/", createCertificateHandler(svc, baseURL))
		cr.Get("/{certID}", getCertificateHandler(svc))
		cr.Get("/{certID}/pdf", downloadCertificatePDFHandler(svc, docs, baseURL))
	})
}

type createCertificateRequest struct {
	VetName          string `json:"vet_name"`
	LicenseNumber    string `json:"license_number"`
	ClinicName       string `json:"clinic_name"`
	PetName          string `json:"pet_name"`
	PetType          string `json:"pet_type"`
	VaccineType      string `json:"vaccine_type"`
	DateAdministered string `json:"date_administered"`
	NextDueDate      string `json:"next_due_date"`
}

type createCertificateResponse struct {
	Success        bool   `json:"success"`
	CertificateID  string `json:"certificateId"`
	CertificateURL string `json:"certificateUrl"`
}

type certificateResponse struct {
	ID               string    `json:"id"`
	VetName          string    `json:"vet_name"`
	LicenseNumber    string    `json:"license_number"`
	ClinicName       string    `json:"clinic_name,omitempty"`
	PetName          string    `json:"pet_name"`
	PetType          string    `json:"pet_type"`
	VaccineType      string    `json:"vaccine_type"`
	DateAdministered string    `json:"date_administered"`
	NextDueDate      string    `json:"next_due_date,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	QRCode           string    `json:"qr_code,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// createCertificateHandler godoc
// @Summary Emitir un certificado de vacunación
// @Description Valida los campos requeridos, genera un ID de 6 caracteres y el QR de verificación, y persiste el registro. Las fechas se aceptan como strings opacos.
// @Tags certificates
// @Accept json
// @Produce json
// @Param payload body createCertificateRequest true "Datos del certificado"
// @Success 201 {object} createCertificateResponse
// @Failure 400 {object} errorResponse "invalid json / Missing required fields"
// @Failure 500 {object} errorResponse
// @Router /api/certificates [post]
func createCertificateHandler(svc *Service, baseURL string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createCertificateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid json")
			return
		}

		origin := requestOrigin(r, baseURL)

		c, err := svc.Create(r.Context(), origin, CreateInput{
			VetName:          req.VetName,
			LicenseNumber:    req.LicenseNumber,
			ClinicName:       req.ClinicName,
			PetName:          req.PetName,
			PetType:          req.PetType,
			VaccineType:      req.VaccineType,
			DateAdministered: req.DateAdministered,
			NextDueDate:      req.NextDueDate,
		})
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				writeError(w, http.StatusBadRequest, "Missing required fields")
				return
			}
			writeError(w, http.StatusInternalServerError, "Failed to create certificate")
			return
		}

		writeJSON(w, http.StatusCreated, createCertificateResponse{
			Success:        true,
			CertificateID:  c.ID,
			CertificateURL: CertificateURL(origin, c.ID),
		})
	}
}

// getCertificateHandler godoc
// @Summary Obtener un certificado por ID
// @Tags certificates
// @Produce json
// @Param certID path string true "ID del certificado"
// @Success 200 {object} certificateResponse
// @Failure 404 {object} errorResponse "Certificate not found"
// @Router /api/certificates/{certID} [get]
func getCertificateHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := svc.GetByID(r.Context(), chi.URLParam(r, "certID"))
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				writeError(w, http.StatusNotFound, "Certificate not found")
				return
			}
			writeError(w, http.StatusInternalServerError, "Failed to fetch certificate")
			return
		}

		writeJSON(w, http.StatusOK, toCertificateResponse(c))
	}
}

// downloadCertificatePDFHandler godoc
// @Summary Descargar el certificado como PDF
// @Tags certificates
// @Produce application/pdf
// @Param certID path string true "ID del certificado"
// @Success 200 {file} binary
// @Failure 404 {object} errorResponse "Certificate not found"
// @Failure 500 {object} errorResponse
// @Router /api/certificates/{certID}/pdf [get]
func downloadCertificatePDFHandler(svc *Service, docs DocumentRenderer, baseURL string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := svc.GetByID(r.Context(), chi.URLParam(r, "certID"))
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				writeError(w, http.StatusNotFound, "Certificate not found")
				return
			}
			writeError(w, http.StatusInternalServerError, "Failed to fetch certificate")
			return
		}

		pdf, err := docs.Render(c, VerifyURL(requestOrigin(r, baseURL), c.ID))
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to generate PDF")
			return
		}

		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", `attachment; filename=vaccination-certificate-`+c.ID+`.pdf`)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(pdf)
	}
}

func toCertificateResponse(c Certificate) certificateResponse {
	return certificateResponse{
		ID:               c.ID,
		VetName:          c.VetName,
		LicenseNumber:    c.LicenseNumber,
		ClinicName:       c.ClinicName,
		PetName:          c.PetName,
		PetType:          c.PetType,
		VaccineType:      c.VaccineType,
		DateAdministered: c.DateAdministered,
		NextDueDate:      c.NextDueDate,
		CreatedAt:        c.CreatedAt,
		QRCode:           c.QRCode,
	}
}

// requestOrigin resuelve el origin para URLs públicas: BASE_URL si está
// configurado (detrás de un proxy el Host del request no sirve), si no,
// esquema + host del request, como hacía el sistema original.
func requestOrigin(r *http.Request, baseURL string) string {
	if strings.TrimSpace(baseURL) != "" {
		return strings.TrimRight(strings.TrimSpace(baseURL), "/")
	}
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + r.Host
}

// writeJSON duplicado a propósito por paquete de handlers; si aparece un
// tercer consumidor, recién ahí vale extraerlo a un helper común.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
