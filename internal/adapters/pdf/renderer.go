package pdf

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"jet-stamp/internal/domain/certificates"

	"github.com/jung-kurt/gofpdf"
)

// Renderer implementa certificates.DocumentRenderer con un layout fijo A4.
// Todo el contenido actual entra en una página, no hay lógica de paginado.
type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

type section struct {
	title string
	lines []string
}

// sections arma las tres secciones del documento. Las líneas opcionales
// (clínica, próxima dosis) solo aparecen cuando el campo está presente.
func sections(c certificates.Certificate) []section {
	pet := section{
		title: "Pet Information",
		lines: []string{
			"Name: " + c.PetName,
			"Type: " + capitalize(c.PetType),
		},
	}

	vaccination := section{
		title: "Vaccination Details",
		lines: []string{
			"Vaccine Type: " + c.VaccineType,
			"Date Administered: " + c.DateAdministered,
		},
	}
	if c.NextDueDate != "" {
		vaccination.lines = append(vaccination.lines, "Next Due Date: "+c.NextDueDate)
	}

	vet := section{
		title: "Veterinarian Information",
		lines: []string{
			"Name: " + c.VetName,
			"License Number: " + c.LicenseNumber,
		},
	}
	if c.ClinicName != "" {
		vet.lines = append(vet.lines, "Clinic: "+c.ClinicName)
	}

	return []section{pet, vaccination, vet}
}

func (r *Renderer) Render(c certificates.Certificate, verifyURL string) ([]byte, error) {
	doc := gofpdf.New("P", "pt", "A4", "")
	doc.SetMargins(50, 50, 50)
	doc.AddPage()

	// Encabezado
	doc.SetFont("Helvetica", "B", 24)
	doc.SetTextColor(37, 99, 235)
	doc.CellFormat(0, 30, "Vaccination Certificate", "", 1, "C", false, 0, "")

	doc.SetFont("Helvetica", "", 12)
	doc.SetTextColor(102, 102, 102)
	doc.CellFormat(0, 16, "Digital Veterinary Vaccination Record", "", 1, "C", false, 0, "")
	doc.Ln(24)

	doc.SetFont("Helvetica", "", 10)
	doc.SetTextColor(153, 153, 153)
	doc.CellFormat(0, 14, "Certificate ID: "+c.ID, "", 1, "R", false, 0, "")
	doc.Ln(12)

	// Secciones
	for _, s := range sections(c) {
		doc.SetFont("Helvetica", "B", 16)
		doc.SetTextColor(0, 0, 0)
		doc.CellFormat(0, 20, s.title, "", 1, "L", false, 0, "")
		doc.Ln(4)

		doc.SetFont("Helvetica", "", 12)
		doc.SetTextColor(51, 51, 51)
		for _, line := range s.lines {
			doc.CellFormat(0, 16, line, "", 1, "L", false, 0, "")
		}
		doc.Ln(14)
	}

	// QR de verificación embebido desde el data URI almacenado
	if c.QRCode != "" {
		img, err := decodeDataURI(c.QRCode)
		if err != nil {
			return nil, fmt.Errorf("decode stored qr: %w", err)
		}

		doc.SetFont("Helvetica", "", 12)
		doc.SetTextColor(102, 102, 102)
		doc.CellFormat(0, 16, "Scan to verify:", "", 1, "C", false, 0, "")
		doc.Ln(6)

		opts := gofpdf.ImageOptions{ImageType: "PNG"}
		doc.RegisterImageOptionsReader("verification-qr", opts, bytes.NewReader(img))

		pageW, _ := doc.GetPageSize()
		y := doc.GetY()
		doc.ImageOptions("verification-qr", (pageW-150)/2, y, 150, 150, false, opts, 0, "")
		doc.SetY(y + 150)
	}

	// Pie
	doc.Ln(24)
	doc.SetFont("Helvetica", "", 10)
	doc.SetTextColor(153, 153, 153)
	doc.CellFormat(0, 14, "Issued: "+c.CreatedAt.Format("Jan 2, 2006 15:04 MST"), "", 1, "C", false, 0, "")
	doc.CellFormat(0, 14, "Verify at: "+verifyURL, "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// decodeDataURI extrae los bytes PNG de un data:image/png;base64,...
func decodeDataURI(uri string) ([]byte, error) {
	_, payload, ok := strings.Cut(uri, ",")
	if !ok {
		return nil, errors.New("malformed data uri")
	}
	return base64.StdEncoding.DecodeString(payload)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
