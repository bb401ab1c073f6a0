package certificates

import "time"

// Certificate es la única entidad del sistema: un registro de vacunación
// emitido una sola vez e inmutable después (no existe update ni delete).
//
// Las fechas de vacunación viajan como strings opacos, igual que en el
// sistema original: no se validan como fechas de calendario al escribir.
// ClinicName y NextDueDate vacíos significan "ausente".
type Certificate struct {
	ID string

	VetName       string
	LicenseNumber string
	ClinicName    string

	PetName string
	PetType string

	VaccineType      string
	DateAdministered string
	NextDueDate      string

	CreatedAt time.Time
	QRCode    string // data URI derivado del ID en la creación
}
