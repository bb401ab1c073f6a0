package qr

// Encoder produce una imagen QR escaneable del URL, lista para embeber inline.
// Debe ser una función pura: mismo URL, mismo artefacto, sin estado propio.
type Encoder interface {
	// DataURI devuelve la imagen como data URI (data:image/png;base64,...).
	DataURI(url string) (string, error)
}
