package web

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"
)

//go:embed static
var content embed.FS

// RegisterPages monta las páginas embebidas. Los shells de certificado y
// verificación no reciben datos del servidor: el script de cada página
// consume el API de lectura y puebla el DOM del lado del cliente.
func RegisterPages(r chi.Router) {
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/vet", http.StatusFound)
	})
	r.Get("/vet", servePage("vet.html"))
	r.Get("/certificate/{certID}", servePage("certificate.html"))
	r.Get("/verify/{certID}", servePage("verify.html"))

	assets, err := fs.Sub(content, "static")
	if err != nil {
		panic(err) // embed roto: error de build, no de runtime
	}
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(assets))))
}

func servePage(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data, err := content.ReadFile("static/" + name)
		if err != nil {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write(data)
	}
}
