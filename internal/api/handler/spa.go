package handler

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/vfg2006/tradelite-api/pkg/apiErrors"
)

const indexFile = "index.html"

// SPA serve o bundle do frontend. Caminhos sem arquivo correspondente caem no
// index.html para o roteamento do cliente; rotas /api desconhecidas continuam 404 em JSON.
func SPA(staticDir string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/api/") {
			apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Rota não encontrada", nil)
			return
		}

		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}

		requested := path.Clean("/" + r.URL.Path)
		if requested != "/" {
			candidate := filepath.Join(staticDir, filepath.FromSlash(requested))
			if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
				http.ServeFile(w, r, candidate)
				return
			}
		}

		index := filepath.Join(staticDir, indexFile)
		if _, err := os.Stat(index); err != nil {
			http.Error(w, "index.html not found", http.StatusNotFound)
			return
		}

		http.ServeFile(w, r, index)
	})
}
