package handler

import (
	"net/http"
	"time"

	"github.com/ecomistry/backoffice-api/pkg/utils"
	"github.com/julienschmidt/httprouter"
)

// pathParam retorna um parâmetro nomeado da URL da rota
func pathParam(r *http.Request, name string) string {
	return httprouter.ParamsFromContext(r.Context()).ByName(name)
}

// queryDate interpreta um parâmetro de data da query string. Parâmetro
// ausente resulta em nil; valor presente mas inválido resulta em erro.
func queryDate(r *http.Request, key string) (*time.Time, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return nil, nil
	}
	return utils.ParseDate(raw)
}

// wantsTableView indica se o cliente pediu a projeção tabular (view=table)
// em vez da lista de entidades completa
func wantsTableView(r *http.Request) bool {
	return r.URL.Query().Get("view") == "table"
}
