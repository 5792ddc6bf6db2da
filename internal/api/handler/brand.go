package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ecomistry/backoffice-api/internal/domain"
	"github.com/ecomistry/backoffice-api/internal/usecases/brand"
	"github.com/ecomistry/backoffice-api/pkg/apiErrors"
	"github.com/sirupsen/logrus"
)

func ListBrands(service brand.BrandService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		brands, err := service.List(brandFilters(r))
		if err != nil {
			logrus.Error("Error listing brands:", err)
			writeBrandError(w, err, "Erro ao listar marcas")
			return
		}

		w.Header().Set("Content-Type", "application/json")

		// A projeção tabular entrega a tabela pronta para renderização
		if wantsTableView(r) {
			if err := json.NewEncoder(w).Encode(service.View(brands, false)); err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
			}
			return
		}

		if err := json.NewEncoder(w).Encode(brands); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func GetBrand(service brand.BrandService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := pathParam(r, "id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da marca é obrigatório", nil)
			return
		}

		result, err := service.Get(id)
		if err != nil {
			logrus.Error("Error fetching brand:", err)
			writeBrandError(w, err, "Erro ao buscar marca")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func CreateBrand(service brand.BrandService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateBrand")

		var row domain.Row
		if err := json.NewDecoder(r.Body).Decode(&row); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		created, err := service.Create(row)
		if err != nil {
			logrus.Error("Error creating brand:", err)
			writeBrandError(w, err, "Erro ao criar marca")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(created); err != nil {
			logrus.WithError(err).Error("brands: erro ao codificar resposta")
		}
	})
}

func UpdateBrand(service brand.BrandService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateBrand")

		id := pathParam(r, "id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da marca é obrigatório", nil)
			return
		}

		var updateRequest domain.UpdateBrandRequest
		if err := json.NewDecoder(r.Body).Decode(&updateRequest); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		// Garante que o ID da URL seja usado
		updateRequest.ID = id

		updated, err := service.Update(&updateRequest)
		if err != nil {
			logrus.Error("Error updating brand:", err)
			writeBrandError(w, err, "Erro ao atualizar marca")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(updated); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func DeleteBrand(service brand.BrandService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DeleteBrand")

		id := pathParam(r, "id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da marca é obrigatório", nil)
			return
		}

		if err := service.Delete(id); err != nil {
			logrus.Error("Error deleting brand:", err)
			writeBrandError(w, err, "Erro ao remover marca")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

// ImportBrands cria marcas em lote a partir de linhas brutas. Linhas
// inválidas são descartadas e as demais são importadas normalmente.
func ImportBrands(service brand.BrandService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ImportBrands")

		var rows []domain.Row
		if err := json.NewDecoder(r.Body).Decode(&rows); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		if len(rows) == 0 {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Nenhuma linha para importar", nil)
			return
		}

		created, err := service.Import(rows)
		if err != nil {
			logrus.Error("Error importing brands:", err)
			writeBrandError(w, err, "Erro ao importar marcas")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(map[string]any{
			"imported": len(created),
			"brands":   created,
		}); err != nil {
			logrus.WithError(err).Error("brands: erro ao codificar resposta")
		}
	})
}

func brandFilters(r *http.Request) domain.BrandFilters {
	q := r.URL.Query()
	return domain.BrandFilters{
		Search:   q.Get("search"),
		Status:   q.Get("status"),
		Category: q.Get("category"),
		SortBy:   q.Get("sort_by"),
		SortDir:  q.Get("sort_dir"),
	}
}

// writeBrandError mapeia erros do caso de uso de marcas para a resposta da API
func writeBrandError(w http.ResponseWriter, err error, fallback string) {
	var brandErr *brand.BrandError
	if errors.As(err, &brandErr) {
		apiErrors.WriteError(w, brandErr.Code, brandErr.Error(), nil)
		return
	}

	switch {
	case errors.Is(err, brand.ErrBrandNotFound):
		apiErrors.WriteError(w, apiErrors.ErrRecordNotFound, "Marca não encontrada", nil)

	case errors.Is(err, brand.ErrBrandIDRequired):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da marca é obrigatório", nil)

	case errors.Is(err, brand.ErrFetchBrands), errors.Is(err, brand.ErrDatabaseOperation):
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar marcas no banco de dados", nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallback, nil)
	}
}
