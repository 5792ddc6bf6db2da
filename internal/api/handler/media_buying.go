package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ecomistry/backoffice-api/internal/domain"
	"github.com/ecomistry/backoffice-api/internal/usecases/campaign"
	"github.com/ecomistry/backoffice-api/pkg/apiErrors"
	"github.com/sirupsen/logrus"
)

func ListMediaBuying(service campaign.CampaignService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filters, err := mediaBuyingFilters(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inválida. Use o formato YYYY-MM-DD", nil)
			return
		}

		records, err := service.List(filters)
		if errors.Is(err, campaign.ErrStaleResult) {
			// Uma busca concorrente mais recente venceu; repetir a listagem
			records, err = service.List(filters)
		}
		if err != nil {
			logrus.Error("Error listing media buying records:", err)
			writeCampaignError(w, err, "Erro ao listar registros de compra de mídia")
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if wantsTableView(r) {
			if err := json.NewEncoder(w).Encode(service.View(records, false)); err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
			}
			return
		}

		if err := json.NewEncoder(w).Encode(records); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func GetMediaBuying(service campaign.CampaignService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := pathParam(r, "id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do registro é obrigatório", nil)
			return
		}

		result, err := service.Get(id)
		if err != nil {
			logrus.Error("Error fetching media buying record:", err)
			writeCampaignError(w, err, "Erro ao buscar registro de compra de mídia")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func CreateMediaBuying(service campaign.CampaignService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateMediaBuying")

		var row domain.Row
		if err := json.NewDecoder(r.Body).Decode(&row); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		created, err := service.Create(row)
		if err != nil {
			logrus.Error("Error creating media buying record:", err)
			writeCampaignError(w, err, "Erro ao criar registro de compra de mídia")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(created); err != nil {
			logrus.WithError(err).Error("media-buying: erro ao codificar resposta")
		}
	})
}

func UpdateMediaBuying(service campaign.CampaignService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateMediaBuying")

		id := pathParam(r, "id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do registro é obrigatório", nil)
			return
		}

		var updateRequest domain.UpdateMediaBuyingRequest
		if err := json.NewDecoder(r.Body).Decode(&updateRequest); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		updateRequest.ID = id

		updated, err := service.Update(&updateRequest)
		if err != nil {
			logrus.Error("Error updating media buying record:", err)
			writeCampaignError(w, err, "Erro ao atualizar registro de compra de mídia")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(updated); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func DeleteMediaBuying(service campaign.CampaignService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DeleteMediaBuying")

		id := pathParam(r, "id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do registro é obrigatório", nil)
			return
		}

		if err := service.Delete(id); err != nil {
			logrus.Error("Error deleting media buying record:", err)
			writeCampaignError(w, err, "Erro ao remover registro de compra de mídia")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

func mediaBuyingFilters(r *http.Request) (domain.MediaBuyingFilters, error) {
	q := r.URL.Query()

	startDate, err := queryDate(r, "start_date")
	if err != nil {
		return domain.MediaBuyingFilters{}, err
	}

	endDate, err := queryDate(r, "end_date")
	if err != nil {
		return domain.MediaBuyingFilters{}, err
	}

	return domain.MediaBuyingFilters{
		Search:     q.Get("search"),
		Platform:   q.Get("platform"),
		BrandID:    q.Get("brand_id"),
		EmployeeID: q.Get("employee_id"),
		StartDate:  startDate,
		EndDate:    endDate,
		SortBy:     q.Get("sort_by"),
		SortDir:    q.Get("sort_dir"),
	}, nil
}

// writeCampaignError mapeia erros do caso de uso de compra de mídia para a
// resposta da API
func writeCampaignError(w http.ResponseWriter, err error, fallback string) {
	var campaignErr *campaign.CampaignError
	if errors.As(err, &campaignErr) {
		apiErrors.WriteError(w, campaignErr.Code, campaignErr.Error(), nil)
		return
	}

	switch {
	case errors.Is(err, campaign.ErrRecordNotFound):
		apiErrors.WriteError(w, apiErrors.ErrRecordNotFound, "Registro de compra de mídia não encontrado", nil)

	case errors.Is(err, campaign.ErrRecordIDRequired):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do registro é obrigatório", nil)

	case errors.Is(err, campaign.ErrFetchRecords), errors.Is(err, campaign.ErrDatabaseOperation):
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar registros no banco de dados", nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallback, nil)
	}
}
