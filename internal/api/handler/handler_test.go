package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ecomistry/backoffice-api/internal/domain"
	"github.com/ecomistry/backoffice-api/internal/usecases/authenticating"
	"github.com/ecomistry/backoffice-api/internal/usecases/brand"
	"github.com/ecomistry/backoffice-api/internal/usecases/campaign"
	"github.com/ecomistry/backoffice-api/internal/usecases/exporting"
	"github.com/ecomistry/backoffice-api/internal/usecases/tasking"
	"github.com/ecomistry/backoffice-api/pkg/apiErrors"
	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
)

// withPathParam injeta um parâmetro de rota como o roteador faria
func withPathParam(r *http.Request, key, value string) *http.Request {
	params := httprouter.Params{{Key: key, Value: value}}
	return r.WithContext(context.WithValue(r.Context(), httprouter.ParamsKey, params))
}

func decodeAPIError(t *testing.T, w *httptest.ResponseRecorder) apiErrors.APIError {
	t.Helper()
	var apiErr apiErrors.APIError
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&apiErr))
	return apiErr
}

type fakeAuthenticator struct {
	authenticating.Authenticator

	loginErr error
}

func (f *fakeAuthenticator) LoginUser(email, password string) (string, error) {
	if f.loginErr != nil {
		return "", f.loginErr
	}
	return "token-de-teste", nil
}

type fakeTaskService struct {
	tasking.TaskService

	changeStatus func(id, status string) (*domain.ContentTask, error)
}

func (f *fakeTaskService) ChangeStatus(id, status string) (*domain.ContentTask, error) {
	return f.changeStatus(id, status)
}

type fakeCampaignService struct {
	campaign.CampaignService

	results []func() ([]*domain.MediaBuyingRecord, error)
	calls   int
}

func (f *fakeCampaignService) List(filters domain.MediaBuyingFilters) ([]*domain.MediaBuyingRecord, error) {
	result := f.results[f.calls]
	f.calls++
	return result()
}

type fakeBrandService struct {
	brand.BrandService

	brands []*domain.Brand
}

func (f *fakeBrandService) List(filters domain.BrandFilters) ([]*domain.Brand, error) {
	return f.brands, nil
}

type fakeExporter struct {
	file *exporting.File
	err  error
}

func (f *fakeExporter) Export(format, title string, headers []string, rows [][]string) (*exporting.File, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.file, nil
}

func TestHealthcheck(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/healthcheck", nil)

	HealthcheckHandler().ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Body.String())
}

func TestLogin(t *testing.T) {
	t.Run("Corpo inválido é recusado", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/v1/login", strings.NewReader("{invalid"))

		Login(&fakeAuthenticator{}).ServeHTTP(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, apiErrors.ErrInvalidRequest, decodeAPIError(t, w).Code)
	})

	t.Run("Credenciais inválidas retornam 401", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/v1/login",
			strings.NewReader(`{"email":"ana@ecomistry.com","password":"errada"}`))

		service := &fakeAuthenticator{loginErr: authenticating.ErrInvalidCredentials}
		Login(service).ServeHTTP(w, r)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, apiErrors.ErrInvalidCredentials, decodeAPIError(t, w).Code)
	})

	t.Run("Login válido devolve o token", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/v1/login",
			strings.NewReader(`{"email":"ana@ecomistry.com","password":"Correta@123"}`))

		Login(&fakeAuthenticator{}).ServeHTTP(w, r)

		assert.Equal(t, http.StatusOK, w.Code)

		var body map[string]string
		assert.NoError(t, json.NewDecoder(w.Body).Decode(&body))
		assert.Equal(t, "token-de-teste", body["token"])
	})
}

func TestChangeTaskStatus(t *testing.T) {
	t.Run("Transição não permitida responde com conflito", func(t *testing.T) {
		service := &fakeTaskService{
			changeStatus: func(id, status string) (*domain.ContentTask, error) {
				return nil, tasking.NewTaskError(tasking.ErrInvalidTransition,
					apiErrors.ErrInvalidTransition, "Transição de delivered para delayed não é permitida")
			},
		}

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPatch, "/v1/content-tasks/Tt77Kk/status",
			strings.NewReader(`{"status":"delayed"}`))
		r = withPathParam(r, "id", "Tt77Kk")

		ChangeTaskStatus(service).ServeHTTP(w, r)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, apiErrors.ErrInvalidTransition, decodeAPIError(t, w).Code)
	})

	t.Run("Status ausente no corpo é recusado", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPatch, "/v1/content-tasks/Tt77Kk/status",
			strings.NewReader(`{}`))
		r = withPathParam(r, "id", "Tt77Kk")

		ChangeTaskStatus(&fakeTaskService{}).ServeHTTP(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, apiErrors.ErrMissingRequiredData, decodeAPIError(t, w).Code)
	})

	t.Run("Transição válida devolve a tarefa atualizada", func(t *testing.T) {
		service := &fakeTaskService{
			changeStatus: func(id, status string) (*domain.ContentTask, error) {
				return &domain.ContentTask{ID: id, Status: status}, nil
			},
		}

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPatch, "/v1/content-tasks/Tt77Kk/status",
			strings.NewReader(`{"status":"delivered"}`))
		r = withPathParam(r, "id", "Tt77Kk")

		ChangeTaskStatus(service).ServeHTTP(w, r)

		assert.Equal(t, http.StatusOK, w.Code)

		var task domain.ContentTask
		assert.NoError(t, json.NewDecoder(w.Body).Decode(&task))
		assert.Equal(t, domain.TaskStatusDelivered, task.Status)
	})
}

func TestListMediaBuying_StaleRetry(t *testing.T) {
	stale := campaign.NewCampaignError(campaign.ErrStaleResult,
		apiErrors.ErrInvalidRequest, "Listagem substituída por uma busca mais recente")

	service := &fakeCampaignService{
		results: []func() ([]*domain.MediaBuyingRecord, error){
			func() ([]*domain.MediaBuyingRecord, error) { return nil, stale },
			func() ([]*domain.MediaBuyingRecord, error) {
				return []*domain.MediaBuyingRecord{{ID: "Mm88Qq"}}, nil
			},
		},
	}

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/v1/media-buying", nil)

	ListMediaBuying(service).ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 2, service.calls)

	var records []*domain.MediaBuyingRecord
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&records))
	if assert.Len(t, records, 1) {
		assert.Equal(t, "Mm88Qq", records[0].ID)
	}
}

func TestExportEntity(t *testing.T) {
	t.Run("Conjunto vazio responde 204 sem corpo", func(t *testing.T) {
		services := ExportServices{
			Brands: &fakeBrandService{},
			Exporter: &fakeExporter{err: exporting.NewExportError(exporting.ErrNothingToExport,
				apiErrors.ErrNothingToExport, "Não há dados para exportar")},
		}

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/v1/export/brands", nil)
		r = withPathParam(r, "entity", "brands")

		ExportEntity(services).ServeHTTP(w, r)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.String())
	})

	t.Run("Arquivo gerado sai como anexo", func(t *testing.T) {
		services := ExportServices{
			Brands: &fakeBrandService{brands: []*domain.Brand{{ID: "Aa11Bb", Name: "Alfa Fashion"}}},
			Exporter: &fakeExporter{file: &exporting.File{
				Name:        "marcas_20260214_080000.xlsx",
				ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
				Content:     []byte("conteudo"),
			}},
		}

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/v1/export/brands", nil)
		r = withPathParam(r, "entity", "brands")

		ExportEntity(services).ServeHTTP(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, `attachment; filename="marcas_20260214_080000.xlsx"`, w.Header().Get("Content-Disposition"))
		assert.Equal(t, "conteudo", w.Body.String())
	})

	t.Run("Entidade desconhecida é recusada", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/v1/export/unknown", nil)
		r = withPathParam(r, "entity", "unknown")

		ExportEntity(ExportServices{Exporter: &fakeExporter{}}).ServeHTTP(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
