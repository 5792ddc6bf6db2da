package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/ecomistry/backoffice-api/internal/usecases/brand"
	"github.com/ecomistry/backoffice-api/internal/usecases/campaign"
	"github.com/ecomistry/backoffice-api/internal/usecases/commission"
	"github.com/ecomistry/backoffice-api/internal/usecases/employee"
	"github.com/ecomistry/backoffice-api/internal/usecases/exporting"
	"github.com/ecomistry/backoffice-api/internal/usecases/finance"
	"github.com/ecomistry/backoffice-api/internal/usecases/tasking"
	"github.com/ecomistry/backoffice-api/pkg/apiErrors"
	"github.com/ecomistry/backoffice-api/pkg/log"
)

// Entidades exportáveis e seus títulos de arquivo
const (
	ExportEntityBrands       = "brands"
	ExportEntityEmployees    = "employees"
	ExportEntityMediaBuying  = "media-buying"
	ExportEntityContentTasks = "content-tasks"
	ExportEntityCommissions  = "commissions"
	ExportEntityRevenues     = "revenues"
	ExportEntityExpenses     = "expenses"
)

// ExportServices reúne os serviços de listagem que alimentam a exportação.
// O arquivo sai com as mesmas colunas e filtros da listagem correspondente.
type ExportServices struct {
	Brands       brand.BrandService
	Employees    employee.EmployeeService
	MediaBuying  campaign.CampaignService
	ContentTasks tasking.TaskService
	Commissions  commission.CommissionService
	Finance      finance.FinanceService
	Exporter     exporting.ExportService
}

// ExportEntity gera o arquivo de download de uma listagem filtrada.
// Conjunto vazio não gera arquivo: a resposta é 204 sem corpo.
func ExportEntity(services ExportServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		entity := pathParam(r, "entity")
		format := r.URL.Query().Get("format")
		if format == "" {
			format = exporting.FormatXLSX
		}

		title, headers, rows, err := exportRows(r, services, entity)
		if err != nil {
			logger.WithError(err).WithFields(log.Fields{
				"entity": entity,
			}).Error("export: erro ao montar linhas para exportação")
			writeExportListError(w, entity, err)
			return
		}

		file, err := services.Exporter.Export(format, title, headers, rows)
		if err != nil {
			// Nada a exportar não é falha: o cliente recebe 204 sem corpo
			if errors.Is(err, exporting.ErrNothingToExport) {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			logger.WithError(err).WithFields(log.Fields{
				"entity": entity,
				"format": format,
			}).Error("export: erro ao gerar arquivo")

			var exportErr *exporting.ExportError
			if errors.As(err, &exportErr) {
				apiErrors.WriteError(w, exportErr.Code, exportErr.Error(), nil)
				return
			}

			apiErrors.WriteError(w, apiErrors.ErrExportFailed, "Erro ao gerar arquivo de exportação", nil)
			return
		}

		logger.WithFields(log.Fields{
			"entity": entity,
			"format": format,
			"file":   file.Name,
			"rows":   len(rows),
		}).Info("export: arquivo gerado com sucesso")

		w.Header().Set("Content-Type", file.ContentType)
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Name))
		w.Header().Set("Content-Length", strconv.Itoa(len(file.Content)))
		if _, err := w.Write(file.Content); err != nil {
			logger.WithError(err).Error("export: erro ao enviar arquivo")
		}
	})
}

// exportRows lista a entidade com os filtros da query string e achata os
// registros pelas colunas da tabela correspondente
func exportRows(r *http.Request, services ExportServices, entity string) (string, []string, [][]string, error) {
	switch entity {
	case ExportEntityBrands:
		records, err := services.Brands.List(brandFilters(r))
		if err != nil {
			return "", nil, nil, err
		}
		headers, rows := exporting.Rows(brand.TableColumns(), records)
		return "Marcas", headers, rows, nil

	case ExportEntityEmployees:
		records, err := services.Employees.List(employeeFilters(r))
		if err != nil {
			return "", nil, nil, err
		}
		headers, rows := exporting.Rows(employee.TableColumns(), records)
		return "Funcionarios", headers, rows, nil

	case ExportEntityMediaBuying:
		filters, err := mediaBuyingFilters(r)
		if err != nil {
			return "", nil, nil, err
		}
		records, err := services.MediaBuying.List(filters)
		if errors.Is(err, campaign.ErrStaleResult) {
			records, err = services.MediaBuying.List(filters)
		}
		if err != nil {
			return "", nil, nil, err
		}
		headers, rows := exporting.Rows(campaign.TableColumns(), records)
		return "Compra de Midia", headers, rows, nil

	case ExportEntityContentTasks:
		filters, err := contentTaskFilters(r)
		if err != nil {
			return "", nil, nil, err
		}
		records, err := services.ContentTasks.List(filters)
		if err != nil {
			return "", nil, nil, err
		}
		headers, rows := exporting.Rows(tasking.TableColumns(), records)
		return "Tarefas de Conteudo", headers, rows, nil

	case ExportEntityCommissions:
		filters, err := commissionFilters(r)
		if err != nil {
			return "", nil, nil, err
		}
		records, err := services.Commissions.List(filters)
		if err != nil {
			return "", nil, nil, err
		}
		headers, rows := exporting.Rows(commission.TableColumns(), records)
		return "Comissoes", headers, rows, nil

	case ExportEntityRevenues:
		filters, err := revenueFilters(r)
		if err != nil {
			return "", nil, nil, err
		}
		records, err := services.Finance.ListRevenues(filters)
		if err != nil {
			return "", nil, nil, err
		}
		headers, rows := exporting.Rows(finance.RevenueTableColumns(), records)
		return "Receitas", headers, rows, nil

	case ExportEntityExpenses:
		filters, err := expenseFilters(r)
		if err != nil {
			return "", nil, nil, err
		}
		records, err := services.Finance.ListExpenses(filters)
		if err != nil {
			return "", nil, nil, err
		}
		headers, rows := exporting.Rows(finance.ExpenseTableColumns(), records)
		return "Despesas", headers, rows, nil
	}

	return "", nil, nil, exporting.NewExportError(exporting.ErrUnsupportedEntity, apiErrors.ErrInvalidRequest,
		fmt.Sprintf("Entidade de exportação não suportada: %s", entity))
}

// writeExportListError devolve o erro de listagem usando o mapeamento do
// caso de uso da entidade exportada
func writeExportListError(w http.ResponseWriter, entity string, err error) {
	var exportErr *exporting.ExportError
	if errors.As(err, &exportErr) {
		apiErrors.WriteError(w, exportErr.Code, exportErr.Error(), nil)
		return
	}

	switch entity {
	case ExportEntityBrands:
		writeBrandError(w, err, "Erro ao listar marcas para exportação")
	case ExportEntityEmployees:
		writeEmployeeError(w, err, "Erro ao listar funcionários para exportação")
	case ExportEntityMediaBuying:
		writeCampaignError(w, err, "Erro ao listar registros para exportação")
	case ExportEntityContentTasks:
		writeTaskError(w, err, "Erro ao listar tarefas para exportação")
	case ExportEntityCommissions:
		writeCommissionError(w, err, "Erro ao listar comissões para exportação")
	case ExportEntityRevenues, ExportEntityExpenses:
		writeFinanceError(w, err, "Erro ao listar registros financeiros para exportação")
	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao preparar exportação", nil)
	}
}
