package handler

import (
	"net/http"

	"github.com/ecomistry/backoffice-api/internal/api/handler/router"
	"github.com/ecomistry/backoffice-api/internal/usecases/authenticating"
	"github.com/ecomistry/backoffice-api/internal/usecases/brand"
	"github.com/ecomistry/backoffice-api/internal/usecases/campaign"
	"github.com/ecomistry/backoffice-api/internal/usecases/commission"
	"github.com/ecomistry/backoffice-api/internal/usecases/employee"
	"github.com/ecomistry/backoffice-api/internal/usecases/finance"
	"github.com/ecomistry/backoffice-api/internal/usecases/tasking"
	"github.com/ecomistry/backoffice-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/employees/:id/generate-password",
			Method:      http.MethodPost,
			Handler:     GeneratePassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/employees/:id/change-password",
			Method:      http.MethodPost,
			Handler:     ChangePassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Brands(service brand.BrandService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/brands",
			Method:      http.MethodGet,
			Handler:     ListBrands(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/brands/:id",
			Method:      http.MethodGet,
			Handler:     GetBrand(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/brands",
			Method:      http.MethodPost,
			Handler:     CreateBrand(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/brands/import",
			Method:      http.MethodPost,
			Handler:     ImportBrands(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/brands/:id",
			Method:      http.MethodPut,
			Handler:     UpdateBrand(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/brands/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteBrand(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func Employees(service employee.EmployeeService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/employees",
			Method:      http.MethodGet,
			Handler:     ListEmployees(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/employees/:id",
			Method:      http.MethodGet,
			Handler:     GetEmployee(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/employees",
			Method:      http.MethodPost,
			Handler:     CreateEmployee(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/employees/:id",
			Method:      http.MethodPut,
			Handler:     UpdateEmployee(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/employees/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteEmployee(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func MediaBuying(service campaign.CampaignService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/media-buying",
			Method:      http.MethodGet,
			Handler:     ListMediaBuying(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/media-buying/:id",
			Method:      http.MethodGet,
			Handler:     GetMediaBuying(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/media-buying",
			Method:      http.MethodPost,
			Handler:     CreateMediaBuying(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/media-buying/:id",
			Method:      http.MethodPut,
			Handler:     UpdateMediaBuying(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/media-buying/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteMediaBuying(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}

func ContentTasks(service tasking.TaskService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/content-tasks",
			Method:      http.MethodGet,
			Handler:     ListContentTasks(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/content-tasks/:id",
			Method:      http.MethodGet,
			Handler:     GetContentTask(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/content-tasks",
			Method:      http.MethodPost,
			Handler:     CreateContentTask(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/content-tasks/:id",
			Method:      http.MethodPut,
			Handler:     UpdateContentTask(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/content-tasks/:id/status",
			Method:      http.MethodPatch,
			Handler:     ChangeTaskStatus(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/content-tasks/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteContentTask(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}

func Commissions(service commission.CommissionService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/commissions",
			Method:      http.MethodGet,
			Handler:     ListCommissions(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/commissions/:id",
			Method:      http.MethodGet,
			Handler:     GetCommission(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/commissions",
			Method:      http.MethodPost,
			Handler:     CreateCommission(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/commissions/:id",
			Method:      http.MethodPut,
			Handler:     UpdateCommission(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/commissions/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteCommission(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func Finance(service finance.FinanceService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/revenues",
			Method:      http.MethodGet,
			Handler:     ListRevenues(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/revenues/:id",
			Method:      http.MethodGet,
			Handler:     GetRevenue(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/revenues",
			Method:      http.MethodPost,
			Handler:     CreateRevenue(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/revenues/:id",
			Method:      http.MethodPut,
			Handler:     UpdateRevenue(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/revenues/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteRevenue(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/expenses",
			Method:      http.MethodGet,
			Handler:     ListExpenses(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/expenses/:id",
			Method:      http.MethodGet,
			Handler:     GetExpense(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/expenses",
			Method:      http.MethodPost,
			Handler:     CreateExpense(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/expenses/:id",
			Method:      http.MethodPut,
			Handler:     UpdateExpense(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/expenses/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteExpense(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/finance/summary",
			Method:      http.MethodGet,
			Handler:     FinanceSummary(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/finance/report",
			Method:      http.MethodGet,
			Handler:     FinanceReport(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/finance/periods",
			Method:      http.MethodGet,
			Handler:     FinancePeriods(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}

func Exports(services ExportServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/export/:entity",
			Method:      http.MethodGet,
			Handler:     ExportEntity(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
