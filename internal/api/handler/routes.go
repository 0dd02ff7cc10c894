package handler

import (
	"net/http"

	"github.com/vfg2006/tradelite-api/internal/api/handler/router"
	"github.com/vfg2006/tradelite-api/internal/domain"
	"github.com/vfg2006/tradelite-api/internal/usecases/administering"
	"github.com/vfg2006/tradelite-api/internal/usecases/authenticating"
	"github.com/vfg2006/tradelite-api/internal/usecases/managing"
	"github.com/vfg2006/tradelite-api/internal/usecases/mentoring"
	"github.com/vfg2006/tradelite-api/internal/usecases/promoting"
	"github.com/vfg2006/tradelite-api/internal/usecases/supporting"
	"github.com/vfg2006/tradelite-api/pkg/middleware"
)

type middlewares = []func(http.Handler) http.Handler

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
			Path:    "/api/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
	}
}

func Admin(service administering.AdminService) []router.Route {
	adminOnly := middlewares{middleware.AdminOnly()}

	return []router.Route{
		{Path: "/api/admin/billing_info", Method: http.MethodGet, Handler: GetBillingInfo(service), Middlewares: adminOnly},
		{Path: "/api/admin/products", Method: http.MethodGet, Handler: ListProducts(service), Middlewares: adminOnly},
		{Path: "/api/admin/products", Method: http.MethodPost, Handler: CreateProduct(service), Middlewares: adminOnly},
		{Path: "/api/admin/stores", Method: http.MethodGet, Handler: ListStores(service), Middlewares: adminOnly},
		{Path: "/api/admin/stores", Method: http.MethodPost, Handler: CreateStore(service), Middlewares: adminOnly},
		{Path: "/api/admin/categories", Method: http.MethodGet, Handler: ListCategories(service), Middlewares: adminOnly},
		{Path: "/api/admin/brands", Method: http.MethodGet, Handler: ListBrands(service), Middlewares: adminOnly},
		{Path: "/api/admin/support_contact", Method: http.MethodPost, Handler: ContactSupport(service), Middlewares: adminOnly},
		{Path: "/api/admin/dashboard_stats", Method: http.MethodGet, Handler: GetDashboardStats(service), Middlewares: adminOnly},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/api/admin/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: middlewares{middleware.AdminOnly()},
		},
		{
			Path:        "/api/admin/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: middlewares{middleware.AdminOnly()},
		},
	}
}

func Manager(service managing.ManagerService) []router.Route {
	managerOrAdmin := middlewares{middleware.ManagerOrAdmin()}

	return []router.Route{
		{Path: "/api/manager/promoter_performance", Method: http.MethodGet, Handler: GetPromoterPerformance(service), Middlewares: managerOrAdmin},
		{Path: "/api/manager/pending_stores", Method: http.MethodGet, Handler: GetPendingStores(service), Middlewares: managerOrAdmin},
		{
			Path:    "/api/manager/notifications/:manager_id",
			Method:  http.MethodGet,
			Handler: GetManagerNotifications(service),
			Middlewares: middlewares{
				middleware.ManagerOrAdmin(),
				middleware.SelfOrRoles("manager_id", domain.RoleAdmin),
			},
		},
		{Path: "/api/manager/price_variations", Method: http.MethodGet, Handler: GetPriceVariations(service), Middlewares: managerOrAdmin},
		{Path: "/api/manager/assign_responsibility", Method: http.MethodPost, Handler: AssignResponsibility(service), Middlewares: managerOrAdmin},
		{Path: "/api/manager/handle_contest", Method: http.MethodPost, Handler: HandleContest(service), Middlewares: managerOrAdmin},
		{Path: "/api/manager/promoter_profile/:promoter_id", Method: http.MethodGet, Handler: GetPromoterProfile(service), Middlewares: managerOrAdmin},
		{Path: "/api/manager/schedule_reevaluation", Method: http.MethodPost, Handler: ScheduleReevaluation(service), Middlewares: managerOrAdmin},
		{Path: "/api/manager/product_history", Method: http.MethodGet, Handler: GetManagerProductHistory(service), Middlewares: managerOrAdmin},
		{Path: "/api/manager/update_product", Method: http.MethodPost, Handler: UpdateProduct(service), Middlewares: managerOrAdmin},
	}
}

func Mentor(service mentoring.MentorService) []router.Route {
	allRoles := middlewares{middleware.AllRoles()}

	return []router.Route{
		{Path: "/api/mentor/analyze_visit", Method: http.MethodPost, Handler: AnalyzeVisit(service), Middlewares: allRoles},
		{Path: "/api/mentor/get_insights/:store_name", Method: http.MethodGet, Handler: GetInsights(service), Middlewares: allRoles},
		{Path: "/api/mentor/dashboard_kpis", Method: http.MethodGet, Handler: GetDashboardKPIs(service), Middlewares: allRoles},
		{Path: "/api/mentor/generate_report", Method: http.MethodPost, Handler: GenerateReport(service), Middlewares: allRoles},
	}
}

func Promoter(service promoting.PromoterService) []router.Route {
	ownData := middlewares{
		middleware.AllRoles(),
		middleware.SelfOrRoles("promoter_id", domain.RoleManager, domain.RoleAdmin),
	}
	fieldRoles := middlewares{middleware.AllRoles()}

	return []router.Route{
		{Path: "/api/promoter/visit_history/:promoter_id", Method: http.MethodGet, Handler: GetVisitHistory(service), Middlewares: ownData},
		{Path: "/api/promoter/weekly_schedule/:promoter_id", Method: http.MethodGet, Handler: GetWeeklySchedule(service), Middlewares: ownData},
		{Path: "/api/promoter/rupture_history/:promoter_id", Method: http.MethodGet, Handler: GetRuptureHistory(service), Middlewares: ownData},
		{Path: "/api/promoter/notifications/:promoter_id", Method: http.MethodGet, Handler: GetPromoterNotifications(service), Middlewares: ownData},
		{Path: "/api/promoter/feedback_history/:promoter_id", Method: http.MethodGet, Handler: GetFeedbackHistory(service), Middlewares: ownData},
		{Path: "/api/promoter/product_history/:promoter_id", Method: http.MethodGet, Handler: GetPromoterProductHistory(service), Middlewares: ownData},
		{Path: "/api/promoter/contest_product", Method: http.MethodPost, Handler: ContestProduct(service), Middlewares: fieldRoles},
		{Path: "/api/promoter/update_profile", Method: http.MethodPost, Handler: UpdateProfile(service), Middlewares: fieldRoles},
		{Path: "/api/promoter/register_price", Method: http.MethodPost, Handler: RegisterPrice(service), Middlewares: fieldRoles},
		{Path: "/api/promoter/register_expiry", Method: http.MethodPost, Handler: RegisterExpiry(service), Middlewares: fieldRoles},
		{Path: "/api/promoter/training_materials", Method: http.MethodGet, Handler: GetTrainingMaterials(service), Middlewares: fieldRoles},
	}
}

func Support(service supporting.SupportService) []router.Route {
	allRoles := middlewares{middleware.AllRoles()}
	ownData := middlewares{
		middleware.AllRoles(),
		middleware.SelfOrRoles("user_id", domain.RoleAdmin),
	}

	return []router.Route{
		{Path: "/api/support/faq", Method: http.MethodGet, Handler: ListFAQ(service), Middlewares: allRoles},
		{Path: "/api/support/faq/:faq_id", Method: http.MethodGet, Handler: GetFAQ(service), Middlewares: allRoles},
		{Path: "/api/support/error_code/:code", Method: http.MethodGet, Handler: GetErrorCode(service), Middlewares: allRoles},
		{Path: "/api/support/create_ticket", Method: http.MethodPost, Handler: CreateTicket(service), Middlewares: allRoles},
		{Path: "/api/support/tickets/:user_id", Method: http.MethodGet, Handler: ListTickets(service), Middlewares: ownData},
		{Path: "/api/support/ticket/:ticket_id", Method: http.MethodGet, Handler: GetTicket(service), Middlewares: allRoles},
		{
			Path:        "/api/support/ticket/:ticket_id/status",
			Method:      http.MethodPut,
			Handler:     UpdateTicketStatus(service),
			Middlewares: middlewares{middleware.AdminOnly()},
		},
		{Path: "/api/support/user_info/:user_id", Method: http.MethodGet, Handler: GetUserInfo(service), Middlewares: ownData},
		{Path: "/api/support/chat/start", Method: http.MethodPost, Handler: StartChat(service), Middlewares: allRoles},
		{Path: "/api/support/escalate_to_human", Method: http.MethodPost, Handler: EscalateToHuman(service), Middlewares: allRoles},
		{Path: "/api/support/urgent_support", Method: http.MethodPost, Handler: UrgentSupport(service), Middlewares: allRoles},
	}
}
