package http

import (
	"leadtrack-backend/internal/handlers"
	"leadtrack-backend/internal/middleware"

	"github.com/gorilla/mux"
)

func NewRouter(
	leadHandler *handlers.LeadHandler,
	suggestionFormHandler *handlers.SuggestionFormHandler,
	expenseHandler *handlers.ExpenseHandler,
	dashboardHandler *handlers.DashboardHandler,
	reportHandler *handlers.ReportHandler,
	healthHandler *handlers.HealthHandler,
	authMiddleware *middleware.AuthMiddleware,
) *mux.Router {
	r := mux.NewRouter()

	// Public health endpoints
	r.HandleFunc("/", healthHandler.Root).Methods("GET")
	r.HandleFunc("/health", healthHandler.Health).Methods("GET")

	api := r.PathPrefix("/api").Subrouter()
	api.Use(authMiddleware.Authenticate)

	// Leads
	api.HandleFunc("/forms", leadHandler.CreateLead).Methods("POST")
	api.HandleFunc("/forms", leadHandler.ListLeads).Methods("GET")
	api.HandleFunc("/forms/{id}", leadHandler.GetLead).Methods("GET")
	api.HandleFunc("/forms/{id}", leadHandler.UpdateLead).Methods("PUT")
	api.HandleFunc("/forms/{id}", leadHandler.DeleteLead).Methods("DELETE")

	// Dashboard reports
	api.HandleFunc("/total-count", dashboardHandler.TotalCount).Methods("GET")
	api.HandleFunc("/conversion-ratio", dashboardHandler.ConversionRatio).Methods("GET")
	api.HandleFunc("/todays-leads", dashboardHandler.TodaysLeads).Methods("GET")
	api.HandleFunc("/month-leads", dashboardHandler.MonthLeads).Methods("GET")
	api.HandleFunc("/total-payment-required", dashboardHandler.TotalPaymentRequired).Methods("GET")
	api.HandleFunc("/total-paid", dashboardHandler.TotalPaid).Methods("GET")
	api.HandleFunc("/remaining-amount", dashboardHandler.RemainingAmount).Methods("GET")
	api.HandleFunc("/leads-last-30-days", dashboardHandler.LeadsLast30Days).Methods("GET")
	api.HandleFunc("/leads-status-count", dashboardHandler.LeadsStatusCount).Methods("GET")
	api.HandleFunc("/leads-source-count", dashboardHandler.LeadsSourceCount).Methods("GET")

	// Reports
	api.HandleFunc("/reports/leads/pdf", reportHandler.LeadsSummaryPDF).Methods("GET")

	// Expenses (single-record CRUD keyed by business id, no listing)
	api.HandleFunc("/expenses", expenseHandler.CreateExpense).Methods("POST")
	api.HandleFunc("/expenses/{id}", expenseHandler.GetExpense).Methods("GET")
	api.HandleFunc("/expenses/{id}", expenseHandler.UpdateExpense).Methods("PUT")
	api.HandleFunc("/expenses/{id}", expenseHandler.DeleteExpense).Methods("DELETE")

	// Suggestion forms
	api.HandleFunc("/suggestion-forms", suggestionFormHandler.CreateForm).Methods("POST")
	api.HandleFunc("/suggestion-forms", suggestionFormHandler.ListForms).Methods("GET")
	api.HandleFunc("/suggestion-forms/{id}", suggestionFormHandler.GetForm).Methods("GET")
	api.HandleFunc("/suggestion-forms/{id}", suggestionFormHandler.UpdateForm).Methods("PUT")
	api.HandleFunc("/suggestion-forms/{id}", suggestionFormHandler.DeleteForm).Methods("DELETE")

	return r
}
