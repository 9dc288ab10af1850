package report

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"libdash/infras/otel"
	"libdash/internal/domains/report/model/dto"
	"libdash/internal/domains/report/service"
	"libdash/shared/constant"
	"libdash/transport/http/response"
)

type Handler struct {
	service service.Report
	otel    otel.Otel
}

func New(service service.Report, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/reports", func(r chi.Router) {
		r.Get("/overview", handler.GetOverview)
		r.Get("/libraries", handler.GetLibraries)
		r.Get("/monthly", handler.GetMonthly)
		r.Get("/analytics", handler.GetAnalytics)
		r.Get("/users", handler.GetUsers)
		r.Get("/resources", handler.GetResources)
		r.Get("/bookings", handler.GetBookings)
		r.Get("/export", handler.ExportCSV)
		r.Get("/status", handler.GetStatus)
		r.Post("/refresh", handler.Refresh)
	})
}

// GetOverview returns the overview report
// @Summary Get the overview report
// @Description Headline totals, rates, and charts for the filtered bookings.
// @Tags Reports
// @Produce json
// @Security BearerAuth
// @Param library_id query string false "Library ID"
// @Param status query string false "Booking status"
// @Param booker_type query string false "Booker type"
// @Param date_range query string false "Date range preset"
// @Param search query string false "Search term"
// @Success 200 {object} dto.OverviewResponse
// @Failure 502 {object} response.Error
// @Router /v1/reports/overview [get]
func (handler *Handler) GetOverview(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetOverview")
	defer scope.End()

	var criteria dto.Criteria
	criteria.FromRequest(r)

	res, err := handler.service.GetOverview(ctx, criteria)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get overview report")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetLibraries returns the per-library report
// @Summary Get the per-library report
// @Description Cards, comparison charts, and detail rows for every library.
// @Tags Reports
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.LibrariesResponse
// @Failure 502 {object} response.Error
// @Router /v1/reports/libraries [get]
func (handler *Handler) GetLibraries(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetLibraries")
	defer scope.End()

	var criteria dto.Criteria
	criteria.FromRequest(r)

	res, err := handler.service.GetLibraries(ctx, criteria)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get libraries report")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetMonthly returns the month-over-month report
// @Summary Get the monthly report
// @Description This month versus last month, growth, and monthly trends.
// @Tags Reports
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.MonthlyResponse
// @Failure 502 {object} response.Error
// @Router /v1/reports/monthly [get]
func (handler *Handler) GetMonthly(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMonthly")
	defer scope.End()

	var criteria dto.Criteria
	criteria.FromRequest(r)

	res, err := handler.service.GetMonthly(ctx, criteria)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get monthly report")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetAnalytics returns usage analytics
// @Summary Get usage analytics
// @Description Duration, weekday, hourly, and purpose distributions.
// @Tags Reports
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.AnalyticsResponse
// @Failure 502 {object} response.Error
// @Router /v1/reports/analytics [get]
func (handler *Handler) GetAnalytics(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAnalytics")
	defer scope.End()

	var criteria dto.Criteria
	criteria.FromRequest(r)

	res, err := handler.service.GetAnalytics(ctx, criteria)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get analytics report")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetUsers returns the per-user report
// @Summary Get the per-user report
// @Description Bookings aggregated per email address.
// @Tags Reports
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.UsersResponse
// @Failure 502 {object} response.Error
// @Router /v1/reports/users [get]
func (handler *Handler) GetUsers(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetUsers")
	defer scope.End()

	var criteria dto.Criteria
	criteria.FromRequest(r)

	res, err := handler.service.GetUsers(ctx, criteria)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get users report")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetResources returns the material checkout report
// @Summary Get the resources report
// @Description Material checkout totals, breakdowns, and table rows.
// @Tags Reports
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.ResourcesResponse
// @Failure 502 {object} response.Error
// @Router /v1/reports/resources [get]
func (handler *Handler) GetResources(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetResources")
	defer scope.End()

	var criteria dto.Criteria
	criteria.FromRequest(r)

	res, err := handler.service.GetResources(ctx, criteria)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get resources report")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetBookings returns the bookings table
// @Summary Get the bookings table
// @Description Filtered booking rows, capped at 50, with resolved names.
// @Tags Reports
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.BookingsResponse
// @Failure 502 {object} response.Error
// @Router /v1/reports/bookings [get]
func (handler *Handler) GetBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookings")
	defer scope.End()

	var criteria dto.Criteria
	criteria.FromRequest(r)

	res, err := handler.service.GetBookings(ctx, criteria)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings table")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// ExportCSV downloads the filtered bookings as CSV
// @Summary Export bookings as CSV
// @Description Download the filtered bookings as a CSV attachment.
// @Tags Reports
// @Produce text/csv
// @Security BearerAuth
// @Success 200 {string} string "CSV content"
// @Failure 502 {object} response.Error
// @Router /v1/reports/export [get]
func (handler *Handler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ExportCSV")
	defer scope.End()

	var criteria dto.Criteria
	criteria.FromRequest(r)

	content, fileName, err := handler.service.ExportCSV(ctx, criteria)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to export bookings")

		response.WithError(w, err)

		return
	}

	w.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeCSV)
	w.Header().Set(constant.RequestHeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", fileName))
	w.WriteHeader(http.StatusOK)

	if _, err = w.Write([]byte(content)); err != nil {
		log.Error().Err(err).Msg("failed to write CSV response")
	}
}

// GetStatus reports the refresh controller state
// @Summary Get the dataset status
// @Description Refresh state, last-updated age, and row counts.
// @Tags Reports
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.StatusResponse
// @Router /v1/reports/status [get]
func (handler *Handler) GetStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetStatus")
	defer scope.End()

	response.WithJSON(w, http.StatusOK, handler.service.GetStatus(ctx))
}

// Refresh forces a snapshot refresh
// @Summary Refresh the dataset
// @Description Fetch a fresh snapshot from the upstream immediately.
// @Tags Reports
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Message "Data refreshed successfully"
// @Failure 502 {object} response.Error
// @Router /v1/reports/refresh [post]
func (handler *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Refresh")
	defer scope.End()

	if err := handler.service.Refresh(ctx); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to refresh data")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Data refreshed successfully")

	response.WithMessage(w, http.StatusOK, "Data refreshed successfully")
}
