package report_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"libdash/infras/otel/mocks"
	reportMocks "libdash/internal/domains/report/mocks"
	"libdash/internal/domains/report/model/dto"
	"libdash/internal/handlers/report"
)

func setup(t *testing.T) (*reportMocks.MockReport, *chi.Mux) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockService := reportMocks.NewMockReport(ctrl)
	handler := report.New(mockService, mocks.NewOtel())

	router := chi.NewRouter()
	router.Route("/v1", handler.Router)

	return mockService, router
}

func TestGetOverviewPassesCriteria(t *testing.T) {
	mockService, router := setup(t)

	mockService.EXPECT().
		GetOverview(gomock.Any(), dto.Criteria{
			LibraryID: "1",
			Status:    "Pending",
			DateRange: "week",
			Search:    "thesis",
		}).
		Return(dto.OverviewResponse{TotalBookings: 7}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/reports/overview?library_id=1&status=Pending&date_range=week&search=thesis", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total_bookings":7`)
}

func TestGetOverviewUpstreamFailure(t *testing.T) {
	mockService, router := setup(t)

	mockService.EXPECT().
		GetOverview(gomock.Any(), gomock.Any()).
		Return(dto.OverviewResponse{}, assert.AnError)

	req := httptest.NewRequest(http.MethodGet, "/v1/reports/overview", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestExportCSVSetsDownloadHeaders(t *testing.T) {
	mockService, router := setup(t)

	mockService.EXPECT().
		ExportCSV(gomock.Any(), gomock.Any()).
		Return("\"Reference\"\n", "bookings_export_2025-05-01.csv", nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/reports/export", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="bookings_export_2025-05-01.csv"`, rec.Header().Get("Content-Disposition"))
	assert.Equal(t, "\"Reference\"\n", rec.Body.String())
}

func TestGetStatus(t *testing.T) {
	mockService, router := setup(t)

	mockService.EXPECT().
		GetStatus(gomock.Any()).
		Return(dto.StatusResponse{State: "ready", UpdatedAgo: "Just now"})

	req := httptest.NewRequest(http.MethodGet, "/v1/reports/status", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"state":"ready"`)
}

func TestRefresh(t *testing.T) {
	mockService, router := setup(t)

	mockService.EXPECT().
		Refresh(gomock.Any()).
		Return(nil)

	req := httptest.NewRequest(http.MethodPost, "/v1/reports/refresh", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Data refreshed successfully")
}
