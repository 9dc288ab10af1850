package service_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"libdash/config"
	"libdash/infras/otel/mocks"
	s3Mocks "libdash/infras/s3/mocks"
	"libdash/infras/sheets"
	sheetsMocks "libdash/infras/sheets/mocks"
	"libdash/internal/domains/report/model"
	"libdash/internal/domains/report/model/dto"
	"libdash/internal/domains/report/service"
	"libdash/shared/cache"
	cacheMocks "libdash/shared/cache/mocks"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.Refresh.IntervalSeconds = 30

	return cfg
}

func bookingRecords() []sheets.Record {
	return []sheets.Record{
		{"id": "1", "email": "a@x.edu", "status": "Completed", "library": "1", "booked_hour": "2", "date": "2025-05-01"},
		{"id": "2", "email": "b@x.edu", "library": "2", "booked_hour": "1", "date": "2025-05-02"},
	}
}

func libraryRecords() []sheets.Record {
	return []sheets.Record{
		{"id": "1", "name": "Main Library"},
		{"id": "2", "name": "Science Library"},
	}
}

func expectFullFetch(mockSheets *sheetsMocks.MockClient) {
	mockSheets.EXPECT().FetchBookings(gomock.Any()).Return(bookingRecords(), nil)
	mockSheets.EXPECT().FetchLibraries(gomock.Any()).Return(libraryRecords(), nil)
	mockSheets.EXPECT().FetchFacilities(gomock.Any()).Return([]sheets.Record{}, nil)
	mockSheets.EXPECT().FetchResources(gomock.Any()).Return([]sheets.Record{
		{"id": "1", "reference_number": "RES-1", "utilization_of_materials": "home"},
	}, nil)
}

func TestReportService_Refresh(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSheets := sheetsMocks.NewMockClient(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockS3 := s3Mocks.NewMockS3(ctrl)
	mockOtel := mocks.NewOtel()

	expectFullFetch(mockSheets)
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc := service.New(testConfig(), mockSheets, mockCache, mockS3, nil, mockOtel)

	err := svc.Refresh(context.Background())
	assert.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	status := svc.GetStatus(context.Background())
	assert.Equal(t, string(model.RefreshReady), status.State)
	assert.Equal(t, 2, status.Bookings)
	assert.Equal(t, 1, status.Resources)
	assert.Equal(t, 2, status.Libraries)
	assert.Equal(t, "Just now", status.UpdatedAgo)
}

func TestReportService_RefreshKeepsSnapshotOnBookingFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSheets := sheetsMocks.NewMockClient(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockS3 := s3Mocks.NewMockS3(ctrl)
	mockOtel := mocks.NewOtel()

	expectFullFetch(mockSheets)
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc := service.New(testConfig(), mockSheets, mockCache, mockS3, nil, mockOtel)

	assert.NoError(t, svc.Refresh(context.Background()))

	mockSheets.EXPECT().FetchBookings(gomock.Any()).Return(nil, assert.AnError)

	err := svc.Refresh(context.Background())
	assert.Error(t, err)

	status := svc.GetStatus(context.Background())
	assert.Equal(t, string(model.RefreshFailed), status.State)
	assert.Equal(t, 2, status.Bookings, "previous snapshot is retained")
}

func TestReportService_GetOverviewCacheMiss(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSheets := sheetsMocks.NewMockClient(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockS3 := s3Mocks.NewMockS3(ctrl)
	mockOtel := mocks.NewOtel()

	mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil)
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	expectFullFetch(mockSheets)

	svc := service.New(testConfig(), mockSheets, mockCache, mockS3, nil, mockOtel)

	res, err := svc.GetOverview(context.Background(), dto.Criteria{})
	assert.NoError(t, err)

	assert.Equal(t, 2, res.TotalBookings)
	assert.Equal(t, 1, res.CompletedBookings)
	assert.Equal(t, 1, res.PendingBookings, "missing status counts as pending")
	assert.Equal(t, 3, res.TotalHours)
	assert.Equal(t, []string{"Main Library", "Science Library"}, res.LibraryUsage.Labels)

	time.Sleep(10 * time.Millisecond)
}

func TestReportService_GetOverviewCacheHit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSheets := sheetsMocks.NewMockClient(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockS3 := s3Mocks.NewMockS3(ctrl)
	mockOtel := mocks.NewOtel()

	mockCache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, value any) error {
			res, ok := value.(*dto.OverviewResponse)
			assert.True(t, ok)
			res.TotalBookings = 99

			return nil
		})

	svc := service.New(testConfig(), mockSheets, mockCache, mockS3, nil, mockOtel)

	res, err := svc.GetOverview(context.Background(), dto.Criteria{})
	assert.NoError(t, err)
	assert.Equal(t, 99, res.TotalBookings, "upstream is not called on a cache hit")
}

func TestReportService_ExportCSV(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSheets := sheetsMocks.NewMockClient(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockS3 := s3Mocks.NewMockS3(ctrl)
	mockOtel := mocks.NewOtel()

	expectFullFetch(mockSheets)
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc := service.New(testConfig(), mockSheets, mockCache, mockS3, nil, mockOtel)

	content, fileName, err := svc.ExportCSV(context.Background(), dto.Criteria{})
	assert.NoError(t, err)

	assert.True(t, strings.HasPrefix(fileName, "bookings_export_"))
	assert.True(t, strings.HasSuffix(fileName, ".csv"))

	lines := strings.Split(strings.TrimRight(content, "\n"), "\n")
	assert.Len(t, lines, 3, "header plus one row per booking")
	assert.Contains(t, lines[1], `"Main Library"`)

	time.Sleep(10 * time.Millisecond)
}

func TestReportService_GetStatusBeforeFirstRefresh(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSheets := sheetsMocks.NewMockClient(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockS3 := s3Mocks.NewMockS3(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(testConfig(), mockSheets, mockCache, mockS3, nil, mockOtel)

	status := svc.GetStatus(context.Background())
	assert.Equal(t, string(model.RefreshIdle), status.State)
	assert.Equal(t, "N/A", status.LastUpdated)
	assert.Equal(t, "N/A", status.UpdatedAgo)
	assert.Equal(t, 0, status.Bookings)
}
