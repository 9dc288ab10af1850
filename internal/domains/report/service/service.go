package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"

	"libdash/config"
	"libdash/infras/kafka"
	"libdash/infras/otel"
	"libdash/infras/s3"
	"libdash/infras/sheets"
	bookingModel "libdash/internal/domains/booking/model"
	"libdash/internal/domains/directory"
	"libdash/internal/domains/report/engine"
	"libdash/internal/domains/report/model"
	"libdash/internal/domains/report/model/dto"
	resourceModel "libdash/internal/domains/resource/model"
	"libdash/shared"
	"libdash/shared/cache"
	"libdash/shared/constant"
	"libdash/shared/failure"
	"libdash/shared/timezone"
)

const (
	cachePrefix         = "report"
	cacheOverview       = "report:overview"
	cacheLibraries      = "report:libraries"
	cacheMonthly        = "report:monthly"
	cacheAnalytics      = "report:analytics"
	cacheUsers          = "report:users"
	cacheResources      = "report:resources"
	cacheBookings       = "report:bookings"
	defaultIntervalSecs = 30

	libraryLabel  = "Library"
	facilityLabel = "Facility"

	exportDirectory = "exports"
)

// Report serves the dashboard views from an in-memory snapshot of the
// upstream sheet data, refreshed periodically or on demand.
type Report interface {
	GetOverview(ctx context.Context, criteria dto.Criteria) (dto.OverviewResponse, error)
	GetLibraries(ctx context.Context, criteria dto.Criteria) (dto.LibrariesResponse, error)
	GetMonthly(ctx context.Context, criteria dto.Criteria) (dto.MonthlyResponse, error)
	GetAnalytics(ctx context.Context, criteria dto.Criteria) (dto.AnalyticsResponse, error)
	GetUsers(ctx context.Context, criteria dto.Criteria) (dto.UsersResponse, error)
	GetResources(ctx context.Context, criteria dto.Criteria) (dto.ResourcesResponse, error)
	GetBookings(ctx context.Context, criteria dto.Criteria) (dto.BookingsResponse, error)
	ExportCSV(ctx context.Context, criteria dto.Criteria) (content, fileName string, err error)
	GetStatus(ctx context.Context) dto.StatusResponse
	Refresh(ctx context.Context) error
	StartAutoRefresh() error
	StopAutoRefresh()
}

type serviceImpl struct {
	cfg      *config.Config
	sheets   sheets.Client
	cache    cache.RedisCache
	archive  s3.S3
	producer kafka.Producer
	otel     otel.Otel

	mu          sync.RWMutex
	snapshot    *model.Snapshot
	state       model.RefreshState
	lastUpdated time.Time

	refreshMu sync.Mutex

	scheduler *cron.Cron
	entryID   cron.EntryID
}

func New(cfg *config.Config, sheetsClient sheets.Client, redisCache cache.RedisCache, archive s3.S3, producer kafka.Producer, otel otel.Otel) Report {
	return &serviceImpl{
		cfg:       cfg,
		sheets:    sheetsClient,
		cache:     redisCache,
		archive:   archive,
		producer:  producer,
		otel:      otel,
		state:     model.RefreshIdle,
		scheduler: cron.New(),
	}
}

// Refresh fetches a fresh snapshot and swaps it in wholesale. A bookings
// fetch failure aborts the refresh and keeps the previous snapshot;
// directory and resource fetch failures fall back to the previous values.
func (s *serviceImpl) Refresh(ctx context.Context) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Refresh")
	defer scope.End()
	defer scope.TraceIfError(err)

	s.refreshMu.Lock()
	defer s.refreshMu.Unlock()

	s.setState(model.RefreshLoading)

	bookingRecords, err := s.sheets.FetchBookings(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to fetch bookings, keeping previous snapshot")
		s.setState(model.RefreshFailed)

		return fmt.Errorf("failed to fetch bookings: %w", err)
	}

	previous := s.currentSnapshot()

	snapshot := &model.Snapshot{
		Bookings:  bookingModel.FromRecords(bookingRecords),
		FetchedAt: timezone.Now(),
	}

	if libraryRecords, fetchErr := s.sheets.FetchLibraries(ctx); fetchErr == nil {
		snapshot.Libraries = directory.NewTable(libraryLabel, libraryRecords)
	} else {
		log.Error().Err(fetchErr).Msg("failed to fetch libraries, reusing previous table")
		snapshot.Libraries = previousLibraries(previous)
	}

	if facilityRecords, fetchErr := s.sheets.FetchFacilities(ctx); fetchErr == nil {
		snapshot.Facilities = directory.NewTable(facilityLabel, facilityRecords)
	} else {
		log.Error().Err(fetchErr).Msg("failed to fetch facilities, reusing previous table")
		snapshot.Facilities = previousFacilities(previous)
	}

	if resourceRecords, fetchErr := s.sheets.FetchResources(ctx); fetchErr == nil {
		snapshot.Resources = resourceModel.FromRecords(resourceRecords)
	} else {
		log.Error().Err(fetchErr).Msg("failed to fetch resources, reusing previous rows")
		if previous != nil {
			snapshot.Resources = previous.Resources
		}
	}

	s.mu.Lock()
	s.snapshot = snapshot
	s.state = model.RefreshReady
	s.lastUpdated = snapshot.FetchedAt
	s.mu.Unlock()

	log.Info().
		Int("bookings", len(snapshot.Bookings)).
		Int("resources", len(snapshot.Resources)).
		Msg("snapshot refreshed")

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cachePrefix)
		s.publishRefreshEvent(c, snapshot)
	}()

	return nil
}

// StartAutoRefresh schedules periodic refreshes. Calling it again replaces
// the existing schedule instead of stacking a second one.
func (s *serviceImpl) StartAutoRefresh() error {
	interval := s.cfg.Refresh.IntervalSeconds
	if interval <= 0 {
		interval = defaultIntervalSecs
	}

	if s.entryID != 0 {
		s.scheduler.Remove(s.entryID)
		s.entryID = 0
	}

	entryID, err := s.scheduler.AddFunc(fmt.Sprintf("@every %ds", interval), func() {
		ctx, scope := s.otel.NewScope(context.Background(), constant.OtelSchedulerScopeName, constant.OtelSchedulerScopeName+".Refresh")
		defer scope.End()

		if refreshErr := s.Refresh(ctx); refreshErr != nil {
			scope.TraceError(refreshErr)
		}
	})
	if err != nil {
		return fmt.Errorf("failed to schedule refresh: %w", err)
	}

	s.entryID = entryID
	s.scheduler.Start()

	log.Info().Int("interval_seconds", interval).Msg("auto refresh scheduled")

	return nil
}

func (s *serviceImpl) StopAutoRefresh() {
	if s.entryID != 0 {
		s.scheduler.Remove(s.entryID)
		s.entryID = 0
	}

	s.scheduler.Stop()
}

func (s *serviceImpl) GetOverview(ctx context.Context, criteria dto.Criteria) (res dto.OverviewResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetOverview")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheOverview, criteria)
	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	snapshot, err := s.snapshotOrLoad(ctx)
	if err != nil {
		return res, err
	}

	res = engine.Overview(engine.Filter(snapshot.Bookings, criteria, timezone.Now()), snapshot.Libraries)

	s.saveToCache(ctx, cacheKey, res)

	return res, nil
}

func (s *serviceImpl) GetLibraries(ctx context.Context, criteria dto.Criteria) (res dto.LibrariesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetLibraries")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheLibraries, criteria)
	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	snapshot, err := s.snapshotOrLoad(ctx)
	if err != nil {
		return res, err
	}

	res = engine.Libraries(engine.Filter(snapshot.Bookings, criteria, timezone.Now()), snapshot.Libraries, snapshot.Facilities)

	s.saveToCache(ctx, cacheKey, res)

	return res, nil
}

func (s *serviceImpl) GetMonthly(ctx context.Context, criteria dto.Criteria) (res dto.MonthlyResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetMonthly")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheMonthly, criteria)
	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	snapshot, err := s.snapshotOrLoad(ctx)
	if err != nil {
		return res, err
	}

	res = engine.Monthly(engine.Filter(snapshot.Bookings, criteria, timezone.Now()), timezone.Now())

	s.saveToCache(ctx, cacheKey, res)

	return res, nil
}

func (s *serviceImpl) GetAnalytics(ctx context.Context, criteria dto.Criteria) (res dto.AnalyticsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAnalytics")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheAnalytics, criteria)
	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	snapshot, err := s.snapshotOrLoad(ctx)
	if err != nil {
		return res, err
	}

	res = engine.Analytics(engine.Filter(snapshot.Bookings, criteria, timezone.Now()), snapshot.Libraries)

	s.saveToCache(ctx, cacheKey, res)

	return res, nil
}

func (s *serviceImpl) GetUsers(ctx context.Context, criteria dto.Criteria) (res dto.UsersResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetUsers")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheUsers, criteria)
	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	snapshot, err := s.snapshotOrLoad(ctx)
	if err != nil {
		return res, err
	}

	res = engine.Users(engine.Filter(snapshot.Bookings, criteria, timezone.Now()))

	s.saveToCache(ctx, cacheKey, res)

	return res, nil
}

func (s *serviceImpl) GetResources(ctx context.Context, criteria dto.Criteria) (res dto.ResourcesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetResources")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheResources, criteria)
	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	snapshot, err := s.snapshotOrLoad(ctx)
	if err != nil {
		return res, err
	}

	res = engine.Resources(engine.FilterResources(snapshot.Resources, criteria, timezone.Now()))

	s.saveToCache(ctx, cacheKey, res)

	return res, nil
}

func (s *serviceImpl) GetBookings(ctx context.Context, criteria dto.Criteria) (res dto.BookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetBookings")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheBookings, criteria)
	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	snapshot, err := s.snapshotOrLoad(ctx)
	if err != nil {
		return res, err
	}

	res = engine.Bookings(engine.Filter(snapshot.Bookings, criteria, timezone.Now()), snapshot.Libraries, snapshot.Facilities)

	s.saveToCache(ctx, cacheKey, res)

	return res, nil
}

// ExportCSV renders the filtered bookings as CSV and, when archiving is
// enabled, uploads a copy to object storage in the background.
func (s *serviceImpl) ExportCSV(ctx context.Context, criteria dto.Criteria) (content, fileName string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ExportCSV")
	defer scope.End()
	defer scope.TraceIfError(err)

	snapshot, err := s.snapshotOrLoad(ctx)
	if err != nil {
		return constant.Empty, constant.Empty, err
	}

	filtered := engine.Filter(snapshot.Bookings, criteria, timezone.Now())
	content = engine.BuildCSV(filtered, snapshot.Libraries, snapshot.Facilities)
	fileName = fmt.Sprintf("bookings_export_%s.csv", timezone.Now().Format(constant.BookingDateFormat))

	if s.cfg.Archive.S3.Enable {
		go func() {
			c := context.WithoutCancel(ctx)

			directoryName := s.cfg.Archive.S3.Prefix
			if directoryName == "" {
				directoryName = exportDirectory
			}

			if _, uploadErr := s.archive.UploadBytes(c, constant.Empty, directoryName, fileName, constant.ContentTypeCSV, []byte(content)); uploadErr != nil {
				log.Error().Err(uploadErr).Msg("failed to archive CSV export")
			}
		}()
	}

	return content, fileName, nil
}

func (s *serviceImpl) GetStatus(ctx context.Context) dto.StatusResponse {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetStatus")
	defer scope.End()

	s.mu.RLock()
	defer s.mu.RUnlock()

	status := dto.StatusResponse{
		State:       string(s.state),
		LastUpdated: constant.NA,
		UpdatedAgo:  constant.NA,
	}

	if !s.lastUpdated.IsZero() {
		status.LastUpdated = s.lastUpdated.Format(constant.DateFormat)
		status.UpdatedAgo = ageLabel(timezone.Now().Sub(s.lastUpdated))
	}

	if s.snapshot != nil {
		status.Bookings = len(s.snapshot.Bookings)
		status.Resources = len(s.snapshot.Resources)
		status.Libraries = s.snapshot.Libraries.Len()
		status.Facilities = s.snapshot.Facilities.Len()
	}

	return status
}

// snapshotOrLoad returns the current snapshot, performing a synchronous
// refresh when none has been loaded yet.
func (s *serviceImpl) snapshotOrLoad(ctx context.Context) (*model.Snapshot, error) {
	if snapshot := s.currentSnapshot(); snapshot != nil {
		return snapshot, nil
	}

	if err := s.Refresh(ctx); err != nil {
		return nil, err
	}

	snapshot := s.currentSnapshot()
	if snapshot == nil {
		return nil, failure.ConnectionError
	}

	return snapshot, nil
}

func (s *serviceImpl) currentSnapshot() *model.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.snapshot
}

func (s *serviceImpl) setState(state model.RefreshState) {
	s.mu.Lock()
	s.state = state
	s.mu.Unlock()
}

func (s *serviceImpl) saveToCache(ctx context.Context, cacheKey string, value any) {
	go func() {
		c := context.WithoutCancel(ctx)

		if saveErr := s.cache.Save(c, cacheKey, value, s.cfg.Cache.TTL); saveErr != nil {
			log.Error().Err(saveErr).Str("cacheKey", cacheKey).Msg("failed to save report view to cache")
		}
	}()
}

func (s *serviceImpl) publishRefreshEvent(ctx context.Context, snapshot *model.Snapshot) {
	if !s.cfg.Kafka.Enable {
		return
	}

	event := kafka.Message{
		Key: model.EntityName,
		Value: map[string]any{
			"refreshed_at": snapshot.FetchedAt.Format(constant.DateFormat),
			"bookings":     len(snapshot.Bookings),
			"resources":    len(snapshot.Resources),
		},
	}

	if sendErr := s.producer.SendMessages(ctx, s.cfg.Kafka.Topic, event); sendErr != nil {
		log.Error().Err(sendErr).Msg("failed to publish refresh event")
	}
}

func previousLibraries(previous *model.Snapshot) directory.Table {
	if previous != nil {
		return previous.Libraries
	}

	return directory.NewTable(libraryLabel, nil)
}

func previousFacilities(previous *model.Snapshot) directory.Table {
	if previous != nil {
		return previous.Facilities
	}

	return directory.NewTable(facilityLabel, nil)
}

// ageLabel renders a last-updated age the way the dashboard header shows
// it.
func ageLabel(age time.Duration) string {
	seconds := int(age.Seconds())

	switch {
	case seconds < 60:
		return "Just now"
	case seconds < 3600:
		return fmt.Sprintf("%d minute(s) ago", seconds/60)
	default:
		return fmt.Sprintf("%d hour(s) ago", seconds/3600)
	}
}
