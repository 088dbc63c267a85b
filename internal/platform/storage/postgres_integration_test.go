package storage_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pricebeacon/monitor/internal/platform"
	"github.com/pricebeacon/monitor/internal/platform/models"
	"github.com/pricebeacon/monitor/internal/platform/models/modelstesting"
	"github.com/pricebeacon/monitor/internal/platform/storage"
	pgmodels "github.com/pricebeacon/monitor/internal/platform/storage/gen/postgres/public/model"
	"github.com/pricebeacon/monitor/internal/platform/storage/storagetesting"
	_ "github.com/lib/pq"
	"github.com/samber/lo"
	"github.com/stretchr/testify/suite"
)

const testScanInterval = time.Hour

func TestPostgresIntegration(t *testing.T) {
	suite.Run(t, new(PostgresTestSuite))
}

type PostgresTestSuite struct {
	suite.Suite
	DB *sql.DB
}

func (s *PostgresTestSuite) SetupSuite() {
	s.DB = storagetesting.Open(s.T())
	storagetesting.CleanupData(s.T(), s.DB)
}

func (s *PostgresTestSuite) TearDownSuite() {
	storagetesting.CleanupData(s.T(), s.DB)
	if err := s.DB.Close(); err != nil {
		s.FailNow("close DB", err)
	}
}

func (s *PostgresTestSuite) TestIntegrationGetURL() {
	defer storagetesting.CleanupData(s.T(), s.DB)

	url := modelstesting.FakeTrackedURL(func(u *models.TrackedURL) {
		u.PriceHistory = []models.Observation{
			modelstesting.FakeObservation(func(o *models.Observation) {
				o.ObservedAt = time.Now().UTC().Truncate(time.Second).Add(-48 * time.Hour)
				o.Price = 120
			}),
			modelstesting.FakeObservation(func(o *models.Observation) {
				o.ObservedAt = time.Now().UTC().Truncate(time.Second).Add(-24 * time.Hour)
				o.Price = 100
			}),
		}
	})
	insertURLWithHistory(s.T(), s.DB, url)

	p := storage.NewPostgres(s.DB, testScanInterval)

	got, err := p.GetURL(context.Background(), url.ID)
	s.NoError(err)
	s.Equal(url, *normalizeURL(got))

	_, err = p.GetURL(context.Background(), uuid.NewString())
	s.ErrorIs(err, platform.ErrURLNotFound)
}

func (s *PostgresTestSuite) TestIntegrationUpdateURL() {
	defer storagetesting.CleanupData(s.T(), s.DB)

	observedAt := time.Now().UTC().Truncate(time.Second)
	url := modelstesting.FakeTrackedURL(func(u *models.TrackedURL) {
		u.LastPrice = 100
		u.PriceHistory = []models.Observation{
			modelstesting.FakeObservation(func(o *models.Observation) {
				o.ObservedAt = observedAt.Add(-24 * time.Hour)
				o.Price = 100
			}),
		}
	})
	insertURLWithHistory(s.T(), s.DB, url)

	updated := url
	updated.LastPrice = 75
	updated.WasPrice = lo.ToPtr(100.0)
	updated.PriceChange = lo.ToPtr(-25.0)
	updated.LastSeenAt = observedAt
	updated.PriceHistory = append([]models.Observation{}, url.PriceHistory...)
	updated.PriceHistory = append(updated.PriceHistory, models.Observation{
		ObservedAt: observedAt,
		Price:      75,
		StockState: models.StockInStock,
	})

	p := storage.NewPostgres(s.DB, testScanInterval)

	s.NoError(p.UpdateURL(context.Background(), updated))

	got, err := p.GetURL(context.Background(), url.ID)
	s.NoError(err)
	s.Equal(updated, *normalizeURL(got))

	// updating again with the same history must not duplicate observations
	s.NoError(p.UpdateURL(context.Background(), updated))

	observations := storagetesting.GetObservationsByURLID(s.T(), s.DB, url.ID)
	s.Len(observations, 2)

	missing := modelstesting.FakeTrackedURL()
	s.ErrorIs(p.UpdateURL(context.Background(), missing), platform.ErrURLNotFound)
}

func (s *PostgresTestSuite) TestIntegrationListDueURLs() {
	defer storagetesting.CleanupData(s.T(), s.DB)

	now := time.Now().UTC().Truncate(time.Second)

	pending := modelstesting.FakeTrackedURL(func(u *models.TrackedURL) {
		u.Status = models.StatusPending
		u.PriceHistory = nil
	})
	stale := modelstesting.FakeTrackedURL(func(u *models.TrackedURL) {
		u.LastSeenAt = now.Add(-2 * testScanInterval)
		u.PriceHistory = nil
	})
	fresh := modelstesting.FakeTrackedURL(func(u *models.TrackedURL) {
		u.LastSeenAt = now.Add(-time.Minute)
		u.PriceHistory = nil
	})
	paused := modelstesting.FakeTrackedURL(func(u *models.TrackedURL) {
		u.LastSeenAt = now.Add(-2 * testScanInterval)
		u.Paused = true
		u.PriceHistory = nil
	})
	insertURLWithHistory(s.T(), s.DB, pending)
	insertURLWithHistory(s.T(), s.DB, stale)
	insertURLWithHistory(s.T(), s.DB, fresh)
	insertURLWithHistory(s.T(), s.DB, paused)

	p := storage.NewPostgres(s.DB, testScanInterval)

	got, err := p.ListDueURLs(context.Background(), now)
	s.NoError(err)

	ids := lo.Map(got, func(url models.TrackedURL, _ int) string {
		return url.ID
	})
	s.ElementsMatch([]string{pending.ID, stale.ID}, ids)
}

func (s *PostgresTestSuite) TestIntegrationImportURLs() {
	defer storagetesting.CleanupData(s.T(), s.DB)

	projectID := uuid.NewString()
	urls := []string{
		"https://shop.example.com/products/widget",
		"https://shop.example.com/products/gadget",
	}

	p := storage.NewPostgres(s.DB, testScanInterval)

	imported, err := p.ImportURLs(context.Background(), projectID, urls)
	s.NoError(err)
	s.Len(imported, 2)

	for ix := range imported {
		s.Equal(projectID, imported[ix].ProjectID)
		s.Equal(urls[ix], imported[ix].URL)
		s.Equal("New Imported URL", imported[ix].Title)
		s.Equal("?", imported[ix].Currency)
		s.Zero(imported[ix].LastPrice)
		s.Equal(models.StockUnknown, imported[ix].StockState)
		s.Equal(models.StatusPending, imported[ix].Status)
	}

	stored := storagetesting.GetTrackedURLsByProjectID(s.T(), s.DB, projectID)
	s.Len(stored, 2)

	// imported urls are immediately due for their first scan
	due, err := p.ListDueURLs(context.Background(), time.Now().UTC())
	s.NoError(err)
	s.Len(due, 2)
}

func (s *PostgresTestSuite) TestIntegrationSetPaused() {
	defer storagetesting.CleanupData(s.T(), s.DB)

	url := modelstesting.FakeTrackedURL(func(u *models.TrackedURL) {
		u.PriceHistory = nil
	})
	insertURLWithHistory(s.T(), s.DB, url)

	p := storage.NewPostgres(s.DB, testScanInterval)

	s.NoError(p.SetPaused(context.Background(), url.ID, true))
	s.True(storagetesting.GetTrackedURL(s.T(), s.DB, url.ID).Paused)

	s.NoError(p.SetPaused(context.Background(), url.ID, false))
	s.False(storagetesting.GetTrackedURL(s.T(), s.DB, url.ID).Paused)

	s.ErrorIs(p.SetPaused(context.Background(), uuid.NewString(), true), platform.ErrURLNotFound)
}

func (s *PostgresTestSuite) TestIntegrationListProjects() {
	defer storagetesting.CleanupData(s.T(), s.DB)

	active := pgmodels.Project{
		ID:        uuid.NewString(),
		Name:      "Acme Widgets",
		Domain:    "acme.example.com",
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
	deleted := pgmodels.Project{
		ID:        uuid.NewString(),
		Name:      "Old Shop",
		Domain:    "old.example.com",
		CreatedAt: time.Now().UTC().Truncate(time.Second),
		DeletedAt: lo.ToPtr(time.Now().UTC().Truncate(time.Second)),
	}
	storagetesting.InsertProjects(s.T(), s.DB, active, deleted)

	p := storage.NewPostgres(s.DB, testScanInterval)

	got, err := p.ListProjects(context.Background())
	s.NoError(err)
	s.Len(got, 1)
	s.Equal(active.ID, got[0].ID)
	s.Equal(active.Name, got[0].Name)
	s.Equal(active.Domain, got[0].Domain)
}

func (s *PostgresTestSuite) TestIntegrationListProjectURLs() {
	defer storagetesting.CleanupData(s.T(), s.DB)

	projectID := uuid.NewString()
	first := modelstesting.FakeTrackedURL(func(u *models.TrackedURL) {
		u.ProjectID = projectID
		u.PriceHistory = []models.Observation{
			modelstesting.FakeObservation(func(o *models.Observation) {
				o.ObservedAt = time.Now().UTC().Truncate(time.Second).Add(-24 * time.Hour)
			}),
		}
	})
	second := modelstesting.FakeTrackedURL(func(u *models.TrackedURL) {
		u.ProjectID = projectID
		u.PriceHistory = nil
	})
	other := modelstesting.FakeTrackedURL()
	insertURLWithHistory(s.T(), s.DB, first)
	insertURLWithHistory(s.T(), s.DB, second)
	insertURLWithHistory(s.T(), s.DB, other)

	p := storage.NewPostgres(s.DB, testScanInterval)

	got, err := p.ListProjectURLs(context.Background(), projectID)
	s.NoError(err)
	s.Len(got, 2)

	byID := lo.KeyBy(got, func(url models.TrackedURL) string {
		return url.ID
	})
	s.Contains(byID, first.ID)
	s.Contains(byID, second.ID)

	gotFirst := byID[first.ID]
	s.Equal(first, *normalizeURL(&gotFirst))
}

// insertURLWithHistory stores url and its observations bypassing the storage under test.
func insertURLWithHistory(t *testing.T, db *sql.DB, url models.TrackedURL) {
	t.Helper()

	storagetesting.InsertTrackedURLs(t, db, pgmodels.TrackedURL{
		ID:              url.ID,
		ProjectID:       url.ProjectID,
		URL:             url.URL,
		Title:           url.Title,
		Currency:        url.Currency,
		LastPrice:       url.LastPrice,
		WasPrice:        url.WasPrice,
		PriceChange:     url.PriceChange,
		StockState:      string(url.StockState),
		Status:          string(url.Status),
		ParseConfidence: url.ParseConfidence,
		ThumbnailURL:    url.ThumbnailURL,
		HTTPStatus:      dbHTTPStatus(url.HTTPStatus),
		LastSeenAt:      url.LastSeenAt,
		Paused:          url.Paused,
	})

	for ix := range url.PriceHistory {
		storagetesting.InsertObservations(t, db, pgmodels.Observation{
			URLID:      url.ID,
			ObservedAt: url.PriceHistory[ix].ObservedAt,
			Price:      url.PriceHistory[ix].Price,
			StockState: string(url.PriceHistory[ix].StockState),
		})
	}
}

// normalizeURL converts times back to UTC so urls read from database
// can be compared with expected values.
func normalizeURL(url *models.TrackedURL) *models.TrackedURL {
	url.LastSeenAt = url.LastSeenAt.UTC()
	for ix := range url.PriceHistory {
		url.PriceHistory[ix].ObservedAt = url.PriceHistory[ix].ObservedAt.UTC()
	}

	return url
}

func dbHTTPStatus(status *int) *int32 {
	if status == nil {
		return nil
	}

	return lo.ToPtr(int32(*status))
}
