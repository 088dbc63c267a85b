package api_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/pricebeacon/monitor/internal/api"
	"github.com/pricebeacon/monitor/internal/api/mocks"
	"github.com/pricebeacon/monitor/internal/monitoring"
	"github.com/pricebeacon/monitor/internal/platform"
	"github.com/pricebeacon/monitor/internal/platform/models"
	"github.com/pricebeacon/monitor/internal/platform/models/modelstesting"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	prober    *mocks.Prober
	scheduler *mocks.Scheduler
	storage   *mocks.Storage
	handler   http.Handler
}

func newTestServer(t *testing.T) testServer {
	t.Helper()

	logger := zerolog.Nop()
	registry := prometheus.NewRegistry()
	metrics := monitoring.NewMetrics(registry)

	srv := testServer{
		prober:    mocks.NewProber(t),
		scheduler: mocks.NewScheduler(t),
		storage:   mocks.NewStorage(t),
	}
	srv.handler = api.NewServer(
		":0",
		srv.prober,
		srv.scheduler,
		srv.storage,
		registry,
		metrics,
		&logger,
	).Handler()

	return srv
}

func (srv testServer) do(t *testing.T, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	rec := httptest.NewRecorder()
	srv.handler.ServeHTTP(rec, req)

	return rec
}

func TestUnitScanURL(t *testing.T) {
	pageURL := "https://shop.example.com/products/widget"
	info := modelstesting.FakeProductInfo(func(p *models.ExtractedProductInfo) {
		p.Title = "Super Widget"
		p.Price = 19.99
	})

	tests := map[string]struct {
		body        string
		probeResult *models.ScanResult
		probeError  error
		wantStatus  int
		wantBody    string
	}{
		"successful scan": {
			body:        fmt.Sprintf(`{"url":%q}`, pageURL),
			probeResult: &models.ScanResult{Success: true, Data: &info},
			wantStatus:  http.StatusOK,
			wantBody:    `"success":true`,
		},
		"failed scan reported inside result": {
			body:        fmt.Sprintf(`{"url":%q}`, pageURL),
			probeResult: &models.ScanResult{Success: false, Error: "can't fetch page"},
			wantStatus:  http.StatusOK,
			wantBody:    `"success":false`,
		},
		"missing url": {
			body:       `{}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   "URL is required",
		},
		"malformed body": {
			body:       `{"url":`,
			wantStatus: http.StatusBadRequest,
			wantBody:   "URL is required",
		},
		"invalid url": {
			body:       `{"url":"not a url"}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   "invalid URL",
		},
		"internal fault": {
			body:       fmt.Sprintf(`{"url":%q}`, pageURL),
			probeError: assert.AnError,
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"success":false`,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			srv := newTestServer(t)
			if tt.probeResult != nil {
				srv.prober.On("Probe", mock.Anything, pageURL).Return(*tt.probeResult, nil)
			}
			if tt.probeError != nil {
				srv.prober.On("Probe", mock.Anything, pageURL).Return(models.ScanResult{}, tt.probeError)
			}

			rec := srv.do(t, http.MethodPost, "/api/scan-url", tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code, "should return correct status code")
			assert.Contains(t, rec.Body.String(), tt.wantBody, "should return correct body")
		})
	}
}

func TestUnitScanNow(t *testing.T) {
	tests := map[string]struct {
		triggerError error
		wantStatus   int
	}{
		"scan started": {
			wantStatus: http.StatusAccepted,
		},
		"cooldown active": {
			triggerError: platform.ErrCooldownActive,
			wantStatus:   http.StatusTooManyRequests,
		},
		"internal fault": {
			triggerError: assert.AnError,
			wantStatus:   http.StatusInternalServerError,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			srv := newTestServer(t)
			srv.scheduler.On("TriggerScanAsync", mock.Anything).Return(tt.triggerError)

			rec := srv.do(t, http.MethodPost, "/api/scan-now", "")

			assert.Equal(t, tt.wantStatus, rec.Code, "should return correct status code")
		})
	}
}

func TestUnitScanTrackedURL(t *testing.T) {
	tracked := modelstesting.FakeTrackedURL()

	t.Run("ok", func(t *testing.T) {
		srv := newTestServer(t)
		srv.storage.On("GetURL", mock.Anything, tracked.ID).Return(&tracked, nil)
		srv.scheduler.On("ScanNow", mock.Anything, tracked.ID, tracked.URL).
			Return(models.ScanResult{Success: true}, nil)

		rec := srv.do(t, http.MethodPost, "/api/urls/"+tracked.ID+"/scan", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"success":true`)
	})

	t.Run("url not found", func(t *testing.T) {
		srv := newTestServer(t)
		urlID := uuid.NewString()
		srv.storage.On("GetURL", mock.Anything, urlID).Return(nil, platform.ErrURLNotFound)

		rec := srv.do(t, http.MethodPost, "/api/urls/"+urlID+"/scan", "")

		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("scan fault", func(t *testing.T) {
		srv := newTestServer(t)
		srv.storage.On("GetURL", mock.Anything, tracked.ID).Return(&tracked, nil)
		srv.scheduler.On("ScanNow", mock.Anything, tracked.ID, tracked.URL).
			Return(models.ScanResult{}, assert.AnError)

		rec := srv.do(t, http.MethodPost, "/api/urls/"+tracked.ID+"/scan", "")

		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestUnitImportURLs(t *testing.T) {
	projectID := uuid.NewString()
	urls := []string{
		"https://shop.example.com/products/widget",
		"https://shop.example.com/products/gadget",
	}

	t.Run("imported", func(t *testing.T) {
		srv := newTestServer(t)
		imported := lo.Map(urls, func(url string, _ int) models.TrackedURL {
			return modelstesting.FakeTrackedURL(func(u *models.TrackedURL) {
				u.ProjectID = projectID
				u.URL = url
				u.Status = models.StatusPending
			})
		})
		srv.storage.On("ImportURLs", mock.Anything, projectID, urls).Return(imported, nil)

		body := fmt.Sprintf(`{"projectId":%q,"urls":[%q,%q]}`, projectID, urls[0], urls[1])
		rec := srv.do(t, http.MethodPost, "/api/urls", body)

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), urls[0])
		assert.Contains(t, rec.Body.String(), urls[1])
	})

	t.Run("invalid body", func(t *testing.T) {
		srv := newTestServer(t)

		rec := srv.do(t, http.MethodPost, "/api/urls", `{"urls":[]}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("storage fault", func(t *testing.T) {
		srv := newTestServer(t)
		srv.storage.On("ImportURLs", mock.Anything, projectID, urls).Return(nil, assert.AnError)

		body := fmt.Sprintf(`{"projectId":%q,"urls":[%q,%q]}`, projectID, urls[0], urls[1])
		rec := srv.do(t, http.MethodPost, "/api/urls", body)

		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestUnitSetPaused(t *testing.T) {
	urlID := uuid.NewString()

	tests := map[string]struct {
		body         string
		storageError error
		wantPaused   *bool
		wantStatus   int
	}{
		"paused": {
			body:       `{"paused":true}`,
			wantPaused: lo.ToPtr(true),
			wantStatus: http.StatusNoContent,
		},
		"resumed": {
			body:       `{"paused":false}`,
			wantPaused: lo.ToPtr(false),
			wantStatus: http.StatusNoContent,
		},
		"url not found": {
			body:         `{"paused":true}`,
			storageError: platform.ErrURLNotFound,
			wantPaused:   lo.ToPtr(true),
			wantStatus:   http.StatusNotFound,
		},
		"invalid body": {
			body:       `{"paused":`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			srv := newTestServer(t)
			if tt.wantPaused != nil {
				srv.storage.On("SetPaused", mock.Anything, urlID, *tt.wantPaused).Return(tt.storageError)
			}

			rec := srv.do(t, http.MethodPut, "/api/urls/"+urlID+"/pause", tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code, "should return correct status code")
		})
	}
}

func TestUnitListProjects(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		srv := newTestServer(t)
		projects := []models.Project{
			{ID: uuid.NewString(), Name: "Acme Widgets", Domain: "acme.example.com"},
		}
		srv.storage.On("ListProjects", mock.Anything).Return(projects, nil)

		rec := srv.do(t, http.MethodGet, "/api/projects", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Acme Widgets")
	})

	t.Run("no projects is an empty list", func(t *testing.T) {
		srv := newTestServer(t)
		srv.storage.On("ListProjects", mock.Anything).Return(nil, nil)

		rec := srv.do(t, http.MethodGet, "/api/projects", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())
	})

	t.Run("storage fault", func(t *testing.T) {
		srv := newTestServer(t)
		srv.storage.On("ListProjects", mock.Anything).Return(nil, assert.AnError)

		rec := srv.do(t, http.MethodGet, "/api/projects", "")

		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestUnitListProjectURLs(t *testing.T) {
	projectID := uuid.NewString()

	t.Run("ok", func(t *testing.T) {
		srv := newTestServer(t)
		urls := []models.TrackedURL{
			modelstesting.FakeTrackedURL(func(u *models.TrackedURL) {
				u.ProjectID = projectID
			}),
		}
		srv.storage.On("ListProjectURLs", mock.Anything, projectID).Return(urls, nil)

		rec := srv.do(t, http.MethodGet, "/api/projects/"+projectID+"/urls", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), urls[0].ID)
	})

	t.Run("no urls is an empty list", func(t *testing.T) {
		srv := newTestServer(t)
		srv.storage.On("ListProjectURLs", mock.Anything, projectID).Return(nil, nil)

		rec := srv.do(t, http.MethodGet, "/api/projects/"+projectID+"/urls", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())
	})
}

func TestUnitMetricsEndpoint(t *testing.T) {
	srv := newTestServer(t)

	rec := srv.do(t, http.MethodGet, "/metrics", "")

	require.Equal(t, http.StatusOK, rec.Code)
}
