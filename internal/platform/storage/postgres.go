package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pricebeacon/monitor/internal/platform"
	"github.com/pricebeacon/monitor/internal/platform/models"
	"github.com/pricebeacon/monitor/internal/platform/storage/gen/postgres/public/table"
	"github.com/samber/lo"

	pgmodels "github.com/pricebeacon/monitor/internal/platform/storage/gen/postgres/public/model"
	pg "github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
)

// Postgres is storage for projects, tracked urls and price observations.
type Postgres struct {
	db           *sql.DB
	scanInterval time.Duration
}

// NewPostgres returns new Postgres. Urls whose last scan is older than
// scanInterval are considered due for a rescan.
func NewPostgres(db *sql.DB, scanInterval time.Duration) Postgres {
	return Postgres{
		db:           db,
		scanInterval: scanInterval,
	}
}

// GetURL returns tracked url by its id together with its full price history.
// It returns ErrURLNotFound if the url doesn't exist.
func (p Postgres) GetURL(ctx context.Context, urlID string) (*models.TrackedURL, error) {
	var dbURL pgmodels.TrackedURL
	err := table.TrackedURL.SELECT(table.TrackedURL.AllColumns).
		WHERE(table.TrackedURL.ID.EQ(pg.String(urlID))).
		QueryContext(ctx, p.db, &dbURL)

	if errors.Is(err, qrm.ErrNoRows) {
		return nil, platform.ErrURLNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("can't get tracked url from database: %w", err)
	}

	history, err := getObservations(ctx, p.db, urlID)
	if err != nil {
		return nil, fmt.Errorf("can't get url observations from database: %w", err)
	}

	return toAppTrackedURL(&dbURL, history), nil
}

// UpdateURL updates tracked url and appends new price history entries.
// Only observations beyond the already stored history are inserted.
// It returns ErrURLNotFound if the url doesn't exist.
func (p Postgres) UpdateURL(ctx context.Context, url models.TrackedURL) error {
	err := runInTransaction(ctx, p.db, func(tx *sql.Tx) error {
		columnList := table.TrackedURL.AllColumns.Except(
			table.TrackedURL.ID,
			table.TrackedURL.ProjectID,
			table.TrackedURL.URL,
			table.TrackedURL.Paused,
			table.TrackedURL.CreatedAt,
		)

		result, err := table.TrackedURL.UPDATE(columnList).
			MODEL(toDBTrackedURL(&url)).
			WHERE(table.TrackedURL.ID.EQ(pg.String(url.ID))).
			ExecContext(ctx, tx)
		if err != nil {
			return fmt.Errorf("can't update tracked url: %w", err)
		}

		rowsAffected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("can't update tracked url: %w", err)
		}
		if rowsAffected == 0 {
			return platform.ErrURLNotFound
		}

		stored, err := countObservations(ctx, tx, url.ID)
		if err != nil {
			return fmt.Errorf("can't count url observations: %w", err)
		}

		if stored >= int64(len(url.PriceHistory)) {
			return nil
		}

		return insertObservations(ctx, tx, url.ID, url.PriceHistory[stored:])
	})
	if err != nil {
		return err
	}

	return nil
}

// ListDueURLs returns urls which should be scanned: unpaused urls which were
// never scanned or whose last scan is older than the scan interval.
func (p Postgres) ListDueURLs(ctx context.Context, now time.Time) ([]models.TrackedURL, error) {
	var dbURLs []pgmodels.TrackedURL
	err := table.TrackedURL.SELECT(table.TrackedURL.AllColumns).
		WHERE(pg.AND(
			table.TrackedURL.Paused.IS_FALSE(),
			pg.OR(
				table.TrackedURL.Status.EQ(pg.String(string(models.StatusPending))),
				table.TrackedURL.LastSeenAt.LT_EQ(pg.TimestampzT(now.Add(-p.scanInterval))),
			),
		)).
		ORDER_BY(table.TrackedURL.LastSeenAt.ASC()).
		QueryContext(ctx, p.db, &dbURLs)

	if err != nil && !errors.Is(err, qrm.ErrNoRows) {
		return nil, fmt.Errorf("can't get due urls from database: %w", err)
	}

	urls := make([]models.TrackedURL, 0, len(dbURLs))
	for ix := range dbURLs {
		urls = append(urls, *toAppTrackedURL(&dbURLs[ix], nil))
	}

	return urls, nil
}

// ImportURLs adds new tracked urls to the project and returns them.
// Imported urls start unscanned, waiting for their first scan.
func (p Postgres) ImportURLs(ctx context.Context, projectID string, urls []string) ([]models.TrackedURL, error) {
	if len(urls) == 0 {
		return nil, nil
	}

	imported := lo.Map(urls, func(url string, _ int) models.TrackedURL {
		return models.TrackedURL{
			ID:         uuid.NewString(),
			ProjectID:  projectID,
			URL:        url,
			Title:      "New Imported URL",
			Currency:   "?",
			LastPrice:  0,
			StockState: models.StockUnknown,
			Status:     models.StatusPending,
		}
	})

	dbURLs := make([]pgmodels.TrackedURL, 0, len(imported))
	for ix := range imported {
		dbURLs = append(dbURLs, *toDBTrackedURL(&imported[ix]))
	}

	_, err := table.TrackedURL.INSERT(table.TrackedURL.AllColumns.Except(table.TrackedURL.CreatedAt)).
		MODELS(dbURLs).
		ExecContext(ctx, p.db)
	if err != nil {
		return nil, fmt.Errorf("can't insert tracked urls into database: %w", err)
	}

	return imported, nil
}

// SetPaused pauses or resumes scanning of the url.
// It returns ErrURLNotFound if the url doesn't exist.
func (p Postgres) SetPaused(ctx context.Context, urlID string, paused bool) error {
	result, err := table.TrackedURL.UPDATE(table.TrackedURL.Paused).
		SET(pg.Bool(paused)).
		WHERE(table.TrackedURL.ID.EQ(pg.String(urlID))).
		ExecContext(ctx, p.db)
	if err != nil {
		return fmt.Errorf("can't update tracked url: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("can't update tracked url: %w", err)
	}
	if rowsAffected == 0 {
		return platform.ErrURLNotFound
	}

	return nil
}

// ListProjects returns all projects which weren't deleted.
func (p Postgres) ListProjects(ctx context.Context) ([]models.Project, error) {
	var dbProjects []pgmodels.Project
	err := table.Project.SELECT(table.Project.AllColumns).
		WHERE(table.Project.DeletedAt.IS_NULL()).
		ORDER_BY(table.Project.CreatedAt.ASC()).
		QueryContext(ctx, p.db, &dbProjects)

	if err != nil && !errors.Is(err, qrm.ErrNoRows) {
		return nil, fmt.Errorf("can't get projects from database: %w", err)
	}

	projects := make([]models.Project, 0, len(dbProjects))
	for ix := range dbProjects {
		projects = append(projects, *toAppProject(&dbProjects[ix]))
	}

	return projects, nil
}

// ListProjectURLs returns all tracked urls of the project with their price histories.
func (p Postgres) ListProjectURLs(ctx context.Context, projectID string) ([]models.TrackedURL, error) {
	var dbURLs []pgmodels.TrackedURL
	err := table.TrackedURL.SELECT(table.TrackedURL.AllColumns).
		WHERE(table.TrackedURL.ProjectID.EQ(pg.String(projectID))).
		ORDER_BY(table.TrackedURL.CreatedAt.ASC()).
		QueryContext(ctx, p.db, &dbURLs)

	if err != nil && !errors.Is(err, qrm.ErrNoRows) {
		return nil, fmt.Errorf("can't get project urls from database: %w", err)
	}

	if len(dbURLs) == 0 {
		return nil, nil
	}

	histories, err := getProjectObservations(ctx, p.db, projectID)
	if err != nil {
		return nil, fmt.Errorf("can't get project observations from database: %w", err)
	}

	urls := make([]models.TrackedURL, 0, len(dbURLs))
	for ix := range dbURLs {
		urls = append(urls, *toAppTrackedURL(&dbURLs[ix], histories[dbURLs[ix].ID]))
	}

	return urls, nil
}

func getObservations(ctx context.Context, db qrm.DB, urlID string) ([]pgmodels.Observation, error) {
	var observations []pgmodels.Observation
	err := table.Observation.SELECT(table.Observation.AllColumns).
		WHERE(table.Observation.URLID.EQ(pg.String(urlID))).
		ORDER_BY(table.Observation.ObservedAt.ASC(), table.Observation.ID.ASC()).
		QueryContext(ctx, db, &observations)

	if err != nil && !errors.Is(err, qrm.ErrNoRows) {
		return nil, err
	}

	return observations, nil
}

func getProjectObservations(ctx context.Context, db qrm.DB, projectID string) (map[string][]pgmodels.Observation, error) {
	var observations []pgmodels.Observation
	err := table.Observation.SELECT(table.Observation.AllColumns).
		FROM(table.Observation.INNER_JOIN(
			table.TrackedURL,
			table.Observation.URLID.EQ(table.TrackedURL.ID),
		)).
		WHERE(table.TrackedURL.ProjectID.EQ(pg.String(projectID))).
		ORDER_BY(table.Observation.ObservedAt.ASC(), table.Observation.ID.ASC()).
		QueryContext(ctx, db, &observations)

	if err != nil && !errors.Is(err, qrm.ErrNoRows) {
		return nil, err
	}

	return lo.GroupBy(observations, func(observation pgmodels.Observation) string {
		return observation.URLID
	}), nil
}

func countObservations(ctx context.Context, db qrm.DB, urlID string) (int64, error) {
	var dest struct {
		Count int64
	}
	err := table.Observation.SELECT(pg.COUNT(table.Observation.ID).AS("count")).
		WHERE(table.Observation.URLID.EQ(pg.String(urlID))).
		QueryContext(ctx, db, &dest)
	if err != nil {
		return 0, err
	}

	return dest.Count, nil
}

func insertObservations(ctx context.Context, db qrm.DB, urlID string, observations []models.Observation) error {
	dbObservations := make([]pgmodels.Observation, 0, len(observations))
	for ix := range observations {
		dbObservations = append(dbObservations, *toDBObservation(urlID, &observations[ix]))
	}

	_, err := table.Observation.INSERT(table.Observation.AllColumns.Except(table.Observation.ID)).
		MODELS(dbObservations).
		ExecContext(ctx, db)
	if err != nil {
		return fmt.Errorf("can't insert url observations into database: %w", err)
	}

	return nil
}

func runInTransaction(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) error {
	var (
		tx  *sql.Tx
		err error
	)

	if tx, err = db.BeginTx(ctx, nil); err != nil {
		return fmt.Errorf("can't begin transaction: %w", err)
	}

	if err = fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("can't rollback transaction: %w (rollback reason: %w)", rbErr, err)
		}
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("can't commit transaction: %w", err)
	}

	return nil
}
