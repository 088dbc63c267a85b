package storagetesting

import (
	"database/sql"
	"os"
	"testing"

	pgmodels "github.com/pricebeacon/monitor/internal/platform/storage/gen/postgres/public/model"
	"github.com/pricebeacon/monitor/internal/platform/storage/gen/postgres/public/table"
	pg "github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"

	_ "github.com/lib/pq"
)

// Open opens connection to DB.
func Open(t *testing.T) *sql.DB {
	t.Helper()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		t.Fatal("please provide database URL via DATABASE_URL environment variable")
	}

	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		t.Fatalf("can't open connection to %q: %s", dbURL, err)
	}

	return db
}

// BeginTx begins DB transaction. Returns function to roll it back.
func BeginTx(t *testing.T, db *sql.DB) (*sql.Tx, func()) {
	t.Helper()

	tx, err := db.Begin()
	if err != nil {
		t.Fatal("begin transaction", err)
	}

	rollback := func() {
		if err := tx.Rollback(); err != nil {
			t.Fatal("can't rollback transaction", err)
		}
	}

	return tx, rollback
}

// InsertProjects is a helper test function to insert projects.
func InsertProjects(t *testing.T, exc qrm.Executable, projects ...pgmodels.Project) {
	t.Helper()

	if len(projects) == 0 {
		return
	}

	toInsert := make([]pgmodels.Project, 0, len(projects))
	toInsert = append(toInsert, projects...)

	_, err := table.Project.INSERT(table.Project.AllColumns).MODELS(toInsert).Exec(exc)
	if err != nil {
		t.Fatal("can't insert projects", err)
	}
}

// InsertTrackedURLs is a helper test function to insert tracked urls.
func InsertTrackedURLs(t *testing.T, exc qrm.Executable, urls ...pgmodels.TrackedURL) {
	t.Helper()

	if len(urls) == 0 {
		return
	}

	toInsert := make([]pgmodels.TrackedURL, 0, len(urls))
	toInsert = append(toInsert, urls...)

	_, err := table.TrackedURL.INSERT(table.TrackedURL.AllColumns).MODELS(toInsert).Exec(exc)
	if err != nil {
		t.Fatal("can't insert tracked urls", err)
	}
}

// InsertObservations is a helper test function to insert observations.
func InsertObservations(t *testing.T, exc qrm.Executable, observations ...pgmodels.Observation) {
	t.Helper()

	if len(observations) == 0 {
		return
	}

	toInsert := make([]pgmodels.Observation, 0, len(observations))
	toInsert = append(toInsert, observations...)

	_, err := table.Observation.INSERT(table.Observation.AllColumns.Except(table.Observation.ID)).
		MODELS(toInsert).Exec(exc)
	if err != nil {
		t.Fatal("can't insert observations", err)
	}
}

// GetTrackedURL is a helper test function to get tracked url by its ID.
func GetTrackedURL(t *testing.T, queryable qrm.Queryable, urlID string) *pgmodels.TrackedURL {
	t.Helper()

	var url pgmodels.TrackedURL
	err := table.TrackedURL.SELECT(table.TrackedURL.AllColumns).
		WHERE(table.TrackedURL.ID.EQ(pg.String(urlID))).
		Query(queryable, &url)
	if err != nil {
		t.Fatal("can't get tracked url", err)
	}

	return &url
}

// GetTrackedURLsByProjectID is a helper test function to get project's tracked urls.
func GetTrackedURLsByProjectID(t *testing.T, queryable qrm.Queryable, projectID string) []pgmodels.TrackedURL {
	t.Helper()

	urls := []pgmodels.TrackedURL{}
	err := table.TrackedURL.SELECT(table.TrackedURL.AllColumns).
		WHERE(table.TrackedURL.ProjectID.EQ(pg.String(projectID))).
		Query(queryable, &urls)
	if err != nil {
		t.Fatal("can't get tracked urls", err)
	}

	return urls
}

// GetObservationsByURLID is a helper test function to get url's observations.
func GetObservationsByURLID(t *testing.T, queryable qrm.Queryable, urlID string) []pgmodels.Observation {
	t.Helper()

	observations := []pgmodels.Observation{}
	err := table.Observation.SELECT(table.Observation.AllColumns).
		WHERE(table.Observation.URLID.EQ(pg.String(urlID))).
		ORDER_BY(table.Observation.ObservedAt.ASC(), table.Observation.ID.ASC()).
		Query(queryable, &observations)
	if err != nil {
		t.Fatal("can't get observations", err)
	}

	return observations
}

// CleanupData is a helper test function to delete all test data.
func CleanupData(t *testing.T, exc qrm.Executable) {
	t.Helper()

	_, err := table.Observation.DELETE().WHERE(table.Observation.ID.IS_NOT_NULL()).Exec(exc)
	if err != nil {
		t.Fatal("can't delete observations data", err)
	}

	_, err = table.TrackedURL.DELETE().WHERE(table.TrackedURL.ID.IS_NOT_NULL()).Exec(exc)
	if err != nil {
		t.Fatal("can't delete tracked urls data", err)
	}

	_, err = table.Project.DELETE().WHERE(table.Project.ID.IS_NOT_NULL()).Exec(exc)
	if err != nil {
		t.Fatal("can't delete projects data", err)
	}
}
