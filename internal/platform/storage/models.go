package storage

import (
	"github.com/pricebeacon/monitor/internal/platform/models"
	"github.com/samber/lo"

	pgmodels "github.com/pricebeacon/monitor/internal/platform/storage/gen/postgres/public/model"
)

func toDBTrackedURL(url *models.TrackedURL) *pgmodels.TrackedURL {
	return &pgmodels.TrackedURL{
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
		HTTPStatus:      toDBHTTPStatus(url.HTTPStatus),
		LastSeenAt:      url.LastSeenAt,
		Paused:          url.Paused,
	}
}

func toAppTrackedURL(dbURL *pgmodels.TrackedURL, history []pgmodels.Observation) *models.TrackedURL {
	return &models.TrackedURL{
		ID:              dbURL.ID,
		ProjectID:       dbURL.ProjectID,
		URL:             dbURL.URL,
		Title:           dbURL.Title,
		Currency:        dbURL.Currency,
		LastPrice:       dbURL.LastPrice,
		WasPrice:        dbURL.WasPrice,
		PriceChange:     dbURL.PriceChange,
		StockState:      models.StockState(dbURL.StockState),
		Status:          models.Status(dbURL.Status),
		ParseConfidence: dbURL.ParseConfidence,
		ThumbnailURL:    dbURL.ThumbnailURL,
		HTTPStatus:      toAppHTTPStatus(dbURL.HTTPStatus),
		LastSeenAt:      dbURL.LastSeenAt,
		Paused:          dbURL.Paused,
		PriceHistory:    toAppObservations(history),
	}
}

func toDBObservation(urlID string, observation *models.Observation) *pgmodels.Observation {
	return &pgmodels.Observation{
		URLID:      urlID,
		ObservedAt: observation.ObservedAt,
		Price:      observation.Price,
		StockState: string(observation.StockState),
	}
}

func toAppObservations(dbObservations []pgmodels.Observation) []models.Observation {
	if len(dbObservations) == 0 {
		return nil
	}

	return lo.Map(dbObservations, func(dbObservation pgmodels.Observation, _ int) models.Observation {
		return models.Observation{
			ObservedAt: dbObservation.ObservedAt,
			Price:      dbObservation.Price,
			StockState: models.StockState(dbObservation.StockState),
		}
	})
}

func toAppProject(dbProject *pgmodels.Project) *models.Project {
	return &models.Project{
		ID:        dbProject.ID,
		Name:      dbProject.Name,
		Domain:    dbProject.Domain,
		CreatedAt: dbProject.CreatedAt,
		DeletedAt: dbProject.DeletedAt,
	}
}

func toDBHTTPStatus(status *int) *int32 {
	if status == nil {
		return nil
	}

	return lo.ToPtr(int32(*status))
}

func toAppHTTPStatus(status *int32) *int {
	if status == nil {
		return nil
	}

	return lo.ToPtr(int(*status))
}
