package modelstesting

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/go-faker/faker/v4"
	"github.com/google/uuid"
	"github.com/pricebeacon/monitor/internal/platform/models"
	"github.com/samber/lo"
)

// FakeTrackedURL returns models.TrackedURL with fake data and random number of fake observations.
func FakeTrackedURL(ops ...func(u *models.TrackedURL)) models.TrackedURL {
	url := models.TrackedURL{
		ID:              uuid.NewString(),
		ProjectID:       uuid.NewString(),
		URL:             fmt.Sprintf("https://%s.example.com/products/%s", faker.Word(), faker.Word()),
		Title:           faker.Sentence(),
		Currency:        "£",
		LastPrice:       fakePrice(),
		StockState:      models.StockInStock,
		Status:          models.StatusOk,
		ParseConfidence: lo.ToPtr(0.95),
		ThumbnailURL:    lo.ToPtr(faker.URL()),
		HTTPStatus:      lo.ToPtr(200),
		LastSeenAt:      time.Now().UTC().Truncate(time.Second),
		PriceHistory:    fakeObservations(),
	}

	for _, op := range ops {
		op(&url)
	}

	return url
}

// FakeObservation returns models.Observation with fake data.
func FakeObservation(ops ...func(o *models.Observation)) models.Observation {
	observation := models.Observation{
		ObservedAt: time.Now().UTC().Truncate(time.Second),
		Price:      fakePrice(),
		StockState: models.StockInStock,
	}

	for _, op := range ops {
		op(&observation)
	}

	return observation
}

// FakeProductInfo returns models.ExtractedProductInfo with fake data.
func FakeProductInfo(ops ...func(p *models.ExtractedProductInfo)) models.ExtractedProductInfo {
	info := models.ExtractedProductInfo{
		Title:      faker.Sentence(),
		Price:      fakePrice(),
		Currency:   "£",
		StockState: models.StockInStock,
		ImageURL:   faker.URL(),
		Confidence: 0.95,
		Source:     models.SourceStructured,
	}

	for _, op := range ops {
		op(&info)
	}

	return info
}

func fakeObservations() []models.Observation {
	observationsLen := rand.Intn(5)
	observations := make([]models.Observation, 0, observationsLen)
	observedAt := time.Now().UTC().Add(-time.Duration(observationsLen) * 24 * time.Hour)
	for ix := 0; ix < observationsLen; ix++ {
		observations = append(observations, FakeObservation(func(o *models.Observation) {
			o.ObservedAt = observedAt.Add(time.Duration(ix) * 24 * time.Hour)
		}))
	}

	return observations
}

func fakePrice() float64 {
	return float64(rand.Intn(100000)) / 100
}
