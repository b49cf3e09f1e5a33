package services

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/zelcry/zelcry-api/internal/models"
)

// fakeAlertStore implementa AlertStoreInterface en memoria para los tests
type fakeAlertStore struct {
	alerts    []models.PriceAlert
	triggered []string
}

func (s *fakeAlertStore) GetActiveAlerts() ([]models.PriceAlert, error) {
	active := []models.PriceAlert{}
	for _, alert := range s.alerts {
		if alert.IsActive {
			active = append(active, alert)
		}
	}
	return active, nil
}

func (s *fakeAlertStore) MarkTriggered(alertID string, triggeredAt time.Time) error {
	for i := range s.alerts {
		if s.alerts[i].ID == alertID && s.alerts[i].IsActive {
			s.alerts[i].IsActive = false
			s.alerts[i].TriggeredAt = &triggeredAt
			s.triggered = append(s.triggered, alertID)
			return nil
		}
	}
	return nil
}

func testAlert(id, coinID, target, condition string) models.PriceAlert {
	return models.PriceAlert{
		ID:          id,
		UserID:      "user-1",
		CoinID:      coinID,
		CoinName:    coinID,
		TargetPrice: decimal.RequireFromString(target),
		Condition:   condition,
		IsActive:    true,
	}
}

func newTestEvaluator(store *fakeAlertStore, prices map[string]models.SimplePrice) *AlertEvaluator {
	evaluator := NewAlertEvaluator(time.Minute, store)
	evaluator.getPrices = func(coinIDs []string) map[string]models.SimplePrice {
		return prices
	}
	return evaluator
}

func TestEvaluateOnceTriggersAbove(t *testing.T) {
	store := &fakeAlertStore{alerts: []models.PriceAlert{
		testAlert("a1", "bitcoin", "30000", models.AlertConditionAbove),
	}}
	evaluator := newTestEvaluator(store, map[string]models.SimplePrice{
		"bitcoin": {USD: 31000},
	})

	evaluator.EvaluateOnce()

	assert.Equal(t, []string{"a1"}, store.triggered)
	assert.False(t, store.alerts[0].IsActive)
	assert.NotNil(t, store.alerts[0].TriggeredAt)
}

func TestEvaluateOnceTriggersBelow(t *testing.T) {
	store := &fakeAlertStore{alerts: []models.PriceAlert{
		testAlert("a1", "ethereum", "2000", models.AlertConditionBelow),
	}}
	evaluator := newTestEvaluator(store, map[string]models.SimplePrice{
		"ethereum": {USD: 1800},
	})

	evaluator.EvaluateOnce()

	assert.Equal(t, []string{"a1"}, store.triggered)
}

func TestEvaluateOnceExactTargetTriggers(t *testing.T) {
	// El cruce es inclusivo: precio igual al objetivo dispara
	store := &fakeAlertStore{alerts: []models.PriceAlert{
		testAlert("a1", "bitcoin", "30000", models.AlertConditionAbove),
	}}
	evaluator := newTestEvaluator(store, map[string]models.SimplePrice{
		"bitcoin": {USD: 30000},
	})

	evaluator.EvaluateOnce()

	assert.Len(t, store.triggered, 1)
}

func TestEvaluateOnceNotReached(t *testing.T) {
	store := &fakeAlertStore{alerts: []models.PriceAlert{
		testAlert("a1", "bitcoin", "30000", models.AlertConditionAbove),
	}}
	evaluator := newTestEvaluator(store, map[string]models.SimplePrice{
		"bitcoin": {USD: 29000},
	})

	evaluator.EvaluateOnce()

	assert.Empty(t, store.triggered)
	assert.True(t, store.alerts[0].IsActive)
}

func TestEvaluateOnceMissingPriceLeavesAlertActive(t *testing.T) {
	// Sin precio la alerta queda sin evaluar: nunca se dispara con datos faltantes
	store := &fakeAlertStore{alerts: []models.PriceAlert{
		testAlert("a1", "obscurecoin", "5", models.AlertConditionAbove),
	}}
	evaluator := newTestEvaluator(store, map[string]models.SimplePrice{})

	evaluator.EvaluateOnce()

	assert.Empty(t, store.triggered)
	assert.True(t, store.alerts[0].IsActive)
}

func TestEvaluateOnceIsOneShot(t *testing.T) {
	// Una alerta disparada sale del conjunto activo: la segunda pasada no la ve
	store := &fakeAlertStore{alerts: []models.PriceAlert{
		testAlert("a1", "bitcoin", "30000", models.AlertConditionAbove),
	}}
	evaluator := newTestEvaluator(store, map[string]models.SimplePrice{
		"bitcoin": {USD: 35000},
	})

	evaluator.EvaluateOnce()
	evaluator.EvaluateOnce()

	assert.Equal(t, []string{"a1"}, store.triggered)
}

func TestStartAndStop(t *testing.T) {
	store := &fakeAlertStore{}
	evaluator := newTestEvaluator(store, nil)

	evaluator.Start()
	// Un segundo Start no debe duplicar el ciclo ni entrar en pánico
	evaluator.Start()
	evaluator.Stop()
	evaluator.Stop()
}
