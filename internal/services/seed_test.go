package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zelcry/zelcry-api/internal/models"
)

// fakeImpactStore implementa ImpactDetailsStore contando los upserts
type fakeImpactStore struct {
	upserted  map[string]models.CryptoAssetDetails
	failCoins map[string]bool
}

func (s *fakeImpactStore) UpsertDetails(details models.CryptoAssetDetails) error {
	if s.failCoins[details.CoinID] {
		return errors.New("falla simulada")
	}
	s.upserted[details.CoinID] = details
	return nil
}

func TestSeedRunOnceLoadsAllCoins(t *testing.T) {
	store := &fakeImpactStore{upserted: map[string]models.CryptoAssetDetails{}}
	service := NewSeedService(store)

	service.RunOnce()

	assert.Len(t, store.upserted, len(impactSeedData))

	bitcoin, ok := store.upserted["bitcoin"]
	require.True(t, ok)
	assert.Equal(t, 3, bitcoin.EnergyScore)
	assert.Equal(t, 8, bitcoin.GovernanceScore)
	assert.Equal(t, 9, bitcoin.UtilityScore)
}

func TestSeedRunOnceContinuesOnFailure(t *testing.T) {
	// Una moneda que falla no interrumpe el resto del volcado
	store := &fakeImpactStore{
		upserted:  map[string]models.CryptoAssetDetails{},
		failCoins: map[string]bool{"ethereum": true},
	}
	service := NewSeedService(store)

	service.RunOnce()

	assert.Len(t, store.upserted, len(impactSeedData)-1)
	assert.NotContains(t, store.upserted, "ethereum")
}

func TestSeedDataScoresInRange(t *testing.T) {
	for _, details := range impactSeedData {
		assert.GreaterOrEqual(t, details.EnergyScore, 0, details.CoinID)
		assert.LessOrEqual(t, details.EnergyScore, 10, details.CoinID)
		assert.GreaterOrEqual(t, details.GovernanceScore, 0, details.CoinID)
		assert.LessOrEqual(t, details.GovernanceScore, 10, details.CoinID)
		assert.GreaterOrEqual(t, details.UtilityScore, 0, details.CoinID)
		assert.LessOrEqual(t, details.UtilityScore, 10, details.CoinID)
		assert.NotEmpty(t, details.Description, details.CoinID)
	}
}
