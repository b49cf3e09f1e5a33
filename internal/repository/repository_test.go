package repository

import (
	"database/sql"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zelcry/zelcry-api/internal/database"
	"github.com/zelcry/zelcry-api/internal/models"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)

	// Cada conexión de sqlite en memoria es una base distinta: limitar el
	// pool a una sola conexión para que todas las consultas la compartan
	db.SetMaxOpenConns(1)
	require.NoError(t, database.CreateSchema(db))

	t.Cleanup(func() { db.Close() })
	return db
}

func createTestUser(t *testing.T, db *sql.DB, id string) {
	t.Helper()

	repo := NewUserRepository(db)
	user := &models.User{
		ID:       id,
		Email:    id + "@example.com",
		Password: "hashed",
		Name:     "Usuario " + id,
	}
	require.NoError(t, repo.CreateUser(user, models.RiskLow, 50))
}

func TestCreateUserWithProfile(t *testing.T) {
	db := newTestDB(t)
	createTestUser(t, db, "u1")

	profileRepo := NewProfileRepository(db)
	profile, err := profileRepo.GetProfile("u1")

	require.NoError(t, err)
	assert.Equal(t, models.RiskLow, profile.RiskTolerance)
	// El registro arranca con los XP iniciales
	assert.Equal(t, 50, profile.XPPoints)
	assert.Equal(t, "light", profile.Theme)
}

func TestEmailExists(t *testing.T) {
	db := newTestDB(t)
	createTestUser(t, db, "u1")

	repo := NewUserRepository(db)

	exists, err := repo.EmailExists("u1@example.com")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.EmailExists("nadie@example.com")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestGetUserNotFound(t *testing.T) {
	db := newTestDB(t)

	repo := NewUserRepository(db)
	_, err := repo.GetUserById("no-existe")

	assert.Equal(t, ErrUserNotFound, err)
}

func TestAddXPAccumulates(t *testing.T) {
	db := newTestDB(t)
	createTestUser(t, db, "u1")

	profileRepo := NewProfileRepository(db)

	require.NoError(t, profileRepo.AddXP("u1", 25))
	require.NoError(t, profileRepo.AddXP("u1", 5))

	profile, err := profileRepo.GetProfile("u1")
	require.NoError(t, err)
	assert.Equal(t, 80, profile.XPPoints)
}

func TestAddXPIgnoresNonPositive(t *testing.T) {
	db := newTestDB(t)
	createTestUser(t, db, "u1")

	profileRepo := NewProfileRepository(db)

	// El contador nunca decrementa
	require.NoError(t, profileRepo.AddXP("u1", 0))
	require.NoError(t, profileRepo.AddXP("u1", -100))

	profile, err := profileRepo.GetProfile("u1")
	require.NoError(t, err)
	assert.Equal(t, 50, profile.XPPoints)
}

func TestUpdateRiskToleranceAndTheme(t *testing.T) {
	db := newTestDB(t)
	createTestUser(t, db, "u1")

	profileRepo := NewProfileRepository(db)

	require.NoError(t, profileRepo.UpdateRiskTolerance("u1", models.RiskHigh))
	require.NoError(t, profileRepo.UpdateTheme("u1", "dark"))

	profile, err := profileRepo.GetProfile("u1")
	require.NoError(t, err)
	assert.Equal(t, models.RiskHigh, profile.RiskTolerance)
	assert.Equal(t, "dark", profile.Theme)
}

func TestAssetRoundTrip(t *testing.T) {
	db := newTestDB(t)
	createTestUser(t, db, "u1")

	repo := NewAssetRepository(db)
	asset := &models.PortfolioAsset{
		ID:            "a1",
		UserID:        "u1",
		CoinID:        "bitcoin",
		CoinName:      "Bitcoin",
		CoinSymbol:    "btc",
		Quantity:      decimal.RequireFromString("0.12345678"),
		PurchasePrice: decimal.RequireFromString("30000.55"),
	}
	require.NoError(t, repo.CreateAsset(asset))

	assets, err := repo.GetUserAssets("u1")
	require.NoError(t, err)
	require.Len(t, assets, 1)

	// Los decimales guardados como texto vuelven sin pérdida de precisión
	assert.True(t, assets[0].Quantity.Equal(decimal.RequireFromString("0.12345678")))
	assert.True(t, assets[0].PurchasePrice.Equal(decimal.RequireFromString("30000.55")))
}

func TestDeleteAsset(t *testing.T) {
	db := newTestDB(t)
	createTestUser(t, db, "u1")

	repo := NewAssetRepository(db)
	asset := &models.PortfolioAsset{
		ID:            "a1",
		UserID:        "u1",
		CoinID:        "bitcoin",
		CoinName:      "Bitcoin",
		CoinSymbol:    "btc",
		Quantity:      decimal.NewFromInt(1),
		PurchasePrice: decimal.NewFromInt(100),
	}
	require.NoError(t, repo.CreateAsset(asset))

	require.NoError(t, repo.DeleteAsset("u1", "a1"))
	assert.Equal(t, ErrAssetNotFound, repo.DeleteAsset("u1", "a1"))
}

func TestDeleteAssetWrongUser(t *testing.T) {
	db := newTestDB(t)
	createTestUser(t, db, "u1")
	createTestUser(t, db, "u2")

	repo := NewAssetRepository(db)
	asset := &models.PortfolioAsset{
		ID:            "a1",
		UserID:        "u1",
		CoinID:        "bitcoin",
		CoinName:      "Bitcoin",
		CoinSymbol:    "btc",
		Quantity:      decimal.NewFromInt(1),
		PurchasePrice: decimal.NewFromInt(100),
	}
	require.NoError(t, repo.CreateAsset(asset))

	// Un usuario no puede borrar posiciones ajenas
	assert.Equal(t, ErrAssetNotFound, repo.DeleteAsset("u2", "a1"))
}

func TestGetUserIDsWithAssets(t *testing.T) {
	db := newTestDB(t)
	createTestUser(t, db, "u1")
	createTestUser(t, db, "u2")

	repo := NewAssetRepository(db)
	for _, id := range []string{"a1", "a2"} {
		require.NoError(t, repo.CreateAsset(&models.PortfolioAsset{
			ID:            id,
			UserID:        "u1",
			CoinID:        "bitcoin",
			CoinName:      "Bitcoin",
			CoinSymbol:    "btc",
			Quantity:      decimal.NewFromInt(1),
			PurchasePrice: decimal.NewFromInt(100),
		}))
	}

	userIDs, err := repo.GetUserIDsWithAssets()
	require.NoError(t, err)
	// u1 aparece una sola vez aunque tenga dos posiciones; u2 no aparece
	assert.Equal(t, []string{"u1"}, userIDs)
}

func TestMarkTriggeredIsOneShot(t *testing.T) {
	db := newTestDB(t)
	createTestUser(t, db, "u1")

	repo := NewAlertRepository(db)
	alert := &models.PriceAlert{
		ID:          "alert-1",
		UserID:      "u1",
		CoinID:      "bitcoin",
		CoinName:    "Bitcoin",
		CoinSymbol:  "btc",
		TargetPrice: decimal.NewFromInt(30000),
		Condition:   models.AlertConditionAbove,
	}
	require.NoError(t, repo.CreateAlert(alert))

	active, err := repo.GetActiveAlerts()
	require.NoError(t, err)
	require.Len(t, active, 1)

	triggeredAt := time.Now()
	require.NoError(t, repo.MarkTriggered("alert-1", triggeredAt))

	// La transición activa -> disparada ocurre una sola vez
	assert.Equal(t, ErrAlertNotFound, repo.MarkTriggered("alert-1", triggeredAt))

	active, err = repo.GetActiveAlerts()
	require.NoError(t, err)
	assert.Empty(t, active)

	alerts, err := repo.GetUserAlerts("u1")
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.False(t, alerts[0].IsActive)
	assert.NotNil(t, alerts[0].TriggeredAt)
}

func TestDeleteAlertWrongUser(t *testing.T) {
	db := newTestDB(t)
	createTestUser(t, db, "u1")

	repo := NewAlertRepository(db)
	require.NoError(t, repo.CreateAlert(&models.PriceAlert{
		ID:          "alert-1",
		UserID:      "u1",
		CoinID:      "bitcoin",
		CoinName:    "Bitcoin",
		CoinSymbol:  "btc",
		TargetPrice: decimal.NewFromInt(30000),
		Condition:   models.AlertConditionBelow,
	}))

	assert.Equal(t, ErrAlertNotFound, repo.DeleteAlert("otro", "alert-1"))
	require.NoError(t, repo.DeleteAlert("u1", "alert-1"))
}

func TestWatchlistUniquePerUserAndCoin(t *testing.T) {
	db := newTestDB(t)
	createTestUser(t, db, "u1")

	repo := NewWatchlistRepository(db)
	item := &models.WatchlistItem{
		ID:         "w1",
		UserID:     "u1",
		CoinID:     "bitcoin",
		CoinName:   "Bitcoin",
		CoinSymbol: "btc",
	}
	require.NoError(t, repo.AddItem(item))

	duplicate := &models.WatchlistItem{
		ID:         "w2",
		UserID:     "u1",
		CoinID:     "bitcoin",
		CoinName:   "Bitcoin",
		CoinSymbol: "btc",
	}
	assert.Equal(t, ErrAlreadyWatched, repo.AddItem(duplicate))

	items, err := repo.GetUserWatchlist("u1")
	require.NoError(t, err)
	assert.Len(t, items, 1)

	require.NoError(t, repo.RemoveItem("u1", "bitcoin"))
	items, err = repo.GetUserWatchlist("u1")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestChatMessageCounts(t *testing.T) {
	db := newTestDB(t)
	createTestUser(t, db, "u1")

	repo := NewChatRepository(db)

	require.NoError(t, repo.SaveMessage(&models.ChatMessage{
		ID: "m1", UserID: "u1", Message: "hola", Response: "hola!",
	}))
	require.NoError(t, repo.SaveMessage(&models.ChatMessage{
		ID: "m2", UserID: "u1", Message: "chau", Response: "chau!",
	}))
	require.NoError(t, repo.SaveMessage(&models.ChatMessage{
		ID: "m3", SessionID: "session-1", Message: "guest", Response: "hi!",
	}))

	userCount, err := repo.CountUserMessages("u1")
	require.NoError(t, err)
	assert.Equal(t, 2, userCount)

	sessionCount, err := repo.CountSessionMessages("session-1")
	require.NoError(t, err)
	assert.Equal(t, 1, sessionCount)

	// La sesión de invitado no cuenta mensajes de usuarios registrados
	sessionCount, err = repo.CountSessionMessages("session-desconocida")
	require.NoError(t, err)
	assert.Equal(t, 0, sessionCount)
}

func TestDetailsUpsertAndRecommendations(t *testing.T) {
	db := newTestDB(t)

	repo := NewDetailsRepository(db)
	seed := []models.CryptoAssetDetails{
		{CoinID: "bitcoin", Name: "Bitcoin", Symbol: "btc", EnergyScore: 3, GovernanceScore: 8, UtilityScore: 9, Description: "d"},
		{CoinID: "algorand", Name: "Algorand", Symbol: "algo", EnergyScore: 10, GovernanceScore: 8, UtilityScore: 8, Description: "d"},
		{CoinID: "cardano", Name: "Cardano", Symbol: "ada", EnergyScore: 9, GovernanceScore: 9, UtilityScore: 8, Description: "d"},
	}
	for _, details := range seed {
		require.NoError(t, repo.UpsertDetails(details))
	}

	// Upsert idempotente: volver a sembrar actualiza en lugar de duplicar
	updated := seed[0]
	updated.EnergyScore = 4
	require.NoError(t, repo.UpsertDetails(updated))

	details, err := repo.GetDetails("bitcoin")
	require.NoError(t, err)
	require.NotNil(t, details)
	assert.Equal(t, 4, details.EnergyScore)

	// Ausencia de perfil no es un error
	missing, err := repo.GetDetails("no-existe")
	require.NoError(t, err)
	assert.Nil(t, missing)

	top, err := repo.TopByEnergy()
	require.NoError(t, err)
	assert.Equal(t, "algorand", top.CoinID)

	topGov, err := repo.TopByGovernance()
	require.NoError(t, err)
	assert.Equal(t, "cardano", topGov.CoinID)

	// Bitcoin queda afuera de bajo riesgo por su score de energía
	lowRisk, err := repo.RecommendLowRisk(5)
	require.NoError(t, err)
	require.Len(t, lowRisk, 2)
	for _, coin := range lowRisk {
		assert.GreaterOrEqual(t, coin.EnergyScore, 7)
		assert.GreaterOrEqual(t, coin.GovernanceScore, 7)
	}

	sustainable, err := repo.TopSustainable(5)
	require.NoError(t, err)
	assert.Len(t, sustainable, 2)
}

func TestSnapshotRoundTrip(t *testing.T) {
	db := newTestDB(t)
	createTestUser(t, db, "u1")

	repo := NewSnapshotRepository(db)

	old := models.PortfolioSnapshot{
		ID:            "s1",
		UserID:        "u1",
		TotalValue:    decimal.NewFromInt(1000),
		TotalInvested: decimal.NewFromInt(800),
		ProfitLoss:    decimal.NewFromInt(200),
		ROI:           decimal.NewFromInt(25),
		CreatedAt:     time.Now().AddDate(0, 0, -60),
	}
	recent := models.PortfolioSnapshot{
		ID:            "s2",
		UserID:        "u1",
		TotalValue:    decimal.NewFromInt(1200),
		TotalInvested: decimal.NewFromInt(800),
		ProfitLoss:    decimal.NewFromInt(400),
		ROI:           decimal.NewFromInt(50),
		CreatedAt:     time.Now().AddDate(0, 0, -1),
	}
	require.NoError(t, repo.SaveSnapshot(old))
	require.NoError(t, repo.SaveSnapshot(recent))

	// El filtro por fecha deja afuera el snapshot viejo
	snapshots, err := repo.GetUserSnapshots("u1", time.Now().AddDate(0, 0, -30))
	require.NoError(t, err)
	require.Len(t, snapshots, 1)
	assert.Equal(t, "s2", snapshots[0].ID)
	assert.True(t, snapshots[0].TotalValue.Equal(decimal.NewFromInt(1200)))

	// Sin filtro vuelven todos en orden cronológico
	all, err := repo.GetUserSnapshots("u1", time.Time{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "s1", all[0].ID)
}
