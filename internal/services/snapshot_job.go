package services

import (
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"github.com/zelcry/zelcry-api/internal/models"
)

// SnapshotStoreInterface define lo que el job de snapshots necesita de los repositorios
type SnapshotStoreInterface interface {
	GetUserIDsWithAssets() ([]string, error)
	GetUserAssets(userID string) ([]models.PortfolioAsset, error)
	SaveSnapshot(snapshot models.PortfolioSnapshot) error
}

// SnapshotService toma un snapshot diario del portafolio de cada usuario con
// posiciones. Los snapshots son registros inmutables.
type SnapshotService struct {
	store     SnapshotStoreInterface
	getPrices PriceLookupFunc
	cron      *cron.Cron
}

// NewSnapshotService crea el servicio de snapshots periódicos
func NewSnapshotService(store SnapshotStoreInterface) *SnapshotService {
	return &SnapshotService{
		store:     store,
		getPrices: GetSimplePrices,
		cron:      cron.New(),
	}
}

// Start programa el job diario de snapshots
func (s *SnapshotService) Start() error {
	if _, err := s.cron.AddFunc("@daily", s.RunOnce); err != nil {
		return err
	}

	s.cron.Start()
	log.Println("Job diario de snapshots de portafolio programado")
	return nil
}

// Stop detiene el scheduler
func (s *SnapshotService) Stop() {
	s.cron.Stop()
}

// RunOnce toma un snapshot para cada usuario con posiciones. Los errores por
// usuario se registran y no interrumpen el resto.
func (s *SnapshotService) RunOnce() {
	userIDs, err := s.store.GetUserIDsWithAssets()
	if err != nil {
		log.Printf("Error al obtener usuarios con posiciones: %v", err)
		return
	}

	for _, userID := range userIDs {
		if _, err := s.TakeSnapshot(userID); err != nil {
			log.Printf("Error al tomar snapshot del usuario %s: %v", userID, err)
		}
	}

	log.Printf("Job de snapshots completado para %d usuarios", len(userIDs))
}

// TakeSnapshot valúa el portafolio del usuario con los precios actuales y
// guarda el registro
func (s *SnapshotService) TakeSnapshot(userID string) (*models.PortfolioSnapshot, error) {
	assets, err := s.store.GetUserAssets(userID)
	if err != nil {
		return nil, err
	}

	coinIDs := make([]string, 0, len(assets))
	for _, asset := range assets {
		coinIDs = append(coinIDs, asset.CoinID)
	}

	prices := s.getPrices(coinIDs)
	_, summary := ValuatePortfolio(assets, prices)

	snapshot := models.PortfolioSnapshot{
		ID:            uuid.NewString(),
		UserID:        userID,
		TotalValue:    summary.TotalValue,
		TotalInvested: summary.TotalInvested,
		ProfitLoss:    summary.ProfitLoss,
		ROI:           summary.ROI,
		CreatedAt:     time.Now(),
	}

	if err := s.store.SaveSnapshot(snapshot); err != nil {
		return nil, err
	}

	return &snapshot, nil
}
