package services

import (
	"log"

	"github.com/robfig/cron/v3"
	"github.com/zelcry/zelcry-api/internal/models"
)

// ImpactDetailsStore define lo que el job de reseed necesita del repositorio
type ImpactDetailsStore interface {
	UpsertDetails(details models.CryptoAssetDetails) error
}

// SeedService vuelca periódicamente la lista estática de impacto en la base
// de datos. Corre de forma independiente de los handlers: sus fallas se
// registran en el log y nunca llegan al usuario.
type SeedService struct {
	store ImpactDetailsStore
	cron  *cron.Cron
}

// NewSeedService crea el servicio de reseed de datos de impacto
func NewSeedService(store ImpactDetailsStore) *SeedService {
	return &SeedService{
		store: store,
		cron:  cron.New(),
	}
}

// Start ejecuta un seed inicial y programa el job con el schedule recibido
// (por defecto cada hora)
func (s *SeedService) Start(schedule string) error {
	if schedule == "" {
		schedule = "@hourly"
	}

	// Seed inicial para que la tabla nunca quede vacía al arrancar
	s.RunOnce()

	if _, err := s.cron.AddFunc(schedule, s.RunOnce); err != nil {
		return err
	}

	s.cron.Start()
	log.Printf("Job de reseed de datos de impacto programado (%s)", schedule)
	return nil
}

// Stop detiene el scheduler
func (s *SeedService) Stop() {
	s.cron.Stop()
}

// RunOnce vuelca toda la lista estática. Los errores por moneda se registran
// y no interrumpen el resto del volcado.
func (s *SeedService) RunOnce() {
	log.Println("Ejecutando reseed de datos de impacto...")

	failures := 0
	for _, details := range impactSeedData {
		if err := s.store.UpsertDetails(details); err != nil {
			log.Printf("Error al sembrar datos de impacto de %s: %v", details.CoinID, err)
			failures++
		}
	}

	if failures == 0 {
		log.Printf("Reseed de datos de impacto completado (%d monedas)", len(impactSeedData))
	} else {
		log.Printf("Reseed de datos de impacto completado con %d errores", failures)
	}
}
