package services

import (
	"log"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"github.com/zelcry/zelcry-api/internal/models"
)

// AlertStoreInterface define las operaciones que el evaluador necesita del repositorio
type AlertStoreInterface interface {
	GetActiveAlerts() ([]models.PriceAlert, error)
	MarkTriggered(alertID string, triggeredAt time.Time) error
}

// PriceLookupFunc obtiene los precios actuales de un conjunto de monedas en una sola llamada
type PriceLookupFunc func(coinIDs []string) map[string]models.SimplePrice

// AlertEvaluator revisa periódicamente las alertas activas y las dispara
// cuando el precio cruza el objetivo. Una alerta disparada queda inactiva
// para siempre.
type AlertEvaluator struct {
	interval  time.Duration
	store     AlertStoreInterface
	getPrices PriceLookupFunc
	isRunning bool
	stopChan  chan struct{}
	mutex     sync.Mutex
}

// NewAlertEvaluator crea un nuevo evaluador de alertas de precio
func NewAlertEvaluator(interval time.Duration, store AlertStoreInterface) *AlertEvaluator {
	return &AlertEvaluator{
		interval:  interval,
		store:     store,
		getPrices: GetSimplePrices,
		stopChan:  make(chan struct{}),
	}
}

// Start inicia el ciclo de evaluación de alertas
func (e *AlertEvaluator) Start() {
	e.mutex.Lock()
	defer e.mutex.Unlock()

	if e.isRunning {
		return
	}

	e.isRunning = true
	e.stopChan = make(chan struct{})

	go func() {
		ticker := time.NewTicker(e.interval)
		defer ticker.Stop()

		// Evaluar inmediatamente al iniciar
		e.EvaluateOnce()

		for {
			select {
			case <-ticker.C:
				e.EvaluateOnce()
			case <-e.stopChan:
				return
			}
		}
	}()

	log.Printf("Evaluador de alertas de precio iniciado con intervalo de %v", e.interval)
}

// Stop detiene el ciclo de evaluación
func (e *AlertEvaluator) Stop() {
	e.mutex.Lock()
	defer e.mutex.Unlock()

	if !e.isRunning {
		return
	}

	close(e.stopChan)
	e.isRunning = false
	log.Println("Evaluador de alertas de precio detenido")
}

// EvaluateOnce carga las alertas activas, consulta los precios en una sola
// llamada y dispara las que correspondan. Una moneda sin precio deja su
// alerta activa y sin evaluar: nunca se dispara con datos faltantes.
func (e *AlertEvaluator) EvaluateOnce() {
	alerts, err := e.store.GetActiveAlerts()
	if err != nil {
		log.Printf("Error al obtener alertas activas: %v", err)
		return
	}

	if len(alerts) == 0 {
		return
	}

	// Juntar los coin ids sin repetir para una sola llamada de precios
	seen := make(map[string]bool)
	var coinIDs []string
	for _, alert := range alerts {
		if !seen[alert.CoinID] {
			seen[alert.CoinID] = true
			coinIDs = append(coinIDs, alert.CoinID)
		}
	}

	prices := e.getPrices(coinIDs)

	for _, alert := range alerts {
		price, exists := prices[alert.CoinID]
		if !exists {
			log.Printf("Sin precio para %s, la alerta %s queda sin evaluar", alert.CoinID, alert.ID)
			continue
		}

		currentPrice := decimal.NewFromFloat(price.USD)
		if !alert.ShouldTrigger(currentPrice) {
			continue
		}

		triggeredAt := time.Now()
		if err := e.store.MarkTriggered(alert.ID, triggeredAt); err != nil {
			log.Printf("Error al marcar la alerta %s como disparada: %v", alert.ID, err)
			continue
		}

		log.Printf("Alerta disparada: %s %s %s con precio actual %s",
			alert.CoinName, alert.Condition, alert.TargetPrice.String(), currentPrice.String())
	}
}
