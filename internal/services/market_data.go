package services

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/zelcry/zelcry-api/internal/models"
)

// Variable para poder apuntar a un servidor de prueba en los tests
var coingeckoBaseURL = "https://api.coingecko.com/api/v3"

// Cliente HTTP compartido con timeout corto: ante cualquier falla el caller
// recibe colecciones vacías, nunca un error de página
var marketClient = &http.Client{Timeout: 10 * time.Second}

// GetSimplePrices obtiene en una sola llamada los precios actuales de varias
// monedas. Las monedas sin datos simplemente no aparecen en el mapa.
func GetSimplePrices(coinIDs []string) map[string]models.SimplePrice {
	prices := make(map[string]models.SimplePrice)
	if len(coinIDs) == 0 {
		return prices
	}

	params := url.Values{}
	params.Set("ids", strings.Join(coinIDs, ","))
	params.Set("vs_currencies", "usd")
	params.Set("include_market_cap", "true")
	params.Set("include_24hr_vol", "true")
	params.Set("include_24hr_change", "true")

	endpoint := fmt.Sprintf("%s/simple/price?%s", coingeckoBaseURL, params.Encode())

	body, err := fetchJSON(endpoint)
	if err != nil {
		log.Printf("Fallo al obtener precios de %d monedas, se devuelven precios vacíos: %v", len(coinIDs), err)
		return prices
	}

	var result map[string]models.SimplePrice
	if err := json.Unmarshal(body, &result); err != nil {
		log.Printf("Error decodificando JSON de precios: %v", err)
		return prices
	}

	return result
}

// GetMarkets obtiene el listado de mercados ordenado por capitalización,
// con cambios a 24h y 7d. Devuelve una lista vacía ante cualquier falla.
func GetMarkets(limit int) []models.MarketCoin {
	params := url.Values{}
	params.Set("vs_currency", "usd")
	params.Set("order", "market_cap_desc")
	params.Set("per_page", fmt.Sprintf("%d", limit))
	params.Set("page", "1")
	params.Set("sparkline", "false")
	params.Set("price_change_percentage", "24h,7d")

	return fetchMarkets(params)
}

// GetTopGainers obtiene las monedas con mayor suba en las últimas 24 horas
func GetTopGainers(limit int) []models.MarketCoin {
	params := url.Values{}
	params.Set("vs_currency", "usd")
	params.Set("order", "price_change_percentage_24h_desc")
	params.Set("per_page", fmt.Sprintf("%d", limit))
	params.Set("page", "1")

	return fetchMarkets(params)
}

func fetchMarkets(params url.Values) []models.MarketCoin {
	endpoint := fmt.Sprintf("%s/coins/markets?%s", coingeckoBaseURL, params.Encode())

	body, err := fetchJSON(endpoint)
	if err != nil {
		log.Printf("Fallo al obtener listado de mercados, se devuelve lista vacía: %v", err)
		return []models.MarketCoin{}
	}

	var coins []models.MarketCoin
	if err := json.Unmarshal(body, &coins); err != nil {
		log.Printf("Error decodificando JSON de mercados: %v", err)
		return []models.MarketCoin{}
	}

	return coins
}

// GetMarketChart obtiene la serie histórica de precios de una moneda y la
// reduce tomando un punto cada 24 (un punto por día con datos horarios).
func GetMarketChart(coinID string, days int) models.ChartData {
	chart := models.ChartData{Labels: []string{}, Prices: []float64{}}

	params := url.Values{}
	params.Set("vs_currency", "usd")
	params.Set("days", fmt.Sprintf("%d", days))

	endpoint := fmt.Sprintf("%s/coins/%s/market_chart?%s", coingeckoBaseURL, url.PathEscape(coinID), params.Encode())

	body, err := fetchJSON(endpoint)
	if err != nil {
		log.Printf("Fallo al obtener la serie histórica de %s, se devuelve serie vacía: %v", coinID, err)
		return chart
	}

	var raw struct {
		Prices [][2]float64 `json:"prices"`
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		log.Printf("Error decodificando JSON de la serie histórica de %s: %v", coinID, err)
		return chart
	}

	for i := 0; i < len(raw.Prices); i += 24 {
		point := raw.Prices[i]
		timestamp := time.Unix(int64(point[0])/1000, 0)
		chart.Labels = append(chart.Labels, timestamp.Format("01/02"))
		chart.Prices = append(chart.Prices, point[1])
	}

	return chart
}

// fetchJSON realiza una petición GET y devuelve el cuerpo cuando la
// respuesta es 200
func fetchJSON(endpoint string) ([]byte, error) {
	resp, err := marketClient.Get(endpoint)
	if err != nil {
		return nil, fmt.Errorf("error en la petición HTTP: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("respuesta inesperada %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error leyendo respuesta: %v", err)
	}

	return body, nil
}
