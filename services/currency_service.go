package services

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	config "github.com/cybruGhost/keattractions-sub001/configs"
)

const rateTTL = 6 * time.Hour

type exchangeRateResponse struct {
	Result          string             `json:"result"`
	ConversionRates map[string]float64 `json:"conversion_rates"`
}

// rateCache holds the last successful USD rate table. Stale or empty caches
// trigger a refetch; a fresh cache answers without touching the network.
type rateCache struct {
	mu        sync.RWMutex
	rates     map[string]float64
	fetchedAt time.Time
}

func (rc *rateCache) get() (map[string]float64, bool) {
	rc.mu.RLock()
	defer rc.mu.RUnlock()
	if rc.rates == nil || time.Since(rc.fetchedAt) >= rateTTL {
		return nil, false
	}
	return rc.rates, true
}

func (rc *rateCache) put(rates map[string]float64) {
	rc.mu.Lock()
	rc.rates = rates
	rc.fetchedAt = time.Now()
	rc.mu.Unlock()
}

var usdRates = &rateCache{}

func FetchRates() (map[string]float64, error) {
	if rates, ok := usdRates.get(); ok {
		return rates, nil
	}

	log.Println("Fetching fresh exchange rates from API...")
	apiKey := config.Config("EXCHANGE_RATE_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("exchange rate API key not configured")
	}

	url := fmt.Sprintf("https://v6.exchangerate-api.com/v6/%s/latest/USD", apiKey)
	resp, err := http.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var data exchangeRateResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, err
	}
	if data.Result != "success" {
		return nil, fmt.Errorf("currency API returned an error")
	}

	usdRates.put(data.ConversionRates)
	log.Println("Successfully updated currency exchange rate cache.")

	return data.ConversionRates, nil
}

// ConvertUSDToKES derives the KES price column for catalog items priced in
// USD.
func ConvertUSDToKES(amountUSD float64) (float64, error) {
	rates, err := FetchRates()
	if err != nil {
		return 0, err
	}

	kesRate, ok := rates["KES"]
	if !ok {
		return 0, fmt.Errorf("KES exchange rate not found in API response")
	}

	return amountUSD * kesRate, nil
}
