package domain

import (
	"time"
)

// HistoricalObservation representa um dia de performance de uma campanha
type HistoricalObservation struct {
	Date        time.Time `json:"date"`
	Spend       float64   `json:"spend"`
	CPA         float64   `json:"cpa"`
	Conversions int       `json:"conversions"`
	Impressions int       `json:"impressions"`
	Clicks      int       `json:"clicks"`
}

// NewHistoricalObservation monta a observação derivando o CPA de custo/conversões.
// Retorna false quando não há conversões, pois o CPA fica indefinido.
func NewHistoricalObservation(date time.Time, spend float64, conversions, impressions, clicks int) (HistoricalObservation, bool) {
	if conversions <= 0 {
		return HistoricalObservation{}, false
	}

	return HistoricalObservation{
		Date:        date,
		Spend:       spend,
		CPA:         spend / float64(conversions),
		Conversions: conversions,
		Impressions: impressions,
		Clicks:      clicks,
	}, true
}

// FilterByWindow retorna as observações dentro dos últimos `days` dias a partir de asOf
func FilterByWindow(history []HistoricalObservation, asOf time.Time, days int) []HistoricalObservation {
	cutoff := asOf.Add(-time.Duration(days) * 24 * time.Hour)

	filtered := make([]HistoricalObservation, 0, len(history))
	for _, obs := range history {
		if !obs.Date.Before(cutoff) {
			filtered = append(filtered, obs)
		}
	}

	return filtered
}

// SpendAndCPA separa as séries de investimento e CPA
func SpendAndCPA(history []HistoricalObservation) ([]float64, []float64) {
	spend := make([]float64, len(history))
	cpa := make([]float64, len(history))
	for i, obs := range history {
		spend[i] = obs.Spend
		cpa[i] = obs.CPA
	}
	return spend, cpa
}
