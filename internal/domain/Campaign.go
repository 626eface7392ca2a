package domain

import (
	"time"
)

type CampaignStatus string

const (
	CampaignStatusActive   CampaignStatus = "ACTIVE"
	CampaignStatusPaused   CampaignStatus = "PAUSED"
	CampaignStatusArchived CampaignStatus = "ARCHIVED"
)

type Campaign struct {
	ID          string         `json:"id"`
	ExternalID  string         `json:"external_id"`
	AccountID   string         `json:"account_id"`
	Name        string         `json:"name"`
	Platform    string         `json:"platform"`
	Status      CampaignStatus `json:"status"`
	DailyBudget float64        `json:"daily_budget"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// CampaignDailyInsight é a linha diária de performance armazenada para a campanha
type CampaignDailyInsight struct {
	CampaignID  string    `json:"campaign_id"`
	Date        time.Time `json:"date"`
	Spend       float64   `json:"spend"`
	Conversions int       `json:"conversions"`
	Impressions int       `json:"impressions"`
	Clicks      int       `json:"clicks"`
}

// Observation converte a linha diária em observação do modelo. Dias sem conversão são descartados.
func (c *CampaignDailyInsight) Observation() (HistoricalObservation, bool) {
	return NewHistoricalObservation(c.Date, c.Spend, c.Conversions, c.Impressions, c.Clicks)
}
