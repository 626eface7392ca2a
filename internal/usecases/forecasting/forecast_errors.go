package forecasting

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de previsão
var (
	// Erros de validação
	ErrInvalidRequest   = errors.New("invalid saturation request")
	ErrCampaignNotFound = errors.New("campaign not found")
	ErrNoSpendBaseline  = errors.New("campaign has no spend baseline")

	// Erros de banco de dados
	ErrFetchCampaign    = errors.New("error fetching campaign from database")
	ErrFetchHistory     = errors.New("error fetching campaign history")
	ErrFetchForecast    = errors.New("error fetching forecast")
	ErrForecastNotFound = errors.New("forecast not found")

	ErrGenerateID = errors.New("error generating forecast id")
)

// ForecastError é um erro com contexto adicional para previsões
type ForecastError struct {
	Err        error  // Erro base
	Code       string // Código de erro para API
	CampaignID string // Campanha envolvida
	Details    string // Detalhes adicionais
}

func (e *ForecastError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ForecastError) Unwrap() error {
	return e.Err
}

func NewForecastError(err error, code string, campaignID string, details string) *ForecastError {
	return &ForecastError{
		Err:        err,
		Code:       code,
		CampaignID: campaignID,
		Details:    details,
	}
}
