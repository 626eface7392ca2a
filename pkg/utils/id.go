package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const (
	characters       = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	forecastIDPrefix = "fc_"
	forecastIDLength = 12
)

// GenerateForecastID gera o identificador público de uma previsão
func GenerateForecastID() (string, error) {
	id, err := gonanoid.Generate(characters, forecastIDLength)
	if err != nil {
		return "", err
	}
	return forecastIDPrefix + id, nil
}
