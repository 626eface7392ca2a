package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// Pinger é uma dependência verificada pelo healthcheck
type Pinger interface {
	PingContext(ctx context.Context) error
}

// PingerFunc adapta uma função para Pinger
type PingerFunc func(ctx context.Context) error

func (f PingerFunc) PingContext(ctx context.Context) error {
	return f(ctx)
}

// HealthcheckHandler responde 200 com o estado de cada dependência, ou 503 quando alguma falha
func HealthcheckHandler(dependencies map[string]Pinger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		status := http.StatusOK
		checks := make(map[string]string, len(dependencies))
		for name, dependency := range dependencies {
			if err := dependency.PingContext(ctx); err != nil {
				logrus.WithError(err).WithField("dependency", name).Warn("error responding to healthcheck")
				checks[name] = "down"
				status = http.StatusServiceUnavailable
				continue
			}
			checks[name] = "up"
		}

		writeJSON(w, status, map[string]any{
			"time":   time.Now().UTC().Format(time.RFC3339),
			"checks": checks,
		})
	})
}
