package log

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithCorrelationID(t *testing.T) {
	t.Run("Mantém o ID informado", func(t *testing.T) {
		ctx, id := WithCorrelationID(context.Background(), " abc ")

		assert.Equal(t, "abc", id)
		assert.Equal(t, "abc", GetCorrelationID(ctx))
	})

	t.Run("Gera UUID quando vazio", func(t *testing.T) {
		ctx, id := WithCorrelationID(context.Background(), "")

		assert.Len(t, id, 36)
		assert.Equal(t, id, GetCorrelationID(ctx))
	})

	t.Run("Contexto sem ID", func(t *testing.T) {
		assert.Empty(t, GetCorrelationID(context.Background()))
	})
}

func TestKeepInDevelopment(t *testing.T) {
	assert.True(t, keepInDevelopment("campaign_id"))
	assert.True(t, keepInDevelopment("forecast_id"))
	assert.True(t, keepInDevelopment(correlationIDField))
	assert.False(t, keepInDevelopment("user_agent"))
}
