package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidOrderStatus(t *testing.T) {
	valid := []string{"received", "production", "assembly", "packaging", "ready", "installed", "cancelled"}
	for _, s := range valid {
		assert.True(t, ValidOrderStatus(s), s)
	}

	invalid := []string{"", "shipped", "Received", "done", "in_production"}
	for _, s := range invalid {
		assert.False(t, ValidOrderStatus(s), s)
	}
}

func TestOrderIsActive(t *testing.T) {
	tests := []struct {
		status string
		active bool
	}{
		{OrderStatusReceived, true},
		{OrderStatusProduction, true},
		{OrderStatusAssembly, true},
		{OrderStatusPackaging, true},
		{OrderStatusReady, true},
		{OrderStatusInstalled, false},
		{OrderStatusCancelled, false},
	}

	for _, tt := range tests {
		order := Order{Status: tt.status}
		assert.Equal(t, tt.active, order.IsActive(), tt.status)
	}
}
