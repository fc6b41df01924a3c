package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestARSFormatter(t *testing.T) {
	f := ARSFormatter{}

	tests := []struct {
		name   string
		amount float64
		want   string
	}{
		{"zero", 0, "$ 0,00"},
		{"small", 75.5, "$ 75,50"},
		{"thousands", 1234.56, "$ 1.234,56"},
		{"millions", 1234567.89, "$ 1.234.567,89"},
		{"exact thousand", 1000, "$ 1.000,00"},
		{"negative", -450.25, "-$ 450,25"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, f.Format(tt.amount))
		})
	}
}
