package money_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/andremtx/grana/internal/money"
)

func TestParseAmount(t *testing.T) {
	type testCase struct {
		name    string
		in      float64
		wantErr bool
	}

	tests := []testCase{
		{name: "Positive", in: 12.34},
		{name: "SmallFraction", in: 0.01},
		{name: "Zero", in: 0, wantErr: true},
		{name: "Negative", in: -5, wantErr: true},
		{name: "NaN", in: math.NaN(), wantErr: true},
		{name: "Inf", in: math.Inf(1), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := money.ParseAmount(tt.in)

			if tt.wantErr {
				assert.ErrorIs(t, err, money.ErrInvalidAmount)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.in, got)
		})
	}
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 12.35, money.Round2(12.345))
	assert.Equal(t, 12.34, money.Round2(12.344))
	assert.Equal(t, -2.5, money.Round2(-2.499999))
	assert.Equal(t, 0.0, money.Round2(0))
	assert.Equal(t, 100.0, money.Round2(100.000001))
}
