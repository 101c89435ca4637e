package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseHours(t *testing.T) {
	tests := []struct {
		name     string
		duration string
		want     float64
	}{
		{"whole hours", "2 hours", 2},
		{"fractional hours", "1.5 hrs", 1.5},
		{"bare number", "3", 3},
		{"no digits defaults to one", "a while", 1},
		{"empty defaults to one", "", 1},
		{"number embedded in text", "about 4 hours or so", 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseHours(tt.duration))
		})
	}
}

func TestEffectiveParticipants(t *testing.T) {
	// Dance classes are per person regardless of the submitted count.
	assert.Equal(t, 1, EffectiveParticipants(ClassTypeDance, 12))
	assert.Equal(t, 1, EffectiveParticipants(ClassTypeDance, 0))

	assert.Equal(t, 7, EffectiveParticipants(ClassTypePrivate, 7))
	assert.Equal(t, 1, EffectiveParticipants(ClassTypePrivate, 0))
	assert.Equal(t, 1, EffectiveParticipants(ClassTypePrivate, -3))
}

func TestEstimatePrivateClassTiers(t *testing.T) {
	tests := []struct {
		participants int
		want         float64
	}{
		{1, 3999},
		{2, 5999},
		{5, 5999},
		{6, 7999},
		{10, 7999},
		{11, 9999},
		{20, 9999},
		{21, 11999},
		{30, 11999},
		{31, 113000},
		{40, 113000},
		{41, 113000},
		{100, 113000},
	}

	for _, tt := range tests {
		price, deposit := Estimate(ClassTypePrivate, tt.participants, "1 hour")
		assert.Equalf(t, tt.want, price, "participants=%d", tt.participants)
		assert.Equalf(t, tt.want*DepositRate, deposit, "participants=%d deposit", tt.participants)
	}
}

func TestEstimateDanceClass(t *testing.T) {
	// Flat rate, participant count ignored.
	price, deposit := Estimate(ClassTypeDance, 15, "2 hours")
	assert.Equal(t, float64(DanceClassPrice), price)
	assert.InDelta(t, 245, deposit, 0.0001)
}

func TestEstimateRental(t *testing.T) {
	price, _ := Estimate(ClassTypeRental, 1, "3 hours")
	assert.Equal(t, float64(3*RentalHourlyRate), price)

	price, _ = Estimate(ClassTypeRental, 1, "1.5 hrs")
	assert.Equal(t, 1.5*RentalHourlyRate, price)

	// Missing duration falls back to one hour.
	price, _ = Estimate(ClassTypeRental, 1, "")
	assert.Equal(t, float64(RentalHourlyRate), price)
}

func TestEstimateUnknownType(t *testing.T) {
	price, deposit := Estimate(ClassType(""), 3, "2 hours")
	assert.Zero(t, price)
	assert.Zero(t, deposit)
}

func TestEstimateKeepsFullPrecision(t *testing.T) {
	// The deposit carries full float precision; rounding belongs to the
	// display layer.
	_, deposit := Estimate(ClassTypePrivate, 3, "1 hour")
	assert.InDelta(t, 4199.3, deposit, 0.0001)
}
