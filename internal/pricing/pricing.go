package pricing

import (
	"regexp"
	"strconv"
)

// ClassType values match what the booking form submits and what is stored
// in the reservations table.
type ClassType string

const (
	ClassTypeDance   ClassType = "Dance Class"
	ClassTypePrivate ClassType = "Private Class"
	ClassTypeRental  ClassType = "Rental"
)

// DepositRate is the fixed deposit policy: 70% of the estimated price
// must be paid up front before an admin will confirm the reservation.
const DepositRate = 0.70

// RentalHourlyRate is the studio rental price per hour.
const RentalHourlyRate = 1500

// DanceClassPrice is the flat per-person price of a regular dance class.
const DanceClassPrice = 350

// privateTier maps an inclusive participant range to a flat price.
type privateTier struct {
	min, max int
	price    float64
}

// NOTE: the 31-40 tier and the 41+ fallback both resolve to 113000.
// Every other tier is a distinct step, so this looks like a data-entry
// mistake in the price list, but it is what the business currently
// charges. Do not change without product sign-off.
var privateTiers = []privateTier{
	{1, 1, 3999},
	{2, 5, 5999},
	{6, 10, 7999},
	{11, 20, 9999},
	{21, 30, 11999},
	{31, 40, 113000},
}

const privateTierCeiling = 113000

var hoursPattern = regexp.MustCompile(`(\d+(?:\.\d+)?)`)

// ParseHours extracts the first numeric token from a free-text duration
// such as "2 hours" or "1.5 hrs". Fields without any digits default to
// one hour.
func ParseHours(durationText string) float64 {
	match := hoursPattern.FindString(durationText)
	if match == "" {
		return 1
	}

	hours, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 1
	}
	return hours
}

// EffectiveParticipants normalizes the participant count before pricing.
// Dance classes are always booked per person, so the count is forced to 1
// no matter what the form submitted. Non-positive counts also fall back
// to 1.
func EffectiveParticipants(classType ClassType, participants int) int {
	if classType == ClassTypeDance {
		return 1
	}
	if participants < 1 {
		return 1
	}
	return participants
}

// Estimate computes the estimated price and the 70% deposit for a
// reservation. It is pure: the booking form calls it on every input
// change, not just on submit.
//
// Pricing rules by class type:
//   - Dance Class: flat rate, single participant.
//   - Private Class: tiered flat rate by participant count.
//   - Rental: hourly rate times the parsed duration.
//   - anything else: 0 (the form has no type selected yet).
//
// Both values keep full float precision; rounding to 2 decimals happens
// only at display/formatting time.
func Estimate(classType ClassType, participants int, durationText string) (price, deposit float64) {
	effective := EffectiveParticipants(classType, participants)

	switch classType {
	case ClassTypeDance:
		price = DanceClassPrice
	case ClassTypePrivate:
		price = privateTierCeiling
		for _, tier := range privateTiers {
			if effective >= tier.min && effective <= tier.max {
				price = tier.price
				break
			}
		}
	case ClassTypeRental:
		price = RentalHourlyRate * ParseHours(durationText)
	default:
		price = 0
	}

	return price, price * DepositRate
}
