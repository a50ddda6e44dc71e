package service

import "time"

const (
	MonthsPerYear = 12

	// RiskOccupancyThreshold is compared against the base occupancy, not the
	// seasonally adjusted one.
	RiskOccupancyThreshold = 0.50

	// TargetCashOnCashPercent is the ROI the financials view highlights.
	TargetCashOnCashPercent = 15.0

	DefaultGrowthBudget   = 100_000.0
	DefaultMinPrice       = 150.0
	DefaultSocialTopic    = "Fall Colors in Smokies"
	DefaultSocialPlatform = "Instagram"

	// Prompts only ever see the next week of pricing.
	PricingSampleDays = 7

	ThermostatMinF     = 60.0
	ThermostatMaxF     = 80.0
	LowBatteryPercent  = 20
	MaxMessageLength   = 4000
	DefaultGenerateTTL = 6 * time.Hour
)

var monthNames = [MonthsPerYear]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}
