// Package event holds the mission event catalog: branching interruptions a
// mission can hit, each offering choices with money/progress/risk trade-offs.
package event

// Known event ids.
const (
	HardwareIssue  = "hardware-issue"
	StaffTraining  = "staff-training"
	VendorPressure = "vendor-pressure"
)

// Choice is one player option on an event. MoneyDelta and ProgressDelta are
// applied on a successful resolve; RiskPercent is the chance (0-100) that
// picking this choice fails the whole mission instead.
type Choice struct {
	Text          string  `json:"text"`
	MoneyDelta    float64 `json:"money_delta"`
	ProgressDelta float64 `json:"progress_delta"`
	RiskPercent   float64 `json:"risk_percent"`
}

// Event is a stateless template; the game state references the active one
// by value while a choice is pending.
type Event struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Choices     []Choice `json:"choices"`
}

// Catalog is the read-only event pool missions draw from.
type Catalog []Event
