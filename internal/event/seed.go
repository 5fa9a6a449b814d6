package event

// Seed returns the built-in mission event pool.
func Seed() Catalog {
	return Catalog{
		{
			ID:          HardwareIssue,
			Title:       "Critical Hardware Incompatibility",
			Description: "A key piece of hardware is incompatible with the new Linux install. This is a major setback.",
			Choices: []Choice{
				{Text: "Source compatible hardware ($150)", MoneyDelta: -150, ProgressDelta: 30},
				{Text: "Attempt a workaround (+20% risk)", ProgressDelta: 10, RiskPercent: 20},
			},
		},
		{
			ID:          StaffTraining,
			Title:       "Staff Training Required",
			Description: "The institution's staff needs urgent training on the new systems.",
			Choices: []Choice{
				{Text: "Run an express workshop ($50)", MoneyDelta: -50, ProgressDelta: 15},
				{Text: "Use online docs (no cost)", ProgressDelta: 5},
			},
		},
		{
			ID:          VendorPressure,
			Title:       "Vendor Pressure Campaign",
			Description: "The incumbent vendor is offering the decision makers steep last-minute discounts to stall the migration.",
			Choices: []Choice{
				{Text: "Commission a public cost study ($80)", MoneyDelta: -80, ProgressDelta: 20},
				{Text: "Escalate to the press (+25% risk)", ProgressDelta: 15, RiskPercent: 25},
			},
		},
	}
}
