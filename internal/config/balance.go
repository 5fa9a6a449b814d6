package config

// Balance holds the gameplay tuning constants. Every numeric rule in the
// engine reads from here so balance passes never touch engine code.
type Balance struct {
	// Player start
	StartingMoney       float64 `yaml:"starting_money" json:"starting_money"`
	StartingMarketShare float64 `yaml:"starting_market_share" json:"starting_market_share"`

	// Mission events. Trigger chance is
	// EventBaseChance + (dependency/100)*EventDependencyChance.
	EventBaseChance       float64 `yaml:"event_base_chance" json:"event_base_chance"`
	EventDependencyChance float64 `yaml:"event_dependency_chance" json:"event_dependency_chance"`

	// Mission progress. Speed per tick is
	// max(MissionMinSpeed, MissionBaseSpeed * exp(-dependency/MissionSpeedDecay)).
	MissionBaseSpeed     float64 `yaml:"mission_base_speed" json:"mission_base_speed"`
	MissionSpeedDecay    float64 `yaml:"mission_speed_decay" json:"mission_speed_decay"`
	MissionMinSpeed      float64 `yaml:"mission_min_speed" json:"mission_min_speed"`
	AutomationSpeedMult  float64 `yaml:"automation_speed_mult" json:"automation_speed_mult"`
	BuildServerSpeedMult float64 `yaml:"build_server_speed_mult" json:"build_server_speed_mult"`

	// Completion and abandonment
	RewardBase          float64 `yaml:"reward_base" json:"reward_base"`
	RewardPerDependency float64 `yaml:"reward_per_dependency" json:"reward_per_dependency"`
	FailurePenalty      float64 `yaml:"failure_penalty" json:"failure_penalty"`
	CancelFee           float64 `yaml:"cancel_fee" json:"cancel_fee"`
	LegalAidFactor      float64 `yaml:"legal_aid_factor" json:"legal_aid_factor"`

	// Spread. Distances are in kilometers.
	SpreadBaseRadius    float64 `yaml:"spread_base_radius" json:"spread_base_radius"`
	SpreadRadiusGrowth  float64 `yaml:"spread_radius_growth" json:"spread_radius_growth"`
	SpreadContribution  float64 `yaml:"spread_contribution" json:"spread_contribution"`
	SpreadMaxPerTick    float64 `yaml:"spread_max_per_tick" json:"spread_max_per_tick"` // 0 = uncapped
	CommunitySpreadMult float64 `yaml:"community_spread_mult" json:"community_spread_mult"`

	// One-time upgrade effects
	TrainingMaterialsReduction float64 `yaml:"training_materials_reduction" json:"training_materials_reduction"`
	AwarenessCampaignReduction float64 `yaml:"awareness_campaign_reduction" json:"awareness_campaign_reduction"`

	// Passive income per collection tick
	ContributorIncome float64 `yaml:"contributor_income" json:"contributor_income"`
	LobbyingIncome    float64 `yaml:"lobbying_income" json:"lobbying_income"`
}

// Default returns the default balance configuration.
func Default() Balance {
	return Balance{
		StartingMoney:       50,
		StartingMarketShare: 95,

		EventBaseChance:       0.01,
		EventDependencyChance: 0.05,

		MissionBaseSpeed:     10,
		MissionSpeedDecay:    40,
		MissionMinSpeed:      0.2,
		AutomationSpeedMult:  1.5,
		BuildServerSpeedMult: 1.2,

		RewardBase:          100,
		RewardPerDependency: 2,
		FailurePenalty:      50,
		CancelFee:           20,
		LegalAidFactor:      0.5,

		SpreadBaseRadius:    20,
		SpreadRadiusGrowth:  1.5,
		SpreadContribution:  0.05,
		SpreadMaxPerTick:    0,
		CommunitySpreadMult: 1.5,

		TrainingMaterialsReduction: 5,
		AwarenessCampaignReduction: 10,

		ContributorIncome: 10,
		LobbyingIncome:    15,
	}
}

// Casual returns easier balance for casual play.
func Casual() Balance {
	cfg := Default()
	cfg.StartingMoney = 150
	cfg.EventDependencyChance = 0.03
	cfg.SpreadContribution = 0.15
	cfg.CancelFee = 10
	cfg.FailurePenalty = 25
	return cfg
}

// Hard returns harder balance for experienced players.
func Hard() Balance {
	cfg := Default()
	cfg.StartingMoney = 25
	cfg.EventBaseChance = 0.02
	cfg.EventDependencyChance = 0.06
	cfg.SpreadContribution = 0.01
	cfg.FailurePenalty = 75
	cfg.CancelFee = 30
	return cfg
}
