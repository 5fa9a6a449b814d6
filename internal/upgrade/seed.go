package upgrade

// Seed returns the built-in upgrade shop.
func Seed() Catalog {
	return Catalog{
		{
			ID:          AutomationScripts,
			Name:        "Automation Scripts",
			Description: "Develop and share automation scripts. Increases mission progress speed by 50%.",
			Effect:      "mission speed x1.5",
			Cost:        150,
		},
		{
			ID:          BuildServers,
			Name:        "Community Build Servers",
			Description: "Stand up shared build infrastructure so migrations ship faster. Increases mission progress speed by 20%.",
			Effect:      "mission speed x1.2",
			Cost:        200,
		},
		{
			ID:          HardwareCertification,
			Name:        "Hardware Certification Program",
			Description: "Certify hardware for Linux compatibility. Removes hardware incompatibility events from missions.",
			Effect:      "no hardware events",
			Cost:        250,
		},
		{
			ID:          CommunityBuilding,
			Name:        "Community Building",
			Description: "Foster local communities. Increases the radius growth and impact of liberation spread.",
			Effect:      "spread x1.5",
			Cost:        300,
		},
		{
			ID:          LegalAid,
			Name:        "Legal Aid Network",
			Description: "Retain lawyers versed in public procurement. Halves money penalties from mission events.",
			Effect:      "event penalties x0.5",
			Cost:        350,
		},
		{
			ID:          TrainingMaterials,
			Name:        "Better Training Materials",
			Description: "Create high-quality training materials. Provides a small, permanent dependency reduction for all non-liberated institutions.",
			Effect:      "dependency -5 once",
			Cost:        400,
		},
		{
			ID:          OpenSourceContribution,
			Name:        "Open Source Contributor",
			Description: "Become a regular contributor to key open source projects. Generates a passive income of $10 per collection tick.",
			Effect:      "passive income +10",
			Cost:        500,
		},
		{
			ID:          AwarenessCampaign,
			Name:        "National Awareness Campaign",
			Description: "Run a country-wide campaign on software freedom. Provides a large, permanent dependency reduction for all non-liberated institutions.",
			Effect:      "dependency -10 once",
			Cost:        550,
		},
		{
			ID:          PolicyLobbying,
			Name:        "Policy Lobbying",
			Description: "Lobby for free-software procurement rules. Generates a passive income of $15 per collection tick.",
			Effect:      "passive income +15",
			Cost:        600,
		},
	}
}
