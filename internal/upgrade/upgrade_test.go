package upgrade

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeed_IsValid(t *testing.T) {
	c := Seed()
	require.NoError(t, c.Validate())

	byID := c.ByID()
	for _, id := range []string{
		AutomationScripts, BuildServers, CommunityBuilding,
		HardwareCertification, LegalAid, OpenSourceContribution,
		PolicyLobbying, TrainingMaterials, AwarenessCampaign,
	} {
		_, ok := byID[id]
		assert.True(t, ok, "missing upgrade %s", id)
	}
}

func TestValidate_RejectsDuplicates(t *testing.T) {
	c := Catalog{
		{ID: "a", Name: "A", Cost: 10},
		{ID: "a", Name: "A again", Cost: 20},
	}
	assert.Error(t, c.Validate())
}
