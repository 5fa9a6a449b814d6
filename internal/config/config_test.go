package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBalanceFor_Presets(t *testing.T) {
	def, err := BalanceFor("")
	require.NoError(t, err)
	assert.Equal(t, Default(), def)

	casual, err := BalanceFor("casual")
	require.NoError(t, err)
	assert.Greater(t, casual.StartingMoney, def.StartingMoney)

	hard, err := BalanceFor("hard")
	require.NoError(t, err)
	assert.Less(t, hard.SpreadContribution, def.SpreadContribution)

	_, err = BalanceFor("nightmare")
	assert.Error(t, err)
}

func TestLoadFile_OverridesOnTopOfPreset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := `addr: ":9000"
tick_ms: 250
difficulty: hard
seed: 42
balance:
  cancel_fee: 5
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.Addr)
	assert.Equal(t, 250*time.Millisecond, cfg.TickInterval())
	assert.Equal(t, int64(42), cfg.Seed)
	// File key wins over the hard preset...
	assert.Equal(t, 5.0, cfg.Balance.CancelFee)
	// ...while untouched keys keep the preset value.
	assert.Equal(t, Hard().FailurePenalty, cfg.Balance.FailurePenalty)
}

func TestLoadFile_RejectsNonPositiveTick(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tick_ms: 0\n"), 0o644))

	_, err := LoadFile(path)
	assert.Error(t, err)
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("DIFFICULTY", "casual")
	t.Setenv("SPREAD_CONTRIBUTION", "0.02")
	t.Setenv("CANCEL_FEE", "not-a-number")

	cfg := FromEnv()
	assert.Equal(t, Casual().StartingMoney, cfg.StartingMoney)
	assert.Equal(t, 0.02, cfg.SpreadContribution)
	assert.Equal(t, Casual().CancelFee, cfg.CancelFee)
}
