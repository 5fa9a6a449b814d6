package institution

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeed_IsValid(t *testing.T) {
	c := Seed()
	require.NoError(t, c.Validate())
	assert.Len(t, c, 25)
}

func TestReduceDependency_ClampsAtZero(t *testing.T) {
	i := Institution{ID: 1, Dependency: 3}
	i.ReduceDependency(10)
	assert.Equal(t, 0.0, i.Dependency)
}

func TestReduceDependency_FrozenOnceLiberated(t *testing.T) {
	i := Institution{ID: 1, Dependency: 40}
	i.Liberate(20)
	i.ReduceDependency(10)
	assert.Equal(t, 40.0, i.Dependency)
}

func TestLiberate_SecondCallKeepsRadius(t *testing.T) {
	i := Institution{ID: 1, Dependency: 40}
	i.Liberate(20)
	i.InfluenceRadius = 35.5
	i.Liberate(20)
	assert.True(t, i.Liberated)
	assert.Equal(t, 35.5, i.InfluenceRadius)
}

func TestClone_DoesNotShareBacking(t *testing.T) {
	c := Seed()
	copied := c.Clone()
	copied[0].Dependency = 1
	assert.Equal(t, 80.0, c[0].Dependency)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "map.yaml")
	body := `institutions:
  - id: 1
    name: Mairie de Test
    lat: 48.0
    lng: 2.0
    dependency: 75
  - id: 2
    name: Université de Test
    lat: 49.0
    lng: 3.0
    dependency: 60
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	c, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, c, 2)
	assert.Equal(t, "Mairie de Test", c[0].Name)
	assert.Equal(t, 60.0, c[1].Dependency)
}

func TestLoadFile_RejectsDuplicateIDs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "map.yaml")
	body := `institutions:
  - id: 1
    name: A
    dependency: 10
  - id: 1
    name: B
    dependency: 20
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	_, err := LoadFile(path)
	assert.Error(t, err)
}
