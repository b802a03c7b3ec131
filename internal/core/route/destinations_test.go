package route

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDestinations_CoversStatesAndCapital(t *testing.T) {
	all := Destinations()

	assert.Len(t, all, 37)
	for i := 1; i < len(all); i++ {
		assert.LessOrEqual(t, all[i-1].Name, all[i].Name)
	}
}

func TestLookupDestination(t *testing.T) {
	dest, coords := LookupDestination("lagos")
	require.NotNil(t, dest)
	require.NotNil(t, coords)
	assert.Equal(t, "Lagos", dest.Key)
	assert.Equal(t, 6.5244, coords.Latitude)
	assert.Equal(t, 3.3792, coords.Longitude)

	dest, coords = LookupDestination(" FCT ")
	require.NotNil(t, dest)
	assert.Equal(t, "Federal Capital Territory", dest.Name)
	assert.Equal(t, 9.0765, coords.Latitude)

	dest, coords = LookupDestination("Atlantis")
	assert.Nil(t, dest)
	assert.Nil(t, coords)
	assert.False(t, IsKnownDestination(""))
	assert.True(t, IsKnownDestination("AkwaIbom"))
}

func TestDestinations_ReturnsCopy(t *testing.T) {
	all := Destinations()
	all[0].Name = "changed"

	assert.NotEqual(t, "changed", Destinations()[0].Name)
}
