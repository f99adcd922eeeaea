package assessment

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palcemvglaz/neb-hetzner-deploy-sub001/internal/model"
)

func TestBuildNarrative(t *testing.T) {
	t.Run("every archetype has fixed texts", func(t *testing.T) {
		for archetype := range archetypeTexts {
			chars, recs, _ := BuildNarrative(axes(5, 5, 0), archetype, model.DangerLow, 5, nil)
			assert.NotEmpty(t, chars, archetype)
			assert.NotEmpty(t, recs, archetype)
		}
	})

	t.Run("consistency flags pass through first", func(t *testing.T) {
		flags := []string{"claims X without Y"}
		_, _, red := BuildNarrative(axes(5, 5, 0), model.ArchetypeBalancedRider, model.DangerLow, 2, flags)
		require.NotEmpty(t, red)
		assert.Equal(t, "claims X without Y", red[0])
	})

	t.Run("stagnation flag for lagging skill growth", func(t *testing.T) {
		_, _, red := BuildNarrative(axes(3, 2.5, 0), model.ArchetypeNervousBeginner, model.DangerMedium, 5, nil)
		joined := strings.Join(red, "\n")
		assert.Contains(t, joined, "Skill growth lagging")
	})

	t.Run("critical stagnation variant for veterans", func(t *testing.T) {
		_, _, red := BuildNarrative(axes(3, 3, 0), model.ArchetypeBalancedRider, model.DangerMedium, 8, nil)
		joined := strings.Join(red, "\n")
		assert.Contains(t, joined, "Critical skill stagnation")
	})

	t.Run("no stagnation flag inside the tolerance band", func(t *testing.T) {
		// Expected floor for 8 years is 5; 4.5 is within the one-point band.
		_, _, red := BuildNarrative(axes(3, 4.5, 0), model.ArchetypeBalancedRider, model.DangerMedium, 8, nil)
		for _, f := range red {
			assert.NotContains(t, f, "stagnation")
		}
	})

	t.Run("extreme axes raise dedicated flags", func(t *testing.T) {
		_, _, red := BuildNarrative(axes(9, 2, 4.5), model.ArchetypeDangerousNovice, model.DangerCritical, 0.5, nil)
		joined := strings.Join(red, "\n")
		assert.Contains(t, joined, "Critical danger level")
		assert.Contains(t, joined, "Extreme risk appetite")
		assert.Contains(t, joined, "Extreme overconfidence")
		assert.Contains(t, joined, "far above current skill")
	})

	t.Run("balanced mid-band rider gets no red flags", func(t *testing.T) {
		_, _, red := BuildNarrative(axes(5, 5, 0), model.ArchetypeBalancedRider, model.DangerLow, 2, nil)
		assert.Empty(t, red)
	})
}
