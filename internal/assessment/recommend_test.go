package assessment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func topics(recs []Recommendation) []string {
	out := make([]string, len(recs))
	for i, r := range recs {
		out[i] = r.Topic
	}
	return out
}

func TestRecommendations(t *testing.T) {
	a := NewAnalyzer()

	t.Run("healthy organization only gets the weakest element suggestion", func(t *testing.T) {
		res, err := a.RunFullAnalysis(uniformRatings(6))
		require.NoError(t, err)

		recs := Recommendations(res)
		// Balance and coherence are 1.0, all scores 6, but the weakest order
		// element suggestion is always present.
		require.Len(t, recs, 1)
		assert.Equal(t, "Kultur entwickeln", recs[0].Topic)
	})

	t.Run("imbalanced perspectives trigger balance and weak perspective advice", func(t *testing.T) {
		r := DefaultRatings()
		for _, key := range perspectiveIndicators[DimNormative] {
			r[key] = 7
		}
		for _, key := range perspectiveIndicators[DimStrategic] {
			r[key] = 1
		}
		for _, key := range perspectiveIndicators[DimOperational] {
			r[key] = 1
		}

		res, err := a.RunFullAnalysis(r)
		require.NoError(t, err)

		got := topics(Recommendations(res))
		assert.Contains(t, got, "Management-Balance verbessern")
		assert.Contains(t, got, "Strategische Perspektive stärken")
		assert.Contains(t, got, "Operative Perspektive stärken")
		assert.NotContains(t, got, "Normative Perspektive stärken")
	})

	t.Run("incoherent order elements trigger coherence advice", func(t *testing.T) {
		r := DefaultRatings()
		for _, key := range orderElementIndicators[DimTechnology] {
			r[key] = 1
		}
		for _, key := range orderElementIndicators[DimCulture] {
			r[key] = 7
		}

		res, err := a.RunFullAnalysis(r)
		require.NoError(t, err)

		got := topics(Recommendations(res))
		assert.Contains(t, got, "Ordnungs-Kohärenz erhöhen")
		assert.Contains(t, got, "Technologien modernisieren")
	})

	t.Run("empty ratings produce the full advice set", func(t *testing.T) {
		res, err := a.RunFullAnalysis(Ratings{})
		require.NoError(t, err)

		got := topics(Recommendations(res))
		// Composites are 1.0 (zero spread) so the balance/coherence advice is
		// absent, but every perspective score of 0 is below the midpoint.
		assert.NotContains(t, got, "Management-Balance verbessern")
		assert.Contains(t, got, "Normative Perspektive stärken")
		assert.Contains(t, got, "Strategische Perspektive stärken")
		assert.Contains(t, got, "Operative Perspektive stärken")
		assert.Contains(t, got, "Kultur entwickeln")
	})
}
