package evaluator

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestClassifyBoundaries(t *testing.T) {
	tests := []struct {
		score float64
		want  Tier
	}{
		{187.2, TierOptimal},
		{100.0001, TierOptimal},
		{100.0, TierSatisfactory},
		{85, TierSatisfactory},
		{70.0, TierSatisfactory},
		{69.9999, TierLow},
		{0, TierLow},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, DefaultThresholds.Classify(tt.score), "score %v", tt.score)
	}
}

func TestTierText(t *testing.T) {
	data, err := json.Marshal(map[string]Tier{"tier": TierSatisfactory})
	require.NoError(t, err)
	assert.JSONEq(t, `{"tier":"Satisfactory"}`, string(data))

	var decoded struct {
		Tier Tier `yaml:"tier"`
	}
	require.NoError(t, yaml.Unmarshal([]byte("tier: Optimal\n"), &decoded))
	assert.Equal(t, TierOptimal, decoded.Tier)

	var bad Tier
	assert.Error(t, bad.UnmarshalText([]byte("Great")))
	_, err = Tier(7).MarshalText()
	assert.Error(t, err)
	assert.Equal(t, "Tier(7)", Tier(7).String())
}

func TestEveryTierHasHeadline(t *testing.T) {
	for _, tier := range []Tier{TierLow, TierSatisfactory, TierOptimal} {
		assert.NotEmpty(t, tier.Headline(), tier.String())
	}
}
