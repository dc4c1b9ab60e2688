package simulate

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PhelGc/fermenta/internal/evaluator"
	"github.com/PhelGc/fermenta/internal/reference"
)

func within(t *testing.T, r Range, v float64) {
	t.Helper()
	assert.GreaterOrEqual(t, v, r.Min)
	assert.LessOrEqual(t, v, r.Max)
}

func TestRunStaysWithinRanges(t *testing.T) {
	engine := evaluator.NewEngine(reference.Default())
	tables := reference.Default()

	for _, mode := range []Mode{ModeUniform, ModeDrift} {
		t.Run(string(mode), func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Mode = mode
			cfg.Steps = 50

			steps, err := Run(engine, cfg)
			require.NoError(t, err)
			require.Len(t, steps, 50)

			for i, step := range steps {
				assert.Equal(t, i, step.Index)
				within(t, cfg.Ranges.SugarMassGrams, step.Params.SugarMassGrams)
				within(t, cfg.Ranges.YeastMassGrams, step.Params.YeastMassGrams)
				within(t, cfg.Ranges.FermentationHours, step.Params.FermentationHours)
				within(t, cfg.Ranges.DistillationTempC, step.Params.DistillationTempC)
				assert.True(t, tables.KnownYeast(step.Params.YeastType))
				assert.NotEqual(t, reference.SugarUnknown, reference.ParseSugar(step.Params.SugarType))
				assert.Equal(t, engine.Score(step.Params), step.Result)
			}
		})
	}
}

func TestRunIsDeterministic(t *testing.T) {
	engine := evaluator.NewEngine(reference.Default())

	for _, mode := range []Mode{ModeUniform, ModeDrift} {
		cfg := DefaultConfig()
		cfg.Mode = mode
		cfg.Seed = 42

		first, err := Run(engine, cfg)
		require.NoError(t, err)
		second, err := Run(engine, cfg)
		require.NoError(t, err)

		if diff := cmp.Diff(first, second); diff != "" {
			t.Errorf("%s: same seed produced different series:\n%s", mode, diff)
		}
	}
}

func TestDriftKeepsTypesFixed(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Mode = ModeDrift
	steps, err := Run(evaluator.NewEngine(reference.Default()), cfg)
	require.NoError(t, err)

	for _, step := range steps[1:] {
		assert.Equal(t, steps[0].Params.SugarType, step.Params.SugarType)
		assert.Equal(t, steps[0].Params.YeastType, step.Params.YeastType)
	}
}

func TestRunErrors(t *testing.T) {
	engine := evaluator.NewEngine(reference.Default())

	cfg := DefaultConfig()
	cfg.Steps = 0
	_, err := Run(engine, cfg)
	assert.Error(t, err)

	cfg = DefaultConfig()
	cfg.Mode = "chaotic"
	_, err = Run(engine, cfg)
	assert.Error(t, err)
}

func TestSummarize(t *testing.T) {
	assert.Equal(t, Stats{}, Summarize(nil))

	steps := []Step{
		{Result: evaluator.Result{Score: 10}},
		{Result: evaluator.Result{Score: 40}},
		{Result: evaluator.Result{Score: 25}},
	}
	assert.Equal(t, Stats{Steps: 3, Min: 10, Max: 40, Mean: 25}, Summarize(steps))
}
