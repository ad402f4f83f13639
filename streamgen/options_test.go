package streamgen_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pawelbeza2/ledgergen/streamgen"
)

func Test_GeneratorOptions_RejectProbabilitiesOutOfRange(t *testing.T) {
	tests := []struct {
		name   string
		option streamgen.Option
	}{
		{name: "new_client_below_zero", option: streamgen.WithNewClientProbability(-0.1)},
		{name: "new_client_above_one", option: streamgen.WithNewClientProbability(1.1)},
		{name: "dispute_below_zero", option: streamgen.WithDisputeProbability(-0.1)},
		{name: "dispute_above_one", option: streamgen.WithDisputeProbability(1.1)},
		{name: "resolve_below_zero", option: streamgen.WithResolveProbability(-0.1)},
		{name: "resolve_above_one", option: streamgen.WithResolveProbability(1.1)},
		{name: "chargeback_below_zero", option: streamgen.WithChargebackProbability(-0.1)},
		{name: "chargeback_above_one", option: streamgen.WithChargebackProbability(1.1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			generator, err := streamgen.NewGenerator(tt.option)

			assert.ErrorIs(t, err, streamgen.ErrProbabilityOutOfRange)
			assert.Nil(t, generator)
		})
	}
}

func Test_GeneratorOptions_RejectNilRandSource(t *testing.T) {
	generator, err := streamgen.NewGenerator(streamgen.WithRand(nil))

	assert.ErrorIs(t, err, streamgen.ErrNilRandSource)
	assert.Nil(t, generator)
}

func Test_GeneratorOptions_WithRandMatchesWithSeed(t *testing.T) {
	seeded, err := streamgen.NewGenerator(streamgen.WithSeed(7))
	require.NoError(t, err)

	custom, err := streamgen.NewGenerator(
		streamgen.WithRand(rand.New(rand.NewPCG(7, 7))),
	)
	require.NoError(t, err)

	seededRecords, err := seeded.Generate(500)
	require.NoError(t, err)

	customRecords, err := custom.Generate(500)
	require.NoError(t, err)

	assert.Equal(t, seededRecords, customRecords)
}

func Test_GeneratorOptions_BoundaryProbabilitiesAreValid(t *testing.T) {
	generator, err := streamgen.NewGenerator(
		streamgen.WithSeed(1),
		streamgen.WithNewClientProbability(1),
		streamgen.WithDisputeProbability(0),
		streamgen.WithResolveProbability(0),
		streamgen.WithChargebackProbability(0),
	)
	require.NoError(t, err)

	records, err := generator.Generate(100)
	require.NoError(t, err)

	// Always-new-client with no disputes: exactly one base transaction per
	// step, clients marching up from 1.
	require.Len(t, records, 100)
	for i, record := range records {
		assert.True(t, record.HasAmount())
		assert.Equal(t, streamgen.ClientIDUint(i+1), record.Client)
	}
}
