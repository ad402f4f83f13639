package streamgen_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pawelbeza2/ledgergen/streamgen"
)

func Test_Amount_String(t *testing.T) {
	tests := []struct {
		name     string
		amount   streamgen.Amount
		expected string
	}{
		{name: "whole_units_only", amount: 100_0000, expected: "100"},
		{name: "all_four_decimals", amount: 173_2145, expected: "173.2145"},
		{name: "trailing_zeros_trimmed", amount: 150_5000, expected: "150.5"},
		{name: "two_decimals", amount: 199_9900, expected: "199.99"},
		{name: "leading_zero_fraction", amount: 120_0042, expected: "120.0042"},
		{name: "single_ten_thousandth", amount: 100_0001, expected: "100.0001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.amount.String())
		})
	}
}

func Test_Record_CSVLine(t *testing.T) {
	tests := []struct {
		name     string
		record   streamgen.Record
		expected string
	}{
		{
			name:     "deposit_has_four_columns",
			record:   streamgen.BuildDeposit(3, 17, 173_2145),
			expected: "deposit,3,17,173.2145",
		},
		{
			name:     "withdrawal_has_four_columns",
			record:   streamgen.BuildWithdrawal(0, 0, 100_0000),
			expected: "withdrawal,0,0,100",
		},
		{
			name:     "dispute_has_three_columns",
			record:   streamgen.BuildDispute(5, 9),
			expected: "dispute,5,9",
		},
		{
			name:     "resolve_has_three_columns",
			record:   streamgen.BuildResolve(2, 4),
			expected: "resolve,2,4",
		},
		{
			name:     "chargeback_has_three_columns",
			record:   streamgen.BuildChargeback(8, 12),
			expected: "chargeback,8,12",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.record.CSVLine())
		})
	}
}

func Test_Record_HasAmount(t *testing.T) {
	assert.True(t, streamgen.BuildDeposit(1, 1, 100_0000).HasAmount())
	assert.True(t, streamgen.BuildWithdrawal(1, 1, 100_0000).HasAmount())
	assert.False(t, streamgen.BuildDispute(1, 1).HasAmount())
	assert.False(t, streamgen.BuildResolve(1, 1).HasAmount())
	assert.False(t, streamgen.BuildChargeback(1, 1).HasAmount())
}

func Test_Record_PayloadToJSON(t *testing.T) {
	tests := []struct {
		name     string
		record   streamgen.Record
		expected string
	}{
		{
			name:     "base_transaction_carries_amount_as_string",
			record:   streamgen.BuildDeposit(3, 17, 173_2145),
			expected: `{"type":"deposit","client":3,"tx":17,"amount":"173.2145"}`,
		},
		{
			name:     "lifecycle_record_omits_amount",
			record:   streamgen.BuildChargeback(8, 12),
			expected: `{"type":"chargeback","client":8,"tx":12}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payloadJSON, err := tt.record.PayloadToJSON()

			assert.NoError(t, err)
			assert.JSONEq(t, tt.expected, string(payloadJSON))
		})
	}
}
