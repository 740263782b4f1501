package logging

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCongestionStateStringer(t *testing.T) {
	require.Equal(t, "slow_start", CongestionStateSlowStart.String())
	require.Equal(t, "additive_increase", CongestionStateAdditiveIncrease.String())
	require.Equal(t, "multiplicative_decrease", CongestionStateMultiplicativeDecrease.String())
	require.Equal(t, "clamped", CongestionStateClamped.String())
	require.Equal(t, "unknown congestion state", CongestionState(42).String())
}

func TestAnomalyReasonStringer(t *testing.T) {
	require.Equal(t, "ack_out_of_range", AnomalyAckOutOfRange.String())
	require.Equal(t, "ack_sequence_mismatch", AnomalyAckSequenceMismatch.String())
	require.Equal(t, "ack_unsent", AnomalyAckUnsent.String())
	require.Equal(t, "beyond_receive_window", AnomalyBeyondReceiveWindow.String())
	require.Equal(t, "unknown anomaly", AnomalyReason(42).String())
}
