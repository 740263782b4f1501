package srarq

import (
	"context"
	"errors"
	"io"
	"testing"

	mocklogging "github.com/srarq/srarq/internal/mocks/logging"
	"github.com/srarq/srarq/logging"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestReceiverTransfer(t *testing.T) {
	tr := newMockTransport(t, receiverAddr, senderAddr)
	gomock.InOrder(
		expectReceive(tr, "Net"),
		expectReceive(tr, "work"),
		expectSend(tr, "Success"),
		expectReceive(tr, "1,0,2,"),
		expectSend(tr, "1,0,2,"),
		expectReceive(tr, "3,FIN,"),
		expectSend(tr, "3,FIN,"),
		// the sender retransmitted before receiving the acknowledgment
		expectReceive(tr, "3,"),
		expectSend(tr, "3,"),
		tr.EXPECT().Receive().Return(nil, io.EOF),
		tr.EXPECT().Close(),
	)
	stats, err := ReceiveOver(tr, nil)
	require.NoError(t, err)
	require.Equal(t, int64(4), stats.SegmentsReceived)
	require.Equal(t, int64(1), stats.Duplicates)
	require.Equal(t, int64(5), stats.AcksSent)
}

func TestReceiverTokenSplitAcrossReads(t *testing.T) {
	tr := newMockTransport(t, receiverAddr, senderAddr)
	gomock.InOrder(
		expectReceive(tr, "Network"),
		expectSend(tr, "Success"),
		expectReceive(tr, "0,1"),
		expectSend(tr, "0,"),
		expectReceive(tr, "0"),
		expectReceive(tr, ",F"),
		expectSend(tr, "10,"),
		expectReceive(tr, "IN,foo,"),
		expectSend(tr, "FIN,"),
		tr.EXPECT().Receive().Return(nil, errDeadline),
		tr.EXPECT().Close(),
	)
	stats, err := ReceiveOver(tr, nil)
	require.NoError(t, err)
	require.Equal(t, int64(2), stats.SegmentsReceived)
	require.Equal(t, int64(1), stats.DroppedTokens)
}

func TestReceiverEOFBeforeFIN(t *testing.T) {
	tr := newMockTransport(t, receiverAddr, senderAddr)
	gomock.InOrder(
		expectReceive(tr, "Network"),
		expectSend(tr, "Success"),
		expectReceive(tr, "0,"),
		expectSend(tr, "0,"),
		tr.EXPECT().Receive().Return(nil, io.EOF),
		tr.EXPECT().Close(),
	)
	stats, err := ReceiveOver(tr, nil)
	require.ErrorIs(t, err, io.EOF)
	var serr *SessionError
	require.ErrorAs(t, err, &serr)
	require.Equal(t, logging.PerspectiveReceiver, serr.Perspective)
	require.Equal(t, int64(1), stats.SegmentsReceived)
}

func TestReceiverIdleTimeout(t *testing.T) {
	tr := newMockTransport(t, receiverAddr, senderAddr)
	gomock.InOrder(
		expectReceive(tr, "Network"),
		expectSend(tr, "Success"),
		tr.EXPECT().Receive().Return(nil, errDeadline),
		tr.EXPECT().Close(),
	)
	_, err := ReceiveOver(tr, nil)
	var terr *IdleTimeoutError
	require.ErrorAs(t, err, &terr)
}

func TestReceiverHandshakeFailure(t *testing.T) {
	tr := newMockTransport(t, receiverAddr, senderAddr)
	gomock.InOrder(
		expectReceive(tr, "Networ"),
		expectReceive(tr, "k0,1,"),
		tr.EXPECT().Close(),
	)
	_, err := ReceiveOver(tr, nil)
	var herr *HandshakeError
	require.ErrorAs(t, err, &herr)
	require.Equal(t, "Network", herr.Expected)
	require.Equal(t, []byte("Network0,1,"), herr.Received)
}

func TestReceiverSendFailureAfterFIN(t *testing.T) {
	tr := newMockTransport(t, receiverAddr, senderAddr)
	gomock.InOrder(
		expectReceive(tr, "Network"),
		expectSend(tr, "Success"),
		expectReceive(tr, "0,FIN,"),
		expectSend(tr, "0,FIN,").Return(errors.New("broken pipe")),
		tr.EXPECT().Close(),
	)
	_, err := ReceiveOver(tr, nil)
	require.NoError(t, err)
}

func TestReceiverDropsSegmentsBeyondWindow(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	tracer, mockTracer := mocklogging.NewMockSessionTracer(mockCtrl)
	tr := newMockTransport(t, receiverAddr, senderAddr)
	gomock.InOrder(
		expectReceive(tr, "Network"),
		expectSend(tr, "Success"),
		expectReceive(tr, "70000,"),
		expectReceive(tr, "1,"),
		expectSend(tr, "1,"),
		tr.EXPECT().Receive().Return(nil, io.EOF),
		tr.EXPECT().Close(),
	)
	gomock.InOrder(
		mockTracer.EXPECT().StartedSession(receiverAddr, senderAddr),
		mockTracer.EXPECT().ProtocolAnomaly(SequenceNumber(70000), logging.AnomalyBeyondReceiveWindow),
		mockTracer.EXPECT().ReceivedSegment(SequenceNumber(1), false),
		mockTracer.EXPECT().ClosedSession(gomock.Any()),
		mockTracer.EXPECT().Close(),
	)
	stats, err := ReceiveOver(tr, &Config{
		MaxWindowSize: 4,
		Tracer: func(context.Context, logging.Perspective) *logging.SessionTracer {
			return tracer
		},
	})
	require.ErrorIs(t, err, io.EOF)
	require.Equal(t, int64(1), stats.Anomalies)
	require.Equal(t, int64(1), stats.SegmentsReceived)
}

func TestReceiverIgnoresConfiguredMaxWindow(t *testing.T) {
	tr := newMockTransport(t, receiverAddr, senderAddr)
	gomock.InOrder(
		expectReceive(tr, "Network"),
		expectSend(tr, "Success"),
		expectReceive(tr, "9,"),
		expectSend(tr, "9,"),
		tr.EXPECT().Receive().Return(nil, io.EOF),
		tr.EXPECT().Close(),
	)
	stats, err := ReceiveOver(tr, &Config{MaxWindowSize: 4})
	require.ErrorIs(t, err, io.EOF)
	require.Zero(t, stats.Anomalies)
	require.Equal(t, int64(1), stats.SegmentsReceived)
}
