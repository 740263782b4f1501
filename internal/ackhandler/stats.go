package ackhandler

// SentSegmentStats are the counters of a SentSegmentHandler.
// The FIN marker is not counted in Transmissions, Retransmissions and AcksReceived.
type SentSegmentStats struct {
	Transmissions   int64
	Retransmissions int64
	Losses          int64
	// AcksReceived counts the distinct data segments acknowledged
	AcksReceived  int64
	DuplicateAcks int64
	Anomalies     int64
}

// Goodput is the share of transmissions that were acknowledged.
func (s SentSegmentStats) Goodput() float64 {
	if s.Transmissions == 0 {
		return 0
	}
	return float64(s.AcksReceived) / float64(s.Transmissions)
}

// ReceivedSegmentStats are the counters of a ReceivedSegmentTracker.
type ReceivedSegmentStats struct {
	// SegmentsReceived counts distinct data segments
	SegmentsReceived int64
	Duplicates       int64
	// AcksSent counts the numbered acknowledgments, one per arrival
	AcksSent  int64
	Anomalies int64
}
