package shipment

// DeriveStatus maps the lifecycle timestamps to the shipment's current
// status. First match wins: a refused shipment stays refused no matter
// which other markers are set.
func DeriveStatus(s *Shipment) Status {
	switch {
	case s.RefusedAt != nil:
		return StatusRefused
	case s.CollectedAt != nil:
		return StatusCollected
	case s.FinishedAt != nil:
		return StatusFinished
	case s.DeliveredAt != nil:
		return StatusInProduction
	case s.ConfirmedAt != nil:
		return StatusConfirmed
	default:
		return StatusPending
	}
}

// OffsetDays is the difference between the informed and the system delivery
// estimation in whole days. Pending shipments always report zero; so do
// shipments missing either estimation.
func OffsetDays(s *Shipment) int {
	if DeriveStatus(s) == StatusPending {
		return 0
	}

	if s.InformedEstimation == nil || s.SystemEstimation == nil {
		return 0
	}

	return int(s.InformedEstimation.Sub(*s.SystemEstimation).Hours() / 24)
}
