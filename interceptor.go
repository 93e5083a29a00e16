package devguard

// ResetDecision is the framework's own judgment of whether a requested
// parameter change can be satisfied by an in-place device reset (true) or
// requires full device recreation (false).
type ResetDecision func(from, to DeviceSnapshot) bool

// CanDeviceReset wraps the framework's reset-capability decision point.
// It logs the adapter (deduplicated per adapter id) and a one-line diff of
// every tracked parameter, then delegates to decide unmodified. This hook
// observes; it never vetoes.
//
// Exactly one transition line is emitted per invocation, whether or not
// anything changed.
func (s *Supervisor) CanDeviceReset(from, to DeviceSnapshot, decide ResetDecision) bool {
	s.logAdapter(to)
	Logger().Debug("device reset requested", "transition", formatTransitions(from, to))
	s.metrics.incResetChecks()

	if decide == nil {
		return false
	}
	return decide(from, to)
}
