package devguard

const (
	fatalNoticeTitle = "Graphics device error"

	fatalNoticeMessage = "The graphics device was lost and had to be fully recreated after " +
		"startup, which this application cannot recover from. Experimental " +
		"graphics effects have been disabled for the next launch. Please " +
		"restart the application."
)

// OnContentLoaded is the lifecycle hook for device content (re)loads. The
// host calls it on every device creation or recreation. Reloads during the
// load phase are expected and recoverable; a reload after MarkLoadComplete
// means the device was recreated mid-run, every resource handle the host
// holds is gone, and the only safe action left is the fail-fast sequence.
func (s *Supervisor) OnContentLoaded(snap DeviceSnapshot) {
	s.logAdapter(snap)
	Logger().Debug("device content loaded", "device", snap.String())

	if !s.loadComplete.Load() {
		return
	}
	s.fatalOnce.Do(func() { s.failFast(snap) })
}

// failFast is the terminal action for an unrecoverable device recreation,
// in strict order: fatal diagnostic, disable the risky flag, persist,
// confirm, notify the user, terminate. Persistence is best-effort; a save
// failure is logged and the shutdown proceeds regardless.
func (s *Supervisor) failFast(snap DeviceSnapshot) {
	s.metrics.incRecreations()

	log := Logger()
	log.Error("device recreated after load completed, shutting down",
		"err", ErrDeviceRecreated,
		"adapter", snap.Adapter,
		"device", snap.String())

	if s.store != nil {
		s.store.SetBool(s.featureKey, false)
		if err := s.store.Save(); err != nil {
			log.Error("failed to persist corrected configuration", "err", err, "key", s.featureKey)
		}
		log.Error("disabled risky feature for next launch", "key", s.featureKey)
	}

	if s.notifier != nil {
		s.notifier.Notify(fatalNoticeTitle, fatalNoticeMessage)
	}
	s.exit(1)
}
