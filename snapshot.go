package devguard

import (
	"fmt"
	"strconv"
	"strings"
)

// Profile is the graphics capability tier a device was created with.
// The two well-known tiers mirror the classic XNA-style split between
// constrained and full-feature hardware; hosts may use their own values.
type Profile string

const (
	// ProfileReach is the constrained capability tier.
	ProfileReach Profile = "Reach"

	// ProfileHiDef is the full capability tier.
	ProfileHiDef Profile = "HiDef"
)

// DeviceSnapshot describes one observed graphics device state: the adapter
// it lives on, its capability tier, and the presentation parameters that a
// reset request may change. Snapshots are produced fresh per observation
// and never persisted.
type DeviceSnapshot struct {
	// Adapter identifies the display adapter. Adapter-identity logging is
	// deduplicated on this field alone.
	Adapter string

	// AdapterName is the human-readable adapter description
	// (e.g. "NVIDIA GeForce RTX 3080").
	AdapterName string

	Profile    Profile
	Width      int
	Height     int
	Fullscreen bool
}

// Equal reports whether two snapshots agree on every tracked parameter.
func (s DeviceSnapshot) Equal(o DeviceSnapshot) bool {
	return s.Adapter == o.Adapter &&
		s.Profile == o.Profile &&
		s.Width == o.Width &&
		s.Height == o.Height &&
		s.Fullscreen == o.Fullscreen
}

// String returns a human-readable description of the snapshot.
func (s DeviceSnapshot) String() string {
	name := s.AdapterName
	if name == "" {
		name = s.Adapter
	}
	return fmt.Sprintf("%s %s %dx%d fullscreen=%t", name, s.Profile, s.Width, s.Height, s.Fullscreen)
}

// TransitionRecord pairs the old and new value of one tracked device
// parameter. It exists only to build the diagnostic diff line and is
// discarded immediately after logging.
type TransitionRecord struct {
	Name string
	Old  string
	New  string
}

// String renders "Name: Old" for an unchanged parameter and
// "Name: Old -> New" for a changed one.
func (t TransitionRecord) String() string {
	if t.Old == t.New {
		return t.Name + ": " + t.Old
	}
	return t.Name + ": " + t.Old + " -> " + t.New
}

// formatTransitions builds the one-line diff of every tracked parameter
// between the current and the proposed device state, e.g.
//
//	Profile: Reach -> HiDef, Width: 1280 -> 1920, Height: 720 -> 1080, Fullscreen: False, Display: GPU-0
func formatTransitions(from, to DeviceSnapshot) string {
	records := []TransitionRecord{
		{"Profile", string(from.Profile), string(to.Profile)},
		{"Width", strconv.Itoa(from.Width), strconv.Itoa(to.Width)},
		{"Height", strconv.Itoa(from.Height), strconv.Itoa(to.Height)},
		{"Fullscreen", formatBool(from.Fullscreen), formatBool(to.Fullscreen)},
		{"Display", from.Adapter, to.Adapter},
	}

	parts := make([]string, len(records))
	for i, r := range records {
		parts[i] = r.String()
	}
	return strings.Join(parts, ", ")
}

// formatBool renders booleans in the "True"/"False" form the diagnostic
// line has always used.
func formatBool(b bool) string {
	if b {
		return "True"
	}
	return "False"
}
