package devguard

import (
	"errors"
	"fmt"

	"github.com/gogpu/gputypes"
)

var (
	// ErrThreadAffinity is returned when a resource is created off the
	// owner goroutine before the load phase completes.
	ErrThreadAffinity = errors.New("devguard: resource created off owner thread during load")

	// ErrDeviceRecreated indicates the graphics device was fully recreated
	// after the load phase completed. It is never returned from a hook:
	// detection routes through the fail-fast shutdown sequence instead.
	ErrDeviceRecreated = errors.New("devguard: device recreated after load completed")
)

// ThreadAffinityError reports a resource-creation call from the wrong
// goroutine during the load phase. It records both identities and the
// creation parameters so the violation is diagnosable at its origin rather
// than as a later resource-disposal fault.
type ThreadAffinityError struct {
	OwnerID  uint64
	CallerID uint64

	Width  int
	Height int
	Format gputypes.TextureFormat
	MipMap bool
}

func (e *ThreadAffinityError) Error() string {
	return fmt.Sprintf(
		"devguard: resource creation (%dx%d, format %v, mipmap %t) on goroutine %d, owner is %d",
		e.Width, e.Height, e.Format, e.MipMap, e.CallerID, e.OwnerID)
}

// Unwrap makes the error match ErrThreadAffinity under errors.Is.
func (e *ThreadAffinityError) Unwrap() error { return ErrThreadAffinity }
