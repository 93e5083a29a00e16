package devguard

import "github.com/gogpu/gputypes"

// ResourceValidator is the wrapped resource-creation validation step.
type ResourceValidator func() error

// ValidateResourceCreation wraps the framework's resource-creation
// validation. During the load phase it rejects calls from any goroutine
// other than the owner captured in New, returning a *ThreadAffinityError
// before the wrapped validation runs. Off-owner creation during startup is
// the symptom of a loading race the host cannot handle; failing here
// surfaces the defect at its origin instead of as a later resource-disposal
// fault.
//
// Once MarkLoadComplete has been called the guard stands down: off-thread
// creation after startup is assumed sanctioned by the host. The creation
// parameters are passed through to validate untouched.
func (s *Supervisor) ValidateResourceCreation(width, height int, format gputypes.TextureFormat, mipMap bool, validate ResourceValidator) error {
	if !s.guardDisabled && !s.loadComplete.Load() {
		if caller := s.threadID(); caller != s.ownerID {
			err := &ThreadAffinityError{
				OwnerID:  s.ownerID,
				CallerID: caller,
				Width:    width,
				Height:   height,
				Format:   format,
				MipMap:   mipMap,
			}
			s.metrics.incAffinityViolations()
			if s.onViolation != nil {
				s.onViolation(err)
			}
			return err
		}
	}

	if validate == nil {
		return nil
	}
	return validate()
}
