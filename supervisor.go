package devguard

import (
	"os"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/gogpu/devguard/internal/goid"
)

// DefaultFeatureKey is the configuration key of the risky feature flag the
// fail-fast sequence disables before terminating.
const DefaultFeatureKey = "graphics.experimental-effects"

// ConfigStore is the host's settings persistence mechanism. The Supervisor
// only ever touches one boolean flag through it.
type ConfigStore interface {
	// GetBool reads a boolean setting; missing keys read as false.
	GetBool(key string) bool

	// SetBool updates a boolean setting in memory.
	SetBool(key string, value bool)

	// Save persists the in-memory settings to durable storage.
	Save() error
}

// Notifier presents a blocking user-facing notice. Notify must not return
// until the user has acknowledged the message (or no user is attached).
type Notifier interface {
	Notify(title, message string)
}

// Supervisor owns the process-wide supervision state: the identity of the
// goroutine allowed to create resources during load, the load-complete
// flag, and the adapter-logging dedup cache. Construct one Supervisor per
// process, on the goroutine that owns the graphics device, and wire its
// hook methods into the host's device-management layer.
type Supervisor struct {
	ownerID  uint64
	threadID func() uint64

	// loadComplete transitions false -> true exactly once, in
	// MarkLoadComplete. currentAdapter holds the last-logged adapter id;
	// a race here costs at most a duplicate or missed log line.
	loadComplete   atomic.Bool
	currentAdapter atomic.Pointer[string]

	store    ConfigStore
	notifier Notifier
	exit     func(code int)
	metrics  *Metrics

	featureKey    string
	guardDisabled bool
	onViolation   func(*ThreadAffinityError)

	fatalOnce sync.Once
}

// Option configures a Supervisor during creation.
type Option func(*supervisorOptions)

// supervisorOptions holds optional configuration for Supervisor creation.
type supervisorOptions struct {
	threadID    func() uint64
	store       ConfigStore
	notifier    Notifier
	exit        func(code int)
	metrics     *Metrics
	featureKey  string
	disableGrd  bool
	onViolation func(*ThreadAffinityError)
}

// defaultOptions returns the default supervisor options.
func defaultOptions() supervisorOptions {
	return supervisorOptions{
		threadID:   goid.ID,
		exit:       os.Exit,
		featureKey: DefaultFeatureKey,
	}
}

// WithConfigStore sets the settings store the fail-fast sequence writes the
// corrected configuration through. Without a store the sequence skips the
// persistence steps.
func WithConfigStore(s ConfigStore) Option {
	return func(o *supervisorOptions) { o.store = s }
}

// WithNotifier sets the user-notification surface for the fail-fast
// sequence. Without a notifier the sequence terminates silently after
// logging.
func WithNotifier(n Notifier) Option {
	return func(o *supervisorOptions) { o.notifier = n }
}

// WithExitFunc replaces os.Exit as the process-termination mechanism.
// Intended for tests and for hosts that need extra teardown on the way out.
func WithExitFunc(exit func(code int)) Option {
	return func(o *supervisorOptions) {
		if exit != nil {
			o.exit = exit
		}
	}
}

// WithThreadID replaces the goroutine-identity source used by the affinity
// guard. The default identifies goroutines; hosts that pin OS threads with
// runtime.LockOSThread can supply a thread-id source (e.g. unix.Gettid)
// instead.
func WithThreadID(id func() uint64) Option {
	return func(o *supervisorOptions) {
		if id != nil {
			o.threadID = id
		}
	}
}

// WithMetrics attaches supervision metrics. Without it no metrics are
// recorded.
func WithMetrics(m *Metrics) Option {
	return func(o *supervisorOptions) { o.metrics = m }
}

// WithFeatureKey overrides the configuration key disabled by the fail-fast
// sequence.
func WithFeatureKey(key string) Option {
	return func(o *supervisorOptions) {
		if key != "" {
			o.featureKey = key
		}
	}
}

// WithGuardDisabled turns the thread-affinity guard off while keeping the
// reset and lifecycle observers active. Mirrors release builds of hosts
// that only enforce the guard in diagnostic builds.
func WithGuardDisabled() Option {
	return func(o *supervisorOptions) { o.disableGrd = true }
}

// WithViolationHandler registers a callback invoked with every affinity
// violation before the error is returned to the caller, so hosts can route
// the defect to their own crash reporter.
func WithViolationHandler(fn func(*ThreadAffinityError)) Option {
	return func(o *supervisorOptions) { o.onViolation = fn }
}

// New creates a Supervisor and captures the calling goroutine as the owner
// permitted to create graphics resources during the load phase. Call it
// from the goroutine that owns the graphics device, before any resource
// creation happens.
func New(opts ...Option) *Supervisor {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	return &Supervisor{
		ownerID:       options.threadID(),
		threadID:      options.threadID,
		store:         options.store,
		notifier:      options.notifier,
		exit:          options.exit,
		metrics:       options.metrics,
		featureKey:    options.featureKey,
		guardDisabled: options.disableGrd,
		onViolation:   options.onViolation,
	}
}

// OwnerID returns the identity captured at construction.
func (s *Supervisor) OwnerID() uint64 { return s.ownerID }

// MarkLoadComplete records that the host's full startup sequence has
// finished. The first call wins; later calls are no-ops. After this point
// the affinity guard stands down and any further device recreation is
// treated as unrecoverable.
func (s *Supervisor) MarkLoadComplete() {
	s.loadComplete.Store(true)
}

// LoadComplete reports whether the startup sequence has finished.
func (s *Supervisor) LoadComplete() bool {
	return s.loadComplete.Load()
}

// logAdapter emits the adapter-identity diagnostic at most once per
// distinct adapter id. Attribute changes on the same adapter do not
// re-trigger it; the per-call transition diff covers those.
func (s *Supervisor) logAdapter(snap DeviceSnapshot) {
	if cur := s.currentAdapter.Load(); cur != nil && *cur == snap.Adapter {
		return
	}
	id := snap.Adapter
	s.currentAdapter.Store(&id)

	Logger().Debug("active graphics adapter",
		"adapter", snap.Adapter,
		"description", snap.AdapterName,
		"mode", formatMode(snap))
}

func formatMode(snap DeviceSnapshot) string {
	mode := strconv.Itoa(snap.Width) + "x" + strconv.Itoa(snap.Height)
	if snap.Fullscreen {
		mode += " fullscreen"
	}
	return mode
}
