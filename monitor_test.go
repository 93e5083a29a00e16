package devguard

import (
	"errors"
	"strings"
	"sync"
	"testing"
)

func TestOnContentLoadedDuringLoadIsBenign(t *testing.T) {
	captureLogs(t)

	var events []string
	store := newFakeStore(&events)
	notifier := &fakeNotifier{events: &events}
	exited := 0
	s := New(
		WithConfigStore(store),
		WithNotifier(notifier),
		WithExitFunc(func(int) { exited++ }),
	)

	snap := DeviceSnapshot{Adapter: "GPU-0", Profile: ProfileReach, Width: 800, Height: 600}
	s.OnContentLoaded(snap)
	s.OnContentLoaded(snap)

	if len(events) != 0 || exited != 0 {
		t.Errorf("reload before load completion triggered the fatal sequence: events=%v exits=%d", events, exited)
	}
}

func TestOnContentLoadedAfterLoadTriggersFatalSequence(t *testing.T) {
	buf := captureLogs(t)

	var events []string
	store := newFakeStore(&events)
	store.values[DefaultFeatureKey] = true
	notifier := &fakeNotifier{events: &events}

	var exitCode = -1
	s := New(
		WithConfigStore(store),
		WithNotifier(notifier),
		WithExitFunc(func(code int) {
			exitCode = code
			events = append(events, "exit")
		}),
	)
	s.MarkLoadComplete()

	s.OnContentLoaded(DeviceSnapshot{Adapter: "GPU-0", Profile: ProfileHiDef, Width: 1920, Height: 1080})

	// Strict order: disable flag, persist, notify, terminate.
	want := []string{"set", "save", "notify", "exit"}
	if len(events) != len(want) {
		t.Fatalf("fatal sequence events = %v, want %v", events, want)
	}
	for i := range want {
		if events[i] != want[i] {
			t.Fatalf("fatal sequence events = %v, want %v", events, want)
		}
	}

	if store.GetBool(DefaultFeatureKey) {
		t.Error("risky feature flag still enabled after fatal sequence")
	}
	if exitCode != 1 {
		t.Errorf("exit code = %d, want 1", exitCode)
	}
	if notifier.count() != 1 {
		t.Errorf("notifier called %d times, want 1", notifier.count())
	}
	if got := notifier.titles[0]; got != fatalNoticeTitle {
		t.Errorf("notice title = %q", got)
	}
	if !strings.Contains(notifier.messages[0], "restart") {
		t.Errorf("notice message does not advise a restart: %q", notifier.messages[0])
	}
	if !strings.Contains(buf.String(), "device recreated after load completed") {
		t.Error("fatal diagnostic missing from log")
	}
}

func TestFatalSequenceRunsOnce(t *testing.T) {
	captureLogs(t)

	var events []string
	store := newFakeStore(&events)
	exits := 0
	s := New(
		WithConfigStore(store),
		WithExitFunc(func(int) { exits++ }),
	)
	s.MarkLoadComplete()

	snap := DeviceSnapshot{Adapter: "GPU-0"}
	s.OnContentLoaded(snap)
	s.OnContentLoaded(snap)
	s.OnContentLoaded(snap)

	if store.saveCount() != 1 {
		t.Errorf("configuration persisted %d times, want 1", store.saveCount())
	}
	if exits != 1 {
		t.Errorf("process exit invoked %d times, want 1", exits)
	}
}

func TestFatalSequenceOnceUnderConcurrency(t *testing.T) {
	captureLogs(t)

	var mu sync.Mutex
	exits := 0
	s := New(WithExitFunc(func(int) {
		mu.Lock()
		exits++
		mu.Unlock()
	}))
	s.MarkLoadComplete()

	var wg sync.WaitGroup
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.OnContentLoaded(DeviceSnapshot{Adapter: "GPU-0"})
		}()
	}
	wg.Wait()

	if exits != 1 {
		t.Errorf("process exit invoked %d times under concurrent reloads, want 1", exits)
	}
}

func TestFatalSequenceSaveFailureStillTerminates(t *testing.T) {
	buf := captureLogs(t)

	var events []string
	store := newFakeStore(&events)
	store.saveErr = errors.New("disk full")
	notifier := &fakeNotifier{events: &events}
	exits := 0

	s := New(
		WithConfigStore(store),
		WithNotifier(notifier),
		WithExitFunc(func(int) { exits++ }),
	)
	s.MarkLoadComplete()
	s.OnContentLoaded(DeviceSnapshot{Adapter: "GPU-0"})

	if notifier.count() != 1 || exits != 1 {
		t.Errorf("save failure interrupted the shutdown: notifies=%d exits=%d", notifier.count(), exits)
	}
	if !strings.Contains(buf.String(), "failed to persist") {
		t.Error("save failure not logged")
	}
}

func TestFatalSequenceWithoutCollaborators(t *testing.T) {
	captureLogs(t)

	// No store, no notifier: the sequence degrades to log + terminate.
	exits := 0
	s := New(WithExitFunc(func(int) { exits++ }))
	s.MarkLoadComplete()
	s.OnContentLoaded(DeviceSnapshot{Adapter: "GPU-0"})

	if exits != 1 {
		t.Errorf("process exit invoked %d times, want 1", exits)
	}
}

func TestFatalSequenceCustomFeatureKey(t *testing.T) {
	captureLogs(t)

	var events []string
	store := newFakeStore(&events)
	store.values["video.risky"] = true

	s := New(
		WithConfigStore(store),
		WithFeatureKey("video.risky"),
		WithExitFunc(func(int) {}),
	)
	s.MarkLoadComplete()
	s.OnContentLoaded(DeviceSnapshot{Adapter: "GPU-0"})

	if store.GetBool("video.risky") {
		t.Error("custom feature key not disabled")
	}
}

func TestOnContentLoadedAlwaysLogsSnapshot(t *testing.T) {
	buf := captureLogs(t)
	s := New()

	s.OnContentLoaded(DeviceSnapshot{Adapter: "GPU-0", AdapterName: "Test GPU", Width: 640, Height: 480})

	log := buf.String()
	if !strings.Contains(log, "device content loaded") {
		t.Error("content-loaded event not logged")
	}
	if !strings.Contains(log, "active graphics adapter") {
		t.Error("adapter identity not logged on first observation")
	}
}
