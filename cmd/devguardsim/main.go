// Command devguardsim drives a simulated graphics device through the
// supervised lifecycle: reset requests during load, optional off-thread
// resource creation, and an optional forced device recreation after load
// completes. The last one exercises the fail-fast path end to end: it
// disables the risky flag in the settings file, prints the user notice,
// and exits with status 1.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/gputypes"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/gogpu/devguard"
	"github.com/gogpu/devguard/cfgstore"
	"github.com/gogpu/devguard/notify"
)

func main() {
	var (
		configPath = flag.String("config", "devguard.yaml", "settings file the fail-fast sequence writes to")
		resets     = flag.Int("resets", 3, "reset requests to simulate during load")
		offThread  = flag.Bool("off-thread", false, "attempt an off-thread resource creation during load")
		recreate   = flag.Bool("recreate", false, "force a device recreation after load completes (exits 1)")
		quiet      = flag.Bool("quiet", false, "suppress debug logging")
	)
	flag.Parse()

	if !*quiet {
		devguard.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	store, err := cfgstore.Open(*configPath)
	if err != nil {
		log.Fatalf("open settings: %v", err)
	}
	store.SetBool(devguard.DefaultFeatureKey, true)

	sup := devguard.New(
		devguard.WithConfigStore(store),
		devguard.WithNotifier(&notify.Console{}),
		devguard.WithMetrics(devguard.NewMetrics(prometheus.DefaultRegisterer)),
	)

	current := devguard.DeviceSnapshot{
		Adapter:     "SIM-0",
		AdapterName: "Simulated GPU",
		Profile:     devguard.ProfileReach,
		Width:       1280,
		Height:      720,
	}

	// Initial device creation.
	sup.OnContentLoaded(current)

	for i := 0; i < *resets; i++ {
		proposed := current
		switch i % 3 {
		case 0:
			proposed.Width, proposed.Height = 1920, 1080
		case 1:
			proposed.Fullscreen = !proposed.Fullscreen
		case 2:
			proposed.Profile = devguard.ProfileHiDef
		}

		if sup.CanDeviceReset(current, proposed, resettable) {
			current = proposed
			continue
		}
		// The framework recreates the device instead. During load this is
		// recoverable; the host just reloads content.
		current = proposed
		sup.OnContentLoaded(current)
	}

	if *offThread {
		done := make(chan error, 1)
		go func() {
			done <- sup.ValidateResourceCreation(256, 256, gputypes.TextureFormatRGBA8Unorm, false, nil)
		}()
		if err := <-done; err != nil {
			log.Printf("off-thread creation rejected: %v", err)
		}
	}

	sup.MarkLoadComplete()
	log.Printf("load complete, %s=%t", devguard.DefaultFeatureKey, store.GetBool(devguard.DefaultFeatureKey))

	if *recreate {
		// A reset silently degraded into a recreation after startup.
		// This call does not return.
		sup.OnContentLoaded(current)
	}
}

// resettable mirrors a typical framework decision: an in-place reset can
// change presentation parameters but not the adapter or capability tier.
func resettable(from, to devguard.DeviceSnapshot) bool {
	return from.Adapter == to.Adapter && from.Profile == to.Profile
}
