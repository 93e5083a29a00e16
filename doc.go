// Package devguard supervises the lifecycle of a graphics rendering device
// inside a long-running interactive application.
//
// # Overview
//
// Some graphics runtimes occasionally turn an in-place device reset into a
// full device recreation. Before startup finishes that is harmless: the host
// re-acquires its resources and carries on. After startup it is fatal, because
// every resource handle the application holds is silently invalidated.
// devguard detects that transition and fails safely: it disables the risky
// configuration for the next launch, tells the user what happened, and
// terminates the process instead of letting it crash somewhere unrelated
// minutes later.
//
// # Quick Start
//
//	sup := devguard.New(
//	    devguard.WithConfigStore(store),
//	    devguard.WithNotifier(&notify.Console{}),
//	)
//
//	// Wire the hooks into the host's device management layer:
//	//  - call sup.CanDeviceReset around the framework's reset decision
//	//  - call sup.ValidateResourceCreation around resource validation
//	//  - call sup.OnContentLoaded whenever device content is (re)loaded
//
//	// ... run the full startup sequence ...
//	sup.MarkLoadComplete()
//
// # Hooks
//
// The Supervisor never patches anything at runtime. The host wires three
// hook methods into its own device-management API at startup:
//
//   - [Supervisor.CanDeviceReset] observes every reset-capability decision,
//     logs the attempted parameter transition, and passes the decision
//     through unmodified.
//   - [Supervisor.ValidateResourceCreation] rejects resource creation from
//     any goroutine other than the owner during the load phase.
//   - [Supervisor.OnContentLoaded] watches device (re)creation events and
//     triggers the fail-fast shutdown when one happens after load completed.
//
// # Logging
//
// devguard is silent by default. Call [SetLogger] with a *slog.Logger to
// see per-reset transition diffs and adapter changes at debug level; the
// terminal shutdown sequence logs at error level.
package devguard
