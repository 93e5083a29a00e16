// Package wgpuprobe captures devguard device snapshots from a live
// gogpu/wgpu adapter.
//
// The supervisor itself is framework-agnostic; this package is the glue
// for hosts rendering through gogpu/wgpu. It turns the adapter the host
// already holds into the DeviceSnapshot values the hooks consume.
package wgpuprobe

import (
	"fmt"
	"strings"

	"github.com/gogpu/wgpu/core"
	types "github.com/gogpu/gputypes"

	"github.com/gogpu/devguard"
)

// Snapshot builds a DeviceSnapshot for the given adapter and presentation
// parameters. The back-buffer dimensions and fullscreen flag come from the
// host's swapchain configuration; everything else is read from the adapter.
func Snapshot(adapterID core.AdapterID, width, height int, fullscreen bool) (devguard.DeviceSnapshot, error) {
	info, err := core.GetAdapterInfo(adapterID)
	if err != nil {
		return devguard.DeviceSnapshot{}, fmt.Errorf("wgpuprobe: adapter info: %w", err)
	}

	return devguard.DeviceSnapshot{
		Adapter:     adapterKey(info.Vendor, info.Name, fmt.Sprint(info.Backend)),
		AdapterName: info.Name,
		Profile:     profileFor(info.DeviceType),
		Width:       width,
		Height:      height,
		Fullscreen:  fullscreen,
	}, nil
}

// adapterKey derives a stable adapter identity. Vendor and name alone
// collide when the same GPU is reachable through two backends (e.g. Vulkan
// and GL), and a backend switch invalidates resources just as an adapter
// swap does, so the backend participates in the identity.
func adapterKey(vendor, name, backend string) string {
	parts := make([]string, 0, 3)
	for _, p := range []string{vendor, name, backend} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, "/")
}

// profileFor maps the adapter's device type onto a capability tier:
// discrete GPUs get the full tier, everything else (integrated, software,
// unknown) the constrained one.
func profileFor(t types.DeviceType) devguard.Profile {
	if strings.Contains(strings.ToLower(fmt.Sprint(t)), "discrete") {
		return devguard.ProfileHiDef
	}
	return devguard.ProfileReach
}
