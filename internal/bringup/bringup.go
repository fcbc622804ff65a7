// Package bringup announces device initialization before the scan starts.
package bringup

import (
	"fmt"
	"io"
	"sync"
)

// Device is one subsystem brought up at boot.
type Device struct {
	Name    string
	Setup   string // printed in the first pass
	Connect string // printed in the second pass
}

// DefaultDevices is the demo board: network, display, menu.
var DefaultDevices = []Device{
	{Name: "wifi", Setup: "Setting up WiFi...", Connect: "Connecting to WiFi..."},
	{Name: "lcd", Setup: "Setting up LCD...", Connect: "Connecting to LCD..."},
	{Name: "menu", Setup: "Setting up Menu...", Connect: "Building Menu..."},
}

// Sequence prints its announcements at most once.
type Sequence struct {
	once    sync.Once
	devices []Device
}

func New(devices ...Device) *Sequence {
	if len(devices) == 0 {
		devices = DefaultDevices
	}
	return &Sequence{devices: devices}
}

// Run writes every Setup line, then every Connect line, then a blank line.
// Only the first call writes; it reports whether this call did.
func (s *Sequence) Run(w io.Writer) (ran bool, err error) {
	s.once.Do(func() {
		ran = true
		for _, d := range s.devices {
			if _, err = fmt.Fprintln(w, d.Setup); err != nil {
				return
			}
		}
		for _, d := range s.devices {
			if _, err = fmt.Fprintln(w, d.Connect); err != nil {
				return
			}
		}
		_, err = fmt.Fprintln(w)
	})
	return ran, err
}
