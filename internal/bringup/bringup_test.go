package bringup

import (
	"bytes"
	"testing"
)

func TestRunsOnce(t *testing.T) {
	var b bytes.Buffer
	s := New()

	ran, err := s.Run(&b)
	if err != nil || !ran {
		t.Fatalf("first Run: ran=%v err=%v", ran, err)
	}
	want := "Setting up WiFi...\nSetting up LCD...\nSetting up Menu...\n" +
		"Connecting to WiFi...\nConnecting to LCD...\nBuilding Menu...\n\n"
	if b.String() != want {
		t.Fatalf("got %q\nwant %q", b.String(), want)
	}

	ran, err = s.Run(&b)
	if err != nil || ran {
		t.Fatalf("second Run: ran=%v err=%v", ran, err)
	}
	if b.String() != want {
		t.Fatal("second Run wrote output")
	}
}

func TestCustomDevices(t *testing.T) {
	var b bytes.Buffer
	_, _ = New(Device{Name: "sd", Setup: "Mounting SD...", Connect: "SD ready"}).Run(&b)
	if got := b.String(); got != "Mounting SD...\nSD ready\n\n" {
		t.Fatalf("got %q", got)
	}
}
