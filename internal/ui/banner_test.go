package ui

import (
	"strings"
	"testing"
)

func TestBannerOmitsEmptyFields(t *testing.T) {
	b := &Banner{
		Op:      "DpQuery",
		Command: "tuyalink get",
		Device:  "...1b659",
		Proto:   "3.3",
		Width:   MinTerminalWidth,
	}
	out := b.Render()

	for _, want := range []string{"DPQUERY", "tuyalink get", "...1b659", "3.3"} {
		if !strings.Contains(out, want) {
			t.Errorf("Render() missing %q", want)
		}
	}
	if strings.Contains(out, "address") {
		t.Error("Render() shows an address row for a banner with no address")
	}
	if strings.Contains(out, "request") {
		t.Error("Render() shows a request row for a banner with no detail")
	}
}

func TestBannerRendersRequestDetail(t *testing.T) {
	b := &Banner{
		Op:      "Control",
		Command: "tuyalink set",
		Device:  "...1b659",
		Addr:    "192.168.1.40:6668",
		Proto:   "3.3",
		Detail:  "dp 1 = true",
		Width:   MinTerminalWidth,
	}
	out := b.Render()

	for _, want := range []string{"192.168.1.40:6668", "dp 1 = true"} {
		if !strings.Contains(out, want) {
			t.Errorf("Render() missing %q", want)
		}
	}
}

func TestOutcomeOmitsUnmeasuredFields(t *testing.T) {
	o := &Outcome{Op: "Control", Device: "...1b659", Replies: -1, Width: MinTerminalWidth}
	out := o.Render()

	if !strings.Contains(out, "CONTROL complete") {
		t.Errorf("Render() = %q, want success title", out)
	}
	if strings.Contains(out, "replies") {
		t.Error("Render() shows a replies row for a round-trip that discarded them")
	}
	if strings.Contains(out, "duration") {
		t.Error("Render() shows a duration row for an untimed round-trip")
	}
}

func TestOutcomeFailureShowsErrorAndTips(t *testing.T) {
	o := &Outcome{
		Op:    "DpQuery",
		Err:   errFake("connection refused"),
		Tips:  []string{"Check the local key"},
		Width: MinTerminalWidth,
	}
	out := o.Render()

	if !strings.Contains(out, "DPQUERY failed") {
		t.Errorf("Render() = %q, want failure title", out)
	}
	if !strings.Contains(out, "connection refused") {
		t.Error("Render() missing the error message")
	}
	if !strings.Contains(out, "Check the local key") {
		t.Error("Render() missing the troubleshooting tip")
	}
}

type errFake string

func (e errFake) Error() string { return string(e) }
