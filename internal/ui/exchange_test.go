package ui

import (
	"strings"
	"testing"
)

func TestExchangeObserveAdvancesLegs(t *testing.T) {
	e := NewExchange()
	if e.Send.Status != LegInFlight || e.Read.Status != LegWaiting {
		t.Fatalf("new exchange legs = %v/%v, want in-flight/waiting", e.Send.Status, e.Read.Status)
	}

	line := e.Observe("outbound", 103)
	if line == "" {
		t.Error("Observe(outbound): want a rendered leg line")
	}
	if e.Send.Status != LegDone || e.Send.Bytes != 103 {
		t.Errorf("send leg after outbound = %v/%d, want done/103", e.Send.Status, e.Send.Bytes)
	}
	if e.Read.Status != LegInFlight {
		t.Errorf("read leg after outbound = %v, want in-flight", e.Read.Status)
	}

	line = e.Observe("inbound", 28)
	if line == "" {
		t.Error("Observe(inbound): want a rendered leg line")
	}
	if e.Read.Status != LegDone || e.Read.Bytes != 28 {
		t.Errorf("read leg after inbound = %v/%d, want done/28", e.Read.Status, e.Read.Bytes)
	}
}

func TestExchangeObserveUnknownDirection(t *testing.T) {
	e := NewExchange()
	if line := e.Observe("sideways", 1); line != "" {
		t.Errorf("Observe(sideways) = %q, want empty", line)
	}
	if e.Send.Status != LegInFlight {
		t.Errorf("send leg = %v, want untouched in-flight", e.Send.Status)
	}
}

func TestExchangeFailMarksActiveLeg(t *testing.T) {
	// Failure before any frame went out lands on the send leg.
	e := NewExchange()
	if line := e.Fail(); line == "" {
		t.Error("Fail before send: want a rendered leg line")
	}
	if e.Send.Status != LegFailed {
		t.Errorf("send leg = %v, want failed", e.Send.Status)
	}

	// Failure after the request was transmitted lands on the read leg.
	e = NewExchange()
	e.Observe("outbound", 103)
	e.Fail()
	if e.Send.Status != LegDone {
		t.Errorf("send leg = %v, want done", e.Send.Status)
	}
	if e.Read.Status != LegFailed {
		t.Errorf("read leg = %v, want failed", e.Read.Status)
	}

	// A completed exchange has no leg left to fail.
	e = NewExchange()
	e.Observe("outbound", 103)
	e.Observe("inbound", 28)
	if line := e.Fail(); line != "" {
		t.Errorf("Fail after completion = %q, want empty", line)
	}
}

func TestLegRenderShowsBytes(t *testing.T) {
	l := Leg{Glyph: glyphOutbound, Label: "send request", Status: LegDone, Bytes: 103}
	line := l.render()
	if !strings.Contains(line, "103 bytes") {
		t.Errorf("render() = %q, want byte count", line)
	}
	if !strings.Contains(line, "send request") {
		t.Errorf("render() = %q, want label", line)
	}
}
