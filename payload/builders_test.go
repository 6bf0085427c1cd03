package payload

import "testing"

func TestControlOmitsTimestampWhenZero(t *testing.T) {
	p := Control("dev1", Socket(true), 0)
	if p.Struct == nil || p.Struct.T != nil {
		t.Errorf("Control(t=0): T = %v, want nil", p.Struct.T)
	}
}

func TestControlSetsTimestamp(t *testing.T) {
	p := Control("dev1", Socket(true), 1529442366)
	if p.Struct == nil || p.Struct.T == nil || *p.Struct.T != 1529442366 {
		t.Errorf("Control: T = %v, want 1529442366", p.Struct.T)
	}
}

func TestQueryOmitsGwIDWhenEmpty(t *testing.T) {
	p := Query("dev1", "")
	if p.Struct.GwID != "" {
		t.Errorf("Query: GwID = %q, want empty", p.Struct.GwID)
	}
}

func TestSocketDps(t *testing.T) {
	dps := Socket(true)
	if on, ok := dps["1"].(bool); !ok || !on {
		t.Errorf("Socket(true) = %+v", dps)
	}
}
