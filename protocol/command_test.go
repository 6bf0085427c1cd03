package protocol

import "testing"

func TestLookupCommandUnknownIsAbsent(t *testing.T) {
	if _, ok := lookupCommand(0xABCDEF); ok {
		t.Error("lookupCommand: want unknown code to be absent from the table")
	}
	if _, ok := lookupCommand(uint32(CmdHeartBeat)); !ok {
		t.Error("lookupCommand: want HeartBeat to be known")
	}
}

func TestCommandTypeString(t *testing.T) {
	if CmdDpQuery.String() != "DpQuery" {
		t.Errorf("CmdDpQuery.String() = %q", CmdDpQuery.String())
	}
	if CommandType(9999).String() != "Unknown" {
		t.Errorf("CommandType(9999).String() = %q", CommandType(9999).String())
	}
}
