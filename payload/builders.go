package payload

import "github.com/tuyalink/tuyalink/protocol"

// Control builds a Structured payload carrying dps for a Control
// command. t is the Unix timestamp to stamp the request with; pass 0
// to omit it.
func Control(devID string, dps map[string]interface{}, t int64) protocol.Payload {
	ps := protocol.PayloadStruct{DevID: devID, Dps: dps}
	if t != 0 {
		ts := t
		ps.T = &ts
	}
	return protocol.StructPayload(ps)
}

// Query builds the bare devId/gwId payload used for DpQuery and
// DpRefresh requests.
func Query(devID, gwID string) protocol.Payload {
	return protocol.StructPayload(protocol.PayloadStruct{DevID: devID, GwID: gwID})
}

// Socket builds the single-switch dps map ("1": on) used by the most
// common plug/socket devices.
func Socket(on bool) map[string]interface{} {
	return map[string]interface{}{"1": on}
}
