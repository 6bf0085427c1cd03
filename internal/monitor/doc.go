// Package monitor serves a live view of device session wire traffic to
// a browser, over a genuine WebSocket connection.
//
// It is an operator convenience layered on top of the protocol/session
// packages, not part of the protocol core. A Hub fans Events out to
// every connected browser client; it can be fed two ways:
//
//   - in-process, by calling Hub.Record directly around a
//     *session.Device round-trip;
//   - out-of-process, since `tuyalink get`/`set`/`refresh` run as
//     separate short-lived commands from `tuyalink monitor`: each
//     accepts session.WithReporter(monitor.NewClient(addr).Reporter(devID)),
//     which POSTs every frame to the server's /report endpoint, which
//     in turn calls Hub.Record on the server's behalf.
//
// # Usage
//
//	hub := monitor.NewHub()
//	srv := monitor.New(monitor.Config{Addr: ":8787"}, hub)
//	go srv.Start()
//
//	hub.Record(devID, monitor.Outbound, encodedFrame)
//
// The server speaks standard WebSocket framing
// (github.com/gorilla/websocket) to ordinary browser clients,
// optionally behind TLS.
package monitor
