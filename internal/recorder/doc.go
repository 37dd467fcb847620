// Package recorder collects rendered RGB frames and encodes them into a
// looping animated GIF.
//
// A [Recorder] is a two-state machine:
//
//	Idle --Start--> Recording --Capture*--> Recording --Stop--> Idle
//
// Every contract violation is returned as an error; check them with
// errors.Is against the sentinel values in this package. Recorders are
// single-writer: Capture must not race with Start or Stop.
package recorder
