// Package protocol owns the dt-request/dt-response wire contract.
//
// Ownership boundary:
// - fixed-layout packet encode/decode primitives
// - request and response validation entry points
// - error taxonomy shared by client and server
package protocol
