// Package types defines the JSON payloads exchanged with the Gatewayz API.
//
// Payload shapes the SDK does not interpret are decoded into Document so no
// server field is lost.
package types
