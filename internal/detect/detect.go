// Package detect sniffs raw input to determine which decoder to use.
package detect

import (
	"bytes"

	"github.com/dkoosis/lintsum/pkg/payload"
	"github.com/dkoosis/lintsum/pkg/sarif"
)

// Format represents a recognized input format.
type Format int

const (
	Unknown Format = iota
	SARIF          // SARIF 2.1.0 JSON document
	Payload        // native lintsum diagnostics payload
)

func (f Format) String() string {
	switch f {
	case SARIF:
		return "sarif"
	case Payload:
		return "payload"
	default:
		return "unknown"
	}
}

// Sniff examines a complete input document and returns its format. SARIF
// wins when a document would satisfy both probes.
func Sniff(data []byte) Format {
	data = bytes.TrimLeft(data, " \t\r\n")
	if len(data) == 0 || data[0] != '{' {
		return Unknown
	}
	if sarif.IsSARIF(data) {
		return SARIF
	}
	if payload.IsPayload(data) {
		return Payload
	}
	return Unknown
}
