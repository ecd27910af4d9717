// Package detect sniffs input bytes to determine how a dashboard file is stored.
package detect

import "bytes"

// Format represents a recognized input encoding.
type Format int

const (
	Unknown Format = iota
	XML            // plain CTest dashboard XML
	Gzip           // gzip-compressed file (e.g. Test.xml.gz)
)

func (f Format) String() string {
	switch f {
	case XML:
		return "xml"
	case Gzip:
		return "gzip"
	default:
		return "unknown"
	}
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Sniff examines the first bytes of input to determine format.
func Sniff(data []byte) Format {
	if len(data) >= 2 && data[0] == 0x1f && data[1] == 0x8b {
		return Gzip
	}

	data = bytes.TrimPrefix(data, utf8BOM)
	// Trim leading whitespace
	for len(data) > 0 && (data[0] == ' ' || data[0] == '\t' || data[0] == '\n' || data[0] == '\r') {
		data = data[1:]
	}
	if len(data) == 0 {
		return Unknown
	}

	// Both the declaration and a bare root element start with '<'.
	if data[0] == '<' {
		return XML
	}
	return Unknown
}
