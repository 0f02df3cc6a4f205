package exporter

import (
	"fmt"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// outputCharmaps are the legacy terminal code pages styled output can be
// written in. UTF-8 output needs no conversion and is not listed.
var outputCharmaps = map[string]*charmap.Charmap{
	"cp437":      charmap.CodePage437,
	"cp850":      charmap.CodePage850,
	"iso-8859-1": charmap.ISO8859_1,
}

// ConvertToEncoding re-encodes rendered UTF-8 output for a legacy terminal.
// SGR sequences are ASCII and come out unchanged. A rune the code page
// cannot hold becomes the code page's substitute byte (0x1A) rather than
// failing the whole output.
func ConvertToEncoding(data []byte, targetEncoding string) ([]byte, error) {
	if targetEncoding == "utf8" || targetEncoding == "" {
		return data, nil
	}

	cm, ok := outputCharmaps[targetEncoding]
	if !ok {
		return nil, fmt.Errorf("unsupported encoding: %s", targetEncoding)
	}

	out, err := encoding.ReplaceUnsupported(cm.NewEncoder()).Bytes(data)
	if err != nil {
		return nil, fmt.Errorf("encoding conversion error: %w", err)
	}
	return out, nil
}
