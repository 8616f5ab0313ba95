// Package source reads lexer input from disk, transcoding UTF-16 source
// files to UTF-8 so the cursor only ever has to navigate UTF-8/ASCII bytes.
package source

import (
	"fmt"
	"os"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
)

// Read loads the file at path and returns its contents as UTF-8 text.
// A leading UTF-16 BOM (little- or big-endian) is detected and transcoded;
// anything else (including a UTF-8 BOM or no BOM at all) is read as-is.
func Read(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return Decode(raw)
}

// Decode transcodes raw bytes to UTF-8 text, sniffing for a UTF-16 BOM.
func Decode(raw []byte) (string, error) {
	enc := sniff(raw)
	if enc == nil {
		return string(raw), nil
	}
	decoded, err := enc.NewDecoder().Bytes(raw)
	if err != nil {
		return "", fmt.Errorf("failed to transcode source: %w", err)
	}
	return string(decoded), nil
}

func sniff(raw []byte) encoding.Encoding {
	switch {
	case len(raw) >= 2 && raw[0] == 0xFF && raw[1] == 0xFE:
		return unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM)
	case len(raw) >= 2 && raw[0] == 0xFE && raw[1] == 0xFF:
		return unicode.UTF16(unicode.BigEndian, unicode.ExpectBOM)
	default:
		return nil
	}
}
