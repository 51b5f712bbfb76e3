package transcript

import (
	"encoding/hex"
	"fmt"
	"io"

	"lukechampine.com/blake3"
)

// Fingerprint computes the hex-encoded BLAKE3 hash of the raw transcript
// bytes. The report store uses it to skip re-analyzing identical documents.
func Fingerprint(r io.Reader) (string, error) {
	h := blake3.New(32, nil)
	if _, err := io.Copy(h, r); err != nil {
		return "", fmt.Errorf("hash transcript: %w", err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
