package ptysup

import (
	"bytes"
	"io"
)

const outputChunkSize = 1024

// runOutputThread drains masterReader to userOutput verbatim, and in
// parallel tracks prompt arrival: once per submitted command (signalled via
// cmdSent), it watches for the cleaned tail of the stream to end with the
// prompt sentinel and signals ps1Ready exactly once per command. It returns
// nil on EOF, or the first read or write error otherwise.
func runOutputThread(
	masterReader io.Reader,
	userOutput io.Writer,
	ps1Ready chan<- struct{},
	cmdSent <-chan struct{},
	sentinel byte,
) error {
	ps1Detected := false
	chunk := make([]byte, outputChunkSize)

	for {
		n, err := masterReader.Read(chunk)
		if n > 0 {
			if _, werr := userOutput.Write(chunk[:n]); werr != nil {
				return werr
			}

			select {
			case <-cmdSent:
				ps1Detected = false
			default:
			}

			cleaned := bytes.TrimSpace(stripANSI(chunk[:n]))
			if !ps1Detected && len(cleaned) > 0 && cleaned[len(cleaned)-1] == sentinel {
				select {
				case ps1Ready <- struct{}{}:
				default:
				}
				ps1Detected = true
			}
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}
