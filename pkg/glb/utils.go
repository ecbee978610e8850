package glb

import "io"

// padLen returns the number of bytes needed to round n up to a multiple of Align.
func padLen(n int) int {
	return (Align - n%Align) % Align
}

func writeFull(w io.Writer, p []byte) error {
	for len(p) > 0 {
		n, err := w.Write(p)
		if err != nil {
			return err
		}
		if n == 0 {
			return io.ErrShortWrite
		}
		p = p[n:]
	}
	return nil
}
