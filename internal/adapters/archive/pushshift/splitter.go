package pushshift

// LineSplitter reassembles newline-terminated records from arbitrarily sized
// decompressed chunks. The carry slice holds the trailing partial line
// between Feed calls; it is only ever emitted once a terminator arrives.
type LineSplitter struct {
	carry []byte
}

// Feed appends chunk to the carried bytes and returns every complete line
// now available, terminator stripped. Returned slices are copies and safe to
// retain across calls.
func (s *LineSplitter) Feed(chunk []byte) [][]byte {
	if len(chunk) == 0 {
		return nil
	}
	buf := append(s.carry, chunk...)

	var lines [][]byte
	start := 0
	for i := 0; i < len(buf); i++ {
		if buf[i] != '\n' {
			continue
		}
		line := make([]byte, i-start)
		copy(line, buf[start:i])
		lines = append(lines, line)
		start = i + 1
	}

	s.carry = append(s.carry[:0], buf[start:]...)
	return lines
}

// Pending returns the carried partial line. It is never yielded by Feed; at
// end of stream the caller drops it.
func (s *LineSplitter) Pending() []byte { return s.carry }
