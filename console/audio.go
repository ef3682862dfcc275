package console

// audioStream is a small lock-free-ish ring buffer of mixed APU
// samples, pushed by Run (the emulation goroutine) and drained by
// Read (ebiten's audio goroutine, via an audio.Player). When the
// buffer is full, new samples are dropped rather than blocking the
// emulation loop — an audible glitch is preferable to stalling CPU
// timing, and is the same trade-off RNG999-gones's player makes.
type audioStream struct {
	buf  []int16
	head int
	tail int
	size int
}

const audioBufferSamples = 1 << 15 // 16384 16-bit stereo frames, ~9ms at the 1789773Hz stream rate

func newAudioStream() *audioStream {
	return &audioStream{buf: make([]int16, audioBufferSamples)}
}

// push appends one mixed APU sample (range roughly [0,1)) as a pair of
// identical 16-bit stereo PCM samples.
func (s *audioStream) push(sample float64) {
	v := int16(sample * 32767 * 2) // APU mix range is small; scale toward full-range
	if s.size+2 > len(s.buf) {
		return // drop rather than block
	}
	s.buf[s.tail] = v
	s.tail = (s.tail + 1) % len(s.buf)
	s.buf[s.tail] = v
	s.tail = (s.tail + 1) % len(s.buf)
	s.size += 2
}

// Read implements io.Reader, producing little-endian 16-bit stereo
// PCM bytes for ebiten's audio.Player. Returns (0, nil) rather than
// blocking when the buffer is empty, which is sufficient for
// audio.Player's polling read loop.
func (s *audioStream) Read(p []byte) (int, error) {
	n := 0
	for n+2 <= len(p) && s.size > 0 {
		v := s.buf[s.head]
		s.head = (s.head + 1) % len(s.buf)
		s.size--
		p[n] = uint8(v)
		p[n+1] = uint8(v >> 8)
		n += 2
	}
	return n, nil
}
