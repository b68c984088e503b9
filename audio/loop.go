package audio

import "io"

// loopReader restarts src from the beginning whenever it reaches the end.
// An empty source reports io.EOF instead of spinning.
type loopReader struct {
	src   io.ReadSeeker
	loops int
}

func (l *loopReader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	rewound := false
	for {
		n, err := l.src.Read(p)
		if n > 0 {
			return n, nil
		}
		if err != nil && err != io.EOF {
			return 0, err
		}
		if rewound {
			return 0, io.EOF
		}
		if _, err := l.src.Seek(0, io.SeekStart); err != nil {
			return 0, err
		}
		l.loops++
		rewound = true
	}
}
