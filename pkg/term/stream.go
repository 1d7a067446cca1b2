package term

// LogStreamLevel defines the mark persisted at the end of a stream.
type LogStreamLevel int

const (
	LogStreamSuccess LogStreamLevel = iota
	LogStreamOk
	LogStreamError
	LogStreamWarning
	LogStreamInfo
)

// Stream wraps `fn` call into progress indication,
// displaying `start` while it runs, `complete` on success and returned error otherwise.
//
// Non-interactive loggers write plain log records instead of spinner,
// so that output of Fabric binaries streamed in between stays readable.
func (l *Logger) Stream(fn func() error, start, complete string) error {
	var err error

	l.StreamLevel(func() (LogStreamLevel, string) {
		if err = fn(); err != nil {
			return LogStreamError, err.Error()
		}

		return LogStreamSuccess, complete
	}, start)

	return err
}

// StreamLevel wraps `fn` call into progress indication,
// displaying `start` while it runs and the returned message marked with the returned level.
func (l *Logger) StreamLevel(fn func() (level LogStreamLevel, msg string), start string) {
	if !l.interactive {
		l.Infof("%s...", start)
		level, msg := fn()
		l.persist(level, msg)
		return
	}

	l.streamer.Start()
	defer l.streamer.Stop()

	l.streamer.Text(" " + start)
	level, msg := fn()
	l.streamer.PersistWith(l.streamSpinners[level], " "+msg)
}

func (l *Logger) persist(level LogStreamLevel, msg string) {
	switch level {
	case LogStreamSuccess:
		l.Success(msg)
	case LogStreamError:
		l.Errorf("%s", msg)
	case LogStreamWarning:
		l.Warnf("%s", msg)
	default:
		l.Infof("%s", msg)
	}
}
