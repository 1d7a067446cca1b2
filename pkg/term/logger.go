package term

import (
	"fmt"
	"os"
	"strings"

	"github.com/gernest/wow"
	"github.com/gernest/wow/spin"
	"github.com/morikuni/aec"
	"github.com/op/go-logging"
	"github.com/spf13/viper"
)

const format = "%{color}%{time:2006.01.02 15:04:05} " +
	"%{level:.4s}%{color:reset} [%{module}] -> %{message}"

// Logger is a leveled logger with context support,
// capable of decorating long operations with interactive progress stream.
type Logger struct {
	*loggerArgs
	log            *logging.Logger
	backend        logging.LeveledBackend
	streamer       *wow.Wow
	streamSpinners map[LogStreamLevel]spin.Spinner
}

// NewLogger constructs new Logger instance.
func NewLogger(options ...LoggerOption) *Logger {
	var args = &loggerArgs{
		stdout: os.Stdout,
		stderr: os.Stderr,
		module: "fabnboot",
		level:  viper.GetString("logging"),

		interactive: true,
	}

	for i := range options {
		options[i](args)
	}

	level, err := logging.LogLevel(args.level)
	if err != nil {
		level = logging.INFO
	}

	backend := logging.AddModuleLevel(logging.NewBackendFormatter(
		logging.NewLogBackend(args.stderr, "", 0),
		logging.MustStringFormatter(format),
	))
	backend.SetLevel(level, "")

	return newLogger(args, backend)
}

func newLogger(args *loggerArgs, backend logging.LeveledBackend) *Logger {
	log := logging.MustGetLogger(args.module)
	log.SetBackend(backend)

	return &Logger{
		loggerArgs: args,
		log:        log,
		backend:    backend,
		streamer:   wow.New(args.stderr, spin.Get(spin.Dots), ""),
		streamSpinners: map[LogStreamLevel]spin.Spinner{
			LogStreamSuccess: {Frames: []string{viper.GetString("cli.success_emoji")}},
			LogStreamOk:      {Frames: []string{viper.GetString("cli.ok_emoji")}},
			LogStreamError:   {Frames: []string{viper.GetString("cli.error_emoji")}},
			LogStreamWarning: {Frames: []string{viper.GetString("cli.warning_emoji")}},
			LogStreamInfo:    {Frames: []string{viper.GetString("cli.info_emoji")}},
		},
	}
}

// For returns child logger sharing output and level, which tags its records with `context`.
func (l *Logger) For(context string) *Logger {
	var args = *l.loggerArgs
	args.module = strings.Join([]string{l.module, context}, ".")

	return newLogger(&args, l.backend)
}

// Module returns the logger context name.
func (l *Logger) Module() string {
	return l.module
}

func (l *Logger) Debugf(format string, a ...interface{}) {
	l.log.Debugf(format, a...)
}

func (l *Logger) Infof(format string, a ...interface{}) {
	l.log.Infof(format, a...)
}

func (l *Logger) Warnf(format string, a ...interface{}) {
	l.log.Warningf(format, a...)
}

func (l *Logger) Errorf(format string, a ...interface{}) {
	l.log.Errorf(format, a...)
}

// Error logs `err` prefixed with `message`, nil errors are ignored.
func (l *Logger) Error(err error, message string) {
	if err != nil {
		l.log.Errorf("%s: %v", message, err)
	}
}

// Success prints highlighted `message` to the standard output.
func (l *Logger) Success(message string) {
	_, _ = fmt.Fprintln(l.stdout, aec.GreenF.Apply(message))
}

func (l *Logger) Successf(format string, a ...interface{}) {
	l.Success(fmt.Sprintf(format, a...))
}

// Fail prints highlighted `message` to the error output.
func (l *Logger) Fail(message string) {
	_, _ = fmt.Fprintln(l.stderr, aec.LightRedF.Apply(message))
}

func (l *Logger) Failf(format string, a ...interface{}) {
	l.Fail(fmt.Sprintf(format, a...))
}

func (l *Logger) NewLine() {
	_, _ = fmt.Fprintln(l.stdout)
}
