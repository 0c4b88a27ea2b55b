package log

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

const (
	timestampFormat = "02/01/2006 15:04:05"
	spacer          = " | "

	infoHeader  = "[INFO]"
	warnHeader  = "[WARN]"
	debugHeader = "[DEBUG]"
	errorHeader = "[ERROR]"
)

// Subloggers registered for each subsystem so output can be filtered per area
var (
	Global     *SubLogger
	BackTester *SubLogger
	Data       *SubLogger
	Database   *SubLogger
	Portfolio  *SubLogger
	Strategy   *SubLogger
	Statistics *SubLogger
)

var (
	mu         sync.RWMutex
	output     io.Writer = os.Stdout
	subLoggers           = map[string]*SubLogger{}
)

// SubLogger tags log output with the subsystem that produced it
type SubLogger struct {
	name  string
	info  bool
	warn  bool
	debug bool
	error bool
}

func init() {
	Global = registerNewSubLogger("LOG")
	BackTester = registerNewSubLogger("BACKTESTER")
	Data = registerNewSubLogger("DATA")
	Database = registerNewSubLogger("DATABASE")
	Portfolio = registerNewSubLogger("PORTFOLIO")
	Strategy = registerNewSubLogger("STRATEGY")
	Statistics = registerNewSubLogger("STATISTICS")
}

func registerNewSubLogger(name string) *SubLogger {
	sl := &SubLogger{
		name: strings.ToUpper(name),
		info: true,
		warn: true,
		// debug is opt-in, everything else is on by default
		debug: false,
		error: true,
	}
	subLoggers[sl.name] = sl
	return sl
}

// SetLevels toggles which levels a sublogger will emit
func (sl *SubLogger) SetLevels(info, warn, debug, errs bool) {
	mu.Lock()
	defer mu.Unlock()
	sl.info, sl.warn, sl.debug, sl.error = info, warn, debug, errs
}

// SetOutput redirects all log output, primarily for tests
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	if w == nil {
		w = os.Stdout
	}
	output = w
}

func stage(sl *SubLogger, header, data string) {
	if sl == nil {
		return
	}
	mu.RLock()
	defer mu.RUnlock()
	switch header {
	case infoHeader:
		if !sl.info {
			return
		}
	case warnHeader:
		if !sl.warn {
			return
		}
	case debugHeader:
		if !sl.debug {
			return
		}
	case errorHeader:
		if !sl.error {
			return
		}
	}
	fmt.Fprintf(output, "%s%s%s%s%s%s%s\n",
		time.Now().Format(timestampFormat), spacer,
		sl.name, spacer,
		header, spacer,
		data)
}

// Info logs at info level against the given sublogger
func Info(sl *SubLogger, data string) {
	stage(sl, infoHeader, data)
}

// Infof logs a formatted message at info level against the given sublogger
func Infof(sl *SubLogger, format string, v ...interface{}) {
	stage(sl, infoHeader, fmt.Sprintf(format, v...))
}

// Warn logs at warn level against the given sublogger
func Warn(sl *SubLogger, data string) {
	stage(sl, warnHeader, data)
}

// Warnf logs a formatted message at warn level against the given sublogger
func Warnf(sl *SubLogger, format string, v ...interface{}) {
	stage(sl, warnHeader, fmt.Sprintf(format, v...))
}

// Debug logs at debug level against the given sublogger
func Debug(sl *SubLogger, data string) {
	stage(sl, debugHeader, data)
}

// Debugf logs a formatted message at debug level against the given sublogger
func Debugf(sl *SubLogger, format string, v ...interface{}) {
	stage(sl, debugHeader, fmt.Sprintf(format, v...))
}

// Error logs at error level against the given sublogger
func Error(sl *SubLogger, data string) {
	stage(sl, errorHeader, data)
}

// Errorf logs a formatted message at error level against the given sublogger
func Errorf(sl *SubLogger, format string, v ...interface{}) {
	stage(sl, errorHeader, fmt.Sprintf(format, v...))
}
