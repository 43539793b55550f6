package notice

import (
	"sync"
	"unicode"
	"unicode/utf8"

	"go.uber.org/zap"
)

type Level uint8

const (
	LevelInfo Level = iota + 1
	LevelSuccess
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelSuccess:
		return "success"
	case LevelError:
		return "error"
	default:
		return "info"
	}
}

func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

func (l *Level) UnmarshalText(b []byte) error {
	switch string(b) {
	case "success":
		*l = LevelSuccess
	case "error":
		*l = LevelError
	default:
		*l = LevelInfo
	}
	return nil
}

// Notice is a transient user-visible message.
type Notice struct {
	Level Level  `json:"level"`
	Text  string `json:"text"`
}

func Info(text string) Notice    { return Notice{Level: LevelInfo, Text: capitalize(text)} }
func Success(text string) Notice { return Notice{Level: LevelSuccess, Text: capitalize(text)} }
func Error(text string) Notice   { return Notice{Level: LevelError, Text: capitalize(text)} }

type Notifier interface {
	Notify(n Notice)
}

type NotifierFunc func(n Notice)

func (f NotifierFunc) Notify(n Notice) { f(n) }

// Recorder keeps every notice it receives.
type Recorder struct {
	mu      sync.Mutex
	notices []Notice
}

func (r *Recorder) Notify(n Notice) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notices = append(r.notices, n)
}

func (r *Recorder) Notices() []Notice {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Notice, len(r.notices))
	copy(out, r.notices)
	return out
}

// Last returns the most recent notice, or the zero Notice.
func (r *Recorder) Last() Notice {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.notices) == 0 {
		return Notice{}
	}
	return r.notices[len(r.notices)-1]
}

// Drain returns and forgets everything recorded so far.
func (r *Recorder) Drain() []Notice {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := r.notices
	r.notices = nil
	return out
}

// Logged wraps next so every notice is also written to log.
func Logged(log *zap.Logger, next Notifier) Notifier {
	return NotifierFunc(func(n Notice) {
		if n.Level == LevelError {
			log.Warn("notice", zap.String("text", n.Text))
		} else {
			log.Debug("notice", zap.Stringer("level", n.Level), zap.String("text", n.Text))
		}
		if next != nil {
			next.Notify(n)
		}
	})
}

var Discard Notifier = NotifierFunc(func(Notice) {})

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || unicode.IsUpper(r) {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
