package notify

import log "github.com/sirupsen/logrus"

// LogNotifier writes notifications through a logrus logger so server and CLI
// surfaces get the same toast copy the browser would show.
type LogNotifier struct {
	Logger *log.Logger
}

// NewLogNotifier constructs a LogNotifier; a nil logger falls back to the
// logrus standard logger.
func NewLogNotifier(logger *log.Logger) *LogNotifier {
	return &LogNotifier{Logger: logger}
}

func (n *LogNotifier) Notify(notification Notification) {
	logger := log.StandardLogger()
	if n != nil && n.Logger != nil {
		logger = n.Logger
	}
	entry := logger.WithField("status", string(notification.Status))
	switch notification.Status {
	case StatusError:
		entry.Error(notification.Message)
	case StatusLoading:
		entry.Debug(notification.Message)
	default:
		entry.Info(notification.Message)
	}
}
