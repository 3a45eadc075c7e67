package docapproval

import "github.com/charmbracelet/log"

// Notifier delivers workflow notifications to interested parties. Entry
// actions call it once per recipient; delivery failures are out of scope
// for the workflow, so the interface has no error return.
type Notifier interface {
	Notify(recipient, message string)
}

// LogNotifier writes notifications to the process log, one line each.
type LogNotifier struct {
	logger *log.Logger
}

// NewLogNotifier creates a notifier backed by a "notify"-prefixed logger.
func NewLogNotifier() *LogNotifier {
	return &LogNotifier{logger: log.WithPrefix("notify")}
}

func (n *LogNotifier) Notify(recipient, message string) {
	n.logger.Info(message, "to", recipient)
}
