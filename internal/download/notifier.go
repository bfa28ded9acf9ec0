package download

import "log"

// Notifier shows a user-visible notice for a failure
type Notifier interface {
	Notify(err error)
}

// NotifierFunc adapts a function to Notifier
type NotifierFunc func(err error)

// Notify calls f(err)
func (f NotifierFunc) Notify(err error) {
	f(err)
}

// LogNotifier writes notices to the standard logger
type LogNotifier struct{}

// Notify logs err
func (LogNotifier) Notify(err error) {
	log.Printf("Notice: %v", err)
}
