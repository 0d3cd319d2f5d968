package client

// Notifier receives the transient toasts the CMS shows after mutations.
type Notifier interface {
	Success(message string)
	Error(message string)
}

type nopNotifier struct{}

func (nopNotifier) Success(string) {}
func (nopNotifier) Error(string)  {}
