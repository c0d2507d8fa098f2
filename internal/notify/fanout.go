package notify

type Sender interface {
	Send(message string, category string) bool
}

// Fanout sends every notification to all senders in order.
// Reports success only when every sender succeeded, but never stops on failure.
type Fanout []Sender

func (f Fanout) Send(message string, category string) bool {
	ok := true
	for _, s := range f {
		if !s.Send(message, category) {
			ok = false
		}
	}
	return ok
}
