package notify

import "context"

// Transport delivers a composed message to a named channel on a messaging
// service. It returns false without an error when the service accepted the
// request but reported a delivery failure; transport-level failures are
// returned as errors.
type Transport interface {
	PostMessage(ctx context.Context, channel, text string) (bool, error)
}
