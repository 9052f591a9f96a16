package service

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// NotifyResult is the outcome of a notification attempt. Dispatchers never
// return errors across their boundary; callers inspect Success and log the
// reason. A misconfigured or unreachable provider must not be able to fail a
// request.
type NotifyResult struct {
	Success bool
	Reason  string
}

func notifyOK() NotifyResult {
	return NotifyResult{Success: true}
}

func notifyFailed(reason string) NotifyResult {
	return NotifyResult{Success: false, Reason: reason}
}

var notifyPolicy = bluemonday.StrictPolicy()

// sanitizeNotifyText strips markup from user-supplied text before it is
// embedded into an HTML-formatted notification.
func sanitizeNotifyText(s string) string {
	return strings.TrimSpace(notifyPolicy.Sanitize(s))
}
