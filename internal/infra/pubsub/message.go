package pubsub

import (
	"encoding/json"

	"identity/internal/domain/service"
	"identity/internal/errors"
)

// Message attribute keys, usable as Pub/Sub subscription filters.
const (
	attrEventType  = "event_type"
	attrIdentityID = "identity_id"
	attrRequestID  = "request_id"
)

// encodeEvent returns the JSON payload and filter attributes of event.
func encodeEvent(event *service.IdentityEvent) ([]byte, map[string]string, error) {
	if event == nil {
		return nil, nil, errors.New("event must not be nil")
	}

	data, err := json.Marshal(event)
	if err != nil {
		return nil, nil, errors.WithStack(err)
	}

	attributes := map[string]string{
		attrEventType:  event.Type,
		attrIdentityID: event.IdentityID,
	}
	if event.RequestID != "" {
		attributes[attrRequestID] = event.RequestID
	}

	return data, attributes, nil
}
