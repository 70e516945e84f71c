package events

import (
	"encoding/json"

	"github.com/spellforge/client-go/errors"
)

// DecodeFunc turns a raw wire payload into a typed payload. It must
// never panic; malformed input returns a DECODE_FAILED error.
type DecodeFunc func(data []byte) (Payload, error)

// decodeJSON builds the decode function for one payload type. An empty
// data frame decodes to the payload's zero value, which is the chosen
// default for every optional field.
func decodeJSON[T Payload](t Type) DecodeFunc {
	return func(data []byte) (Payload, error) {
		var p T
		if len(data) == 0 {
			return p, nil
		}
		if err := json.Unmarshal(data, &p); err != nil {
			return nil, errors.DecodeFailed(string(t), err)
		}
		return p, nil
	}
}
