package palette

import (
	"encoding/json"
	"errors"
	"fmt"

	"gitlab.com/tinyland/lab/chalkboard/pkg/catalog"
)

// ErrBadPayload is wrapped when a drag payload cannot be decoded.
var ErrBadPayload = errors.New("palette: malformed bottle payload")

// EncodePayload serializes a bottle for a drag-and-drop transfer.
func EncodePayload(b catalog.Bottle) ([]byte, error) {
	data, err := json.Marshal(b)
	if err != nil {
		return nil, fmt.Errorf("palette: encode payload: %w", err)
	}
	return data, nil
}

// DecodePayload restores a bottle from a drag payload. A payload without
// an id or hex is rejected.
func DecodePayload(data []byte) (catalog.Bottle, error) {
	var b catalog.Bottle
	if err := json.Unmarshal(data, &b); err != nil {
		return catalog.Bottle{}, fmt.Errorf("%w: %v", ErrBadPayload, err)
	}
	if b.ID == "" || b.Hex == "" {
		return catalog.Bottle{}, fmt.Errorf("%w: missing id or hex", ErrBadPayload)
	}
	return b, nil
}
