package common

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/starfederation/datastar-go/datastar"
)

// NewSignals returns the initial signals for a page at route. Each page load
// gets its own mount id so log lines from one tab can be correlated.
func NewSignals(route string) Signals {
	return Signals{Route: route, MountID: uuid.NewString()}
}

// ReadSignals decodes the datastar signals sent with r.
func ReadSignals(r *http.Request) (Signals, error) {
	var s Signals
	if err := datastar.ReadSignals(r, &s); err != nil {
		return Signals{}, fmt.Errorf("read signals: %w", err)
	}
	return s, nil
}

// Encode renders the signals as the JSON object for data-signals.
func (s Signals) Encode() string {
	b, err := json.Marshal(s)
	if err != nil {
		// Only strings and bools; cannot fail.
		return "{}"
	}
	return string(b)
}
