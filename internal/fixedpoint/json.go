package fixedpoint

import (
	"encoding/json"
	"fmt"
	"math/big"
)

// MarshalJSON renders the raw scaled integer as a decimal string.
func (f Fixed) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.bigOrZero().String())
}

// UnmarshalJSON parses a Fixed from its raw scaled decimal string.
func (f *Fixed) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("fixedpoint: invalid value %s: %w", data, err)
	}
	raw, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return fmt.Errorf("fixedpoint: invalid integer %q", s)
	}
	f.raw = raw
	return nil
}
