package money

import (
	"encoding/json"
	"fmt"

	"github.com/holiman/uint256"
)

// MarshalJSON renders an Amount as a decimal string so large values
// survive round-tripping through JSON's float64-unsafe number type.
func (a Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.v.Dec())
}

// UnmarshalJSON parses an Amount from a decimal string or a plain
// JSON number.
func (a *Amount) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		// Fall back to a bare numeric literal.
		var n uint64
		if err2 := json.Unmarshal(data, &n); err2 != nil {
			return fmt.Errorf("money: invalid amount %s: %w", data, err)
		}
		a.v.SetUint64(n)
		return nil
	}
	v, err := uint256.FromDecimal(s)
	if err != nil {
		return fmt.Errorf("money: invalid amount %q: %w", s, err)
	}
	a.v = *v
	return nil
}
