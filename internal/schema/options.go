package schema

import (
	"bytes"
	"encoding/json"
	"fmt"

	"bitbucket.org/crgw/rental-quote/internal/quote"
)

// RentalOptionsParam decodes the option flags a client sends. Older clients
// send either a JSON object of flags or the same object encoded as a JSON
// string. Unknown flags are ignored.
type RentalOptionsParam struct {
	flags map[string]bool
}

func NewRentalOptionsParam(flags map[string]bool) RentalOptionsParam {
	return RentalOptionsParam{flags: flags}
}

func (p *RentalOptionsParam) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)

	if bytes.Equal(trimmed, []byte("null")) {
		p.flags = nil
		return nil
	}

	if len(trimmed) > 0 && trimmed[0] == '"' {
		var encoded string
		if err := json.Unmarshal(trimmed, &encoded); err != nil {
			return fmt.Errorf("invalid options: %w", err)
		}

		trimmed = bytes.TrimSpace([]byte(encoded))
		if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
			p.flags = nil
			return nil
		}
	}

	raw := map[string]json.RawMessage{}
	if err := json.Unmarshal(trimmed, &raw); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}

	flags := make(map[string]bool, len(raw))
	for key, value := range raw {
		var flag bool
		if err := json.Unmarshal(value, &flag); err != nil {
			return fmt.Errorf("invalid options: flag %q must be a boolean", key)
		}

		flags[key] = flag
	}

	p.flags = flags

	return nil
}

func (p RentalOptionsParam) MarshalJSON() ([]byte, error) {
	if p.flags == nil {
		return []byte("{}"), nil
	}

	return json.Marshal(p.flags)
}

func (p RentalOptionsParam) Options() quote.RentalOptions {
	return quote.RentalOptions{
		UnlimitedKm:        p.flags["unlimitedKm"],
		SpeedLimitIncrease: p.flags["speedLimitIncrease"],
		TireInsurance:      p.flags["tireInsurance"],
		PersonalDriver:     p.flags["personalDriver"],
		PriorityService:    p.flags["priorityService"],
		ChildSeat:          p.flags["childSeat"],
		SimCard:            p.flags["simCard"],
		RoadsideAssistance: p.flags["roadsideAssistance"],
		PickupAtAddress:    p.flags["pickupAtAddress"],
		ReturnAtAddress:    p.flags["returnAtAddress"],
	}
}

// DecodeRentalOptions decodes stored option payloads in any accepted shape.
// An empty payload means no options.
func DecodeRentalOptions(data []byte) (quote.RentalOptions, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return quote.RentalOptions{}, nil
	}

	var param RentalOptionsParam
	if err := json.Unmarshal(data, &param); err != nil {
		return quote.RentalOptions{}, err
	}

	return param.Options(), nil
}
