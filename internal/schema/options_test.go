package schema_test

import (
	"encoding/json"
	"testing"

	"bitbucket.org/crgw/rental-quote/internal/quote"
	"bitbucket.org/crgw/rental-quote/internal/schema"
	"github.com/stretchr/testify/assert"
)

func TestRentalOptionsParam(t *testing.T) {
	t.Run("should decode every accepted payload shape", func(t *testing.T) {
		tests := []struct {
			name     string
			payload  string
			expected quote.RentalOptions
		}{
			{
				name:     "object",
				payload:  `{"options": {"childSeat": true, "unlimitedKm": true, "simCard": false}}`,
				expected: quote.RentalOptions{ChildSeat: true, UnlimitedKm: true},
			},
			{
				name:     "string encoded object",
				payload:  `{"options": "{\"personalDriver\": true, \"returnAtAddress\": true}"}`,
				expected: quote.RentalOptions{PersonalDriver: true, ReturnAtAddress: true},
			},
			{
				name:     "null",
				payload:  `{"options": null}`,
				expected: quote.RentalOptions{},
			},
			{
				name:     "absent",
				payload:  `{}`,
				expected: quote.RentalOptions{},
			},
			{
				name:     "empty string",
				payload:  `{"options": ""}`,
				expected: quote.RentalOptions{},
			},
			{
				name:     "unknown flags are ignored",
				payload:  `{"options": {"jetpack": true, "tireInsurance": true}}`,
				expected: quote.RentalOptions{TireInsurance: true},
			},
		}

		for _, test := range tests {
			t.Run(test.name, func(t *testing.T) {
				var body struct {
					Options schema.RentalOptionsParam `json:"options"`
				}

				err := json.Unmarshal([]byte(test.payload), &body)
				assert.NoError(t, err)
				assert.Equal(t, test.expected, body.Options.Options())
			})
		}
	})

	t.Run("should reject malformed payloads", func(t *testing.T) {
		tests := []struct {
			name    string
			payload string
		}{
			{"non boolean flag", `{"options": {"childSeat": "yes"}}`},
			{"array", `{"options": ["childSeat"]}`},
			{"number", `{"options": 1}`},
			{"string that is not an object", `{"options": "childSeat"}`},
		}

		for _, test := range tests {
			t.Run(test.name, func(t *testing.T) {
				var body struct {
					Options schema.RentalOptionsParam `json:"options"`
				}

				err := json.Unmarshal([]byte(test.payload), &body)
				assert.Error(t, err)
			})
		}
	})

	t.Run("should not depend on flag order", func(t *testing.T) {
		first, err := schema.DecodeRentalOptions([]byte(`{"returnAtAddress": true, "childSeat": true, "unlimitedKm": true}`))
		assert.NoError(t, err)

		second, err := schema.DecodeRentalOptions([]byte(`{"unlimitedKm": true, "returnAtAddress": true, "childSeat": true}`))
		assert.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("should decode stored payloads", func(t *testing.T) {
		options, err := schema.DecodeRentalOptions(nil)
		assert.NoError(t, err)
		assert.Equal(t, quote.RentalOptions{}, options)

		options, err = schema.DecodeRentalOptions([]byte(`"{\"simCard\": true}"`))
		assert.NoError(t, err)
		assert.Equal(t, quote.RentalOptions{SimCard: true}, options)

		_, err = schema.DecodeRentalOptions([]byte(`{broken`))
		assert.Error(t, err)
	})

	t.Run("should encode back to an object", func(t *testing.T) {
		encoded, err := json.Marshal(schema.NewRentalOptionsParam(map[string]bool{"childSeat": true}))
		assert.NoError(t, err)
		assert.JSONEq(t, `{"childSeat": true}`, string(encoded))

		encoded, err = json.Marshal(schema.RentalOptionsParam{})
		assert.NoError(t, err)
		assert.JSONEq(t, `{}`, string(encoded))
	})
}
