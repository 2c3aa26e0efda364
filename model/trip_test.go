package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChecklistItemUnmarshal(t *testing.T) {
	tests := []struct {
		description string
		input       string
		expected    []ChecklistItem
	}{
		{
			description: "bare strings promote to uncompleted items",
			input:       `["Passport", "Charger"]`,
			expected:    []ChecklistItem{{Item: "Passport"}, {Item: "Charger"}},
		},
		{
			description: "structured entries keep their completed flag",
			input:       `[{"item":"Passport","completed":true}]`,
			expected:    []ChecklistItem{{Item: "Passport", Completed: true}},
		},
		{
			description: "mixed strings and objects",
			input:       `["Socks", {"item":"Visa","completed":true}, "Camera"]`,
			expected:    []ChecklistItem{{Item: "Socks"}, {Item: "Visa", Completed: true}, {Item: "Camera"}},
		},
	}

	for _, test := range tests {
		var got []ChecklistItem
		err := json.Unmarshal([]byte(test.input), &got)

		assert.NoErrorf(t, err, test.description)
		assert.Equalf(t, test.expected, got, test.description)
	}
}

func TestChecklistItemUnmarshalRejectsNumbers(t *testing.T) {
	var got []ChecklistItem
	err := json.Unmarshal([]byte(`[42]`), &got)
	assert.Error(t, err)
}

func TestHasPaid(t *testing.T) {
	var info *PaymentInfo
	assert.False(t, info.HasPaid(), "nil payment info")
	assert.False(t, (&PaymentInfo{TransactionId: "txn"}).HasPaid(), "pending payment without paid_at")
}
