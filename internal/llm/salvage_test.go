package llm

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSalvageNoteArray(t *testing.T) {
	valid := `[{"id":"row-1","note":"Within range and looking good.","confidence":0.9}]`

	tests := []struct {
		name    string
		in      string
		wantErr bool
	}{
		{"bare array", valid, false},
		{"object wrapped", `{"notes":` + valid + `}`, false},
		{"code fenced", "```json\n" + valid + "\n```", false},
		{"prose around", "Here are the notes:\n" + valid + "\nHope that helps!", false},
		{"truncated after element", `[{"id":"row-1","note":"Within range and looking good.","confidence":0.9},{"id":"row-2","no`, false},
		{"empty", "", true},
		{"no array at all", `{"message":"try again later"}`, true},
		{"plain prose", "I could not produce notes this time.", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := SalvageNoteArray([]byte(tt.in))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			var arr []Note
			require.NoError(t, json.Unmarshal(out, &arr))
			require.NotEmpty(t, arr)
			assert.Equal(t, "row-1", arr[0].ID)
		})
	}
}

func TestNoteBatchSchemaContract(t *testing.T) {
	schema := BuildNoteBatchSchema()

	tests := []struct {
		name    string
		in      string
		wantErr bool
	}{
		{"valid", `[{"id":"row-1","note":"Within range.","confidence":0.5}]`, false},
		{"empty array ok", `[]`, false},
		{"note too short", `[{"id":"row-1","note":"ok","confidence":0.5}]`, true},
		{"confidence above one", `[{"id":"row-1","note":"Within range.","confidence":1.5}]`, true},
		{"missing id", `[{"note":"Within range.","confidence":0.5}]`, true},
		{"empty id", `[{"id":"","note":"Within range.","confidence":0.5}]`, true},
		{"extra key", `[{"id":"row-1","note":"Within range.","confidence":0.5,"extra":1}]`, true},
		{"object not array", `{"id":"row-1","note":"Within range.","confidence":0.5}`, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateJSONAgainstSchema(schema, []byte(tt.in))
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
