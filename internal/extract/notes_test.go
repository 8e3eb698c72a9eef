package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractDoctorNotes(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			"single line",
			"IgG\n(540 - 1822 mg/dL)\n1493\n\nDoctor's notes: recheck in 6 weeks\n",
			"recheck in 6 weeks",
		},
		{
			"multi line until blank",
			"Notes:\nfasting sample\ntaken at 08:15\n\nunrelated footer",
			"fasting sample\ntaken at 08:15",
		},
		{
			"bare notes header",
			"NOTE: patient on supplements",
			"patient on supplements",
		},
		{
			"absent",
			"IgG\n(540 - 1822 mg/dL)\n1493",
			"",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractDoctorNotes(tt.text))
		})
	}
}
