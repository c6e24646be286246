package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToAppointmentParsesScheduleID(t *testing.T) {
	p := newFakePage()
	withContinueLink(p, "https://ais.example.test/en-ca/niv/schedule/12345/continue_actions")

	nav := Navigator{BaseURL: testBaseURL, Log: discardLogger()}
	err := nav.ToAppointment(p)

	require.NoError(t, err)
	assert.Contains(t, p.calls, "goto-load "+testBaseURL+"/schedule/12345/appointment")
}

func TestToAppointmentFailures(t *testing.T) {
	tests := []struct {
		name   string
		script func(p *fakePage)
	}{
		{
			name:   "continue link absent",
			script: func(p *fakePage) {},
		},
		{
			name: "href does not match pattern",
			script: func(p *fakePage) {
				withContinueLink(p, "https://ais.example.test/en-ca/niv/groups/12345")
			},
		},
		{
			name: "href read fails",
			script: func(p *fakePage) {
				p.queryResults[continueLinkSelector] = &fakeElement{attrErr: ErrInteraction}
			},
		},
		{
			name: "link query fails",
			script: func(p *fakePage) {
				p.queryErr[continueLinkSelector] = ErrInteraction
			},
		},
		{
			name: "appointment page load fails",
			script: func(p *fakePage) {
				withContinueLink(p, "/schedule/777/continue_actions")
				p.navErr = ErrInteraction
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newFakePage()
			tt.script(p)

			nav := Navigator{BaseURL: testBaseURL, Log: discardLogger()}
			err := nav.ToAppointment(p)

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrNavigation)
		})
	}
}
