package orchestrator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShouldSaveInsight(t *testing.T) {
	tests := []struct {
		name    string
		message string
		reply   string
		want    bool
	}{
		{"english keyword in message", "any update on the project?", "Looks good.", true},
		{"swedish keyword in message", "hur går projektet?", "Det rullar på.", true},
		{"keyword in reply only", "nåt nytt?", "Du har en deadline på fredag.", true},
		{"case insensitive", "VIKTIGT möte imorgon", "Noterat.", true},
		{"subscription keyword", "säg upp min prenumeration på Netflix", "Klart.", true},
		{"stress keyword", "jag känner mig stressad", "Ta en paus.", true},
		{"no keywords", "vad är klockan?", "Den är halv tre.", false},
		{"empty strings", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, shouldSaveInsight(tt.message, tt.reply))
		})
	}
}
