package source

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseJournalUnits(t *testing.T) {
	lines := strings.Join([]string{
		`{"_SYSTEMD_UNIT":"firefox.service","MESSAGE":"started"}`,
		`{"_SYSTEMD_UNIT":"dbus.socket"}`,
		`not json at all`,
		`{"MESSAGE":"no unit field"}`,
		`{"_SYSTEMD_UNIT":"spotify.service"}`,
	}, "\n")

	got := parseJournalUnits(strings.NewReader(lines))
	assert.Equal(t, []string{"firefox", "spotify"}, got)
}

func TestMatchKeywords(t *testing.T) {
	content := `<bookmark href="file:///home/u/projects/main.py" app="vscode"/>
<bookmark href="file:///home/u/art/sketch.kra" app="krita"/>`

	got := matchKeywords(content, []string{"vscode", "krita", "steam"})
	assert.Equal(t, []string{"vscode", "krita"}, got)
}
