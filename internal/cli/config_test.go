package cli

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/timers/internal/domain"
)

func TestConfigCommand_NoSubcommand_ShowsHelp(t *testing.T) {
	c := newTestContainer(t, "")

	stdout, _, err := execute(c, "config")

	require.NoError(t, err)
	assert.Contains(t, stdout, "show")
	assert.Contains(t, stdout, "init")
	assert.Contains(t, stdout, "template")
}

func TestConfigShowCommand_Defaults(t *testing.T) {
	c := newTestContainer(t, "")

	stdout, _, err := execute(c, "config", "show")

	require.NoError(t, err)
	assert.Contains(t, stdout, c.ConfigManager.Path()+" (not found)")
	assert.Contains(t, stdout, "[Effective Config]")
	assert.Contains(t, stdout, "tick_interval = '1s'")
	assert.Contains(t, stdout, "theme = 'light'")
	assert.Contains(t, stdout, "format = 'json'")
	assert.NotContains(t, stdout, "dir =")
	assert.NotContains(t, stdout, "[notify]")
}

func TestConfigShowCommand_FileOverrides(t *testing.T) {
	c := newTestContainer(t, "[log]\nlevel = \"debug\"\n[export]\ndir = \"/tmp/exports\"\n[notify]\ncommand = [\"notify-send\", \"{title}\"]\n")

	stdout, _, err := execute(c, "config", "show")

	require.NoError(t, err)
	assert.NotContains(t, stdout, "(not found)")
	assert.Contains(t, stdout, "level = 'debug'")
	assert.Contains(t, stdout, "dir = '/tmp/exports'")
	assert.Contains(t, stdout, "[notify]")
	assert.Contains(t, stdout, "notify-send")
}

func TestConfigInitCommand(t *testing.T) {
	c := newTestContainer(t, "")

	stdout, _, err := execute(c, "config", "init")

	require.NoError(t, err)
	assert.Equal(t, "Created config file: "+c.ConfigManager.Path()+"\n", stdout)
	content, err := os.ReadFile(c.ConfigManager.Path())
	require.NoError(t, err)
	assert.Equal(t, domain.ConfigTemplate(), string(content))

	_, _, err = execute(c, "config", "init")
	assert.ErrorIs(t, err, domain.ErrConfigExists)
}

func TestConfigTemplateCommand(t *testing.T) {
	stdout, _, err := execute(nil, "config", "template")

	require.NoError(t, err)
	assert.Equal(t, domain.ConfigTemplate(), stdout)
}
