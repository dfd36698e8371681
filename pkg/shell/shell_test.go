package shell_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/burrow/pkg/shell"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name     string
		command  string
		args     []string
		wantProg string
		wantArgs []string
	}{
		{"Single Word", "vim", []string{"/tmp/p.yml"}, "vim", []string{"/tmp/p.yml"}},
		{"With Flags", "code --wait", []string{"p.yml"}, "code", []string{"--wait", "p.yml"}},
		{"Quoted Program", `"/opt/my editor/bin/ed" -n`, nil, "/opt/my editor/bin/ed", []string{"-n"}},
		{"Single Quotes", `emacsclient -a '' -t`, nil, "emacsclient", []string{"-a", "", "-t"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prog, args, err := shell.ParseCommand(tt.command, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.wantProg, prog)
			assert.Equal(t, tt.wantArgs, args)
		})
	}

	t.Run("Empty", func(t *testing.T) {
		_, _, err := shell.ParseCommand("   ")
		assert.ErrorIs(t, err, shell.ErrCommandEmpty)
	})

	t.Run("Unterminated Quote", func(t *testing.T) {
		_, _, err := shell.ParseCommand(`vim "unterminated`)
		assert.Error(t, err)
	})
}

func TestJoin(t *testing.T) {
	assert.Equal(t, "vim /tmp/p.yml", shell.Join("vim", "/tmp/p.yml"))
	assert.Equal(t, "", shell.Join())

	words := []string{"code", "--wait", "my project.yml", "it's"}
	prog, args, err := shell.ParseCommand(shell.Join(words...))
	require.NoError(t, err)
	assert.Equal(t, words, append([]string{prog}, args...))
}

func TestTmuxQuote(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{"/usr/bin/vim", "/usr/bin/vim"},
		{"", "''"},
		{"two words", "'two words'"},
		{"$HOME", "'$HOME'"},
		{"it's", `'it'"'"'s'`},
		{"'", `''"'"''`},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, shell.TmuxQuote(tt.in), "input %q", tt.in)
	}
}

func TestTmuxJoin(t *testing.T) {
	assert.Equal(t, `tmux send-keys 'echo it'"'"'s done' Enter`,
		shell.TmuxJoin("tmux", "send-keys", "echo it's done", "Enter"))
	assert.Equal(t, "", shell.TmuxJoin())

	// the tmux form must still read back as the same words in a POSIX shell
	words := []string{"a b", "it's"}
	prog, args, err := shell.ParseCommand(shell.TmuxJoin(words...))
	require.NoError(t, err)
	assert.Equal(t, words, append([]string{prog}, args...))
}
