// Package shell splits user-supplied command lines such as $EDITOR values
// and quotes words for display or for commands handed to tmux.
package shell

import (
	"errors"
	"fmt"
	"strings"

	"github.com/kballard/go-shellquote"
)

// ErrCommandEmpty is returned when a command line holds no words.
var ErrCommandEmpty = errors.New("command is empty")

// ParseCommand splits a command line such as `code --wait` into the program
// and its arguments, then appends args. Quoting follows POSIX shell rules.
func ParseCommand(command string, args ...string) (string, []string, error) {
	words, err := shellquote.Split(command)
	if err != nil {
		return "", nil, fmt.Errorf("failed to parse command %q: %w", command, err)
	}
	if len(words) == 0 {
		return "", nil, ErrCommandEmpty
	}

	return words[0], append(words[1:], args...), nil
}

// Join quotes words so that ParseCommand would split the result back into
// the same words. Used to log command lines.
func Join(words ...string) string {
	return shellquote.Join(words...)
}

// TmuxQuote quotes s for a shell command run by tmux. Words made only of
// safe characters are left bare. Others are single-quoted, with embedded
// single quotes written as '"'"' since tmux mangles the usual '\'' form.
func TmuxQuote(s string) string {
	if s != "" && strings.IndexFunc(s, needsQuoting) < 0 {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'"'"'`) + "'"
}

// TmuxJoin quotes every word with TmuxQuote and joins them with spaces.
func TmuxJoin(words ...string) string {
	quoted := make([]string, len(words))
	for i, w := range words {
		quoted[i] = TmuxQuote(w)
	}
	return strings.Join(quoted, " ")
}

func needsQuoting(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return false
	case strings.ContainsRune(",._+:@/-", r):
		return false
	}
	return true
}
