package core

import (
	"os"
	"path/filepath"
	"strings"
)

// ValidateName checks that name can be used as a project name.
// It performs no filesystem access.
func ValidateName(name string) error {
	_, _, err := SplitName(name)
	return err
}

// SplitName validates name and splits it into its namespace (parent path,
// "" for the root) and its leaf. No other normalization is applied.
func SplitName(name string) (namespace, leaf string, err error) {
	if name == "" {
		return "", "", &ProjectError{Op: "validate", Name: name, Err: ErrProjectNameEmpty}
	}
	if strings.HasSuffix(name, "/") || strings.HasSuffix(name, string(os.PathSeparator)) {
		return "", "", &ProjectError{Op: "validate", Name: name, Err: ErrProjectNameTrailingSlash}
	}
	if hasRoot(name) {
		return "", "", &ProjectError{Op: "validate", Name: name, Err: ErrProjectNameAbsolutePath}
	}

	slashed := filepath.ToSlash(name)
	if i := strings.LastIndex(slashed, "/"); i >= 0 {
		return slashed[:i], slashed[i+1:], nil
	}
	return "", slashed, nil
}

// Namespace returns the parent path of a valid project name.
func Namespace(name string) (string, error) {
	ns, _, err := SplitName(name)
	return ns, err
}

func hasRoot(name string) bool {
	if filepath.IsAbs(name) || filepath.VolumeName(name) != "" {
		return true
	}
	return strings.HasPrefix(name, "/") || strings.HasPrefix(name, string(os.PathSeparator))
}

// ResolvePath maps a validated project name to its file under root.
// Existence is not checked.
func ResolvePath(root, name, ext string) string {
	return filepath.Join(root, filepath.FromSlash(name)) + ext
}

// ValidTmuxIdentifier reports whether id can be used as a tmux session or
// window name.
func ValidTmuxIdentifier(id string) error {
	if strings.ContainsAny(id, ".:") {
		return &ProjectError{Op: "validate", Name: id, Err: ErrTmuxIdentifierIllegalCharacters}
	}
	if id == "" {
		return ErrTmuxIdentifierEmpty
	}
	return nil
}
