package prompt

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

var hexColor = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// ExpandHome replaces a leading ~ with the home directory.
func ExpandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not get home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

func FileValidator(path string) error {
	if path == "" {
		return nil // Allow empty for none
	}

	path, err := ExpandHome(path)
	if err != nil {
		return err
	}
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("cannot read file: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory", path)
	}
	return nil
}

func ColorValidator(input string) error {
	if input == "" {
		return nil // Allow empty for default
	}
	if !hexColor.MatchString(input) {
		return fmt.Errorf("use a hex color such as #0eca2d")
	}
	return nil
}

func YearValidator(input string) error {
	if input == "" {
		return nil // Allow empty for default
	}

	year, err := strconv.Atoi(input)
	if err != nil {
		return fmt.Errorf("must be a number")
	}

	if year < 1 || year > 9999 {
		return fmt.Errorf("year must be between 1 and 9999")
	}

	return nil
}
