package config

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

// DefaultPath is the config file looked up in the working directory.
const DefaultPath = "config.ini"

// Origin tells where a loaded Config came from.
type Origin int

const (
	OriginDefault Origin = iota // Built-in defaults
	OriginFile                  // Parsed from the config file
)

// String returns a human-readable name for the origin.
func (o Origin) String() string {
	if o == OriginFile {
		return "file"
	}
	return "defaults"
}

// Parse reads key=value lines into a Table. Blank lines are skipped.
// A line without '=', an empty key, or a repeated key is an error.
func Parse(r io.Reader) (Table, error) {
	t := make(Table)
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(text) == "" {
			continue
		}
		key, value, ok := strings.Cut(text, "=")
		if !ok {
			return nil, fmt.Errorf("config: line %d: missing '='", line)
		}
		if key == "" {
			return nil, fmt.Errorf("config: line %d: empty key", line)
		}
		if _, dup := t[key]; dup {
			return nil, fmt.Errorf("config: line %d: duplicate key %q", line, key)
		}
		t[key] = value
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("config: read failed: %w", err)
	}
	return t, nil
}

// LoadFile reads and fully resolves the config file at path.
func LoadFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: cannot open %s: %w", path, err)
	}
	defer f.Close()

	t, err := Parse(f)
	if err != nil {
		return Config{}, fmt.Errorf("config: cannot parse %s: %w", path, err)
	}
	cfg, err := t.Config()
	if err != nil {
		return Config{}, fmt.Errorf("config: cannot resolve %s: %w", path, err)
	}
	return cfg, nil
}

// Load returns the config from path, or the defaults if the file is absent or
// malformed in any way. The fallback is all-or-nothing and never an error;
// the returned error only describes why the defaults were used.
func Load(path string) (Config, Origin, error) {
	if path == "" {
		path = DefaultPath
	}
	cfg, err := LoadFile(path)
	if err != nil {
		return Default(), OriginDefault, err
	}
	return cfg, OriginFile, nil
}

// Encode writes the table as sorted key=value lines.
func (t Table) Encode(w io.Writer) error {
	keys := make([]string, 0, len(t))
	for k := range t {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if _, err := fmt.Fprintf(w, "%s=%s\n", k, t[k]); err != nil {
			return fmt.Errorf("config: write failed: %w", err)
		}
	}
	return nil
}
