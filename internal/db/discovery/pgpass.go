package discovery

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
)

// PgPassEntry represents a line in .pgpass file
type PgPassEntry struct {
	Host     string
	Port     int
	Database string
	User     string
	Password string
}

// ParsePgPass reads and parses ~/.pgpass
func ParsePgPass() ([]PgPassEntry, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	return ParsePgPassFile(filepath.Join(home, ".pgpass"))
}

// ParsePgPassFile reads and parses a .pgpass-format file at the given path
func ParsePgPassFile(path string) ([]PgPassEntry, error) {
	// Check file permissions on non-Windows systems
	if runtime.GOOS != "windows" {
		fileInfo, err := os.Stat(path)
		if err != nil {
			if os.IsNotExist(err) {
				return []PgPassEntry{}, nil
			}
			return nil, err
		}

		mode := fileInfo.Mode()
		if mode.Perm()&0077 != 0 {
			return nil, fmt.Errorf(".pgpass file has insecure permissions %v, must be 0600", mode.Perm())
		}
	}

	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return []PgPassEntry{}, nil
		}
		return nil, err
	}
	defer file.Close()

	var entries []PgPassEntry
	scanner := bufio.NewScanner(file)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		// Skip comments and empty lines
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		entry, err := parsePgPassLine(line)
		if err != nil {
			continue // Skip invalid lines
		}

		entries = append(entries, entry)
	}

	return entries, scanner.Err()
}

// parsePgPassLine parses a single .pgpass line
// Format: hostname:port:database:username:password
// Handles escape sequences: \: and \\
func parsePgPassLine(line string) (PgPassEntry, error) {
	parts := make([]string, 0, 5)
	var current strings.Builder
	escaped := false

	for i := 0; i < len(line); i++ {
		ch := line[i]

		if escaped {
			current.WriteByte(ch)
			escaped = false
		} else if ch == '\\' {
			escaped = true
		} else if ch == ':' {
			parts = append(parts, current.String())
			current.Reset()
		} else {
			current.WriteByte(ch)
		}
	}

	// Add the last field
	parts = append(parts, current.String())

	if len(parts) != 5 {
		return PgPassEntry{}, os.ErrInvalid
	}

	port := 5432
	if parts[1] != "*" {
		p, err := strconv.Atoi(parts[1])
		if err != nil {
			return PgPassEntry{}, fmt.Errorf("invalid port: %s", parts[1])
		}
		if p < 1 || p > 65535 {
			return PgPassEntry{}, fmt.Errorf("port out of range: %d", p)
		}
		port = p
	}

	return PgPassEntry{
		Host:     parts[0],
		Port:     port,
		Database: parts[2],
		User:     parts[3],
		Password: parts[4],
	}, nil
}

// FindPassword looks up a password for a connection in ~/.pgpass
func FindPassword(host string, port int, database, user string) string {
	entries, err := ParsePgPass()
	if err != nil {
		return ""
	}
	return findPassword(entries, host, port, database, user)
}

func findPassword(entries []PgPassEntry, host string, port int, database, user string) string {
	for _, entry := range entries {
		if matches(entry.Host, host) &&
			matches(strconv.Itoa(entry.Port), strconv.Itoa(port)) &&
			matches(entry.Database, database) &&
			matches(entry.User, user) {
			return entry.Password
		}
	}

	return ""
}

// matches checks if pattern matches value (* is wildcard)
func matches(pattern, value string) bool {
	return pattern == "*" || pattern == value
}
