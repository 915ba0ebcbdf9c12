package db

import (
	"net/url"
	"regexp"
	"strings"
)

var kvPairRegex = regexp.MustCompile(`(?i)\b(host|user|password|dbname|port|sslmode)=`)
var passwordRegex = regexp.MustCompile(`(password=)([^\s]+)`)

// NormalizeDSN accepts either a URL style DSN (postgres://...) or a lib/pq
// key=value list. It trims quotes and whitespace and, if given key=value form,
// returns it cleaned with sslmode defaulted to disable when absent.
func NormalizeDSN(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.Trim(s, "\"'")
	if s == "" {
		return s
	}
	lower := strings.ToLower(s)
	if strings.HasPrefix(lower, "postgres://") || strings.HasPrefix(lower, "postgresql://") {
		return s
	}
	// If it does not look like key=value pairs, return unchanged (driver will error)
	if !kvPairRegex.MatchString(s) {
		return s
	}
	fields := strings.Fields(s)
	cleaned := strings.Join(fields, " ")
	if !strings.Contains(strings.ToLower(cleaned), "sslmode=") {
		cleaned += " sslmode=disable"
	}
	return cleaned
}

// MaskDSN hides the password part of a DSN for log output.
func MaskDSN(dsn string) string {
	if strings.Contains(dsn, "password=") {
		return passwordRegex.ReplaceAllString(dsn, `${1}***`)
	}
	if u, err := url.Parse(dsn); err == nil && u.User != nil {
		if _, has := u.User.Password(); has {
			u.User = url.UserPassword(u.User.Username(), "***")
			return u.String()
		}
	}
	return dsn
}

// ConnInfo is the connection broken into the parts external tools (pg_dump) need.
type ConnInfo struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

// ParseDSN extracts connection components from either DSN form, filling in the
// usual local-postgres defaults for anything missing.
func ParseDSN(raw string) ConnInfo {
	info := ConnInfo{Host: "localhost", Port: "5432", User: "postgres"}
	s := NormalizeDSN(raw)
	if s == "" {
		return info
	}
	lower := strings.ToLower(s)
	if strings.HasPrefix(lower, "postgres://") || strings.HasPrefix(lower, "postgresql://") {
		u, err := url.Parse(s)
		if err != nil {
			return info
		}
		if h := u.Hostname(); h != "" {
			info.Host = h
		}
		if p := u.Port(); p != "" {
			info.Port = p
		}
		if u.User != nil {
			if name := u.User.Username(); name != "" {
				info.User = name
			}
			if pass, ok := u.User.Password(); ok {
				info.Password = pass
			}
		}
		info.DBName = strings.TrimPrefix(u.Path, "/")
		return info
	}
	for _, part := range strings.Fields(s) {
		kv := strings.SplitN(part, "=", 2)
		if len(kv) != 2 {
			continue
		}
		switch strings.ToLower(kv[0]) {
		case "host":
			info.Host = kv[1]
		case "port":
			info.Port = kv[1]
		case "user":
			info.User = kv[1]
		case "password":
			info.Password = kv[1]
		case "dbname":
			info.DBName = kv[1]
		}
	}
	return info
}
