// internal/config/database.go
package config

import (
	"fmt"
	"strings"
)

const applicationName = "variant-catalog"

// DSN renders the libpq keyword/value connection string used by the pgx
// driver. Values containing spaces or quotes are single-quoted.
func (d *DatabaseConfig) DSN() string {
	pairs := []struct{ key, value string }{
		{"host", d.Host},
		{"port", d.Port},
		{"user", d.User},
		{"password", d.Password},
		{"dbname", d.Database},
		{"sslmode", d.SSLMode},
		{"application_name", applicationName},
	}

	parts := make([]string, 0, len(pairs))
	for _, p := range pairs {
		if p.value == "" {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s=%s", p.key, quoteDSNValue(p.value)))
	}
	return strings.Join(parts, " ")
}

func quoteDSNValue(value string) string {
	if !strings.ContainsAny(value, ` '\`) {
		return value
	}
	escaped := strings.NewReplacer(`\`, `\\`, `'`, `\'`).Replace(value)
	return "'" + escaped + "'"
}
