package deployment

import (
	"fmt"
	"os"
	"slices"
	"strings"
)

const (
	DbService  = "db"
	ApiService = "api"
)

var (
	ApiRequiredVariables = []string{
		"WOPEN_EMAIL_DOMAIN",
		"WOPEN_DB_NAME",
		"WOPEN_DB_USER",
		"WOPEN_DB_PASSWORD",
		"WOPEN_DB_HOST",
		"WOPEN_DB_PORT",
		"WOPEN_SUPERUSER",
		"WOPEN_ENV",
	}
	DbRequiredVariables = []string{
		"MYSQL_ALLOW_EMPTY_PASSWORD",
		"MYSQL_DATABASE",
		"MYSQL_USER",
		"MYSQL_PASSWORD",
	}

	requiredPorts = map[string]string{
		DbService:  "3306",
		ApiService: "8000",
	}

	// variables allowed to be empty when the database accepts an empty password
	passwordVariables = []string{"MYSQL_PASSWORD", "WOPEN_DB_PASSWORD"}
)

type Violation struct {
	Service string
	Message string
}

func (v Violation) String() string {
	if v.Service == "" {
		return v.Message
	}
	return fmt.Sprintf("%s: %s", v.Service, v.Message)
}

type Violations []Violation

func (vs Violations) Error() string {
	lines := make([]string, len(vs))
	for i, v := range vs {
		lines[i] = v.String()
	}
	return strings.Join(lines, "\n")
}

// Validate checks the compose document against what the api and db containers need to
// start. Every violation is reported, not only the first one. env is the shell environment
// used to interpolate ${VAR} references.
func Validate(compose Compose, env map[string]string) Violations {
	var violations Violations
	add := func(service, format string, args ...any) {
		violations = append(violations, Violation{Service: service, Message: fmt.Sprintf(format, args...)})
	}

	names := make([]string, 0, len(compose.Services))
	for name := range compose.Services {
		names = append(names, name)
	}
	slices.Sort(names)
	if !slices.Equal(names, []string{ApiService, DbService}) {
		add("", "expected exactly the services %q and %q, found %q", DbService, ApiService, names)
	}

	for _, name := range names {
		service := compose.Services[name]
		if service.Image == "" && !service.HasBuild() {
			add(name, "declares neither image nor build")
		}
	}

	api, hasApi := compose.Services[ApiService]
	db, hasDb := compose.Services[DbService]

	if hasApi && !slices.Contains(api.DependsOn, DbService) {
		add(ApiService, "depends_on must contain %q", DbService)
	}

	allowEmptyPassword := false
	if hasDb {
		if raw, ok := db.Environment["MYSQL_ALLOW_EMPTY_PASSWORD"]; ok {
			allowEmptyPassword = isTruthy(resolve("MYSQL_ALLOW_EMPTY_PASSWORD", raw, env))
		}
		violations = append(violations, checkVariables(DbService, db, DbRequiredVariables, env, allowEmptyPassword)...)
	}
	if hasApi {
		violations = append(violations, checkVariables(ApiService, api, ApiRequiredVariables, env, allowEmptyPassword)...)
	}

	hostPorts := make(map[string]string)
	for _, name := range names {
		published := make(map[string]string)
		for _, port := range compose.Services[name].Ports {
			mapping, err := resolvePort(port, env)
			if err != nil {
				add(name, "%s", err.Error())
				continue
			}
			if mapping.HostPort == "" {
				continue
			}
			published[mapping.HostPort] = mapping.ContainerPort
			key := mapping.HostPort + "/" + protocolOrTcp(mapping.Protocol)
			if owner, taken := hostPorts[key]; taken {
				add(name, "host port %s is already published by %s", mapping.HostPort, owner)
				continue
			}
			hostPorts[key] = name
		}

		if want, ok := requiredPorts[name]; ok && published[want] != want {
			add(name, "must publish %s:%s", want, want)
		}
	}

	return violations
}

func checkVariables(name string, service Service, required []string, env map[string]string, allowEmptyPassword bool) Violations {
	var violations Violations
	for _, variable := range required {
		raw, declared := service.Environment[variable]
		if !declared {
			violations = append(violations, Violation{Service: name, Message: fmt.Sprintf("%s is not declared", variable)})
			continue
		}
		if resolve(variable, raw, env) != "" {
			continue
		}
		if allowEmptyPassword && slices.Contains(passwordVariables, variable) {
			continue
		}
		violations = append(violations, Violation{Service: name, Message: fmt.Sprintf("%s is empty", variable)})
	}
	return violations
}

// resolve gives the value the container will see: declared values are interpolated, and a
// variable declared without a value is passed through from the shell.
func resolve(name string, raw *string, env map[string]string) string {
	if raw == nil {
		return env[name]
	}
	return Interpolate(*raw, env)
}

func resolvePort(port PortMapping, env map[string]string) (PortMapping, error) {
	if port.ContainerPort == "" {
		return parseShortPort(Interpolate(port.Raw, env))
	}
	// long syntax
	port.HostIp = Interpolate(port.HostIp, env)
	port.HostPort = Interpolate(port.HostPort, env)
	port.ContainerPort = Interpolate(port.ContainerPort, env)
	port.Raw = port.String()
	return port, port.check()
}

func protocolOrTcp(protocol string) string {
	if protocol == "" {
		return "tcp"
	}
	return strings.ToLower(protocol)
}

func isTruthy(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "0", "false", "no", "off":
		return false
	}
	return true
}

// Interpolate substitutes $VAR and ${VAR} with the compose modifiers ":-", "-", ":+", "+",
// ":?" and "?". "$$" is a literal dollar sign. A required variable that is missing expands
// to the empty string, which the checks then report.
func Interpolate(value string, env map[string]string) string {
	return os.Expand(value, func(expr string) string {
		if expr == "$" {
			return "$"
		}
		return expand(expr, env)
	})
}

func expand(expr string, env map[string]string) string {
	end := 0
	for end < len(expr) && isNameChar(expr[end]) {
		end++
	}
	name, modifier := expr[:end], expr[end:]
	value, set := env[name]

	switch {
	case strings.HasPrefix(modifier, ":-"):
		if value == "" {
			return modifier[2:]
		}
	case strings.HasPrefix(modifier, "-"):
		if !set {
			return modifier[1:]
		}
	case strings.HasPrefix(modifier, ":+"):
		if value == "" {
			return ""
		}
		return modifier[2:]
	case strings.HasPrefix(modifier, "+"):
		if !set {
			return ""
		}
		return modifier[1:]
	}
	// ":?" and "?" only differ by failing when the variable is missing
	return value
}

func isNameChar(c byte) bool {
	return c == '_' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}

// EnvironMap turns os.Environ() style entries into a map.
func EnvironMap(environ []string) map[string]string {
	env := make(map[string]string, len(environ))
	for _, entry := range environ {
		if name, value, found := strings.Cut(entry, "="); found {
			env[name] = value
		}
	}
	return env
}
