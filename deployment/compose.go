package deployment

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// Compose is the subset of a docker-compose document the deployment checks look at.
type Compose struct {
	Version  string             `yaml:"version"`
	Services map[string]Service `yaml:"services"`
}

type Service struct {
	Image       string        `yaml:"image"`
	Build       yaml.Node     `yaml:"build"`
	Command     yaml.Node     `yaml:"command"`
	Ports       []PortMapping `yaml:"ports"`
	DependsOn   DependsOn     `yaml:"depends_on"`
	Environment Environment   `yaml:"environment"`
}

func (s Service) HasBuild() bool {
	return !s.Build.IsZero()
}

// DependsOn accepts both the list form and the map form keyed by service name.
type DependsOn []string

func (d *DependsOn) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.SequenceNode:
		var names []string
		if err := value.Decode(&names); err != nil {
			return err
		}
		*d = names
	case yaml.MappingNode:
		names := make([]string, 0, len(value.Content)/2)
		for i := 0; i < len(value.Content); i += 2 {
			names = append(names, value.Content[i].Value)
		}
		*d = names
	default:
		return errors.Newf("line %d: depends_on must be a list or a map", value.Line)
	}
	return nil
}

// Environment maps variable names to their raw, uninterpolated value. A nil value is a
// variable declared without a value, which compose takes from the shell.
type Environment map[string]*string

func (e *Environment) UnmarshalYAML(value *yaml.Node) error {
	env := make(Environment)
	switch value.Kind {
	case yaml.SequenceNode:
		for _, item := range value.Content {
			name, val, found := strings.Cut(item.Value, "=")
			if !found {
				env[name] = nil
				continue
			}
			env[name] = &val
		}
	case yaml.MappingNode:
		// decoding through yaml.v3 resolves "<<" merge keys
		var values map[string]*string
		if err := value.Decode(&values); err != nil {
			return err
		}
		for name, val := range values {
			env[name] = val
		}
	default:
		return errors.Newf("line %d: environment must be a list or a map", value.Line)
	}
	*e = env
	return nil
}

// PortMapping is one published port. HostPort is empty when only the container port is
// exposed.
type PortMapping struct {
	Raw           string
	HostIp        string
	HostPort      string
	ContainerPort string
	Protocol      string
}

func (p PortMapping) String() string {
	if p.HostPort == "" {
		return p.ContainerPort
	}
	return p.HostPort + ":" + p.ContainerPort
}

func (p *PortMapping) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		p.Raw = value.Value
		return nil
	case yaml.MappingNode:
		var long struct {
			Target    any    `yaml:"target"`
			Published any    `yaml:"published"`
			HostIp    string `yaml:"host_ip"`
			Protocol  string `yaml:"protocol"`
		}
		if err := value.Decode(&long); err != nil {
			return err
		}
		p.ContainerPort = scalarString(long.Target)
		p.HostPort = scalarString(long.Published)
		p.HostIp = long.HostIp
		p.Protocol = long.Protocol
		p.Raw = p.String()
		return nil
	}
	return errors.Newf("line %d: invalid port mapping", value.Line)
}

func scalarString(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case int:
		return strconv.Itoa(v)
	case string:
		return v
	}
	return fmt.Sprint(v)
}

// parseShortPort splits "[ip:][host:]container[/proto]".
func parseShortPort(raw string) (PortMapping, error) {
	p := PortMapping{Raw: raw}
	mapping, proto, _ := strings.Cut(raw, "/")
	p.Protocol = proto

	parts := strings.Split(mapping, ":")
	switch len(parts) {
	case 1:
		p.ContainerPort = parts[0]
	case 2:
		p.HostPort, p.ContainerPort = parts[0], parts[1]
	case 3:
		p.HostIp, p.HostPort, p.ContainerPort = parts[0], parts[1], parts[2]
	default:
		return p, errors.Newf("invalid port mapping %q", raw)
	}
	return p, p.check()
}

func (p PortMapping) check() error {
	for _, port := range []string{p.HostPort, p.ContainerPort} {
		if port == "" {
			continue
		}
		if _, err := strconv.ParseUint(port, 10, 16); err != nil {
			return errors.Newf("invalid port %q in %q", port, p.Raw)
		}
	}
	if p.ContainerPort == "" {
		return errors.Newf("missing container port in %q", p.Raw)
	}
	return nil
}

func ParseCompose(data []byte) (Compose, error) {
	var compose Compose
	if err := yaml.Unmarshal(data, &compose); err != nil {
		return Compose{}, errors.Wrap(err, "invalid compose document")
	}
	if len(compose.Services) == 0 {
		return Compose{}, errors.New("compose document declares no services")
	}
	return compose, nil
}
