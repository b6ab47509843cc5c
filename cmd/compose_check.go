package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/cockroachdb/errors"

	"github.com/srct/whats-open/deployment"
)

// RunComposeCheck validates a docker-compose file against the current environment and
// prints one line per violation.
func RunComposeCheck(path string, out io.Writer, environ []string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "could not read %s", path)
	}
	compose, err := deployment.ParseCompose(data)
	if err != nil {
		return err
	}

	violations := deployment.Validate(compose, deployment.EnvironMap(environ))
	for _, v := range violations {
		fmt.Fprintln(out, v.String())
	}
	if len(violations) > 0 {
		return errors.Newf("%s: %d violation(s)", path, len(violations))
	}
	fmt.Fprintf(out, "%s is valid\n", path)
	return nil
}
