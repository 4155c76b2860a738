package source

import (
	"os"
	"strings"

	"github.com/pkg/errors"
)

// ReadFiles concatenates every path's contents in argument order,
// separated by a blank line, matching the specification's "one or more
// source files concatenated in argument order" input contract.
func ReadFiles(paths []string) (string, error) {
	var sb strings.Builder
	for i, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			return "", errors.Wrapf(err, "reading %s", p)
		}
		if i > 0 {
			sb.WriteString("\n\n")
		}
		sb.Write(data)
	}
	return sb.String(), nil
}
