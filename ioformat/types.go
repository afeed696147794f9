package ioformat

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/bisbm/apperr"
	"github.com/katalvlaran/bisbm/bigraph"
)

// WriteTypes writes the one-type-per-line file (§6): na lines of "1"
// followed by nb lines of "2".
func WriteTypes(w io.Writer, na, nb int) error {
	bw := bufio.NewWriter(w)
	for i := 0; i < na; i++ {
		if _, err := fmt.Fprintln(bw, int(bigraph.SideA)); err != nil {
			return apperr.Wrap(apperr.CodeResource, "writing types file", err)
		}
	}
	for i := 0; i < nb; i++ {
		if _, err := fmt.Fprintln(bw, int(bigraph.SideB)); err != nil {
			return apperr.Wrap(apperr.CodeResource, "writing types file", err)
		}
	}
	return bw.Flush()
}

// ReadTypes parses a types file into a Side slice.
func ReadTypes(r io.Reader) ([]bigraph.Side, error) {
	scanner := bufio.NewScanner(r)
	var types []bigraph.Side
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		v, err := strconv.Atoi(line)
		if err != nil {
			return nil, apperr.Wrap(apperr.CodeInvalidInput, "non-integer type", err)
		}
		switch v {
		case int(bigraph.SideA):
			types = append(types, bigraph.SideA)
		case int(bigraph.SideB):
			types = append(types, bigraph.SideB)
		default:
			return nil, apperr.New(apperr.CodeInvalidInput, fmt.Sprintf("type %d not in {1,2}", v))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, apperr.Wrap(apperr.CodeResource, "reading types file", err)
	}
	return types, nil
}
