package ioformat

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/katalvlaran/bisbm/apperr"
	"github.com/katalvlaran/bisbm/bigraph"
)

var delimiterFallback = regexp.MustCompile(`[\t, ]+`)

// ReadEdgeList parses a 0-based "<u><delim><v>" edge-list stream (§6). Each
// line is split by delimiterFallback on any run of tabs, commas and spaces,
// so lines may use different delimiters and each is split in one pass.
func ReadEdgeList(r io.Reader) ([]bigraph.RawEdge, error) {
	scanner := bufio.NewScanner(r)
	var edges []bigraph.RawEdge
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := delimiterFallback.Split(line, -1)
		if len(fields) != 2 {
			return nil, apperr.New(apperr.CodeInvalidInput, fmt.Sprintf("malformed edge line %q", line))
		}
		u, err := strconv.ParseUint(fields[0], 10, 32)
		if err != nil {
			return nil, apperr.Wrap(apperr.CodeInvalidInput, "non-integer node index", err)
		}
		v, err := strconv.ParseUint(fields[1], 10, 32)
		if err != nil {
			return nil, apperr.Wrap(apperr.CodeInvalidInput, "non-integer node index", err)
		}
		edges = append(edges, bigraph.RawEdge{U: uint32(u), V: uint32(v)})
	}
	if err := scanner.Err(); err != nil {
		return nil, apperr.Wrap(apperr.CodeResource, "reading edge list", err)
	}
	return edges, nil
}

// WriteEdgeList writes el in the tab-delimited 0-based format.
func WriteEdgeList(w io.Writer, el *bigraph.EdgeList) error {
	bw := bufio.NewWriter(w)
	for i := 0; i < el.Len(); i++ {
		if _, err := fmt.Fprintf(bw, "%d\t%d\n", el.GlobalU(i), el.GlobalV(i)); err != nil {
			return apperr.Wrap(apperr.CodeResource, "writing edge list", err)
		}
	}
	return bw.Flush()
}

// WriteEdgeList1Indexed writes el with every index offset by +1, the
// convention the KL-style external engine expects on its temp input (§6:
// "1-based in the temp file handed to the KL-style engine").
func WriteEdgeList1Indexed(w io.Writer, el *bigraph.EdgeList) error {
	bw := bufio.NewWriter(w)
	for i := 0; i < el.Len(); i++ {
		if _, err := fmt.Fprintf(bw, "%d\t%d\n", el.GlobalU(i)+1, el.GlobalV(i)+1); err != nil {
			return apperr.Wrap(apperr.CodeResource, "writing 1-indexed edge list", err)
		}
	}
	return bw.Flush()
}
