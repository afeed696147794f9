package engine

import (
	"bufio"
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"github.com/katalvlaran/bisbm/apperr"
	"github.com/katalvlaran/bisbm/ioformat"
)

// Exec adapts an external KL/MCMC-style partitioning binary to the Engine
// contract (§4.5, §6), grounded on original_source/engines/kl.py's
// prepare_engine/engine() pair: it serializes the edge list and types to a
// scoped temp directory, builds the engine's CLI flags, runs it, and parses
// its stdout as one block label per line.
type Exec struct {
	// BinaryPath is the external engine executable.
	BinaryPath string
}

// coolingFlag renders a Cooling schedule as the adapter's CLI flags.
func coolingFlag(c Cooling) []string {
	names := map[CoolingKind]string{
		Exponential: "exponential",
		Logarithmic: "logarithmic",
		Linear:      "linear",
		Constant:    "constant",
		AbruptCool:  "abrupt_cool",
	}
	flags := []string{"--cooling", names[c.Kind], "--cooling-p1", strconv.FormatFloat(c.P1, 'g', -1, 64)}
	if c.Kind == Linear || c.Kind == AbruptCool {
		flags = append(flags, "--cooling-p2", strconv.FormatFloat(c.P2, 'g', -1, 64))
	}
	return flags
}

// buildArgs renders one engine invocation's CLI contract (§6): edge path,
// types path, (K_a, K_b), sweep count, epsilon, cooling, and either -g
// (random init) or --mb <labels...> (warm start).
func buildArgs(wd *ioformat.WorkDir, req Request) []string {
	args := []string{
		wd.EdgePath,
		wd.TypesPath,
		strconv.Itoa(req.Ka),
		strconv.Itoa(req.Kb),
		"--sweeps", strconv.Itoa(req.Config.NSweeps),
		"--epsilon", strconv.FormatFloat(req.Config.Epsilon, 'g', -1, 64),
	}
	args = append(args, coolingFlag(req.Config.Cooling)...)
	if req.Method == Natural {
		args = append(args, "--natural")
	}
	if req.WarmMb != nil {
		mbArgs := make([]string, len(req.WarmMb))
		for i, b := range req.WarmMb {
			mbArgs[i] = strconv.FormatUint(uint64(b), 10)
		}
		args = append(args, "--mb")
		args = append(args, mbArgs...)
	} else {
		args = append(args, "-g")
	}
	return args
}

// Run implements Engine by shelling out to BinaryPath.
func (e *Exec) Run(ctx context.Context, req Request) (Result, error) {
	wd, err := ioformat.NewWorkDir(req.EdgeList)
	if err != nil {
		return Result{}, err
	}
	defer wd.Close()

	args := buildArgs(wd, req)
	cmd := exec.CommandContext(ctx, e.BinaryPath, args...)
	out, err := cmd.Output()
	if err != nil {
		return Result{}, apperr.Wrap(apperr.CodeEngineFailure,
			fmt.Sprintf("engine exited nonzero: %s %s", e.BinaryPath, strings.Join(args, " ")), err).
			WithBlocks(req.Ka, req.Kb)
	}

	partition, ka, kb, err := parseOutput(out, req)
	if err != nil {
		return Result{}, err
	}
	return Result{Partition: partition, Ka: ka, Kb: kb}, nil
}

// parseOutput reads one block label per line. Under Natural the first line
// is "<ka> <kb>" followed by N label lines; under Standard it is exactly N
// label lines.
func parseOutput(out []byte, req Request) (partition []uint32, ka, kb int, err error) {
	scanner := bufio.NewScanner(strings.NewReader(string(out)))
	ka, kb = req.Ka, req.Kb

	n := req.EdgeList.N()
	if req.Method == Natural {
		if !scanner.Scan() {
			return nil, 0, 0, apperr.New(apperr.CodeEngineFailure, "empty engine output under natural method")
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) != 2 {
			return nil, 0, 0, apperr.New(apperr.CodeEngineFailure, "malformed (Ka,Kb) header line")
		}
		ka, err = strconv.Atoi(fields[0])
		if err != nil {
			return nil, 0, 0, apperr.Wrap(apperr.CodeEngineFailure, "parsing Ka header", err)
		}
		kb, err = strconv.Atoi(fields[1])
		if err != nil {
			return nil, 0, 0, apperr.Wrap(apperr.CodeEngineFailure, "parsing Kb header", err)
		}
	}

	partition = make([]uint32, 0, n)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		v, perr := strconv.ParseUint(line, 10, 32)
		if perr != nil {
			return nil, 0, 0, apperr.Wrap(apperr.CodeEngineFailure, "parsing partition label", perr)
		}
		partition = append(partition, uint32(v))
	}
	if len(partition) != n {
		return nil, 0, 0, apperr.New(apperr.CodeEngineFailure,
			fmt.Sprintf("engine returned %d labels, want %d", len(partition), n))
	}
	return partition, ka, kb, nil
}
