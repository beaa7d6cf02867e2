package dp

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseDIMACS parses text in the DIMACS CNF format.
//
// A few relaxations of the strict format are accepted:
//
//   - Comment lines (beginning with 'c') may appear anywhere, not just
//     in the preamble.
//   - The problem line may be missing entirely.
//   - Clauses are delimited only by their terminating 0, so a clause
//     may span lines and several clauses may share a line.
//   - Input after a line holding a single % is ignored (some benchmark
//     suites attach a trailer there).
//
// When a problem line is present, no atom may exceed its variable
// count and the number of clauses must match exactly.
func ParseDIMACS(r io.Reader) ([][]int, error) {
	var (
		haveProblem bool
		numVars     int
		numClauses  int
		clauses     [][]int
		clause      []int
	)
	s := bufio.NewScanner(r)
	for s.Scan() {
		line := strings.TrimSpace(s.Text())
		if line == "" || line[0] == 'c' {
			continue
		}
		if line == "%" {
			break
		}
		if line[0] == 'p' {
			if haveProblem {
				return nil, errors.New("multiple problem lines")
			}
			if len(clauses) > 0 || len(clause) > 0 {
				return nil, errors.New("problem line appears after clauses")
			}
			var err error
			numVars, numClauses, err = parseProblemLine(line)
			if err != nil {
				return nil, err
			}
			haveProblem = true
			continue
		}
		for _, field := range strings.Fields(line) {
			n, err := strconv.Atoi(field)
			if err != nil {
				return nil, fmt.Errorf("invalid literal %q: %s", field, err)
			}
			if n == 0 {
				clauses = append(clauses, clause)
				clause = nil
				continue
			}
			clause = append(clause, n)
		}
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	if len(clause) > 0 {
		// Tolerate a missing final terminator.
		clauses = append(clauses, clause)
	}
	if haveProblem {
		if err := validateProblem(clauses, numVars, numClauses); err != nil {
			return nil, err
		}
	}
	return clauses, nil
}

func parseProblemLine(line string) (numVars, numClauses int, err error) {
	fields := strings.Fields(line)
	if len(fields) != 4 || fields[0] != "p" {
		return 0, 0, fmt.Errorf("malformed problem line %q", line)
	}
	if fields[1] != "cnf" {
		return 0, 0, fmt.Errorf("unsupported problem type %q (only cnf)", fields[1])
	}
	numVars, err = strconv.Atoi(fields[2])
	if err != nil || numVars < 0 {
		return 0, 0, fmt.Errorf("bad variable count in problem line %q", line)
	}
	numClauses, err = strconv.Atoi(fields[3])
	if err != nil || numClauses < 0 {
		return 0, 0, fmt.Errorf("bad clause count in problem line %q", line)
	}
	return numVars, numClauses, nil
}

func validateProblem(clauses [][]int, numVars, numClauses int) error {
	vars := make(map[int]struct{})
	for _, cls := range clauses {
		for _, v := range cls {
			if v < 0 {
				v = -v
			}
			if v > numVars {
				return fmt.Errorf("formula contains var %d but the problem line permits only vars in [1, %d]",
					v, numVars)
			}
			vars[v] = struct{}{}
		}
	}
	// Vars may be missing from the formula, but never in excess.
	if len(vars) > numVars {
		return fmt.Errorf("problem line specifies %d vars, but there are %d", numVars, len(vars))
	}
	if len(clauses) != numClauses {
		return fmt.Errorf("problem line specifies %d clauses, but there are %d", numClauses, len(clauses))
	}
	return nil
}

// WriteDIMACS writes problem in the DIMACS CNF format, deriving the
// problem line's variable count from the largest atom present.
func WriteDIMACS(w io.Writer, problem [][]int) error {
	bw := bufio.NewWriter(w)
	maxVar := 0
	for _, cls := range problem {
		for _, v := range cls {
			if v < 0 {
				v = -v
			}
			if v > maxVar {
				maxVar = v
			}
		}
	}
	fmt.Fprintf(bw, "p cnf %d %d\n", maxVar, len(problem))
	for _, cls := range problem {
		for _, v := range cls {
			fmt.Fprintf(bw, "%d ", v)
		}
		fmt.Fprintln(bw, "0")
	}
	return bw.Flush()
}
