package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"strconv"
	"strings"
	"time"

	"github.com/rhartert/dpll/parsers"
	"github.com/rhartert/dpll/sat"
	"github.com/samber/lo"
)

var flagCPUProfile = flag.Bool(
	"cpuprof",
	false,
	"save pprof CPU profile in cpuprof",
)

var flagMemProfile = flag.Bool(
	"memprof",
	false,
	"save pprof memory profile in memprof",
)

var flagMaxDecisions = flag.Int64(
	"max_decisions",
	-1,
	"maximum number of branching decisions allowed to solve the problem (-1 = no maximum)",
)

var flagTimeout = flag.Duration(
	"timeout",
	-1,
	"maximum time allowed to solve the problem (-1 = no maximum)",
)

func parseConfig() (*config, error) {
	flag.Parse()

	if flag.NArg() == 0 || flag.Arg(0) == "" {
		return nil, fmt.Errorf("missing instance file")
	}
	return &config{
		instanceFile: flag.Arg(0),
		memProfile:   *flagMemProfile,
		cpuProfile:   *flagCPUProfile,
		maxDecisions: *flagMaxDecisions,
		timeout:      *flagTimeout,
	}, nil
}

type config struct {
	instanceFile string
	memProfile   bool
	cpuProfile   bool
	maxDecisions int64
	timeout      time.Duration
}

func solverOptions(cfg *config) sat.Options {
	options := sat.DefaultOptions
	options.Verbose = true
	if cfg.maxDecisions >= 0 {
		options.MaxDecisions = cfg.maxDecisions
	}
	if cfg.timeout >= 0 {
		options.Timeout = cfg.timeout
	}
	return options
}

// printStatus prints the solver's verdict following the DIMACS output
// convention: an "s" line with the verdict and, if a model was found, a "v"
// line with the value of each variable.
func printStatus(s *sat.Solver, status sat.LBool) {
	switch status {
	case sat.True:
		fmt.Println("s SATISFIABLE")
		lits := lo.Map(s.Model(), func(b bool, i int) string {
			if b {
				return strconv.Itoa(i + 1)
			}
			return strconv.Itoa(-(i + 1))
		})
		fmt.Printf("v %s 0\n", strings.Join(lits, " "))
	case sat.False:
		fmt.Println("s UNSATISFIABLE")
	default:
		fmt.Println("s UNKNOWN")
	}
}

func run(cfg *config) error {
	s := sat.NewSolver(solverOptions(cfg))

	gzipped := strings.HasSuffix(cfg.instanceFile, ".gz")
	if err := parsers.LoadDIMACS(cfg.instanceFile, gzipped, s); err != nil {
		return fmt.Errorf("could not parse instance: %s", err)
	}

	fmt.Printf("c variables:  %d\n", s.NumVariables())
	fmt.Printf("c clauses:    %d\n", s.NumConstraints())

	t := time.Now()
	status := s.Solve()
	elapsed := time.Since(t)

	fmt.Printf("c time (sec): %f\n", elapsed.Seconds())
	fmt.Printf("c decisions:  %d (%.2f /sec)\n", s.TotalDecisions, float64(s.TotalDecisions)/elapsed.Seconds())

	printStatus(s, status)
	return nil
}

func main() {
	cfg, err := parseConfig()
	if err != nil {
		log.Fatal(err)
	}

	if cfg.cpuProfile {
		f, err := os.Create("cpuprof")
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	if err := run(cfg); err != nil {
		log.Fatal(err)
	}

	if cfg.memProfile {
		f, err := os.Create("memprof")
		if err != nil {
			log.Fatal(err)
		}
		pprof.WriteHeapProfile(f)
		f.Close()
		return
	}
}
