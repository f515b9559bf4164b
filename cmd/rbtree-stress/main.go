package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/tinkernels/rbtree"
)

var log = rbtree.Log

var (
	treesFlag = flag.Int(
		"trees", 64, "number of independent trees to exercise",
	)
	opsFlag = flag.Int(
		"ops", 10000, "random insert/erase operations per tree",
	)
	keySpaceFlag = flag.Int(
		"keyspace", 1000, "keys are drawn from [0, keyspace); small values force duplicates",
	)
	workersFlag = flag.Int(
		"workers", 8, "size of the goroutine pool running the trees",
	)
	seedFlag = flag.Int64(
		"seed", 0, "random seed, 0 picks one from the clock",
	)
	maxNodesFlag = flag.Int(
		"max-nodes",
		0,
		`cap on live nodes per tree, 0 for none; inserts beyond the cap are
counted as rejected instead of failing the run`,
	)
	logLevelFlag = flag.String(
		"loglevel",
		"info",
		"Log level, one of: debug, info, warn, error, fatal, panic",
	)
)

func main() {
	flag.Usage = func() {
		_, exe := filepath.Split(os.Args[0])
		_, _ = fmt.Fprint(os.Stderr, "Checks red-black tree invariants under random workloads.\n\n")
		_, _ = fmt.Fprintf(os.Stderr, "Usage:\n\n  %s [options]\n\nOptions:\n\n", exe)
		flag.PrintDefaults()
	}
	flag.Parse()

	// set the loglevel
	level, err := logrus.ParseLevel(*logLevelFlag)
	if err != nil {
		log.Fatalf("invalid log level: %s", err.Error())
	}
	log.SetLevel(level)

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UTC().UnixNano()
	}
	cfg := Config{
		Trees:    *treesFlag,
		Ops:      *opsFlag,
		KeySpace: *keySpaceFlag,
		Workers:  *workersFlag,
		Seed:     seed,
		MaxNodes: *maxNodesFlag,
	}
	log.Infof("starting run %+v", cfg)

	start := time.Now()
	report, err := Run(cfg)
	if err != nil {
		log.Fatalf("run with seed %v failed: %v", seed, err)
	}
	log.Infof("%v inserts, %v erases, %v rejected, max height %v at max size %v in %v",
		report.Inserts, report.Erases, report.Rejected, report.MaxHeight, report.MaxLen, time.Since(start))
}
