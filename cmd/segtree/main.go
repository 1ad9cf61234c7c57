package main

import (
	"fmt"
	"math/rand"
	"net/http"
	_ "net/http/pprof"
	"os"
	"time"

	"github.com/op/go-logging"
	"github.com/spf13/cobra"

	"gitlab.x.lan/yunshan/algorithm-libs/config"
	"gitlab.x.lan/yunshan/algorithm-libs/logger"
	"gitlab.x.lan/yunshan/algorithm-libs/report"
	"gitlab.x.lan/yunshan/algorithm-libs/segmenttree"
	"gitlab.x.lan/yunshan/algorithm-libs/stats"
)

var log = logging.MustGetLogger("segtree")

func setup(configPath string) config.Config {
	cfg := config.Load(configPath)
	logger.InitLog(cfg.LogFile, cfg.LogLevel)
	if cfg.StatsdServer != "" {
		if err := stats.SetRemote(cfg.StatsdServer); err != nil {
			log.Warning("statsd server unavailable:", err)
		}
	}
	if cfg.Profiler {
		go func() {
			if err := http.ListenAndServe("localhost:8008", nil); err != nil {
				log.Error(err)
			}
		}()
	}
	return cfg
}

func runDemo(configPath string) {
	cfg := setup(configPath)
	tree, err := segmenttree.New(cfg.SegmentTree.InitialValues)
	if err != nil {
		log.Error(err)
		os.Exit(1)
	}

	for _, update := range cfg.SegmentTree.Updates {
		version, err := tree.Update(update.Version, update.Index, update.Value)
		if err != nil {
			log.Error(err)
			os.Exit(1)
		}
		fmt.Println(report.FormatUpdate(update.Version, update.Index, update.Value, version))
	}

	hi := tree.Size() - 1
	for version := 0; version < tree.VersionCount(); version++ {
		sum, _ := tree.QuerySum(version, 0, hi)
		min, _ := tree.QueryMin(version, 0, hi)
		max, _ := tree.QueryMax(version, 0, hi)
		fmt.Println(report.FormatQuery("sum", version, 0, hi, sum))
		fmt.Println(report.FormatQuery("min", version, 0, hi, min))
		fmt.Println(report.FormatQuery("max", version, 0, hi, max))
		line, _ := report.FormatVersion(tree, version)
		fmt.Println(line)
	}

	if latest := tree.VersionCount() - 1; latest > 0 {
		modified, _ := tree.Modified(0, latest)
		fmt.Printf("modified since v0: %v\n", modified.ToNums())
	}
	fmt.Println(report.FormatSummary(tree))
}

func runBench(size, rounds int) {
	logger.InitConsoleLog("info")
	benchLog, err := logger.GetPrefixLogger("segtree", "[bench]")
	if err != nil {
		log.Error(err)
		os.Exit(1)
	}

	random := rand.New(rand.NewSource(time.Now().UnixNano()))
	values := make([]int64, size)
	for i := range values {
		values[i] = random.Int63n(1 << 20)
	}
	tree, err := segmenttree.New(values)
	if err != nil {
		log.Error(err)
		os.Exit(1)
	}

	start := time.Now()
	version := 0
	for i := 0; i < rounds; i++ {
		version, _ = tree.Update(version, random.Intn(size), random.Int63n(1<<20))
	}
	updateCost := time.Since(start)

	start = time.Now()
	for i := 0; i < rounds; i++ {
		lo := random.Intn(size)
		hi := lo + random.Intn(size-lo)
		tree.QuerySum(random.Intn(tree.VersionCount()), lo, hi)
	}
	queryCost := time.Since(start)

	benchLog.Infof("size=%d rounds=%d", size, rounds)
	benchLog.Infof("update: %v/op, query: %v/op",
		updateCost/time.Duration(rounds), queryCost/time.Duration(rounds))
	benchLog.Infof("%s", report.FormatSummary(tree))
}

func main() {
	var configPath string
	var size, rounds int

	root := &cobra.Command{
		Use:   "segtree",
		Short: "Persistent Segment Tree Tool",
	}
	root.PersistentFlags().StringVarP(&configPath, "config-file", "f", "/etc/segtree.yaml", "Specify config file location")

	demo := &cobra.Command{
		Use:   "demo",
		Short: "Run the configured update/query scenario",
		Run: func(cmd *cobra.Command, args []string) {
			runDemo(configPath)
		},
	}

	bench := &cobra.Command{
		Use:   "bench",
		Short: "Measure update/query throughput",
		Run: func(cmd *cobra.Command, args []string) {
			runBench(size, rounds)
		},
	}
	bench.Flags().IntVarP(&size, "size", "s", 1<<16, "Array size")
	bench.Flags().IntVarP(&rounds, "rounds", "n", 1<<16, "Number of updates and queries")

	root.AddCommand(demo, bench)
	root.SetArgs(os.Args[1:])
	root.Execute()
}
