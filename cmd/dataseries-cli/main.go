package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"os/signal"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/paveg/dataseries"
	"github.com/paveg/dataseries/internal/config"
	"github.com/paveg/dataseries/internal/monitoring"
	"github.com/paveg/dataseries/internal/version"
)

func customUsage() {
	fmt.Fprintf(os.Stderr, "dataseries CLI (version %s)\n\n", version.Version)
	fmt.Fprintf(os.Stderr, "Usage: dataseries-cli [options]\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	fmt.Fprintf(os.Stderr, "  --demo\n\t\tRun the reference demo\n")
	fmt.Fprintf(os.Stderr, "  --benchmark\n\t\tTime push, sort and remove on a large series\n")
	fmt.Fprintf(os.Stderr, "  --rows N\n\t\tNumber of entries for the benchmark (default: 1000000)\n")
	fmt.Fprintf(os.Stderr, "  --config PATH\n\t\tLoad configuration from a YAML or JSON file\n")
	fmt.Fprintf(os.Stderr, "  --metrics\n\t\tPrint an operation metrics summary on exit\n")
	fmt.Fprintf(os.Stderr, "  --serve ADDR\n\t\tAfter the run, serve metrics over HTTP on ADDR until interrupted\n")
	fmt.Fprintf(os.Stderr, "  -v, --version\n\t\tPrint version information and exit\n")
	fmt.Fprintf(os.Stderr, "  -h, --help\n\t\tShow this help message and exit\n")
}

func main() {
	versionFlag := flag.Bool("v", false, "Print version and exit")
	flag.BoolVar(versionFlag, "version", false, "Print version and exit") // alias
	demoFlag := flag.Bool("demo", false, "Run the reference demo")
	benchmarkFlag := flag.Bool("benchmark", false, "Time push, sort and remove on a large series")
	rowsFlag := flag.Int("rows", 0, "Number of entries for the benchmark")
	configFlag := flag.String("config", "", "Configuration file (YAML or JSON)")
	metricsFlag := flag.Bool("metrics", false, "Print an operation metrics summary on exit")
	serveFlag := flag.String("serve", "", "Serve metrics over HTTP on this address after the run")

	//nolint:reassign // Standard Go pattern for customizing flag usage message
	flag.Usage = customUsage

	flag.Parse()

	if *versionFlag {
		info := version.Info()
		fmt.Print(info.String())
		fmt.Print(info.DependencyVersions(
			"github.com/apache/arrow-go/v18",
			"github.com/kamstrup/intmap",
			"github.com/prometheus/client_golang",
		))
		return
	}

	cfg, err := loadConfig(*configFlag)
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}
	validated, warnings, err := config.NewConfigValidator().Validate(cfg)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	for _, w := range warnings {
		log.Printf("config: %s", w)
	}
	if *metricsFlag || *serveFlag != "" {
		validated.MetricsCollection = true
	}
	dataseries.SetGlobalConfig(validated)

	switch {
	case *demoFlag:
		runDemo()
	case *benchmarkFlag:
		runBenchmark(*rowsFlag)
	default:
		flag.Usage()
		os.Exit(1)
	}

	if validated.MetricsCollection {
		fmt.Println()
		fmt.Println(monitoring.GetGlobalSummary().String())
	}

	if *serveFlag != "" {
		serveMetrics(*serveFlag)
	}
}

// serveMetrics blocks until SIGINT, then shuts the metrics server down.
func serveMetrics(addr string) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	server := monitoring.NewMonitoringServer(monitoring.EnableGlobalMonitoring(), addr)
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second) //nolint:mnd // grace period
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Printf("Error shutting down metrics server: %v", err)
		}
	}()

	fmt.Printf("Serving metrics on %s (/metrics, /metrics/prometheus, /summary, /health); Ctrl-C to stop\n", server.Addr())
	if err := server.Start(); err != nil {
		log.Fatalf("Metrics server failed: %v", err)
	}
}

// loadConfig reads path if given, otherwise the DATASERIES_* environment.
func loadConfig(path string) (config.Config, error) {
	if path == "" {
		return config.LoadFromEnv(), nil
	}
	return config.LoadFromFile(path)
}

func runDemo() {
	fmt.Println("dataseries demo")
	fmt.Println("===============")

	s := dataseries.New[int](dataseries.WithName("demo"))
	s.Push(4, int32(1))
	s.Push(1, "test")
	s.Push(3, [2]float64{1.2, 3.4})
	s.Push(10, []int32{1, 3, 4, 5, 12, 30, 12})

	fmt.Println("\nAs pushed:")
	mustPrint(s.Print(os.Stdout))

	s.Sort()
	fmt.Println("\nSorted by label:")
	mustPrint(s.Print(os.Stdout))

	fmt.Println("\nReverse order:")
	mustPrint(s.PrintReverse(os.Stdout))

	if err := dataseries.Update(s, 2, int32(42)); err != nil {
		log.Printf("Error updating entry: %v", err)
		return
	}
	if err := dataseries.Update(s, 2, "oops"); err != nil {
		fmt.Printf("\nRejected update: %v\n", err)
	}

	removed, _ := s.Remove(0)
	text, _ := dataseries.As[string](removed)
	fmt.Printf("\nRemoved %q; %d entries left, next key %d\n", text, s.Len(), s.NextKey())
	fmt.Print(s.String())
}

func runBenchmark(rows int) {
	fmt.Println("dataseries benchmark")
	fmt.Println("====================")

	if rows == 0 {
		rows = 1_000_000
	}

	s := dataseries.New[int](dataseries.WithCapacity(rows))

	fmt.Printf("\nPushing %d mixed entries...\n", rows)
	start := time.Now()
	for i := range rows {
		label := rand.IntN(rows) //nolint:gosec // benchmark data only
		if i%2 == 0 {
			dataseries.Push(s, label, int64(i))
		} else {
			dataseries.Push(s, label, float64(i))
		}
	}
	fmt.Printf("Push Time: %s\n", time.Since(start))
	fmt.Printf("Estimated Size: %s\n", humanize.Bytes(uint64(s.MemoryUsage())))

	start = time.Now()
	s.Sort()
	fmt.Printf("Sort Time: %s\n", time.Since(start))

	start = time.Now()
	for s.Len() > rows/2 {
		s.Remove(s.Len() - 1)
	}
	fmt.Printf("Remove Time (%d entries): %s\n", rows-s.Len(), time.Since(start))

	if err := s.Check(); err != nil {
		log.Printf("Storage check failed: %v", err)
		os.Exit(1)
	}

	fmt.Println("\nBenchmark completed successfully!")
}

func mustPrint(err error) {
	if err != nil {
		log.Fatalf("Error printing series: %v", err)
	}
}
