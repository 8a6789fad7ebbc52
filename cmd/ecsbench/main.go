package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/pkg/profile"
	"github.com/sdg/ecscore/internal/config"
	"github.com/sdg/ecscore/internal/core/ecs"
	coresys "github.com/sdg/ecscore/internal/core/system"
	"github.com/sdg/ecscore/internal/data"
	"github.com/sdg/ecscore/internal/scripting"
	"github.com/sdg/ecscore/internal/system"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

// ── Display helpers ───────────────────────────────────────────────

func printBanner() {
	fmt.Println()
	fmt.Println("\033[36;1m  ┌───────────────────────────────────────────┐\033[0m")
	fmt.Println("\033[36;1m  │\033[0m           ecsbench  v0.1.0                \033[36;1m│\033[0m")
	fmt.Println("\033[36;1m  │\033[0m     entity storage frame benchmark        \033[36;1m│\033[0m")
	fmt.Println("\033[36;1m  └───────────────────────────────────────────┘\033[0m")
	fmt.Println()
}

func printSection(title string) {
	lineLen := 46 - len(title) - 1
	if lineLen < 3 {
		lineLen = 3
	}
	fmt.Printf("  \033[33m── %s %s\033[0m\n", title, strings.Repeat("─", lineLen))
}

func printStat(label string, value string) {
	dotsLen := 42 - len(label) - len(value)
	if dotsLen < 3 {
		dotsLen = 3
	}
	fmt.Printf("  %s \033[90m%s\033[0m \033[32m%s\033[0m\n", label, strings.Repeat("·", dotsLen), value)
}

func printOK(msg string) {
	fmt.Printf("  \033[32m✓\033[0m %s\n", msg)
}

// ── Benchmark ─────────────────────────────────────────────────────

func run() error {
	// 1. Load config
	cfgPath := "config/bench.toml"
	if p := os.Getenv("ECSBENCH_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// 2. Init logger
	log, err := newLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	printBanner()

	if mode := profileMode(cfg.Profile.Mode); mode != nil {
		p := profile.Start(mode, profile.ProfilePath(cfg.Profile.Path), profile.NoShutdownHook, profile.Quiet)
		defer p.Stop()
		log.Info("profiling enabled", zap.String("mode", cfg.Profile.Mode), zap.String("path", cfg.Profile.Path))
	}

	// 3. Build the context and spawn the workload
	printSection("Spawn")
	ctx := ecs.NewEntityContext(cfg.Context.InitialCapacity, ecs.WithLogger(log))

	workload := data.DefaultWorkload()
	if cfg.Bench.Workload != "" {
		if workload, err = data.LoadWorkload(cfg.Bench.Workload); err != nil {
			return fmt.Errorf("load workload: %w", err)
		}
	}

	start := time.Now()
	spawned, err := spawn(ctx, workload, cfg.Bench, log)
	if err != nil {
		return err
	}
	ctx.ApplyChanges()
	printStat("entities", fmt.Sprint(spawned))
	printStat("component types", fmt.Sprint(ctx.ComponentTypeCount()))
	printStat("slots", fmt.Sprint(ctx.Capacity()))
	printStat("spawn time", time.Since(start).Round(time.Microsecond).String())

	// 4. Register frame systems
	query := system.NewQuerySystem(ctx)
	group := system.NewGroupSystem(ctx)
	defer group.Close()
	churn := system.NewChurnSystem(ctx, workload, cfg.Bench.ChurnPerFrame, cfg.Bench.Seed, log)
	flush := system.NewFlushSystem(ctx)

	runner := coresys.NewRunner()
	runner.Register(query)
	runner.Register(group)
	runner.Register(churn)
	runner.Register(flush)
	printOK(fmt.Sprintf("%d systems registered, group holds %d", runner.Len(), group.Group().Len()))
	fmt.Println()

	// 5. Run frames
	printSection("Frames")
	start = time.Now()
	for frame := 0; frame < cfg.Bench.Frames; frame++ {
		runner.Tick(cfg.Bench.FrameTime)
	}
	elapsed := time.Since(start)

	printStat("frames", fmt.Sprint(cfg.Bench.Frames))
	printStat("alive", fmt.Sprint(ctx.AliveEntityCount()))
	printStat("total time", elapsed.Round(time.Microsecond).String())
	for _, s := range []*system.Stats{query.Stats(), group.Stats(), churn.Stats(), flush.Stats()} {
		printStat(s.Name+" avg", s.Average().String())
		log.Info("system summary", s.Fields()...)
	}
	fmt.Println()

	log.Info("benchmark finished",
		zap.Int("frames", cfg.Bench.Frames),
		zap.Int("alive", ctx.AliveEntityCount()),
		zap.Duration("elapsed", elapsed),
	)
	return nil
}

// spawn fills ctx from the Lua script when one is configured, otherwise from
// the workload.
func spawn(ctx *ecs.EntityContext, w *data.Workload, cfg config.BenchConfig, log *zap.Logger) (int, error) {
	if cfg.Script == "" {
		n, err := w.Spawn(ctx)
		if err != nil {
			return n, fmt.Errorf("spawn workload: %w", err)
		}
		return n, nil
	}

	engine := scripting.NewEngine(ctx, log)
	defer engine.Close()
	if err := engine.LoadFile(cfg.Script); err != nil {
		return 0, err
	}
	n, err := engine.Spawn("spawn", cfg.ScriptCount)
	if err != nil {
		return n, fmt.Errorf("spawn script: %w", err)
	}
	return n, nil
}

func profileMode(mode string) func(*profile.Profile) {
	switch mode {
	case "cpu":
		return profile.CPUProfile
	case "mem":
		return profile.MemProfile
	case "block":
		return profile.BlockProfile
	case "mutex":
		return profile.MutexProfile
	case "trace":
		return profile.TraceProfile
	case "goroutine":
		return profile.GoroutineProfile
	}
	return nil
}

func newLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
