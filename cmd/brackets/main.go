package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/ozzus/brackets/internal/application/service"
	"github.com/ozzus/brackets/internal/config"
	"github.com/ozzus/brackets/internal/domain/models"
	"github.com/ozzus/brackets/internal/infrastructures/brackets"
	"github.com/ozzus/brackets/internal/infrastructures/brackets/http/client"
	"github.com/ozzus/brackets/internal/render"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const usage = `usage: brackets <command> [flags] [args]

commands:
  tournaments [-gender male|female]
  standings <tournament-id>
  games <tournament-id> [-filter all|upcoming|completed]
  leaders <tournament-id>
  game <tournament-id> <game-id>
  player <player-season-id>
  team <team-season-id>
`

var errUsage = errors.New("invalid usage")

func main() {
	_ = godotenv.Load(".env")

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log := setupLogger(cfg.Log.Level)
	defer func() {
		_ = log.Sync()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	httpClient := client.NewHTTPClient(cfg.API.RequestTimeout, cfg.API.ResourceTimeout)
	stats := service.NewStatsService(log, brackets.NewSource(client.NewClient(log, cfg.API, httpClient)))

	if err := run(ctx, stats, os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprint(os.Stderr, usage)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "config/local.yaml"
	}
	if _, err := os.Stat(path); err == nil {
		return config.MustLoadByPath(path), nil
	}
	return config.LoadEnv()
}

func run(ctx context.Context, stats *service.StatsService, args []string, out io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}
	r := render.New(out)
	cmd, rest := args[0], args[1:]

	switch cmd {
	case "tournaments":
		fs := flag.NewFlagSet(cmd, flag.ContinueOnError)
		genderFlag := fs.String("gender", "", "male or female")
		if err := fs.Parse(rest); err != nil {
			return fmt.Errorf("%w: %v", errUsage, err)
		}
		var gender *models.Gender
		if *genderFlag != "" {
			g, ok := models.ParseGender(*genderFlag)
			if !ok {
				return fmt.Errorf("%w: unknown gender %q", errUsage, *genderFlag)
			}
			gender = &g
		}
		items, err := stats.Tournaments(ctx, gender)
		if err != nil {
			return err
		}
		r.Tournaments(items)

	case "standings":
		ids, err := parseIDs(rest, 1)
		if err != nil {
			return err
		}
		items, err := stats.Standings(ctx, ids[0])
		if err != nil {
			return err
		}
		r.Standings(items)

	case "games":
		fs := flag.NewFlagSet(cmd, flag.ContinueOnError)
		filterFlag := fs.String("filter", "all", "all, upcoming or completed")
		positional, err := parseInterspersed(fs, rest)
		if err != nil {
			return err
		}
		ids, err := parseIDs(positional, 1)
		if err != nil {
			return err
		}
		filter, ok := models.ParseGameFilter(strings.ToLower(*filterFlag))
		if !ok {
			return fmt.Errorf("%w: unknown filter %q", errUsage, *filterFlag)
		}
		groups, err := stats.GameDays(ctx, ids[0], filter)
		if err != nil {
			return err
		}
		r.GameDays(groups, stats.Now())

	case "leaders":
		ids, err := parseIDs(rest, 1)
		if err != nil {
			return err
		}
		categories, err := stats.TopStats(ctx, ids[0])
		if err != nil {
			return err
		}
		r.TopStats(categories)

	case "game":
		ids, err := parseIDs(rest, 2)
		if err != nil {
			return err
		}
		detail, err := stats.GameDetail(ctx, ids[0], ids[1])
		if err != nil {
			return err
		}
		r.GameDetail(detail)

	case "player":
		ids, err := parseIDs(rest, 1)
		if err != nil {
			return err
		}
		detail, err := stats.PlayerSeason(ctx, ids[0])
		if err != nil {
			return err
		}
		r.PlayerSeason(detail)

	case "team":
		ids, err := parseIDs(rest, 1)
		if err != nil {
			return err
		}
		detail, err := stats.TeamSeason(ctx, ids[0])
		if err != nil {
			return err
		}
		r.TeamSeason(detail, stats.Now())

	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, cmd)
	}
	return nil
}

// parseInterspersed lets flags follow positional arguments.
func parseInterspersed(fs *flag.FlagSet, args []string) ([]string, error) {
	var positional []string
	for {
		if err := fs.Parse(args); err != nil {
			return nil, fmt.Errorf("%w: %v", errUsage, err)
		}
		args = fs.Args()
		if len(args) == 0 {
			return positional, nil
		}
		positional = append(positional, args[0])
		args = args[1:]
	}
}

func parseIDs(args []string, n int) ([]int64, error) {
	if len(args) != n {
		return nil, fmt.Errorf("%w: expected %d id argument(s), got %d", errUsage, n, len(args))
	}
	ids := make([]int64, 0, n)
	for _, a := range args {
		id, err := strconv.ParseInt(a, 10, 64)
		if err != nil || id <= 0 {
			return nil, fmt.Errorf("%w: %q is not a positive id", errUsage, a)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func setupLogger(level string) *zap.Logger {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(parseLogLevel(level))
	cfg.Encoding = "console"

	log, err := cfg.Build()
	if err != nil {
		panic(err)
	}

	return log
}

// parseLogLevel defaults to warn so diagnostics stay off the rendered output.
func parseLogLevel(level string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.WarnLevel
	}
}
