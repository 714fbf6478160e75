package main

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"github.com/julianstephens/habits/internal/api"
	"github.com/julianstephens/habits/internal/cli"
	"github.com/julianstephens/habits/internal/constants"
	"github.com/julianstephens/habits/internal/errors"
	"github.com/julianstephens/habits/internal/imagecache"
	"github.com/julianstephens/habits/internal/logger"
	"github.com/julianstephens/habits/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Settings database path." type:"string" default:"${config_path}"`
	Host    string `help:"Habits server host." env:"HABITS_HOST" default:"${default_host}"`
	Port    int    `help:"Habits server port." env:"HABITS_PORT" default:"${default_port}"`
	Debug   bool   `help:"Enable debug logging to stderr."`

	Init     cli.InitCmd     `cmd:"" help:"Initialize the settings store."`
	Home     cli.HomeCmd     `cmd:"" help:"Show the leaderboard and followed users." default:"1"`
	User     cli.UserCmd     `cmd:"" help:"Show one user's statistics."`
	Habits   cli.HabitsCmd   `cmd:"" help:"List habits or toggle a favorite."`
	Users    cli.UsersCmd    `cmd:"" help:"List users or toggle following one."`
	Log      cli.LogCmd      `cmd:"" help:"Log a habit for yourself."`
	Serve    cli.ServeCmd    `cmd:"" help:"Run the bundled reference server."`
	Settings cli.SettingsCmd `cmd:"" help:"Show your identity and preferences."`
}

func main() {
	// Optional .env for HABITS_HOST/HABITS_PORT overrides
	_ = godotenv.Load()

	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Habit-tracking leaderboard client"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
		kong.Vars{
			"version":      constants.Version,
			"config_path":  constants.DefaultConfigPath,
			"default_host": constants.DefaultHost,
			"default_port": strconv.Itoa(constants.DefaultPort),
		},
	)

	configPath := expandHome(CLI.Config)
	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(configPath),
	}); err != nil {
		errors.Fatal(err)
	}

	client := api.NewClient(CLI.Host, CLI.Port)
	store := storage.NewSQLiteStore(configPath)

	appCtx := &cli.Context{
		Store:  store,
		Client: client,
		Images: imagecache.New(client),
	}

	// The server and first-run init manage the store themselves
	cmd := ""
	if ctx.Selected() != nil {
		cmd = ctx.Selected().Name
	}
	if cmd != "init" && cmd != "serve" {
		if err := store.Load(); err != nil {
			errors.Fatal(err)
		}
		defer store.Close()
	}

	errors.Fatal(ctx.Run(appCtx))
}

func expandHome(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}
