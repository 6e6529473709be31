/*
Package main implements the predictor's msgpack IPC server.

Note: This is a BETA release. APIs and functionality may rapidly change.

predictserve loads a dictionary predictor from chunked binary dictionary
files and answers PredictRequest/PredictResponse pairs over stdin/stdout,
one message per call, using MessagePack for the wire encoding.

# Usage

Start the server with default settings:

	predictserve

Use a custom data directory and enable debug mode:

	predictserve -data /path/to/chunks -d

# Configuration

Runtime configuration is managed through a TOML file with a [predictor]
section for the ranking flags and a [server] section. max_limit is loaded
with the rest of the config; the server does not apply it to requests,
whose candidate count comes from each request's own limit:

	[predictor]
	mixed_conversion = false
	use_realtime_conversion = true
	use_dictionary_suggest = true
	zero_query_suggestion = true
	enable_expansion = true
	max_prediction_candidates = 10

	[server]
	max_limit = 64

The config file is automatically created with defaults if it doesn't exist.

# Command Line Flags

	-data string
	    Directory containing binary dictionary chunk files (default "data/")
	-d  Enable debug mode with detailed logging
	-config string
	    Path to a config.toml, overriding the default config location
	-version
	    Show version information and exit
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/kanaseed/predictor/internal/bootstrap"
	"github.com/kanaseed/predictor/internal/utils"
	"github.com/kanaseed/predictor/pkg/config"
	"github.com/kanaseed/predictor/pkg/predictor"
	"github.com/kanaseed/predictor/pkg/server"
)

const (
	Version = "0.1.0-beta"
	AppName = "predictserve"
	gh      = "https://github.com/kanaseed/predictor"
)

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

// main calls other packages to initialize the server and manages the flow.
// main() does not implement ranking or IPC logic itself.
func main() {
	sigHandler()

	showVersion := flag.Bool("version", false, "Show current version")
	dataDir := flag.String("data", "data/", "Directory containing dictionary chunk files")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	configPathFlag := flag.String("config", "", "Path to config.toml, overriding the default config location")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	pathResolver, err := utils.NewPathResolver()
	if err != nil {
		log.Fatalf("Failed to initialize path resolver: %v", err)
		os.Exit(1)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	resolvedDataDir, err := pathResolver.GetDataDir(*dataDir)
	if err != nil {
		log.Fatalf("Failed to resolve data dir: %v", err)
		os.Exit(1)
	}
	log.Debugf("Using data dir at: %s", resolvedDataDir)

	built, err := bootstrap.Build(resolvedDataDir)
	if err != nil {
		log.Fatalf("Failed to build predictor: %v", err)
		os.Exit(1)
	}

	appConfig, activeConfigPath, err := config.LoadConfigWithPriority(*configPathFlag)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
		os.Exit(1)
	}
	log.Debugf("Using config file: (%s)", activeConfigPath)

	predCfg := predictor.Config(appConfig.Predictor)

	srv := server.NewServer(built.Core, predCfg)

	showStartupInfo(resolvedDataDir, built)

	if err := srv.Start(); err != nil {
		log.Fatalf("Failed to start server: %v", err)
		os.Exit(1)
	}
}

// showStartupInfo displays some basic info about the init process.
func showStartupInfo(dataDir string, built *bootstrap.Predictor) {
	pid := os.Getpid()
	currentLevel := log.GetLevel()
	log.SetLevel(log.InfoLevel)

	println("===============")
	println(" predictserve ")
	println("===============")
	log.Infof("Version: %s", Version)
	log.Infof("Process ID: [ %d ]", pid)
	log.Infof("data dir: ( %s )", dataDir)
	log.Infof("main dict: %d entries", built.MainLoader.Stats().DictSize)
	log.Infof("suffix dict: %d entries", built.SuffixLoad.Stats().DictSize)
	log.Info("status: ready")
	println("===============")
	println("Press Ctrl+C to exit")

	log.SetLevel(currentLevel)
}

func printVersion() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
		Prefix:          "",
	})

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Background(lipgloss.AdaptiveColor{Light: "#f2e9e1", Dark: "#26233a"}).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	logger.SetStyles(styles)

	logger.Print("")
	logger.Print(fmt.Sprintf("[ %s ] Japanese IME dictionary prediction, over msgpack", AppName))
	logger.Print("", "version", Version)
	logger.Print("")
	logger.Print("use -h or --help to see available options")
	logger.Print("Github Repo", "gh", gh)
}
