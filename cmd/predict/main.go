// predict is an interactive debug REPL for the dictionary predictor: it
// loads the same dictionaries and collaborators the server would, then
// reads readings from stdin and prints ranked candidates directly,
// without going through msgpack framing. New features and ranking
// changes should be exercised here first.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"

	"github.com/kanaseed/predictor/internal/bootstrap"
	"github.com/kanaseed/predictor/internal/cli"
	"github.com/kanaseed/predictor/pkg/config"
	"github.com/kanaseed/predictor/pkg/predictor"
	"github.com/kanaseed/predictor/pkg/segments"
)

func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

func main() {
	sigHandler()

	dataDir := flag.String("data", "data/", "Directory containing dictionary chunk files")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	limit := flag.Int("limit", 10, "Number of candidates to return")
	mixed := flag.Bool("mixed", false, "Use mixed-conversion cost model instead of desktop")
	reqType := flag.String("type", "suggestion", "Request type: conversion|prediction|suggestion|partial_prediction|partial_suggestion")

	flag.Parse()

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(false)
	} else {
		log.SetLevel(log.ErrorLevel)
	}

	log.Debugf("Initializing predictor from data dir: %s", *dataDir)
	built, err := bootstrap.Build(*dataDir)
	if err != nil {
		log.Fatalf("Failed to build predictor: %v", err)
		os.Exit(1)
	}

	defaults := config.DefaultConfig()
	cfg := predictor.Config(defaults.Predictor)
	cfg.MixedConversion = *mixed
	cfg.MaxPredictionCandidates = *limit

	rt, ok := parseRequestType(*reqType)
	if !ok {
		log.Fatalf("unknown request type: %s", *reqType)
		os.Exit(1)
	}

	inputHandler := cli.NewInputHandler(built.Core, cfg, rt, *limit)
	if err := inputHandler.Start(); err != nil {
		log.Fatalf("CLI input handler error: %v", err)
		os.Exit(1)
	}
}

func parseRequestType(s string) (segments.RequestType, bool) {
	switch s {
	case "conversion":
		return segments.Conversion, true
	case "prediction":
		return segments.Prediction, true
	case "suggestion", "":
		return segments.Suggestion, true
	case "partial_prediction":
		return segments.PartialPrediction, true
	case "partial_suggestion":
		return segments.PartialSuggestion, true
	default:
		return segments.Suggestion, false
	}
}
