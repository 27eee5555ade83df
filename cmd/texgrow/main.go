package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime/pprof"
	"strconv"

	"github.com/lukaszgryglicki/texgrow/internal/texgrow"
)

func main() {
	texgrow.Debug = os.Getenv("DEBUG") != ""
	texgrow.Plot = os.Getenv("PLOT") != ""
	texgrow.GIF = os.Getenv("GIF") != ""
	profile := os.Getenv("PROFILE") != ""
	if v := os.Getenv("PREVIEW"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			fmt.Printf("Error: PREVIEW must be an integer: %v\n", err)
			os.Exit(1)
		}
		texgrow.Preview = n
	}

	level := slog.LevelInfo
	if texgrow.Debug {
		level = slog.LevelDebug
	}
	texgrow.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if profile {
		f, err := os.Create("cpu.out")
		if err != nil {
			panic(err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			panic(err)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	cfg := texgrow.DefaultConfigPath
	if len(os.Args) > 1 {
		cfg = os.Args[1]
	}
	if err := texgrow.Run(cfg); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
