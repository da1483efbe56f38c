package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/promptenhancer/internal/app"
	"github.com/renato0307/promptenhancer/internal/commands"
	"github.com/renato0307/promptenhancer/internal/config"
	"github.com/renato0307/promptenhancer/internal/enhance"
	"github.com/renato0307/promptenhancer/internal/logging"
	"github.com/renato0307/promptenhancer/internal/screens"
	"github.com/renato0307/promptenhancer/internal/types"
	"github.com/renato0307/promptenhancer/internal/ui"
)

func main() {
	// Parse flags
	themeFlag := flag.String("theme", "", "Theme to use ("+strings.Join(ui.AvailableThemes(), ", ")+")")
	providerFlag := flag.String("provider", "", "Model provider (gemini, openai, mock)")
	modelFlag := flag.String("model", "", "Model name (default depends on provider)")
	configFlag := flag.String("config", "", "Path to config file (default: "+config.DefaultPath()+")")
	dummyFlag := flag.Bool("dummy", false, "Use the offline mock provider instead of a real model")
	logFileFlag := flag.String("log-file", "", "Write logs to this file (default: no logging)")
	logLevelFlag := flag.String("log-level", "", "Log level (debug, info, warn, error)")
	logFormatFlag := flag.String("log-format", "", "Log format (text, json)")
	promptFlag := flag.String("p", "", "Enhance this prompt, print the result and exit")
	copyFlag := flag.Bool("copy", false, "With -p, also copy the result to the clipboard")
	flag.Parse()

	set := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })

	// Load config: defaults, file, environment
	configPath, required := *configFlag, set["config"]
	if !required {
		configPath = config.DefaultPath()
	}
	cfg, err := config.Load(configPath, required, os.Getenv)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Flags win. The provider goes first so the matching API key variable
	// is picked up before the remaining overrides.
	if set["provider"] {
		cfg.WithProvider(*providerFlag, os.Getenv)
	}
	if *dummyFlag {
		cfg.Provider = enhance.ProviderMock
	}
	if set["model"] {
		cfg.Model = *modelFlag
	}
	if set["theme"] {
		cfg.Theme = *themeFlag
	}
	if set["log-file"] {
		cfg.Log.File = *logFileFlag
	}
	if set["log-level"] {
		cfg.Log.Level = *logLevelFlag
	}
	if set["log-format"] {
		cfg.Log.Format = *logFormatFlag
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	if err := logging.Init(cfg.LoggingConfig()); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
	}
	defer logging.Shutdown()

	logging.Info("Starting", "provider", cfg.Provider, "model", cfg.Model, "theme", cfg.Theme, "config", configPath)

	client, err := enhance.New(cfg.EnhanceConfig())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating client: %v\n", err)
		os.Exit(1)
	}

	if set["p"] {
		code := runOnce(client, *promptFlag, *copyFlag)
		logging.Shutdown()
		os.Exit(code)
	}

	if cfg.Provider == enhance.ProviderMock {
		fmt.Println("Running in dummy mode (no model connection)")
	}

	appCtx := types.NewAppContext(ui.GetTheme(cfg.Theme), client, commands.SystemClipboard{})
	model := app.NewModel(appCtx, !cfg.LightMode)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		logging.Error("Program failed", "error", err)
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		logging.Shutdown()
		os.Exit(1)
	}
}

// runOnce enhances a single prompt without the UI and returns the exit code
func runOnce(client enhance.Client, prompt string, copyResult bool) int {
	if strings.TrimSpace(prompt) == "" {
		logging.Warn("One-shot rejected", "error", screens.ErrEmptyInput)
		fmt.Fprintln(os.Stderr, screens.MsgEmptyPrompt)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	timing := logging.Start("Enhance (one-shot)")
	text, err := client.Enhance(ctx, prompt)
	if err != nil {
		logging.EndWithError(timing, err, "provider", client.Name())
		fmt.Fprintf(os.Stderr, "%s\n%v\n", screens.MsgEnhanceFailed, err)
		return 1
	}
	logging.End(timing, "provider", client.Name(), "chars", len(text))

	fmt.Print(text)
	if !strings.HasSuffix(text, "\n") {
		fmt.Println()
	}

	if copyResult {
		if err := (commands.SystemClipboard{}).WriteText(text); err != nil {
			logging.Warn("Clipboard write failed", "error", err)
			fmt.Fprintf(os.Stderr, "%s\n%v\n", screens.MsgCopyFailed, err)
			return 1
		}
		fmt.Fprintln(os.Stderr, screens.MsgCopied)
	}
	return 0
}
