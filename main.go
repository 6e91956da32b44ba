// Command guestevents is a terminal client for the guest event service: it
// signs in with a mobile OTP and browses upcoming events.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"guestevents/config"
	"guestevents/services/gateway"
	"guestevents/services/session"
	"guestevents/tui"
	"guestevents/utils"
	"guestevents/views"

	tea "github.com/charmbracelet/bubbletea"
	flag "github.com/spf13/pflag"
	"go.uber.org/zap"
)

func main() {
	configFile := flag.String("config", "", "path to a config file")
	baseURL := flag.String("base-url", "", "API host (overrides API_BASE_URL)")
	logFile := flag.String("log-file", "", "write logs to this file (overrides LOG_FILE)")
	flag.Parse()

	config.LoadConfig(*configFile)
	if flag.CommandLine.Changed("base-url") {
		config.AppConfig.APIBaseURL = *baseURL
	}
	if flag.CommandLine.Changed("log-file") {
		config.AppConfig.LogFile = *logFile
	}
	if config.AppConfig.LogFile == "" {
		// The terminal belongs to the UI.
		config.AppConfig.LogFile = os.DevNull
	}
	logger := utils.GetLogger()
	defer logger.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	gw := gateway.NewHTTPGateway(config.AppConfig.APIBaseURL, config.AppConfig.RequestTimeout, logger)
	logger.Info("Starting client", zap.String("baseURL", gw.BaseURL))

	model := tui.New(tui.Options{
		Gateway: gw,
		Opener:  session.URLOpenerFunc(utils.OpenURL),
		Logger:  logger,
		Selector: views.Selector{
			DateLayout: config.AppConfig.DateLayout,
			Location:   time.Local,
		},
		Context: ctx,
	})

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logger.Error("Client exited with error", zap.Error(err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
