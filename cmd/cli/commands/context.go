package commands

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/jakechorley/shift-rota/internal/config"
	"github.com/jakechorley/shift-rota/pkg/clients/sheetsclient"
	"github.com/jakechorley/shift-rota/pkg/core/model"
	"github.com/jakechorley/shift-rota/pkg/core/services"
	"github.com/jakechorley/shift-rota/pkg/db"
	"github.com/jakechorley/shift-rota/pkg/leavetable"
)

// AppContext holds the application dependencies shared across all commands
type AppContext struct {
	Env      string
	Cfg      *config.Config
	Database db.Database
	Logger   *zap.Logger
	Ctx      context.Context

	sheetsClient *sheetsclient.Client
}

// SheetsClient returns the Google Sheets client, running the OAuth flow on first use.
// Commands that never touch Sheets do not need OAuth credentials.
func (a *AppContext) SheetsClient() (*sheetsclient.Client, error) {
	if a.sheetsClient != nil {
		return a.sheetsClient, nil
	}

	a.Logger.Info("Loading OAuth client configuration")
	oauthCfg, err := config.LoadOAuthClientWithEnv(a.Env)
	if err != nil {
		return nil, fmt.Errorf("failed to load OAuth client config: %w", err)
	}

	a.Logger.Info("Initializing sheets client")
	client, err := sheetsclient.NewClient(a.Ctx, oauthCfg, a.Env, a.Logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets client: %w", err)
	}
	a.Logger.Debug("Sheets client initialized successfully")

	a.sheetsClient = client
	return client, nil
}

// LeaveTable loads the configured leave table
func (a *AppContext) LeaveTable() (*leavetable.Table, error) {
	if a.Cfg.LeaveTable.Source != config.LeaveSourceSheets {
		return services.LoadLeaveTable(a.Cfg, nil, a.Logger)
	}

	client, err := a.SheetsClient()
	if err != nil {
		return nil, err
	}
	return services.LoadLeaveTable(a.Cfg, client, a.Logger)
}

// parseRange parses and orders a <start> <end> argument pair
func parseRange(startArg, endArg string) (model.Day, model.Day, error) {
	start, err := model.ParseDay(startArg)
	if err != nil {
		return model.Day{}, model.Day{}, fmt.Errorf("invalid start: %w", err)
	}
	end, err := model.ParseDay(endArg)
	if err != nil {
		return model.Day{}, model.Day{}, fmt.Errorf("invalid end: %w", err)
	}
	if end.Before(start) {
		return model.Day{}, model.Day{}, fmt.Errorf("start %s is after end %s", start, end)
	}
	return start, end, nil
}
