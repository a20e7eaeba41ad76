package app

import (
	"context"
	"fmt"

	"bonrecords/session"

	"go.uber.org/zap"
)

// Bootstrap prepares the session storage and, with WarmStores, loads every
// collection before the server accepts traffic. Otherwise each collection
// loads on its first request.
func Bootstrap(ctx context.Context, a *App) error {
	if err := a.Session.Init(ctx); err != nil {
		return fmt.Errorf("session init: %w", err)
	}
	accounts, err := a.Session.Accounts(ctx, "")
	if err != nil {
		return fmt.Errorf("session init: %w", err)
	}
	if len(accounts) == 1 && accounts[0].Username == session.DefaultAdminUsername {
		a.Logger.Warn("only the seeded administrator account exists", zap.String("username", session.DefaultAdminUsername))
	}

	if !a.Config.WarmStores {
		return nil
	}
	if err := a.Records.WarmUp(ctx); err != nil {
		return fmt.Errorf("warm stores: %w", err)
	}
	a.Logger.Info("collections loaded")
	return nil
}
