package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/doitintl/hello/nova-checkout/common"
	"github.com/doitintl/hello/nova-checkout/framework/connection"
	"github.com/doitintl/hello/nova-checkout/logger"
	settingsDal "github.com/doitintl/hello/nova-checkout/settings/dal"
)

var Version = "dev"

// storeOpener returns the settings store and a function releasing it.
type storeOpener func(ctx context.Context) (settingsDal.ISettings, func(), error)

func main() {
	if err := newRootCmd(openStore).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd(open storeOpener) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "novactl",
		Short:         "novactl - administer the Nova checkout service",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().String("settings-file", "", "YAML settings file (defaults to $SETTINGS_FILE, Firestore when unset)")

	rootCmd.AddCommand(settingsCmd(open))

	return rootCmd
}

func openStore(ctx context.Context) (settingsDal.ISettings, func(), error) {
	if path := settingsDal.SettingsFilePath(); path != "" {
		return settingsDal.NewSettingsFile(path), func() {}, nil
	}

	logging, err := logger.NewLogging(ctx)
	if err != nil {
		return nil, nil, err
	}

	conn, err := connection.NewConnection(ctx, logging)
	if err != nil {
		logging.Close()
		return nil, nil, fmt.Errorf("settings store (project %q): %w", common.ProjectID, err)
	}

	return settingsDal.NewSettingsDAL(conn), func() {
		conn.Close()
		logging.Close()
	}, nil
}
