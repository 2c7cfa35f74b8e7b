package main

import (
	"context"
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/go-faster/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ytget/cookbook/internal/config"
	"github.com/ytget/cookbook/internal/logger"
	"github.com/ytget/cookbook/internal/model"
	"github.com/ytget/cookbook/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.cookbook"
	AppName = "Cookbook"
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "cookbook",
		Short:         "Recipe screen demo",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath, err := cmd.Flags().GetString("config")
			if err != nil {
				return err
			}
			return run(configPath)
		},
	}
	rootCmd.PersistentFlags().StringP("config", "c", "config.yml", "Config File Path")
	rootCmd.AddCommand(versionCommand())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", AppName, err)
		os.Exit(1)
	}
}

func versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("%s v%s\n", AppName, version)
		},
	}
}

// run loads configuration and shows the recipe screen until the window closes
func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return errors.Wrap(err, "load config")
	}

	logger.Setup(cfg.Environment)
	ctx := context.Background()
	defer logger.Sync(ctx)

	logger.Info(ctx, "starting", zap.String("app", AppName), zap.String("version", version))

	resources, err := ui.LoadResources()
	if err != nil {
		return errors.Wrap(err, "load resources")
	}

	myApp := app.NewWithID(AppID)
	myWindow := myApp.NewWindow(AppName)
	if ui.NewMobileUI(myApp).ShouldResizeWindow() {
		myWindow.Resize(fyne.NewSize(cfg.Window.Width, cfg.Window.Height))
	}

	settings := config.NewSettings(myApp, cfg.Grid.Columns)
	counter := model.NewServingCounter(cfg.Servings.Initial)

	ui.NewRootUI(ctx, myWindow, myApp, model.StrawberryCake(), counter, settings, resources)

	myWindow.ShowAndRun()
	logger.Info(ctx, "window closed")
	return nil
}
