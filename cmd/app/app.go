package main

import (
	"context"
	"fmt"
	"os"

	"github.com/DRSN-tech/shopping-cart/internal/app"
	config "github.com/DRSN-tech/shopping-cart/internal/cfg"
	"github.com/DRSN-tech/shopping-cart/internal/delivery/v1/console"
	"github.com/DRSN-tech/shopping-cart/pkg/logger"
	"github.com/urfave/cli/v3"
)

func main() {
	if err := newRootCommand().Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stdout, "An unexpected error occurred: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cli.Command {
	return &cli.Command{
		Name:  "shopping-cart",
		Usage: "interactive shopping cart and small terminal exercises",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Usage:   "path to a YAML config file",
				Sources: cli.EnvVars("CONFIG_PATH"),
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "debug, info, warn, error or disabled",
			},
		},
		Action: runProgram("cart", (*app.App).Cart),
		Commands: []*cli.Command{
			{Name: "cart", Usage: "manage a shopping cart from a menu", Action: runProgram("cart", (*app.App).Cart)},
			{Name: "items", Usage: "total cost of two items", Action: runProgram("items", (*app.App).TwoItems)},
			{Name: "meal", Usage: "food charge with tip and sales tax", Action: runProgram("meal", (*app.App).Meal)},
			{Name: "alarm", Usage: "alarm hour on a 24-hour clock", Action: runProgram("alarm", (*app.App).Alarm)},
			{Name: "rainfall", Usage: "average monthly rainfall over several years", Action: runProgram("rainfall", (*app.App).Rainfall)},
			{Name: "points", Usage: "book club points for books bought this month", Action: runProgram("points", (*app.App).Points)},
			{Name: "courses", Usage: "course room, instructor and meeting time lookup", Action: runProgram("courses", (*app.App).Courses)},
		},
	}
}

// programMethod: метод App, реализующий одну программу.
type programMethod func(a *app.App, ctx context.Context, prompter *console.Prompter, log logger.Logger) error

func runProgram(name string, method programMethod) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		application, err := newApp(cmd)
		if err != nil {
			return err
		}

		return application.Run(ctx, name, func(ctx context.Context, prompter *console.Prompter, log logger.Logger) error {
			return method(application, ctx, prompter, log)
		})
	}
}

func newApp(cmd *cli.Command) (*app.App, error) {
	bootstrap := logger.NewZerologLogger(os.Stderr, logger.FormatConsole)

	cfg, err := config.Load(bootstrap, cmd.String("config"))
	if err != nil {
		bootstrap.Errorf(err, "failed to load config")
		return nil, err
	}
	if level := cmd.String("log-level"); level != "" {
		cfg.Log.Level = level
	}

	application, err := app.NewApp(cfg, logger.NewZerologLogger(os.Stderr, cfg.Log.Format), os.Stdin, os.Stdout)
	if err != nil {
		bootstrap.Errorf(err, "failed to initialize app")
		return nil, err
	}

	return application, nil
}
