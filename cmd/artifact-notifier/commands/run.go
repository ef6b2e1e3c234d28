package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/savaki/artifact-notifier/internal/config"
	"github.com/savaki/artifact-notifier/internal/di"
	"github.com/savaki/artifact-notifier/internal/errors"
	"github.com/urfave/cli/v2"
)

// NewApp returns the artifact-notifier CLI writing to the given streams
func NewApp(stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:  "artifact-notifier",
		Usage: "Register a pushed container image with the deploy backend",
		Description: `Run from a GitHub Actions job after an image has been built and pushed.

The repository, server and commit are read from GITHUB_SERVER_URL,
GITHUB_REPOSITORY and GITHUB_SHA. On success nothing is printed; on failure
a single line is written to stderr and the exit code is 1.`,
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "Diagnostic log level written to stderr (debug, info, warn, error, disabled)",
				Value:   di.DefaultLogLevel,
				EnvVars: []string{"LOG_LEVEL"},
			},
			&cli.StringFlag{
				Name:  "env-file",
				Usage: "Load environment variables from a dotenv file; existing variables win",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "YAML file providing eof_deploy_base_url / t3_graphql_url",
			},
		},
		Commands: []*cli.Command{
			RESTCommand(),
			GraphQLCommand(),
			ServeCommand(),
		},
		OnUsageError:   passUsageError,
		ExitErrHandler: func(*cli.Context, error) {},
	}
}

// Run executes the CLI and maps the outcome to a process exit code
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if err := NewApp(stdout, stderr).RunContext(ctx, args); err != nil {
		_, _ = fmt.Fprintln(stderr, errors.Report(err))
		return 1
	}
	return 0
}

// passUsageError returns flag parsing errors without printing usage so the
// failure stays on one line
func passUsageError(_ *cli.Context, err error, _ bool) error {
	return errors.InvalidInput(err)
}

// setup loads the env file and attaches a logger to the command context
func setup(c *cli.Context, defaultLevel string) (context.Context, error) {
	if err := config.LoadEnvFile(c.String("env-file")); err != nil {
		return nil, err
	}

	level := c.String("log-level")
	if !c.IsSet("log-level") && defaultLevel != "" {
		level = defaultLevel
	}

	logger, err := di.NewLogger(c.App.ErrWriter, level)
	if err != nil {
		return nil, errors.InvalidInput(err)
	}
	return logger.WithContext(c.Context), nil
}

func loggerFrom(ctx context.Context) zerolog.Logger {
	return *zerolog.Ctx(ctx)
}
