package commands

import (
	"fmt"
	"os"

	"github.com/savaki/artifact-notifier/internal/di"
	"github.com/savaki/artifact-notifier/internal/input"
	"github.com/savaki/artifact-notifier/internal/services"
	"github.com/urfave/cli/v2"
)

func dockerImageFlag() cli.Flag {
	return &cli.StringFlag{
		Name:     "docker-image",
		Aliases:  []string{"d"},
		Usage:    "Reference of the pushed image, e.g. ghcr.io/owner/repo:tag",
		Required: true,
	}
}

func dryRunFlag() cli.Flag {
	return &cli.BoolFlag{
		Name:  "dry-run",
		Usage: "Print the request body to stdout instead of sending it",
	}
}

// notifyAction resolves inputs, builds the notifier T through the container and sends one notification
func notifyAction[T services.Notifier](requireOrgID bool, providers ...any) cli.ActionFunc {
	return func(c *cli.Context) error {
		ctx, err := setup(c, "")
		if err != nil {
			return err
		}
		logger := loggerFrom(ctx)

		params, err := input.Resolve(input.Flags{
			DockerImage:  c.String("docker-image"),
			OrgID:        c.String("org-id"),
			RequireOrgID: requireOrgID,
		}, os.LookupEnv)
		if err != nil {
			return err
		}

		container, err := di.New(
			di.WithConfigPath(c.String("config")),
			di.WithLogger(logger),
			di.WithProviders(providers...),
		)
		if err != nil {
			return fmt.Errorf("failed to setup DI container: %w", err)
		}

		notifier, err := di.Get[T](container)
		if err != nil {
			return err
		}

		n := params.Notification()

		if c.Bool("dry-run") {
			body, err := notifier.RequestBody(n)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(c.App.Writer, string(body))
			return nil
		}

		logger.Info().
			Str("command", c.Command.Name).
			Str("docker_image_ref", n.DockerImageRef).
			Str("repository", n.GitRepositoryFullName).
			Str("commit_hash", n.CommitHash).
			Msg("Registering docker image push")

		if err := notifier.Notify(ctx, n); err != nil {
			return err
		}

		logger.Info().Msg("Docker image push registered")
		return nil
	}
}
