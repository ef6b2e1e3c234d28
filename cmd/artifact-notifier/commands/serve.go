package commands

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/http"
	"time"

	"github.com/savaki/artifact-notifier/internal/di"
	"github.com/savaki/artifact-notifier/internal/errors"
	"github.com/savaki/artifact-notifier/internal/receiver"
	"github.com/savaki/artifact-notifier/internal/services"
	"github.com/urfave/cli/v2"
)

const shutdownTimeout = 5 * time.Second

// ServeCommand returns the serve command running the local receiver
func ServeCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Start a local receiver implementing the REST webhook and the GraphQL API",
		Description: `Accepts artifact push notifications for local development and pipeline rehearsals.

Point EOF_DEPLOY_BASE_URL at http://localhost:8080 and T3_GRAPHQL_URL at
http://localhost:8080/graphql. Received pushes are logged and can be listed
with the "pushes" GraphQL query.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "addr",
				Usage: "Address to listen on",
				Value: ":8080",
			},
			&cli.StringFlag{
				Name:  "authorization",
				Usage: "Authorization header value the GraphQL endpoint accepts (empty accepts any)",
				Value: services.Authorization,
			},
			&cli.IntFlag{
				Name:  "fail-status",
				Usage: "Answer every REST notification with this HTTP status instead of 200",
			},
		},
		OnUsageError: passUsageError,
		Action:       serveAction,
	}
}

func serveAction(c *cli.Context) error {
	ctx, err := setup(c, "info")
	if err != nil {
		return err
	}
	logger := loggerFrom(ctx)

	failStatus := c.Int("fail-status")
	if failStatus != 0 && (failStatus < 100 || failStatus > 599) {
		return errors.InvalidInputf("fail-status must be a valid http status, got %d", failStatus)
	}

	cfg := receiver.Config{
		Authorization: c.String("authorization"),
		FailStatus:    failStatus,
	}

	container, err := di.New(
		di.WithLogger(logger),
		di.WithProviders(di.ReceiverProviders...),
		di.WithProviders(func() receiver.Config { return cfg }),
	)
	if err != nil {
		return errors.Receiver(fmt.Errorf("failed to setup DI container: %w", err))
	}

	handler, err := di.Get[*receiver.Handler](container)
	if err != nil {
		return errors.Receiver(err)
	}

	server := &http.Server{
		Addr:              c.String("addr"),
		Handler:           handler.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	logger.Info().
		Str("addr", server.Addr).
		Str("rest_path", receiver.ArtifactPushPath).
		Str("graphql_path", receiver.GraphQLPath).
		Int("fail_status", failStatus).
		Msg("Starting receiver")

	if err := server.ListenAndServe(); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
		return errors.Receiver(err)
	}

	logger.Info().Msg("Receiver stopped")
	return nil
}
