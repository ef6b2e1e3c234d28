package commands

import (
	"github.com/savaki/artifact-notifier/internal/di"
	"github.com/savaki/artifact-notifier/internal/services"
	"github.com/urfave/cli/v2"
)

// RESTCommand returns the rest command posting the notification to the deploy webhook
func RESTCommand() *cli.Command {
	return &cli.Command{
		Name:  "rest",
		Usage: "Register the image push over the REST webhook",
		Description: `POST the notification as JSON to
{EOF_DEPLOY_BASE_URL}/connector/webhook/github-actions/artifact-push.

EOF_DEPLOY_BASE_URL defaults to https://deploy.eofsuite.com.`,
		Flags: []cli.Flag{
			dockerImageFlag(),
			&cli.StringFlag{
				Name:     "org-id",
				Aliases:  []string{"o"},
				Usage:    "Organization the image belongs to",
				Required: true,
			},
			dryRunFlag(),
		},
		OnUsageError: passUsageError,
		Action: notifyAction[*services.RESTNotifier](true,
			di.ProvideRESTConfig,
			di.ProvideRESTNotifier,
		),
	}
}
