package commands

import (
	"github.com/savaki/artifact-notifier/internal/di"
	"github.com/savaki/artifact-notifier/internal/services"
	"github.com/urfave/cli/v2"
)

// GraphQLCommand returns the graphql command sending the RegisterDockerImagePush mutation
func GraphQLCommand() *cli.Command {
	return &cli.Command{
		Name:  "graphql",
		Usage: "Register the image push with the RegisterDockerImagePush mutation",
		Description: `POST the RegisterDockerImagePush mutation to T3_GRAPHQL_URL,
which defaults to https://api.transistor.eof.dev/graphql.`,
		Flags: []cli.Flag{
			dockerImageFlag(),
			dryRunFlag(),
		},
		OnUsageError: passUsageError,
		Action: notifyAction[*services.GraphQLNotifier](false,
			di.ProvideGraphQLConfig,
			di.ProvideGraphQLNotifier,
		),
	}
}
