package gql

import "context"

type PushesArgs struct {
	Since *DateTime
}

// Pushes resolves the pushes query, returning recorded pushes oldest first.
// When since is set, only pushes received at or after it are returned.
func (r *Resolver) Pushes(ctx context.Context, args PushesArgs) []*DockerImagePushResolver {
	pushes := r.store.List()

	results := make([]*DockerImagePushResolver, 0, len(pushes))
	for _, push := range pushes {
		if args.Since != nil && push.ReceivedAt.Before(args.Since.Time) {
			continue
		}
		results = append(results, newDockerImagePushResolver(push))
	}
	return results
}
