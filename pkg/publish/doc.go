// Package publish uploads a built site to S3 or an S3-compatible store.
//
// Publish reads the manifest written by the build, checks every page
// against its recorded hash and uploads it with PutObject. Objects whose
// stored hash already matches are skipped unless WithForce is set. The
// manifest itself is uploaded last so readers never see it ahead of the
// pages it lists.
//
//	client := publish.NewClient(cfg.Publish)
//	p, err := publish.New(client, cfg.Publish)
//	if err != nil {
//	    return err
//	}
//	result, err := p.Publish(ctx, cfg.OutputPath())
//
// Credentials come from AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY and
// AWS_SESSION_TOKEN.
package publish
