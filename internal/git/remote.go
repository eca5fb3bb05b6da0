package git

import (
	"context"
	"fmt"

	"gitwrap.dev/gitwrap/internal/shell"
)

// AddRemote configures a remote called name pointing at url
func (r *LocalRepository) AddRemote(ctx context.Context, name, url string) (Remote, error) {
	args, err := shell.Join(name, url)
	if err != nil {
		return Remote{}, err
	}
	if err := r.run(ctx, "remote", "add", args); err != nil {
		return Remote{}, fmt.Errorf("failed to add remote %s: %w", name, err)
	}
	return Remote{repo: r, Name: name, URL: url}, nil
}

// Fetch fetches from src, or from the default remote when src is nil
func (r *LocalRepository) Fetch(ctx context.Context, src Source) error {
	return r.transfer(ctx, "fetch", src)
}

// Pull fetches from src and merges, or from the default upstream when src is nil
func (r *LocalRepository) Pull(ctx context.Context, src Source) error {
	return r.transfer(ctx, "pull", src)
}

func (r *LocalRepository) transfer(ctx context.Context, subcommand string, src Source) error {
	args := []string{subcommand}
	from := "default remote"
	if src != nil {
		url, err := quoteSource(r, src)
		if err != nil {
			return err
		}
		args = append(args, url)
		from = src.SourceURL()
	}
	if err := r.run(ctx, args...); err != nil {
		return fmt.Errorf("failed to %s from %s: %w", subcommand, from, err)
	}
	return nil
}
