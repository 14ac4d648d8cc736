// Package git clones dependency repositories into the shared cache.
package git

import (
	"context"
	"os"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"go.trai.ch/zerr"

	"github.com/caxe-dev/cx/internal/core/domain"
)

// Cloner implements ports.Cloner on top of go-git.
type Cloner struct{}

// NewCloner creates a Cloner.
func NewCloner() *Cloner {
	return &Cloner{}
}

// Clone fetches url into dest and returns the resolved HEAD revision. When
// ref is non-empty it may name a tag, branch, or commit hash; the work tree
// is checked out at that revision. A failed clone never leaves a partial
// directory behind.
func (c *Cloner) Clone(ctx context.Context, url, ref, dest string) (string, error) {
	repo, err := gogit.PlainCloneContext(ctx, dest, false, &gogit.CloneOptions{
		URL:  url,
		Tags: gogit.AllTags,
	})
	if err != nil {
		_ = os.RemoveAll(dest)
		return "", zerr.With(zerr.Wrap(domain.ErrCloneFailed, err.Error()), "url", url)
	}

	if ref != "" {
		if err := checkout(repo, ref); err != nil {
			_ = os.RemoveAll(dest)
			wrapped := zerr.With(zerr.Wrap(domain.ErrCloneFailed, err.Error()), "url", url)
			return "", zerr.With(wrapped, "ref", ref)
		}
	}

	head, err := repo.Head()
	if err != nil {
		_ = os.RemoveAll(dest)
		return "", zerr.With(zerr.Wrap(domain.ErrCloneFailed, err.Error()), "url", url)
	}
	return head.Hash().String(), nil
}

// checkout resolves ref against tags, branches, and raw hashes, then detaches
// the work tree at the resulting commit.
func checkout(repo *gogit.Repository, ref string) error {
	hash, err := repo.ResolveRevision(plumbing.Revision(ref))
	if err != nil {
		return err
	}
	wt, err := repo.Worktree()
	if err != nil {
		return err
	}
	return wt.Checkout(&gogit.CheckoutOptions{Hash: *hash})
}
