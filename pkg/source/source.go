// icon-cfg - ICON build configurator
// Copyright (C) 2025 The icon-cfg Authors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

// Package source makes sure a checkout of the model sources exists where
// the build expects it and that it tracks the remote and branch the user
// asked for.
package source

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/leonelquinteros/gotext"

	"gitea.plemya-x.ru/Plemya-x/icon-cfg/internal/fsutils"
	"gitea.plemya-x.ru/Plemya-x/icon-cfg/pkg/cfgerr"
	"gitea.plemya-x.ru/Plemya-x/icon-cfg/pkg/script"
)

const DefaultBranch = "master"

const detachedHead = "HEAD (detached)"

type Options struct {
	// Dir is where the checkout lives or will be cloned to.
	Dir string
	// URL of the remote. When empty Dir must already exist and is used
	// as is, without looking at version control at all.
	URL    string
	Branch string
	// DefaultBranch replaces an empty Branch. Falls back to DefaultBranch.
	DefaultBranch string
	Progress      Progress
}

func (o Options) branch() string {
	switch {
	case o.Branch != "":
		return o.Branch
	case o.DefaultBranch != "":
		return o.DefaultBranch
	default:
		return DefaultBranch
	}
}

type Result struct {
	Cloned     bool
	Branch     string
	Submodules []string
}

// Ensure reconciles the checkout in opts.Dir with the requested remote
// and branch. It clones when Dir is missing, refuses to touch a checkout
// that points elsewhere, and then brings all submodules up to date.
// Calling it again on a good checkout only repeats the submodule pass.
func Ensure(ctx context.Context, opts Options) (*Result, error) {
	if opts.URL == "" {
		if !fsutils.DirExists(opts.Dir) {
			return nil, cfgerr.Precondition(
				fmt.Sprintf("source directory %q", opts.Dir),
				gotext.Get("does not exist"),
				gotext.Get("pass a git repository to clone it"),
			)
		}
		return &Result{}, nil
	}

	progress := opts.Progress
	if progress == nil {
		progress = nopProgress{}
	}

	branch := opts.branch()
	res := &Result{Branch: branch}

	var (
		r   *git.Repository
		err error
	)
	if fsutils.DirExists(opts.Dir) {
		slog.Info(gotext.Get("Source directory exists, checking it"), "dir", opts.Dir)
		r, err = openMatching(opts.Dir, opts.URL, branch)
		if err != nil {
			return nil, err
		}
	} else {
		slog.Info(gotext.Get("Cloning"), "url", opts.URL, "branch", branch, "dir", opts.Dir)
		r, err = clone(ctx, opts.Dir, opts.URL, branch, progress)
		if err != nil {
			return nil, err
		}
		res.Cloned = true
	}

	w, err := r.Worktree()
	if err != nil {
		return nil, fmt.Errorf("open worktree: %w", err)
	}

	res.Submodules, err = updateSubmodules(ctx, w, progress)
	if err != nil {
		return nil, err
	}

	if !hasEntryPoint(w.Filesystem) {
		slog.Warn(gotext.Get("Checkout has no configure script at its top level"), "dir", opts.Dir)
	}

	return res, nil
}

func openMatching(dir, url, branch string) (*git.Repository, error) {
	r, err := git.PlainOpen(dir)
	if err != nil {
		return nil, cfgerr.Precondition(
			fmt.Sprintf("source directory %q", dir),
			gotext.Get("not a git checkout: %v", err),
			"",
		)
	}

	remote, err := r.Remote(git.DefaultRemoteName)
	if err != nil {
		return nil, &cfgerr.ConflictError{Field: "remote", Requested: url, Actual: ""}
	}
	urls := remote.Config().URLs
	actualURL := ""
	if len(urls) > 0 {
		actualURL = urls[0]
	}
	if !SameRemote(actualURL, url) {
		return nil, &cfgerr.ConflictError{Field: "remote", Requested: url, Actual: actualURL}
	}

	actualBranch, err := activeBranch(r)
	if err != nil {
		return nil, err
	}
	if actualBranch != branch {
		return nil, &cfgerr.ConflictError{Field: "branch", Requested: branch, Actual: actualBranch}
	}

	return r, nil
}

// activeBranch reads HEAD without resolving it, so a branch with no
// commits yet still counts as checked out.
func activeBranch(r *git.Repository) (string, error) {
	head, err := r.Reference(plumbing.HEAD, false)
	if err != nil {
		return "", fmt.Errorf("read HEAD: %w", err)
	}
	if head.Type() != plumbing.SymbolicReference || !head.Target().IsBranch() {
		return detachedHead, nil
	}
	return head.Target().Short(), nil
}

func clone(ctx context.Context, dir, url, branch string, progress Progress) (*git.Repository, error) {
	pw := NewProgressWriter(progress)
	defer pw.Flush()

	r, err := git.PlainCloneContext(ctx, dir, false, &git.CloneOptions{
		URL:           url,
		ReferenceName: plumbing.NewBranchReferenceName(branch),
		SingleBranch:  true,
		Progress:      pw,
	})
	if err != nil {
		// A partial clone stays on disk for the operator to look at.
		return nil, &cfgerr.DownstreamError{Command: "git clone " + url, Err: err}
	}
	return r, nil
}

// updateSubmodules initializes and updates every submodule recursively.
// Progress and the returned names cover the top level only; nested
// submodules are updated by go-git as part of their parent.
func updateSubmodules(ctx context.Context, w *git.Worktree, progress Progress) ([]string, error) {
	subs, err := w.Submodules()
	if err != nil {
		return nil, fmt.Errorf("list submodules: %w", err)
	}

	slog.Info(gotext.Get("Updating submodules"), "count", len(subs))

	names := make([]string, 0, len(subs))
	for _, sub := range subs {
		name := sub.Config().Name
		progress.Message(name)

		err := sub.UpdateContext(ctx, &git.SubmoduleUpdateOptions{
			Init:              true,
			RecurseSubmodules: git.DefaultSubmoduleRecursionDepth,
		})
		if err != nil && !errors.Is(err, git.NoErrAlreadyUpToDate) {
			return nil, &cfgerr.DownstreamError{Command: "git submodule update " + name, Err: err}
		}

		if st, err := sub.Status(); err == nil {
			progress.Message(fmt.Sprintf("%s: %s", name, st.Current))
		}

		names = append(names, name)
	}

	return names, nil
}

func hasEntryPoint(fs billy.Filesystem) bool {
	fi, err := fs.Stat(script.EntryPoint)
	return err == nil && !fi.IsDir()
}
