package project

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-git/go-git/v6"
)

// ExamplesDir is where the example programs live inside the bindings repository
const ExamplesDir = "examples"

// FindExamplesRoot walks up from start to the enclosing git worktree and
// returns its examples directory
func FindExamplesRoot(start string) (string, error) {
	repo, err := git.PlainOpenWithOptions(start, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", fmt.Errorf("no git repository at or above %s: %w", start, err)
	}
	w, err := repo.Worktree()
	if err != nil {
		return "", fmt.Errorf("could not get worktree: %w", err)
	}

	dir := filepath.Join(w.Filesystem.Root(), ExamplesDir)
	stat, err := os.Stat(dir)
	if err != nil {
		return "", err
	}
	if !stat.IsDir() {
		return "", fmt.Errorf("%s is not a directory", dir)
	}
	return dir, nil
}
