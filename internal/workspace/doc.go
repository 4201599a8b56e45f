// Package workspace resolves the project layout a run operates in.
//
// The project root is the enclosing git worktree of the starting directory,
// found by walking up to the nearest .git, or the starting directory itself
// when it is not inside a repository. Default input and output locations are
// derived from that root.
package workspace
