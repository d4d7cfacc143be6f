// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package fetch

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"
)

// executor abstracts command execution for testing.
type executor interface {
	Run(ctx context.Context, name string, args []string, stdout, stderr io.Writer) error
}

// osExecutor is the production executor backed by os/exec.
type osExecutor struct{}

func (osExecutor) Run(ctx context.Context, name string, args []string, stdout, stderr io.Writer) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	return cmd.Run()
}

var defaultExec executor = osExecutor{}

// CommandDownloader fetches by running an external download tool. The
// tool's own output goes to Stdout and Stderr untouched.
type CommandDownloader struct {
	bin  string
	args func(url, destPath string) []string
	exec executor

	Stdout io.Writer
	Stderr io.Writer
}

// NewWget returns a downloader that runs "wget <url> -O <destPath>".
func NewWget(stdout, stderr io.Writer) *CommandDownloader {
	return newWget(defaultExec, stdout, stderr)
}

func newWget(exec executor, stdout, stderr io.Writer) *CommandDownloader {
	return &CommandDownloader{
		bin: "wget",
		args: func(url, destPath string) []string {
			return []string{url, "-O", destPath}
		},
		exec:   exec,
		Stdout: stdout,
		Stderr: stderr,
	}
}

// NewCurl returns a downloader that runs "curl -fL <url> -o <destPath>".
// -f makes HTTP errors a non-zero exit; -L follows redirects as wget does.
func NewCurl(stdout, stderr io.Writer) *CommandDownloader {
	return newCurl(defaultExec, stdout, stderr)
}

func newCurl(exec executor, stdout, stderr io.Writer) *CommandDownloader {
	return &CommandDownloader{
		bin: "curl",
		args: func(url, destPath string) []string {
			return []string{"-fL", url, "-o", destPath}
		},
		exec:   exec,
		Stdout: stdout,
		Stderr: stderr,
	}
}

// Name returns the tool binary name.
func (c *CommandDownloader) Name() string { return c.bin }

// Describe renders the command line Fetch would run.
func (c *CommandDownloader) Describe(url, destPath string) string {
	return c.bin + " " + strings.Join(c.args(url, destPath), " ")
}

// Fetch runs the tool and reports a non-zero exit as an error.
func (c *CommandDownloader) Fetch(ctx context.Context, url, destPath string) error {
	if err := c.exec.Run(ctx, c.bin, c.args(url, destPath), c.Stdout, c.Stderr); err != nil {
		return fmt.Errorf("%s: %w", c.bin, err)
	}
	return nil
}

// CommandDirectoryCreator creates directories with "mkdir -p".
type CommandDirectoryCreator struct {
	exec   executor
	stderr io.Writer
}

// NewMkdir returns a DirectoryCreator that shells out to mkdir -p.
func NewMkdir(stderr io.Writer) *CommandDirectoryCreator {
	return &CommandDirectoryCreator{exec: defaultExec, stderr: stderr}
}

func (m *CommandDirectoryCreator) MkdirAll(dir string) error {
	if err := m.exec.Run(context.Background(), "mkdir", []string{"-p", dir}, io.Discard, m.stderr); err != nil {
		return fmt.Errorf("mkdir -p %s: %w", dir, err)
	}
	return nil
}
