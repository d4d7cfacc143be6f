// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package fetch

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockExecutor records command lines and fails those listed in failCmds.
type mockExecutor struct {
	cmds     []string
	failCmds map[string]bool
}

func (m *mockExecutor) Run(_ context.Context, name string, args []string, _, _ io.Writer) error {
	key := name + " " + strings.Join(args, " ")
	m.cmds = append(m.cmds, key)
	if m.failCmds[key] {
		return errors.New("exit status 4")
	}
	return nil
}

func TestCommandDownloader(t *testing.T) {
	const dest = "/h/OPUS/OPUS-Av1/xml/en-th.xml.gz"
	tests := []struct {
		name    string
		mk      func(executor) *CommandDownloader
		wantCmd string
	}{
		{
			name:    "wget",
			mk:      func(e executor) *CommandDownloader { return newWget(e, nil, nil) },
			wantCmd: "wget " + urlA + " -O " + dest,
		},
		{
			name:    "curl",
			mk:      func(e executor) *CommandDownloader { return newCurl(e, nil, nil) },
			wantCmd: "curl -fL " + urlA + " -o " + dest,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exec := &mockExecutor{}
			d := tt.mk(exec)

			assert.Equal(t, tt.name, d.Name())
			assert.Equal(t, tt.wantCmd, d.Describe(urlA, dest))
			require.NoError(t, d.Fetch(context.Background(), urlA, dest))
			assert.Equal(t, []string{tt.wantCmd}, exec.cmds)
		})
	}
}

func TestCommandDownloader_NonZeroExit(t *testing.T) {
	const dest = "/h/f.gz"
	exec := &mockExecutor{failCmds: map[string]bool{"wget " + urlA + " -O " + dest: true}}

	err := newWget(exec, nil, nil).Fetch(context.Background(), urlA, dest)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "wget")
	assert.Contains(t, err.Error(), "exit status 4")
}

func TestCommandDirectoryCreator(t *testing.T) {
	exec := &mockExecutor{failCmds: map[string]bool{"mkdir -p /root-only": true}}
	m := &CommandDirectoryCreator{exec: exec}

	require.NoError(t, m.MkdirAll("/h/OPUS/OPUS-Av1/xml"))
	err := m.MkdirAll("/root-only")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mkdir -p /root-only")
	assert.Equal(t, []string{"mkdir -p /h/OPUS/OPUS-Av1/xml", "mkdir -p /root-only"}, exec.cmds)
}
