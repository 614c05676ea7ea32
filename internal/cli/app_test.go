package cli

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"tasklists/internal/api"
	"tasklists/internal/config"
	"tasklists/internal/repository/sqlite"
	"tasklists/internal/services"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// testEnv runs commands against one in-memory database shared across calls
type testEnv struct {
	t         *testing.T
	api       api.API
	container *services.ServiceContainer
	cfg       *config.Config
	out       bytes.Buffer
	errOut    bytes.Buffer
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	repo, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	cfg := config.NewConfig()
	container := services.NewServiceContainer(repo, cfg)
	return &testEnv{t: t, api: api.New(container, cfg), container: container, cfg: cfg}
}

func (e *testEnv) factory(ctx context.Context, cfg *config.Config) (api.API, io.Closer, error) {
	return e.api, nopCloser{}, nil
}

// run executes tl with args and stdin, returning stdout of this call
func (e *testEnv) run(stdin string, args ...string) (string, error) {
	e.t.Helper()
	e.out.Reset()
	e.errOut.Reset()

	root := NewRootCommand(e.cfg, e.factory)
	cmd := root.Command()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&e.out)
	cmd.SetErr(&e.errOut)

	err := root.Execute()
	return e.out.String(), err
}

func (e *testEnv) mustRun(args ...string) string {
	e.t.Helper()
	out, err := e.run("", args...)
	require.NoError(e.t, err, "tl %s", strings.Join(args, " "))
	return out
}

// seed creates list Home with current=[A, B] and completed=[C]
func (e *testEnv) seed() {
	e.t.Helper()
	e.mustRun("new-list", "Home")
	e.mustRun("add", "Home", "A")
	e.mustRun("add", "Home", "B")
	e.mustRun("add", "Home", "C")
	e.mustRun("done", "Home", "current", "2")
}
