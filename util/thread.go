package util

import (
	"context"
	"io"
	"os"

	"github.com/pgavlin/starlark-go/starlark"
)

// Thread-local keys used by the builtins.
const (
	localWD      = "wd"
	localContext = "context"
	localStdout  = "stdout"
	localStderr  = "stderr"
)

// Chdir sets the working directory used by builtins that run commands on behalf of the thread.
func Chdir(thread *starlark.Thread, wd string) {
	thread.SetLocal(localWD, wd)
}

// Getwd returns the thread's working directory, falling back to the process working directory.
func Getwd(thread *starlark.Thread) string {
	if wd, ok := thread.Local(localWD).(string); ok {
		return wd
	}
	wd, _ := os.Getwd()
	return wd
}

// SetContext binds ctx to the thread and cancels the thread when ctx is done. The returned function must be called
// once the thread has finished executing.
func SetContext(ctx context.Context, thread *starlark.Thread) (done func()) {
	thread.SetLocal(localContext, ctx)

	stop := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
			thread.Cancel(context.Cause(ctx).Error())
		case <-stop:
		}
	}()
	return func() { close(stop) }
}

func GetContext(thread *starlark.Thread) context.Context {
	if ctx, ok := thread.Local(localContext).(context.Context); ok {
		return ctx
	}
	return context.Background()
}

// SetStdio sets the writers that receive the output of commands run by the thread.
func SetStdio(thread *starlark.Thread, stdout, stderr io.Writer) {
	thread.SetLocal(localStdout, stdout)
	thread.SetLocal(localStderr, stderr)
}

// Stdio returns the thread's output writers. Unset writers default to the process's.
func Stdio(thread *starlark.Thread) (stdout io.Writer, stderr io.Writer) {
	stdout, ok := thread.Local(localStdout).(io.Writer)
	if !ok {
		stdout = os.Stdout
	}
	stderr, ok = thread.Local(localStderr).(io.Writer)
	if !ok {
		stderr = os.Stderr
	}
	return stdout, stderr
}
