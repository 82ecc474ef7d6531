package goose

import (
	"context"
	"io"
	"os"
)

type ctxPipelineKey struct{}

type pipeline struct {
	stdin      io.Reader
	stdout     io.Writer
	stderr     io.Writer
	isPipeline bool
}

func pipelineFromFiles(stdin, stdout, stderr *os.File) pipeline {
	return pipeline{
		stdin:      stdin,
		stdout:     stdout,
		stderr:     stderr,
		isPipeline: isPipeline(stdin),
	}
}

func withPipelines(ctx context.Context, p pipeline) context.Context {
	return context.WithValue(ctx, ctxPipelineKey{}, p)
}

// WithStreams attaches arbitrary streams instead of process files. Input is
// treated as a pipeline unless it is a terminal file.
func WithStreams(ctx context.Context, stdin io.Reader, stdout, stderr io.Writer) context.Context {
	p := pipeline{
		stdin:      stdin,
		stdout:     stdout,
		stderr:     stderr,
		isPipeline: true,
	}
	if f, ok := stdin.(*os.File); ok {
		p.isPipeline = isPipeline(f)
	}

	return withPipelines(ctx, p)
}

func pipelineFromContext(ctx context.Context) pipeline {
	if p, ok := ctx.Value(ctxPipelineKey{}).(pipeline); ok {
		return p
	}

	return pipelineFromFiles(os.Stdin, os.Stdout, os.Stderr)
}

// isPipeline reports whether input is anything but a character device. Files
// which can't be inspected are read as usual.
func isPipeline(in *os.File) bool {
	stat, err := in.Stat()
	if err != nil {
		return true
	}

	return stat.Mode()&os.ModeCharDevice == 0
}
