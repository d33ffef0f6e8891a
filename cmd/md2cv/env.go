package main

import (
	"io"
	"os"
	"time"

	"go.uber.org/zap"

	md2cv "github.com/alnah/go-md2cv"
)

// Environment holds injectable dependencies for testability.
type Environment struct {
	Now     func() time.Time
	Stdout  io.Writer
	Stderr  io.Writer
	Logger  *zap.Logger
	NewPool func(n int, opts ...md2cv.Option) Pool
}

// DefaultEnv returns the production environment: real streams, a silent
// logger and a ConverterPool.
func DefaultEnv() *Environment {
	return &Environment{
		Now:     time.Now,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Logger:  zap.NewNop(),
		NewPool: newPool,
	}
}
