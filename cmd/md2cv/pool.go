package main

import (
	"context"
	"fmt"

	md2cv "github.com/alnah/go-md2cv"
)

// CLIConverter is the part of md2cv.Converter the CLI depends on.
type CLIConverter interface {
	Export(ctx context.Context, input md2cv.Input) (*md2cv.Result, error)
}

// Compile-time interface implementation check.
var _ CLIConverter = (*md2cv.Converter)(nil)

// Pool abstracts converter pool operations for testability.
type Pool interface {
	Acquire() (CLIConverter, error)
	Release(CLIConverter)
	Size() int
	Close() error
}

// poolAdapter exposes md2cv.ConverterPool through the Pool interface.
type poolAdapter struct {
	pool *md2cv.ConverterPool
}

// newPool creates a ConverterPool of n converters built with opts.
func newPool(n int, opts ...md2cv.Option) Pool {
	return &poolAdapter{pool: md2cv.NewConverterPool(n, opts...)}
}

// Compile-time check that poolAdapter implements Pool.
var _ Pool = (*poolAdapter)(nil)

func (a *poolAdapter) Acquire() (CLIConverter, error) {
	conv, err := a.pool.Acquire()
	if err != nil {
		return nil, err
	}
	return conv, nil
}

// Release panics if c did not come from this adapter.
func (a *poolAdapter) Release(c CLIConverter) {
	conv, ok := c.(*md2cv.Converter)
	if !ok {
		panic(fmt.Sprintf("poolAdapter.Release: unexpected type %T", c))
	}
	a.pool.Release(conv)
}

func (a *poolAdapter) Size() int { return a.pool.Size() }

func (a *poolAdapter) Close() error { return a.pool.Close() }
