package main

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/klauspost/cpuid/v2"

	"github.com/nekronos/swr"
)

// FPSLogger appends framerate samples to a file keyed by the CPU the run
// happened on and the render mode it measured, so runs on different
// machines never mix.
type FPSLogger struct {
	file *os.File
	last float64
}

func NewFPSLogger(directory string, mode swr.RenderMode) (*FPSLogger, error) {
	dir := filepath.Join(directory, cpuid.CPU.BrandName, mode.String())
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return nil, err
	}

	file, err := os.OpenFile(filepath.Join(dir, "fps.txt"), os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		return nil, err
	}
	return &FPSLogger{file: file}, nil
}

// Log records a sample, skipping startup zeros and repeats of the
// previous value.
func (l *FPSLogger) Log(framerate float64) {
	if math.Floor(framerate) <= 0 || framerate == l.last {
		return
	}
	l.last = framerate
	fmt.Fprintln(l.file, framerate)
}

func (l *FPSLogger) Close() error {
	return l.file.Close()
}
