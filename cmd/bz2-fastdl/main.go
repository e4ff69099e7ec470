// Command bz2-fastdl compresses the FastDL assets under PATH into .bz2
// siblings, skipping any that already have one.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/absfs/fastdl"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	if len(args) != 1 {
		fmt.Fprintln(stderr, "usage: bz2-fastdl PATH")
		return 2
	}

	log := newLogger(stderr)
	defer log.Sync()

	cfg := fastdl.DefaultConfig()
	cfg.Output = stdout
	cfg.Logger = log

	if _, err := fastdl.Run(context.Background(), args[0], cfg); err != nil {
		log.Error("bz2-fastdl failed", zap.Error(err))
		return 1
	}
	return 0
}

// newLogger returns a human-readable logger so stdout carries only progress lines.
func newLogger(w io.Writer) *zap.Logger {
	enc := zap.NewDevelopmentEncoderConfig()
	enc.EncodeLevel = zapcore.CapitalLevelEncoder
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(enc), zapcore.AddSync(w), zapcore.InfoLevel)
	return zap.New(core)
}
