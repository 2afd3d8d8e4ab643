// SPDX-License-Identifier: MIT
// Package cliutil holds the plumbing shared by the edgegen commands:
// positional count parsing, seed resolution, progress reporting and
// output-file handling and output-size logging.
package cliutil

import (
	"io"
	"os"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/schollz/progressbar/v3"
	"k8s.io/klog/v2"
)

// ErrBadArgument is returned for positional arguments that are not
// non-negative integers.
var ErrBadArgument = errors.New("invalid argument")

// ParseCounts applies the "[nodes] [edges]" rule: exactly two positional
// arguments override the defaults, any other count keeps them.
func ParseCounts(args []string, defNodes, defEdges int) (nodes, edges int, err error) {
	if len(args) != 2 {
		if len(args) != 0 {
			klog.V(1).Infof("ignoring %d positional argument(s), using defaults nodes=%d edges=%d",
				len(args), defNodes, defEdges)
		}
		return defNodes, defEdges, nil
	}
	if nodes, err = parseCount("nodes", args[0]); err != nil {
		return 0, 0, err
	}
	if edges, err = parseCount("edges", args[1]); err != nil {
		return 0, 0, err
	}
	return nodes, edges, nil
}

func parseCount(name, s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.Wrapf(ErrBadArgument, "%s=%q is not an integer", name, s)
	}
	if v < 0 {
		return 0, errors.Wrapf(ErrBadArgument, "%s=%d is negative", name, v)
	}
	return v, nil
}

// ResolveSeed returns seed unchanged when it is non-negative, otherwise a
// time-based seed. The effective seed is logged at V(1) so any run can be
// replayed with -seed.
func ResolveSeed(seed int64) int64 {
	if seed < 0 {
		seed = time.Now().UnixNano()
	}
	klog.V(1).Infof("using seed %d", seed)
	return seed
}

// Progress reports per-item progress of a long write.
type Progress interface {
	Add(n int)
	Finish()
}

type noProgress struct{}

func (noProgress) Add(int) {}
func (noProgress) Finish() {}

type barProgress struct {
	bar *progressbar.ProgressBar
}

func (p barProgress) Add(n int) { _ = p.bar.Add(n) }
func (p barProgress) Finish()   { _ = p.bar.Finish() }

// NewProgress returns an ASCII progress bar on stderr counting up to total,
// or a no-op when disabled.
func NewProgress(total int, description string, enabled bool) Progress {
	if !enabled {
		return noProgress{}
	}
	return barProgress{bar: progressbar.NewOptions(total,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetTheme(progressbar.ThemeASCII),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)}
}

// LogWritten logs path and its size in human-readable form.
func LogWritten(path string) {
	info, err := os.Stat(path)
	if err != nil {
		klog.Warningf("wrote %s but cannot stat it: %v", path, err)
		return
	}
	klog.Infof("wrote %s (%s)", path, humanize.Bytes(uint64(info.Size())))
}

// WriteOutput runs fn against stdout when path is empty, otherwise against a
// freshly created file at path. A close failure is reported like a write
// failure, unless fn already failed.
func WriteOutput(path string, fn func(io.Writer) error) (err error) {
	if path == "" {
		return fn(os.Stdout)
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %q", path)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrapf(cerr, "close %q", path)
		}
	}()
	return fn(f)
}
