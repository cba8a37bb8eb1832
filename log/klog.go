/*
 * Apache License 2.0
 *
 * Copyright (c) 2022, Austin Zhai
 * All rights reserved.
 */
package log

import (
	"flag"
	"fmt"
	"strconv"
	"sync"

	"k8s.io/klog/v2"
)

var (
	setupOnce sync.Once
	klogFlags = flag.NewFlagSet("klog", flag.ContinueOnError)
)

// Setup registers klog flags on a private flag set, so the command line
// stays untouched, and sets the global verbosity. Output goes to stderr.
func Setup(verbosity int) error {
	setupOnce.Do(func() {
		klog.InitFlags(klogFlags)
	})
	if err := klogFlags.Set("logtostderr", "true"); err != nil {
		return err
	}
	return klogFlags.Set("v", strconv.Itoa(verbosity))
}

func Flush() {
	klog.Flush()
}

type KLog struct {
	verbosities []int // indexed by Level
}

// wraps klog, verbosity defaults follow
// https://github.com/kubernetes/community/blob/master/contributors/devel/sig-instrumentation/logging.md
func NewKLog() *KLog {
	return &KLog{
		verbosities: []int{
			0,
			5, // LevelTrace
			4, // LevelDebug
			3, // LevelInfo
			2, // LevelWarn
			0, // LevelError, printed unconditionally
		},
	}
}

func (log *KLog) SetVerbosity(level Level, verbosity int) {
	if level < LevelTrace || level > LevelWarn {
		return
	}
	log.verbosities[level] = verbosity
}

func (log *KLog) Verbosity(level Level) int {
	if level < LevelTrace || level > LevelError {
		return 0
	}
	return log.verbosities[level]
}

func (log *KLog) Tracef(format string, v ...interface{}) {
	log.infof(LevelTrace, format, v...)
}

func (log *KLog) Debugf(format string, v ...interface{}) {
	log.infof(LevelDebug, format, v...)
}

func (log *KLog) Infof(format string, v ...interface{}) {
	log.infof(LevelInfo, format, v...)
}

func (log *KLog) Warnf(format string, v ...interface{}) {
	log.infof(LevelWarn, format, v...)
}

func (log *KLog) Errorf(format string, v ...interface{}) {
	klog.ErrorDepth(1, fmt.Sprintf(format, v...))
}

func (log *KLog) infof(level Level, format string, v ...interface{}) {
	verbosity := klog.Level(log.verbosities[level])
	if verbose := klog.V(verbosity); verbose.Enabled() {
		klog.InfoDepth(2, fmt.Sprintf(format, v...))
	}
}
