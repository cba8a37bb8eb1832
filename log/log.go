/*
 * Apache License 2.0
 *
 * Copyright (c) 2022, Austin Zhai
 * All rights reserved.
 */
package log

type Level int

const (
	LevelTrace Level = iota + 1
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
)

type Logger interface {
	Tracef(format string, v ...interface{})
	Debugf(format string, v ...interface{})
	Infof(format string, v ...interface{})
	Warnf(format string, v ...interface{})
	Errorf(format string, v ...interface{})
}

var DefaultLog Logger = NewKLog()

// SetLog replaces the package level logger, nil is ignored.
func SetLog(logger Logger) {
	if logger == nil {
		return
	}
	DefaultLog = logger
}

func Tracef(format string, v ...interface{}) {
	DefaultLog.Tracef(format, v...)
}

func Debugf(format string, v ...interface{}) {
	DefaultLog.Debugf(format, v...)
}

func Infof(format string, v ...interface{}) {
	DefaultLog.Infof(format, v...)
}

func Warnf(format string, v ...interface{}) {
	DefaultLog.Warnf(format, v...)
}

func Errorf(format string, v ...interface{}) {
	DefaultLog.Errorf(format, v...)
}
