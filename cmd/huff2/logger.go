package main

import "log"

// logger is the driver's one-file wrapper around the standard log package,
// used for per-file progress and error lines during a -r walk. The huff2
// library package itself never logs; only this command does.
type logger interface {
	Infof(format string, v ...any)
	Errorf(format string, v ...any)
}

type stdLogger struct{}

func newLogger() logger { return &stdLogger{} }

func (l *stdLogger) Infof(format string, v ...any)  { log.Printf("[INFO] "+format, v...) }
func (l *stdLogger) Errorf(format string, v ...any) { log.Printf("[ERROR] "+format, v...) }
