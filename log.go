package coproc

import "github.com/sirupsen/logrus"

// log is the package-level diagnostic logger. Every message mirrors the
// "rt: " prefixed lines the source prints to stdout, routed through
// logrus so callers can redirect, level-filter, or structure them.
var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
}

// SetLogger replaces the package-level logger, e.g. to attach fields
// or redirect output in an embedding application.
func SetLogger(l *logrus.Logger) {
	if l != nil {
		log = l
	}
}

func rtLogf(format string, args ...any) {
	log.Infof("rt: "+format, args...)
}
