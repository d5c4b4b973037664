// Package log provides the logrus entry used across ghaup.
package log

import (
	"github.com/sirupsen/logrus"
)

func New(version string) *logrus.Entry {
	return logrus.NewEntry(logrus.New()).WithFields(logrus.Fields{
		"program": "ghaup",
		"version": version,
	})
}
