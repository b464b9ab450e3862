// Package log defines the logging interface the connector writes to and a
// few ready adapters. The default is Nop; plug in Default for plain text
// output or Zap to route into an existing zap tree.
package log

// Logger is the minimal leveled logger the connector needs.
type Logger interface {
	Tracef(format string, args ...interface{})
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}
