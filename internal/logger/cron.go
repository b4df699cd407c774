package logger

import "fmt"

// CronLogger adapts a Logger to the robfig/cron Logger interface.
// Cron's own info messages are noisy (one per tick) and go out at debug level.
type CronLogger struct {
	log       Logger
	component string
}

func NewCronLogger(log Logger, component string) *CronLogger {
	return &CronLogger{log: log, component: component}
}

func (c *CronLogger) Info(msg string, keysAndValues ...interface{}) {
	c.log.Debug(c.component, msg, pairsToFields(keysAndValues))
}

func (c *CronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	c.log.Error(c.component, err, msg, pairsToFields(keysAndValues))
}

func pairsToFields(keysAndValues []interface{}) map[string]interface{} {
	fields := make(map[string]interface{}, len(keysAndValues)/2+1)
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		fields[fmt.Sprint(keysAndValues[i])] = keysAndValues[i+1]
	}
	if len(keysAndValues)%2 == 1 {
		fields["extra"] = keysAndValues[len(keysAndValues)-1]
	}
	return fields
}
