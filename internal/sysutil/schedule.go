package sysutil

import (
	"fmt"

	"github.com/robfig/cron/v3"
)

// CronParser accepts five-field specs and descriptors such as @hourly. The
// cleanup janitor schedules with it and config validates against it.
var CronParser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)

// ValidateSchedule reports whether spec parses with CronParser.
func ValidateSchedule(spec string) error {
	if _, err := CronParser.Parse(spec); err != nil {
		return fmt.Errorf("invalid cron schedule %q: %w", spec, err)
	}
	return nil
}
