package parse

import (
	"math"
	"regexp"
	"strconv"

	"github.com/swoga/huawei-exporter/model"
)

var durationRegexp = regexp.MustCompile(`(?P<day>\d+) day (?P<hour>\d+) hour (?P<minute>\d+) minute`)

// Minutes parses the "<d> day <h> hour <m> minute" text of the device list.
// It returns nil if the text does not match or a component overflows.
func Minutes(text string, countdown bool) *model.MinuteCounter {
	match := durationRegexp.FindStringSubmatch(text)
	if match == nil {
		return nil
	}

	var components [3]uint64
	for i, name := range []string{"day", "hour", "minute"} {
		value, err := strconv.ParseUint(match[durationRegexp.SubexpIndex(name)], 10, 64)
		if err != nil {
			return nil
		}
		components[i] = value
	}
	days, hours, minutes := components[0], components[1], components[2]

	if days > math.MaxUint64/(24*60) || hours > math.MaxUint64/60 {
		return nil
	}
	total := days*24*60 + hours*60
	if total < days*24*60 || total > math.MaxUint64-minutes {
		return nil
	}

	counter := model.NewMinuteCounter(days, hours, minutes, countdown)
	return &counter
}
