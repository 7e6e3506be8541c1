package model

import "fmt"

const (
	minutesPerHour = 60
	minutesPerDay  = 24 * minutesPerHour
)

// MinuteCounter is a duration in whole minutes as shown by the router,
// either counting up (uptime) or down (lease).
type MinuteCounter struct {
	Countdown bool   `json:"countdown"`
	Minutes   uint64 `json:"minutes"`
}

func NewMinuteCounter(days, hours, minutes uint64, countdown bool) MinuteCounter {
	return MinuteCounter{
		Countdown: countdown,
		Minutes:   days*minutesPerDay + hours*minutesPerHour + minutes,
	}
}

// String renders the counter in the router's "<d> day <h> hour <m> minute" form.
func (m MinuteCounter) String() string {
	return fmt.Sprintf("%d day %d hour %d minute",
		m.Minutes/minutesPerDay,
		(m.Minutes%minutesPerDay)/minutesPerHour,
		m.Minutes%minutesPerHour,
	)
}
