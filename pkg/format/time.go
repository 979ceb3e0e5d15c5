// Package format holds small display formatters used by the rendering layer.
package format

import "strconv"

// TimeDisplay renders an hour/minute pair in the site's 12-hour style:
// no leading zero on the hour, minutes only when non-zero, lowercase
// am/pm suffix. Hours 0 and 12 both display as "12".
//
//	TimeDisplay(9, 0)   => "9am"
//	TimeDisplay(13, 5)  => "1.5pm"
//	TimeDisplay(23, 45) => "11.45pm"
func TimeDisplay(hour, minute int) string {
	suffix := "am"
	if hour >= 12 {
		suffix = "pm"
		hour -= 12
	}
	if hour == 0 {
		hour = 12
	}

	s := strconv.Itoa(hour)
	if minute != 0 {
		s += "." + strconv.Itoa(minute)
	}
	return s + suffix
}
