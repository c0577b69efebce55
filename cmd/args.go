package cmd

import (
	"math"
	"strings"
	"time"
)

// DefaultSleep is how long the reservation is held when no sleep time is
// given.
const DefaultSleep = 30 * time.Second

const maxSleepSeconds = int64(math.MaxInt64 / int64(time.Second))

// parseCount reads the leading decimal integer of s, skipping leading
// whitespace and allowing a sign. Anything after the digits is ignored and a
// string without digits reads as 0. Negative values clamp to 0 and values that
// overflow saturate at math.MaxInt64.
func parseCount(s string) int64 {
	s = strings.TrimLeft(s, " \t\n\v\f\r")

	negative := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		negative = s[0] == '-'
		s = s[1:]
	}

	var n int64
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			break
		}

		d := int64(c - '0')
		if n > (math.MaxInt64-d)/10 {
			n = math.MaxInt64
			break
		}

		n = n*10 + d
	}

	if negative {
		return 0
	}

	return n
}

// parseArgs returns the number of chunks to reserve and how long to sleep
// afterwards. Arguments past the second are ignored.
func parseArgs(args []string) (chunks int, sleep time.Duration) {
	sleep = DefaultSleep

	if len(args) > 0 {
		c := parseCount(args[0])
		if c > math.MaxInt {
			c = math.MaxInt
		}

		chunks = int(c)
	}

	if len(args) > 1 {
		secs := parseCount(args[1])
		if secs > maxSleepSeconds {
			secs = maxSleepSeconds
		}

		sleep = time.Duration(secs) * time.Second
	}

	return chunks, sleep
}
