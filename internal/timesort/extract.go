package timesort

import (
	"regexp"
	"strconv"

	"github.com/shinji-kodama/timelist-sorter/internal/model"
)

// timePattern matches "1-2 digits, colon, exactly 2 digits". It is not
// anchored, so "123:45" yields "23:45" and "9:055" yields "9:05".
var timePattern = regexp.MustCompile(`(\d{1,2}):(\d{2})`)

// ExtractTime returns the time of the first HH:MM token in text.
//
// Only the leftmost match is considered. If it is out of range (hour > 23 or
// minute > 59) the result is Unknown even when a later token on the same
// line would be valid:
//
//	ExtractTime("Meeting at 9:05am, then 14:30") → 09:05
//	ExtractTime("25:61 then 10:00")              → Unknown
func ExtractTime(text string) model.TimeOfDay {
	m := timePattern.FindStringSubmatch(text)
	if m == nil {
		return model.Unknown
	}

	// The pattern guarantees ASCII digits, so Atoi cannot fail here.
	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])

	tod, err := model.At(hour, minute)
	if err != nil {
		return model.Unknown
	}
	return tod
}

// ExtractTimeInMinutes is ExtractTime in integer form: the minute of day
// (0-1439), or model.UnknownMinutes (-1).
func ExtractTimeInMinutes(text string) int {
	return ExtractTime(text).Int()
}
