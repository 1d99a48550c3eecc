package resume

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate_MonthYear(t *testing.T) {
	d, err := parseDate("01/2020", "test date")
	require.NoError(t, err)
	assert.Equal(t, Date{Year: 2020, Month: time.January}, d)
	assert.Equal(t, "01/2020", d.String())
}

func TestParseDate_ISO(t *testing.T) {
	d, err := parseDate("2022-05-01", "test date")
	require.NoError(t, err)
	assert.Equal(t, Date{Year: 2022, Month: time.May, Day: 1}, d)
	assert.Equal(t, "2022-05-01", d.String())
}

func TestParseDate_EmptyIsAbsent(t *testing.T) {
	d, err := parseDate("", "test date")
	require.NoError(t, err)
	assert.True(t, d.IsZero())
	assert.Equal(t, "", d.String())
}

func TestParseDate_Invalid(t *testing.T) {
	_, err := parseDate("Spring 2020", "Degree #1 start date")
	var dateErr *DateFormatError
	require.ErrorAs(t, err, &dateErr)
	assert.Equal(t, "Spring 2020", dateErr.Literal)
	assert.Contains(t, dateErr.Error(), "Degree #1 start date")
}

func TestDate_StringRoundTrip(t *testing.T) {
	for _, literal := range []string{"01/2020", "12/1999", "2023-11-30"} {
		d, err := parseDate(literal, "test date")
		require.NoError(t, err)

		again, err := parseDate(d.String(), "test date")
		require.NoError(t, err)
		assert.Equal(t, d, again)
	}
}
