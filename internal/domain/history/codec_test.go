package history

import (
	"errors"
	"testing"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Line codec: "yyyy/MM/dd HH:mm:ss | message"
// Expectation: every stored line decodes to an entry or is discarded; a bad
// timestamp never loses the message.
// =============================================================================

func TestFormatLine(t *testing.T) {
	ts := time.Date(2024, 3, 5, 8, 15, 30, 0, time.UTC)
	assert.Equal(t, "2024/03/05 08:15:30 | I am hungry", FormatLine(ts, "I am hungry"))
}

func TestParseLine_WellFormed(t *testing.T) {
	e, ok, err := ParseLine("2024/03/05 08:15:30 | I am hungry", time.UTC)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "I am hungry", e.Message)
	assert.Equal(t, time.Date(2024, 3, 5, 8, 15, 30, 0, time.UTC), e.Timestamp)
}

func TestParseLine_RoundTrip(t *testing.T) {
	ts := time.Date(2023, 12, 31, 23, 59, 59, 0, time.UTC)
	e, ok, err := ParseLine(FormatLine(ts, "Happy new year. See you"), time.UTC)
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, ts.Equal(e.Timestamp))
	assert.Equal(t, "Happy new year. See you", e.Message)
}

func TestParseLine_UsesLocation(t *testing.T) {
	loc := time.FixedZone("board", 2*60*60)
	e, ok, err := ParseLine("2024/03/05 08:15:30 | hi", loc)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 8, e.Timestamp.Hour())
	assert.Equal(t, loc, e.Timestamp.Location())
}

func TestParseLine_NoSeparator(t *testing.T) {
	// A line without " | " is a message-only entry, not a warning.
	e, ok, err := ParseLine("just some text", time.UTC)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "just some text", e.Message)
	assert.False(t, e.HasTimestamp())
}

func TestParseLine_BadTimestamp(t *testing.T) {
	e, ok, err := ParseLine("yesterday-ish | I want water", time.UTC)
	require.True(t, ok, "message must survive a bad timestamp")
	assert.Equal(t, "I want water", e.Message)
	assert.False(t, e.HasTimestamp())

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrBadTimestamp))

	var ge *goerr.Error
	require.True(t, errors.As(err, &ge))
	assert.Equal(t, "yesterday-ish", ge.Values()["timestamp"])
}

func TestParseLine_Discarded(t *testing.T) {
	for _, line := range []string{
		"",
		"   ",
		"\t",
		"2024/03/05 08:15:30 | ",
		"2024/03/05 08:15:30 |    ",
		"Message:",
		"Message:   ",
	} {
		_, ok, err := ParseLine(line, time.UTC)
		assert.False(t, ok, "line %q should be discarded", line)
		assert.NoError(t, err, "line %q", line)
	}
}

func TestParseLine_TrimsMessage(t *testing.T) {
	e, ok, err := ParseLine("2024/03/05 08:15:30 |    padded   \r", time.UTC)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "padded", e.Message)
}

func TestParseLine_SeparatorInMessage(t *testing.T) {
	// Only the first separator splits; the rest belongs to the message.
	e, ok, err := ParseLine("2024/03/05 08:15:30 | yes | no", time.UTC)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "yes | no", e.Message)
}

func TestParseLine_LegacyProfileLine(t *testing.T) {
	e, ok, err := ParseLine("Message: I need help", time.UTC)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "I need help", e.Message)
	assert.False(t, e.HasTimestamp())

	// Some profile writers prefixed a timestamp after the key.
	e, ok, err = ParseLine("Message: 2024/03/05 08:15:30 | Good morning", time.UTC)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Good morning", e.Message)
	assert.False(t, e.HasTimestamp())
}
