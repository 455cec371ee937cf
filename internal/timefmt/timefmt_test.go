package timefmt_test

import (
	"testing"
	"time"

	"github.com/okrause/storyline/internal/timefmt"
	"github.com/stretchr/testify/require"
)

func TestFormatter_Display(t *testing.T) {
	f := timefmt.InLocation(time.UTC)

	ts := time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC)
	require.Equal(t, "2024-03-15 09:30", f.Display(&ts))
	require.Equal(t, "", f.Display(nil))
}

func TestFormatter_Localizes(t *testing.T) {
	f, err := timefmt.New("America/New_York")
	require.NoError(t, err)

	ts := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	require.Equal(t, "2024-03-15 08:00", f.Display(&ts))
}

func TestNew_UnknownLocation(t *testing.T) {
	_, err := timefmt.New("Nowhere/Invalid")
	require.Error(t, err)
}
