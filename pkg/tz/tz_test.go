package tz

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestClock(t *testing.T) {
	req := require.New(t)
	loc, err := Load("UTC")
	req.NoError(err)

	at := time.Date(2024, 3, 9, 7, 5, 3, 0, time.UTC)
	req.Equal("07:05:03", Clock(at, loc))
}

func TestClock_ConvertsToLocation(t *testing.T) {
	req := require.New(t)
	loc := time.FixedZone("BRT", -3*60*60)

	at := time.Date(2024, 3, 9, 1, 0, 0, 0, time.UTC)
	req.Equal("22:00:00", Clock(at, loc))
}

func TestLoad(t *testing.T) {
	req := require.New(t)

	loc, err := Load("")
	req.NoError(err)
	req.Equal(time.Local, loc)

	_, err = Load("Not/AZone")
	req.Error(err)
}
