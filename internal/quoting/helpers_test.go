package quoting_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func mustDate(t *testing.T, value string) time.Time {
	date, err := time.Parse(time.DateOnly, value)
	require.NoError(t, err)
	return date
}
