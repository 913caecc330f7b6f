package domain_test

import (
	"testing"
	"time"

	"github.com/snobb/imk/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKillTimeoutFromMillis(t *testing.T) {
	d, err := domain.KillTimeoutFromMillis(1500)
	require.NoError(t, err)
	assert.Equal(t, 1500*time.Millisecond, d)

	d, err = domain.KillTimeoutFromMillis(domain.MaxKillTimeoutMillis)
	require.NoError(t, err)
	assert.Positive(t, d)

	_, err = domain.KillTimeoutFromMillis(domain.MaxKillTimeoutMillis + 1)
	require.ErrorContains(t, err, domain.ErrDurationOutOfRange.Error())

	_, err = domain.KillTimeoutFromMillis(18446744073710)
	require.ErrorContains(t, err, domain.ErrDurationOutOfRange.Error())
}

func TestThresholdFromSeconds(t *testing.T) {
	d, err := domain.ThresholdFromSeconds(3)
	require.NoError(t, err)
	assert.Equal(t, 3*time.Second, d)

	d, err = domain.ThresholdFromSeconds(domain.MaxThresholdSeconds)
	require.NoError(t, err)
	assert.Positive(t, d)

	_, err = domain.ThresholdFromSeconds(domain.MaxThresholdSeconds + 1)
	require.ErrorContains(t, err, domain.ErrDurationOutOfRange.Error())
}
