package circuitbreaker

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		cfg      Config
		wantNil  bool
		wantName string
	}{
		{
			name: "creates circuit breaker when enabled",
			cfg: Config{
				Name:             "authz",
				Enabled:          true,
				MaxRequests:      5,
				Interval:         60 * time.Second,
				Timeout:          30 * time.Second,
				FailureThreshold: 5,
			},
			wantNil:  false,
			wantName: "authz",
		},
		{
			name: "returns nil when disabled",
			cfg: Config{
				Name:    "authz",
				Enabled: false,
			},
			wantNil: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			cb := New[bool](tc.cfg)

			if tc.wantNil {
				require.Nil(t, cb)

				return
			}

			require.NotNil(t, cb)
			require.Equal(t, tc.wantName, cb.Name())
		})
	}
}

func TestExecute_NilBreakerPassesThrough(t *testing.T) {
	t.Parallel()

	result, err := Execute[string](nil, func() (string, error) {
		return "ok", nil
	})

	require.NoError(t, err)
	require.Equal(t, "ok", result)
}

func TestExecute_PropagatesFunctionError(t *testing.T) {
	t.Parallel()

	cb := New[int](Config{
		Name:             "authz",
		Enabled:          true,
		FailureThreshold: 10,
		Timeout:          time.Minute,
	})

	wantErr := errors.New("downstream unavailable")

	_, err := Execute(cb, func() (int, error) {
		return 0, wantErr
	})

	require.ErrorIs(t, err, wantErr)
}

func TestExecute_TripsAfterConsecutiveFailures(t *testing.T) {
	t.Parallel()

	cb := New[int](Config{
		Name:             "authz",
		Enabled:          true,
		FailureThreshold: 2,
		Timeout:          time.Minute,
	})

	fail := func() (int, error) {
		return 0, errors.New("downstream unavailable")
	}

	_, _ = Execute(cb, fail)
	_, _ = Execute(cb, fail)

	_, err := Execute(cb, fail)
	require.ErrorIs(t, err, ErrCircuitOpen)
}
