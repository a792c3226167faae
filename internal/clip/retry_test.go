package clip

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRetry_Do(t *testing.T) {
	tests := []struct {
		name      string
		attempts  int
		failures  int
		wantCalls int
		wantErr   bool
	}{
		{"first try", 10, 0, 1, false},
		{"nine failures then success", 10, 9, 10, false},
		{"ten failures", 10, 10, 10, true},
		{"zero attempts still tries once", 0, 0, 1, false},
		{"single attempt does not sleep", 1, 5, 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var sleeps []time.Duration
			r := Retry{
				Attempts: tt.attempts,
				Delay:    7 * time.Millisecond,
				Sleep:    func(d time.Duration) { sleeps = append(sleeps, d) },
			}

			calls := 0
			err := r.Do(func() error {
				calls++
				if calls <= tt.failures {
					return fmt.Errorf("busy %d", calls)
				}
				return nil
			})

			assert.Equal(t, tt.wantCalls, calls)
			assert.Len(t, sleeps, tt.wantCalls-1)
			if tt.wantErr {
				assert.EqualError(t, err, fmt.Sprintf("busy %d", calls), "the last error is returned")
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRetry_DoDefaultSleep(t *testing.T) {
	r := Retry{Attempts: 2, Delay: time.Millisecond}
	start := time.Now()

	err := r.Do(func() error { return errors.New("busy") })

	assert.Error(t, err)
	assert.GreaterOrEqual(t, time.Since(start), time.Millisecond)
}
