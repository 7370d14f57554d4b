package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		explicit    Direction
		entry, exit float64
		wantDir     Direction
		wantSrc     Source
	}{
		{"explicit_long_losing", Long, 100, 90, Long, Explicit},
		{"explicit_short_losing", Short, 100, 110, Short, Explicit},
		{"inferred_long", "", 100, 110, Long, Inferred},
		{"inferred_short", "", 100, 90, Short, Inferred},
		{"flat_is_short", "", 100, 100, Short, Inferred},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			dir, src := Resolve(tt.explicit, tt.entry, tt.exit)
			assert.Equal(t, tt.wantDir, dir)
			assert.Equal(t, tt.wantSrc, src)
		})
	}
}

func TestDirectionSign(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1.0, Long.Sign())
	assert.Equal(t, -1.0, Short.Sign())
	assert.Zero(t, Direction("").Sign())
}

func TestDirectionValid(t *testing.T) {
	t.Parallel()

	assert.True(t, Long.Valid())
	assert.True(t, Short.Valid())
	assert.False(t, Direction("").Valid())
	assert.False(t, Direction("BUY").Valid())
}

func TestParseDirection(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		raw     string
		want    Direction
		wantErr bool
	}{
		{"long_lower", "long", Long, false},
		{"short_upper", "SHORT", Short, false},
		{"padded", " Long ", Long, false},
		{"empty_means_infer", "", "", false},
		{"garbage", "buy", "", true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseDirection(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSourceString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "EXPLICIT", Explicit.String())
	assert.Equal(t, "INFERRED", Inferred.String())
	assert.Equal(t, "UNKNOWN", Source(7).String())
}
