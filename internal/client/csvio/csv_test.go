package csvio

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/walklog/internal/models"
)

func TestRead(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantWalks   int
		wantSkipped int
		wantErr     bool
	}{
		{
			name:      "valid file",
			input:     "Date,Distance,TimeElapsed\n2024-01-01,2.5,30\n2024-01-02,3,45\n",
			wantWalks: 2,
		},
		{
			name:      "blank lines ignored",
			input:     "Date,Distance,TimeElapsed\n\n2024-01-01,2.5,30\n\n",
			wantWalks: 1,
		},
		{
			name:        "malformed rows skipped",
			input:       "Date,Distance,TimeElapsed\n2024-01-01,abc,30\n2024-13-01,1,10\n2024-01-02,1\n2024-01-03,1.2,20\n",
			wantWalks:   1,
			wantSkipped: 3,
		},
		{
			name:        "invalid values skipped",
			input:       "Date,Distance,TimeElapsed\n2024-01-01,-1,30\n2024-01-02,1,0\n2024-01-03,1,15\n",
			wantWalks:   1,
			wantSkipped: 2,
		},
		{
			name:    "header only",
			input:   "Date,Distance,TimeElapsed\n",
			wantErr: true,
		},
		{
			name:    "no valid rows",
			input:   "Date,Distance,TimeElapsed\nfoo,bar,baz\n",
			wantErr: true,
		},
		{
			name:    "empty",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Read(strings.NewReader(tt.input))
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrNoData)
				return
			}
			require.NoError(t, err)
			assert.Len(t, result.Walks, tt.wantWalks)
			assert.Equal(t, tt.wantSkipped, result.Skipped)
		})
	}
}

func TestReadValues(t *testing.T) {
	result, err := Read(strings.NewReader("Date,Distance,TimeElapsed\n 2024-01-05 , 2.25 , 30.6\n"))
	require.NoError(t, err)
	require.Len(t, result.Walks, 1)

	w := result.Walks[0]
	assert.Equal(t, models.Date("2024-01-05"), w.Date)
	assert.InDelta(t, 2.25, w.Distance, 1e-9)
	assert.Equal(t, 31, w.TimeElapsed)
}

func TestWriteThenRead(t *testing.T) {
	walks := []models.Walk{
		{Date: "2024-01-01", Distance: 2.5, TimeElapsed: 30},
		{Date: "2024-01-02", Distance: 3, TimeElapsed: 45},
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, walks))
	assert.Equal(t, "Date,Distance,TimeElapsed\n2024-01-01,2.5,30\n2024-01-02,3,45\n", buf.String())

	result, err := Read(&buf)
	require.NoError(t, err)
	assert.Equal(t, walks, result.Walks)
}

func TestDefaultFileName(t *testing.T) {
	now := time.Date(2024, 3, 9, 15, 0, 0, 0, time.UTC)
	assert.Equal(t, "walking-data-2024-03-09.csv", DefaultFileName(now))
}
