package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvelope_Result(t *testing.T) {
	n := 3
	ok := &Envelope[int]{Status: "success", Data: &n}
	v, err := ok.Result("fallback")
	require.NoError(t, err)
	assert.Equal(t, 3, v)

	tests := []struct {
		name string
		env  *Envelope[int]
		want string
	}{
		{"message wins", &Envelope[int]{Status: "error", Message: "m", Error: "e"}, "m"},
		{"error text", &Envelope[int]{Status: "error", Error: "e"}, "e"},
		{"fallback", &Envelope[int]{Status: "error"}, "Failed to fetch"},
		{"success without data", &Envelope[int]{Status: "success"}, "Failed to fetch"},
		{"nil envelope", nil, "Failed to fetch"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.env.Result("Failed to fetch")
			require.ErrorIs(t, err, ErrRejected)
			assert.EqualError(t, err, tt.want)
		})
	}
}

func TestEnvelope_Check(t *testing.T) {
	require.NoError(t, (&Envelope[Empty]{Status: "success"}).Check("x"))
	assert.EqualError(t, (&Envelope[Empty]{Status: "fail"}).Check("Failed to delete admin"), "Failed to delete admin")
}
