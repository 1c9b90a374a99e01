package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEnvelope_Unwrap_Success(t *testing.T) {
	raw := `{"result":{"isSuccess":true,"value":{"id":"s1","name":"Cat","breedCount":3}},"errors":[]}`

	var env Envelope[Species]
	require.NoError(t, json.Unmarshal([]byte(raw), &env))

	v, err := env.Unwrap()
	require.NoError(t, err)
	require.Equal(t, "Cat", v.Name)
	require.Equal(t, 3, v.BreedCount)
}

func TestEnvelope_Unwrap_Errors(t *testing.T) {
	raw := `{"result":null,"errors":[{"errorMessage":"species not found"},{"errorMessage":"try again"}]}`

	var env Envelope[Species]
	require.NoError(t, json.Unmarshal([]byte(raw), &env))

	_, err := env.Unwrap()
	require.Error(t, err)

	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	require.Len(t, apiErr.Errors, 2)
	require.Equal(t, "species not found; try again", apiErr.Error())
}

func TestEnvelope_Unwrap_NeitherResultNorErrors(t *testing.T) {
	var env Envelope[Species]

	_, err := env.Unwrap()
	require.Error(t, err)
	require.IsType(t, &APIError{}, err)
}

func TestEnvelope_Unwrap_BothPopulated(t *testing.T) {
	// A response violating the exactly-one-of invariant is treated as a failure.
	env := Envelope[string]{
		Result: &Result[string]{IsSuccess: true, Value: "x"},
		Errors: []ErrorDescriptor{{ErrorMessage: "conflict"}},
	}

	_, err := env.Unwrap()
	require.Error(t, err)
}

func TestEnvelope_Unwrap_NotSuccessful(t *testing.T) {
	env := Envelope[string]{Result: &Result[string]{IsSuccess: false}}

	_, err := env.Unwrap()
	require.Error(t, err)
}

func TestTotalPagesFor(t *testing.T) {
	tests := []struct {
		total, size, want int
	}{
		{25, 10, 3},
		{30, 10, 3},
		{1, 10, 1},
		{0, 10, 0},
		{7, 4, 2},
		{8, 8, 1},
		{9, 8, 2},
		{10, 0, 0},
	}
	for _, tc := range tests {
		require.Equal(t, tc.want, TotalPagesFor(tc.total, tc.size),
			"totalCount=%d pageSize=%d", tc.total, tc.size)
	}
}
