package gst

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gstbill/internal/domain"
)

func TestResolveIntraState(t *testing.T) {
	j, err := Resolve("Maharashtra", "Maharashtra")
	require.NoError(t, err)
	assert.Equal(t, IntraState, j)
}

func TestResolveInterState(t *testing.T) {
	j, err := Resolve("Karnataka", "Maharashtra")
	require.NoError(t, err)
	assert.Equal(t, InterState, j)
}

func TestResolveNormalizesCaseAndWhitespace(t *testing.T) {
	cases := []struct {
		name   string
		buyer  string
		seller string
		want   Jurisdiction
	}{
		{"case insensitive", "maharashtra", "MAHARASHTRA", IntraState},
		{"trailing space", "Maharashtra ", "Maharashtra", IntraState},
		{"interior whitespace", "Tamil  Nadu", "Tamil Nadu", IntraState},
		{"different states", "tamil nadu", "Kerala", InterState},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			j, err := Resolve(tc.buyer, tc.seller)
			require.NoError(t, err)
			assert.Equal(t, tc.want, j)
		})
	}
}

func TestResolveBlankStateRejected(t *testing.T) {
	_, err := Resolve("", "Maharashtra")
	require.Error(t, err)
	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "customer_state", ve.Field)

	_, err = Resolve("Maharashtra", "   ")
	require.Error(t, err)
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "seller_state", ve.Field)
}
