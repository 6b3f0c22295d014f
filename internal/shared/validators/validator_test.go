package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Inner sampleInner `mapstructure:"inner"`
}

type sampleInner struct {
	Every int `mapstructure:"every" validate:"min=1"`
	NoTag int `validate:"min=1"`
}

func TestNew_UsesMapstructureNames(t *testing.T) {
	err := New().Struct(&sample{})
	require.Error(t, err)

	ve, ok := err.(ValidationErrors)
	require.True(t, ok)
	require.Len(t, ve, 2)

	assert.Equal(t, "sample.inner.every", ve[0].Namespace())
	assert.Equal(t, "sample.inner.NoTag", ve[1].Namespace())
}
