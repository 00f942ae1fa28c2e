package domain_test

import (
	"testing"

	"github.com/aretw0/doro/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePetState(t *testing.T) {
	tests := []struct {
		in   string
		want domain.PetState
	}{
		{"IDLE", domain.StateIdle},
		{"clicked", domain.StateClicked},
		{" Dragging ", domain.StateDragging},
		{"random-move", domain.StateRandomMove},
		{"RANDOM_MOVE", domain.StateRandomMove},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := domain.ParsePetState(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := domain.ParsePetState("sleeping")
	assert.ErrorIs(t, err, domain.ErrUnknownState)
}

func TestPetState_StringAndValid(t *testing.T) {
	for _, s := range domain.States {
		assert.True(t, s.Valid())
		back, err := domain.ParsePetState(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, back)
	}

	bogus := domain.PetState(42)
	assert.False(t, bogus.Valid())
	assert.Equal(t, "PetState(42)", bogus.String())

	_, err := bogus.MarshalText()
	assert.ErrorIs(t, err, domain.ErrUnknownState)
}

func TestParseButton(t *testing.T) {
	b, err := domain.ParseButton("")
	require.NoError(t, err)
	assert.Equal(t, domain.ButtonLeft, b)

	b, err = domain.ParseButton("Right")
	require.NoError(t, err)
	assert.Equal(t, domain.ButtonRight, b)

	_, err = domain.ParseButton("thumb")
	assert.Error(t, err)
}

func TestLookupTheme_FallsBackToPink(t *testing.T) {
	assert.Equal(t, "#4169E1", domain.LookupTheme("blue").Primary)
	assert.Equal(t, domain.DefaultTheme, domain.LookupTheme("neon").Name)
	assert.Len(t, domain.ThemeNames(), 5)
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		asset string
		want  domain.AssetKind
		ok    bool
	}{
		{"/assets/Idle/idle_1.gif", domain.KindAnimation, true},
		{"Click/boop.PNG", domain.KindAnimation, true},
		{"DoubleClick/song.WAV", domain.KindAudio, true},
		{"notes.txt", domain.KindAnimation, false},
		{"noext", domain.KindAnimation, false},
	}
	for _, tt := range tests {
		t.Run(tt.asset, func(t *testing.T) {
			got, ok := domain.KindOf(tt.asset)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
