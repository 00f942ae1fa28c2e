package memory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/doro/pkg/adapters/memory"
	"github.com/aretw0/doro/pkg/domain"
	contract "github.com/aretw0/doro/pkg/ports/tests"
)

func TestInMemoryResources_Contract(t *testing.T) {
	data := map[string][]string{
		"Idle":  {"idle_1.gif", "idle_2.gif"},
		"Click": {"click.gif"},
	}
	contract.ResourceProviderContractTest(t, memory.NewResources(data), data)
}

func TestInMemoryResources_SetAndKeys(t *testing.T) {
	r := memory.NewResources(nil)
	r.Set("Move", "walk.gif")
	r.Set("Idle", "a.gif")
	assert.Equal(t, []string{"Idle", "Move"}, r.Keys())

	r.Set("Move")
	assert.Nil(t, r.Assets("Move"))
}

func TestRecorder(t *testing.T) {
	rec := memory.NewRecorder("broken.gif")

	require.NoError(t, rec.PlayAnimation("ok.gif", true))
	err := rec.PlayAnimation("broken.gif", false)
	require.ErrorIs(t, err, domain.ErrResourceMissing)

	asset, mirror := rec.Animation()
	assert.Equal(t, "ok.gif", asset)
	assert.True(t, mirror)

	require.NoError(t, rec.PlayAudio("beep.wav"))
	assert.Equal(t, "beep.wav", rec.Audio())
	rec.StopAudio()
	assert.Empty(t, rec.Audio())
	assert.Equal(t, 1, rec.Stops())

	rec.RequestMove(3, 4)
	rec.RequestMove(-1, 0)
	x, y := rec.Offset()
	assert.Equal(t, 2, x)
	assert.Equal(t, 4, y)
}
