package japan

import (
	"math/rand/v2"
	"regexp"
	"strings"
	"testing"

	"github.com/ajitpratap0/fakes/pkg/locale"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistered(t *testing.T) {
	assert.True(t, locale.Has(ID))
	assert.True(t, locale.Has("ja_JP"))

	ds, err := locale.Get("ja_JP")
	require.NoError(t, err)
	require.NoError(t, locale.Validate(ds))
	assert.Len(t, ds.Tables().StateNames, 47)
}

func TestComposition(t *testing.T) {
	ds, err := New()
	require.NoError(t, err)

	assert.Equal(t, "山田太郎", ds.ComposeFullName("山田", "太郎"))
	assert.Equal(t, "東京都新宿区本町1-2-3", ds.ComposeAddress("本町1-2-3", "新宿区", "東京都"))
}

func TestRenderPatterns(t *testing.T) {
	ds, err := New()
	require.NoError(t, err)
	rng := rand.New(rand.NewPCG(1, 2))

	zip := regexp.MustCompile(`^\d{3}-\d{4}$`)
	phone := regexp.MustCompile(`^\d{2}-\d{3}-\d{4}$`)
	digits := regexp.MustCompile(`^\d+$`)
	for i := 0; i < 200; i++ {
		assert.Regexp(t, zip, ds.RenderPostalCode(rng, true))
		assert.Regexp(t, phone, ds.RenderDomesticPhone(rng, true))

		plainZip := ds.RenderPostalCode(rng, false)
		assert.Len(t, plainZip, 7)
		assert.Regexp(t, digits, plainZip)
		assert.Len(t, ds.RenderDomesticPhone(rng, false), 9)
	}
}

func TestNameTablesCarryFurigana(t *testing.T) {
	for _, entry := range append(append([]string{}, firstNames...), lastNames...) {
		name, reading, ok := strings.Cut(entry, ":")
		assert.True(t, ok, entry)
		assert.NotEmpty(t, name)
		assert.NotEmpty(t, reading)
	}
}
