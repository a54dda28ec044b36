package locale

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/ajitpratap0/fakes/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubDataset struct{ tables *Tables }

func (s stubDataset) Tables() *Tables                         { return s.tables }
func (stubDataset) ComposeFullName(last, first string) string { return first + " " + last }
func (stubDataset) ComposeAddress(street, city, state string) string {
	return street + ", " + city + ", " + state
}
func (stubDataset) RenderPostalCode(rng *rand.Rand, _ bool) string {
	return fmt.Sprintf("%05d", rng.IntN(100000))
}
func (stubDataset) RenderDomesticPhone(rng *rand.Rand, _ bool) string {
	return fmt.Sprintf("%010d", rng.Int64N(1e10))
}

func fullTables() *Tables {
	t := Common()
	one := []string{"x"}
	t.Words, t.Sentences, t.Paragraphs = one, one, one
	t.FirstNames, t.LastNames = one, one
	t.CompanySuffixes, t.CompanyNames, t.Industries = one, one, one
	t.Buildings, t.StreetNames, t.CityNames, t.StateNames, t.CountryNames = one, one, one, one, one
	return t
}

func TestRegistryRegisterAndGet(t *testing.T) {
	r := NewRegistry()
	calls := 0
	factory := func() (Dataset, error) {
		calls++
		return stubDataset{tables: fullTables()}, nil
	}

	require.NoError(t, r.Register("tst", factory, "te_ST"))
	assert.True(t, r.Has("tst"))
	assert.True(t, r.Has("te_ST"))
	assert.Equal(t, []string{"tst"}, r.List())
	assert.Equal(t, []string{"te_ST"}, r.Aliases("tst"))

	a, err := r.Get("tst")
	require.NoError(t, err)
	b, err := r.Get("te_ST")
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Equal(t, 1, calls)
}

func TestRegistryDuplicate(t *testing.T) {
	r := NewRegistry()
	factory := func() (Dataset, error) { return stubDataset{tables: fullTables()}, nil }

	require.NoError(t, r.Register("tst", factory, "alias"))
	err := r.Register("tst", factory)
	assert.True(t, errors.IsType(err, errors.ErrorTypeConfig))
	err = r.Register("other", factory, "alias")
	assert.Error(t, err)
}

func TestRegistryUnknown(t *testing.T) {
	_, err := NewRegistry().Get("nowhere")
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeLocale))
}

func TestRegistryRejectsEmptyTables(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register("empty", func() (Dataset, error) {
		return stubDataset{tables: Common()}, nil
	}))

	_, err := r.Get("empty")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "first_names")
}

func TestValidate(t *testing.T) {
	assert.Error(t, Validate(nil))
	assert.Error(t, Validate(stubDataset{}))
	assert.NoError(t, Validate(stubDataset{tables: fullTables()}))
}
