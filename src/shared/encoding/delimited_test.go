package encoding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJoinStrings(t *testing.T) {
	t.Parallel()

	out, err := JoinStrings([]string{"M1", "M2", "M1"})
	require.NoError(t, err)
	assert.Equal(t, `M1\M2\M1`, out)

	out, err = JoinStrings(nil)
	require.NoError(t, err)
	assert.Equal(t, "", out)

	// Sin escape: el separador dentro de un valor se rechaza
	_, err = JoinStrings([]string{"M1", `M\2`})
	assert.ErrorIs(t, err, ErrSeparatorInValue)
}

func TestSplitStrings(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"M1", "M2", "M1"}, SplitStrings(`M1\M2\M1`))
	assert.Equal(t, []string{"M1"}, SplitStrings("M1"))
	assert.Nil(t, SplitStrings(""))

	// Los espacios alrededor de cada entrada se descartan
	assert.Equal(t, []string{"M1", "M2"}, SplitStrings(`M1 \ M2`))
}

func TestJoinInts(t *testing.T) {
	t.Parallel()

	assert.Equal(t, `11\12\13`, JoinInts([]int{11, 12, 13}))
	assert.Equal(t, "", JoinInts(nil))
	assert.Equal(t, "7", JoinInts([]int{7}))
}

func TestSplitInts(t *testing.T) {
	t.Parallel()

	ids, bad := SplitInts(`11\12\13`)
	assert.Equal(t, []int{11, 12, 13}, ids)
	assert.Empty(t, bad)

	// Las entradas no numéricas se devuelven aparte sin abortar
	ids, bad = SplitInts(`11\x\13`)
	assert.Equal(t, []int{11, 13}, ids)
	assert.Equal(t, []string{"x"}, bad)

	ids, bad = SplitInts("")
	assert.Empty(t, ids)
	assert.Empty(t, bad)
}
