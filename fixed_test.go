package drax

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type wireHeader struct {
	ID   uint32
	Data [4]byte
}

func TestStructDelegate(t *testing.T) {
	var ctx struct{}
	d := Struct[struct{}, wireHeader]{}
	value := wireHeader{ID: 0xDEADBEEF, Data: [4]byte{1, 2, 3, 4}}

	wire, err := Marshal[struct{}, wireHeader](d, value, &ctx)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xDE, 0xAD, 0xBE, 0xEF, 1, 2, 3, 4}, wire)

	decoded, err := Unmarshal[struct{}, wireHeader](d, wire, &ctx)
	require.NoError(t, err)
	assert.Equal(t, value, decoded)

	t.Run("ConstantSize", func(t *testing.T) {
		s, err := d.Size(value, &ctx)
		require.NoError(t, err)
		assert.True(t, s.IsConstant())
		assert.Equal(t, 8, s.Bytes())
	})
}

func TestStructSizeCache(t *testing.T) {
	var ctx struct{}
	d := Struct[struct{}, wireHeader]{}

	// The first call populates the cache; all subsequent calls agree.
	s1, err := d.Size(wireHeader{}, &ctx)
	require.NoError(t, err)
	s2, err := d.Size(wireHeader{ID: 7}, &ctx)
	require.NoError(t, err)
	assert.Equal(t, s1, s2)

	// The cache is shared globally across goroutines.
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s, err := Struct[struct{}, wireHeader]{}.Size(wireHeader{}, &ctx)
			assert.NoError(t, err)
			assert.Equal(t, 8, s.Bytes())
		}()
	}
	wg.Wait()
}

func TestStructRejectsVariableSize(t *testing.T) {
	type badPayload struct {
		Name string
	}
	var ctx struct{}
	d := Struct[struct{}, badPayload]{}

	_, err := d.Size(badPayload{}, &ctx)
	assert.ErrorIs(t, err, ErrNotFixedSize)

	w := mustWriter(t)
	err = d.Encode(badPayload{Name: "x"}, &ctx, w)
	assert.ErrorIs(t, err, ErrNotFixedSize)
}
