package batch

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-math3d"
	"github.com/cwbudde/algo-math3d/internal/layout"
)

func TestPackUnpack(t *testing.T) {
	vs := []math3d.Vec3d{
		math3d.NewVec3(1.0, 2.0, 3.0),
		math3d.NewVec3(4.0, 5.0, 6.0),
	}

	packed := Pack3(vs)
	assert.Equal(t, 2, packed.Len())
	assert.Equal(t, []float64{1, 2, 3, 0, 4, 5, 6, 0}, packed.Data())
	assert.Equal(t, vs, Unpack3(nil, packed))

	reuse := make([]math3d.Vec3d, 5)
	assert.Len(t, Unpack3(reuse, packed), 2)
}

func TestFromSlice(t *testing.T) {
	v, err := FromSlice([]float32{1, 2, 3, 9, 4, 5, 6, 9})
	require.NoError(t, err)
	assert.Equal(t, []float32{1, 2, 3, 0, 4, 5, 6, 0}, v.Data(), "padding is cleared")
	assert.Equal(t, math3d.NewVec3[float32](4, 5, 6), v.At(1))

	_, err = FromSlice([]float64{1, 2, 3})
	assert.ErrorIs(t, err, ErrStride)

	empty, err := FromSlice[float64](nil)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Len())
}

func TestResize(t *testing.T) {
	v := New[float64](2)
	v.Set(0, math3d.NewVec3(1.0, 1.0, 1.0))
	v.Set(1, math3d.NewVec3(2.0, 2.0, 2.0))

	v.Resize(1)
	assert.Equal(t, 1, v.Len())

	v.Resize(3)
	assert.Equal(t, 3, v.Len())
	assert.Equal(t, math3d.NewVec3(1.0, 1.0, 1.0), v.At(0))
	assert.Equal(t, math3d.NewVec3(0.0, 0.0, 0.0), v.At(1), "regrown vectors are zeroed")
	assert.GreaterOrEqual(t, v.Cap(), 3)

	c := v.Copy()
	v.Zero()
	assert.Equal(t, math3d.NewVec3(1.0, 1.0, 1.0), c.At(0))
	assert.Equal(t, math3d.NewVec3(0.0, 0.0, 0.0), v.At(0))

	v.Resize(-1)
	assert.Equal(t, 0, v.Len())
	assert.Equal(t, 0, New[float32](-3).Len())
}

func TestPool(t *testing.T) {
	p := NewPool[float32]()

	v := p.Get(4)
	require.Equal(t, 4, v.Len())
	v.Set(0, math3d.NewVec3[float32](7, 8, 9))
	p.Put(v)

	v2 := p.Get(4)
	for _, x := range v2.Data() {
		assert.Equal(t, float32(0), x)
	}
	p.Put(v2)
	p.Put(nil)
}

func TestAlignedStorage(t *testing.T) {
	f := New[float32](5)
	assert.True(t, layout.IsAligned(unsafe.Pointer(&f.Data()[0]), layout.SSEAlignment))

	d := New[float64](5)
	assert.True(t, layout.IsAligned(unsafe.Pointer(&d.Data()[0]), layout.AVXAlignment))

	d.Resize(100)
	assert.True(t, layout.IsAligned(unsafe.Pointer(&d.Data()[0]), layout.AVXAlignment))
	assert.True(t, layout.IsAligned(unsafe.Pointer(&d.Copy().Data()[0]), layout.AVXAlignment))
}
