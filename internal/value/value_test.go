package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplay_NumberIntegerValued(t *testing.T) {
	assert.Equal(t, "1", Number(1).Display())
	assert.Equal(t, "0", Number(0).Display())
}

func TestDisplay_NumberFractional(t *testing.T) {
	assert.Equal(t, "3.14", Number(3.14).Display())
}

func TestDisplay_String(t *testing.T) {
	assert.Equal(t, "abc", String("abc").Display())
}

func TestDisplay_Bool(t *testing.T) {
	assert.Equal(t, "true", Bool(true).Display())
	assert.Equal(t, "false", Bool(false).Display())
}

func TestDisplay_Nil(t *testing.T) {
	assert.Equal(t, "nil", Nil{}.Display())
}

func TestTruthy_OnlyNilAndFalseAreFalsy(t *testing.T) {
	assert.False(t, Truthy(Nil{}))
	assert.False(t, Truthy(Bool(false)))

	assert.True(t, Truthy(Bool(true)))
	assert.True(t, Truthy(Number(0)))
	assert.True(t, Truthy(String("")))
}

func TestEqual_SameVariant(t *testing.T) {
	assert.True(t, Equal(Number(1), Number(1)))
	assert.False(t, Equal(Number(1), Number(2)))
	assert.True(t, Equal(String("a"), String("a")))
	assert.True(t, Equal(Nil{}, Nil{}))
}

func TestEqual_CrossVariantAlwaysFalse(t *testing.T) {
	assert.False(t, Equal(Number(1), String("1")))
	assert.False(t, Equal(Bool(true), Number(1)))
	assert.False(t, Equal(Nil{}, Bool(false)))
}
