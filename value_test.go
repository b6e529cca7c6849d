package spreadsheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValueAccessors(t *testing.T) {
	empty := EmptyValue()
	assert.True(t, empty.IsEmpty())
	assert.Equal(t, KindEmpty, empty.Kind())

	num := NumberValue(3.5)
	n, ok := num.Number()
	assert.True(t, ok)
	assert.Equal(t, 3.5, n)
	_, ok = num.Text()
	assert.False(t, ok)

	text := TextValue("hi")
	s, ok := text.Text()
	assert.True(t, ok)
	assert.Equal(t, "hi", s)
	_, ok = text.Number()
	assert.False(t, ok)

	// the zero value is the empty value
	var zero Value
	assert.True(t, zero.Equal(EmptyValue()))
}

func TestValueEqual(t *testing.T) {
	assert.True(t, EmptyValue().Equal(EmptyValue()))
	assert.True(t, NumberValue(2).Equal(NumberValue(2)))
	assert.True(t, TextValue("a").Equal(TextValue("a")))

	assert.False(t, NumberValue(2).Equal(NumberValue(3)))
	assert.False(t, TextValue("a").Equal(TextValue("b")))

	// cross-variant values are never equal
	assert.False(t, NumberValue(0).Equal(EmptyValue()))
	assert.False(t, NumberValue(1).Equal(TextValue("1")))
	assert.False(t, TextValue("").Equal(EmptyValue()))
}

func TestCompareValues(t *testing.T) {
	c, ok := compareValues(NumberValue(1), NumberValue(2))
	assert.True(t, ok)
	assert.Equal(t, -1, c)

	c, ok = compareValues(NumberValue(2), NumberValue(2))
	assert.True(t, ok)
	assert.Equal(t, 0, c)

	c, ok = compareValues(TextValue("b"), TextValue("a"))
	assert.True(t, ok)
	assert.Equal(t, 1, c)

	// ordering is undefined across variants and against empty
	_, ok = compareValues(NumberValue(1), TextValue("1"))
	assert.False(t, ok)
	_, ok = compareValues(EmptyValue(), NumberValue(1))
	assert.False(t, ok)
	_, ok = compareValues(EmptyValue(), EmptyValue())
	assert.False(t, ok)
}

func TestValueString(t *testing.T) {
	assert.Equal(t, "", EmptyValue().String())
	assert.Equal(t, "3.5", NumberValue(3.5).String())
	assert.Equal(t, "42", NumberValue(42).String())
	assert.Equal(t, "hello", TextValue("hello").String())
}

func TestConcatText(t *testing.T) {
	assert.Equal(t, "1.000000", NumberValue(1).concatText())
	assert.Equal(t, "3.500000", NumberValue(3.5).concatText())
	assert.Equal(t, "x", TextValue("x").concatText())
}
