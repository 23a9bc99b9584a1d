package xmldom_test

import (
	"testing"

	"github.com/lestrrat-go/xmldom"
	"github.com/stretchr/testify/require"
)

func TestScalarCoercions(t *testing.T) {
	t.Run("Absent", func(t *testing.T) {
		e := xmldom.NewElement("e")
		require.Equal(t, "", e.StringValue())
		require.False(t, e.BoolValue())
		require.Equal(t, 0, e.IntValue())
		require.Equal(t, 0.0, e.FloatValue())
	})

	t.Run("Garbage", func(t *testing.T) {
		e := xmldom.NewElement("e", xmldom.WithValue("not-a-number"))
		require.False(t, e.BoolValue())
		require.Equal(t, 0, e.IntValue())
		require.Equal(t, 0.0, e.FloatValue())
	})

	t.Run("Bool", func(t *testing.T) {
		for _, v := range []string{"true", "True", "TRUE", "1"} {
			e := xmldom.NewElement("e", xmldom.WithValue(v))
			require.True(t, e.BoolValue(), "%q coerces to true", v)
		}
		for _, v := range []string{"false", "0", "2", "yes", ""} {
			e := xmldom.NewElement("e", xmldom.WithValue(v))
			require.False(t, e.BoolValue(), "%q coerces to false", v)
		}
	})

	t.Run("Int", func(t *testing.T) {
		require.Equal(t, 42, xmldom.NewElement("e", xmldom.WithValue("42")).IntValue())
		require.Equal(t, -7, xmldom.NewElement("e", xmldom.WithValue("-7")).IntValue())
		require.Equal(t, 0, xmldom.NewElement("e", xmldom.WithValue("3.14")).IntValue())
	})

	t.Run("Float", func(t *testing.T) {
		require.Equal(t, 3.14, xmldom.NewElement("e", xmldom.WithValue("3.14")).FloatValue())
		require.Equal(t, 42.0, xmldom.NewElement("e", xmldom.WithValue("42")).FloatValue())
	})
}

func TestSetClearValue(t *testing.T) {
	e := xmldom.NewElement("e")

	e.SetValue("x")
	v, ok := e.Value()
	require.True(t, ok)
	require.Equal(t, "x", v)

	e.SetValue("")
	v, ok = e.Value()
	require.True(t, ok, "explicit empty string is still a value")
	require.Equal(t, "", v)

	e.ClearValue()
	_, ok = e.Value()
	require.False(t, ok)
}
