package sax_test

import (
	"testing"

	"github.com/lestrrat-go/xmldom/sax"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestCallbacks(t *testing.T) {
	t.Run("ZeroValueDiscardsEvents", func(t *testing.T) {
		var cb sax.Callbacks
		require.NoError(t, cb.StartDocument(nil))
		require.NoError(t, cb.EndDocument(nil))
		require.NoError(t, cb.StartElement(nil, nil))
		require.NoError(t, cb.EndElement(nil, nil))
		require.NoError(t, cb.Characters(nil, []byte("x")))
		require.NoError(t, cb.Error(nil, errors.New("boom")))
	})

	t.Run("Dispatch", func(t *testing.T) {
		var got []string
		cb := sax.Callbacks{
			StartDocumentHandler: func(sax.Context) error {
				got = append(got, "start-doc")
				return nil
			},
			CharactersHandler: func(_ sax.Context, data []byte) error {
				got = append(got, "chars:"+string(data))
				return nil
			},
			EndDocumentHandler: func(sax.Context) error {
				got = append(got, "end-doc")
				return nil
			},
		}

		require.NoError(t, cb.StartDocument(nil))
		require.NoError(t, cb.Characters(nil, []byte("hi")))
		require.NoError(t, cb.EndDocument(nil))
		require.Equal(t, []string{"start-doc", "chars:hi", "end-doc"}, got)
	})

	t.Run("HandlerErrorPropagates", func(t *testing.T) {
		boom := errors.New("boom")
		cb := sax.Callbacks{
			StartElementHandler: func(sax.Context, sax.ParsedElement) error {
				return boom
			},
		}
		require.ErrorIs(t, cb.StartElement(nil, nil), boom)
	})
}
