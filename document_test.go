package xmldom_test

import (
	"strings"
	"testing"

	"github.com/lestrrat-go/xmldom"
	"github.com/stretchr/testify/require"
)

func TestNewDocument(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		doc := xmldom.NewDocument()
		require.Equal(t, 1.0, doc.Version())
		require.Equal(t, "utf-8", doc.Encoding())
		require.Equal(t, "no", doc.Standalone())
		require.False(t, doc.ProcessNamespaces())
	})

	t.Run("Options", func(t *testing.T) {
		doc := xmldom.NewDocument(
			xmldom.WithVersion(1.1),
			xmldom.WithEncoding("iso-8859-1"),
			xmldom.WithStandalone("yes"),
			xmldom.WithProcessNamespaces(true),
		)
		require.Equal(t, 1.1, doc.Version())
		require.Equal(t, "iso-8859-1", doc.Encoding())
		require.Equal(t, "yes", doc.Standalone())
		require.True(t, doc.ProcessNamespaces())
	})
}

func TestDocumentRoot(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		doc := xmldom.NewDocument()
		root := doc.Root()
		require.True(t, root.IsError())
		require.Equal(t, "document must have a root element", root.StringValue())
	})

	t.Run("SingleChild", func(t *testing.T) {
		root := xmldom.NewElement("root")
		doc := xmldom.NewDocument(xmldom.WithRoot(root))
		require.Same(t, root, doc.Root())
	})

	t.Run("MultipleChildren", func(t *testing.T) {
		doc := xmldom.NewDocument()
		doc.CreateChild("a")
		doc.CreateChild("b")
		require.True(t, doc.Root().IsError(), "multiple top level elements have no single root")
	})

	t.Run("SentinelChains", func(t *testing.T) {
		doc := xmldom.NewDocument()
		got := doc.Root().Child("a").Child("b")
		require.True(t, got.IsError())
	})
}

func TestDocumentReuse(t *testing.T) {
	doc := xmldom.NewDocument()
	require.NoError(t, doc.ReadXMLData([]byte(`<first><a /></first>`)))
	first := doc.Root()
	require.Equal(t, "first", first.Name())

	require.NoError(t, doc.ReadXMLData([]byte(`<second />`)))
	require.Equal(t, "second", doc.Root().Name())
	require.Len(t, doc.Children(), 1, "a second parse fully discards the first tree")
	require.Nil(t, first.Parent(), "discarded tree is detached, not dangling")

	t.Run("MetadataUntouched", func(t *testing.T) {
		require.Equal(t, 1.0, doc.Version())
		require.Equal(t, "utf-8", doc.Encoding())
		require.Equal(t, "no", doc.Standalone())
	})

	t.Run("ChildrenClearedEvenOnFailure", func(t *testing.T) {
		require.Error(t, doc.ReadXMLData([]byte(`<unclosed>`)))
		require.True(t, doc.Child("second").IsError(),
			"the previous tree is discarded before parsing starts")
	})
}

func TestDocumentReadXML(t *testing.T) {
	doc := xmldom.NewDocument()
	require.NoError(t, doc.ReadXML(strings.NewReader(`<root>hi</root>`)))
	require.Equal(t, "hi", doc.Root().StringValue())
}

func TestDocumentTranscoding(t *testing.T) {
	// "café" with an ISO-8859-1 encoded é
	data := []byte("<root>caf\xe9</root>")

	doc := xmldom.NewDocument(xmldom.WithEncoding("iso-8859-1"))
	require.NoError(t, doc.ReadXMLData(data))
	require.Equal(t, "café", doc.Root().StringValue())
}
