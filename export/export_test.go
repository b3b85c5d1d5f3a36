package export_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/secretsanta/export"
	"github.com/katalvlaran/secretsanta/matching"
)

var ring = matching.Assignment{
	{Giver: "Alice", Receiver: "Bob"},
	{Giver: "Bob", Receiver: "Carol"},
	{Giver: "Carol", Receiver: "Alice"},
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]export.Format{
		"table": export.Table,
		"JSON":  export.JSON,
		" csv ": export.CSV,
	} {
		got, err := export.ParseFormat(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got)
	}

	_, err := export.ParseFormat("yaml")
	require.ErrorIs(t, err, export.ErrUnknownFormat)
}

func TestJSONRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.WriteJSON(&buf, ring))
	require.Contains(t, buf.String(), `"giver": "Alice"`)

	got, err := export.ReadJSON(&buf)
	require.NoError(t, err)
	require.Equal(t, ring, got)
}

func TestWriteJSON_EmptyIsArray(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.WriteJSON(&buf, nil))
	require.Equal(t, "[]\n", buf.String())
}

func TestReadJSON_Garbage(t *testing.T) {
	_, err := export.ReadJSON(strings.NewReader("{not json"))
	require.Error(t, err)
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.WriteCSV(&buf, ring))
	require.Equal(t, "giver,receiver\nAlice,Bob\nBob,Carol\nCarol,Alice\n", buf.String())
}

func TestWriteCSV_QuotesCommas(t *testing.T) {
	var buf bytes.Buffer
	a := matching.Assignment{{Giver: "Smith, Jo", Receiver: "Lee"}}
	require.NoError(t, export.WriteCSV(&buf, a))
	require.Contains(t, buf.String(), `"Smith, Jo",Lee`)
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.WriteTable(&buf, ring, export.Options{}))

	out := buf.String()
	require.Contains(t, out, "Giver")
	require.Contains(t, out, "Is buying for")
	for _, p := range ring {
		require.Contains(t, out, p.Giver)
		require.Contains(t, out, p.Receiver)
	}
}

func TestWrite_Dispatch(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.Write(&buf, ring, export.CSV, export.Options{}))
	require.True(t, strings.HasPrefix(buf.String(), "giver,receiver"))

	err := export.Write(&buf, ring, export.Format("xml"), export.Options{})
	require.ErrorIs(t, err, export.ErrUnknownFormat)
}

func TestShareMessage(t *testing.T) {
	require.Equal(t,
		"Hi Alice! You are the Secret Santa for Bob 🤫",
		export.ShareMessage(ring[0]))
}

func TestHeadline(t *testing.T) {
	require.Equal(t, "Pairs", export.Headline("Pairs", false))
	require.Contains(t, export.Headline("Pairs", true), "Pairs")
}
