package validate_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/Gunvolt24/party_registry/pkg/validate"
	"github.com/stretchr/testify/require"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestValidateJSONLStream_CountsAndCanonicalOutput(t *testing.T) {
	in := strings.NewReader(`  {"number": 13, "name": "Partido", "code": "PT"}  
{"code":"PT","name":"Partido","number":13,"extra":true}
{"code":"","name":"Partido","number":13}

not json
{"code":"PS","name":"Social","number":40}
`)
	var out bytes.Buffer

	sum, err := validate.ValidateJSONLStream(context.Background(), validate.NewPartyValidator(), in, &out)
	require.NoError(t, err)
	require.Equal(t, 2, sum.Valid)
	require.Equal(t, 3, sum.Invalid)
	require.Equal(t, "2 valid / 3 invalid", sum.String())

	require.Contains(t, sum.Errors[2], "Malformed party payload")
	require.Equal(t, "Code isRequired!", sum.Errors[3])
	require.Contains(t, sum.Errors[5], "Malformed party payload")
	require.NotContains(t, sum.Errors, 4, "blank lines are skipped")

	require.Equal(t,
		`{"code":"PT","name":"Partido","number":13}`+"\n"+`{"code":"PS","name":"Social","number":40}`+"\n",
		out.String())
}

func TestValidateJSONLStream_WriteError(t *testing.T) {
	in := strings.NewReader(`{"code":"PT","name":"Partido","number":13}` + "\n")
	_, err := validate.ValidateJSONLStream(context.Background(), validate.NewPartyValidator(), in, failingWriter{})
	require.ErrorContains(t, err, "disk full")
}

func TestValidateJSONLStream_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	in := strings.NewReader(`{"code":"PT","name":"Partido","number":13}` + "\n")
	_, err := validate.ValidateJSONLStream(ctx, validate.NewPartyValidator(), in, &bytes.Buffer{})
	require.ErrorIs(t, err, context.Canceled)
}
