package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/svgattr/attribute"
)

func TestClassify_Args(t *testing.T) {
	stdout, err := executeCommand(t, "classify", "fill", "Fill", "xlink:href")
	require.NoError(t, err)

	want := fmt.Sprintf("\"fill\"\tfill (%d)\n\"Fill\"\tunrecognized\n\"xlink:href\"\txlink:href (%d)\n",
		int(attribute.Fill), int(attribute.XLinkHref))
	assert.Equal(t, want, stdout)
}

func TestClassify_Stdin(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewClassifyCommand(&RootOptions{Format: "json"})
	cmd.SetOut(buf)
	cmd.SetIn(strings.NewReader("stroke-width\r\nstroke-width \n\n"))
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())

	var resp struct {
		Status string           `json:"status"`
		Data   []Classification `json:"data"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	require.Len(t, resp.Data, 3)

	assert.True(t, resp.Data[0].Recognized)
	assert.Equal(t, "stroke-width", resp.Data[0].Kind)
	require.NotNil(t, resp.Data[0].Tag)
	assert.Equal(t, int(attribute.StrokeWidth), *resp.Data[0].Tag)

	assert.Equal(t, Classification{Input: "stroke-width "}, resp.Data[1])
	assert.Equal(t, Classification{Input: ""}, resp.Data[2])
}

func TestClassify_Strict(t *testing.T) {
	_, err := executeCommand(t, "classify", "--strict", "fill")
	require.NoError(t, err)

	stdout, err := executeCommand(t, "classify", "--strict", "fill", "data-x", "onclick")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, err.Error(), "2 unrecognized")
	assert.Contains(t, stdout, "\"data-x\"\tunrecognized")
}

func TestClassify_TagZero(t *testing.T) {
	c := classify(attribute.Attribute(0).String())
	require.NotNil(t, c.Tag)
	assert.Equal(t, 0, *c.Tag)

	data, err := json.Marshal(c)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"tag":0`)
}
