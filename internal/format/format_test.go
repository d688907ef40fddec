package format

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sndctl/sndctl/internal/device"
)

var (
	airpods = device.Device{
		Handle:    71,
		Name:      "AirPods Max",
		UID:       "bt-14-61-02-9F-34-7D:output",
		Direction: device.Output,
	}
	webcam = device.Device{
		Handle:    62,
		Name:      "Webcam Microphone",
		UID:       "usb-webcam-02",
		Direction: device.Input,
	}
)

func TestParse(t *testing.T) {
	for _, valid := range []string{"human", "cli", "json", "table"} {
		got, err := Parse(valid)
		require.NoError(t, err)
		assert.Equal(t, Format(valid), got)
	}

	got, err := Parse("")
	require.NoError(t, err)
	assert.Equal(t, Human, got)

	_, err = Parse("xml")
	assert.Error(t, err)
}

func TestRenderOneHuman(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderOne(&buf, airpods, Human))
	assert.Equal(t, "AirPods Max (14-61-02-9F-34-7D)\n", buf.String())

	buf.Reset()
	require.NoError(t, RenderOne(&buf, webcam, Human))
	assert.Equal(t, "Webcam Microphone\n", buf.String())
}

func TestRenderOneCLI(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderOne(&buf, airpods, CLI))
	assert.Equal(t, "AirPods Max,output,71,bt-14-61-02-9F-34-7D:output,14-61-02-9F-34-7D\n", buf.String())

	buf.Reset()
	require.NoError(t, RenderOne(&buf, webcam, CLI))
	assert.Equal(t, "Webcam Microphone,input,62,usb-webcam-02,\n", buf.String())
}

func TestRenderOneJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderOne(&buf, webcam, JSON))

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, float64(62), got["id"])
	assert.Equal(t, "Webcam Microphone", got["name"])
	assert.Equal(t, "usb-webcam-02", got["uid"])
	assert.Equal(t, "input", got["type"])
	assert.Contains(t, got, "mac_address")
	assert.Nil(t, got["mac_address"])
}

func TestRenderListJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderList(&buf, []device.Device{airpods, webcam}, JSON))

	var got []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "14-61-02-9F-34-7D", got[0]["mac_address"])
	assert.Nil(t, got[1]["mac_address"])
}

func TestRenderListJSONEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderList(&buf, nil, JSON))
	assert.Equal(t, "[]\n", buf.String())
}

func TestRenderListHuman(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderList(&buf, []device.Device{airpods, webcam}, Human))
	assert.Equal(t, "AirPods Max (14-61-02-9F-34-7D)\nWebcam Microphone\n", buf.String())
}

func TestRenderTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderList(&buf, []device.Device{airpods, webcam}, Table))

	out := buf.String()
	assert.Contains(t, out, "AirPods Max")
	assert.Contains(t, out, "Webcam Microphone")
	assert.Contains(t, out, "UID")
	assert.Contains(t, out, "output")
}
