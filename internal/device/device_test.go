package device

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDirection(t *testing.T) {
	tests := []struct {
		in      string
		want    Direction
		wantErr bool
	}{
		{in: "input", want: Input},
		{in: "output", want: Output},
		{in: "system", want: System},
		{in: "all", want: Any},
		{in: "any", want: Any},
		{in: "", want: Any},
		{in: "Output", want: Output},
		{in: " input ", want: Input},
		{in: "headphones", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDirection(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDirectionString(t *testing.T) {
	assert.Equal(t, "input", Input.String())
	assert.Equal(t, "output", Output.String())
	assert.Equal(t, "system", System.String())
	assert.Equal(t, "any", Any.String())
}

func TestMACTag(t *testing.T) {
	tests := []struct {
		name    string
		uid     string
		want    string
		present bool
	}{
		{
			name:    "hyphen separated",
			uid:     "14-61-02-9F-34-7D:output",
			want:    "14-61-02-9F-34-7D",
			present: true,
		},
		{
			name:    "colon separated",
			uid:     "bt-00:1B:66:02:C3:8A-a2dp",
			want:    "00:1B:66:02:C3:8A",
			present: true,
		},
		{
			name:    "lowercase hex",
			uid:     "dev-aa:bb:cc:dd:ee:ff",
			want:    "aa:bb:cc:dd:ee:ff",
			present: true,
		},
		{
			name: "no tag",
			uid:  "BuiltInSpeakerDevice",
		},
		{
			name: "too few groups",
			uid:  "00-11-22-33-44",
		},
		{
			name: "underscore separators do not count",
			uid:  "bluez_sink.00_11_22_33_44_55.a2dp_sink",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tag, ok := MACTag(tt.uid)
			assert.Equal(t, tt.present, ok)
			assert.Equal(t, tt.want, tag)
		})
	}
}

func TestDeviceTag(t *testing.T) {
	withTag := Device{UID: "14-61-02-9F-34-7D:output"}
	assert.Equal(t, "14-61-02-9F-34-7D", withTag.Tag())

	without := Device{UID: "BuiltInSpeakerDevice"}
	assert.Empty(t, without.Tag())
}

func TestSort(t *testing.T) {
	t.Run("orders by name then uid", func(t *testing.T) {
		devices := []Device{
			{Name: "Studio Display", UID: "uid-b"},
			{Name: "AirPods", UID: "uid-z"},
			{Name: "Studio Display", UID: "uid-a"},
		}
		Sort(devices)

		assert.Equal(t, "AirPods", devices[0].Name)
		assert.Equal(t, "uid-a", devices[1].UID)
		assert.Equal(t, "uid-b", devices[2].UID)
	})

	t.Run("is reproducible regardless of input order", func(t *testing.T) {
		a := []Device{
			{Name: "C", UID: "3"}, {Name: "A", UID: "1"}, {Name: "B", UID: "2"},
		}
		b := []Device{
			{Name: "B", UID: "2"}, {Name: "C", UID: "3"}, {Name: "A", UID: "1"},
		}
		Sort(a)
		Sort(b)
		assert.Equal(t, a, b)
	})
}
