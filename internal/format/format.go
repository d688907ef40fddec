// ABOUTME: Output rendering for devices: human, cli (flat), json, and table.
// ABOUTME: Formats only carry data produced by the selection pipeline.

package format

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/sndctl/sndctl/internal/device"
)

type Format string

const (
	Human Format = "human"
	CLI   Format = "cli"
	JSON  Format = "json"
	Table Format = "table"
)

// Parse validates a user-supplied format name. Empty selects Human.
func Parse(s string) (Format, error) {
	switch Format(s) {
	case Human, CLI, JSON, Table:
		return Format(s), nil
	case "":
		return Human, nil
	default:
		return "", fmt.Errorf("unknown output format: %s (must be one of: human, cli, json, table)", s)
	}
}

// deviceJSON is the structured output shape. MACAddress is null when the uid
// embeds no MAC-like tag.
type deviceJSON struct {
	ID         uint32  `json:"id"`
	Name       string  `json:"name"`
	UID        string  `json:"uid"`
	Type       string  `json:"type"`
	MACAddress *string `json:"mac_address"`
}

func toJSON(d device.Device) deviceJSON {
	out := deviceJSON{
		ID:   uint32(d.Handle),
		Name: d.Name,
		UID:  d.UID,
		Type: d.Direction.String(),
	}
	if tag, ok := device.MACTag(d.UID); ok {
		out.MACAddress = &tag
	}
	return out
}

// RenderOne writes a single device in the given format.
func RenderOne(w io.Writer, d device.Device, f Format) error {
	switch f {
	case Human:
		_, err := fmt.Fprintln(w, humanLine(d))
		return err
	case CLI:
		_, err := fmt.Fprintln(w, cliLine(d))
		return err
	case JSON:
		return writeJSON(w, toJSON(d))
	case Table:
		return renderTable(w, []device.Device{d})
	default:
		return fmt.Errorf("unknown output format: %s", f)
	}
}

// RenderList writes a device listing in the given format.
func RenderList(w io.Writer, devices []device.Device, f Format) error {
	switch f {
	case Human, CLI:
		for _, d := range devices {
			if err := RenderOne(w, d, f); err != nil {
				return err
			}
		}
		return nil
	case JSON:
		rows := make([]deviceJSON, 0, len(devices))
		for _, d := range devices {
			rows = append(rows, toJSON(d))
		}
		return writeJSON(w, rows)
	case Table:
		return renderTable(w, devices)
	default:
		return fmt.Errorf("unknown output format: %s", f)
	}
}

func humanLine(d device.Device) string {
	if tag := d.Tag(); tag != "" {
		return fmt.Sprintf("%s (%s)", d.Name, tag)
	}
	return d.Name
}

func cliLine(d device.Device) string {
	return fmt.Sprintf("%s,%s,%d,%s,%s", d.Name, d.Direction, d.Handle, d.UID, d.Tag())
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func renderTable(w io.Writer, devices []device.Device) error {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"ID", "Name", "Type", "UID", "MAC"})
	for _, d := range devices {
		tw.AppendRow(table.Row{uint32(d.Handle), d.Name, d.Direction.String(), d.UID, d.Tag()})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	tw.Render()
	return nil
}
