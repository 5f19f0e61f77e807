package cmd

import (
	"MyStorage/internal/models"
	"fmt"
	"io"
	"text/tabwriter"
)

func printBoxes(out io.Writer, boxes []models.Box) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tLOCATION\tITEMS\tSHARED")
	for _, box := range boxes {
		shared := ""
		if box.Shared {
			shared = "yes"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%s\n", box.ID, box.Name, box.Location, box.ItemCount(), shared)
	}
	return w.Flush()
}

func printBox(out io.Writer, box *models.Box) {
	fmt.Fprintf(out, "%s (#%d)\n", box.Name, box.ID)
	for _, field := range [][2]string{
		{"Description", box.Description},
		{"Location", box.Location},
		{"QR code", box.QRCode},
		{"Photo", box.PhotoURL},
	} {
		if field[1] != "" {
			fmt.Fprintf(out, "  %-12s %s\n", field[0]+":", field[1])
		}
	}
	if box.Shared {
		fmt.Fprintln(out, "  Shared with you")
	}
}

func printItems(out io.Writer, items []models.Item) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tBOX\tDESCRIPTION")
	for _, item := range items {
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%s\n", item.ID, item.Name, models.Category(item.Category).Label(), item.BoxID, item.Description)
	}
	return w.Flush()
}
