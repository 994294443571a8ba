package sim

import (
	"fmt"
	"io"
)

// WriteReport prints the classic demo output: the x position after every
// step, followed by a wall notice whenever the mover touches a wall.
func WriteReport(w io.Writer, frames []Frame) error {
	for _, f := range frames {
		if _, err := fmt.Fprintf(w, "X Pos: %d\n", f.Rect.X); err != nil {
			return err
		}
		if f.Contact.Wall {
			if _, err := fmt.Fprintln(w, "Is on wall!"); err != nil {
				return err
			}
		}
	}
	return nil
}

// WriteTable prints every frame with its full rect and all contacts.
func WriteTable(w io.Writer, frames []Frame) error {
	if _, err := fmt.Fprintf(w, "  %-4s  %-6s  %-6s  %-5s  %-7s  %s\n", "Step", "X", "Y", "Floor", "Ceiling", "Wall"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "  %-4s  %-6s  %-6s  %-5s  %-7s  %s\n", "----", "-", "-", "-----", "-------", "----"); err != nil {
		return err
	}
	for _, f := range frames {
		_, err := fmt.Fprintf(w, "  %-4d  %-6d  %-6d  %-5s  %-7s  %s\n",
			f.Step, f.Rect.X, f.Rect.Y,
			yesNo(f.Contact.Floor), yesNo(f.Contact.Ceiling), yesNo(f.Contact.Wall),
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
