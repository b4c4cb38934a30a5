// Command keytest shows how termapp decodes each key pressed. Press q to exit.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rovaughn/termsnake/termapp"
)

func main() {
	t, err := termapp.Open("/dev/tty")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer t.Close()

	rainbow := []termapp.Color{
		termapp.Hex(0xff0000), termapp.Hex(0xffff00), termapp.Hex(0x00ff00),
		termapp.Hex(0x00ffff), termapp.Hex(0x0000ff), termapp.Hex(0xff00ff),
	}

	var history []termapp.Key
	ctx := context.Background()

	for {
		width, height := t.Size()
		screen := termapp.NewScreen(width, height)
		const header = "press keys, q quits"
		screen.Print(0, 0, termapp.Black, termapp.White, header)
		screen.SetCursor(len(header), 0, true)
		for i, key := range history {
			screen.Print(0, 2+i, termapp.Black, rainbow[i%len(rainbow)], fmt.Sprintf("%-10s %d", key, int(key)))
		}
		if err := t.Draw(screen); err != nil {
			t.Close()
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		key, err := t.WaitKey(ctx)
		if err != nil {
			t.Close()
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		if key == 'q' {
			return
		}

		history = append(history, key)
		if rows := height - 2; rows > 0 && len(history) > rows {
			history = history[len(history)-rows:]
		}
	}
}
