package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

var bannerLines = []struct {
	text  string
	color string
}{
	{` __  __                 ____        _`, "#22c55e"},
	{`|  \/  | __ _ _______  / ___|  ___ | |_   _____ _ __`, "#84cc16"},
	{`| |\/| |/ _' |_  / _ \ \___ \ / _ \| \ \ / / _ \ '__|`, "#eab308"},
	{`| |  | | (_| |/ /  __/  ___) | (_) | |\ V /  __/ |`, "#f97316"},
	{`|_|  |_|\__,_/___\___| |____/ \___/|_| \_/ \___|_|`, "#ef4444"},
}

// PrintBanner writes the MazeSolver banner, coloured from start green to goal red.
func PrintBanner(w io.Writer, p termenv.Profile) {
	fmt.Fprintln(w)
	for _, line := range bannerLines {
		fmt.Fprintln(w, p.String(line.text).Foreground(p.Color(line.color)))
	}
	fmt.Fprintln(w)
}
