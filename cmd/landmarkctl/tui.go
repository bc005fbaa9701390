package main

import (
	"fmt"
	"io"

	"github.com/gdamore/tcell/v2"

	"github.com/BrandonKowalski/landmarks/pkg/landmark"
	"github.com/BrandonKowalski/landmarks/pkg/landmark/input/tcellkeys"
	"github.com/BrandonKowalski/landmarks/pkg/landmark/platform/htmldoc"
)

func runTUI(args []string, stderr io.Writer) int {
	var common commonFlags
	fs := newFlagSet("tui", stderr)
	common.register(fs)
	if err := fs.Parse(args); err != nil {
		return 2
	}

	path, err := singleFile(fs)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}
	cfg, err := common.load()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	defer landmark.Close()

	doc, err := openFile(path, cfg)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(stderr, "Error: failed to create terminal: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(stderr, "Error: failed to initialize terminal: %v\n", err)
		return 1
	}
	defer screen.Fini()

	newBrowser(doc, cfg, path).loop(screen)
	return 0
}

// browserView is the interactive landmark list.
type browserView struct {
	doc    *htmldoc.Document
	reg    *landmark.Registry
	title  string
	navKey string
	status string
}

func newBrowser(doc *htmldoc.Document, cfg landmark.Config, title string) *browserView {
	// The terminal is the UI, so diagnostics are shown in the view rather
	// than logged over it.
	opts := append(cfg.Options(), landmark.WithLogger(discardLogger()))
	reg := landmark.New(doc, opts...)
	doc.Bind(reg)

	return &browserView{
		doc:    doc,
		reg:    reg,
		title:  title,
		navKey: cfg.NavigationKey,
		status: fmt.Sprintf("%s / Shift+%s move between landmarks, Alt+%s jumps to main, q quits", cfg.NavigationKey, cfg.NavigationKey, cfg.NavigationKey),
	}
}

// loop draws and handles events until the user quits.
func (v *browserView) loop(screen tcell.Screen) {
	for {
		v.draw(screen)

		switch ev := screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || (ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
				return
			}
			v.handleKey(ev)
		}
	}
}

func (v *browserView) handleKey(ev *tcell.EventKey) {
	key := tcellkeys.Translate(ev, nil)
	if key == nil || key.Key != v.navKey {
		return
	}

	res := v.doc.KeyDown(key.Key, key.Modifiers)
	if res.DefaultPrevented() {
		v.status = fmt.Sprintf("%s -> %s", res, htmldoc.Describe(v.doc.ActiveElement()))
	} else {
		v.status = fmt.Sprintf("%s: no landmark to move to", res)
	}
}

func (v *browserView) draw(screen tcell.Screen) {
	screen.Clear()
	width, height := screen.Size()

	y := 0
	drawText(screen, 0, y, width, tcell.StyleDefault.Bold(true), v.title)
	y += 2

	active := v.doc.ActiveElement()
	for i, l := range v.reg.Landmarks() {
		if y >= height-2 {
			break
		}
		style := tcell.StyleDefault
		marker := "  "
		if l.Element == landmark.Element(active) {
			style = style.Reverse(true)
			marker = "> "
		}
		if v.doc.IsHidden(l.Element) {
			style = style.Dim(true)
		}
		line := fmt.Sprintf("%s%2d. %-14s %s", marker, i+1, l.Role, htmldoc.Describe(l.Element))
		drawText(screen, 0, y, width, style, line)
		y++
	}

	diags := v.reg.Diagnostics()
	if len(diags) > 0 && y < height-2 {
		y++
		for _, d := range diags {
			if y >= height-2 {
				break
			}
			style := tcell.StyleDefault.Foreground(tcell.ColorYellow)
			if d.Severity == landmark.SeverityError {
				style = tcell.StyleDefault.Foreground(tcell.ColorRed)
			}
			drawText(screen, 0, y, width, style, d.String())
			y++
		}
	}

	drawText(screen, 0, height-1, width, tcell.StyleDefault.Italic(true), v.status)
	screen.Show()
}

func drawText(screen tcell.Screen, x, y, width int, style tcell.Style, text string) {
	for _, r := range text {
		if x >= width {
			return
		}
		screen.SetContent(x, y, r, nil, style)
		x++
	}
}
