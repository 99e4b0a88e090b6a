package abstractfactory

import (
	"errors"
	"io"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ErrUnknownFamily is returned by ForFamily for names outside the known set.
var ErrUnknownFamily = errors.New("abstractfactory: unknown widget family")

// UnknownFamilyError carries the rejected name and matches ErrUnknownFamily.
type UnknownFamilyError struct{ Name string }

// Error implements the error interface.
func (e UnknownFamilyError) Error() string {
	return ErrUnknownFamily.Error() + " " + strconv.Quote(e.Name)
}

// Is lets errors.Is(err, ErrUnknownFamily) match.
func (e UnknownFamilyError) Is(target error) bool { return target == ErrUnknownFamily }

// Family names.
const (
	FamilyWindows = "windows"
	FamilyMacOS   = "macos"
)

// GUIFactory creates one matching pair of widgets.
type GUIFactory interface {
	CreateButton() *html.Node
	CreateCheckbox() *html.Node
}

// Button is a product that renders to a <button> element.
type Button interface {
	Render() *html.Node
}

// Checkbox is a product that renders to an <input type="checkbox"> element.
type Checkbox interface {
	Render() *html.Node
}

/*
   Products
*/

type WindowsButton struct{}

func (WindowsButton) Render() *html.Node { return newButton(FamilyWindows) }

type MacOSButton struct{}

func (MacOSButton) Render() *html.Node { return newButton(FamilyMacOS) }

type WindowsCheckbox struct{}

func (WindowsCheckbox) Render() *html.Node { return newCheckbox(FamilyWindows) }

type MacOSCheckbox struct{}

func (MacOSCheckbox) Render() *html.Node { return newCheckbox(FamilyMacOS) }

func newButton(family string) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Button,
		Data:     atom.Button.String(),
		Attr:     []html.Attribute{{Key: "class", Val: family + "-button"}},
	}
}

func newCheckbox(family string) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Input,
		Data:     atom.Input.String(),
		Attr: []html.Attribute{
			{Key: "type", Val: "checkbox"},
			{Key: "class", Val: family + "-checkbox"},
		},
	}
}

/*
   Factories
*/

// WindowsGUIFactory produces Windows-like widgets.
type WindowsGUIFactory struct {
	button   Button
	checkbox Checkbox
}

func NewWindowsGUIFactory() *WindowsGUIFactory {
	return &WindowsGUIFactory{button: WindowsButton{}, checkbox: WindowsCheckbox{}}
}

func (f *WindowsGUIFactory) CreateButton() *html.Node   { return f.button.Render() }
func (f *WindowsGUIFactory) CreateCheckbox() *html.Node { return f.checkbox.Render() }

// MacOSGUIFactory produces macOS-like widgets.
type MacOSGUIFactory struct {
	button   Button
	checkbox Checkbox
}

func NewMacOSGUIFactory() *MacOSGUIFactory {
	return &MacOSGUIFactory{button: MacOSButton{}, checkbox: MacOSCheckbox{}}
}

func (f *MacOSGUIFactory) CreateButton() *html.Node   { return f.button.Render() }
func (f *MacOSGUIFactory) CreateCheckbox() *html.Node { return f.checkbox.Render() }

// Families lists the names ForFamily understands.
func Families() []string { return []string{FamilyWindows, FamilyMacOS} }

// ForFamily picks a factory by family name (case-insensitive).
func ForFamily(name string) (GUIFactory, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case FamilyWindows:
		return NewWindowsGUIFactory(), nil
	case FamilyMacOS:
		return NewMacOSGUIFactory(), nil
	}
	return nil, UnknownFamilyError{Name: name}
}

// Program is the client: it only knows GUIFactory and writes the button followed by
// the checkbox, one element per line.
func Program(w io.Writer, gui GUIFactory) error {
	for _, n := range []*html.Node{gui.CreateButton(), gui.CreateCheckbox()} {
		if err := html.Render(w, n); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}

// Demo runs Program against the macOS family, then the Windows family.
func Demo(w io.Writer) error {
	if err := Program(w, NewMacOSGUIFactory()); err != nil {
		return err
	}
	return Program(w, NewWindowsGUIFactory())
}
