package factorymethod

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrUnknownPlatform is returned by ForPlatform for names outside the known set.
var ErrUnknownPlatform = errors.New("factorymethod: unknown platform")

// UnknownPlatformError carries the rejected name and matches ErrUnknownPlatform.
type UnknownPlatformError struct{ Name string }

// Error implements the error interface.
func (e UnknownPlatformError) Error() string {
	return ErrUnknownPlatform.Error() + " " + strconv.Quote(e.Name)
}

// Is lets errors.Is(err, ErrUnknownPlatform) match.
func (e UnknownPlatformError) Is(target error) bool { return target == ErrUnknownPlatform }

// Message is the product every platform knows how to build.
type Message interface {
	Render(w io.Writer, text string) error
	OnClick(callback func())
	OnClose(callback func())
}

// WindowsMessage renders Windows-branded notifications.
type WindowsMessage struct{}

func (WindowsMessage) Render(w io.Writer, text string) error {
	_, err := fmt.Fprintf(w, "Windows Notification: %s\n", text)
	return err
}

func (WindowsMessage) OnClick(callback func()) { invoke(callback) }
func (WindowsMessage) OnClose(callback func()) { invoke(callback) }

// LinuxMessage renders Linux-branded notifications.
type LinuxMessage struct{}

func (LinuxMessage) Render(w io.Writer, text string) error {
	_, err := fmt.Fprintf(w, "Linux Notification: %s\n", text)
	return err
}

func (LinuxMessage) OnClick(callback func()) { invoke(callback) }
func (LinuxMessage) OnClose(callback func()) { invoke(callback) }

func invoke(callback func()) {
	if callback != nil {
		callback()
	}
}

// OS is the creator. GreetUser builds a platform message and renders the greeting.
type OS interface {
	GreetUser(w io.Writer) error
	Info() string
}

// BaseOS supplies the default Info. Platforms embed it and override what they need.
type BaseOS struct{}

// Info returns the generic description.
func (BaseOS) Info() string { return "It's OS" }

// Windows creates WindowsMessage products.
type Windows struct{ BaseOS }

func (Windows) GreetUser(w io.Writer) error {
	var m Message = WindowsMessage{}
	return m.Render(w, "Windows is cool")
}

func (Windows) Info() string { return "It's Windows" }

// Linux creates LinuxMessage products.
type Linux struct{ BaseOS }

func (Linux) GreetUser(w io.Writer) error {
	var m Message = LinuxMessage{}
	return m.Render(w, "Linux is lit")
}

func (Linux) Info() string { return "It's Linux" }

// Platforms lists the names ForPlatform understands.
func Platforms() []string { return []string{"windows", "linux"} }

// ForPlatform picks a creator by name (case-insensitive).
func ForPlatform(name string) (OS, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "windows":
		return Windows{}, nil
	case "linux":
		return Linux{}, nil
	}
	return nil, UnknownPlatformError{Name: name}
}

// ClientCode greets the user and prints the platform info. It depends on OS only.
// Write errors stop it early and are returned.
func ClientCode(w io.Writer, os OS) error {
	if err := os.GreetUser(w); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, os.Info())
	return err
}

// Demo runs ClientCode for Windows, then Linux.
func Demo(w io.Writer) error {
	for _, os := range []OS{Windows{}, Linux{}} {
		if err := ClientCode(w, os); err != nil {
			return err
		}
	}
	return nil
}
