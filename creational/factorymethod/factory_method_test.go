package factorymethod

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// silentOS only relies on BaseOS for Info.
type silentOS struct{ BaseOS }

func (silentOS) GreetUser(io.Writer) error { return nil }

var errWrite = errors.New("write failed")

// failAfter accepts n writes, then fails every write.
type failAfter struct{ n int }

func (f *failAfter) Write(p []byte) (int, error) {
	if f.n <= 0 {
		return 0, errWrite
	}
	f.n--
	return len(p), nil
}

func TestClientCode_Windows(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	require.NoError(t, ClientCode(&out, Windows{}))
	assert.Equal(t, "Windows Notification: Windows is cool\nIt's Windows\n", out.String())
}

func TestClientCode_Linux(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	require.NoError(t, ClientCode(&out, Linux{}))
	assert.Equal(t, "Linux Notification: Linux is lit\nIt's Linux\n", out.String())
}

// TestBaseOS_DefaultInfo verifies a creator that does not override Info gets the default.
func TestBaseOS_DefaultInfo(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	require.NoError(t, ClientCode(&out, silentOS{}))
	assert.Equal(t, "It's OS\n", out.String())
}

//
// -----------------------------------------------------------------------------
// Write errors
// -----------------------------------------------------------------------------

// TestRender_ReturnsWriteError verifies each product reports a failed write.
func TestRender_ReturnsWriteError(t *testing.T) {
	t.Parallel()

	for _, m := range []Message{WindowsMessage{}, LinuxMessage{}} {
		assert.ErrorIs(t, m.Render(&failAfter{}, "hi"), errWrite)
	}
}

// TestClientCode_ReturnsWriteError covers a failing greeting and a failing info line.
func TestClientCode_ReturnsWriteError(t *testing.T) {
	t.Parallel()

	assert.ErrorIs(t, ClientCode(&failAfter{n: 0}, Windows{}), errWrite)
	assert.ErrorIs(t, ClientCode(&failAfter{n: 1}, Linux{}), errWrite)
}

// TestDemo_ReturnsWriteError verifies the demo stops at the first failed write.
func TestDemo_ReturnsWriteError(t *testing.T) {
	t.Parallel()

	for n := 0; n < 4; n++ {
		assert.ErrorIs(t, Demo(&failAfter{n: n}), errWrite, "writes before failure: %d", n)
	}
	assert.NoError(t, Demo(&failAfter{n: 4}))
}

// TestMessages_CallbacksInvoked verifies OnClick/OnClose run the callback immediately.
func TestMessages_CallbacksInvoked(t *testing.T) {
	t.Parallel()

	for _, m := range []Message{WindowsMessage{}, LinuxMessage{}} {
		clicks, closes := 0, 0
		m.OnClick(func() { clicks++ })
		m.OnClose(func() { closes++ })
		assert.Equal(t, 1, clicks)
		assert.Equal(t, 1, closes)

		assert.NotPanics(t, func() {
			m.OnClick(nil)
			m.OnClose(nil)
		})
	}
}

func TestForPlatform(t *testing.T) {
	t.Parallel()

	for _, name := range Platforms() {
		os, err := ForPlatform(name)
		require.NoError(t, err)
		require.NotNil(t, os)
	}

	os, err := ForPlatform(" LINUX ")
	require.NoError(t, err)
	assert.Equal(t, "It's Linux", os.Info())

	_, err = ForPlatform("beos")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownPlatform)
	assert.Equal(t, `factorymethod: unknown platform "beos"`, err.Error())
}

func TestDemo(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	require.NoError(t, Demo(&out))
	assert.Equal(t,
		"Windows Notification: Windows is cool\nIt's Windows\n"+
			"Linux Notification: Linux is lit\nIt's Linux\n",
		out.String())
}
