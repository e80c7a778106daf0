package ucwire

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// A small command set, the way a robot host would declare one.
type command interface{ isCommand() }

type Halt struct{}

type Move struct {
	Speed uint16
	Turn  int8
}

type SetLED struct {
	On bool
}

func (Halt) isCommand()   {}
func (Move) isCommand()   {}
func (SetLED) isCommand() {}

type commandMsg struct {
	Seq uint8
	Cmd command
}

func newCommandCodec() *Codec {
	return Default(WithUnion((*command)(nil), Halt{}, Move{}, SetLED{}))
}

func TestUnionTagLayout(t *testing.T) {
	c := newCommandCodec()

	// unit variant: tag byte only
	payload, err := c.Encode(commandMsg{Seq: 1, Cmd: Halt{}})
	require.NoError(t, err)
	require.Equal(t, []byte{0x01, 0x00}, payload)

	// payload variant: tag then fields
	payload, err = c.Encode(commandMsg{Seq: 2, Cmd: Move{Speed: 300, Turn: -1}})
	require.NoError(t, err)
	require.Equal(t, []byte{0x02, 0x01, 0x2C, 0x01, 0xFF}, payload)

	payload, err = c.Encode(commandMsg{Seq: 3, Cmd: SetLED{On: true}})
	require.NoError(t, err)
	require.Equal(t, []byte{0x03, 0x02, 0x01}, payload)
}

func TestUnionRoundTrip(t *testing.T) {
	c := newCommandCodec()
	for _, cmd := range []command{Halt{}, Move{Speed: 65535, Turn: -128}, SetLED{}} {
		pkt, err := c.Serialize(commandMsg{Seq: 9, Cmd: cmd})
		require.NoError(t, err)
		var out commandMsg
		_, err = c.Deserialize(pkt, &out)
		require.NoError(t, err)
		require.Equal(t, commandMsg{Seq: 9, Cmd: cmd}, out)
	}
}

func TestUnionInvalidTag(t *testing.T) {
	c := newCommandCodec()
	var out commandMsg
	err := c.Decode([]byte{0x01, 0xFF}, &out)
	require.ErrorIs(t, err, ErrInvalidTag)

	// tag equal to the variant count is also out of range
	err = c.Decode([]byte{0x01, 0x03}, &out)
	require.ErrorIs(t, err, ErrInvalidTag)
}

func TestUnionMissingTag(t *testing.T) {
	c := newCommandCodec()
	var out commandMsg
	require.ErrorIs(t, c.Decode([]byte{0x01}, &out), ErrUnexpectedEnd)
}

func TestUnionUnregistered(t *testing.T) {
	c := Default() // no WithUnion
	_, err := c.Encode(commandMsg{Cmd: Halt{}})
	require.ErrorIs(t, err, ErrUnsupported)

	var out commandMsg
	require.ErrorIs(t, c.Decode([]byte{0x01, 0x00}, &out), ErrUnsupported)
}

func TestUnionUndeclaredVariant(t *testing.T) {
	c := Default(WithUnion((*command)(nil), Halt{}, Move{}))
	_, err := c.Encode(commandMsg{Cmd: SetLED{}})
	require.ErrorIs(t, err, ErrUnsupported)
}

func TestUnionNilValue(t *testing.T) {
	c := newCommandCodec()
	_, err := c.Encode(commandMsg{Seq: 1})
	require.ErrorIs(t, err, ErrInvalidData)
}

func TestUnionTruncatedVariantPayload(t *testing.T) {
	c := newCommandCodec()
	var out commandMsg
	// Move declared but only one of its three bytes present
	require.ErrorIs(t, c.Decode([]byte{0x01, 0x01, 0x2C}, &out), ErrUnexpectedEnd)
}

func TestWithUnionMisuse(t *testing.T) {
	require.Panics(t, func() {
		Default(WithUnion(Halt{}, Halt{}))
	})
	require.Panics(t, func() {
		Default(WithUnion((*command)(nil), struct{}{}))
	})
}
