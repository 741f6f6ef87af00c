package legacy

import (
	"bufio"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"strconv"
	"unicode/utf8"

	"hctool/internal/savefile"
)

// Value type markers used by the pre-release writer.
const (
	markerBool        = 0x01
	markerInt         = 0x02
	markerUnknown3    = 0x03
	markerString      = 0x04
	markerCoordinates = 0x05
	markerReference   = 0x12
	markerObject      = 0x14
	markerArray       = 0x15
)

// containerLenTag is set in the high byte of object and array lengths.
const containerLenTag = 0x80

// Decoder translates one legacy binary save stream into a Save.
type Decoder struct {
	log *slog.Logger
}

// NewDecoder constructs a decoder. The logger reports values the legacy
// writer emitted but the release format cannot represent.
func NewDecoder(logger *slog.Logger) *Decoder {
	return &Decoder{log: logger}
}

// Decode reads a complete legacy save and returns its release-model form.
// Any layout violation fails with savefile.ErrFormat.
func (d *Decoder) Decode(r io.Reader) (*savefile.Save, error) {
	br := bufio.NewReader(r)

	// Stream header; the old writer prefixed the payload with 4 bytes the
	// game never read back.
	if _, err := read4(br); err != nil {
		return nil, formatErr("read stream header", err)
	}

	value, present, err := d.readValue(br)
	if err != nil {
		return nil, err
	}
	if !present {
		return nil, fmt.Errorf("%w: save payload decodes to nothing", savefile.ErrFormat)
	}
	data, ok := value.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: save payload is not an object", savefile.ErrFormat)
	}

	return savefile.New(data), nil
}

// readValue decodes one marker-tagged value. present is false for the two
// marker types that carry nothing representable.
func (d *Decoder) readValue(r *bufio.Reader) (value any, present bool, err error) {
	marker, err := readMarker(r)
	if err != nil {
		return nil, false, err
	}

	switch marker {
	case markerBool:
		payload, err := read4(r)
		if err != nil {
			return nil, false, formatErr("read bool payload", err)
		}
		switch payload[0] {
		case 0:
			return false, true, nil
		case 1:
			return true, true, nil
		default:
			return nil, false, fmt.Errorf("%w: bool payload %#02x out of range", savefile.ErrFormat, payload[0])
		}

	case markerInt:
		payload, err := read4(r)
		if err != nil {
			return nil, false, formatErr("read int payload", err)
		}
		v := binary.LittleEndian.Uint32(payload[:])
		return json.Number(strconv.FormatUint(uint64(v), 10)), true, nil

	case markerUnknown3:
		payload, err := read4(r)
		if err != nil {
			return nil, false, formatErr("read 0x03 payload", err)
		}
		d.log.Warn("skipping value of unknown type 0x03", "payload", fmt.Sprintf("%02x", payload))
		return nil, false, nil

	case markerString:
		s, err := readString(r)
		if err != nil {
			return nil, false, err
		}
		return s, true, nil

	case markerCoordinates:
		x, err := readFloat32(r)
		if err != nil {
			return nil, false, formatErr("read coordinate x", err)
		}
		y, err := readFloat32(r)
		if err != nil {
			return nil, false, formatErr("read coordinate y", err)
		}
		return map[string]any{"x": x, "y": y}, true, nil

	case markerReference:
		// Carries no payload and nothing the release format can store.
		d.log.Warn("skipping reference value")
		return nil, false, nil

	case markerObject:
		count, err := readContainerLen(r)
		if err != nil {
			return nil, false, err
		}
		fields := make(map[string]any, count)
		for i := uint32(0); i < count; i++ {
			marker, err := readMarker(r)
			if err != nil {
				return nil, false, err
			}
			if marker != markerString {
				return nil, false, fmt.Errorf("%w: field %d name has marker %#02x, want string", savefile.ErrFormat, i, marker)
			}
			name, err := readString(r)
			if err != nil {
				return nil, false, fmt.Errorf("field %d name: %w", i, err)
			}
			value, present, err := d.readValue(r)
			if err != nil {
				return nil, false, fmt.Errorf("field %q: %w", name, err)
			}
			if !present {
				d.log.Warn("dropping field with unrepresentable value", "field", name)
				continue
			}
			fields[currentFieldName(name)] = value
		}
		return fields, true, nil

	case markerArray:
		count, err := readContainerLen(r)
		if err != nil {
			return nil, false, err
		}
		values := make([]any, 0, count)
		for i := uint32(0); i < count; i++ {
			value, present, err := d.readValue(r)
			if err != nil {
				return nil, false, fmt.Errorf("element %d: %w", i, err)
			}
			if !present {
				d.log.Warn("dropping unrepresentable array element", "index", i)
				continue
			}
			values = append(values, value)
		}
		return values, true, nil

	default:
		return nil, false, fmt.Errorf("%w: unexpected value marker %#02x", savefile.ErrFormat, marker)
	}
}

func read4(r *bufio.Reader) ([4]byte, error) {
	var buf [4]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return buf, err
	}
	return buf, nil
}

func readMarker(r *bufio.Reader) (byte, error) {
	buf, err := read4(r)
	if err != nil {
		return 0, formatErr("read value marker", err)
	}
	if buf[1] != 0 || buf[2] != 0 || buf[3] != 0 {
		return 0, fmt.Errorf("%w: marker bytes %02x have non-zero tail", savefile.ErrFormat, buf)
	}
	return buf[0], nil
}

func readContainerLen(r *bufio.Reader) (uint32, error) {
	buf, err := read4(r)
	if err != nil {
		return 0, formatErr("read container length", err)
	}
	if buf[3] != containerLenTag {
		return 0, fmt.Errorf("%w: container length %02x is missing the 0x80 tag", savefile.ErrFormat, buf)
	}
	buf[3] = 0
	return binary.LittleEndian.Uint32(buf[:]), nil
}

func readString(r *bufio.Reader) (string, error) {
	lenBuf, err := read4(r)
	if err != nil {
		return "", formatErr("read string length", err)
	}
	strLen := binary.LittleEndian.Uint32(lenBuf[:])

	payload := make([]byte, strLen)
	if _, err := io.ReadFull(r, payload); err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return "", formatErr("read string payload", err)
	}
	if !utf8.Valid(payload) {
		return "", fmt.Errorf("%w: string payload is not valid UTF-8", savefile.ErrFormat)
	}

	// Strings are padded to a 4-byte boundary.
	if skip := (4 - strLen%4) % 4; skip != 0 {
		if _, err := io.CopyN(io.Discard, r, int64(skip)); err != nil {
			if errors.Is(err, io.EOF) {
				err = io.ErrUnexpectedEOF
			}
			return "", formatErr("skip string padding", err)
		}
	}

	return string(payload), nil
}

func readFloat32(r *bufio.Reader) (json.Number, error) {
	buf, err := read4(r)
	if err != nil {
		return "", err
	}
	f := math.Float32frombits(binary.LittleEndian.Uint32(buf[:]))
	if math.IsNaN(float64(f)) || math.IsInf(float64(f), 0) {
		return "", fmt.Errorf("%w: coordinate is not a finite number", savefile.ErrFormat)
	}
	return json.Number(strconv.FormatFloat(float64(f), 'g', -1, 32)), nil
}

func formatErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %s", savefile.ErrFormat, op, err)
}
